package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/samber/lo"

	"github.com/mcoot/scrabble-go/internal/model"
	"github.com/mcoot/scrabble-go/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu       sync.RWMutex
	lexicons map[string][]string
}

// New creates a new in-memory storage
func New() *Storage {
	return &Storage{
		lexicons: make(map[string][]string),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) GetDictionaryWords(ctx context.Context, lexicon string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	words, ok := s.lexicons[lexicon]
	if !ok {
		return nil, model.ErrLexiconNotFound
	}
	return slices.Clone(words), nil
}

func (s *Storage) SaveDictionaryWords(ctx context.Context, lexicon string, words []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lexicons[lexicon] = lo.Uniq(words)
	return nil
}

func (s *Storage) DeleteLexicon(ctx context.Context, lexicon string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.lexicons, lexicon)
	return nil
}

func (s *Storage) ListLexicons(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := lo.Keys(s.lexicons)
	slices.Sort(names)
	return names, nil
}

func (s *Storage) LexiconSize(ctx context.Context, lexicon string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	words, ok := s.lexicons[lexicon]
	if !ok {
		return 0, model.ErrLexiconNotFound
	}
	return len(words), nil
}
