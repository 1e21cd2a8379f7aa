package dictionary

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	lru "github.com/hashicorp/golang-lru"

	"github.com/mcoot/scrabble-go/internal/storage"
)

// DefaultCacheSize is the number of rack/hook queries kept when no size is configured
const DefaultCacheSize = 4096

// MinWordLength is the shortest word the dictionary accepts
const MinWordLength = 2

// Service provides word validation and GADDAG word search over a loaded lexicon
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
	cache   *lru.Cache

	mu      sync.RWMutex
	gaddag  *GADDAG
	lexicon string
	loaded  bool
}

// New creates a new dictionary Service; cacheSize <= 0 uses DefaultCacheSize
func New(storage storage.Storage, cacheSize int, logger *slog.Logger) *Service {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	// lru.New only fails for a non-positive size
	cache, _ := lru.New(cacheSize)
	return &Service{
		storage: storage,
		logger:  logger.With(slog.String("component", "dictionary")),
		cache:   cache,
		gaddag:  NewGADDAG(),
	}
}

// LoadFromStorage loads the named lexicon's words from storage
func (s *Service) LoadFromStorage(ctx context.Context, lexicon string) error {
	words, err := s.storage.GetDictionaryWords(ctx, lexicon)
	if err != nil {
		return fmt.Errorf("loading lexicon %q: %w", lexicon, err)
	}
	s.load(lexicon, words)
	return nil
}

// LoadFromFile loads dictionary words from a file (one word per line) and saves
// them to storage under the lexicon name
func (s *Service) LoadFromFile(ctx context.Context, lexicon, path string) error {
	words, err := ReadWordList(path)
	if err != nil {
		return err
	}

	if err := s.storage.SaveDictionaryWords(ctx, lexicon, words); err != nil {
		return fmt.Errorf("saving lexicon %q: %w", lexicon, err)
	}

	s.load(lexicon, words)
	return nil
}

// LoadWords directly loads a slice of words (useful for testing)
func (s *Service) LoadWords(words []string) error {
	s.load("", words)
	return nil
}

func (s *Service) load(lexicon string, words []string) {
	g := NewGADDAG()
	skipped := 0
	for _, word := range words {
		if utf8.RuneCountInString(strings.TrimSpace(word)) < MinWordLength {
			skipped++
			continue
		}
		g.Add(word)
	}

	s.mu.Lock()
	s.gaddag = g
	s.lexicon = lexicon
	s.loaded = true
	s.mu.Unlock()
	s.cache.Purge()

	s.logger.Info("dictionary loaded",
		slog.String("lexicon", lexicon),
		slog.Int("words", g.WordCount()),
		slog.Int("skipped", skipped),
	)
}

// IsValidWord checks if a word exists in the dictionary
// Words must be at least 2 characters
func (s *Service) IsValidWord(word string) bool {
	if utf8.RuneCountInString(word) < MinWordLength {
		return false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return false
	}
	return s.gaddag.Contains(word)
}

// FindWordsWithRackAndHook returns every word that passes through the hook
// letter and can be completed with the rack. Results are cached per rack and hook.
func (s *Service) FindWordsWithRackAndHook(rack []rune, hook rune) []Result {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return nil
	}

	key := cacheKey(rack, hook)
	if cached, ok := s.cache.Get(key); ok {
		return slices.Clone(cached.([]Result))
	}

	results := s.gaddag.FindWordsWithRackAndHook(rack, hook)
	s.cache.Add(key, results)
	return slices.Clone(results)
}

// IsLoaded returns whether the dictionary has been loaded
func (s *Service) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Lexicon returns the name of the loaded lexicon, empty for ad hoc word lists
func (s *Service) Lexicon() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lexicon
}

// WordCount returns the number of words in the dictionary
func (s *Service) WordCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gaddag.WordCount()
}

// ReadWordList reads a word list file, one word per line; blank lines and
// lines starting with '#' are skipped
func ReadWordList(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" && !strings.HasPrefix(word, "#") {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

func cacheKey(rack []rune, hook rune) string {
	sorted := make([]rune, len(rack))
	for i, r := range rack {
		sorted[i] = unicode.ToUpper(r)
	}
	slices.Sort(sorted)
	return string(unicode.ToUpper(hook)) + ":" + string(sorted)
}

// Interface check
type ServiceInterface interface {
	IsValidWord(word string) bool
	IsLoaded() bool
	WordCount() int
	FindWordsWithRackAndHook(rack []rune, hook rune) []Result
	LoadFromStorage(ctx context.Context, lexicon string) error
	LoadFromFile(ctx context.Context, lexicon, path string) error
	LoadWords(words []string) error
}

var _ ServiceInterface = (*Service)(nil)
