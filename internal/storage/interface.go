package storage

import "context"

// Storage defines the interface for lexicon persistence. Game state is never
// stored; only the word lists games are played against.
type Storage interface {
	// GetDictionaryWords returns the words of a lexicon, or model.ErrLexiconNotFound
	GetDictionaryWords(ctx context.Context, lexicon string) ([]string, error)
	// SaveDictionaryWords replaces the words of a lexicon
	SaveDictionaryWords(ctx context.Context, lexicon string, words []string) error
	DeleteLexicon(ctx context.Context, lexicon string) error
	ListLexicons(ctx context.Context) ([]string, error)
	LexiconSize(ctx context.Context, lexicon string) (int, error)
}
