package factory

import (
	"time"

	"github.com/mcoot/scrabble-go/internal/dependencies/mocks"
	"github.com/mcoot/scrabble-go/internal/model"
	"github.com/mcoot/scrabble-go/internal/storage/memory"
	"github.com/mcoot/scrabble-go/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies.
// Games validate words against the dictionary.
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	cfg := Config{ValidateWords: true}
	set := settings{
		lexicon:       DefaultLexicon,
		validateWords: true,
		distribution:  model.StandardDistribution(),
	}
	app := newWithDependencies(store, mockClock, mockRandom, cfg, set, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// LoadTestDictionary loads a small dictionary for testing
func (t *TestApp) LoadTestDictionary() error {
	return t.DictionaryService.LoadWords(testutil.Words)
}
