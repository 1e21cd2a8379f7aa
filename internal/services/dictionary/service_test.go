package dictionary

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/scrabble-go/internal/model"
	"github.com/mcoot/scrabble-go/internal/storage/memory"
	"github.com/mcoot/scrabble-go/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.service = New(s.storage, 16, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) TestIsNotLoadedByDefault() {
	s.False(s.service.IsLoaded())
	s.Equal(0, s.service.WordCount())
	s.Nil(s.service.FindWordsWithRackAndHook([]rune("CA"), 'T'))
}

func (s *ServiceSuite) TestLoadWords() {
	err := s.service.LoadWords([]string{"apple", "banana", "cherry"})
	s.Require().NoError(err)

	s.True(s.service.IsLoaded())
	s.Equal(3, s.service.WordCount())
}

func (s *ServiceSuite) TestIsValidWordCaseInsensitive() {
	_ = s.service.LoadWords([]string{"Apple", "BANANA"})

	s.True(s.service.IsValidWord("apple"))
	s.True(s.service.IsValidWord("APPLE"))
	s.True(s.service.IsValidWord("banana"))
	s.False(s.service.IsValidWord("grape"))
}

func (s *ServiceSuite) TestIsValidWordRequiresMinLength() {
	_ = s.service.LoadWords([]string{"a", "ab", "abc"})

	s.False(s.service.IsValidWord("a"))
	s.True(s.service.IsValidWord("ab"))
	s.True(s.service.IsValidWord("abc"))
	s.Equal(2, s.service.WordCount())
}

func (s *ServiceSuite) TestIsValidWordWhenNotLoaded() {
	s.False(s.service.IsValidWord("apple"))
}

func (s *ServiceSuite) TestFindWordsWithRackAndHook() {
	_ = s.service.LoadWords([]string{"cat", "act", "tac", "dog"})

	results := s.service.FindWordsWithRackAndHook([]rune("ca"), 't')
	s.Len(results, 3)
	s.Contains(results, Result{Word: "TAC", Path: "T>AC"})
}

func (s *ServiceSuite) TestFindResultsAreCachedCopies() {
	_ = s.service.LoadWords([]string{"cat", "act", "tac"})

	first := s.service.FindWordsWithRackAndHook([]rune("CA"), 'T')
	first[0] = Result{Word: "MUTATED"}

	// Rack order does not matter for the cache key
	second := s.service.FindWordsWithRackAndHook([]rune("AC"), 'T')
	s.NotContains(second, Result{Word: "MUTATED"})
	s.Len(second, 3)
	s.Equal(1, s.service.cache.Len())
}

func (s *ServiceSuite) TestReloadPurgesCache() {
	_ = s.service.LoadWords([]string{"cat"})
	s.Len(s.service.FindWordsWithRackAndHook([]rune("CA"), 'T'), 1)

	_ = s.service.LoadWords([]string{"act", "tac"})
	results := s.service.FindWordsWithRackAndHook([]rune("CA"), 'T')
	s.Len(results, 2)
	s.NotContains(results, Result{Word: "CAT", Path: "TAC>"})
}

func (s *ServiceSuite) TestLoadFromStorage() {
	err := s.storage.SaveDictionaryWords(s.ctx, "test", []string{"test", "word", "example"})
	s.Require().NoError(err)

	err = s.service.LoadFromStorage(s.ctx, "test")
	s.Require().NoError(err)

	s.True(s.service.IsLoaded())
	s.Equal("test", s.service.Lexicon())
	s.True(s.service.IsValidWord("word"))
}

func (s *ServiceSuite) TestLoadFromStorageMissingLexicon() {
	err := s.service.LoadFromStorage(s.ctx, "missing")
	s.ErrorIs(err, model.ErrLexiconNotFound)
	s.False(s.service.IsLoaded())
}

func (s *ServiceSuite) TestLoadFromFile() {
	path := filepath.Join(s.T().TempDir(), "words.txt")
	content := "# comment\nhello\n\n  world  \nfoo\n"
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o600))

	err := s.service.LoadFromFile(s.ctx, "custom", path)
	s.Require().NoError(err)

	s.Equal(3, s.service.WordCount())
	s.True(s.service.IsValidWord("world"))

	stored, err := s.storage.GetDictionaryWords(s.ctx, "custom")
	s.Require().NoError(err)
	s.ElementsMatch([]string{"hello", "world", "foo"}, stored)
}

func (s *ServiceSuite) TestLoadFromMissingFile() {
	err := s.service.LoadFromFile(s.ctx, "custom", filepath.Join(s.T().TempDir(), "nope.txt"))
	s.Error(err)
	s.False(s.service.IsLoaded())
}
