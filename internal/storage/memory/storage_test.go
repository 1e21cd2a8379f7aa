package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/scrabble-go/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) TestGetMissingLexicon() {
	_, err := s.storage.GetDictionaryWords(s.ctx, "missing")
	s.ErrorIs(err, model.ErrLexiconNotFound)
}

func (s *StorageSuite) TestSaveAndGetWords() {
	err := s.storage.SaveDictionaryWords(s.ctx, "test", []string{"cat", "dog", "cat"})
	s.Require().NoError(err)

	words, err := s.storage.GetDictionaryWords(s.ctx, "test")
	s.Require().NoError(err)
	s.ElementsMatch([]string{"cat", "dog"}, words)

	size, err := s.storage.LexiconSize(s.ctx, "test")
	s.Require().NoError(err)
	s.Equal(2, size)
}

func (s *StorageSuite) TestSaveReplacesWords() {
	s.Require().NoError(s.storage.SaveDictionaryWords(s.ctx, "test", []string{"cat"}))
	s.Require().NoError(s.storage.SaveDictionaryWords(s.ctx, "test", []string{"dog"}))

	words, err := s.storage.GetDictionaryWords(s.ctx, "test")
	s.Require().NoError(err)
	s.Equal([]string{"dog"}, words)
}

func (s *StorageSuite) TestReturnedWordsAreCopies() {
	s.Require().NoError(s.storage.SaveDictionaryWords(s.ctx, "test", []string{"cat"}))

	words, _ := s.storage.GetDictionaryWords(s.ctx, "test")
	words[0] = "mutated"

	again, _ := s.storage.GetDictionaryWords(s.ctx, "test")
	s.Equal([]string{"cat"}, again)
}

func (s *StorageSuite) TestListAndDeleteLexicons() {
	s.Require().NoError(s.storage.SaveDictionaryWords(s.ctx, "b", []string{"cat"}))
	s.Require().NoError(s.storage.SaveDictionaryWords(s.ctx, "a", []string{"dog"}))

	names, err := s.storage.ListLexicons(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"a", "b"}, names)

	s.Require().NoError(s.storage.DeleteLexicon(s.ctx, "a"))
	names, _ = s.storage.ListLexicons(s.ctx)
	s.Equal([]string{"b"}, names)

	_, err = s.storage.LexiconSize(s.ctx, "a")
	s.ErrorIs(err, model.ErrLexiconNotFound)
}
