package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/scrabble-go/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StorageSuite) TestGetMissingLexicon() {
	_, err := s.storage.GetDictionaryWords(s.ctx, "missing")
	s.ErrorIs(err, model.ErrLexiconNotFound)
}

func (s *StorageSuite) TestSaveAndGetWords() {
	err := s.storage.SaveDictionaryWords(s.ctx, "test", []string{"dog", "cat"})
	s.Require().NoError(err)

	words, err := s.storage.GetDictionaryWords(s.ctx, "test")
	s.Require().NoError(err)
	s.Equal([]string{"cat", "dog"}, words)

	s.True(s.mini.Exists("scrabble:lexicon:test"))
	members, err := s.mini.SMembers("scrabble:idx:lexicons")
	s.Require().NoError(err)
	s.Equal([]string{"test"}, members)
}

func (s *StorageSuite) TestSaveReplacesWords() {
	s.Require().NoError(s.storage.SaveDictionaryWords(s.ctx, "test", []string{"cat", "dog"}))
	s.Require().NoError(s.storage.SaveDictionaryWords(s.ctx, "test", []string{"emu"}))

	words, err := s.storage.GetDictionaryWords(s.ctx, "test")
	s.Require().NoError(err)
	s.Equal([]string{"emu"}, words)

	size, err := s.storage.LexiconSize(s.ctx, "test")
	s.Require().NoError(err)
	s.Equal(1, size)
}

func (s *StorageSuite) TestSaveEmptyRemovesLexicon() {
	s.Require().NoError(s.storage.SaveDictionaryWords(s.ctx, "test", []string{"cat"}))
	s.Require().NoError(s.storage.SaveDictionaryWords(s.ctx, "test", nil))

	_, err := s.storage.GetDictionaryWords(s.ctx, "test")
	s.ErrorIs(err, model.ErrLexiconNotFound)

	names, err := s.storage.ListLexicons(s.ctx)
	s.Require().NoError(err)
	s.Empty(names)
}

func (s *StorageSuite) TestListAndDeleteLexicons() {
	s.Require().NoError(s.storage.SaveDictionaryWords(s.ctx, "b", []string{"cat"}))
	s.Require().NoError(s.storage.SaveDictionaryWords(s.ctx, "a", []string{"dog"}))

	names, err := s.storage.ListLexicons(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"a", "b"}, names)

	s.Require().NoError(s.storage.DeleteLexicon(s.ctx, "a"))
	names, err = s.storage.ListLexicons(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"b"}, names)
}

func (s *StorageSuite) TestLexiconTTL() {
	s.storage.cfg.LexiconTTL = time.Hour
	s.Require().NoError(s.storage.SaveDictionaryWords(s.ctx, "test", []string{"cat"}))

	s.Equal(time.Hour, s.mini.TTL("scrabble:lexicon:test"))

	s.mini.FastForward(2 * time.Hour)

	_, err := s.storage.GetDictionaryWords(s.ctx, "test")
	s.ErrorIs(err, model.ErrLexiconNotFound)

	names, err := s.storage.ListLexicons(s.ctx)
	s.Require().NoError(err)
	s.Empty(names)
}

func (s *StorageSuite) TestNewRejectsBadURL() {
	_, err := New(Config{URL: "not a url"})
	s.Error(err)
}

func (s *StorageSuite) TestNewConnects() {
	cfg := DefaultConfig()
	cfg.URL = "redis://" + s.mini.Addr()

	st, err := New(cfg)
	s.Require().NoError(err)
	defer st.Close()

	s.Require().NoError(st.SaveDictionaryWords(s.ctx, "test", []string{"cat"}))
	size, err := st.LexiconSize(s.ctx, "test")
	s.Require().NoError(err)
	s.Equal(1, size)
}
