package redis

import (
	"context"
	"slices"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/scrabble-go/internal/model"
	"github.com/mcoot/scrabble-go/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) GetDictionaryWords(ctx context.Context, lexicon string) ([]string, error) {
	key := lexiconKey(lexicon)

	exists, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, model.ErrLexiconNotFound
	}

	words, err := s.client.SMembers(ctx, key).Result()
	if err != nil {
		return nil, err
	}
	slices.Sort(words)
	return words, nil
}

func (s *Storage) SaveDictionaryWords(ctx context.Context, lexicon string, words []string) error {
	key := lexiconKey(lexicon)

	// Replace the word set and register the lexicon atomically
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, key)

	if len(words) > 0 {
		members := make([]interface{}, len(words))
		for i, w := range words {
			members[i] = w
		}
		pipe.SAdd(ctx, key, members...)
		if s.cfg.LexiconTTL > 0 {
			pipe.Expire(ctx, key, s.cfg.LexiconTTL)
		}
		pipe.SAdd(ctx, lexiconIndexKey(), lexicon)
	} else {
		pipe.SRem(ctx, lexiconIndexKey(), lexicon)
	}

	_, err := pipe.Exec(ctx)
	return err
}

func (s *Storage) DeleteLexicon(ctx context.Context, lexicon string) error {
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, lexiconKey(lexicon))
	pipe.SRem(ctx, lexiconIndexKey(), lexicon)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *Storage) ListLexicons(ctx context.Context) ([]string, error) {
	names, err := s.client.SMembers(ctx, lexiconIndexKey()).Result()
	if err != nil {
		return nil, err
	}

	// Drop index entries whose word set has expired
	var live []string
	for _, name := range names {
		exists, err := s.client.Exists(ctx, lexiconKey(name)).Result()
		if err != nil {
			return nil, err
		}
		if exists > 0 {
			live = append(live, name)
		}
	}
	slices.Sort(live)
	return live, nil
}

func (s *Storage) LexiconSize(ctx context.Context, lexicon string) (int, error) {
	n, err := s.client.SCard(ctx, lexiconKey(lexicon)).Result()
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, model.ErrLexiconNotFound
	}
	return int(n), nil
}
