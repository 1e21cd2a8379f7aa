package factory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/scrabble-go/internal/dependencies/clock"
	"github.com/mcoot/scrabble-go/internal/dependencies/random"
	"github.com/mcoot/scrabble-go/internal/model"
	"github.com/mcoot/scrabble-go/internal/services/board"
	"github.com/mcoot/scrabble-go/internal/services/bot"
	"github.com/mcoot/scrabble-go/internal/services/dictionary"
	"github.com/mcoot/scrabble-go/internal/services/game"
	"github.com/mcoot/scrabble-go/internal/services/movegen"
	"github.com/mcoot/scrabble-go/internal/services/scoring"
	"github.com/mcoot/scrabble-go/internal/storage"
	"github.com/mcoot/scrabble-go/internal/storage/memory"
	redisstorage "github.com/mcoot/scrabble-go/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// DefaultLexicon names the word list used when none is configured
const DefaultLexicon = "default"

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	DictionaryService *dictionary.Service
	BoardService      *board.Service
	ScoringService    *scoring.Service
	Generator         *movegen.Generator
	BotService        *bot.Service

	settings settings
	logger   *slog.Logger
}

// Config holds configuration for the application factory
type Config struct {
	// DictionaryPath is the path to a word list file (optional)
	// If empty, LoadDictionary reads the lexicon from storage
	DictionaryPath string
	// Lexicon names the word list in storage; defaults to DefaultLexicon
	Lexicon string
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// Scoring holds the bingo settings; zero value uses scoring.DefaultConfig()
	Scoring scoring.Config
	// CacheSize bounds the dictionary query cache
	CacheSize int
	// ValidateWords makes games reject words missing from the dictionary
	ValidateWords bool
	// Distribution names the tile set ("standard" or "english")
	Distribution string
	// Seed makes shuffles and IDs reproducible when set
	Seed string
}

type settings struct {
	dictionaryPath string
	lexicon        string
	validateWords  bool
	distribution   model.Distribution
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	set, err := newSettings(cfg)
	if err != nil {
		return nil, err
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()
	if cfg.Seed != "" {
		rnd = random.NewSeeded([]byte(cfg.Seed))
	}

	return newWithDependencies(store, clk, rnd, cfg, set, logger), nil
}

func newSettings(cfg Config) (settings, error) {
	dist, ok := model.DistributionByName(cfg.Distribution)
	if !ok {
		return settings{}, fmt.Errorf("unknown tile distribution: %s", cfg.Distribution)
	}
	lexicon := cfg.Lexicon
	if lexicon == "" {
		lexicon = DefaultLexicon
	}
	return settings{
		dictionaryPath: cfg.DictionaryPath,
		lexicon:        lexicon,
		validateWords:  cfg.ValidateWords,
		distribution:   dist,
	}, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, cfg Config, set settings, logger *slog.Logger) *App {
	scoringCfg := cfg.Scoring
	if scoringCfg.BingoTiles == 0 {
		scoringCfg = scoring.DefaultConfig()
	}

	// Create services
	dictService := dictionary.New(store, cfg.CacheSize, logger)
	boardService := board.New(logger)
	scoringService := scoring.New(scoringCfg)
	generator := movegen.New(boardService, scoringService, logger)
	strategies := map[string]bot.Strategy{
		model.BotStrategyRandom: bot.NewRandomStrategy(rnd),
		model.BotStrategyGreedy: bot.NewGreedyStrategy(generator, logger),
	}
	botService := bot.NewService(generator, dictService, strategies, rnd, logger)

	return &App{
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		DictionaryService: dictService,
		BoardService:      boardService,
		ScoringService:    scoringService,
		Generator:         generator,
		BotService:        botService,
		settings:          set,
		logger:            logger,
	}
}

// LoadDictionary fills the dictionary from the configured file, or from
// storage when no file is configured
func (a *App) LoadDictionary(ctx context.Context) error {
	if a.settings.dictionaryPath != "" {
		return a.DictionaryService.LoadFromFile(ctx, a.settings.lexicon, a.settings.dictionaryPath)
	}
	return a.DictionaryService.LoadFromStorage(ctx, a.settings.lexicon)
}

// Lexicon returns the configured lexicon name
func (a *App) Lexicon() string {
	return a.settings.lexicon
}

// NewGame creates a game on the standard board with the configured tile set
func (a *App) NewGame() *game.Game {
	cfg := game.Config{Distribution: a.settings.distribution}
	if a.settings.validateWords {
		cfg.Validator = a.DictionaryService
	}
	return game.New(cfg, a.BoardService, a.ScoringService, a.Clock, a.Random, a.logger)
}

// Close releases the storage backend's connections
func (a *App) Close() error {
	if closer, ok := a.Storage.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
