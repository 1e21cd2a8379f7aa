package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mcoot/scrabble-go/internal/factory"
	"github.com/mcoot/scrabble-go/internal/services/scoring"
	redisstorage "github.com/mcoot/scrabble-go/internal/storage/redis"
)

// EnvPrefix prefixes every environment variable the CLI reads
const EnvPrefix = "SCRABBLE"

// Output formats
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config holds CLI configuration
type Config struct {
	DictionaryPath string `mapstructure:"dictionary_path"`
	Lexicon        string `mapstructure:"lexicon"`
	StorageType    string `mapstructure:"storage_type"`
	RedisURL       string `mapstructure:"redis_url"`
	BingoBonus     int    `mapstructure:"bingo_bonus"`
	CacheSize      int    `mapstructure:"cache_size"`
	ValidateWords  bool   `mapstructure:"validate_words"`
	Distribution   string `mapstructure:"distribution"`
	Seed           string `mapstructure:"seed"`
	Output         string `mapstructure:"output"`
	Verbose        bool   `mapstructure:"verbose"`
}

// flag name -> config key
var flagKeys = map[string]string{
	"dictionary":     "dictionary_path",
	"lexicon":        "lexicon",
	"storage":        "storage_type",
	"redis-url":      "redis_url",
	"bingo-bonus":    "bingo_bonus",
	"cache-size":     "cache_size",
	"validate-words": "validate_words",
	"distribution":   "distribution",
	"seed":           "seed",
	"output":         "output",
	"verbose":        "verbose",
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		Lexicon:       factory.DefaultLexicon,
		StorageType:   factory.StorageTypeMemory,
		RedisURL:      redisstorage.DefaultConfig().URL,
		BingoBonus:    scoring.DefaultConfig().BingoBonus,
		CacheSize:     1024,
		ValidateWords: true,
		Distribution:  "standard",
		Output:        OutputText,
	}
}

// newViper creates a viper instance with defaults and environment lookup
func newViper() *viper.Viper {
	v := viper.New()
	defaults := DefaultConfig()
	v.SetDefault("dictionary_path", defaults.DictionaryPath)
	v.SetDefault("lexicon", defaults.Lexicon)
	v.SetDefault("storage_type", defaults.StorageType)
	v.SetDefault("redis_url", defaults.RedisURL)
	v.SetDefault("bingo_bonus", defaults.BingoBonus)
	v.SetDefault("cache_size", defaults.CacheSize)
	v.SetDefault("validate_words", defaults.ValidateWords)
	v.SetDefault("distribution", defaults.Distribution)
	v.SetDefault("seed", defaults.Seed)
	v.SetDefault("output", defaults.Output)
	v.SetDefault("verbose", defaults.Verbose)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// bindFlags makes explicitly set flags take precedence over file and environment values
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return err
		}
	}
	return nil
}

// LoadConfig reads the optional config file and decodes the merged settings
func LoadConfig(v *viper.Viper, configFile string) (*Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", configFile, err)
		}
	}

	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if c.Output != OutputText && c.Output != OutputJSON {
		return nil, fmt.Errorf("invalid output format %q: must be %s or %s", c.Output, OutputText, OutputJSON)
	}
	return c, nil
}

// FactoryConfig converts CLI settings into application factory settings
func (c *Config) FactoryConfig(logger *slog.Logger) factory.Config {
	scoringCfg := scoring.DefaultConfig()
	scoringCfg.BingoBonus = c.BingoBonus

	fc := factory.Config{
		DictionaryPath: c.DictionaryPath,
		Lexicon:        c.Lexicon,
		Logger:         logger,
		StorageType:    c.StorageType,
		Scoring:        scoringCfg,
		CacheSize:      c.CacheSize,
		ValidateWords:  c.ValidateWords,
		Distribution:   c.Distribution,
		Seed:           c.Seed,
	}
	if c.StorageType == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = c.RedisURL
		fc.RedisConfig = &redisCfg
	}
	return fc
}

// Logger builds the CLI's structured logger; verbose switches to debug level
func (c *Config) Logger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if c.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}
