package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/scrabble-go/internal/factory"
)

var (
	cfg *Config
	app *factory.App
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	defaults := DefaultConfig()
	cfg = defaults
	app = nil

	var configFile string

	rootCmd := &cobra.Command{
		Use:   "scrabble",
		Short: "CLI tool for the crossword tile game engine",
		Long: `scrabble drives the crossword tile game rules engine.

It can play bot-only games, list the words a rack can play, and manage the
word lists kept in lexicon storage (memory or Redis).`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v := newViper()
			if err := bindFlags(v, cmd.Flags()); err != nil {
				return err
			}
			loaded, err := LoadConfig(v, configFile)
			if err != nil {
				return err
			}
			cfg = loaded

			logger := cfg.Logger(cmd.ErrOrStderr())
			app, err = factory.New(cfg.FactoryConfig(logger))
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if app == nil {
				return nil
			}
			return app.Close()
		},
		SilenceUsage: true,
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "Config file (YAML, TOML or JSON)")
	flags.String("dictionary", defaults.DictionaryPath, "Word list file to load (env: SCRABBLE_DICTIONARY_PATH)")
	flags.String("lexicon", defaults.Lexicon, "Lexicon name in storage (env: SCRABBLE_LEXICON)")
	flags.String("storage", defaults.StorageType, "Lexicon storage: memory, redis (env: SCRABBLE_STORAGE_TYPE)")
	flags.String("redis-url", defaults.RedisURL, "Redis URL (env: SCRABBLE_REDIS_URL)")
	flags.Int("bingo-bonus", defaults.BingoBonus, "Bonus for playing a full rack (env: SCRABBLE_BINGO_BONUS)")
	flags.Int("cache-size", defaults.CacheSize, "Dictionary query cache entries (env: SCRABBLE_CACHE_SIZE)")
	flags.Bool("validate-words", defaults.ValidateWords, "Reject words missing from the dictionary (env: SCRABBLE_VALIDATE_WORDS)")
	flags.String("distribution", defaults.Distribution, "Tile set: standard, english (env: SCRABBLE_DISTRIBUTION)")
	flags.String("seed", defaults.Seed, "Seed for reproducible shuffles (env: SCRABBLE_SEED)")
	flags.StringP("output", "o", defaults.Output, "Output format: text, json")
	flags.BoolP("verbose", "v", defaults.Verbose, "Verbose logging")

	// Add subcommands
	rootCmd.AddCommand(newSelfPlayCmd())
	rootCmd.AddCommand(newMovesCmd())
	rootCmd.AddCommand(newLexiconCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
