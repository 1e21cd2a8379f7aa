package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLexiconCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lexicon",
		Short: "Lexicon storage commands",
	}

	cmd.AddCommand(newLexiconImportCmd())
	cmd.AddCommand(newLexiconListCmd())
	cmd.AddCommand(newLexiconDeleteCmd())

	return cmd
}

func newLexiconImportCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a word list file (one word per line) into storage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if name == "" {
				name = app.Lexicon()
			}

			if err := app.DictionaryService.LoadFromFile(ctx, name, args[0]); err != nil {
				return err
			}
			size, err := app.Storage.LexiconSize(ctx, name)
			if err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(ImportResult{Lexicon: name, Words: size})
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Lexicon name (defaults to --lexicon)")

	return cmd
}

func newLexiconListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored lexicons",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			names, err := app.Storage.ListLexicons(ctx)
			if err != nil {
				return err
			}

			result := LexiconList{Lexicons: []LexiconInfo{}}
			for _, name := range names {
				size, err := app.Storage.LexiconSize(ctx, name)
				if err != nil {
					return err
				}
				result.Lexicons = append(result.Lexicons, LexiconInfo{Name: name, Words: size})
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

func newLexiconDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a stored lexicon",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Storage.DeleteLexicon(cmd.Context(), args[0]); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).PrintMessage(fmt.Sprintf("Deleted lexicon %s", args[0]))
			return nil
		},
	}
}
