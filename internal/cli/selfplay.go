package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/scrabble-go/internal/model"
	"github.com/mcoot/scrabble-go/internal/services/bot"
)

func newSelfPlayCmd() *cobra.Command {
	var strategies []string

	cmd := &cobra.Command{
		Use:   "selfplay",
		Short: "Play a full game between bots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := app.LoadDictionary(ctx); err != nil {
				return fmt.Errorf("loading dictionary: %w", err)
			}

			g := app.NewGame()
			for i, strategy := range strategies {
				p, err := app.BotService.NewBotPlayer(fmt.Sprintf("Bot %d", i+1), strings.ToLower(strategy))
				if err != nil {
					return err
				}
				if err := g.AddPlayer(p); err != nil {
					return err
				}
			}
			if err := g.Start(); err != nil {
				return err
			}

			actions, err := app.BotService.ProcessBotActions(ctx, g)
			if err != nil {
				return err
			}

			result := SelfPlayResult{
				GameID: string(g.ID()),
				State:  string(g.State()),
				Board:  strings.Split(strings.TrimRight(g.Board().String(), "\n"), "\n"),
			}
			for _, a := range actions {
				switch a.Type {
				case bot.ActionStalled:
					result.Stalled = true
				case bot.ActionGameComplete:
				default:
					result.Moves = append(result.Moves, MoveSummary{
						PlayerID: string(a.PlayerID),
						Type:     string(a.Type),
						Word:     a.Word,
						Score:    a.Score,
					})
				}
			}
			for _, p := range app.ScoringService.RankPlayers(g.Players()) {
				result.Scores = append(result.Scores, PlayerScore{
					PlayerID:    string(p.ID),
					DisplayName: p.DisplayName,
					Strategy:    model.BotStrategyDisplayName(p.BotStrategy),
					Score:       p.Score,
				})
			}
			if w := app.ScoringService.DetermineWinner(g.Players()); w != nil {
				name := w.DisplayName
				result.Winner = &name
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&strategies, "bots", []string{model.BotStrategyGreedy, model.BotStrategyGreedy},
		"Strategies of the bots taking part: "+strings.Join(model.ValidBotStrategies(), ", "))

	return cmd
}
