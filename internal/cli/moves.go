package cli

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/mcoot/scrabble-go/internal/model"
)

// rackView presents a lone rack and board to the move generator
type rackView struct {
	board  *model.Board
	player *model.Player
}

func (v rackView) Board() *model.Board          { return v.board }
func (v rackView) CurrentPlayer() *model.Player { return v.player }

func newMovesCmd() *cobra.Command {
	var (
		rack  string
		limit int
	)

	cmd := &cobra.Command{
		Use:   "moves",
		Short: "List the opening words a rack can play",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			player, err := rackPlayer(rack)
			if err != nil {
				return err
			}
			if err := app.LoadDictionary(cmd.Context()); err != nil {
				return fmt.Errorf("loading dictionary: %w", err)
			}

			board := app.BoardService.CreateBoard(nil)
			view := rackView{board: board, player: player}

			var options []MoveOption
			for _, pw := range app.Generator.GetPlayableWordsList(view, app.DictionaryService) {
				score, err := app.Generator.Score(player, board, pw)
				if err != nil {
					return err
				}
				options = append(options, MoveOption{
					Word:      pw.Word,
					Row:       pw.Start.Row,
					Col:       pw.Start.Col,
					Direction: string(pw.Direction),
					Score:     score,
				})
			}
			slices.SortStableFunc(options, func(a, b MoveOption) int {
				return cmp.Compare(b.Score, a.Score)
			})
			if limit > 0 && len(options) > limit {
				options = options[:limit]
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(MoveList{Rack: player.Rack.String(), Moves: options})
			return nil
		},
	}

	cmd.Flags().StringVar(&rack, "rack", "", "Rack letters, ? for a blank")
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of moves to show (0 for all)")
	_ = cmd.MarkFlagRequired("rack")

	return cmd
}

// rackPlayer builds a player holding the given letters valued by the configured tile set
func rackPlayer(letters string) (*model.Player, error) {
	dist, ok := model.DistributionByName(cfg.Distribution)
	if !ok {
		return nil, fmt.Errorf("unknown tile distribution: %s", cfg.Distribution)
	}

	player := model.NewHumanPlayer("you", "You")
	for i, r := range strings.ToUpper(letters) {
		if r != model.BlankLetter && (r < 'A' || r > 'Z') {
			return nil, fmt.Errorf("%w: %q is not a tile", model.ErrInvalidMoveShape, r)
		}
		t := model.NewTile(model.TileID(i+1), r, dist.ValueOf(unicode.ToUpper(r)))
		if err := player.Rack.Add(t); err != nil {
			return nil, err
		}
	}
	if player.Rack.IsEmpty() {
		return nil, fmt.Errorf("%w: rack is empty", model.ErrInvalidMoveShape)
	}
	return player, nil
}
