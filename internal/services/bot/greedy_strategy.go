package bot

import (
	"log/slog"

	"github.com/mcoot/scrabble-go/internal/model"
)

// GreedyStrategy plays the highest scoring word; ties go to the earliest candidate
type GreedyStrategy struct {
	scorer Scorer
	logger *slog.Logger
}

// NewGreedyStrategy creates a new GreedyStrategy
func NewGreedyStrategy(scorer Scorer, logger *slog.Logger) *GreedyStrategy {
	return &GreedyStrategy{scorer: scorer, logger: logger}
}

// ChooseWord returns the candidate worth the most points
func (s *GreedyStrategy) ChooseWord(player *model.Player, board *model.Board, candidates []model.PlayableWord) (model.PlayableWord, bool) {
	var (
		best  model.PlayableWord
		found bool
		top   int
	)
	for _, pw := range candidates {
		score, err := s.scorer.Score(player, board, pw)
		if err != nil {
			s.logger.Debug("skipping unscorable word",
				slog.String("word", pw.Word),
				slog.String("error", err.Error()),
			)
			continue
		}
		if !found || score > top {
			best, top, found = pw, score, true
		}
	}
	return best, found
}
