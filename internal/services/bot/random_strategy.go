package bot

import (
	"github.com/mcoot/scrabble-go/internal/dependencies/random"
	"github.com/mcoot/scrabble-go/internal/model"
)

// RandomStrategy picks any playable word
type RandomStrategy struct {
	random random.Random
}

// NewRandomStrategy creates a new RandomStrategy
func NewRandomStrategy(rnd random.Random) *RandomStrategy {
	return &RandomStrategy{random: rnd}
}

// ChooseWord returns a random candidate
func (s *RandomStrategy) ChooseWord(player *model.Player, board *model.Board, candidates []model.PlayableWord) (model.PlayableWord, bool) {
	if len(candidates) == 0 {
		return model.PlayableWord{}, false
	}
	return candidates[s.random.Intn(len(candidates))], true
}
