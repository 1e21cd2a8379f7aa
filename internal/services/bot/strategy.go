package bot

import "github.com/mcoot/scrabble-go/internal/model"

// Strategy defines how a bot chooses among the words it could play
type Strategy interface {
	// ChooseWord selects one of the candidates; false means the bot declines to play
	ChooseWord(player *model.Player, board *model.Board, candidates []model.PlayableWord) (model.PlayableWord, bool)
}

// Scorer values a candidate word for a player without changing the board
type Scorer interface {
	Score(player *model.Player, board *model.Board, pw model.PlayableWord) (int, error)
}
