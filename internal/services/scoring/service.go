package scoring

import (
	"fmt"
	"slices"

	"github.com/mcoot/scrabble-go/internal/model"
)

// DefaultBingoBonus is awarded for emptying a full rack in one play
const DefaultBingoBonus = 50

// Config controls scoring rules
type Config struct {
	BingoBonus int // Flat bonus for a play that uses every rack tile
	BingoTiles int // Number of newly placed tiles that earns the bonus
}

// DefaultConfig returns the standard scoring rules
func DefaultConfig() Config {
	return Config{
		BingoBonus: DefaultBingoBonus,
		BingoTiles: model.RackSize,
	}
}

// Service calculates word scores. It holds no game state.
type Service struct {
	cfg Config
}

// New creates a new ScoringService
func New(cfg Config) *Service {
	if cfg.BingoTiles <= 0 {
		cfg.BingoTiles = model.RackSize
	}
	return &Service{cfg: cfg}
}

// CalculateWordScore scores a word laid out on the given squares. Letter and
// word premiums only count on squares in newlyPlaced; tiles that were already
// on the board score face value. Placing BingoTiles new tiles adds the bingo bonus.
func (s *Service) CalculateWordScore(word []*model.Square, newlyPlaced []*model.Square) (int, error) {
	if len(word) == 0 {
		return 0, model.ErrEmptyWord
	}

	fresh := make(map[model.Position]bool, len(newlyPlaced))
	for _, sq := range newlyPlaced {
		if sq != nil {
			fresh[sq.Position()] = true
		}
	}

	sum := 0
	wordMultiplier := 1
	for i, sq := range word {
		if sq == nil || sq.IsEmpty() {
			return 0, fmt.Errorf("%w: square %d of word", model.ErrEmptySquare, i)
		}

		value := sq.Tile.Value
		if fresh[sq.Position()] {
			value *= sq.Bonus().LetterMultiplier()
			wordMultiplier *= sq.Bonus().WordMultiplier()
		}
		sum += value
	}

	return sum*wordMultiplier + s.BingoBonus(len(newlyPlaced)), nil
}

// BingoBonus returns the bonus earned for placing the given number of tiles in one play
func (s *Service) BingoBonus(placed int) int {
	if placed == s.cfg.BingoTiles {
		return s.cfg.BingoBonus
	}
	return 0
}

// DetermineWinner returns the player with the highest score, or nil on a tie
func (s *Service) DetermineWinner(players []*model.Player) *model.Player {
	ranked := s.RankPlayers(players)
	if len(ranked) == 0 {
		return nil
	}
	if len(ranked) > 1 && ranked[0].Score == ranked[1].Score {
		return nil
	}
	return ranked[0]
}

// RankPlayers orders players by descending score, keeping turn order on ties
func (s *Service) RankPlayers(players []*model.Player) []*model.Player {
	ranked := slices.Clone(players)
	slices.SortStableFunc(ranked, func(a, b *model.Player) int {
		return b.Score - a.Score
	})
	return ranked
}

// Interface check
type ServiceInterface interface {
	CalculateWordScore(word []*model.Square, newlyPlaced []*model.Square) (int, error)
	BingoBonus(placed int) int
	DetermineWinner(players []*model.Player) *model.Player
	RankPlayers(players []*model.Player) []*model.Player
}

var _ ServiceInterface = (*Service)(nil)
