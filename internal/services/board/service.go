package board

import (
	"log/slog"
	"unicode"

	"github.com/mcoot/scrabble-go/internal/model"
)

// Service provides board geometry and placement rules
type Service struct {
	logger *slog.Logger
}

// New creates a new BoardService
func New(logger *slog.Logger) *Service {
	return &Service{
		logger: logger.With(slog.String("component", "board")),
	}
}

// CreateBoard initializes an empty board; a nil layout gives the standard one
func (s *Service) CreateBoard(layout model.Layout) *model.Board {
	if layout == nil {
		layout = model.StandardLayout()
	}
	board := model.NewBoard(layout)
	s.logger.Debug("board created", slog.Int("size", board.Size))
	return board
}

// ValidatePlacement checks if a position is valid and empty
func (s *Service) ValidatePlacement(board *model.Board, pos model.Position) error {
	if !board.IsValidPosition(pos) {
		return model.ErrInvalidBoardBounds
	}
	if board.IsOccupied(pos) {
		return model.ErrCellOccupied
	}
	return nil
}

// ValidateLetter checks if a letter is a valid A-Z character
func ValidateLetter(letter rune) error {
	upper := unicode.ToUpper(letter)
	if upper < 'A' || upper > 'Z' {
		return model.ErrInvalidMoveShape
	}
	return nil
}

// Fits reports whether a word of the given length starting at start stays on the board
func (s *Service) Fits(board *model.Board, start model.Position, dir model.Direction, length int) bool {
	if length <= 0 {
		return false
	}
	return board.IsValidPosition(start) && board.IsValidPosition(start.Step(dir, length-1))
}

// IsBounded reports whether the squares just before the start and just after
// the end of a word are free, so the word does not run into other tiles
func (s *Service) IsBounded(board *model.Board, start model.Position, dir model.Direction, length int) bool {
	return !board.IsOccupied(start.Step(dir, -1)) && !board.IsOccupied(start.Step(dir, length))
}

// Touches reports whether any orthogonal neighbour of pos holds a tile
func (s *Service) Touches(board *model.Board, pos model.Position) bool {
	for _, dir := range model.Directions() {
		if board.IsOccupied(pos.Step(dir, -1)) || board.IsOccupied(pos.Step(dir, 1)) {
			return true
		}
	}
	return false
}

// CrossWord returns the word that would run along dir through pos if letter
// were placed there, joining the tiles on either side. It returns "" when
// no tile borders pos along dir.
func (s *Service) CrossWord(board *model.Board, pos model.Position, dir model.Direction, letter rune) string {
	before := s.run(board, pos, dir, -1)
	after := s.run(board, pos, dir, 1)
	if len(before) == 0 && len(after) == 0 {
		return ""
	}

	word := make([]rune, 0, len(before)+len(after)+1)
	for i := len(before) - 1; i >= 0; i-- {
		word = append(word, before[i].Letter())
	}
	word = append(word, unicode.ToUpper(letter))
	for _, sq := range after {
		word = append(word, sq.Letter())
	}
	return string(word)
}

// WordSquares returns the contiguous run of occupied squares along dir that
// contains pos, in reading order. pos itself must be occupied.
func (s *Service) WordSquares(board *model.Board, pos model.Position, dir model.Direction) []*model.Square {
	if !board.IsOccupied(pos) {
		return nil
	}
	before := s.run(board, pos, dir, -1)
	after := s.run(board, pos, dir, 1)

	out := make([]*model.Square, 0, len(before)+len(after)+1)
	for i := len(before) - 1; i >= 0; i-- {
		out = append(out, before[i])
	}
	out = append(out, board.Square(pos))
	return append(out, after...)
}

// Spell joins the letters on the squares
func Spell(squares []*model.Square) string {
	word := make([]rune, 0, len(squares))
	for _, sq := range squares {
		word = append(word, sq.Letter())
	}
	return string(word)
}

// run collects occupied squares stepping away from pos (exclusive) in one
// direction, nearest first
func (s *Service) run(board *model.Board, pos model.Position, dir model.Direction, step int) []*model.Square {
	var out []*model.Square
	for cur := pos.Step(dir, step); board.IsOccupied(cur); cur = cur.Step(dir, step) {
		out = append(out, board.Square(cur))
	}
	return out
}

// Interface for dependency injection
type ServiceInterface interface {
	CreateBoard(layout model.Layout) *model.Board
	ValidatePlacement(board *model.Board, pos model.Position) error
	Fits(board *model.Board, start model.Position, dir model.Direction, length int) bool
	IsBounded(board *model.Board, start model.Position, dir model.Direction, length int) bool
	Touches(board *model.Board, pos model.Position) bool
	CrossWord(board *model.Board, pos model.Position, dir model.Direction, letter rune) string
	WordSquares(board *model.Board, pos model.Position, dir model.Direction) []*model.Square
}

var _ ServiceInterface = (*Service)(nil)
