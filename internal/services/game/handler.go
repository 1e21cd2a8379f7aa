package game

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/mcoot/scrabble-go/internal/model"
	"github.com/mcoot/scrabble-go/internal/services/board"
	"github.com/mcoot/scrabble-go/internal/services/scoring"
)

// MinExchangeBag is the fewest tiles the bag must hold for an exchange
const MinExchangeBag = model.RackSize

// WordValidator decides whether a formed word is allowed
type WordValidator interface {
	IsValidWord(word string) bool
}

// MoveHandler validates, applies and reverts moves against a board and bag
type MoveHandler struct {
	board     *model.Board
	bag       *model.Bag
	boards    *board.Service
	scoring   *scoring.Service
	validator WordValidator
	logger    *slog.Logger
}

// NewMoveHandler creates a handler over the game's board and bag; validator may be nil
func NewMoveHandler(
	b *model.Board,
	bag *model.Bag,
	boardService *board.Service,
	scoringService *scoring.Service,
	validator WordValidator,
	logger *slog.Logger,
) *MoveHandler {
	return &MoveHandler{
		board:     b,
		bag:       bag,
		boards:    boardService,
		scoring:   scoringService,
		validator: validator,
		logger:    logger,
	}
}

// Validate checks a move for the player without changing anything
func (h *MoveHandler) Validate(move model.Move, player *model.Player) error {
	switch m := move.(type) {
	case *model.PlayMove:
		return h.validatePlay(m, player)
	case *model.ExchangeMove:
		return h.validateExchange(m, player)
	case *model.PassMove:
		return nil
	default:
		return fmt.Errorf("%w: unknown move %T", model.ErrInvalidMoveShape, move)
	}
}

func (h *MoveHandler) validatePlay(m *model.PlayMove, player *model.Player) error {
	tiles := m.Tiles()
	start, dir := m.Start(), m.Direction()

	if !h.boards.Fits(h.board, start, dir, len(tiles)) {
		return fmt.Errorf("%w: %s from (%d,%d)", model.ErrInvalidBoardBounds, m.Word(), start.Row, start.Col)
	}
	if !h.boards.IsBounded(h.board, start, dir, len(tiles)) {
		return fmt.Errorf("%w: %s runs into adjacent tiles", model.ErrInvalidMoveShape, m.Word())
	}

	firstPlay := h.board.IsEmpty()
	used := make(map[model.TileID]bool, len(tiles))
	placed, connected, coversCentre := 0, false, false
	var crossWords []string

	for i, t := range tiles {
		pos := m.Position(i)
		sq := h.board.Square(pos)
		if pos == h.board.Center() {
			coversCentre = true
		}

		if !sq.IsEmpty() {
			if sq.Letter() != t.Letter {
				return fmt.Errorf("%w: (%d,%d) holds %c", model.ErrCellOccupied, pos.Row, pos.Col, sq.Letter())
			}
			connected = true
			continue
		}

		if used[t.ID] {
			return fmt.Errorf("%w: tile %d used twice", model.ErrRackMismatch, t.ID)
		}
		used[t.ID] = true

		onRack, ok := player.Rack.Get(t.ID)
		if !ok {
			return fmt.Errorf("%w: tile %d (%s)", model.ErrRackMismatch, t.ID, t)
		}
		if onRack.IsBlank() != t.IsBlank() || (!t.IsBlank() && !onRack.SameFace(t)) {
			return fmt.Errorf("%w: tile %d is %s on the rack", model.ErrRackMismatch, t.ID, onRack)
		}
		if t.IsBlank() {
			if err := board.ValidateLetter(t.Letter); err != nil {
				return fmt.Errorf("%w: blank tile %d has no letter", model.ErrInvalidMoveShape, t.ID)
			}
		}

		placed++
		if h.boards.Touches(h.board, pos) {
			connected = true
		}
		if cross := h.boards.CrossWord(h.board, pos, dir.Perpendicular(), t.Letter); cross != "" {
			crossWords = append(crossWords, cross)
		}
	}

	if placed == 0 {
		return fmt.Errorf("%w: play places no new tiles", model.ErrInvalidMoveShape)
	}
	if firstPlay && !coversCentre {
		return fmt.Errorf("%w: first word must cover the centre", model.ErrIllegalPlacement)
	}
	if !firstPlay && !connected {
		return model.ErrIllegalPlacement
	}

	if h.validator != nil {
		formed := crossWords
		if len(tiles) > 1 {
			formed = append([]string{m.Word()}, crossWords...)
		}
		if len(formed) == 0 {
			return fmt.Errorf("%w: %s", model.ErrIllegalWordFormed, m.Word())
		}
		for _, word := range formed {
			if !h.validator.IsValidWord(word) {
				return fmt.Errorf("%w: %s", model.ErrIllegalWordFormed, word)
			}
		}
	}
	return nil
}

func (h *MoveHandler) validateExchange(m *model.ExchangeMove, player *model.Player) error {
	if h.bag.Len() < MinExchangeBag {
		return fmt.Errorf("%w: %d left", model.ErrInsufficientBagForExchange, h.bag.Len())
	}
	used := make(map[model.TileID]bool)
	for _, t := range m.Tiles() {
		if used[t.ID] || !player.Rack.Contains(t.ID) {
			return fmt.Errorf("%w: tile %d (%s)", model.ErrRackMismatch, t.ID, t)
		}
		used[t.ID] = true
	}
	return nil
}

// Apply carries out a validated move. With replay set the move is being
// redone and draws exactly the tiles it drew the first time.
func (h *MoveHandler) Apply(move model.Move, player *model.Player, replay bool) error {
	var (
		outcome model.Outcome
		err     error
	)
	switch m := move.(type) {
	case *model.PlayMove:
		outcome, err = h.applyPlay(m, player, replay)
	case *model.ExchangeMove:
		outcome, err = h.applyExchange(m, player, replay)
	case *model.PassMove:
	default:
		return fmt.Errorf("%w: unknown move %T", model.ErrInvalidMoveShape, move)
	}
	if err != nil {
		return err
	}

	if replay {
		if outcome.ScoreGained != move.Outcome().ScoreGained {
			return fmt.Errorf("%w: replayed %s scored %d, recorded %d",
				model.ErrCorruptedHistory, move.Type(), outcome.ScoreGained, move.Outcome().ScoreGained)
		}
		return nil
	}
	return move.RecordOutcome(outcome)
}

func (h *MoveHandler) applyPlay(m *model.PlayMove, player *model.Player, replay bool) (model.Outcome, error) {
	var word, placed []*model.Square
	var positions []model.Position
	for i, t := range m.Tiles() {
		pos := m.Position(i)
		sq := h.board.Square(pos)
		if sq.IsEmpty() {
			h.board.Place(pos, t)
			placed = append(placed, sq)
			positions = append(positions, pos)
		}
		word = append(word, sq)
	}

	score, err := h.scoring.CalculateWordScore(word, placed)
	if err != nil {
		for _, pos := range positions {
			h.board.Lift(pos)
		}
		return model.Outcome{}, err
	}

	for _, pos := range positions {
		if _, err := player.Rack.Remove(h.board.Square(pos).Tile.ID); err != nil {
			return model.Outcome{}, err
		}
	}
	player.Score += score

	drawn, err := h.refill(player, m, replay)
	if err != nil {
		return model.Outcome{}, err
	}

	return model.Outcome{ScoreGained: score, DrawnTiles: drawn, Placed: positions}, nil
}

func (h *MoveHandler) applyExchange(m *model.ExchangeMove, player *model.Player, replay bool) (model.Outcome, error) {
	returned := make([]model.Tile, 0, len(m.Tiles()))
	for _, t := range m.Tiles() {
		removed, err := player.Rack.Remove(t.ID)
		if err != nil {
			return model.Outcome{}, err
		}
		returned = append(returned, removed)
	}
	h.bag.PutBack(returned...)

	drawn, err := h.refill(player, m, replay)
	if err != nil {
		return model.Outcome{}, err
	}
	return model.Outcome{DrawnTiles: drawn}, nil
}

// Fill tops a rack up to RackSize from the bag
func (h *MoveHandler) Fill(player *model.Player) []model.Tile {
	var drawn []model.Tile
	for !player.Rack.IsFull() {
		t, err := h.bag.Draw()
		if err != nil {
			break
		}
		_ = player.Rack.Add(t)
		drawn = append(drawn, t)
	}
	return drawn
}

func (h *MoveHandler) refill(player *model.Player, move model.Move, replay bool) ([]model.Tile, error) {
	if !replay {
		return h.Fill(player), nil
	}

	recorded := move.Outcome().DrawnTiles
	for _, want := range recorded {
		t, err := h.bag.Take(want.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", model.ErrCorruptedHistory, err)
		}
		if err := player.Rack.Add(t); err != nil {
			return nil, fmt.Errorf("%w: %w", model.ErrCorruptedHistory, err)
		}
	}
	return recorded, nil
}

// Revert undoes an applied move, returning the game to the state before it
func (h *MoveHandler) Revert(move model.Move, player *model.Player) error {
	if !move.IsRecorded() {
		return fmt.Errorf("%w: %s was never applied", model.ErrCorruptedHistory, move.Type())
	}
	outcome := move.Outcome()

	var err error
	switch m := move.(type) {
	case *model.PlayMove:
		err = h.revertPlay(m, player, outcome)
	case *model.ExchangeMove:
		err = h.revertExchange(m, player, outcome)
	case *model.PassMove:
	default:
		err = fmt.Errorf("unknown move %T", move)
	}
	if err != nil && !errors.Is(err, model.ErrCorruptedHistory) {
		err = fmt.Errorf("%w: %w", model.ErrCorruptedHistory, err)
	}
	return err
}

func (h *MoveHandler) revertPlay(m *model.PlayMove, player *model.Player, outcome model.Outcome) error {
	player.Score -= outcome.ScoreGained

	if err := h.returnDrawn(player, outcome.DrawnTiles); err != nil {
		return err
	}

	ids := make(map[model.TileID]bool)
	for _, t := range m.Tiles() {
		ids[t.ID] = true
	}
	for _, pos := range outcome.Placed {
		sq := h.board.Square(pos)
		if sq == nil || sq.IsEmpty() || !ids[sq.Tile.ID] {
			return fmt.Errorf("tile placed at (%d,%d) is missing", pos.Row, pos.Col)
		}
		t, _ := h.board.Lift(pos)
		if err := player.Rack.Add(t.Unassigned()); err != nil {
			return err
		}
	}
	return nil
}

func (h *MoveHandler) revertExchange(m *model.ExchangeMove, player *model.Player, outcome model.Outcome) error {
	if err := h.returnDrawn(player, outcome.DrawnTiles); err != nil {
		return err
	}
	for _, t := range m.Tiles() {
		back, err := h.bag.Take(t.ID)
		if err != nil {
			return err
		}
		if err := player.Rack.Add(back); err != nil {
			return err
		}
	}
	return nil
}

func (h *MoveHandler) returnDrawn(player *model.Player, drawn []model.Tile) error {
	returned := make([]model.Tile, 0, len(drawn))
	for _, t := range drawn {
		removed, err := player.Rack.Remove(t.ID)
		if err != nil {
			h.bag.PutBack(returned...)
			return err
		}
		returned = append(returned, removed)
	}
	h.bag.PutBack(returned...)
	return nil
}
