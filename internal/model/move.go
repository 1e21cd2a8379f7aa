package model

import (
	"fmt"
	"slices"
)

// MoveType names the kind of a move
type MoveType string

const (
	MoveTypePlay     MoveType = "play"
	MoveTypeExchange MoveType = "exchange"
	MoveTypePass     MoveType = "pass"
)

// Move is a single turn action. Implementations are *PlayMove, *ExchangeMove and *PassMove.
//
//sumtype:decl
type Move interface {
	Player() *Player
	Type() MoveType
	Outcome() Outcome
	IsRecorded() bool
	// RecordOutcome stores the effects of applying the move; it succeeds once
	RecordOutcome(o Outcome) error
	isMove()
}

// Outcome is what applying a move did, kept for undo and redo
type Outcome struct {
	ScoreGained int
	DrawnTiles  []Tile
	Placed      []Position // Squares that were empty before a play
}

type moveRecord struct {
	player   *Player
	outcome  Outcome
	recorded bool
}

func (m *moveRecord) Player() *Player { return m.player }

func (m *moveRecord) Outcome() Outcome {
	return Outcome{
		ScoreGained: m.outcome.ScoreGained,
		DrawnTiles:  slices.Clone(m.outcome.DrawnTiles),
		Placed:      slices.Clone(m.outcome.Placed),
	}
}

// IsRecorded reports whether the move has been applied to a game
func (m *moveRecord) IsRecorded() bool { return m.recorded }

func (m *moveRecord) RecordOutcome(o Outcome) error {
	if m.recorded {
		return fmt.Errorf("%w: outcome already recorded", ErrInvalidMoveShape)
	}
	m.outcome = Outcome{
		ScoreGained: o.ScoreGained,
		DrawnTiles:  slices.Clone(o.DrawnTiles),
		Placed:      slices.Clone(o.Placed),
	}
	m.recorded = true
	return nil
}

func (m *moveRecord) isMove() {}

// PlayMove lays tiles in a line starting at a square
type PlayMove struct {
	moveRecord
	tiles     []Tile
	start     Position
	direction Direction
}

// NewPlay creates a play of the given tiles. Tiles already on the board may be included
// to spell the full word; blanks must carry their assigned letter.
func NewPlay(player *Player, tiles []Tile, start Position, dir Direction) (*PlayMove, error) {
	if player == nil {
		return nil, fmt.Errorf("%w: play has no player", ErrInvalidMoveShape)
	}
	if len(tiles) == 0 {
		return nil, fmt.Errorf("%w: play has no tiles", ErrInvalidMoveShape)
	}
	if !dir.IsValid() {
		return nil, fmt.Errorf("%w: unknown direction %q", ErrInvalidMoveShape, dir)
	}
	return &PlayMove{
		moveRecord: moveRecord{player: player},
		tiles:      slices.Clone(tiles),
		start:      start,
		direction:  dir,
	}, nil
}

func (m *PlayMove) Type() MoveType { return MoveTypePlay }

// Tiles returns the tiles of the word in order
func (m *PlayMove) Tiles() []Tile { return slices.Clone(m.tiles) }

// Start returns the first square of the word
func (m *PlayMove) Start() Position { return m.start }

// Direction returns the orientation of the word
func (m *PlayMove) Direction() Direction { return m.direction }

// Position returns the square the i-th tile lands on
func (m *PlayMove) Position(i int) Position { return m.start.Step(m.direction, i) }

// Word spells the tiles of the play
func (m *PlayMove) Word() string {
	letters := make([]rune, len(m.tiles))
	for i, t := range m.tiles {
		letters[i] = t.Letter
	}
	return string(letters)
}

// ExchangeMove swaps rack tiles for fresh ones from the bag
type ExchangeMove struct {
	moveRecord
	tiles []Tile
}

// NewExchange creates an exchange of the given rack tiles
func NewExchange(player *Player, tiles []Tile) (*ExchangeMove, error) {
	if player == nil {
		return nil, fmt.Errorf("%w: exchange has no player", ErrInvalidMoveShape)
	}
	if len(tiles) == 0 {
		return nil, fmt.Errorf("%w: exchange has no tiles", ErrInvalidMoveShape)
	}
	return &ExchangeMove{moveRecord: moveRecord{player: player}, tiles: slices.Clone(tiles)}, nil
}

func (m *ExchangeMove) Type() MoveType { return MoveTypeExchange }

// Tiles returns the tiles given back
func (m *ExchangeMove) Tiles() []Tile { return slices.Clone(m.tiles) }

// PassMove gives up the turn
type PassMove struct {
	moveRecord
}

// NewPass creates a pass
func NewPass(player *Player) (*PassMove, error) {
	if player == nil {
		return nil, fmt.Errorf("%w: pass has no player", ErrInvalidMoveShape)
	}
	return &PassMove{moveRecord: moveRecord{player: player}}, nil
}

func (m *PassMove) Type() MoveType { return MoveTypePass }

var (
	_ Move = (*PlayMove)(nil)
	_ Move = (*ExchangeMove)(nil)
	_ Move = (*PassMove)(nil)
)
