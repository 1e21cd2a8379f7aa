package model

import "strings"

// BoardSize is the dimension of the standard board
const BoardSize = 15

// Position identifies a square on the board
type Position struct {
	Row int // 0-indexed from top
	Col int // 0-indexed from left
}

// Step returns the position n squares further along the direction
func (p Position) Step(dir Direction, n int) Position {
	if dir == Vertical {
		return Position{Row: p.Row + n, Col: p.Col}
	}
	return Position{Row: p.Row, Col: p.Col + n}
}

// Direction is the orientation of a word on the board
type Direction string

const (
	Horizontal Direction = "horizontal" // Left to right along a row
	Vertical   Direction = "vertical"   // Top to bottom along a column
)

// IsValid reports whether d is one of the two directions
func (d Direction) IsValid() bool {
	return d == Horizontal || d == Vertical
}

// Perpendicular returns the crossing direction
func (d Direction) Perpendicular() Direction {
	if d == Horizontal {
		return Vertical
	}
	return Horizontal
}

// Directions lists both orientations
func Directions() []Direction {
	return []Direction{Horizontal, Vertical}
}

// BonusType is the premium printed on a square
type BonusType string

const (
	BonusNone         BonusType = ""
	BonusDoubleLetter BonusType = "DL"
	BonusTripleLetter BonusType = "TL"
	BonusDoubleWord   BonusType = "DW"
	BonusTripleWord   BonusType = "TW"
)

// LetterMultiplier returns the factor applied to a tile placed on this bonus
func (b BonusType) LetterMultiplier() int {
	switch b {
	case BonusDoubleLetter:
		return 2
	case BonusTripleLetter:
		return 3
	default:
		return 1
	}
}

// WordMultiplier returns the factor applied to a word covering this bonus
func (b BonusType) WordMultiplier() int {
	switch b {
	case BonusDoubleWord:
		return 2
	case BonusTripleWord:
		return 3
	default:
		return 1
	}
}

// Square is one cell of the board; only its tile changes during a game
type Square struct {
	pos   Position
	bonus BonusType
	Tile  *Tile
}

// Position returns the square's coordinates
func (s *Square) Position() Position {
	return s.pos
}

// Bonus returns the square's premium
func (s *Square) Bonus() BonusType {
	return s.bonus
}

// IsEmpty reports whether no tile is on the square
func (s *Square) IsEmpty() bool {
	return s.Tile == nil
}

// Letter returns the letter on the square, or 0 when empty
func (s *Square) Letter() rune {
	if s.Tile == nil {
		return 0
	}
	return s.Tile.Letter
}

// Layout is the grid of premiums a board is built from, indexed [row][col]
type Layout [][]BonusType

// Board is the square grid shared by all players of a game
type Board struct {
	Size    int
	squares [][]*Square
}

// NewBoard creates an empty board with the layout's premiums
func NewBoard(layout Layout) *Board {
	size := len(layout)
	squares := make([][]*Square, size)
	for row := range size {
		squares[row] = make([]*Square, size)
		for col := range size {
			bonus := BonusNone
			if col < len(layout[row]) {
				bonus = layout[row][col]
			}
			squares[row][col] = &Square{pos: Position{Row: row, Col: col}, bonus: bonus}
		}
	}
	return &Board{Size: size, squares: squares}
}

// NewStandardBoard creates an empty 15x15 board with the standard premiums
func NewStandardBoard() *Board {
	return NewBoard(StandardLayout())
}

// Square returns the square at the position, or nil when off the board
func (b *Board) Square(pos Position) *Square {
	if !b.IsValidPosition(pos) {
		return nil
	}
	return b.squares[pos.Row][pos.Col]
}

// IsValidPosition returns true if the position is within bounds
func (b *Board) IsValidPosition(pos Position) bool {
	return pos.Row >= 0 && pos.Row < b.Size && pos.Col >= 0 && pos.Col < b.Size
}

// IsOccupied reports whether a tile sits at the position; off-board positions are never occupied
func (b *Board) IsOccupied(pos Position) bool {
	sq := b.Square(pos)
	return sq != nil && sq.Tile != nil
}

// Center returns the square every first word must cover
func (b *Board) Center() Position {
	return Position{Row: b.Size / 2, Col: b.Size / 2}
}

// IsEmpty reports whether no tile has been played yet
func (b *Board) IsEmpty() bool {
	return b.TileCount() == 0
}

// TileCount returns the number of tiles on the board
func (b *Board) TileCount() int {
	count := 0
	for _, row := range b.squares {
		for _, sq := range row {
			if sq.Tile != nil {
				count++
			}
		}
	}
	return count
}

// OccupiedSquares returns every square holding a tile in row-major order
func (b *Board) OccupiedSquares() []*Square {
	var out []*Square
	for _, row := range b.squares {
		for _, sq := range row {
			if sq.Tile != nil {
				out = append(out, sq)
			}
		}
	}
	return out
}

// Place puts a tile on the square at the position
func (b *Board) Place(pos Position, t Tile) {
	if sq := b.Square(pos); sq != nil {
		placed := t
		sq.Tile = &placed
	}
}

// Lift removes and returns the tile at the position
func (b *Board) Lift(pos Position) (Tile, bool) {
	sq := b.Square(pos)
	if sq == nil || sq.Tile == nil {
		return Tile{}, false
	}
	t := *sq.Tile
	sq.Tile = nil
	return t, true
}

// Clone returns a deep copy of the board
func (b *Board) Clone() *Board {
	out := &Board{Size: b.Size, squares: make([][]*Square, b.Size)}
	for row := range b.squares {
		out.squares[row] = make([]*Square, b.Size)
		for col, sq := range b.squares[row] {
			cp := &Square{pos: sq.pos, bonus: sq.bonus}
			if sq.Tile != nil {
				t := *sq.Tile
				cp.Tile = &t
			}
			out.squares[row][col] = cp
		}
	}
	return out
}

// String renders the board one row per line, '.' for empty squares
func (b *Board) String() string {
	var sb strings.Builder
	for _, row := range b.squares {
		for _, sq := range row {
			if sq.Tile == nil {
				sb.WriteByte('.')
				continue
			}
			sb.WriteString(sq.Tile.String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// StandardLayout returns the 15x15 premium layout
func StandardLayout() Layout {
	layout := make(Layout, BoardSize)
	for i := range layout {
		layout[i] = make([]BonusType, BoardSize)
	}
	set := func(bonus BonusType, coords ...[2]int) {
		for _, c := range coords {
			layout[c[0]][c[1]] = bonus
		}
	}

	last := BoardSize - 1
	set(BonusTripleWord,
		[2]int{0, 0}, [2]int{0, 7}, [2]int{0, 14},
		[2]int{7, 0}, [2]int{7, 14},
		[2]int{14, 0}, [2]int{14, 7}, [2]int{14, 14})

	for i := 1; i <= 4; i++ {
		set(BonusDoubleWord, [2]int{i, i}, [2]int{i, last - i}, [2]int{last - i, i}, [2]int{last - i, last - i})
	}
	set(BonusDoubleWord, [2]int{7, 7})

	set(BonusTripleLetter,
		[2]int{1, 5}, [2]int{1, 9}, [2]int{5, 1}, [2]int{5, 5}, [2]int{5, 9}, [2]int{5, 13},
		[2]int{9, 1}, [2]int{9, 5}, [2]int{9, 9}, [2]int{9, 13}, [2]int{13, 5}, [2]int{13, 9})

	set(BonusDoubleLetter,
		[2]int{0, 3}, [2]int{0, 11}, [2]int{14, 3}, [2]int{14, 11},
		[2]int{2, 6}, [2]int{2, 8}, [2]int{12, 6}, [2]int{12, 8},
		[2]int{3, 0}, [2]int{3, 7}, [2]int{3, 14}, [2]int{11, 0}, [2]int{11, 7}, [2]int{11, 14},
		[2]int{6, 2}, [2]int{6, 6}, [2]int{6, 8}, [2]int{6, 12},
		[2]int{8, 2}, [2]int{8, 6}, [2]int{8, 8}, [2]int{8, 12},
		[2]int{7, 3}, [2]int{7, 11})

	return layout
}
