package model

import "unicode"

// BlankLetter is the face of a blank tile before a letter is assigned
const BlankLetter = '?'

// TileID tags a physical tile so that two tiles with the same face stay distinguishable
type TileID int

// Tile is a single lettered tile
type Tile struct {
	ID     TileID
	Letter rune // Assigned letter, or BlankLetter for an unassigned blank
	Value  int
	Blank  bool
}

// NewTile creates a tile; BlankLetter creates an unassigned blank worth zero
func NewTile(id TileID, letter rune, value int) Tile {
	if letter == BlankLetter {
		return Tile{ID: id, Letter: BlankLetter, Blank: true}
	}
	return Tile{ID: id, Letter: unicode.ToUpper(letter), Value: value}
}

// IsBlank reports whether the tile is a blank, assigned or not
func (t Tile) IsBlank() bool {
	return t.Blank
}

// IsAssigned reports whether a blank has been given a letter; always true for regular tiles
func (t Tile) IsAssigned() bool {
	return t.Letter != BlankLetter
}

// Assign materializes a blank with the given letter, keeping its identity and zero value
func (t Tile) Assign(letter rune) Tile {
	if !t.Blank {
		return t
	}
	t.Letter = unicode.ToUpper(letter)
	t.Value = 0
	return t
}

// Unassigned returns a blank to its unlettered form
func (t Tile) Unassigned() Tile {
	if !t.Blank {
		return t
	}
	t.Letter = BlankLetter
	return t
}

// SameFace compares tiles by letter and value, ignoring identity
func (t Tile) SameFace(other Tile) bool {
	return t.Letter == other.Letter && t.Value == other.Value
}

// String returns the tile's letter, lowercase for an assigned blank
func (t Tile) String() string {
	if t.Blank && t.IsAssigned() {
		return string(unicode.ToLower(t.Letter))
	}
	return string(t.Letter)
}
