package model

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
)

// RackSize is the number of tiles a full rack holds
const RackSize = 7

// Rack is a player's hand of tiles in draw order
type Rack struct {
	tiles []Tile
}

// NewRack creates a rack holding the given tiles
func NewRack(tiles ...Tile) *Rack {
	r := &Rack{tiles: make([]Tile, 0, RackSize)}
	for _, t := range tiles {
		_ = r.Add(t)
	}
	return r
}

// Add appends a tile, failing when the rack is full
func (r *Rack) Add(t Tile) error {
	if r.IsFull() {
		return fmt.Errorf("%w: cannot add %s", ErrRackFull, t)
	}
	r.tiles = append(r.tiles, t)
	return nil
}

// Remove takes the tile with the given ID out of the rack
func (r *Rack) Remove(id TileID) (Tile, error) {
	idx := r.indexOf(id)
	if idx < 0 {
		return Tile{}, fmt.Errorf("%w: tile %d not on rack", ErrRackMismatch, id)
	}
	t := r.tiles[idx]
	r.tiles = slices.Delete(r.tiles, idx, idx+1)
	return t, nil
}

// Contains reports whether the tile with the given ID is on the rack
func (r *Rack) Contains(id TileID) bool {
	return r.indexOf(id) >= 0
}

// Get returns the tile with the given ID
func (r *Rack) Get(id TileID) (Tile, bool) {
	idx := r.indexOf(id)
	if idx < 0 {
		return Tile{}, false
	}
	return r.tiles[idx], true
}

// Tiles returns a copy of the rack's tiles
func (r *Rack) Tiles() []Tile {
	return slices.Clone(r.tiles)
}

// Letters returns the faces of the rack's tiles; blanks appear as BlankLetter
func (r *Rack) Letters() []rune {
	return lo.Map(r.tiles, func(t Tile, _ int) rune { return t.Letter })
}

// Len returns the number of tiles on the rack
func (r *Rack) Len() int {
	return len(r.tiles)
}

// IsFull reports whether the rack holds RackSize tiles
func (r *Rack) IsFull() bool {
	return len(r.tiles) >= RackSize
}

// IsEmpty reports whether the rack holds no tiles
func (r *Rack) IsEmpty() bool {
	return len(r.tiles) == 0
}

// Value returns the sum of the tile values on the rack
func (r *Rack) Value() int {
	return lo.SumBy(r.tiles, func(t Tile) int { return t.Value })
}

func (r *Rack) String() string {
	return string(r.Letters())
}

func (r *Rack) indexOf(id TileID) int {
	return slices.IndexFunc(r.tiles, func(t Tile) bool { return t.ID == id })
}
