package model

import (
	"fmt"
	"slices"

	"github.com/mcoot/scrabble-go/internal/dependencies/random"
)

// Bag is the pool of undrawn tiles
type Bag struct {
	tiles  []Tile
	random random.Random
}

// NewBag fills a bag from the distribution and shuffles it
func NewBag(dist Distribution, rnd random.Random) *Bag {
	b := &Bag{tiles: dist.Tiles(), random: rnd}
	b.shuffle()
	return b
}

// Draw removes the top tile from the bag
func (b *Bag) Draw() (Tile, error) {
	if len(b.tiles) == 0 {
		return Tile{}, ErrBagEmpty
	}
	last := len(b.tiles) - 1
	t := b.tiles[last]
	b.tiles = b.tiles[:last]
	return t, nil
}

// Take removes a specific tile from the bag, wherever it is
func (b *Bag) Take(id TileID) (Tile, error) {
	idx := slices.IndexFunc(b.tiles, func(t Tile) bool { return t.ID == id })
	if idx < 0 {
		return Tile{}, fmt.Errorf("%w: tile %d not in bag", ErrTileNotFound, id)
	}
	t := b.tiles[idx]
	b.tiles = slices.Delete(b.tiles, idx, idx+1)
	return t, nil
}

// PutBack returns tiles to the bag and reshuffles it
func (b *Bag) PutBack(tiles ...Tile) {
	for _, t := range tiles {
		b.tiles = append(b.tiles, t.Unassigned())
	}
	b.shuffle()
}

// Contains reports whether the tile with the given ID is in the bag
func (b *Bag) Contains(id TileID) bool {
	return slices.ContainsFunc(b.tiles, func(t Tile) bool { return t.ID == id })
}

// Len returns the number of tiles left
func (b *Bag) Len() int {
	return len(b.tiles)
}

// IsEmpty reports whether the bag has been drawn out
func (b *Bag) IsEmpty() bool {
	return len(b.tiles) == 0
}

// Tiles returns a copy of the remaining tiles
func (b *Bag) Tiles() []Tile {
	return slices.Clone(b.tiles)
}

func (b *Bag) shuffle() {
	if b.random == nil {
		return
	}
	b.random.Shuffle(len(b.tiles), func(i, j int) {
		b.tiles[i], b.tiles[j] = b.tiles[j], b.tiles[i]
	})
}
