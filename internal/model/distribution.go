package model

import (
	"slices"

	"github.com/samber/lo"
)

// Distribution describes the tile set of a game: how many of each letter and what each is worth
type Distribution struct {
	Name   string
	Counts map[rune]int
	Values map[rune]int
}

// Total returns the number of tiles the distribution produces
func (d Distribution) Total() int {
	return lo.Sum(lo.Values(d.Counts))
}

// ValueOf returns the point value of a letter, zero for blanks and unknown letters
func (d Distribution) ValueOf(letter rune) int {
	return d.Values[letter]
}

// Letters returns the distribution's letters in ascending order, BlankLetter first
func (d Distribution) Letters() []rune {
	letters := lo.Keys(d.Counts)
	slices.Sort(letters)
	return letters
}

// Tiles materializes the full tile set with sequential IDs starting at 1
func (d Distribution) Tiles() []Tile {
	tiles := make([]Tile, 0, d.Total())
	id := TileID(1)
	for _, letter := range d.Letters() {
		for range d.Counts[letter] {
			tiles = append(tiles, NewTile(id, letter, d.ValueOf(letter)))
			id++
		}
	}
	return tiles
}

var standardValues = map[rune]int{
	'A': 1, 'B': 3, 'C': 3, 'D': 2, 'E': 1, 'F': 4, 'G': 2, 'H': 4, 'I': 1,
	'J': 8, 'K': 10, 'L': 1, 'M': 2, 'N': 1, 'O': 1, 'P': 3, 'Q': 8, 'R': 1,
	'S': 1, 'T': 1, 'U': 1, 'V': 4, 'W': 10, 'X': 10, 'Y': 10, 'Z': 10,
	BlankLetter: 0,
}

// StandardDistribution is the default tile set: 100 lettered tiles and 2 blanks
func StandardDistribution() Distribution {
	return Distribution{
		Name: "standard",
		Counts: map[rune]int{
			'A': 9, 'B': 2, 'C': 2, 'D': 3, 'E': 15, 'F': 2, 'G': 2, 'H': 2, 'I': 8,
			'J': 1, 'K': 1, 'L': 5, 'M': 3, 'N': 6, 'O': 6, 'P': 2, 'Q': 1, 'R': 6,
			'S': 6, 'T': 6, 'U': 6, 'V': 2, 'W': 1, 'X': 1, 'Y': 1, 'Z': 1,
			BlankLetter: 2,
		},
		Values: standardValues,
	}
}

// EnglishDistribution is the common English tile set of 98 letters and 2 blanks
func EnglishDistribution() Distribution {
	return Distribution{
		Name: "english",
		Counts: map[rune]int{
			'A': 9, 'B': 2, 'C': 2, 'D': 4, 'E': 12, 'F': 2, 'G': 3, 'H': 2, 'I': 9,
			'J': 1, 'K': 1, 'L': 4, 'M': 2, 'N': 6, 'O': 8, 'P': 2, 'Q': 1, 'R': 6,
			'S': 4, 'T': 6, 'U': 4, 'V': 2, 'W': 2, 'X': 1, 'Y': 2, 'Z': 1,
			BlankLetter: 2,
		},
		Values: map[rune]int{
			'A': 1, 'B': 3, 'C': 3, 'D': 2, 'E': 1, 'F': 4, 'G': 2, 'H': 4, 'I': 1,
			'J': 8, 'K': 5, 'L': 1, 'M': 3, 'N': 1, 'O': 1, 'P': 3, 'Q': 10, 'R': 1,
			'S': 1, 'T': 1, 'U': 1, 'V': 4, 'W': 4, 'X': 8, 'Y': 4, 'Z': 10,
			BlankLetter: 0,
		},
	}
}

// DistributionByName looks up a built-in distribution
func DistributionByName(name string) (Distribution, bool) {
	switch name {
	case "", "standard":
		return StandardDistribution(), true
	case "english":
		return EnglishDistribution(), true
	default:
		return Distribution{}, false
	}
}
