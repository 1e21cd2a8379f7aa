package testutil

import (
	"unicode"

	"github.com/mcoot/scrabble-go/internal/model"
)

// Words is a small lexicon that the move generator and game tests share
var Words = []string{
	"AT", "TA", "CAT", "ACT", "TAC", "CATS", "SCAT", "CAST", "ACTS",
	"AA", "AB", "AD", "AE", "AG", "AH", "AI", "AL", "AM", "AN", "AR", "AS", "AW", "AX", "AY",
	"BA", "BE", "BI", "BO", "BY", "DE", "DO", "ED", "EH", "EL", "EM", "EN", "ER", "ES", "EX",
	"GO", "HA", "HE", "HI", "HM", "HO", "ID", "IF", "IN", "IS", "IT", "LA", "LI", "LO",
	"MA", "ME", "MI", "MO", "MU", "MY", "NA", "NE", "NO", "NU", "OD", "OE", "OF", "OH",
	"OI", "OM", "ON", "OP", "OR", "OS", "OW", "OX", "OY", "PA", "PE", "PI", "RE", "SH",
	"SI", "SO", "TI", "TO", "UH", "UM", "UN", "UP", "US", "UT", "WE", "WO", "XI", "XU",
	"YA", "YE", "YO",
	"DOG", "GOD", "COD", "DOC", "COG", "TOG", "GOT", "TOD", "DOT", "COT",
	"HAT", "THE", "TEA", "EAT", "ATE", "ETA", "SEA", "SAT", "TAS",
	"STAR", "RATS", "ARTS", "TARS", "TSAR", "STARE", "TEARS", "RATES", "ASTER",
	"RETAINS", "NASTIER", "RETINAS", "STAINER", "STEARIN", "RETAIN", "TRAINS", "STRAIN",
	"RETAINERS", "TRAINEES",
}

// Tiles builds rack tiles with IDs starting at firstID; '?' yields a blank
func Tiles(firstID model.TileID, letters string) []model.Tile {
	dist := model.StandardDistribution()
	var tiles []model.Tile
	id := firstID
	for _, letter := range letters {
		tiles = append(tiles, model.NewTile(id, letter, dist.ValueOf(unicode.ToUpper(letter))))
		id++
	}
	return tiles
}
