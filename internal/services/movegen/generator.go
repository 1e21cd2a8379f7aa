package movegen

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"

	"github.com/mcoot/scrabble-go/internal/model"
	"github.com/mcoot/scrabble-go/internal/services/board"
	"github.com/mcoot/scrabble-go/internal/services/dictionary"
	"github.com/mcoot/scrabble-go/internal/services/scoring"
)

// Lexicon is the dictionary surface the generator needs
type Lexicon interface {
	FindWordsWithRackAndHook(rack []rune, hook rune) []dictionary.Result
	IsValidWord(word string) bool
}

// GameView is the read-only game state the generator inspects
type GameView interface {
	Board() *model.Board
	CurrentPlayer() *model.Player
}

// Generator finds every legal word placement for the current player
type Generator struct {
	board   *board.Service
	scoring *scoring.Service
	logger  *slog.Logger
}

// New creates a new move Generator
func New(boardService *board.Service, scoringService *scoring.Service, logger *slog.Logger) *Generator {
	return &Generator{
		board:   boardService,
		scoring: scoringService,
		logger:  logger.With(slog.String("component", "movegen")),
	}
}

type wordKey struct {
	start model.Position
	dir   model.Direction
	word  string
}

// GetPlayableWordsList lists the words the current player can legally lay
// with their rack. Every occupied square is tried as an anchor; an empty board
// anchors on the centre. The game is not modified.
func (g *Generator) GetPlayableWordsList(game GameView, lex Lexicon) []model.PlayableWord {
	if game == nil || lex == nil {
		return nil
	}
	player := game.CurrentPlayer()
	b := game.Board()
	if player == nil || b == nil {
		return nil
	}
	rack := player.Rack.Letters()

	seen := make(map[wordKey]bool)
	var out []model.PlayableWord
	collect := func(anchor model.Position, results []dictionary.Result) {
		for _, r := range results {
			for _, dir := range model.Directions() {
				pw, ok := g.place(b, lex, anchor, dir, r)
				if !ok {
					continue
				}
				key := wordKey{start: pw.Start, dir: pw.Direction, word: pw.Word}
				if seen[key] {
					continue
				}
				seen[key] = true
				out = append(out, pw)
			}
		}
	}

	if b.IsEmpty() {
		collect(b.Center(), lex.FindWordsWithRackAndHook(rack, model.BlankLetter))
	} else {
		for _, sq := range b.OccupiedSquares() {
			collect(sq.Position(), lex.FindWordsWithRackAndHook(rack, sq.Letter()))
		}
	}

	slices.SortFunc(out, comparePlayable)

	g.logger.Debug("playable words generated",
		slog.String("player_id", string(player.ID)),
		slog.String("rack", string(rack)),
		slog.Int("count", len(out)),
	)
	return out
}

// place lays a GADDAG result over the anchor so that its hook letter sits on
// the anchor, and reports whether the placement is legal
func (g *Generator) place(b *model.Board, lex Lexicon, anchor model.Position, dir model.Direction, r dictionary.Result) (model.PlayableWord, bool) {
	letters := []rune(r.Word)
	idx := r.HookIndex()
	if idx < 0 || idx >= len(letters) {
		return model.PlayableWord{}, false
	}

	start := anchor.Step(dir, -idx)
	if !g.board.Fits(b, start, dir, len(letters)) || !g.board.IsBounded(b, start, dir, len(letters)) {
		return model.PlayableWord{}, false
	}

	placed := 0
	for i, letter := range letters {
		pos := start.Step(dir, i)
		sq := b.Square(pos)
		if !sq.IsEmpty() {
			if sq.Letter() != letter {
				return model.PlayableWord{}, false
			}
			continue
		}
		placed++
		cross := g.board.CrossWord(b, pos, dir.Perpendicular(), letter)
		if cross != "" && !lex.IsValidWord(cross) {
			return model.PlayableWord{}, false
		}
	}
	if placed == 0 {
		return model.PlayableWord{}, false
	}

	return model.PlayableWord{
		Anchor:    anchor,
		Start:     start,
		Word:      r.Word,
		Direction: dir,
		Path:      r.Path,
	}, true
}

// BuildPlay turns a playable word into a move for the player. Squares already
// holding a tile reuse it; empty squares take a matching rack tile, falling
// back to a blank assigned the letter.
func (g *Generator) BuildPlay(player *model.Player, b *model.Board, pw model.PlayableWord) (*model.PlayMove, error) {
	tiles, err := selectTiles(player.Rack, b, pw)
	if err != nil {
		return nil, err
	}
	return model.NewPlay(player, tiles, pw.Start, pw.Direction)
}

// Score evaluates what laying the word would earn without touching the board
func (g *Generator) Score(player *model.Player, b *model.Board, pw model.PlayableWord) (int, error) {
	tiles, err := selectTiles(player.Rack, b, pw)
	if err != nil {
		return 0, err
	}

	scratch := b.Clone()
	var word, placed []*model.Square
	for i, t := range tiles {
		pos := pw.Start.Step(pw.Direction, i)
		sq := scratch.Square(pos)
		if sq.IsEmpty() {
			scratch.Place(pos, t)
			placed = append(placed, sq)
		}
		word = append(word, sq)
	}
	return g.scoring.CalculateWordScore(word, placed)
}

func selectTiles(rack *model.Rack, b *model.Board, pw model.PlayableWord) ([]model.Tile, error) {
	available := rack.Tiles()
	take := func(match func(model.Tile) bool) (model.Tile, bool) {
		idx := slices.IndexFunc(available, match)
		if idx < 0 {
			return model.Tile{}, false
		}
		t := available[idx]
		available = slices.Delete(available, idx, idx+1)
		return t, true
	}

	letters := []rune(pw.Word)
	tiles := make([]model.Tile, 0, len(letters))
	for i, letter := range letters {
		pos := pw.Start.Step(pw.Direction, i)
		if sq := b.Square(pos); sq != nil && !sq.IsEmpty() {
			tiles = append(tiles, *sq.Tile)
			continue
		}
		if t, ok := take(func(t model.Tile) bool { return !t.IsBlank() && t.Letter == letter }); ok {
			tiles = append(tiles, t)
			continue
		}
		if t, ok := take(model.Tile.IsBlank); ok {
			tiles = append(tiles, t.Assign(letter))
			continue
		}
		return nil, fmt.Errorf("%w: no tile for %c in %s", model.ErrRackMismatch, letter, pw.Word)
	}
	return tiles, nil
}

func comparePlayable(a, b model.PlayableWord) int {
	return cmp.Or(
		cmp.Compare(a.Start.Row, b.Start.Row),
		cmp.Compare(a.Start.Col, b.Start.Col),
		cmp.Compare(a.Direction, b.Direction),
		cmp.Compare(a.Word, b.Word),
	)
}
