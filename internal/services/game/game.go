package game

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/mcoot/scrabble-go/internal/dependencies/clock"
	"github.com/mcoot/scrabble-go/internal/dependencies/random"
	"github.com/mcoot/scrabble-go/internal/model"
	"github.com/mcoot/scrabble-go/internal/services/board"
	"github.com/mcoot/scrabble-go/internal/services/scoring"
)

const (
	MinPlayers = 2

	gameIDLength   = 12
	gameIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Config selects the board and tile set of a new game
type Config struct {
	Layout       model.Layout       // nil uses the standard layout
	Distribution model.Distribution // zero value uses the standard distribution
	Validator    WordValidator      // nil accepts any word
}

// Game owns the board, bag, players and move history of one match. It is
// not safe for concurrent use.
type Game struct {
	id        model.GameID
	createdAt time.Time
	state     model.GameState

	board   *model.Board
	bag     *model.Bag
	players []*model.Player
	current int

	handler *MoveHandler
	history *UndoRedo
	scoring *scoring.Service
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a game with an empty board, a full shuffled bag and no players
func New(
	cfg Config,
	boardService *board.Service,
	scoringService *scoring.Service,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Game {
	dist := cfg.Distribution
	if len(dist.Counts) == 0 {
		dist = model.StandardDistribution()
	}

	b := boardService.CreateBoard(cfg.Layout)
	bag := model.NewBag(dist, random)
	id := model.GameID(random.String(gameIDLength, gameIDAlphabet))
	logger = logger.With(slog.String("game_id", string(id)))

	g := &Game{
		id:        id,
		createdAt: clock.Now(),
		state:     model.GameStateNotStarted,
		board:     b,
		bag:       bag,
		handler:   NewMoveHandler(b, bag, boardService, scoringService, cfg.Validator, logger),
		history:   NewUndoRedo(),
		scoring:   scoringService,
		clock:     clock,
		logger:    logger,
	}

	logger.Info("game created",
		slog.String("distribution", dist.Name),
		slog.Int("tiles", bag.Len()),
		slog.Int("board_size", b.Size),
		slog.Bool("validates_words", cfg.Validator != nil),
	)
	return g
}

// AddPlayer seats a player; only allowed before the game starts
func (g *Game) AddPlayer(p *model.Player) error {
	if g.state != model.GameStateNotStarted {
		return model.ErrGameInProgress
	}
	if p == nil {
		return model.ErrPlayerNotFound
	}
	for _, existing := range g.players {
		if existing.ID == p.ID {
			return fmt.Errorf("%w: %s", model.ErrDuplicatePlayer, p.ID)
		}
	}
	if p.Rack == nil {
		p.Rack = model.NewRack()
	}
	g.players = append(g.players, p)

	g.logger.Info("player added",
		slog.String("player_id", string(p.ID)),
		slog.Bool("human", p.IsHuman()),
	)
	return nil
}

// Start deals every rack and hands the first turn to the first player
func (g *Game) Start() error {
	if g.state != model.GameStateNotStarted {
		return model.ErrGameInProgress
	}
	if len(g.players) < MinPlayers {
		return model.ErrInsufficientPlayers
	}

	for _, p := range g.players {
		g.handler.Fill(p)
	}
	g.current = 0
	g.state = model.GameStateInProgress

	g.logger.Info("game started",
		slog.Int("player_count", len(g.players)),
		slog.Int("bag_remaining", g.bag.Len()),
	)
	return nil
}

// ExecuteMove validates and applies a move for the current player. A rejected
// move leaves the game untouched.
func (g *Game) ExecuteMove(move model.Move) error {
	switch g.state {
	case model.GameStateNotStarted:
		return model.ErrGameNotStarted
	case model.GameStateOver:
		return model.ErrGameAlreadyOver
	}
	if move == nil {
		return fmt.Errorf("%w: no move", model.ErrInvalidMoveShape)
	}
	if move.IsRecorded() {
		return fmt.Errorf("%w: move was already applied", model.ErrInvalidMoveShape)
	}

	player := g.CurrentPlayer()
	if move.Player() == nil || move.Player().ID != player.ID {
		return model.ErrNotPlayerTurn
	}

	if err := g.handler.Validate(move, player); err != nil {
		g.logger.Debug("move rejected",
			slog.String("player_id", string(player.ID)),
			slog.String("type", string(move.Type())),
			slog.String("error", err.Error()),
		)
		return err
	}
	if err := g.handler.Apply(move, player, false); err != nil {
		return err
	}

	g.history.Add(move)
	g.endTurn(player)

	g.logger.Info("move applied",
		slog.String("player_id", string(player.ID)),
		slog.String("type", string(move.Type())),
		slog.Int("score_gained", move.Outcome().ScoreGained),
		slog.Int("score", player.Score),
		slog.Int("bag_remaining", g.bag.Len()),
	)
	return nil
}

// Undo reverts moves back to and including the latest human move, so that the
// human is on turn again. It does nothing unless a human is on turn and there
// is something to undo.
func (g *Game) Undo() error {
	if !g.historyAllowed("undo", g.history.CanUndo()) {
		return nil
	}

	undone := 0
	for {
		move, ok := g.history.Undo()
		if !ok {
			break
		}
		g.previousTurn()
		player := g.CurrentPlayer()
		if move.Player() == nil || move.Player().ID != player.ID {
			return fmt.Errorf("%w: %s move does not belong to %s", model.ErrCorruptedHistory, move.Type(), player.ID)
		}
		if err := g.handler.Revert(move, player); err != nil {
			g.logger.Error("undo failed", slog.String("error", err.Error()))
			return err
		}
		undone++
		if player.IsHuman() {
			break
		}
	}
	g.state = model.GameStateInProgress

	g.logger.Info("moves undone",
		slog.Int("count", undone),
		slog.String("current_player", string(g.CurrentPlayer().ID)),
	)
	return nil
}

// Redo re-applies undone moves until a human move and the automated moves
// after it have been redone. It does nothing unless a human is on turn and
// there is something to redo.
func (g *Game) Redo() error {
	if !g.historyAllowed("redo", g.history.CanRedo()) {
		return nil
	}

	redone := 0
	humanRedone := false
	for g.state == model.GameStateInProgress {
		next, ok := g.history.PeekRedo()
		if !ok || (humanRedone && next.Player().IsHuman()) {
			break
		}
		move, _ := g.history.Redo()

		player := g.CurrentPlayer()
		if move.Player() == nil || move.Player().ID != player.ID {
			return fmt.Errorf("%w: %s move does not belong to %s", model.ErrCorruptedHistory, move.Type(), player.ID)
		}
		if err := g.handler.Validate(move, player); err != nil {
			return fmt.Errorf("%w: %w", model.ErrCorruptedHistory, err)
		}
		if err := g.handler.Apply(move, player, true); err != nil {
			g.logger.Error("redo failed", slog.String("error", err.Error()))
			return err
		}
		g.endTurn(player)
		redone++
		if player.IsHuman() {
			humanRedone = true
		}
	}

	g.logger.Info("moves redone",
		slog.Int("count", redone),
		slog.String("current_player", string(g.CurrentPlayer().ID)),
	)
	return nil
}

func (g *Game) historyAllowed(action string, available bool) bool {
	reason := ""
	switch {
	case g.state == model.GameStateNotStarted:
		reason = "game not started"
	case !g.CurrentPlayer().IsHuman():
		reason = "current player is not human"
	case !available:
		reason = "nothing to " + action
	}
	if reason != "" {
		g.logger.Info(action+" refused", slog.String("reason", reason))
		return false
	}
	return true
}

// endTurn passes the turn on and ends the game once the bag and the mover's
// rack are both empty
func (g *Game) endTurn(mover *model.Player) {
	g.current = (g.current + 1) % len(g.players)
	if g.bag.IsEmpty() && mover.Rack.IsEmpty() {
		g.state = model.GameStateOver
		winner := g.Winner()
		attrs := []any{slog.String("finisher", string(mover.ID))}
		if winner != nil {
			attrs = append(attrs, slog.String("winner", string(winner.ID)), slog.Int("winning_score", winner.Score))
		}
		g.logger.Info("game over", attrs...)
	}
}

func (g *Game) previousTurn() {
	g.current = (g.current - 1 + len(g.players)) % len(g.players)
}

// ID returns the game's identifier
func (g *Game) ID() model.GameID { return g.id }

// CreatedAt returns when the game was created
func (g *Game) CreatedAt() time.Time { return g.createdAt }

// State returns the game's phase
func (g *Game) State() model.GameState { return g.state }

// Board returns the shared board
func (g *Game) Board() *model.Board { return g.board }

// Bag returns the draw pool
func (g *Game) Bag() *model.Bag { return g.bag }

// Players returns the seated players in turn order
func (g *Game) Players() []*model.Player {
	out := make([]*model.Player, len(g.players))
	copy(out, g.players)
	return out
}

// CurrentPlayer returns the player on turn, or nil before anyone has joined
func (g *Game) CurrentPlayer() *model.Player {
	if len(g.players) == 0 {
		return nil
	}
	return g.players[g.current]
}

// History returns the applied moves, oldest first
func (g *Game) History() []model.Move { return g.history.Moves() }

// CanUndo reports whether an undo would do anything right now
func (g *Game) CanUndo() bool {
	p := g.CurrentPlayer()
	return g.state != model.GameStateNotStarted && p != nil && p.IsHuman() && g.history.CanUndo()
}

// CanRedo reports whether a redo would do anything right now
func (g *Game) CanRedo() bool {
	p := g.CurrentPlayer()
	return g.state == model.GameStateInProgress && p != nil && p.IsHuman() && g.history.CanRedo()
}

// Winner returns the highest scorer once the game is over; nil while playing or on a tie
func (g *Game) Winner() *model.Player {
	if g.state != model.GameStateOver {
		return nil
	}
	return g.scoring.DetermineWinner(g.players)
}

// TileCount returns the tiles in the bag, on every rack and on the board
func (g *Game) TileCount() int {
	total := g.bag.Len() + g.board.TileCount()
	for _, p := range g.players {
		total += p.Rack.Len()
	}
	return total
}
