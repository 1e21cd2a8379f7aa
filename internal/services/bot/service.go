package bot

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mcoot/scrabble-go/internal/dependencies/random"
	"github.com/mcoot/scrabble-go/internal/model"
	"github.com/mcoot/scrabble-go/internal/services/game"
	"github.com/mcoot/scrabble-go/internal/services/movegen"
)

const (
	// PlayerIDAlphabet is the character set for generating bot player IDs
	PlayerIDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	// PlayerIDLength is the length of generated bot player IDs
	PlayerIDLength = 16
	// MaxBotIterations is a safety limit for the ProcessBotActions loop
	MaxBotIterations = 1000
	// ScorelessRounds is how many full rounds of exchanges and passes end a bot-only game
	ScorelessRounds = 3
)

// BotActionType represents the type of action a bot took
type BotActionType string

const (
	ActionPlay         BotActionType = "play"
	ActionExchange     BotActionType = "exchange"
	ActionPass         BotActionType = "pass"
	ActionGameComplete BotActionType = "game_complete"
	ActionStalled      BotActionType = "stalled"
)

// BotAction represents a single action taken by a bot during ProcessBotActions
type BotAction struct {
	Type     BotActionType
	PlayerID model.PlayerID
	Word     string
	Score    int
}

// Service drives bot players through a game
type Service struct {
	generator  *movegen.Generator
	lexicon    movegen.Lexicon
	strategies map[string]Strategy
	random     random.Random
	logger     *slog.Logger
}

// NewService creates a new bot Service
func NewService(
	generator *movegen.Generator,
	lexicon movegen.Lexicon,
	strategies map[string]Strategy,
	rnd random.Random,
	logger *slog.Logger,
) *Service {
	return &Service{
		generator:  generator,
		lexicon:    lexicon,
		strategies: strategies,
		random:     rnd,
		logger:     logger.With(slog.String("component", "bot-service")),
	}
}

// NewBotPlayer creates a bot player driven by the named strategy
func (s *Service) NewBotPlayer(displayName, strategy string) (*model.Player, error) {
	if _, ok := s.strategies[strategy]; !ok {
		return nil, fmt.Errorf("unknown bot strategy: %s", strategy)
	}
	id := model.PlayerID("bot-" + s.random.String(PlayerIDLength, PlayerIDAlphabet))
	return model.NewBotPlayer(id, displayName, strategy), nil
}

// ChooseMove decides the current player's move: a word when the strategy
// finds one, otherwise an exchange of the whole rack, otherwise a pass
func (s *Service) ChooseMove(g *game.Game) (model.Move, error) {
	player := g.CurrentPlayer()
	if player == nil {
		return nil, model.ErrPlayerNotFound
	}

	candidates := s.generator.GetPlayableWordsList(g, s.lexicon)
	if pw, ok := s.strategyForPlayer(player).ChooseWord(player, g.Board(), candidates); ok {
		play, err := s.generator.BuildPlay(player, g.Board(), pw)
		if err != nil {
			return nil, err
		}
		return play, nil
	}

	if g.Bag().Len() >= game.MinExchangeBag && !player.Rack.IsEmpty() {
		exchange, err := model.NewExchange(player, player.Rack.Tiles())
		if err != nil {
			return nil, err
		}
		return exchange, nil
	}
	pass, err := model.NewPass(player)
	if err != nil {
		return nil, err
	}
	return pass, nil
}

// ProcessBotActions plays bot turns until a human is on turn, the game ends,
// or the bots stop scoring. It returns every action taken.
func (s *Service) ProcessBotActions(ctx context.Context, g *game.Game) ([]BotAction, error) {
	var actions []BotAction
	scoreless := 0

	for range MaxBotIterations {
		if err := ctx.Err(); err != nil {
			return actions, err
		}
		if g.State() == model.GameStateOver {
			if len(actions) > 0 {
				actions = append(actions, BotAction{Type: ActionGameComplete})
			}
			break
		}
		if g.State() != model.GameStateInProgress {
			break
		}

		player := g.CurrentPlayer()
		if player.IsHuman() {
			break // Human's turn
		}

		move, err := s.ChooseMove(g)
		if err != nil {
			return actions, err
		}
		if err := g.ExecuteMove(move); err != nil {
			return actions, err
		}

		action := BotAction{
			Type:     BotActionType(move.Type()),
			PlayerID: player.ID,
			Score:    move.Outcome().ScoreGained,
		}
		if play, ok := move.(*model.PlayMove); ok {
			action.Word = play.Word()
		}
		actions = append(actions, action)

		s.logger.Debug("bot moved",
			slog.String("player_id", string(player.ID)),
			slog.String("type", string(action.Type)),
			slog.String("word", action.Word),
			slog.Int("score", action.Score),
		)

		if action.Type == ActionPlay {
			scoreless = 0
			continue
		}
		scoreless++
		if scoreless >= ScorelessRounds*len(g.Players()) {
			actions = append(actions, BotAction{Type: ActionStalled})
			s.logger.Info("bots stalled", slog.Int("scoreless_turns", scoreless))
			break
		}
	}

	return actions, nil
}

// strategyForPlayer returns the strategy for a bot player, falling back to
// the first registered strategy if the player's strategy is not found
func (s *Service) strategyForPlayer(player *model.Player) Strategy {
	if st, ok := s.strategies[player.BotStrategy]; ok {
		return st
	}
	// Fallback: use first available strategy
	for _, st := range s.strategies {
		return st
	}
	return declineStrategy{}
}

type declineStrategy struct{}

func (declineStrategy) ChooseWord(*model.Player, *model.Board, []model.PlayableWord) (model.PlayableWord, bool) {
	return model.PlayableWord{}, false
}
