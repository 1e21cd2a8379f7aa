package model

// PlayerID uniquely identifies a player within a game
type PlayerID string

// Actor is anything that can take a turn
type Actor interface {
	IsHuman() bool
}

// Player represents a game participant
type Player struct {
	ID          PlayerID
	DisplayName string
	Bot         bool   // true for automated players
	BotStrategy string // Strategy name used by the bot driver
	Score       int
	Rack        *Rack
}

var _ Actor = (*Player)(nil)

// NewHumanPlayer creates a player whose turns come from outside the engine
func NewHumanPlayer(id PlayerID, name string) *Player {
	return &Player{ID: id, DisplayName: name, Rack: NewRack()}
}

// NewBotPlayer creates an automated player driven by the named strategy
func NewBotPlayer(id PlayerID, name, strategy string) *Player {
	return &Player{ID: id, DisplayName: name, Bot: true, BotStrategy: strategy, Rack: NewRack()}
}

// IsHuman reports whether the player's moves may be undone and redone
func (p *Player) IsHuman() bool {
	return !p.Bot
}
