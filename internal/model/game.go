package model

// GameID uniquely identifies a game
type GameID string

// GameState represents the current phase of a game
type GameState string

const (
	GameStateNotStarted GameState = "not_started" // Players may still join
	GameStateInProgress GameState = "in_progress" // Turns are being taken
	GameStateOver       GameState = "game_over"   // Bag and mover's rack are empty
)

// PlayableWord is a legal word placement found by the move generator
type PlayableWord struct {
	Anchor    Position // Occupied square (or centre) the word was grown from
	Start     Position // First square of the word
	Word      string
	Direction Direction
	Path      string // Traversal path through the dictionary graph
}

// End returns the last square of the word
func (w PlayableWord) End() Position {
	return w.Start.Step(w.Direction, len([]rune(w.Word))-1)
}

// Positions returns every square the word covers, in order
func (w PlayableWord) Positions() []Position {
	n := len([]rune(w.Word))
	out := make([]Position, n)
	for i := range n {
		out[i] = w.Start.Step(w.Direction, i)
	}
	return out
}
