package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == OutputJSON {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == OutputJSON {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case SelfPlayResult:
		o.printSelfPlay(v)
	case MoveList:
		o.printMoveList(v)
	case LexiconList:
		o.printLexiconList(v)
	case ImportResult:
		o.printImportResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// SelfPlayResult summarizes a bot-only game
type SelfPlayResult struct {
	GameID  string        `json:"game_id"`
	State   string        `json:"state"`
	Stalled bool          `json:"stalled"`
	Moves   []MoveSummary `json:"moves"`
	Scores  []PlayerScore `json:"scores"`
	Winner  *string       `json:"winner"`
	Board   []string      `json:"board"`
}

// MoveSummary is one turn of a self-play game
type MoveSummary struct {
	PlayerID string `json:"player_id"`
	Type     string `json:"type"`
	Word     string `json:"word,omitempty"`
	Score    int    `json:"score"`
}

// PlayerScore is a player's final total
type PlayerScore struct {
	PlayerID    string `json:"player_id"`
	DisplayName string `json:"display_name"`
	Strategy    string `json:"strategy"`
	Score       int    `json:"score"`
}

// MoveList is the set of words a rack can play
type MoveList struct {
	Rack  string       `json:"rack"`
	Moves []MoveOption `json:"moves"`
}

// MoveOption is one candidate placement
type MoveOption struct {
	Word      string `json:"word"`
	Row       int    `json:"row"`
	Col       int    `json:"col"`
	Direction string `json:"direction"`
	Score     int    `json:"score"`
}

// LexiconList describes the stored word lists
type LexiconList struct {
	Lexicons []LexiconInfo `json:"lexicons"`
}

// LexiconInfo is a stored word list and its size
type LexiconInfo struct {
	Name  string `json:"name"`
	Words int    `json:"words"`
}

// ImportResult reports a word list import
type ImportResult struct {
	Lexicon string `json:"lexicon"`
	Words   int    `json:"words"`
}

func (o *Output) printSelfPlay(r SelfPlayResult) {
	fmt.Fprintf(o.w, "Game: %s\n", r.GameID)
	fmt.Fprintf(o.w, "State: %s\n", r.State)
	if r.Stalled {
		fmt.Fprintln(o.w, "Bots ran out of scoring moves")
	}

	fmt.Fprintf(o.w, "\nMoves (%d):\n", len(r.Moves))
	for i, m := range r.Moves {
		switch {
		case m.Word != "":
			fmt.Fprintf(o.w, "  %3d. %s %s %s (%d pts)\n", i+1, m.PlayerID, m.Type, m.Word, m.Score)
		default:
			fmt.Fprintf(o.w, "  %3d. %s %s\n", i+1, m.PlayerID, m.Type)
		}
	}

	fmt.Fprintln(o.w, "\nBoard:")
	o.printBoard(r.Board)

	fmt.Fprintln(o.w, "\nScores:")
	for _, s := range r.Scores {
		fmt.Fprintf(o.w, "  %s (%s): %d points\n", s.DisplayName, s.Strategy, s.Score)
	}
	if r.Winner != nil {
		fmt.Fprintf(o.w, "\nWinner: %s\n", *r.Winner)
	}
}

func (o *Output) printBoard(rows []string) {
	if len(rows) == 0 {
		return
	}
	size := len(rows)

	// Print column headers
	fmt.Fprint(o.w, "    ")
	for col := range size {
		fmt.Fprintf(o.w, "%2d ", col)
	}
	fmt.Fprintln(o.w)

	// Print top border
	fmt.Fprintf(o.w, "   +%s+\n", strings.Repeat("---", size))

	// Print rows
	for row, line := range rows {
		fmt.Fprintf(o.w, "%2d |", row)
		for _, cell := range line {
			fmt.Fprintf(o.w, " %c ", cell)
		}
		fmt.Fprintln(o.w, "|")
	}

	// Print bottom border
	fmt.Fprintf(o.w, "   +%s+\n", strings.Repeat("---", size))
}

func (o *Output) printMoveList(m MoveList) {
	fmt.Fprintf(o.w, "Rack: %s\n", m.Rack)
	if len(m.Moves) == 0 {
		fmt.Fprintln(o.w, "No playable words")
		return
	}
	fmt.Fprintf(o.w, "Moves (%d):\n", len(m.Moves))
	for _, mv := range m.Moves {
		fmt.Fprintf(o.w, "  %-8s (%d,%d) %-10s %d pts\n", mv.Word, mv.Row, mv.Col, mv.Direction, mv.Score)
	}
}

func (o *Output) printLexiconList(l LexiconList) {
	if len(l.Lexicons) == 0 {
		fmt.Fprintln(o.w, "No lexicons stored")
		return
	}
	fmt.Fprintf(o.w, "Lexicons (%d):\n", len(l.Lexicons))
	for _, lex := range l.Lexicons {
		fmt.Fprintf(o.w, "  - %s (%d words)\n", lex.Name, lex.Words)
	}
}

func (o *Output) printImportResult(r ImportResult) {
	fmt.Fprintf(o.w, "Imported %d words into lexicon %s\n", r.Words, r.Lexicon)
}
