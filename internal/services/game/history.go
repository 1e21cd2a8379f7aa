package game

import (
	"slices"

	"github.com/mcoot/scrabble-go/internal/model"
)

// UndoRedo keeps applied moves and moves that have been undone
type UndoRedo struct {
	undo []model.Move
	redo []model.Move
}

// NewUndoRedo creates an empty history
func NewUndoRedo() *UndoRedo {
	return &UndoRedo{}
}

// Add records a newly applied move; anything undone before it can no longer be redone
func (h *UndoRedo) Add(move model.Move) {
	h.undo = append(h.undo, move)
	h.redo = nil
}

// Undo pops the latest applied move onto the redo stack
func (h *UndoRedo) Undo() (model.Move, bool) {
	if len(h.undo) == 0 {
		return nil, false
	}
	move := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, move)
	return move, true
}

// Redo pops the latest undone move back onto the undo stack
func (h *UndoRedo) Redo() (model.Move, bool) {
	if len(h.redo) == 0 {
		return nil, false
	}
	move := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, move)
	return move, true
}

// PeekRedo returns the move Redo would return next
func (h *UndoRedo) PeekRedo() (model.Move, bool) {
	if len(h.redo) == 0 {
		return nil, false
	}
	return h.redo[len(h.redo)-1], true
}

func (h *UndoRedo) CanUndo() bool { return len(h.undo) > 0 }

func (h *UndoRedo) CanRedo() bool { return len(h.redo) > 0 }

// Moves returns the applied moves, oldest first
func (h *UndoRedo) Moves() []model.Move {
	return slices.Clone(h.undo)
}
