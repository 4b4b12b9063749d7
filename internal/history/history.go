package history

import (
	"errors"
	"fmt"
	"time"

	"tasktracker/internal/store"
)

// Common errors for history operations.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")

	// ErrInconsistent means a recorded action no longer matches the store.
	// It indicates a bug in whatever recorded the action.
	ErrInconsistent = errors.New("history inconsistent with store")
)

// Entry is a recorded action with the time it was first recorded.
type Entry struct {
	Action     Action
	RecordedAt time.Time
}

// History manages the undo and redo stacks.
type History struct {
	undoStack []Entry
	redoStack []Entry
	now       func() time.Time
}

// New creates an empty history.
func New() *History {
	return &History{now: time.Now}
}

// Record pushes a freshly applied action onto the undo stack.
// Clears the redo stack: recording after an undo discards the undone future.
func (h *History) Record(a Action) {
	h.undoStack = append(h.undoStack, Entry{Action: a, RecordedAt: h.now()})
	h.redoStack = nil
}

// Undo applies the inverse of the most recent action to s and moves it to
// the redo stack. If s rejects the change both stacks are left as they were.
func (h *History) Undo(s store.Store) (Action, error) {
	if len(h.undoStack) == 0 {
		return nil, ErrNothingToUndo
	}

	entry := h.undoStack[len(h.undoStack)-1]
	if err := entry.Action.revert(s); err != nil {
		return entry.Action, fmt.Errorf("%w: undo %s: %v", ErrInconsistent, entry.Action.Description(), err)
	}

	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.redoStack = append(h.redoStack, entry)
	return entry.Action, nil
}

// Redo reapplies the most recently undone action to s and moves it back to
// the undo stack. If s rejects the change both stacks are left as they were.
func (h *History) Redo(s store.Store) (Action, error) {
	if len(h.redoStack) == 0 {
		return nil, ErrNothingToRedo
	}

	entry := h.redoStack[len(h.redoStack)-1]
	if err := entry.Action.apply(s); err != nil {
		return entry.Action, fmt.Errorf("%w: redo %s: %v", ErrInconsistent, entry.Action.Description(), err)
	}

	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.undoStack = append(h.undoStack, entry)
	return entry.Action, nil
}

// CanUndo returns true if undo is available.
func (h *History) CanUndo() bool {
	return len(h.undoStack) > 0
}

// CanRedo returns true if redo is available.
func (h *History) CanRedo() bool {
	return len(h.redoStack) > 0
}

// UndoCount returns the number of undo operations available.
func (h *History) UndoCount() int {
	return len(h.undoStack)
}

// RedoCount returns the number of redo operations available.
func (h *History) RedoCount() int {
	return len(h.redoStack)
}

// UndoEntries returns the undo stack, bottom first.
func (h *History) UndoEntries() []Entry {
	return append([]Entry(nil), h.undoStack...)
}

// RedoEntries returns the redo stack, bottom first.
func (h *History) RedoEntries() []Entry {
	return append([]Entry(nil), h.redoStack...)
}

// PeekUndo returns the next action Undo would revert.
func (h *History) PeekUndo() (Action, bool) {
	if len(h.undoStack) == 0 {
		return nil, false
	}
	return h.undoStack[len(h.undoStack)-1].Action, true
}

// PeekRedo returns the next action Redo would reapply.
func (h *History) PeekRedo() (Action, bool) {
	if len(h.redoStack) == 0 {
		return nil, false
	}
	return h.redoStack[len(h.redoStack)-1].Action, true
}

// Clear removes all undo/redo history.
func (h *History) Clear() {
	h.undoStack = nil
	h.redoStack = nil
}
