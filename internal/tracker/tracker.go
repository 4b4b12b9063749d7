// Package tracker is the façade front ends use to read and mutate tasks.
//
// Every mutation goes through the store and is recorded in the history as
// exactly one action. A single mutex guards the store and the history
// together, so a Tracker can be shared between goroutines.
package tracker

import (
	"errors"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"tasktracker/internal/history"
	"tasktracker/internal/models"
	"tasktracker/internal/store"
)

// Patch represents a partial update.
// nil pointer => "keep current value"
type Patch struct {
	Title       *string
	Description *string
	DueDate     *time.Time
	Priority    *models.Priority
}

// IsEmpty returns true if the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.DueDate == nil && p.Priority == nil
}

func (p Patch) applyTo(t *models.Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.DueDate != nil {
		t.DueDate = models.Date(*p.DueDate)
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
}

// Tracker owns a task store and its history.
type Tracker struct {
	mu      sync.Mutex
	store   store.Store
	history *history.History
	nextID  int64
	now     func() time.Time
	logger  *log.Logger
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithLogger sets the logger for undo/redo and mutation messages.
func WithLogger(l *log.Logger) Option {
	return func(t *Tracker) { t.logger = l }
}

// WithClock sets the clock used for creation dates.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// WithStore replaces the default in-memory store.
// The store must be empty; ids start at 1.
func WithStore(s store.Store) Option {
	return func(t *Tracker) { t.store = s }
}

// New creates a Tracker with an empty store and history.
func New(opts ...Option) *Tracker {
	t := &Tracker{
		store:   store.NewMemoryStore(),
		history: history.New(),
		nextID:  1,
		now:     time.Now,
		logger:  log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// AddTask creates a task with the next sequential id and appends it.
func (t *Tracker) AddTask(title, description string, due time.Time, priority models.Priority) (models.Task, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	task := models.Task{
		ID:          t.nextID,
		Title:       title,
		Description: description,
		DueDate:     models.Date(due),
		CreatedAt:   models.Date(t.now()),
		Priority:    priority,
	}
	if err := task.Validate(); err != nil {
		return models.Task{}, fmt.Errorf("invalid task: %w", err)
	}

	if err := t.store.Append(task); err != nil {
		panic(fmt.Errorf("%w: %v", history.ErrInconsistent, err))
	}
	t.nextID++
	t.history.Record(history.Add{Task: task})
	t.logger.Printf("added task %d", task.ID)

	return task, nil
}

// DeleteTask removes the task with the given id.
// Returns false if no such task exists.
func (t *Tracker) DeleteTask(id int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	task, index, err := t.store.RemoveByID(id)
	if err != nil {
		return false
	}

	t.history.Record(history.Delete{Task: task, Index: index})
	t.logger.Printf("deleted task %d", id)
	return true
}

// UpdateTask applies the fields set in patch to the task with the given id.
// Returns false if no such task exists. An error means the merged task is
// invalid; nothing is changed or recorded in that case.
func (t *Tracker) UpdateTask(id int64, patch Patch) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	old, _, ok := t.store.FindByID(id)
	if !ok {
		return false, nil
	}

	next := old
	patch.applyTo(&next)
	if err := next.Validate(); err != nil {
		return true, fmt.Errorf("invalid task: %w", err)
	}

	t.replace(old, next)
	t.logger.Printf("updated task %d", id)
	return true, nil
}

// ToggleCompleted flips the completed flag of the task with the given id.
// Returns false if no such task exists.
func (t *Tracker) ToggleCompleted(id int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	old, _, ok := t.store.FindByID(id)
	if !ok {
		return false
	}

	next := old
	next.Completed = !old.Completed

	t.replace(old, next)
	t.logger.Printf("toggled completion status for task %d", id)
	return true
}

func (t *Tracker) replace(old, next models.Task) {
	if err := t.store.ReplaceByID(old.ID, next); err != nil {
		// FindByID just returned old under the same lock.
		panic(fmt.Errorf("%w: %v", history.ErrInconsistent, err))
	}
	t.history.Record(history.Update{Old: old, New: next})
}

// Undo reverts the most recent action. Returns false if there is nothing to
// undo. Panics if the history no longer matches the store.
func (t *Tracker) Undo() (history.Action, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	action, err := t.history.Undo(t.store)
	if errors.Is(err, history.ErrNothingToUndo) {
		t.logger.Print("nothing to undo")
		return nil, false
	}
	if err != nil {
		panic(err)
	}

	t.logger.Printf("undo %s: %s", action.Kind(), action.Description())
	return action, true
}

// Redo reapplies the most recently undone action. Returns false if there is
// nothing to redo. Panics if the history no longer matches the store.
func (t *Tracker) Redo() (history.Action, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	action, err := t.history.Redo(t.store)
	if errors.Is(err, history.ErrNothingToRedo) {
		t.logger.Print("nothing to redo")
		return nil, false
	}
	if err != nil {
		panic(err)
	}

	t.logger.Printf("redo %s: %s", action.Kind(), action.Description())
	return action, true
}

// Get returns the task with the given id.
func (t *Tracker) Get(id int64) (models.Task, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	task, _, ok := t.store.FindByID(id)
	return task, ok
}

// HistoryInfo describes the pending undo and redo entries, most recent first.
type HistoryInfo struct {
	Undo []history.Entry
	Redo []history.Entry
}

// History returns a snapshot of both history stacks.
func (t *Tracker) History() HistoryInfo {
	t.mu.Lock()
	defer t.mu.Unlock()

	return HistoryInfo{
		Undo: reversed(t.history.UndoEntries()),
		Redo: reversed(t.history.RedoEntries()),
	}
}

func reversed(entries []history.Entry) []history.Entry {
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries
}
