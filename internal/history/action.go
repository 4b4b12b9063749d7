package history

import (
	"fmt"

	"tasktracker/internal/models"
	"tasktracker/internal/store"
)

// Kind identifies the variant of an Action.
type Kind string

const (
	KindAdd    Kind = "add"
	KindDelete Kind = "delete"
	KindUpdate Kind = "update"
)

// Action is a reversible store mutation. The set of implementations is closed:
// Add, Delete and Update.
type Action interface {
	// Kind returns the variant tag.
	Kind() Kind

	// TaskID returns the id of the task the action concerns.
	TaskID() int64

	// Description returns a human-readable description of the action.
	Description() string

	// apply performs the original effect against s.
	apply(s store.Store) error

	// revert performs the inverse effect against s.
	revert(s store.Store) error
}

// Add records a task that was appended to the store.
type Add struct {
	Task models.Task
}

func (a Add) Kind() Kind    { return KindAdd }
func (a Add) TaskID() int64 { return a.Task.ID }

func (a Add) Description() string {
	return fmt.Sprintf("Add task %d %q", a.Task.ID, a.Task.Title)
}

func (a Add) apply(s store.Store) error {
	return s.Append(a.Task)
}

func (a Add) revert(s store.Store) error {
	return s.Remove(a.Task)
}

// Delete records a task removed from the store and the index it occupied.
type Delete struct {
	Task  models.Task
	Index int
}

func (d Delete) Kind() Kind    { return KindDelete }
func (d Delete) TaskID() int64 { return d.Task.ID }

func (d Delete) Description() string {
	return fmt.Sprintf("Delete task %d %q", d.Task.ID, d.Task.Title)
}

func (d Delete) apply(s store.Store) error {
	return s.Remove(d.Task)
}

// revert puts the task back where it was. An index that no longer fits the
// store falls back to appending.
func (d Delete) revert(s store.Store) error {
	if d.Index < 0 || d.Index > s.Len() {
		return s.Append(d.Task)
	}
	return s.InsertAt(d.Index, d.Task)
}

// Update records the full value of a task before and after a change.
// Old and New always share the same ID.
type Update struct {
	Old models.Task
	New models.Task
}

func (u Update) Kind() Kind    { return KindUpdate }
func (u Update) TaskID() int64 { return u.New.ID }

func (u Update) Description() string {
	toggled := u.Old
	toggled.Completed = !toggled.Completed
	if toggled == u.New {
		if u.New.Completed {
			return fmt.Sprintf("Complete task %d %q", u.New.ID, u.New.Title)
		}
		return fmt.Sprintf("Reopen task %d %q", u.New.ID, u.New.Title)
	}
	return fmt.Sprintf("Update task %d %q", u.New.ID, u.New.Title)
}

func (u Update) apply(s store.Store) error {
	return s.ReplaceByID(u.Old.ID, u.New)
}

func (u Update) revert(s store.Store) error {
	return s.ReplaceByID(u.New.ID, u.Old)
}
