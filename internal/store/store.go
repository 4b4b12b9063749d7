package store

import (
	"errors"

	"tasktracker/internal/models"
)

var (
	// ErrNotFound is returned when no task has the requested id.
	ErrNotFound = errors.New("task not found")

	// ErrOutOfRange is returned when an insert position is outside [0, Len].
	ErrOutOfRange = errors.New("index out of range")

	// ErrDuplicate is returned when a task with the same id is already stored.
	ErrDuplicate = errors.New("task already exists")
)

// Store defines the primitive mutations on the ordered task collection.
//
// Only the history engine and the tracker façade call the mutating methods.
// Tasks are identified by ID, and an ID appears at most once in the store.
type Store interface {
	// Mutations
	InsertAt(index int, task models.Task) error
	Append(task models.Task) error
	RemoveByID(id int64) (models.Task, int, error)
	Remove(task models.Task) error
	ReplaceByID(id int64, task models.Task) error

	// Reads
	All() []models.Task
	FindByID(id int64) (models.Task, int, bool)
	Len() int
}
