package store

import (
	"fmt"

	"tasktracker/internal/models"
)

// MemoryStore implements the Store interface over an ordered slice.
//
// Order is insertion/reinsertion order. Every lookup is a linear scan by ID,
// so each operation is O(n) in the number of tasks. MemoryStore is not safe
// for concurrent use; the tracker serializes access.
type MemoryStore struct {
	tasks []models.Task
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// InsertAt inserts task at position index, shifting later tasks right.
func (s *MemoryStore) InsertAt(index int, task models.Task) error {
	if s.indexOf(task.ID) >= 0 {
		return fmt.Errorf("insert task %d: %w", task.ID, ErrDuplicate)
	}
	if index < 0 || index > len(s.tasks) {
		return fmt.Errorf("insert task %d at %d (size %d): %w", task.ID, index, len(s.tasks), ErrOutOfRange)
	}

	s.tasks = append(s.tasks, models.Task{})
	copy(s.tasks[index+1:], s.tasks[index:])
	s.tasks[index] = task
	return nil
}

// Append adds task at the end.
func (s *MemoryStore) Append(task models.Task) error {
	if s.indexOf(task.ID) >= 0 {
		return fmt.Errorf("append task %d: %w", task.ID, ErrDuplicate)
	}
	s.tasks = append(s.tasks, task)
	return nil
}

// RemoveByID removes the task with the given id and returns it along
// with the index it occupied.
func (s *MemoryStore) RemoveByID(id int64) (models.Task, int, error) {
	i := s.indexOf(id)
	if i < 0 {
		return models.Task{}, -1, fmt.Errorf("remove task %d: %w", id, ErrNotFound)
	}

	task := s.tasks[i]
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	return task, i, nil
}

// Remove removes the task with the same ID as task.
func (s *MemoryStore) Remove(task models.Task) error {
	_, _, err := s.RemoveByID(task.ID)
	return err
}

// ReplaceByID overwrites the task with the given id, keeping its position.
func (s *MemoryStore) ReplaceByID(id int64, task models.Task) error {
	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("replace task %d: %w", id, ErrNotFound)
	}
	s.tasks[i] = task
	return nil
}

// All returns a copy of the tasks in stored order.
func (s *MemoryStore) All() []models.Task {
	out := make([]models.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// FindByID returns the task with the given id and its index.
func (s *MemoryStore) FindByID(id int64) (models.Task, int, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return models.Task{}, -1, false
	}
	return s.tasks[i], i, true
}

// Len returns the number of stored tasks.
func (s *MemoryStore) Len() int {
	return len(s.tasks)
}

func (s *MemoryStore) indexOf(id int64) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}
