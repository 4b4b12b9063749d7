package models

import (
	"errors"
	"strings"
	"time"
)

// DateLayout is the wire format for calendar dates in the JSON API.
const DateLayout = "2006-01-02"

// Task represents a single tracked task.
//
// Task holds no pointer or slice fields, so assigning a Task copies the whole
// value. History entries rely on this to keep independent snapshots.
type Task struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"due_date"`
	CreatedAt   time.Time `json:"created_at"`
	Priority    Priority  `json:"priority"`
	Completed   bool      `json:"completed"`
	Archived    bool      `json:"archived"`
}

// Validate checks that the task has valid field values.
func (t *Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return errors.New("title is required")
	}

	if !t.Priority.Valid() {
		return errors.New("priority must be 'high', 'medium', or 'low'")
	}

	if t.DueDate.IsZero() {
		return errors.New("due date is required")
	}

	return nil
}

// IsOverdue returns true if the task has a due date before today and is not completed.
func (t *Task) IsOverdue(now time.Time) bool {
	if t.Completed {
		return false
	}
	return t.DueDate.Before(Date(now))
}

// PriorityOrder returns a numeric value for sorting by priority.
// Lower numbers indicate higher priority.
func (t *Task) PriorityOrder() int {
	return t.Priority.Order()
}

// Date truncates t to its calendar date at midnight UTC.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a calendar date using layout.
func ParseDate(layout, s string) (time.Time, error) {
	t, err := time.Parse(layout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, err
	}
	return Date(t), nil
}
