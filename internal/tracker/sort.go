package tracker

import (
	"fmt"
	"sort"
	"strings"

	"tasktracker/internal/models"
)

// SortKey selects the order of ListTasks.
type SortKey string

const (
	SortNone     SortKey = "none"
	SortPriority SortKey = "priority"
	SortDueDate  SortKey = "due"
	SortCreated  SortKey = "created"
)

// ParseSortKey parses a sort key name. The empty string means SortNone.
func ParseSortKey(s string) (SortKey, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "default":
		return SortNone, nil
	case "priority":
		return SortPriority, nil
	case "due", "duedate", "due_date":
		return SortDueDate, nil
	case "created", "creation", "created_at":
		return SortCreated, nil
	}
	return "", fmt.Errorf("unknown sort key: %q", s)
}

// ListTasks returns a copy of the tasks in the requested order.
// Sorting is stable and never changes the stored order.
func (t *Tracker) ListTasks(key SortKey) []models.Task {
	t.mu.Lock()
	tasks := t.store.All()
	t.mu.Unlock()

	switch key {
	case SortPriority:
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].PriorityOrder() < tasks[j].PriorityOrder()
		})
	case SortDueDate:
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].DueDate.Before(tasks[j].DueDate)
		})
	case SortCreated:
		sort.SliceStable(tasks, func(i, j int) bool {
			if tasks[i].CreatedAt.Equal(tasks[j].CreatedAt) {
				return tasks[i].ID < tasks[j].ID
			}
			return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
		})
	}

	return tasks
}
