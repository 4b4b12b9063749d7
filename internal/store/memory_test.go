package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasktracker/internal/models"
)

func setupTestStore(t *testing.T, ids ...int64) *MemoryStore {
	t.Helper()
	s := NewMemoryStore()
	for _, id := range ids {
		require.NoError(t, s.Append(models.Task{ID: id, Title: "task", Priority: models.PriorityMedium}))
	}
	return s
}

func storeIDs(s *MemoryStore) []int64 {
	var ids []int64
	for _, task := range s.All() {
		ids = append(ids, task.ID)
	}
	return ids
}

func TestInsertAt(t *testing.T) {
	tests := []struct {
		name  string
		index int
		want  []int64
	}{
		{"at front", 0, []int64{9, 1, 2, 3}},
		{"in middle", 1, []int64{1, 9, 2, 3}},
		{"at end", 3, []int64{1, 2, 3, 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := setupTestStore(t, 1, 2, 3)
			require.NoError(t, s.InsertAt(tt.index, models.Task{ID: 9}))
			assert.Equal(t, tt.want, storeIDs(s))
		})
	}
}

func TestInsertAt_OutOfRange(t *testing.T) {
	s := setupTestStore(t, 1, 2)

	for _, index := range []int{-1, 3, 100} {
		err := s.InsertAt(index, models.Task{ID: 9})
		assert.ErrorIs(t, err, ErrOutOfRange, "index %d", index)
	}
	assert.Equal(t, []int64{1, 2}, storeIDs(s))
}

func TestDuplicateID(t *testing.T) {
	s := setupTestStore(t, 1, 2)

	err := s.Append(models.Task{ID: 2, Title: "again"})
	assert.ErrorIs(t, err, ErrDuplicate)

	err = s.InsertAt(0, models.Task{ID: 1, Title: "again"})
	assert.ErrorIs(t, err, ErrDuplicate)

	assert.Equal(t, []int64{1, 2}, storeIDs(s))
	for _, task := range s.All() {
		assert.Equal(t, "task", task.Title)
	}
}

func TestRemoveByID(t *testing.T) {
	s := setupTestStore(t, 1, 2, 3)

	task, index, err := s.RemoveByID(2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), task.ID)
	assert.Equal(t, 1, index)
	assert.Equal(t, []int64{1, 3}, storeIDs(s))

	_, _, err = s.RemoveByID(2)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRemove_MatchesByIDOnly(t *testing.T) {
	s := setupTestStore(t, 1, 2)

	// Same id, different fields: still the same task.
	err := s.Remove(models.Task{ID: 1, Title: "stale snapshot"})
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, storeIDs(s))

	assert.ErrorIs(t, s.Remove(models.Task{ID: 1}), ErrNotFound)
}

func TestReplaceByID_KeepsPosition(t *testing.T) {
	s := setupTestStore(t, 1, 2, 3)

	err := s.ReplaceByID(2, models.Task{ID: 2, Title: "renamed"})
	require.NoError(t, err)

	task, index, ok := s.FindByID(2)
	require.True(t, ok)
	assert.Equal(t, 1, index)
	assert.Equal(t, "renamed", task.Title)

	assert.ErrorIs(t, s.ReplaceByID(42, models.Task{ID: 42}), ErrNotFound)
}

func TestAll_ReturnsCopy(t *testing.T) {
	s := setupTestStore(t, 1)

	tasks := s.All()
	tasks[0].Title = "mutated"

	got, _, _ := s.FindByID(1)
	assert.Equal(t, "task", got.Title)
}

func TestFindByID_Missing(t *testing.T) {
	s := setupTestStore(t)

	_, index, ok := s.FindByID(1)
	assert.False(t, ok)
	assert.Equal(t, -1, index)
	assert.Equal(t, 0, s.Len())
}
