package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasktracker/internal/models"
	"tasktracker/internal/store"
)

func newTask(id int64, title string) models.Task {
	return models.Task{
		ID:       id,
		Title:    title,
		DueDate:  time.Date(2025, 8, 13, 0, 0, 0, 0, time.UTC),
		Priority: models.PriorityMedium,
	}
}

// add appends task and records it, the way the tracker does.
func add(t *testing.T, h *History, s store.Store, task models.Task) {
	t.Helper()
	require.NoError(t, s.Append(task))
	h.Record(Add{Task: task})
}

func del(t *testing.T, h *History, s store.Store, id int64) {
	t.Helper()
	task, index, err := s.RemoveByID(id)
	require.NoError(t, err)
	h.Record(Delete{Task: task, Index: index})
}

func update(t *testing.T, h *History, s store.Store, next models.Task) {
	t.Helper()
	old, _, ok := s.FindByID(next.ID)
	require.True(t, ok)
	require.NoError(t, s.ReplaceByID(next.ID, next))
	h.Record(Update{Old: old, New: next})
}

func titles(s store.Store) []string {
	out := []string{}
	for _, task := range s.All() {
		out = append(out, task.Title)
	}
	return out
}

func TestHistory_Scenario(t *testing.T) {
	h := New()
	s := store.NewMemoryStore()

	a := newTask(1, "A")
	b := newTask(2, "B")
	add(t, h, s, a)
	add(t, h, s, b)
	assert.Equal(t, []string{"A", "B"}, titles(s))

	del(t, h, s, 1)
	assert.Equal(t, []string{"B"}, titles(s))
	assert.Equal(t, 3, h.UndoCount())

	top, ok := h.PeekUndo()
	require.True(t, ok)
	assert.Equal(t, Delete{Task: a, Index: 0}, top)

	_, err := h.Undo(s)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, titles(s))

	// The second undo reverts Add(B), the action below Delete(A).
	act, err := h.Undo(s)
	require.NoError(t, err)
	assert.Equal(t, Add{Task: b}, act)
	assert.Equal(t, []string{"A"}, titles(s))

	_, err = h.Redo(s)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, titles(s))

	_, err = h.Redo(s)
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, titles(s))

	assert.False(t, h.CanRedo())
	assert.Equal(t, 3, h.UndoCount())
}

func TestHistory_EmptyStacks(t *testing.T) {
	h := New()
	s := store.NewMemoryStore()

	_, err := h.Undo(s)
	assert.ErrorIs(t, err, ErrNothingToUndo)

	_, err = h.Redo(s)
	assert.ErrorIs(t, err, ErrNothingToRedo)

	assert.Equal(t, 0, s.Len())
}

func TestHistory_RecordClearsRedo(t *testing.T) {
	h := New()
	s := store.NewMemoryStore()

	add(t, h, s, newTask(1, "A"))
	add(t, h, s, newTask(2, "B"))

	_, err := h.Undo(s)
	require.NoError(t, err)
	_, err = h.Undo(s)
	require.NoError(t, err)
	assert.Equal(t, 2, h.RedoCount())

	add(t, h, s, newTask(3, "C"))
	assert.False(t, h.CanRedo())

	_, err = h.Redo(s)
	assert.ErrorIs(t, err, ErrNothingToRedo)
	assert.Equal(t, []string{"C"}, titles(s))
}

func TestHistory_UndoRedoRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(t *testing.T, h *History, s store.Store)
	}{
		{
			name: "add",
			mutate: func(t *testing.T, h *History, s store.Store) {
				add(t, h, s, newTask(4, "D"))
			},
		},
		{
			name: "delete",
			mutate: func(t *testing.T, h *History, s store.Store) {
				del(t, h, s, 2)
			},
		},
		{
			name: "update",
			mutate: func(t *testing.T, h *History, s store.Store) {
				next := newTask(3, "C renamed")
				next.Priority = models.PriorityHigh
				update(t, h, s, next)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New()
			s := store.NewMemoryStore()
			for i, title := range []string{"A", "B", "C"} {
				add(t, h, s, newTask(int64(i+1), title))
			}

			before := s.All()
			tt.mutate(t, h, s)
			after := s.All()

			_, err := h.Undo(s)
			require.NoError(t, err)
			assert.Equal(t, before, s.All())

			_, err = h.Redo(s)
			require.NoError(t, err)
			assert.Equal(t, after, s.All())
		})
	}
}

func TestHistory_UndoAllRestoresInitialState(t *testing.T) {
	h := New()
	s := store.NewMemoryStore()
	add(t, h, s, newTask(1, "A"))
	add(t, h, s, newTask(2, "B"))
	add(t, h, s, newTask(3, "C"))
	h.Clear()

	before := s.All()

	del(t, h, s, 2)
	add(t, h, s, newTask(4, "D"))
	update(t, h, s, newTask(1, "A2"))
	del(t, h, s, 3)
	update(t, h, s, newTask(4, "D2"))

	for h.CanUndo() {
		_, err := h.Undo(s)
		require.NoError(t, err)
	}
	assert.Equal(t, before, s.All())
}

func TestHistory_UndoDeleteRestoresIndex(t *testing.T) {
	h := New()
	s := store.NewMemoryStore()
	for i, title := range []string{"A", "B", "C", "D"} {
		require.NoError(t, s.Append(newTask(int64(i+1), title)))
	}

	del(t, h, s, 3)
	assert.Equal(t, []string{"A", "B", "D"}, titles(s))

	_, err := h.Undo(s)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, titles(s))
}

func TestHistory_UndoDeleteClampsIndex(t *testing.T) {
	h := New()
	s := store.NewMemoryStore()
	require.NoError(t, s.Append(newTask(1, "A")))

	h.Record(Delete{Task: newTask(2, "B"), Index: 5})

	_, err := h.Undo(s)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, titles(s))
}

func TestHistory_InconsistentStore(t *testing.T) {
	tests := []struct {
		name    string
		stored  []models.Task
		action  Action
		undo    bool
		wantErr error
	}{
		{"undo add of missing task", nil, Add{Task: newTask(9, "ghost")}, true, store.ErrNotFound},
		{"undo update of missing task", nil, Update{Old: newTask(9, "old"), New: newTask(9, "new")}, true, store.ErrNotFound},
		{"redo delete of missing task", nil, Delete{Task: newTask(9, "ghost"), Index: 0}, false, store.ErrNotFound},
		{"redo add of present task", []models.Task{newTask(1, "A")}, Add{Task: newTask(1, "A")}, false, store.ErrDuplicate},
		{"undo delete of present task", []models.Task{newTask(1, "A")}, Delete{Task: newTask(1, "A"), Index: 0}, true, store.ErrDuplicate},
		{"undo clamped delete of present task", []models.Task{newTask(1, "A")}, Delete{Task: newTask(1, "A"), Index: 7}, true, store.ErrDuplicate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New()
			s := store.NewMemoryStore()
			for _, task := range tt.stored {
				require.NoError(t, s.Append(task))
			}
			before := s.All()

			var err error
			if tt.undo {
				h.Record(tt.action)
				_, err = h.Undo(s)
			} else {
				h.redoStack = append(h.redoStack, Entry{Action: tt.action})
				_, err = h.Redo(s)
			}
			assert.ErrorIs(t, err, ErrInconsistent)
			assert.ErrorContains(t, err, tt.wantErr.Error())
			assert.Equal(t, before, s.All())
		})
	}
}

func TestHistory_FailedUndoRedoKeepsStacks(t *testing.T) {
	h := New()
	s := store.NewMemoryStore()
	add(t, h, s, newTask(1, "A"))
	add(t, h, s, newTask(2, "B"))

	_, err := h.Undo(s)
	require.NoError(t, err)

	// Drop A behind the history's back: undoing its add can no longer work.
	_, _, err = s.RemoveByID(1)
	require.NoError(t, err)

	_, err = h.Undo(s)
	require.ErrorIs(t, err, ErrInconsistent)
	assert.Equal(t, 1, h.UndoCount())
	assert.Equal(t, 1, h.RedoCount())

	top, ok := h.PeekUndo()
	require.True(t, ok)
	assert.Equal(t, int64(1), top.TaskID())

	// Put B in place so redoing its add collides.
	require.NoError(t, s.Append(newTask(2, "B")))
	_, err = h.Redo(s)
	require.ErrorIs(t, err, ErrInconsistent)
	assert.Equal(t, 1, h.UndoCount())
	assert.Equal(t, 1, h.RedoCount())
	assert.Equal(t, []string{"B"}, titles(s))
}

func TestHistory_SnapshotsAreIndependent(t *testing.T) {
	h := New()
	s := store.NewMemoryStore()

	original := newTask(1, "A")
	add(t, h, s, original)

	changed := original
	changed.Title = "changed"
	require.NoError(t, s.ReplaceByID(1, changed))

	top, ok := h.PeekUndo()
	require.True(t, ok)
	assert.Equal(t, "A", top.(Add).Task.Title)
}

func TestHistory_Entries(t *testing.T) {
	h := New()
	fixed := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	h.now = func() time.Time { return fixed }
	s := store.NewMemoryStore()

	add(t, h, s, newTask(1, "A"))
	add(t, h, s, newTask(2, "B"))
	_, err := h.Undo(s)
	require.NoError(t, err)

	undo := h.UndoEntries()
	redo := h.RedoEntries()
	require.Len(t, undo, 1)
	require.Len(t, redo, 1)
	assert.Equal(t, `Add task 1 "A"`, undo[0].Action.Description())
	assert.Equal(t, fixed, undo[0].RecordedAt)
	assert.Equal(t, KindAdd, redo[0].Action.Kind())
	assert.Equal(t, int64(2), redo[0].Action.TaskID())
}

func TestUpdate_Description(t *testing.T) {
	old := newTask(1, "A")
	done := old
	done.Completed = true
	renamed := old
	renamed.Title = "B"

	assert.Equal(t, `Complete task 1 "A"`, Update{Old: old, New: done}.Description())
	assert.Equal(t, `Reopen task 1 "A"`, Update{Old: done, New: old}.Description())
	assert.Equal(t, `Update task 1 "B"`, Update{Old: old, New: renamed}.Description())
}
