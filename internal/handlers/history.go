package handlers

import (
	"net/http"
	"time"

	"tasktracker/internal/history"
)

type actionResponse struct {
	Kind        history.Kind `json:"kind"`
	TaskID      int64        `json:"task_id"`
	Description string       `json:"description"`
	RecordedAt  *time.Time   `json:"recorded_at,omitempty"`
}

type undoRedoResponse struct {
	Applied bool            `json:"applied"`
	Action  *actionResponse `json:"action,omitempty"`
	Message string          `json:"message,omitempty"`
}

type historyResponse struct {
	Undo []actionResponse `json:"undo"`
	Redo []actionResponse `json:"redo"`
}

func newActionResponse(a history.Action) *actionResponse {
	return &actionResponse{
		Kind:        a.Kind(),
		TaskID:      a.TaskID(),
		Description: a.Description(),
	}
}

// Undo reverts the most recent action.
func (h *Handlers) Undo(w http.ResponseWriter, r *http.Request) {
	action, ok := h.tracker.Undo()
	if !ok {
		respondJSON(w, http.StatusOK, undoRedoResponse{Message: history.ErrNothingToUndo.Error()})
		return
	}
	respondJSON(w, http.StatusOK, undoRedoResponse{Applied: true, Action: newActionResponse(action)})
}

// Redo reapplies the most recently undone action.
func (h *Handlers) Redo(w http.ResponseWriter, r *http.Request) {
	action, ok := h.tracker.Redo()
	if !ok {
		respondJSON(w, http.StatusOK, undoRedoResponse{Message: history.ErrNothingToRedo.Error()})
		return
	}
	respondJSON(w, http.StatusOK, undoRedoResponse{Applied: true, Action: newActionResponse(action)})
}

// History lists pending undo and redo entries, most recent first.
func (h *Handlers) History(w http.ResponseWriter, r *http.Request) {
	info := h.tracker.History()
	respondJSON(w, http.StatusOK, historyResponse{
		Undo: entryResponses(info.Undo),
		Redo: entryResponses(info.Redo),
	})
}

func entryResponses(entries []history.Entry) []actionResponse {
	out := make([]actionResponse, 0, len(entries))
	for _, e := range entries {
		resp := newActionResponse(e.Action)
		recordedAt := e.RecordedAt
		resp.RecordedAt = &recordedAt
		out = append(out, *resp)
	}
	return out
}
