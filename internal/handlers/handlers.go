package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"tasktracker/internal/models"
	"tasktracker/internal/tracker"
)

// Handlers holds the HTTP handlers and their dependencies.
type Handlers struct {
	tracker     *tracker.Tracker
	defaultSort tracker.SortKey
}

// New creates a new Handlers instance.
func New(t *tracker.Tracker, defaultSort tracker.SortKey) *Handlers {
	return &Handlers{
		tracker:     t,
		defaultSort: defaultSort,
	}
}

// parseID extracts and parses an integer ID from URL parameters.
func parseID(r *http.Request, param string) (int64, error) {
	idStr := chi.URLParam(r, param)
	return strconv.ParseInt(idStr, 10, 64)
}

// parseDate parses a date string in YYYY-MM-DD format.
func parseDate(s string) (time.Time, error) {
	return models.ParseDate(models.DateLayout, s)
}

func decodeJSON(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func respondJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// respondError sends an error response.
func respondError(w http.ResponseWriter, code int, message string) {
	respondJSON(w, code, map[string]string{"error": message})
}

// taskResponse is the JSON form of a task, with calendar dates as YYYY-MM-DD.
type taskResponse struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	DueDate     string          `json:"due_date"`
	CreatedAt   string          `json:"created_at"`
	Priority    models.Priority `json:"priority"`
	Completed   bool            `json:"completed"`
	Archived    bool            `json:"archived"`
	Overdue     bool            `json:"overdue"`
}

func newTaskResponse(t models.Task) taskResponse {
	return taskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate.Format(models.DateLayout),
		CreatedAt:   t.CreatedAt.Format(models.DateLayout),
		Priority:    t.Priority,
		Completed:   t.Completed,
		Archived:    t.Archived,
		Overdue:     t.IsOverdue(time.Now()),
	}
}
