package handlers

import (
	"net/http"

	"tasktracker/internal/models"
	"tasktracker/internal/tracker"
)

type createTaskRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	DueDate     string          `json:"due_date"`
	Priority    models.Priority `json:"priority"`
}

type updateTaskRequest struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	DueDate     *string          `json:"due_date"`
	Priority    *models.Priority `json:"priority"`
}

// ListTasks returns all tasks, optionally sorted by the "sort" query parameter.
func (h *Handlers) ListTasks(w http.ResponseWriter, r *http.Request) {
	key := h.defaultSort
	if s := r.URL.Query().Get("sort"); s != "" {
		parsed, err := tracker.ParseSortKey(s)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		key = parsed
	}

	tasks := h.tracker.ListTasks(key)
	out := make([]taskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, newTaskResponse(t))
	}

	respondJSON(w, http.StatusOK, out)
}

// GetTask returns a single task.
func (h *Handlers) GetTask(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	task, ok := h.tracker.Get(id)
	if !ok {
		respondError(w, http.StatusNotFound, "task not found")
		return
	}

	respondJSON(w, http.StatusOK, newTaskResponse(task))
}

// CreateTask creates a new task.
func (h *Handlers) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return
	}

	due, err := parseDate(req.DueDate)
	if err != nil {
		respondError(w, http.StatusBadRequest, "due_date must be YYYY-MM-DD")
		return
	}

	task, err := h.tracker.AddTask(req.Title, req.Description, due, req.Priority)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, newTaskResponse(task))
}

// UpdateTask applies a partial update; omitted fields keep their value.
func (h *Handlers) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	var req updateTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return
	}

	patch := tracker.Patch{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
	}
	if req.DueDate != nil {
		due, err := parseDate(*req.DueDate)
		if err != nil {
			respondError(w, http.StatusBadRequest, "due_date must be YYYY-MM-DD")
			return
		}
		patch.DueDate = &due
	}

	found, err := h.tracker.UpdateTask(id, patch)
	if !found {
		respondError(w, http.StatusNotFound, "task not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.respondTask(w, id)
}

// DeleteTask deletes a task.
func (h *Handlers) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	if !h.tracker.DeleteTask(id) {
		respondError(w, http.StatusNotFound, "task not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ToggleTask toggles the completion status of a task.
func (h *Handlers) ToggleTask(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	if !h.tracker.ToggleCompleted(id) {
		respondError(w, http.StatusNotFound, "task not found")
		return
	}

	// Return the updated task
	h.respondTask(w, id)
}

func (h *Handlers) respondTask(w http.ResponseWriter, id int64) {
	task, ok := h.tracker.Get(id)
	if !ok {
		respondError(w, http.StatusNotFound, "task not found")
		return
	}
	respondJSON(w, http.StatusOK, newTaskResponse(task))
}
