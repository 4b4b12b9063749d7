package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter mounts the task API on a chi router.
// Recoverer turns an internal-consistency panic into a 500 response.
func NewRouter(h *Handlers, logRequests bool) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	if logRequests {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))

	// Task API routes
	r.Route("/api/tasks", func(r chi.Router) {
		r.Get("/", h.ListTasks)
		r.Post("/", h.CreateTask)
		r.Get("/{id}", h.GetTask)
		r.Patch("/{id}", h.UpdateTask)
		r.Delete("/{id}", h.DeleteTask)
		r.Post("/{id}/toggle", h.ToggleTask)
	})

	// History routes
	r.Post("/api/undo", h.Undo)
	r.Post("/api/redo", h.Redo)
	r.Get("/api/history", h.History)

	return r
}
