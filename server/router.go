package server

import (
	"net/http"

	"Reelist/handlers"
	"Reelist/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth   *handlers.AuthHandler
	Search *handlers.SearchHandler
	Tasks  *handlers.TaskHandler
}

func NewRouter(h Handlers, auth middleware.Authenticator) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logging)
	r.Use(chimw.Recoverer)

	// Public routes
	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pong"))
	})
	r.Post("/register", h.Auth.Register)
	r.Post("/login", h.Auth.Login)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(auth))

		r.Get("/search", h.Search.Search)

		r.Route("/tasks", func(r chi.Router) {
			r.Get("/", h.Tasks.List)
			r.Post("/", h.Tasks.Create)
			r.Get("/trash", h.Tasks.Trash)
			r.Get("/stats", h.Tasks.GetStats)

			r.Route("/{id:[0-9]+}", func(r chi.Router) {
				r.Put("/", h.Tasks.Update)
				r.Delete("/", h.Tasks.Delete)
				r.Post("/restore", h.Tasks.Restore)
				r.Delete("/permanent", h.Tasks.PermanentDelete)
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"Not found"}` + "\n"))
	})

	return r
}
