// Package router sets up the HTTP route table and middleware chain for
// the JSON API.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"kandacms/internal/handlers"
	"kandacms/internal/middleware"
)

// New creates and returns the configured chi router with all middleware
// and routes wired up.
func New(api *handlers.API) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	// Health check.
	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		// Authentication. Note: there is no session middleware behind
		// these; the dashboard endpoints below are deliberately open,
		// matching the single-shared-credential model.
		r.Post("/auth/login", api.Login)
		r.Post("/change-password", api.ChangePassword)

		// News posts. /news is the public published-only view; /news/all
		// is the dashboard view including drafts.
		r.Route("/news", func(r chi.Router) {
			r.Get("/", api.NewsList)
			r.Get("/all", api.NewsListAll)
			r.Post("/", api.NewsCreate)
			r.Get("/{id}", api.NewsGet)
			r.Put("/{id}", api.NewsUpdate)
			r.Delete("/{id}", api.NewsDelete)
		})

		// Media records. No update: assets are immutable once created.
		r.Route("/media", func(r chi.Router) {
			r.Get("/", api.MediaList)
			r.Post("/", api.MediaCreate)
			r.Get("/{id}", api.MediaGet)
			r.Delete("/{id}", api.MediaDelete)
		})

		// Contact form.
		r.Post("/contact", api.ContactCreate)
		r.Get("/contact", api.ContactList)

		// Site settings singleton.
		r.Get("/settings", api.SettingsGet)
		r.Put("/settings", api.SettingsUpdate)
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
