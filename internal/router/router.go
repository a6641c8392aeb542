// Package router sets up all HTTP routes and middleware chains for the
// sitekit API. Template reads are open; generation is rate limited per IP.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"sitekit/internal/handlers"
	"sitekit/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up. generateLimiter may be nil to disable rate
// limiting on the generate endpoint.
func New(templates *handlers.Templates, generateLimiter *middleware.RateLimiter) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	r.NotFound(jsonStatus(http.StatusNotFound, "not found"))
	r.MethodNotAllowed(jsonStatus(http.StatusMethodNotAllowed, "method not allowed"))

	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		r.Route("/templates", func(r chi.Router) {
			r.Get("/", templates.List)
			r.Get("/categories", templates.Categories)
			r.Get("/{id}", templates.Get)
			r.Get("/{id}/preview", templates.Preview)

			r.Group(func(r chi.Router) {
				if generateLimiter != nil {
					r.Use(generateLimiter.Middleware)
				}
				r.Post("/{id}/generate", templates.Generate)
			})
		})

		r.Route("/generations", func(r chi.Router) {
			r.Get("/", templates.Generations)
			r.Get("/stats", templates.GenerationStats)
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// jsonStatus returns a handler that always answers with the given status
// and a JSON error body.
func jsonStatus(status int, msg string) http.HandlerFunc {
	body := []byte(`{"error":"` + msg + `"}`)
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write(body)
	}
}
