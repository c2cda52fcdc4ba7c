package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/wordoftheday-backend/internal/transport/middleware"
)

// NewRouter mounts every endpoint behind mw. All routes are GET-only;
// other methods get a JSON 405 with Allow: GET. An empty slug ("/word/")
// reaches BySlug so it is rejected as invalid rather than unrouted.
func NewRouter(mw middleware.Middleware, words *WordHandler, pages *PageHandler, health *HealthHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(mw)
	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed)

	r.Route("/word", func(r chi.Router) {
		r.Get("/today", words.Today)
		r.Get("/history", words.History)
		r.Get("/", words.BySlug)
		r.Get("/{slug}", words.BySlug)
	})
	r.Get("/preview/words", words.Preview)

	r.Route("/page", func(r chi.Router) {
		r.Get("/today", pages.Today)
		r.Get("/", pages.BySlug)
		r.Get("/{slug}", pages.BySlug)
	})

	r.Get("/live", health.Live)
	r.Get("/ready", health.Ready)
	r.Get("/health", health.Health)

	return r
}
