// Package httpapi assembles the chi router and middleware chain.
package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"server/internal/http/handlers"
	"server/internal/middleware"
)

// Options configures the router's cross-cutting concerns.
type Options struct {
	AllowedOrigins  []string
	DefaultLocale   string
	RateLimitPerMin int
	CountryLookup   middleware.CountryLookup
}

// NewRouter wires the middleware chain and the versioned API surface.
func NewRouter(app *handlers.App, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.CORS(opts.AllowedOrigins),
		middleware.Logger(app.Log),
		middleware.I18N(opts.DefaultLocale, opts.CountryLookup),
	)
	if opts.RateLimitPerMin > 0 {
		r.Use(middleware.RateLimit(opts.RateLimitPerMin, time.Minute))
	}

	r.Get("/v1/healthz", app.Health)

	r.Post("/v1/generate", app.Generate)
	r.Post("/v1/speech", app.Speech)

	r.Route("/v1/history", func(r chi.Router) {
		r.Get("/", app.HistoryList)
		r.Post("/{id}/favorite", app.HistoryFavorite)
		r.Delete("/{id}", app.HistoryDelete)
	})

	return r
}
