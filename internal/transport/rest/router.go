package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/heartmarshall/lexicology-backend/internal/config"
	"github.com/heartmarshall/lexicology-backend/internal/transport/middleware"
)

// RouterDeps bundles everything NewRouter mounts.
type RouterDeps struct {
	Logger      *slog.Logger
	CORS        config.CORSConfig
	Health      *HealthHandler
	Lookup      *LookupHandler
	Words       *WordsHandler
	Progress    *ProgressHandler
	WordOfDay   *WordOfDayHandler
	RateLimiter *middleware.RateLimiter
	LookupLimit int
	// TrustProxyHeaders mounts chi's RealIP so that rate limiting and logs
	// see the forwarded client address.
	TrustProxyHeaders bool
	// Requests is optional; nil disables request metrics.
	Requests middleware.RequestObserver
	// MetricsPath and MetricsHandler are optional.
	MetricsPath    string
	MetricsHandler http.Handler
}

// NewRouter builds the HTTP routing tree.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()

	if d.TrustProxyHeaders {
		r.Use(chimw.RealIP)
	}
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(d.Logger))
	r.Use(middleware.Logger(d.Logger))
	r.Use(middleware.CORS(d.CORS))
	if d.Requests != nil {
		r.Use(middleware.Metrics(d.Requests))
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/live", d.Health.Live)
	r.Get("/ready", d.Health.Ready)
	r.Get("/health", d.Health.Health)
	if d.MetricsHandler != nil && d.MetricsPath != "" {
		r.Method(http.MethodGet, d.MetricsPath, d.MetricsHandler)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			if d.RateLimiter != nil {
				r.Use(d.RateLimiter.Limit(d.LookupLimit))
			}
			r.Get("/lookup/{term}", d.Lookup.Lookup)
		})

		r.Route("/words", func(r chi.Router) {
			r.Get("/", d.Words.List)
			r.Post("/", d.Words.Create)
			r.Get("/{id}", d.Words.Get)
			r.Put("/{id}", d.Words.Update)
			r.Delete("/{id}", d.Words.Delete)
			r.Post("/{id}/learned", d.Progress.MarkLearned)
		})

		r.Get("/catalog", d.Words.Catalog)
		r.Get("/word-of-the-day", d.WordOfDay.Today)
		r.Get("/progress", d.Progress.Get)
	})

	return r
}
