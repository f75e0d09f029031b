package chi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/kailas-cloud/pagedex/internal/metrics"
)

// RouterConfig holds the settings the router needs beyond the server itself.
type RouterConfig struct {
	APIKeys        []string // admin bearer tokens
	AllowedOrigins []string // CORS origins for /api
}

// NewRouter wires middleware and routes for s.
func NewRouter(s *Server, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(s.logger))
	r.Use(jsonRecoverer(s.logger))
	r.Use(metrics.Middleware())

	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.New(cors.Options{
			AllowedOrigins: cfg.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
			AllowedHeaders: []string{"*"},
		}).Handler)
		r.Use(chiMiddleware.GetHead)

		r.Get("/methods", s.SearchMethods)
		r.Get("/posts", s.ListPosts)
		r.Get("/posts/{slug}", s.GetPost)
		r.Get("/portfolio", s.GetPortfolio)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(BearerAuthMiddleware(cfg.APIKeys))
		r.Post("/cache/purge", s.PurgeCache)
	})

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/blog", http.StatusFound)
	})
	r.Get("/lyah", s.LyahPage)
	r.Get("/blog", s.BlogPage)
	r.Get("/portfolio", s.PortfolioPage)
	r.NotFound(s.NotFoundPage)

	return r
}
