// Package api provides the HTTP API server and handlers for the Sauna Guide catalog.
package api

import (
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/saunaguide/saunaguide-server/internal/http/response"
	"github.com/saunaguide/saunaguide-server/internal/search"
	"github.com/saunaguide/saunaguide-server/internal/sitemap"
	"github.com/saunaguide/saunaguide-server/internal/store"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	store   *store.Store
	search  *search.Index
	sitemap *sitemap.Builder
	router  *chi.Mux
	api     huma.API
	logger  *slog.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(st *store.Store, searchIndex *search.Index, sitemapBuilder *sitemap.Builder, logger *slog.Logger) *Server {
	s := &Server{
		store:   st,
		search:  searchIndex,
		sitemap: sitemapBuilder,
		router:  chi.NewRouter(),
		logger:  logger,
	}

	s.setupMiddleware()

	RegisterErrorHandler()
	s.api = humachi.New(s.router, huma.DefaultConfig("Sauna Guide API", "1.0.0"))

	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// setupMiddleware configures middleware stack.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
}

// setupRoutes configures all HTTP routes. The catalog endpoints are huma
// operations registered in the per-concern handler files; health and the
// sitemap stay plain chi handlers since neither returns the JSON envelope.
func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealthCheck)
	s.router.Get("/sitemap.xml", s.handleSitemap)

	s.registerGearRoutes()
	s.registerBrandRoutes()
	s.registerSaunaRoutes()
	s.registerGuideRoutes()
	s.registerSearchRoutes()
}

// handleHealthCheck returns server health status.
func (s *Server) handleHealthCheck(w http.ResponseWriter, _ *http.Request) {
	response.Success(w, map[string]string{
		"status": "healthy",
	}, s.logger)
}

// handleSitemap serves the generated sitemap in sitemaps.org XML format.
func (s *Server) handleSitemap(w http.ResponseWriter, _ *http.Request) {
	body, err := sitemap.RenderXML(s.sitemap.Build())
	if err != nil {
		s.logger.Error("Failed to render sitemap", "error", err)
		response.InternalError(w, "failed to render sitemap", s.logger)
		return
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	if _, err := w.Write(body); err != nil {
		s.logger.Error("Failed to write sitemap response", "error", err)
	}
}
