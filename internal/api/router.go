package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

var routes = []string{
	"/health",
	"/areas",
	"/facility-types",
	"/facilities",
	"/stats",
	"/search",
	"/facility/*",
	"/insights/missing",
	"/insights/distribution",
}

// Routes lists the paths served by the API.
func Routes() []string {
	return append([]string(nil), routes...)
}

// buildRouter creates the HTTP router with all routes and middleware.
func (s *Server) buildRouter() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(s.requestIDMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(s.metricsMiddleware)
	r.Use(s.recoveryMiddleware)
	r.Use(s.corsMiddleware)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeNotFound(w, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.Get("/health", s.handleHealth)
	r.Get("/areas", s.handleListAreas)
	r.Get("/facility-types", s.handleListFacilityTypes)
	r.Get("/facilities", s.handleListFacilities)
	r.Get("/stats", s.handleStats)
	r.Get("/search", s.handleSearch)
	r.Get("/facility/*", s.handleGetFacility)

	r.Route("/insights", func(r chi.Router) {
		r.Get("/missing", s.handleMissing)
		r.Get("/distribution", s.handleDistribution)
	})

	return r
}
