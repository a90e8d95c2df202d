package api

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/UnknownOlympus/agora/internal/service"
	"github.com/go-chi/chi/v5"
)

// handleHealth reports whether the triple store answers queries.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.service.Health(r.Context()); err != nil {
		s.logger.WarnContext(r.Context(), "Health check failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status":  "unhealthy",
			"graphdb": "disconnected",
			"error":   err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"graphdb": "connected",
	})
}

func (s *Server) handleListAreas(w http.ResponseWriter, r *http.Request) {
	areas, err := s.service.Areas(r.Context())
	if err != nil {
		s.upstreamError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, areas)
}

func (s *Server) handleListFacilityTypes(w http.ResponseWriter, r *http.Request) {
	types, err := s.service.FacilityTypes(r.Context())
	if err != nil {
		s.upstreamError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, types)
}

// handleListFacilities returns facilities as GeoJSON, filtered by ?area= and
// any number of ?type= parameters.
func (s *Server) handleListFacilities(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	fc, err := s.service.Facilities(r.Context(), optional(params, "area"), params["type"])
	if err != nil {
		s.upstreamError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, fc)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.service.Stats(r.Context(), optional(r.URL.Query(), "area"))
	if err != nil {
		s.upstreamError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	limit, err := s.service.ParseLimit(params.Get("limit"))
	if err != nil {
		writeBadRequest(w, "Limit must be a positive integer")
		return
	}

	results, err := s.service.Search(r.Context(), params.Get("q"), limit)
	switch {
	case errors.Is(err, service.ErrMissingQuery):
		writeBadRequest(w, "Search query 'q' is required")
	case err != nil:
		s.upstreamError(w, r, err)
	default:
		writeJSON(w, http.StatusOK, results)
	}
}

// handleGetFacility looks a facility up by the rest of the path, which is
// either a local id or a full (percent-encoded) IRI.
func (s *Server) handleGetFacility(w http.ResponseWriter, r *http.Request) {
	id, err := url.PathUnescape(chi.URLParam(r, "*"))
	if err != nil || id == "" {
		writeNotFound(w, "Facility not found")
		return
	}

	detail, err := s.service.Facility(r.Context(), id)
	switch {
	case errors.Is(err, service.ErrFacilityNotFound):
		writeNotFound(w, "Facility not found")
	case err != nil:
		s.upstreamError(w, r, err)
	default:
		writeJSON(w, http.StatusOK, detail)
	}
}

// upstreamError reports a failed triple store call as a 500 carrying the error.
func (s *Server) upstreamError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.ErrorContext(r.Context(), "Request failed",
		"path", r.URL.Path,
		"request_id", r.Context().Value(ctxKeyRequestID),
		"error", err)
	writeInternalError(w, err.Error())
}

// optional returns a pointer to the named query parameter, or nil when absent.
func optional(params url.Values, name string) *string {
	if !params.Has(name) {
		return nil
	}
	value := params.Get(name)

	return &value
}
