package api

import (
	"errors"
	"net/http"

	"github.com/UnknownOlympus/agora/internal/service"
)

// handleMissing lists the areas lacking any facility of ?type=.
func (s *Server) handleMissing(w http.ResponseWriter, r *http.Request) {
	missing, err := s.service.Missing(r.Context(), r.URL.Query().Get("type"))
	switch {
	case errors.Is(err, service.ErrInvalidType):
		writeBadRequest(w, "Valid type_id is required")
	case err != nil:
		s.upstreamError(w, r, err)
	default:
		writeJSON(w, http.StatusOK, missing)
	}
}

// handleDistribution counts ?type= per area, lowest first.
func (s *Server) handleDistribution(w http.ResponseWriter, r *http.Request) {
	distribution, err := s.service.Distribution(r.Context(), r.URL.Query().Get("type"))
	switch {
	case errors.Is(err, service.ErrInvalidType):
		writeBadRequest(w, "Valid type_id is required")
	case err != nil:
		s.upstreamError(w, r, err)
	default:
		writeJSON(w, http.StatusOK, distribution)
	}
}
