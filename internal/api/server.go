// Package api exposes the facilities knowledge graph over a small REST/GeoJSON
// surface. Every route is a read-only GET backed by one SPARQL query.
//
// Lifecycle:
//
//	server, err := api.New(deps)
//	server.Start(ctx)
//	defer server.Close()
package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/UnknownOlympus/agora/internal/metrics"
	"github.com/UnknownOlympus/agora/internal/models"
	"github.com/paulmach/orb/geojson"
)

const (
	// gracefulShutdownTimeout bounds how long Close waits for in-flight requests.
	gracefulShutdownTimeout = 10 * time.Second
	readTimeout             = 5 * time.Second
	idleTimeout             = 60 * time.Second
)

// Service is the behaviour the handlers need from the facilities service.
type Service interface {
	Health(ctx context.Context) error
	Areas(ctx context.Context) ([]models.Area, error)
	FacilityTypes(ctx context.Context) ([]models.FacilityType, error)
	Facilities(ctx context.Context, areaID *string, typeIDs []string) (*geojson.FeatureCollection, error)
	Stats(ctx context.Context, areaID *string) (*models.Stats, error)
	ParseLimit(raw string) (int, error)
	Search(ctx context.Context, term string, limit int) (*models.SearchResults, error)
	Facility(ctx context.Context, id string) (*models.FacilityDetail, error)
	Missing(ctx context.Context, typeID string) (*models.Missing, error)
	Distribution(ctx context.Context, typeID string) (*models.Distribution, error)
}

// Deps holds the dependencies required by the API server.
type Deps struct {
	Port         int
	CORSOrigins  []string      // Empty or "*" allows any origin.
	WriteTimeout time.Duration // Should exceed the upstream query timeout.
	Logger       *slog.Logger
	Service      Service
	Metrics      *metrics.Metrics
}

// Server is the HTTP API server.
type Server struct {
	port         int
	origins      []string
	writeTimeout time.Duration
	logger       *slog.Logger
	service      Service
	metrics      *metrics.Metrics
	server       *http.Server
}

// New creates a new API server. The server is not started until Start is called.
func New(deps Deps) (*Server, error) {
	if deps.Logger == nil {
		return nil, errors.New("logger is required")
	}
	if deps.Service == nil {
		return nil, errors.New("facility service is required")
	}
	if deps.Metrics == nil {
		return nil, errors.New("metrics are required")
	}

	writeTimeout := deps.WriteTimeout
	if writeTimeout <= 0 {
		writeTimeout = time.Minute
	}

	return &Server{
		port:         deps.Port,
		origins:      deps.CORSOrigins,
		writeTimeout: writeTimeout,
		logger:       deps.Logger,
		service:      deps.Service,
		metrics:      deps.Metrics,
	}, nil
}

// Start launches the HTTP listener in a background goroutine.
func (s *Server) Start(ctx context.Context) error {
	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.port),
		Handler:           s.buildRouter(),
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readTimeout,
		WriteTimeout:      s.writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	s.logger.InfoContext(ctx, "API server starting", "address", s.server.Addr, "routes", Routes())

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.ErrorContext(ctx, "API server failed", "error", err)
		}
	}()

	return nil
}

// Close gracefully shuts down the API server, waiting up to 10 seconds for
// in-flight requests.
func (s *Server) Close() error {
	if s.server == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
	defer cancel()

	s.logger.Info("API server shutting down")
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down API server: %w", err)
	}

	return nil
}
