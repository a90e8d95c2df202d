package repository

import (
	"context"
	"errors"
	"log/slog"

	"github.com/UnknownOlympus/agora/internal/models"
	"github.com/UnknownOlympus/agora/internal/query"
	"github.com/knakk/sparql"
)

// ErrFacilityNotFound is returned when a facility lookup matches no row.
var ErrFacilityNotFound = errors.New("facility not found")

// Executor runs a rendered SPARQL query. It is implemented by graphdb.Client.
type Executor interface {
	Execute(ctx context.Context, name, query string) (*sparql.Results, error)
}

type Repository struct {
	db      Executor
	queries *query.Builder
	log     *slog.Logger
}

type Interface interface {
	Ping(ctx context.Context) error
	ListAreas(ctx context.Context) ([]models.Area, error)
	ListFacilityTypes(ctx context.Context) ([]models.FacilityType, error)
	ListFacilities(ctx context.Context, areaIRI string, typeIRIs []string) ([]models.Facility, error)
	CountByType(ctx context.Context, areaIRI string) ([]models.TypeCount, error)
	SearchFacilities(ctx context.Context, term string, limit int) ([]models.SearchResult, error)
	GetFacility(ctx context.Context, facilityIRI string) (*models.FacilityDetail, error)
	AreasMissingType(ctx context.Context, typeIRI string) ([]models.AreaRef, error)
	CountByArea(ctx context.Context, typeIRI string) ([]models.AreaCount, error)
}

// NewRepository creates a new instance of Repository with the provided executor
// and query builder. It returns a pointer to the newly created Repository.
func NewRepository(db Executor, queries *query.Builder, log *slog.Logger) *Repository {
	return &Repository{db: db, queries: queries, log: log}
}
