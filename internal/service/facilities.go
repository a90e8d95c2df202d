package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/UnknownOlympus/agora/internal/geo"
	"github.com/UnknownOlympus/agora/internal/metrics"
	"github.com/UnknownOlympus/agora/internal/models"
	"github.com/UnknownOlympus/agora/internal/query"
	"github.com/UnknownOlympus/agora/internal/repository"
	"github.com/UnknownOlympus/agora/internal/vocabulary"
	"github.com/paulmach/orb/geojson"
)

const (
	// DefaultSearchLimit is used when the caller gives no limit.
	DefaultSearchLimit = 50
	// lowestAccessSize is how many areas are surfaced as having the lowest access.
	lowestAccessSize = 3
)

// Errors mapped to client-facing responses by the API layer.
var (
	ErrFacilityNotFound = repository.ErrFacilityNotFound
	ErrInvalidType      = errors.New("valid type_id is required")
	ErrMissingQuery     = errors.New("search query 'q' is required")
	ErrInvalidLimit     = errors.New("limit must be a positive integer")
)

// Options tune response shaping.
type Options struct {
	CleanLabels  bool // Strip "(n)" count suffixes from labels.
	DefaultLimit int  // Search limit when none is given.
	MaxLimit     int  // Upper bound for search limits; 0 disables clamping.
}

// FacilityService turns API requests into repository calls and shapes the
// results into the API responses.
type FacilityService struct {
	log     *slog.Logger           // Logger for logging service activities
	repo    repository.Interface   // Read access to the knowledge graph
	vocab   *vocabulary.Vocabulary // Allow-lists of area and type ids
	metrics *metrics.Metrics       // Metrics for geometry fallbacks
	opts    Options                // Shaping options
}

// Filters echoes the filters requested on /facilities.
type Filters struct {
	Area *string  `json:"area"`
	Type []string `json:"type"`
}

// Metadata is attached to the facilities FeatureCollection.
type Metadata struct {
	Count   int     `json:"count"`
	Filters Filters `json:"filters"`
}

// NewFacilityService creates a new instance of FacilityService.
func NewFacilityService(
	log *slog.Logger,
	repo repository.Interface,
	vocab *vocabulary.Vocabulary,
	metrics *metrics.Metrics,
	opts Options,
) *FacilityService {
	if opts.DefaultLimit <= 0 {
		opts.DefaultLimit = DefaultSearchLimit
	}

	return &FacilityService{
		log:     log,
		repo:    repo,
		vocab:   vocab,
		metrics: metrics,
		opts:    opts,
	}
}

// Health checks that the triple store answers queries.
func (fs *FacilityService) Health(ctx context.Context) error {
	return fs.repo.Ping(ctx)
}

// Areas lists the committee areas ordered by name.
func (fs *FacilityService) Areas(ctx context.Context) ([]models.Area, error) {
	areas, err := fs.repo.ListAreas(ctx)
	if err != nil {
		return nil, err
	}
	for i := range areas {
		areas[i].Name = fs.label(areas[i].Name)
	}

	return areas, nil
}

// FacilityTypes lists the facility types ordered by label.
func (fs *FacilityService) FacilityTypes(ctx context.Context) ([]models.FacilityType, error) {
	types, err := fs.repo.ListFacilityTypes(ctx)
	if err != nil {
		return nil, err
	}
	for i := range types {
		types[i].Name = fs.label(types[i].Name)
	}

	return types, nil
}

// Facilities returns the matching facilities as a GeoJSON FeatureCollection.
// Unknown area or type ids are ignored for filtering but echoed in the metadata.
func (fs *FacilityService) Facilities(
	ctx context.Context,
	areaID *string,
	typeIDs []string,
) (*geojson.FeatureCollection, error) {
	var areaIRI string
	if areaID != nil {
		areaIRI, _ = fs.vocab.AreaIRI(*areaID)
	}
	typeIRIs := fs.vocab.TypeIRIs(typeIDs)

	facilities, err := fs.repo.ListFacilities(ctx, areaIRI, typeIRIs)
	if err != nil {
		return nil, err
	}

	fc := geojson.NewFeatureCollection()
	for _, facility := range facilities {
		facility.Area = fs.label(facility.Area)
		facility.Type = fs.label(facility.Type)

		feature, errGeom := geo.Feature(facility)
		if errGeom != nil {
			fs.recordFallback(ctx, facility, errGeom)
		}
		fc.Append(feature)
	}

	if typeIDs == nil {
		typeIDs = []string{}
	}
	fc.ExtraMembers = geojson.Properties{
		"metadata": Metadata{
			Count:   len(fc.Features),
			Filters: Filters{Area: areaID, Type: typeIDs},
		},
	}

	return fc, nil
}

// Stats counts facilities per type, optionally within one area. Total is the
// sum of the per-type counts.
func (fs *FacilityService) Stats(ctx context.Context, areaID *string) (*models.Stats, error) {
	var areaIRI string
	if areaID != nil {
		areaIRI, _ = fs.vocab.AreaIRI(*areaID)
	}

	counts, err := fs.repo.CountByType(ctx, areaIRI)
	if err != nil {
		return nil, err
	}

	stats := &models.Stats{Area: areaID, ByType: make([]models.TypeCount, 0, len(counts))}
	for _, tc := range counts {
		stats.Total += tc.Count
		stats.ByType = append(stats.ByType, models.TypeCount{Type: fs.label(tc.Type), Count: tc.Count})
	}

	return stats, nil
}

// ParseLimit reads the limit query parameter. An empty value selects the default.
func (fs *FacilityService) ParseLimit(raw string) (int, error) {
	if raw == "" {
		return fs.opts.DefaultLimit, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLimit, raw)
	}
	if fs.opts.MaxLimit > 0 && limit > fs.opts.MaxLimit {
		limit = fs.opts.MaxLimit
	}

	return limit, nil
}

// Search matches facility names containing term, case-insensitively.
func (fs *FacilityService) Search(ctx context.Context, term string, limit int) (*models.SearchResults, error) {
	term = strings.ToLower(term)
	if strings.TrimSpace(term) == "" {
		return nil, ErrMissingQuery
	}
	if limit <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLimit, limit)
	}

	found, err := fs.repo.SearchFacilities(ctx, term, limit)
	if err != nil {
		return nil, err
	}
	for i := range found {
		found[i].Area = fs.label(found[i].Area)
		found[i].Type = fs.label(found[i].Type)
	}

	return &models.SearchResults{Query: term, Count: len(found), Results: found}, nil
}

// Facility returns the details of a facility given by id or absolute IRI.
func (fs *FacilityService) Facility(ctx context.Context, id string) (*models.FacilityDetail, error) {
	detail, err := fs.repo.GetFacility(ctx, fs.vocab.FacilityIRI(id))
	if errors.Is(err, query.ErrInvalidIRI) {
		fs.log.DebugContext(ctx, "Facility id cannot form an IRI", "id", id, "error", err)
		return nil, ErrFacilityNotFound
	}
	if err != nil {
		return nil, err
	}

	detail.Area = fs.label(detail.Area)
	detail.Type = fs.label(detail.Type)

	return detail, nil
}

// Missing lists the areas with no facility of the given type.
func (fs *FacilityService) Missing(ctx context.Context, typeID string) (*models.Missing, error) {
	typeIRI, ok := fs.vocab.TypeIRI(typeID)
	if !ok {
		return nil, ErrInvalidType
	}

	areas, err := fs.repo.AreasMissingType(ctx, typeIRI)
	if err != nil {
		return nil, err
	}
	for i := range areas {
		areas[i].Name = fs.label(areas[i].Name)
	}

	return &models.Missing{Type: typeID, MissingIn: areas}, nil
}

// Distribution counts a facility type in every area, lowest first, and
// surfaces the three areas with the lowest access.
func (fs *FacilityService) Distribution(ctx context.Context, typeID string) (*models.Distribution, error) {
	typeIRI, ok := fs.vocab.TypeIRI(typeID)
	if !ok {
		return nil, ErrInvalidType
	}

	counts, err := fs.repo.CountByArea(ctx, typeIRI)
	if err != nil {
		return nil, err
	}
	for i := range counts {
		counts[i].Area = fs.label(counts[i].Area)
	}
	sort.SliceStable(counts, func(i, j int) bool { return counts[i].Count < counts[j].Count })

	lowest := counts[:min(lowestAccessSize, len(counts))]

	return &models.Distribution{Type: typeID, Distribution: counts, LowestAccess: lowest}, nil
}

func (fs *FacilityService) label(s string) string {
	if !fs.opts.CleanLabels {
		return s
	}

	return vocabulary.CleanLabel(s)
}

func (fs *FacilityService) recordFallback(ctx context.Context, facility models.Facility, err error) {
	reason := "invalid_wkt"
	if errors.Is(err, geo.ErrEmptyGeometry) {
		reason = "empty_wkt"
	}
	fs.metrics.GeometryFallbacks.WithLabelValues(reason).Inc()
	fs.log.DebugContext(ctx, "Falling back to point geometry",
		"facility", facility.URI,
		"reason", reason,
		"error", err)
}
