package repository

import (
	"context"
	"fmt"

	"github.com/UnknownOlympus/agora/internal/graphdb"
	"github.com/UnknownOlympus/agora/internal/models"
	"github.com/UnknownOlympus/agora/internal/query"
	"github.com/UnknownOlympus/agora/internal/vocabulary"
)

// Ping runs a trivial query to check that the triple store answers.
func (r *Repository) Ping(ctx context.Context) error {
	q, err := r.queries.Health()
	_, err = r.run(ctx, query.NameHealth, q, err)

	return err
}

// ListAreas returns every committee area with the number of facilities it holds,
// ordered by name.
func (r *Repository) ListAreas(ctx context.Context) ([]models.Area, error) {
	q, err := r.queries.Areas()
	rows, err := r.run(ctx, query.NameAreas, q, err)
	if err != nil {
		return nil, err
	}

	areas := make([]models.Area, 0, len(rows))
	for _, row := range rows {
		uri, name, count, errRow := listingRow(row)
		if errRow != nil {
			return nil, fmt.Errorf("failed to read area: %w", errRow)
		}
		areas = append(areas, models.Area{
			ID:            vocabulary.IDFromIRI(uri),
			Name:          name,
			URI:           uri,
			FacilityCount: count,
		})
	}

	return areas, nil
}

// ListFacilityTypes returns every facility type with its facility count, ordered by label.
func (r *Repository) ListFacilityTypes(ctx context.Context) ([]models.FacilityType, error) {
	q, err := r.queries.FacilityTypes()
	rows, err := r.run(ctx, query.NameFacilityTypes, q, err)
	if err != nil {
		return nil, err
	}

	types := make([]models.FacilityType, 0, len(rows))
	for _, row := range rows {
		uri, name, count, errRow := listingRow(row)
		if errRow != nil {
			return nil, fmt.Errorf("failed to read facility type: %w", errRow)
		}
		types = append(types, models.FacilityType{
			ID:            vocabulary.IDFromIRI(uri),
			Name:          name,
			URI:           uri,
			FacilityCount: count,
		})
	}

	return types, nil
}

// ListFacilities returns the facilities in areaIRI having one of typeIRIs.
// Empty filters match everything.
func (r *Repository) ListFacilities(ctx context.Context, areaIRI string, typeIRIs []string) ([]models.Facility, error) {
	q, err := r.queries.Facilities(areaIRI, typeIRIs)
	rows, err := r.run(ctx, query.NameFacilities, q, err)
	if err != nil {
		return nil, err
	}

	facilities := make([]models.Facility, 0, len(rows))
	for _, row := range rows {
		var facility models.Facility
		if facility.URI, err = row.Require("uri"); err != nil {
			return nil, fmt.Errorf("failed to read facility: %w", err)
		}
		if facility.Name, facility.Area, facility.Type, err = describedRow(row); err != nil {
			return nil, fmt.Errorf("failed to read facility %s: %w", facility.URI, err)
		}
		if facility.Coordinates, err = coordinates(row); err != nil {
			return nil, fmt.Errorf("failed to read facility %s: %w", facility.URI, err)
		}
		facility.Address = row.String("address")
		facility.WKT = row.String("wkt")
		facilities = append(facilities, facility)
	}

	return facilities, nil
}

// CountByType returns facility counts per type label, largest first.
func (r *Repository) CountByType(ctx context.Context, areaIRI string) ([]models.TypeCount, error) {
	q, err := r.queries.Stats(areaIRI)
	rows, err := r.run(ctx, query.NameStats, q, err)
	if err != nil {
		return nil, err
	}

	counts := make([]models.TypeCount, 0, len(rows))
	for _, row := range rows {
		var tc models.TypeCount
		if tc.Type, err = row.Require("typeName"); err != nil {
			return nil, fmt.Errorf("failed to read type count: %w", err)
		}
		if tc.Count, err = row.Int("count"); err != nil {
			return nil, fmt.Errorf("failed to read type count: %w", err)
		}
		counts = append(counts, tc)
	}

	return counts, nil
}

// SearchFacilities returns at most limit facilities whose lowercased name contains term.
func (r *Repository) SearchFacilities(ctx context.Context, term string, limit int) ([]models.SearchResult, error) {
	q, err := r.queries.Search(term, limit)
	rows, err := r.run(ctx, query.NameSearch, q, err)
	if err != nil {
		return nil, err
	}

	results := make([]models.SearchResult, 0, len(rows))
	for _, row := range rows {
		var result models.SearchResult
		if result.URI, err = row.Require("uri"); err != nil {
			return nil, fmt.Errorf("failed to read search result: %w", err)
		}
		if result.Name, result.Area, result.Type, err = describedRow(row); err != nil {
			return nil, fmt.Errorf("failed to read search result %s: %w", result.URI, err)
		}
		if result.Coordinates, err = coordinates(row); err != nil {
			return nil, fmt.Errorf("failed to read search result %s: %w", result.URI, err)
		}
		results = append(results, result)
	}

	return results, nil
}

// GetFacility returns the details of one facility, or ErrFacilityNotFound.
func (r *Repository) GetFacility(ctx context.Context, facilityIRI string) (*models.FacilityDetail, error) {
	q, err := r.queries.Facility(facilityIRI)
	rows, err := r.run(ctx, query.NameFacility, q, err)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrFacilityNotFound
	}

	row := rows[0]
	detail := &models.FacilityDetail{
		URI:           facilityIRI,
		Address:       row.String("address"),
		URL:           row.String("url"),
		SourceDataset: row.String("sourceDataset"),
	}
	if detail.Name, detail.Area, detail.Type, err = describedRow(row); err != nil {
		return nil, fmt.Errorf("failed to read facility %s: %w", facilityIRI, err)
	}
	if detail.Coordinates, err = coordinates(row); err != nil {
		return nil, fmt.Errorf("failed to read facility %s: %w", facilityIRI, err)
	}

	return detail, nil
}

// AreasMissingType returns the areas without any facility of typeIRI, ordered by name.
func (r *Repository) AreasMissingType(ctx context.Context, typeIRI string) ([]models.AreaRef, error) {
	q, err := r.queries.Missing(typeIRI)
	rows, err := r.run(ctx, query.NameMissing, q, err)
	if err != nil {
		return nil, err
	}

	areas := make([]models.AreaRef, 0, len(rows))
	for _, row := range rows {
		uri, errURI := row.Require("areaUri")
		if errURI != nil {
			return nil, fmt.Errorf("failed to read area: %w", errURI)
		}
		name, errName := row.Require("areaName")
		if errName != nil {
			return nil, fmt.Errorf("failed to read area %s: %w", uri, errName)
		}
		areas = append(areas, models.AreaRef{ID: vocabulary.IDFromIRI(uri), Name: name})
	}

	return areas, nil
}

// CountByArea returns the number of facilities of typeIRI in every area,
// including areas with none.
func (r *Repository) CountByArea(ctx context.Context, typeIRI string) ([]models.AreaCount, error) {
	q, err := r.queries.Distribution(typeIRI)
	rows, err := r.run(ctx, query.NameDistribution, q, err)
	if err != nil {
		return nil, err
	}

	counts := make([]models.AreaCount, 0, len(rows))
	for _, row := range rows {
		var ac models.AreaCount
		if ac.Area, err = row.Require("areaName"); err != nil {
			return nil, fmt.Errorf("failed to read area count: %w", err)
		}
		if ac.Count, err = row.Int("count"); err != nil {
			return nil, fmt.Errorf("failed to read area count: %w", err)
		}
		counts = append(counts, ac)
	}

	return counts, nil
}

// run executes a rendered query. buildErr is the error of rendering it, so
// callers can chain builder and executor without an extra branch.
func (r *Repository) run(ctx context.Context, name, q string, buildErr error) ([]graphdb.Row, error) {
	if buildErr != nil {
		return nil, fmt.Errorf("failed to build %s query: %w", name, buildErr)
	}

	results, err := r.db.Execute(ctx, name, q)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", name, err)
	}

	rows := graphdb.Bind(results)
	r.log.DebugContext(ctx, "Query returned rows", "query", name, "rows", len(rows))

	return rows, nil
}

func listingRow(row graphdb.Row) (string, string, int, error) {
	uri, err := row.Require("uri")
	if err != nil {
		return "", "", 0, err
	}
	name, err := row.Require("name")
	if err != nil {
		return "", "", 0, err
	}
	count, err := row.Int("count")
	if err != nil {
		return "", "", 0, err
	}

	return uri, name, count, nil
}

func describedRow(row graphdb.Row) (string, string, string, error) {
	name, err := row.Require("name")
	if err != nil {
		return "", "", "", err
	}
	area, err := row.Require("areaName")
	if err != nil {
		return "", "", "", err
	}
	typeName, err := row.Require("typeName")
	if err != nil {
		return "", "", "", err
	}

	return name, area, typeName, nil
}

func coordinates(row graphdb.Row) (models.Coordinates, error) {
	lat, err := row.Float("lat")
	if err != nil {
		return models.Coordinates{}, err
	}
	lon, err := row.Float("lon")
	if err != nil {
		return models.Coordinates{}, err
	}

	return models.Coordinates{Latitude: lat, Longitude: lon}, nil
}
