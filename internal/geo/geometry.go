// Package geo converts facility rows into GeoJSON features.
package geo

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/UnknownOlympus/agora/internal/models"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
	"github.com/paulmach/orb/geojson"
)

// Reasons a feature was rendered as a point instead of its WKT geometry.
var (
	ErrInvalidWKT    = errors.New("invalid wkt")
	ErrEmptyGeometry = errors.New("empty geometry")
)

// crsPrefix matches the optional CRS IRI of a GeoSPARQL wktLiteral.
var crsPrefix = regexp.MustCompile(`^\s*<[^>]*>\s*`)

// ParseWKT parses a GeoSPARQL WKT literal. The CRS IRI, if any, is dropped;
// coordinates are taken as lon/lat.
func ParseWKT(text string) (orb.Geometry, error) {
	geom, err := wkt.Unmarshal(crsPrefix.ReplaceAllString(text, ""))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidWKT, err)
	}
	if isEmpty(geom) {
		return nil, ErrEmptyGeometry
	}

	return geom, nil
}

// Point returns the GeoJSON point of c, ordered [lon, lat].
func Point(c models.Coordinates) orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

// Geometry picks the geometry of a facility: its parsed WKT when present and
// valid, its point coordinates otherwise. The returned geometry is never nil;
// a non-nil error tells why the WKT was not used.
func Geometry(f models.Facility) (orb.Geometry, error) {
	if f.WKT == "" {
		return Point(f.Coordinates), nil
	}

	geom, err := ParseWKT(f.WKT)
	if err != nil {
		return Point(f.Coordinates), err
	}

	return geom, nil
}

// Feature builds the GeoJSON feature of a facility. The error reports a WKT
// fallback and is informational only: the feature is always usable.
func Feature(f models.Facility) (*geojson.Feature, error) {
	geom, err := Geometry(f)

	feature := geojson.NewFeature(geom)
	feature.Properties["uri"] = f.URI
	feature.Properties["name"] = f.Name
	feature.Properties["address"] = f.Address
	feature.Properties["area"] = f.Area
	feature.Properties["type"] = f.Type

	return feature, err
}

func isEmpty(geom orb.Geometry) bool {
	switch g := geom.(type) {
	case nil:
		return true
	case orb.MultiPoint:
		return len(g) == 0
	case orb.LineString:
		return len(g) == 0
	case orb.MultiLineString:
		return len(g) == 0
	case orb.Ring:
		return len(g) == 0
	case orb.Polygon:
		return len(g) == 0
	case orb.MultiPolygon:
		return len(g) == 0
	case orb.Collection:
		return len(g) == 0
	default:
		return false
	}
}
