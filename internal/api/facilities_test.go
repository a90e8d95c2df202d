package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/UnknownOlympus/agora/internal/models"
	"github.com/UnknownOlympus/agora/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHandleHealth(t *testing.T) {
	t.Run("connected", func(t *testing.T) {
		srv, repo, _ := testServer(t)
		repo.On("Ping", mock.Anything).Return(nil).Once()

		rec := do(t, srv, http.MethodGet, "/health")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"healthy","graphdb":"connected"}`, rec.Body.String())
	})

	t.Run("disconnected", func(t *testing.T) {
		srv, repo, _ := testServer(t)
		repo.On("Ping", mock.Anything).Return(errors.New("dial tcp: connection refused")).Once()

		rec := do(t, srv, http.MethodGet, "/health")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.JSONEq(t,
			`{"status":"unhealthy","graphdb":"disconnected","error":"dial tcp: connection refused"}`,
			rec.Body.String())
	})
}

func TestHandleListAreas(t *testing.T) {
	srv, repo, _ := testServer(t)
	repo.On("ListAreas", mock.Anything).Return([]models.Area{
		{ID: "central", Name: "Central (120)", URI: ns + "Central", FacilityCount: 120},
		{ID: "north-central", Name: "North Central", URI: ns + "NorthCentral", FacilityCount: 80},
	}, nil).Once()

	rec := do(t, srv, http.MethodGet, "/areas")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[
		{"id":"central","name":"Central","uri":"`+ns+`Central","facilityCount":120},
		{"id":"north-central","name":"North Central","uri":"`+ns+`NorthCentral","facilityCount":80}
	]`, rec.Body.String())
}

func TestHandleListFacilityTypes_Empty(t *testing.T) {
	srv, repo, _ := testServer(t)
	repo.On("ListFacilityTypes", mock.Anything).Return([]models.FacilityType{}, nil).Once()

	rec := do(t, srv, http.MethodGet, "/facility-types")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestHandleListFacilities(t *testing.T) {
	t.Run("area and repeated type filters", func(t *testing.T) {
		srv, repo, _ := testServer(t)
		repo.On("ListFacilities", mock.Anything, ns+"Central", []string{ns + "Park", ns + "Library"}).
			Return([]models.Facility{
				{
					URI: ns + "facility/p1", Name: "Parnell Square", Address: "Parnell St",
					Area: "Central", Type: "Park",
					Coordinates: models.Coordinates{Latitude: 53.354, Longitude: -6.264},
					WKT:         "POINT(-6.264 53.354)",
				},
				{
					URI: ns + "facility/p2", Name: "Broken Park",
					Area: "Central", Type: "Park",
					Coordinates: models.Coordinates{Latitude: 53.35, Longitude: -6.26},
					WKT:         "POLYGON((garbage",
				},
			}, nil).Once()

		rec := do(t, srv, http.MethodGet, "/facilities?area=central&type=park&type=library")
		require.Equal(t, http.StatusOK, rec.Code)

		body := decode[struct {
			Type     string `json:"type"`
			Features []struct {
				Geometry struct {
					Type        string    `json:"type"`
					Coordinates []float64 `json:"coordinates"`
				} `json:"geometry"`
				Properties map[string]string `json:"properties"`
			} `json:"features"`
			Metadata struct {
				Count   int `json:"count"`
				Filters struct {
					Area *string  `json:"area"`
					Type []string `json:"type"`
				} `json:"filters"`
			} `json:"metadata"`
		}](t, rec)

		assert.Equal(t, "FeatureCollection", body.Type)
		require.Len(t, body.Features, 2)
		for _, feature := range body.Features {
			assert.Equal(t, "Central", feature.Properties["area"])
		}
		assert.Equal(t, "Parnell St", body.Features[0].Properties["address"])
		assert.Equal(t, "Point", body.Features[1].Geometry.Type)
		assert.Equal(t, []float64{-6.26, 53.35}, body.Features[1].Geometry.Coordinates)

		assert.Equal(t, 2, body.Metadata.Count)
		require.NotNil(t, body.Metadata.Filters.Area)
		assert.Equal(t, "central", *body.Metadata.Filters.Area)
		assert.Equal(t, []string{"park", "library"}, body.Metadata.Filters.Type)
	})

	t.Run("no filters", func(t *testing.T) {
		srv, repo, _ := testServer(t)
		repo.On("ListFacilities", mock.Anything, "", []string{}).Return([]models.Facility{}, nil).Once()

		rec := do(t, srv, http.MethodGet, "/facilities")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{
			"type":"FeatureCollection",
			"features":[],
			"metadata":{"count":0,"filters":{"area":null,"type":[]}}
		}`, rec.Body.String())
	})
}

func TestHandleStats(t *testing.T) {
	srv, repo, _ := testServer(t)
	repo.On("CountByType", mock.Anything, ns+"SouthEast").Return([]models.TypeCount{
		{Type: "Park", Count: 30},
		{Type: "Library (4)", Count: 4},
		{Type: "Toilet", Count: 2},
	}, nil).Once()

	rec := do(t, srv, http.MethodGet, "/stats?area=south-east")

	require.Equal(t, http.StatusOK, rec.Code)
	stats := decode[models.Stats](t, rec)
	require.NotNil(t, stats.Area)
	assert.Equal(t, "south-east", *stats.Area)

	sum := 0
	for _, tc := range stats.ByType {
		sum += tc.Count
	}
	assert.Equal(t, sum, stats.Total)
	assert.Equal(t, "Library", stats.ByType[1].Type)
}

func TestHandleSearch(t *testing.T) {
	t.Run("limit and case-insensitive term", func(t *testing.T) {
		srv, repo, _ := testServer(t)
		repo.On("SearchFacilities", mock.Anything, "library", 5).Return([]models.SearchResult{
			{URI: ns + "facility/l1", Name: "Central Library", Type: "Library", Area: "Central"},
			{URI: ns + "facility/l2", Name: "Pearse Street Library", Type: "Library", Area: "South East"},
		}, nil).Once()

		rec := do(t, srv, http.MethodGet, "/search?q=LIBRARY&limit=5")

		require.Equal(t, http.StatusOK, rec.Code)
		results := decode[models.SearchResults](t, rec)
		assert.Equal(t, "library", results.Query)
		assert.Equal(t, 2, results.Count)
		assert.LessOrEqual(t, len(results.Results), 5)
		for _, r := range results.Results {
			assert.Contains(t, r.Name, "Library")
		}
	})

	t.Run("default limit", func(t *testing.T) {
		srv, repo, _ := testServer(t)
		repo.On("SearchFacilities", mock.Anything, "pool", 50).Return([]models.SearchResult{}, nil).Once()

		rec := do(t, srv, http.MethodGet, "/search?q=pool")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"query":"pool","count":0,"results":[]}`, rec.Body.String())
	})

	t.Run("limit is clamped", func(t *testing.T) {
		srv, repo, _ := testServer(t)
		repo.On("SearchFacilities", mock.Anything, "park", 500).Return([]models.SearchResult{}, nil).Once()

		rec := do(t, srv, http.MethodGet, "/search?q=park&limit=100000")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing query", func(t *testing.T) {
		srv, _, _ := testServer(t)

		rec := do(t, srv, http.MethodGet, "/search")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Search query 'q' is required"}`, rec.Body.String())
	})

	t.Run("invalid limit", func(t *testing.T) {
		srv, _, _ := testServer(t)

		for _, limit := range []string{"abc", "0", "-1"} {
			rec := do(t, srv, http.MethodGet, "/search?q=park&limit="+limit)
			assert.Equal(t, http.StatusBadRequest, rec.Code, limit)
		}
	})
}

func TestHandleGetFacility(t *testing.T) {
	t.Run("local id", func(t *testing.T) {
		srv, repo, _ := testServer(t)
		repo.On("GetFacility", mock.Anything, ns+"facility/lib-001").Return(&models.FacilityDetail{
			URI: ns + "facility/lib-001", Name: "Central Library", Type: "Library (12)", Area: "Central",
			Coordinates: models.Coordinates{Latitude: 53.3498, Longitude: -6.2603},
		}, nil).Once()

		rec := do(t, srv, http.MethodGet, "/facility/lib-001")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{
			"uri":"`+ns+`facility/lib-001","name":"Central Library","type":"Library","area":"Central",
			"coordinates":{"lat":53.3498,"lon":-6.2603},"address":"","url":"","sourceDataset":""
		}`, rec.Body.String())
	})

	t.Run("full encoded iri", func(t *testing.T) {
		srv, repo, _ := testServer(t)
		repo.On("GetFacility", mock.Anything, "http://data.example.org/f#42").
			Return(&models.FacilityDetail{URI: "http://data.example.org/f#42"}, nil).Once()

		rec := do(t, srv, http.MethodGet, "/facility/http:%2F%2Fdata.example.org%2Ff%2342")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown", func(t *testing.T) {
		srv, repo, _ := testServer(t)
		repo.On("GetFacility", mock.Anything, ns+"facility/nope").
			Return(nil, repository.ErrFacilityNotFound).Once()

		rec := do(t, srv, http.MethodGet, "/facility/nope")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Facility not found"}`, rec.Body.String())
	})

	t.Run("empty id", func(t *testing.T) {
		srv, _, _ := testServer(t)

		rec := do(t, srv, http.MethodGet, "/facility/")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
