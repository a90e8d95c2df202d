//go:build integration

package repository_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/UnknownOlympus/agora/internal/graphdb"
	"github.com/UnknownOlympus/agora/internal/metrics"
	"github.com/UnknownOlympus/agora/internal/query"
	"github.com/UnknownOlympus/agora/internal/repository"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	fusekiDataset  = "facilities"
	fusekiPassword = "admin"
)

const fixture = `
@prefix ex:     <http://example.org/dcc/facilities#> .
@prefix schema: <http://schema.org/> .
@prefix rdfs:   <http://www.w3.org/2000/01/rdf-schema#> .
@prefix geo:    <http://www.opengis.net/ont/geosparql#> .

ex:Central      a ex:CommitteeArea ; schema:name "Central" .
ex:NorthWest    a ex:CommitteeArea ; schema:name "North West" .
ex:SouthEast    a ex:CommitteeArea ; schema:name "South East" .

ex:Library      a ex:FacilityType ; rdfs:label "Library" .
ex:Park         a ex:FacilityType ; rdfs:label "Park" .

<http://example.org/dcc/facilities#facility/lib-001> a ex:Facility ;
    schema:name "Central Library" ;
    schema:address "ILAC Centre, Henry Street" ;
    schema:url "https://www.dublincity.ie/library" ;
    ex:sourceDataset "libraries.csv" ;
    ex:latitude "53.3498"^^<http://www.w3.org/2001/XMLSchema#decimal> ;
    ex:longitude "-6.2603"^^<http://www.w3.org/2001/XMLSchema#decimal> ;
    ex:inCommitteeArea ex:Central ;
    ex:hasFacilityType ex:Library .

<http://example.org/dcc/facilities#facility/lib-002> a ex:Facility ;
    schema:name "Pearse Street Library" ;
    ex:latitude "53.3437"^^<http://www.w3.org/2001/XMLSchema#decimal> ;
    ex:longitude "-6.2460"^^<http://www.w3.org/2001/XMLSchema#decimal> ;
    ex:inCommitteeArea ex:SouthEast ;
    ex:hasFacilityType ex:Library .

<http://example.org/dcc/facilities#facility/park-001> a ex:Facility ;
    schema:name "Merrion Square" ;
    ex:latitude "53.3395"^^<http://www.w3.org/2001/XMLSchema#decimal> ;
    ex:longitude "-6.2491"^^<http://www.w3.org/2001/XMLSchema#decimal> ;
    ex:inCommitteeArea ex:SouthEast ;
    ex:hasFacilityType ex:Park ;
    geo:hasGeometry <http://example.org/dcc/facilities#geometry/park-001> .

<http://example.org/dcc/facilities#geometry/park-001>
    geo:asWKT "POLYGON((-6.250 53.338, -6.247 53.338, -6.247 53.341, -6.250 53.338))"^^geo:wktLiteral .
`

// startFuseki runs an in-memory SPARQL store loaded with the fixture and
// returns its query endpoint.
func startFuseki(ctx context.Context, t *testing.T) string {
	t.Helper()

	req := testcontainers.ContainerRequest{
		Image:        "stain/jena-fuseki:5.1.0",
		ExposedPorts: []string{"3030/tcp"},
		Env: map[string]string{
			"FUSEKI_DATASET_1": fusekiDataset,
			"ADMIN_PASSWORD":   fusekiPassword,
		},
		WaitingFor: wait.ForHTTP("/$/ping").WithPort("3030/tcp").WithStartupTimeout(2 * time.Minute),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if errTerm := container.Terminate(context.Background()); errTerm != nil {
			t.Logf("failed to terminate container: %s", errTerm)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "3030")
	require.NoError(t, err)

	base := fmt.Sprintf("http://%s:%s/%s", host, port.Port(), fusekiDataset)

	load, err := http.NewRequestWithContext(ctx, http.MethodPost, base+"/data", strings.NewReader(fixture))
	require.NoError(t, err)
	load.Header.Set("Content-Type", "text/turtle")
	load.SetBasicAuth("admin", fusekiPassword)

	resp, err := http.DefaultClient.Do(load)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	require.Less(t, resp.StatusCode, 300, string(body))

	return base + "/query"
}

func TestIntegration_Repository(t *testing.T) {
	ctx := t.Context()
	endpoint := startFuseki(ctx, t)

	builder, err := query.NewBuilder(ns)
	require.NoError(t, err)
	client := graphdb.NewClient(endpoint, 30*time.Second, slog.Default(), metrics.NewMetrics(prometheus.NewRegistry()))
	repo := repository.NewRepository(client, builder, slog.Default())

	t.Run("ping", func(t *testing.T) {
		require.NoError(t, repo.Ping(ctx))
	})

	t.Run("areas ordered by name with counts", func(t *testing.T) {
		areas, err := repo.ListAreas(ctx)
		require.NoError(t, err)
		require.Len(t, areas, 3)

		assert.Equal(t, "Central", areas[0].Name)
		assert.Equal(t, "central", areas[0].ID)
		assert.Equal(t, 1, areas[0].FacilityCount)
		assert.Equal(t, "north-west", areas[1].ID)
		assert.Equal(t, 0, areas[1].FacilityCount)
		assert.Equal(t, "south-east", areas[2].ID)
		assert.Equal(t, 2, areas[2].FacilityCount)
	})

	t.Run("facilities filtered by area", func(t *testing.T) {
		facilities, err := repo.ListFacilities(ctx, ns+"SouthEast", nil)
		require.NoError(t, err)
		require.Len(t, facilities, 2)

		for _, f := range facilities {
			assert.Equal(t, "South East", f.Area)
		}
		assert.Equal(t, "Merrion Square", facilities[0].Name)
		assert.Contains(t, facilities[0].WKT, "POLYGON")
		assert.Empty(t, facilities[1].WKT)
	})

	t.Run("facilities filtered by type", func(t *testing.T) {
		facilities, err := repo.ListFacilities(ctx, "", []string{ns + "Library"})
		require.NoError(t, err)
		assert.Len(t, facilities, 2)
	})

	t.Run("search is case insensitive and limited", func(t *testing.T) {
		found, err := repo.SearchFacilities(ctx, "library", 1)
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "Central Library", found[0].Name)
		assert.InDelta(t, 53.3498, found[0].Coordinates.Latitude, 1e-9)
	})

	t.Run("search term cannot break out of the literal", func(t *testing.T) {
		found, err := repo.SearchFacilities(ctx, `") || true || ("`, 10)
		require.NoError(t, err)
		assert.Empty(t, found)
	})

	t.Run("facility detail", func(t *testing.T) {
		detail, err := repo.GetFacility(ctx, ns+"facility/lib-001")
		require.NoError(t, err)
		assert.Equal(t, "Central Library", detail.Name)
		assert.Equal(t, "ILAC Centre, Henry Street", detail.Address)
		assert.Equal(t, "libraries.csv", detail.SourceDataset)

		detail, err = repo.GetFacility(ctx, ns+"facility/lib-002")
		require.NoError(t, err)
		assert.Empty(t, detail.URL)
	})

	t.Run("unknown facility", func(t *testing.T) {
		_, err := repo.GetFacility(ctx, ns+"facility/nope")
		require.ErrorIs(t, err, repository.ErrFacilityNotFound)
	})

	t.Run("stats within area", func(t *testing.T) {
		counts, err := repo.CountByType(ctx, ns+"SouthEast")
		require.NoError(t, err)
		assert.Len(t, counts, 2)
	})

	t.Run("missing and distribution", func(t *testing.T) {
		missing, err := repo.AreasMissingType(ctx, ns+"Park")
		require.NoError(t, err)
		require.Len(t, missing, 2)
		assert.Equal(t, "central", missing[0].ID)

		dist, err := repo.CountByArea(ctx, ns+"Library")
		require.NoError(t, err)
		require.Len(t, dist, 3)
		assert.Equal(t, 0, dist[0].Count)
	})
}
