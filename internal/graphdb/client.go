// Package graphdb talks to the triple store over the SPARQL 1.1 protocol and
// flattens SPARQL-JSON results into rows.
package graphdb

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/UnknownOlympus/agora/internal/metrics"
	"github.com/knakk/sparql"
)

const (
	// DefaultTimeout bounds a single query round-trip.
	DefaultTimeout = 30 * time.Second

	contentTypeQuery = "application/sparql-query"
	acceptResults    = "application/sparql-results+json"
	maxErrorBody     = 512
)

// Common errors for the GraphDB client.
var (
	ErrUpstreamStatus = errors.New("graphdb returned unexpected status")
	ErrDecodeResults  = errors.New("failed to decode sparql results")
)

// HTTPClient defines the interface for making HTTP requests.
// This allows for easy mocking in tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client executes SPARQL queries against a single repository endpoint.
type Client struct {
	client   HTTPClient       // HTTP client for making requests
	endpoint string           // Repository endpoint, e.g. http://host:7200/repositories/city_facilities
	log      *slog.Logger     // Logger for logging operations
	metrics  *metrics.Metrics // Query duration and error counters
}

// NewClient creates a client with its own http.Client bounded by timeout.
func NewClient(endpoint string, timeout time.Duration, log *slog.Logger, m *metrics.Metrics) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		client:   &http.Client{Timeout: timeout},
		endpoint: endpoint,
		log:      log,
		metrics:  m,
	}
}

// NewClientWithHTTP creates a client with a custom HTTP client.
// Useful for testing with mocked HTTP clients.
func NewClientWithHTTP(client HTTPClient, endpoint string, log *slog.Logger, m *metrics.Metrics) *Client {
	return &Client{client: client, endpoint: endpoint, log: log, metrics: m}
}

// Endpoint returns the configured repository URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Execute posts query to the endpoint and parses the SPARQL-JSON response.
// The name labels the duration metric. Any transport failure, non-2xx status
// or malformed body is returned as an error; nothing is retried.
func (c *Client) Execute(ctx context.Context, name, query string) (*sparql.Results, error) {
	startTime := time.Now()
	results, err := c.execute(ctx, query)
	c.metrics.QuerySeconds.WithLabelValues(name).Observe(time.Since(startTime).Seconds())

	if err != nil {
		c.metrics.UpstreamErrors.Inc()
		c.log.ErrorContext(ctx, "GraphDB query error", "query", name, "error", err)
		return nil, err
	}

	c.log.DebugContext(ctx, "GraphDB query completed",
		"query", name,
		"rows", len(results.Results.Bindings),
		"duration", time.Since(startTime))

	return results, nil
}

func (c *Client) execute(ctx context.Context, query string) (*sparql.Results, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(query))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", contentTypeQuery+"; charset=utf-8")
	req.Header.Set("Accept", acceptResults)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute sparql request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("%w %d: %s", ErrUpstreamStatus, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	results, err := sparql.ParseJSON(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeResults, err)
	}

	return results, nil
}
