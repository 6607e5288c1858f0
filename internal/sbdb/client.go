// Package sbdb is a client for the JPL Small-Body Database lookup API.
// It resolves asteroid names to suggestions or full physical/orbital
// records and caches responses briefly. The physics engine never calls
// this package; catalog data reaches it only as already-resolved input.
package sbdb

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

const (
	defaultBaseURL = "https://ssd-api.jpl.nasa.gov/sbdb.api"

	// maxResponseBytes bounds how much of an upstream response we will
	// buffer. Catalog responses are a few KB; anything near this limit
	// is malformed or hostile.
	maxResponseBytes = 4 << 20
)

// ErrNotFound reports that the catalog has no matching object.
var ErrNotFound = errors.New("no matching small body")

// Client queries the SBDB API with a bounded timeout and a small TTL
// cache keyed by search string.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *responseCache
	logger     *slog.Logger
}

// NewClient creates a Client for the given API base URL; an empty URL
// selects the JPL production endpoint.
func NewClient(baseURL string, cacheTTL time.Duration, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		cache:  newResponseCache(cacheTTL),
		logger: logger,
	}
}

// Autocomplete returns up to limit name suggestions for a partial
// asteroid name, using the API's wildcard search.
func (c *Client) Autocomplete(ctx context.Context, query string, limit int) ([]Suggestion, error) {
	body, err := c.get(ctx, url.Values{"sstr": {"*" + query + "*"}})
	if err != nil {
		return nil, err
	}

	suggestions, err := parseSuggestions(body, limit)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("autocomplete lookup", "query", query, "matches", len(suggestions))
	return suggestions, nil
}

// Lookup returns the full catalog record for an asteroid name or
// designation, including physical parameters and orbital elements.
// Full names with designation prefixes are normalized first.
// Returns ErrNotFound when the catalog has no such object.
func (c *Client) Lookup(ctx context.Context, name string) (*Record, error) {
	clean := ExtractName(name)

	body, err := c.get(ctx, url.Values{"sstr": {clean}, "phys-par": {"1"}})
	if err != nil {
		return nil, err
	}

	rec, err := parseRecord(body)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("%w: %q (searched as %q)", ErrNotFound, name, clean)
	}

	c.logger.Debug("catalog lookup", "name", name, "search_name", clean, "designation", rec.Designation)
	return rec, nil
}

// get performs a cached GET against the API.
func (c *Client) get(ctx context.Context, params url.Values) ([]byte, error) {
	key := params.Encode()
	if body, ok := c.cache.get(key); ok {
		return body, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+key, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("querying SBDB: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d from SBDB", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading SBDB response: %w", err)
	}
	if len(body) > maxResponseBytes {
		return nil, fmt.Errorf("SBDB response exceeds %d byte limit", maxResponseBytes)
	}

	c.cache.put(key, body)
	return body, nil
}
