package vehicles

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/s0up4200/safetydash/schema"
)

const (
	searchPath  = "/api/vehicles/initial-search"
	vehiclePath = "/api/vehicles/"
	ymmtPath    = "/api/vehicles/ymmt"

	// DefaultPageSize is the page size Search uses unless WithPageSize overrides it
	DefaultPageSize = 20
)

// Client talks to the vehicle search and detail endpoints
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
	pageSize   int
	strict     bool
}

// NewClient creates a new vehicles client
func NewClient(baseURL string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("%w: base URL is required", ErrInvalidConfig)
	}

	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: base URL %q is not absolute", ErrInvalidConfig, baseURL)
	}

	client := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger:   logger,
		pageSize: DefaultPageSize,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// SearchEndpoint returns the absolute URL of the search endpoint
func (c *Client) SearchEndpoint() string {
	return c.baseURL + searchPath
}

// Search runs SearchVehicles from the first page with the configured page size
func (c *Client) Search(ctx context.Context, query string) (*schema.SearchResponse, error) {
	return c.SearchVehicles(ctx, query, 0, c.pageSize)
}

// SearchVehicles searches vehicles by free text and rewrites the pagination links so they
// point back at this client's search endpoint
func (c *Client) SearchVehicles(ctx context.Context, query string, offset, pageSize int) (*schema.SearchResponse, error) {
	resp, err := c.searchVehicles(ctx, query, offset, pageSize)
	if err != nil {
		c.logger.Error().
			Err(err).
			Str("query", query).
			Int("offset", offset).
			Int("max", pageSize).
			Msg("Error fetching vehicle data")
		return nil, err
	}
	return resp, nil
}

func (c *Client) searchVehicles(ctx context.Context, query string, offset, pageSize int) (*schema.SearchResponse, error) {
	if offset < 0 {
		return nil, fmt.Errorf("%w: offset must not be negative, got %d", ErrInvalidParams, offset)
	}
	if pageSize <= 0 {
		return nil, fmt.Errorf("%w: max must be positive, got %d", ErrInvalidParams, pageSize)
	}
	if offset > math.MaxInt-pageSize {
		return nil, fmt.Errorf("%w: offset %d with max %d overflows", ErrInvalidParams, offset, pageSize)
	}

	endpoint := c.SearchEndpoint()

	var resp schema.SearchResponse
	if err := c.getJSON(ctx, searchURL(endpoint, query, offset, pageSize), &resp); err != nil {
		return nil, err
	}

	if c.strict {
		for i := range resp.Data.Results {
			if err := resp.Data.Results[i].Validate(); err != nil {
				return nil, fmt.Errorf("result %d: %w", i, err)
			}
		}
	}

	if resp.IsSuccess && resp.Data.Meta != nil && resp.Data.Meta.Pagination != nil {
		RewritePagination(resp.Data.Meta.Pagination, endpoint, query, offset, pageSize)
	}

	c.logger.Debug().
		Str("query", query).
		Int("count", len(resp.Data.Results)).
		Msg("Retrieved vehicles")

	return &resp, nil
}

// GetVehicleByID fetches a vehicle by its identifier. The payload is left undecoded; use
// schema.DecodeRaw to decode it into a concrete type.
func (c *Client) GetVehicleByID(ctx context.Context, id string) (*schema.RawResponse, error) {
	resp, err := c.getVehicleByID(ctx, id)
	if err != nil {
		c.logger.Error().Err(err).Str("id", id).Msg("Error fetching vehicle details")
		return nil, err
	}
	return resp, nil
}

func (c *Client) getVehicleByID(ctx context.Context, id string) (*schema.RawResponse, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: vehicle id is required", ErrInvalidParams)
	}

	var resp schema.RawResponse
	if err := c.getJSON(ctx, c.baseURL+vehiclePath+url.PathEscape(id), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// YMMT identifies a vehicle by year, make, model and optional trim and series
type YMMT struct {
	ModelYear int
	Make      string
	Model     string
	Trim      string
	Series    string
}

func (q YMMT) validate() error {
	if q.ModelYear <= 0 {
		return fmt.Errorf("%w: model year must be positive, got %d", ErrInvalidParams, q.ModelYear)
	}
	if q.Make == "" {
		return fmt.Errorf("%w: make is required", ErrInvalidParams)
	}
	if q.Model == "" {
		return fmt.Errorf("%w: model is required", ErrInvalidParams)
	}
	return nil
}

func (q YMMT) query() string {
	pairs := []string{
		"modelYear", strconv.Itoa(q.ModelYear),
		"make", q.Make,
		"model", q.Model,
	}
	if q.Trim != "" {
		pairs = append(pairs, "trim", q.Trim)
	}
	if q.Series != "" {
		pairs = append(pairs, "series", q.Series)
	}
	return encodeQuery(pairs...)
}

// GetVehicleByYMMT fetches detailed vehicle information by year, make, model, trim and series
func (c *Client) GetVehicleByYMMT(ctx context.Context, q YMMT) (*schema.DetailedVehicleResponse, error) {
	resp, err := c.getVehicleByYMMT(ctx, q)
	if err != nil {
		c.logger.Error().
			Err(err).
			Int("model_year", q.ModelYear).
			Str("make", q.Make).
			Str("model", q.Model).
			Msg("Error fetching vehicle details")
		return nil, err
	}
	return resp, nil
}

func (c *Client) getVehicleByYMMT(ctx context.Context, q YMMT) (*schema.DetailedVehicleResponse, error) {
	if err := q.validate(); err != nil {
		return nil, err
	}

	var resp schema.DetailedVehicleResponse
	if err := c.getJSON(ctx, c.baseURL+ymmtPath+"?"+q.query(), &resp); err != nil {
		return nil, err
	}

	if c.strict {
		for i := range resp.Data.Results {
			if err := resp.Data.Results[i].Validate(); err != nil {
				return nil, fmt.Errorf("result %d: %w", i, err)
			}
		}
	}

	return &resp, nil
}

// getJSON performs one GET and decodes the body as JSON. The service labels its bodies
// text/plain, so the Accept header asks for that and the body is decoded regardless.
func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "text/plain")

	c.logger.Debug().Str("url", rawURL).Msg("Making vehicle API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &schema.APIError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Unmarshal rejects trailing data after the top-level value
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
