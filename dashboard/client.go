package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/s0up4200/safetydash/schema"
)

const analyticsPath = "/api/dashboard/analytics"

// Client talks to the dashboard analytics endpoint
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new dashboard client
func NewClient(baseURL string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("%w: base URL is required", ErrInvalidConfig)
	}

	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: base URL %q is not absolute", ErrInvalidConfig, baseURL)
	}

	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// GetAnalytics fetches the dashboard analytics
func (c *Client) GetAnalytics(ctx context.Context, params AnalyticsParams) (*AnalyticsResponse, error) {
	resp, err := c.getAnalytics(ctx, params)
	if err != nil {
		c.logger.Error().Err(err).Msg("Error fetching dashboard analytics")
		return nil, err
	}
	return resp, nil
}

func (c *Client) getAnalytics(ctx context.Context, params AnalyticsParams) (*AnalyticsResponse, error) {
	if params.RecentRecallsCount < 0 || params.TopManufacturersCount < 0 || params.MostRecalledVehiclesCount < 0 {
		return nil, fmt.Errorf("%w: counts must not be negative", ErrInvalidParams)
	}

	query := url.Values{}
	query.Set("recentRecallsCount", strconv.Itoa(params.RecentRecallsCount))
	query.Set("topManufacturersCount", strconv.Itoa(params.TopManufacturersCount))
	query.Set("mostRecalledVehiclesCount", strconv.Itoa(params.MostRecalledVehiclesCount))

	requestURL := fmt.Sprintf("%s%s?%s", c.baseURL, analyticsPath, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "text/plain")

	c.logger.Debug().Str("url", requestURL).Msg("Making dashboard API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &schema.APIError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var analytics AnalyticsResponse
	if err := json.Unmarshal(body, &analytics); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	c.logger.Debug().
		Int("recent_recalls", len(analytics.Data.RecentRecalls)).
		Int("manufacturers", len(analytics.Data.RecallsByManufacturer)).
		Msg("Retrieved dashboard analytics")

	return &analytics, nil
}
