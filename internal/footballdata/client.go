// Package footballdata implements the fixtures source against the
// football-data.org v4 API.
//
// Auth is a static X-Auth-Token header. The free tier allows 10 requests
// per minute, so all calls go through a token bucket limiter.
package footballdata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

// ErrSourceUnavailable marks a failed fixture fetch (network, non-200 or
// parse error). The engine keeps its prior schedule and retries next cycle.
var ErrSourceUnavailable = errors.New("fixture source unavailable")

// Client is the HTTP client for all football-data.org endpoints.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	teamID     int
	limiter    *rate.Limiter
}

// NewClient creates a rate-limited football-data.org client.
func NewClient(baseURL, apiKey string, teamID, requestsPerMinute int) *Client {
	rps := float64(requestsPerMinute) / 60.0
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    baseURL,
		apiKey:     apiKey,
		teamID:     teamID,
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
	}
}

// get performs a rate-limited GET request against the API.
func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: rate limit wait: %v", ErrSourceUnavailable, err)
	}

	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-Auth-Token", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: http request %s: %v", ErrSourceUnavailable, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response body: %v", ErrSourceUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s returned %d: %s", ErrSourceUnavailable, path, resp.StatusCode, truncate(body, 200))
	}

	return body, nil
}

// decode unmarshals an API response, classifying parse failures as a source
// problem.
func decode(body []byte, v any) error {
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrSourceUnavailable, err)
	}
	return nil
}

// truncate returns a truncated string representation for error messages.
func truncate(b []byte, maxLen int) string {
	if len(b) <= maxLen {
		return string(b)
	}
	return string(b[:maxLen]) + "..."
}
