// Package scrape is a thin client over the Firecrawl scrape API: one URL in,
// markdown and/or a screenshot out, with everything archived to disk.
package scrape

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/go-resty/resty/v2"
)

// DefaultBaseURL is the production Firecrawl endpoint.
const DefaultBaseURL = "https://api.firecrawl.dev"

var validate = validator.New(validator.WithRequiredStructEnabled())

// APIError is a non-2xx response from the scrape API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("scrape API error: status %d: %s", e.StatusCode, e.Body)
}

// Client issues authenticated requests against the scrape API.
type Client struct {
	http *resty.Client
	// download fetches screenshot URLs from arbitrary hosts, so it carries
	// no auth header.
	download *resty.Client
}

// NewClient builds a client for the production endpoint.
func NewClient(apiKey string) *Client {
	return NewClientWithBaseURL(apiKey, DefaultBaseURL)
}

// NewClientWithBaseURL allows tests to point the client at an httptest server.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(apiKey)
	return &Client{http: httpClient, download: resty.New()}
}

// Scrape submits a scrape request. A response with Success false is returned
// without error; the caller decides how to report it.
func (c *Client) Scrape(ctx context.Context, url string, opts Options) (*Response, error) {
	if err := validate.Var(url, "required,url"); err != nil {
		return nil, fmt.Errorf("invalid URL %q: %w", url, err)
	}
	if err := validate.Struct(opts); err != nil {
		return nil, fmt.Errorf("invalid scrape options: %w", err)
	}

	body := map[string]any{
		"url":             url,
		"onlyMainContent": opts.OnlyMainContent,
		"maxAge":          opts.MaxAge,
		"parsers":         []string{},
		"formats":         opts.Formats(),
		"waitFor":         opts.WaitFor,
	}

	res, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		Post("/v2/scrape")
	if err != nil {
		return nil, fmt.Errorf("scrape request failed: %w", err)
	}
	if res.IsError() {
		return nil, &APIError{StatusCode: res.StatusCode(), Body: res.String()}
	}

	var result Response
	if err := json.Unmarshal(res.Body(), &result); err != nil {
		return nil, fmt.Errorf("failed to decode scrape response: %w", err)
	}
	result.Raw = res.Body()
	return &result, nil
}
