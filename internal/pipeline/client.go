// Package pipeline is a thin client over the content-optimization workflow
// API: job submission, run-status snapshots, and a fixed-interval polling
// loop with DONE/FAILED terminal states.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/jonathan/seo-toolkit/internal/config"
)

// DefaultBaseURL is the production workflow API endpoint.
const DefaultBaseURL = "https://api.gumloop.com"

// APIError is a non-2xx response from the workflow API.
type APIError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("pipeline API error on %s: status %d: %s", e.Endpoint, e.StatusCode, e.Body)
}

// Client issues authenticated requests against the workflow API. The user and
// saved-item identifiers select the saved workflow to execute.
type Client struct {
	http        *resty.Client
	userID      string
	savedItemID string
	focusArea   string

	// sleep is replaceable in tests so the poll loop can run instantly.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewClient builds a client for the production endpoint.
func NewClient(cfg *config.Pipeline) *Client {
	return NewClientWithBaseURL(cfg, DefaultBaseURL)
}

// NewClientWithBaseURL allows tests to point the client at an httptest server.
func NewClientWithBaseURL(cfg *config.Pipeline, baseURL string) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(cfg.APIKey)
	return &Client{
		http:        httpClient,
		userID:      cfg.UserID,
		savedItemID: cfg.SavedItemID,
		focusArea:   cfg.FocusArea,
		sleep:       sleepContext,
	}
}

// Start submits a new pipeline run for url and returns the assigned run id.
// A response without a run id is not an error here; the caller reports it.
func (c *Client) Start(ctx context.Context, url string) (*StartResponse, error) {
	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("user_id", c.userID).
		SetQueryParam("saved_item_id", c.savedItemID).
		SetBody(map[string]string{"url": url, "focus_area": c.focusArea}).
		Post("/api/v1/start_pipeline")
	if err != nil {
		return nil, fmt.Errorf("start pipeline request failed: %w", err)
	}
	if res.IsError() {
		return nil, &APIError{Endpoint: "start_pipeline", StatusCode: res.StatusCode(), Body: res.String()}
	}

	var result StartResponse
	if err := json.Unmarshal(res.Body(), &result); err != nil {
		return nil, fmt.Errorf("failed to decode start response: %w", err)
	}
	result.Raw = res.Body()
	return &result, nil
}

// GetRun fetches a fresh snapshot of the run.
func (c *Client) GetRun(ctx context.Context, runID string) (*Run, error) {
	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("user_id", c.userID).
		SetQueryParam("run_id", runID).
		Get("/api/v1/get_pl_run")
	if err != nil {
		return nil, fmt.Errorf("get run request failed: %w", err)
	}
	if res.IsError() {
		return nil, &APIError{Endpoint: "get_pl_run", StatusCode: res.StatusCode(), Body: res.String()}
	}

	var run Run
	if err := json.Unmarshal(res.Body(), &run); err != nil {
		return nil, fmt.Errorf("failed to decode run snapshot: %w", err)
	}
	run.Raw = res.Body()
	return &run, nil
}

// sleepContext blocks for d or until ctx is cancelled.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
