// Package places is a thin client over the Google Places REST API: text
// search and per-place review retrieval, with formatted terminal output.
package places

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"
)

// DefaultBaseURL is the production Places API endpoint.
const DefaultBaseURL = "https://places.googleapis.com"

// Field masks restrict which response fields the API returns.
const (
	searchFieldMask  = "places.id,places.displayName,places.formattedAddress"
	detailsFieldMask = "id,displayName,reviews"
)

// APIError is a non-2xx response from the Places API, surfacing the status
// code and body to the user.
type APIError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("places API error on %s: status %d: %s", e.Endpoint, e.StatusCode, e.Body)
}

// Client issues authenticated requests against the Places API.
type Client struct {
	http *resty.Client
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
		SetHeader("X-Goog-Api-Key", apiKey)
	return &Client{http: httpClient}
}

// Search runs a text search and returns the matching places.
func (c *Client) Search(ctx context.Context, textQuery string) (*SearchResponse, error) {
	res, err := c.http.R().
		SetContext(ctx).
		SetHeader("X-Goog-FieldMask", searchFieldMask).
		SetBody(map[string]string{"textQuery": textQuery}).
		Post("/v1/places:searchText")
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	if res.IsError() {
		return nil, &APIError{Endpoint: "places:searchText", StatusCode: res.StatusCode(), Body: res.String()}
	}

	var result SearchResponse
	if err := json.Unmarshal(res.Body(), &result); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}
	result.Raw = res.Body()
	return &result, nil
}

// FetchReviews retrieves a place by id with its reviews.
func (c *Client) FetchReviews(ctx context.Context, placeID string) (*Place, error) {
	res, err := c.http.R().
		SetContext(ctx).
		SetHeader("X-Goog-FieldMask", detailsFieldMask).
		Get("/v1/places/" + placeID)
	if err != nil {
		return nil, fmt.Errorf("reviews request failed: %w", err)
	}
	if res.IsError() {
		return nil, &APIError{Endpoint: "places/" + placeID, StatusCode: res.StatusCode(), Body: res.String()}
	}

	var place Place
	if err := json.Unmarshal(res.Body(), &place); err != nil {
		return nil, fmt.Errorf("failed to decode place response: %w", err)
	}
	place.Raw = res.Body()
	return &place, nil
}
