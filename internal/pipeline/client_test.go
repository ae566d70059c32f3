package pipeline

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/seo-toolkit/internal/config"
)

func testConfig() *config.Pipeline {
	return &config.Pipeline{
		APIKey:      "test-key",
		UserID:      "user-1",
		SavedItemID: "item-1",
		FocusArea:   "Content Optimization",
	}
}

func TestStart(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/start_pipeline", r.URL.Path)
		assert.Equal(t, "user-1", r.URL.Query().Get("user_id"))
		assert.Equal(t, "item-1", r.URL.Query().Get("saved_item_id"))
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var req map[string]string
		require.NoError(t, json.Unmarshal(body, &req))
		assert.Equal(t, "https://example.com", req["url"])
		assert.Equal(t, "Content Optimization", req["focus_area"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"run_id": "run-123"}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL(testConfig(), server.URL)
	resp, err := client.Start(context.Background(), "https://example.com")
	require.NoError(t, err)
	assert.Equal(t, "run-123", resp.RunID)
}

func TestStart_NoRunID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message": "invalid saved item"}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL(testConfig(), server.URL)
	resp, err := client.Start(context.Background(), "https://example.com")
	require.NoError(t, err)
	assert.Empty(t, resp.RunID)
	assert.Contains(t, string(resp.Raw), "invalid saved item")
}

func TestGetRun(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/get_pl_run", r.URL.Path)
		assert.Equal(t, "user-1", r.URL.Query().Get("user_id"))
		assert.Equal(t, "run-123", r.URL.Query().Get("run_id"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"state": "DONE",
			"outputs": {"output": "# Report"},
			"credit_cost": 12.5,
			"created_ts": "2024-01-01T00:00:00Z"
		}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL(testConfig(), server.URL)
	run, err := client.GetRun(context.Background(), "run-123")
	require.NoError(t, err)
	assert.Equal(t, StateDone, run.State)
	assert.Equal(t, "# Report", run.Outputs["output"])
	require.NotNil(t, run.CreditCost)
	assert.Equal(t, 12.5, *run.CreditCost)
	assert.Nil(t, run.NodeExecutions)
}

func TestGetRun_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": "bad token"}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL(testConfig(), server.URL)
	_, err := client.GetRun(context.Background(), "run-123")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "bad token")
}

func TestStateTerminal(t *testing.T) {
	assert.True(t, StateDone.Terminal())
	assert.True(t, StateFailed.Terminal())
	assert.False(t, StateRunning.Terminal())
	assert.False(t, State("SOMETHING_NEW").Terminal())
	assert.False(t, State("").Terminal())
}
