package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPlaces(t *testing.T) {
	t.Setenv("GOOGLE_PLACES_API_KEY", "test-key")

	cfg, err := LoadPlaces()
	require.NoError(t, err)
	assert.Equal(t, "test-key", cfg.APIKey)
}

func TestLoadPlaces_Missing(t *testing.T) {
	t.Setenv("GOOGLE_PLACES_API_KEY", "")

	_, err := LoadPlaces()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GOOGLE_PLACES_API_KEY")
	assert.Contains(t, err.Error(), ".env")
}

func TestLoadScrape_Missing(t *testing.T) {
	t.Setenv("FIRECRAWL_API_KEY", "")

	_, err := LoadScrape()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FIRECRAWL_API_KEY")
}

func TestLoadPipeline(t *testing.T) {
	t.Setenv("PIPELINE_API_KEY", "key")
	t.Setenv("PIPELINE_USER_ID", "user-1")
	t.Setenv("PIPELINE_SAVED_ITEM_ID", "item-1")
	t.Setenv("PIPELINE_FOCUS_AREA", "")

	cfg, err := LoadPipeline()
	require.NoError(t, err)
	assert.Equal(t, "key", cfg.APIKey)
	assert.Equal(t, "user-1", cfg.UserID)
	assert.Equal(t, "item-1", cfg.SavedItemID)
	assert.Equal(t, DefaultFocusArea, cfg.FocusArea)
}

func TestLoadPipeline_FocusAreaOverride(t *testing.T) {
	t.Setenv("PIPELINE_API_KEY", "key")
	t.Setenv("PIPELINE_USER_ID", "user-1")
	t.Setenv("PIPELINE_SAVED_ITEM_ID", "item-1")
	t.Setenv("PIPELINE_FOCUS_AREA", "Local SEO")

	cfg, err := LoadPipeline()
	require.NoError(t, err)
	assert.Equal(t, "Local SEO", cfg.FocusArea)
}

func TestLoadPipeline_MissingFields(t *testing.T) {
	t.Setenv("PIPELINE_API_KEY", "")
	t.Setenv("PIPELINE_USER_ID", "")
	t.Setenv("PIPELINE_SAVED_ITEM_ID", "")

	_, err := LoadPipeline()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PIPELINE_API_KEY")

	t.Setenv("PIPELINE_API_KEY", "key")
	_, err = LoadPipeline()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PIPELINE_USER_ID")
}
