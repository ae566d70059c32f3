package places

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplaySearchResults(t *testing.T) {
	resp := &SearchResponse{Places: []Place{
		{ID: "p1", DisplayName: LocalizedText{Text: "First Cafe"}, FormattedAddress: "1 Main St"},
		{ID: "p2", DisplayName: LocalizedText{Text: "Second Cafe"}, FormattedAddress: "2 Main St"},
		{ID: "p3"},
	}}

	var buf strings.Builder
	DisplaySearchResults(&buf, resp)
	out := buf.String()

	assert.Contains(t, out, "Found 3 place(s)")
	assert.Contains(t, out, "First Cafe")
	assert.Contains(t, out, "Second Cafe")
	// Missing fields fall back to placeholders
	assert.Contains(t, out, "Unknown Name")
	assert.Contains(t, out, "No address available")
	// Input order preserved
	assert.Less(t, strings.Index(out, "First Cafe"), strings.Index(out, "Second Cafe"))
}

func TestDisplaySearchResults_Empty(t *testing.T) {
	var buf strings.Builder
	DisplaySearchResults(&buf, &SearchResponse{})
	assert.Contains(t, buf.String(), "No places found for your search query.")
}

func TestDisplayReviews(t *testing.T) {
	place := &Place{
		ID:          "p1",
		DisplayName: LocalizedText{Text: "First Cafe"},
		Reviews: []Review{
			{AuthorAttribution: AuthorAttribution{DisplayName: "Alex"}, Rating: 4.5, Text: LocalizedText{Text: "Nice spot"}, PublishTime: "2024-01-01T00:00:00Z"},
			{},
		},
	}

	var buf strings.Builder
	DisplayReviews(&buf, place)
	out := buf.String()

	assert.Contains(t, out, "Place: First Cafe")
	assert.Contains(t, out, "Found 2 review(s)")
	assert.Contains(t, out, "Author: Alex")
	assert.Contains(t, out, "Rating: 4.5/5")
	assert.Contains(t, out, "Nice spot")
	// Empty review falls back to placeholders
	assert.Contains(t, out, "Author: Anonymous")
	assert.Contains(t, out, "Rating: N/A")
	assert.Contains(t, out, "No text provided")
	assert.Contains(t, out, "Unknown date")
}

func TestDisplayReviews_None(t *testing.T) {
	var buf strings.Builder
	DisplayReviews(&buf, &Place{ID: "p1", DisplayName: LocalizedText{Text: "Quiet Cafe"}})
	assert.Contains(t, buf.String(), "No reviews found for this place.")
}

func TestSaveFilenames(t *testing.T) {
	assert.Equal(t, "search_results_Coffee_shop.json", SearchFilename("Coffee shop"))

	place := &Place{ID: "p1", DisplayName: LocalizedText{Text: "First Cafe"}}
	assert.Equal(t, "reviews_p1_First_Cafe.json", ReviewsFilename(place))

	unnamed := &Place{ID: "p2"}
	assert.Equal(t, "reviews_p2_unknown.json", ReviewsFilename(unnamed))
}
