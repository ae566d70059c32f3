package places

import (
	"fmt"
	"path/filepath"

	"github.com/jonathan/seo-toolkit/internal/files"
)

// SearchFilename derives the --save target for a search query.
// "Coffee shop" -> "search_results_Coffee_shop.json".
func SearchFilename(query string) string {
	return fmt.Sprintf("search_results_%s.json", files.Sanitize(query))
}

// ReviewsFilename derives the --save target for a place's reviews.
func ReviewsFilename(place *Place) string {
	name := place.DisplayName.Text
	if name == "" {
		name = "unknown"
	}
	return fmt.Sprintf("reviews_%s_%s.json", place.ID, files.Sanitize(name))
}

// SaveSearch writes the raw search response under outputDir and returns the
// file path.
func SaveSearch(outputDir, query string, resp *SearchResponse) (string, error) {
	path := filepath.Join(outputDir, SearchFilename(query))
	if err := files.WriteJSON(path, resp.Raw); err != nil {
		return "", err
	}
	return path, nil
}

// SaveReviews writes the raw place response under outputDir and returns the
// file path.
func SaveReviews(outputDir string, place *Place) (string, error) {
	path := filepath.Join(outputDir, ReviewsFilename(place))
	if err := files.WriteJSON(path, place.Raw); err != nil {
		return "", err
	}
	return path, nil
}
