package places

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Placeholders shown when the API omits an optional field.
const (
	unknownID   = "Unknown ID"
	unknownName = "Unknown Name"
	noAddress   = "No address available"
)

// Name returns the place's display name or a placeholder.
func (p *Place) Name() string {
	if p.DisplayName.Text == "" {
		return unknownName
	}
	return p.DisplayName.Text
}

// DisplaySearchResults prints the search hits as a table, one row per place
// in response order.
func DisplaySearchResults(w io.Writer, resp *SearchResponse) {
	if len(resp.Places) == 0 {
		fmt.Fprintln(w, "No places found for your search query.")
		return
	}

	fmt.Fprintf(w, "\nFound %d place(s) matching your search:\n", len(resp.Places))

	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"#", "Name", "Place ID", "Address"})
	for i, place := range resp.Places {
		id := place.ID
		if id == "" {
			id = unknownID
		}
		address := place.FormattedAddress
		if address == "" {
			address = noAddress
		}
		t.AppendRow(table.Row{i + 1, place.Name(), id, address})
	}
	t.Render()
}

// DisplayReviews prints the place header and each review.
func DisplayReviews(w io.Writer, place *Place) {
	id := place.ID
	if id == "" {
		id = unknownID
	}

	fmt.Fprintf(w, "\n%s\n", strings.Repeat("=", 60))
	fmt.Fprintf(w, "Place: %s\n", place.Name())
	fmt.Fprintf(w, "Place ID: %s\n", id)
	fmt.Fprintf(w, "%s\n", strings.Repeat("=", 60))

	if len(place.Reviews) == 0 {
		fmt.Fprintln(w, "No reviews found for this place.")
		return
	}

	fmt.Fprintf(w, "\nFound %d review(s):\n\n", len(place.Reviews))
	for i, review := range place.Reviews {
		author := review.AuthorAttribution.DisplayName
		if author == "" {
			author = "Anonymous"
		}
		rating := "N/A"
		if review.Rating > 0 {
			rating = fmt.Sprintf("%g/5", review.Rating)
		}
		text := review.Text.Text
		if text == "" {
			text = "No text provided"
		}
		publishTime := review.PublishTime
		if publishTime == "" {
			publishTime = "Unknown date"
		}

		fmt.Fprintf(w, "Review #%d\n", i+1)
		fmt.Fprintf(w, "Author: %s\n", author)
		fmt.Fprintf(w, "Rating: %s\n", rating)
		fmt.Fprintf(w, "Date: %s\n", publishTime)
		fmt.Fprintf(w, "Text: %s\n", text)
		fmt.Fprintf(w, "%s\n", strings.Repeat("-", 40))
	}
}
