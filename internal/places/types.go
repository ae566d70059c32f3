package places

import "encoding/json"

// LocalizedText mirrors the API's localized string objects.
type LocalizedText struct {
	Text         string `json:"text"`
	LanguageCode string `json:"languageCode"`
}

// AuthorAttribution identifies the author of a review.
type AuthorAttribution struct {
	DisplayName string `json:"displayName"`
	URI         string `json:"uri"`
	PhotoURI    string `json:"photoUri"`
}

// Review is a single user review attached to a place.
type Review struct {
	AuthorAttribution AuthorAttribution `json:"authorAttribution"`
	Rating            float64           `json:"rating"`
	Text              LocalizedText     `json:"text"`
	PublishTime       string            `json:"publishTime"`
}

// Place is a search hit or a place-details snapshot. Fields beyond the
// requested field mask are absent; Raw keeps the untouched response body for
// --save dumps.
type Place struct {
	ID               string        `json:"id"`
	DisplayName      LocalizedText `json:"displayName"`
	FormattedAddress string        `json:"formattedAddress"`
	Reviews          []Review      `json:"reviews"`

	Raw json.RawMessage `json:"-"`
}

// SearchResponse is the text-search result list.
type SearchResponse struct {
	Places []Place `json:"places"`

	Raw json.RawMessage `json:"-"`
}
