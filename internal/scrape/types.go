package scrape

import "encoding/json"

// DefaultMaxAge is the default cache max-age in milliseconds (48 hours).
const DefaultMaxAge = 172800000

// DefaultWaitFor is the default page-load wait in seconds.
const DefaultWaitFor = 5

// Options selects what the scrape extracts and how.
type Options struct {
	Markdown        bool
	Screenshot      bool
	OnlyMainContent bool
	MaxAge          int `validate:"gte=0"`
	WaitFor         int `validate:"gte=0"`
}

// DefaultOptions requests both markdown and a full-page screenshot.
func DefaultOptions() Options {
	return Options{
		Markdown:   true,
		Screenshot: true,
		MaxAge:     DefaultMaxAge,
		WaitFor:    DefaultWaitFor,
	}
}

// Formats builds the request's formats list: the literal string "markdown"
// and/or a screenshot object.
func (o Options) Formats() []any {
	formats := []any{}
	if o.Markdown {
		formats = append(formats, "markdown")
	}
	if o.Screenshot {
		formats = append(formats, map[string]any{
			"type":     "screenshot",
			"fullPage": true,
		})
	}
	return formats
}

// FormatNames lists the requested formats for display.
func (o Options) FormatNames() []string {
	names := []string{}
	if o.Markdown {
		names = append(names, "markdown")
	}
	if o.Screenshot {
		names = append(names, "screenshot")
	}
	return names
}

// Metadata is the page metadata block of a scrape response.
type Metadata struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Language    string `json:"language"`
}

// Data is the extracted content of a successful scrape.
type Data struct {
	URL        string   `json:"url"`
	Markdown   string   `json:"markdown"`
	Screenshot string   `json:"screenshot"`
	Metadata   Metadata `json:"metadata"`
}

// Response is the scrape API's response envelope. Success false signals a
// failed scrape with Error populated; the HTTP status is still 2xx.
type Response struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Data    Data   `json:"data"`

	Raw json.RawMessage `json:"-"`
}
