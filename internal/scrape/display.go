package scrape

import (
	"fmt"
	"io"
	"strings"
)

// previewLength caps how much markdown is echoed to the terminal.
const previewLength = 500

// DisplayResults prints a summary of the scrape: markdown preview,
// screenshot availability, and page metadata.
func DisplayResults(w io.Writer, resp *Response) {
	if !resp.Success {
		fmt.Fprintln(w, "Scraping failed")
		errMsg := resp.Error
		if errMsg == "" {
			errMsg = "Unknown error"
		}
		fmt.Fprintf(w, "Error: %s\n", errMsg)
		return
	}

	url := resp.Data.URL
	if url == "" {
		url = "Unknown URL"
	}

	fmt.Fprintf(w, "\n%s\n", strings.Repeat("=", 80))
	fmt.Fprintf(w, "Scraping Results for: %s\n", url)
	fmt.Fprintf(w, "%s\n", strings.Repeat("=", 80))

	if markdown := resp.Data.Markdown; markdown != "" {
		fmt.Fprintf(w, "\nMarkdown Content (%d characters):\n", len(markdown))
		fmt.Fprintf(w, "%s\n", strings.Repeat("-", 60))
		if len(markdown) > previewLength {
			fmt.Fprintf(w, "%s\n", markdown[:previewLength])
			fmt.Fprintf(w, "\n... (%d more characters)\n", len(markdown)-previewLength)
		} else {
			fmt.Fprintf(w, "%s\n", markdown)
		}
		fmt.Fprintf(w, "%s\n", strings.Repeat("-", 60))
	}

	if screenshot := resp.Data.Screenshot; screenshot != "" {
		fmt.Fprintf(w, "\nScreenshot: Available (%d characters of payload)\n", len(screenshot))
	}

	meta := resp.Data.Metadata
	if meta != (Metadata{}) {
		fmt.Fprintln(w, "\nMetadata:")
		fmt.Fprintf(w, "  Title: %s\n", orNA(meta.Title))
		fmt.Fprintf(w, "  Description: %s\n", orNA(meta.Description))
		fmt.Fprintf(w, "  Language: %s\n", orNA(meta.Language))
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
