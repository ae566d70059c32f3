package scrape

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/jonathan/seo-toolkit/internal/files"
)

// Filenames written under the per-URL directory.
const (
	markdownFile   = "content.md"
	screenshotFile = "content.png"
	responseFile   = "response.json"
)

// SaveResults persists the scrape under baseDir/<sanitized-url>/: markdown
// and screenshot when they were requested and returned, and always the full
// JSON response. Per-file failures are reported to w and do not abort the
// remaining writes.
func (c *Client) SaveResults(ctx context.Context, w io.Writer, baseDir, rawURL string, opts Options, resp *Response) error {
	dir, err := files.EnsureDir(baseDir, files.URLDir(rawURL))
	if err != nil {
		return err
	}

	if opts.Markdown && resp.Data.Markdown != "" {
		path := filepath.Join(dir, markdownFile)
		if err := files.WriteText(path, resp.Data.Markdown); err != nil {
			fmt.Fprintf(w, "Error saving markdown: %v\n", err)
		} else {
			fmt.Fprintf(w, "Markdown saved to %s\n", path)
		}
	}

	if opts.Screenshot && resp.Data.Screenshot != "" {
		path := filepath.Join(dir, screenshotFile)
		if err := c.SaveScreenshot(ctx, resp.Data.Screenshot, path); err != nil {
			fmt.Fprintf(w, "Error saving screenshot: %v\n", err)
		} else {
			fmt.Fprintf(w, "Screenshot saved to %s\n", path)
		}
	}

	path := filepath.Join(dir, responseFile)
	if err := files.WriteJSON(path, resp.Raw); err != nil {
		fmt.Fprintf(w, "Error saving response JSON: %v\n", err)
	} else {
		fmt.Fprintf(w, "Full response saved to %s\n", path)
	}

	return nil
}
