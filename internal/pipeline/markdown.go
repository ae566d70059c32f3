package pipeline

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/jonathan/seo-toolkit/internal/files"
)

// Filenames written under the per-domain directory.
const (
	resultFile   = "result.json"
	markdownFile = "content.md"
)

// IsMarkdown reports whether content looks like markdown: the stripped text
// starts with "#" or the text contains "##" anywhere.
func IsMarkdown(content string) bool {
	return strings.HasPrefix(strings.TrimSpace(content), "#") || strings.Contains(content, "##")
}

// SaveResults writes the raw snapshot and, when the heuristic accepts it, the
// markdown output under baseDir/<domain>/. Per-file failures are reported to
// w and do not abort the remaining writes.
func SaveResults(w io.Writer, baseDir, url string, run *Run) {
	dir, err := files.EnsureDir(baseDir, files.DomainDir(url))
	if err != nil {
		fmt.Fprintf(w, "Error creating output directory: %v\n", err)
		return
	}

	jsonPath := filepath.Join(dir, resultFile)
	if err := files.WriteJSON(jsonPath, run.Raw); err != nil {
		fmt.Fprintf(w, "Error saving JSON file: %v\n", err)
	} else {
		fmt.Fprintf(w, "JSON results saved to: %s\n", jsonPath)
	}

	markdown, ok := run.MarkdownOutput()
	if !ok {
		fmt.Fprintln(w, "Warning: no markdown content found to save")
		return
	}
	mdPath := filepath.Join(dir, markdownFile)
	if err := files.WriteText(mdPath, markdown); err != nil {
		fmt.Fprintf(w, "Error saving markdown file: %v\n", err)
	} else {
		fmt.Fprintf(w, "Markdown content saved to: %s\n", mdPath)
	}
}

// SaveMarkdown writes the run's markdown output for the save subcommand and
// returns the file path, or "" when the output is not markdown. With a URL
// the file lands in the per-domain directory; otherwise it is <run-id>.md in
// the base directory.
func SaveMarkdown(w io.Writer, baseDir, runID, url string, run *Run) (string, error) {
	markdown, ok := run.MarkdownOutput()
	if !ok {
		fmt.Fprintln(w, "No markdown content found in outputs")
		return "", nil
	}

	var path string
	if url != "" {
		dir, err := files.EnsureDir(baseDir, files.DomainDir(url))
		if err != nil {
			return "", err
		}
		path = filepath.Join(dir, markdownFile)
	} else {
		path = filepath.Join(baseDir, runID+".md")
	}

	if err := files.WriteText(path, markdown); err != nil {
		return "", err
	}
	fmt.Fprintf(w, "Markdown report saved to: %s\n", path)
	return path, nil
}
