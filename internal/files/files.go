// Package files provides the on-disk layout for saved API results: sanitized
// per-URL and per-domain directory names under a base output directory, plus
// small write helpers for JSON, text, and binary payloads.
package files

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// URLDir maps a URL to a single flat directory name with the scheme stripped
// and every path separator or host punctuation replaced by underscores.
// "https://www.example.com/path" -> "www_example_com_path".
func URLDir(rawURL string) string {
	s := strings.TrimPrefix(rawURL, "https://")
	s = strings.TrimPrefix(s, "http://")
	replacer := strings.NewReplacer("/", "_", ".", "_", ":", "_")
	return replacer.Replace(s)
}

// DomainDir maps a URL to a directory name derived from its host only:
// "https://www.example-site.com/path" -> "example_site_com". An unparseable
// URL falls back to sanitizing the raw string.
func DomainDir(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return URLDir(rawURL)
	}
	domain := strings.TrimPrefix(parsed.Host, "www.")
	replacer := strings.NewReplacer(".", "_", "-", "_")
	return replacer.Replace(domain)
}

// Sanitize makes a query or display-name fragment safe for use inside a
// filename by replacing spaces with underscores and dropping commas.
func Sanitize(fragment string) string {
	s := strings.ReplaceAll(fragment, " ", "_")
	return strings.ReplaceAll(s, ",", "")
}

// EnsureDir creates dir (and parents) and returns its path.
func EnsureDir(baseDir, name string) (string, error) {
	dir := filepath.Join(baseDir, name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	return dir, nil
}

// WriteJSON writes v to path as two-space-indented JSON.
func WriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// WriteText writes content to path verbatim.
func WriteText(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// WriteBinary writes raw bytes to path.
func WriteBinary(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
