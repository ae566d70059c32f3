package scrape

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/jonathan/seo-toolkit/internal/files"
)

// SaveScreenshot writes a screenshot payload to path. The payload is either
// a URL to download from or inline base64 data, optionally carrying a
// data:image prefix.
func (c *Client) SaveScreenshot(ctx context.Context, payload, path string) error {
	if strings.HasPrefix(payload, "http://") || strings.HasPrefix(payload, "https://") {
		res, err := c.download.R().SetContext(ctx).Get(payload)
		if err != nil {
			return fmt.Errorf("failed to download screenshot: %w", err)
		}
		if res.IsError() {
			return &APIError{StatusCode: res.StatusCode(), Body: res.String()}
		}
		return files.WriteBinary(path, res.Body())
	}

	if strings.HasPrefix(payload, "data:image") {
		_, after, found := strings.Cut(payload, ",")
		if !found {
			return fmt.Errorf("malformed data URL in screenshot payload")
		}
		payload = after
	}

	imageData, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return fmt.Errorf("failed to decode screenshot base64: %w", err)
	}
	return files.WriteBinary(path, imageData)
}
