package scrape

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveScreenshot_FromURL(t *testing.T) {
	pngBytes := []byte{0x89, 'P', 'N', 'G'}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(pngBytes)
	}))
	defer server.Close()

	client := NewClient("test-key")
	path := filepath.Join(t.TempDir(), "content.png")
	require.NoError(t, client.SaveScreenshot(context.Background(), server.URL, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, pngBytes, data)
}

func TestSaveScreenshot_FromBase64(t *testing.T) {
	raw := []byte{1, 2, 3, 4}
	payload := base64.StdEncoding.EncodeToString(raw)

	client := NewClient("test-key")
	path := filepath.Join(t.TempDir(), "content.png")
	require.NoError(t, client.SaveScreenshot(context.Background(), payload, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, raw, data)
}

func TestSaveScreenshot_DataURLPrefix(t *testing.T) {
	raw := []byte{1, 2, 3, 4}
	payload := "data:image/png;base64," + base64.StdEncoding.EncodeToString(raw)

	client := NewClient("test-key")
	path := filepath.Join(t.TempDir(), "content.png")
	require.NoError(t, client.SaveScreenshot(context.Background(), payload, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, raw, data)
}

func TestSaveScreenshot_BadBase64(t *testing.T) {
	client := NewClient("test-key")
	path := filepath.Join(t.TempDir(), "content.png")
	err := client.SaveScreenshot(context.Background(), "!!!not-base64!!!", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base64")
	assert.NoFileExists(t, path)
}
