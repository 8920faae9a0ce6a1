package utils

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// IsRemote reports whether location is an http(s) URL
func IsRemote(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

// OpenLocation opens a local file or fetches an http(s) URL. Non-200
// responses are errors.
func OpenLocation(ctx context.Context, client *http.Client, location string) (io.ReadCloser, error) {
	if !IsRemote(location) {
		return os.Open(location)
	}
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return resp.Body, nil
}
