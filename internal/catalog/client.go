package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"tftlookup/internal/domain"
)

// Client fetches the item catalogue from the remote API
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient creates a client for url with the given request timeout
func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) URL() string {
	return c.url
}

// Fetch performs one unauthenticated GET and decodes the JSON item array
func (c *Client) Fetch(ctx context.Context) ([]domain.Item, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch items: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("failed to fetch items: unexpected status %s", resp.Status)
	}

	return decodeItems(resp.Body)
}

// LoadFile reads the same JSON document from a local file
func LoadFile(path string) ([]domain.Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open items file: %w", err)
	}
	defer f.Close()

	return decodeItems(f)
}

func decodeItems(r io.Reader) ([]domain.Item, error) {
	var items []domain.Item
	if err := json.NewDecoder(r).Decode(&items); err != nil {
		return nil, fmt.Errorf("failed to decode items: %w", err)
	}
	return items, nil
}
