package catalogue

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DefaultBaseURL matches the local development backend.
const DefaultBaseURL = "http://localhost:8081"

// Client fetches catalogue listings over HTTP.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient builds a client for the given base URL; empty falls back to the
// configured `api` value, then the local default.
func NewClient(base string) *Client {
	if base == "" {
		base = viper.GetString("api")
	}
	if base == "" {
		base = DefaultBaseURL
	}
	return &Client{
		BaseURL:    strings.TrimRight(base, "/"),
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Hotels fetches the full hotel list.
func (c *Client) Hotels(ctx context.Context) ([]Hotel, error) {
	var out []Hotel
	if err := c.get(ctx, "/hotels/all", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Activities fetches the full activity list.
func (c *Client) Activities(ctx context.Context) ([]Activity, error) {
	var out []Activity
	if err := c.get(ctx, "/activities/all", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Places fetches the full place list.
func (c *Client) Places(ctx context.Context) ([]Place, error) {
	var out []Place
	if err := c.get(ctx, "/places/all", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return fmt.Errorf("catalogue: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("catalogue: fetch %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("catalogue: fetch %s: unexpected status %s", path, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("catalogue: decode %s: %w", path, err)
	}
	return nil
}
