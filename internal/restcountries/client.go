package restcountries

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const DefaultBaseURL = "https://restcountries.com/v3.1"

// ErrNotFound covers both a 404 and an empty result set. Callers treat
// it as "no external data for this country" and degrade, never abort.
var ErrNotFound = errors.New("restcountries: country not found")

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// ByCode looks a country up by its ISO3 (alpha) code.
func (c *Client) ByCode(ctx context.Context, code string) (*Country, error) {
	return c.lookup(ctx, "/alpha/"+url.PathEscape(code))
}

// ByName looks a country up by common name. Kept alongside ByCode; which
// one the server uses is configuration.
func (c *Client) ByName(ctx context.Context, name string) (*Country, error) {
	return c.lookup(ctx, "/name/"+url.PathEscape(name))
}

func (c *Client) lookup(ctx context.Context, path string) (*Country, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("restcountries: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("restcountries: unexpected status %d", resp.StatusCode)
	}

	// The service answers with an array even for exact-code lookups.
	var docs []Country
	if err := json.NewDecoder(resp.Body).Decode(&docs); err != nil {
		return nil, fmt.Errorf("restcountries: decode: %w", err)
	}
	if len(docs) == 0 {
		return nil, ErrNotFound
	}
	return &docs[0], nil
}
