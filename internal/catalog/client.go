package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/litescript/ls-atlas/internal/logging"
	"github.com/litescript/ls-atlas/internal/version"
)

const (
	// DefaultAPIURL is the public le-systeme-solaire bodies endpoint.
	DefaultAPIURL = "https://api.le-systeme-solaire.net/rest/bodies"

	// DefaultTimeout for HTTP requests.
	DefaultTimeout = 30 * time.Second
)

// Client fetches the body catalog.
type Client struct {
	client  *http.Client
	url     string
	timeout time.Duration
	logger  *logging.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithBaseURL sets a custom catalog endpoint.
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.url = url
	}
}

// WithTimeout sets the HTTP request timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		c.client = client
	}
}

// WithLogger sets the logger used for fetch failures.
func WithLogger(logger *logging.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a catalog client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		url:     DefaultAPIURL,
		timeout: DefaultTimeout,
		logger:  logging.Discard(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.client == nil {
		c.client = &http.Client{
			Timeout: c.timeout,
		}
	}

	return c
}

// FetchBodies retrieves the catalog. Any network, status, or parse failure is
// logged and swallowed, and an empty (non-nil) slice is returned: callers see
// "no data available", never an error.
func (c *Client) FetchBodies(ctx context.Context) []Body {
	bodies, err := c.fetch(ctx)
	if err != nil {
		c.logger.Error("catalog fetch failed: %v", err)
		return []Body{}
	}
	return bodies
}

func (c *Client) fetch(ctx context.Context) ([]Body, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", "ls-atlas/"+version.Version)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch bodies: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	var envelope bodiesResponse
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("parse bodies response: %w", err)
	}

	return envelope.Bodies, nil
}

// URL returns the configured catalog endpoint.
func (c *Client) URL() string {
	return c.url
}
