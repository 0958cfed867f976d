package movies

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	"github.com/five82/reel/internal/keyed"
)

// Collection defines the operations the UI needs from the movie store.
// It is implemented by *Client and can be faked in tests.
type Collection interface {
	Fetch(ctx context.Context) ([]Movie, error)
	Add(ctx context.Context, movie NewMovie) (json.RawMessage, error)
}

// Ensure Client implements Collection at compile time.
var _ Collection = (*Client)(nil)

// Client talks to a JSON document collection endpoint.
type Client struct {
	endpoint  *url.URL
	http      *http.Client
	userAgent string
	logger    zerolog.Logger
}

const (
	defaultUserAgent = "reel/0.1"
	maxErrorBody     = 512
)

// NewClient builds a Client for the collection at rawURL.
func NewClient(rawURL string, opts ...Option) (*Client, error) {
	endpoint, err := parseEndpoint(rawURL)
	if err != nil {
		return nil, err
	}
	c := &Client{
		endpoint:  endpoint,
		http:      &http.Client{},
		userAgent: defaultUserAgent,
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Endpoint returns the collection URL.
func (c *Client) Endpoint() string {
	return c.endpoint.String()
}

// Fetch lists the collection. Records come back in the order the store
// returned their keys.
func (c *Client) Fetch(ctx context.Context) ([]Movie, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	resp, err := c.do(ctx, http.MethodGet, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkStatus(http.MethodGet, resp); err != nil {
		return nil, err
	}

	entries, err := keyed.Decode[*document](resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	loaded := make([]Movie, 0, len(entries))
	for _, entry := range entries {
		if entry.Value == nil {
			return nil, fmt.Errorf("decode response: record %q is null", entry.Key)
		}
		loaded = append(loaded, Movie{
			ID:          entry.Key,
			Title:       entry.Value.Title,
			OpeningText: entry.Value.OpeningText,
			ReleaseDate: entry.Value.ReleaseDate,
		})
	}
	c.logger.Debug().Int("count", len(loaded)).Msg("fetched movies")
	return loaded, nil
}

// Add posts movie to the collection and returns the store's JSON answer.
func (c *Client) Add(ctx context.Context, movie NewMovie) (json.RawMessage, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	body, err := json.Marshal(movie)
	if err != nil {
		return nil, fmt.Errorf("encode movie: %w", err)
	}
	resp, err := c.do(ctx, http.MethodPost, body)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkStatus(http.MethodPost, resp); err != nil {
		return nil, err
	}

	var payload json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return payload, nil
}

// do issues the request. Transport failures are returned unwrapped so their
// message reaches the user as-is.
func (c *Client) do(ctx context.Context, method string, body []byte) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.endpoint.String(), reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug().Str("method", method).Str("url", c.endpoint.String()).Msg("collection request")
	return c.http.Do(req)
}

func checkStatus(method string, resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &APIError{
		Method:     method,
		StatusCode: resp.StatusCode,
		Body:       strings.TrimSpace(string(snippet)),
	}
}

func parseEndpoint(rawURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return nil, fmt.Errorf("collection url is empty")
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse collection url %q: %w", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("collection url %q must be http or https", rawURL)
	}
	u.Fragment = ""
	return u, nil
}
