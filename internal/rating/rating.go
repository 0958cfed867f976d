package rating

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	"github.com/five82/reel/internal/keyed"
)

// ErrNoAPIKey is returned by NewClient when no credential was configured.
var ErrNoAPIKey = errors.New("rating api key is not configured")

// Score is one top-level field of the rating response.
type Score struct {
	ID    string          `json:"id"`
	Score json.RawMessage `json:"score"`
}

// Result holds both the flattened fields and the raw response. Status is the
// HTTP status; error bodies are kept and logged like any other.
type Result struct {
	Status int
	Scores []Score
	Raw    json.RawMessage
}

// Client calls the rating endpoint with an api_key query parameter.
type Client struct {
	endpoint *url.URL
	apiKey   string
	http     *http.Client
}

// NewClient builds a Client. The key must come from configuration.
func NewClient(rawURL, apiKey string, httpClient *http.Client) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrNoAPIKey
	}
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return nil, fmt.Errorf("parse rating url %q: %w", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("rating url %q must be http or https", rawURL)
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{endpoint: u, apiKey: strings.TrimSpace(apiKey), http: httpClient}, nil
}

// Fetch performs the GET and flattens the response object in document order.
func (c *Client) Fetch(ctx context.Context) (Result, error) {
	u := *c.endpoint
	q := u.Query()
	q.Set("api_key", c.apiKey)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return Result{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("execute request: %w", redact(err, c.apiKey))
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("read response: %w", err)
	}

	entries, err := keyed.Decode[json.RawMessage](bytes.NewReader(raw))
	if err != nil {
		if resp.StatusCode >= 400 {
			return Result{}, fmt.Errorf("rating api returned status %d", resp.StatusCode)
		}
		return Result{}, fmt.Errorf("decode response: %w", err)
	}
	scores := make([]Score, 0, len(entries))
	for _, entry := range entries {
		scores = append(scores, Score{ID: entry.Key, Score: entry.Value})
	}
	return Result{Status: resp.StatusCode, Scores: scores, Raw: json.RawMessage(raw)}, nil
}

// Log writes the result the way the startup fetch reports it.
func (r Result) Log(logger zerolog.Logger) {
	if r.Status >= 400 {
		logger.Warn().Int("status", r.Status).Msg("rating api returned error status")
	}
	scores, _ := json.Marshal(r.Scores)
	logger.Info().RawJSON("scores", scores).Int("fields", len(r.Scores)).Msg("rating fields")
	logger.Info().RawJSON("response", r.Raw).Msg("rating response")
}

// redact keeps the credential out of error text, which ends up in logs.
func redact(err error, key string) error {
	msg := err.Error()
	if !strings.Contains(msg, key) {
		return err
	}
	return errors.New(strings.ReplaceAll(msg, key, "REDACTED"))
}
