package rating

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_RequiresKey(t *testing.T) {
	_, err := NewClient("https://api.themoviedb.org/3/movie/550", " ", nil)
	assert.True(t, errors.Is(err, ErrNoAPIKey))

	_, err = NewClient("not a url", "k", nil)
	assert.Error(t, err)
}

func TestClient_FetchFlattensFieldsInOrder(t *testing.T) {
	t.Parallel()

	var gotKey, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("api_key")
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":550,"title":"Fight Club","vote_average":8.4}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL+"/3/movie/550", "secret", server.Client())
	require.NoError(t, err)

	res, err := c.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.Status)
	assert.Equal(t, "secret", gotKey)
	assert.Equal(t, "/3/movie/550", gotPath)

	require.Len(t, res.Scores, 3)
	assert.Equal(t, "id", res.Scores[0].ID)
	assert.Equal(t, "550", string(res.Scores[0].Score))
	assert.Equal(t, "title", res.Scores[1].ID)
	assert.Equal(t, `"Fight Club"`, string(res.Scores[1].Score))
	assert.Equal(t, "vote_average", res.Scores[2].ID)
	assert.JSONEq(t, `{"id":550,"title":"Fight Club","vote_average":8.4}`, string(res.Raw))
}

func TestClient_FetchErrorStatusKeepsBody(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"status_code":7,"status_message":"Invalid API key","success":false}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, "bad", nil)
	require.NoError(t, err)

	res, err := c.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, res.Status)
	require.Len(t, res.Scores, 3)
	assert.Equal(t, "status_message", res.Scores[1].ID)
	assert.Equal(t, `"Invalid API key"`, string(res.Scores[1].Score))

	var buf bytes.Buffer
	res.Log(zerolog.New(&buf))
	out := buf.String()
	assert.Contains(t, out, `"status":401`)
	assert.Contains(t, out, `"status_message":"Invalid API key"`)
}

func TestClient_FetchErrorStatusWithoutJSON(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, "k", nil)
	require.NoError(t, err)

	_, err = c.Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

func TestClient_TransportErrorRedactsKey(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	c, err := NewClient(url, "topsecretkey", nil)
	require.NoError(t, err)

	_, err = c.Fetch(context.Background())
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "topsecretkey")
	assert.Contains(t, err.Error(), "REDACTED")
}

func TestResult_Log(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	Result{
		Scores: []Score{{ID: "id", Score: []byte("550")}},
		Raw:    []byte(`{"id":550}`),
	}.Log(logger)

	out := buf.String()
	assert.Contains(t, out, `"scores":[{"id":"id","score":550}]`)
	assert.Contains(t, out, `"response":{"id":550}`)
	assert.NotContains(t, out, "error status")
}
