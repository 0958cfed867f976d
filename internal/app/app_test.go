package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/reel/internal/config"
	"github.com/five82/reel/internal/fakestore"
	"github.com/five82/reel/internal/movies"
)

type fixture struct {
	opts    Options
	store   *fakestore.Store
	logFile string
}

func newFixture(t *testing.T, extra string) fixture {
	t.Helper()
	t.Setenv(config.EnvCollectionURL, "")
	t.Setenv(config.EnvRatingURL, "")
	t.Setenv(config.EnvRatingAPIKey, "")

	store := fakestore.New()
	server := httptest.NewServer(store)
	t.Cleanup(server.Close)

	dir := t.TempDir()
	logFile := filepath.Join(dir, "reel.log")
	body := fmt.Sprintf("collection_url = %q\nlog_file = %q\nlog_level = \"debug\"\n%s",
		server.URL+fakestore.Path, logFile, extra)
	cfgPath := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(body), 0o644))

	return fixture{
		opts: Options{
			ConfigPath: cfgPath,
			PrefsPath:  filepath.Join(dir, "prefs.toml"),
			EnvFiles:   []string{filepath.Join(dir, "missing.env")},
		},
		store:   store,
		logFile: logFile,
	}
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestList_PrintsMoviesInKeyOrder(t *testing.T) {
	f := newFixture(t, "")
	f.store.Seed("-N2", map[string]string{"title": "Heat", "releaseDate": "1995-12-15"})
	f.store.Seed("-N1", map[string]string{"title": "Alien", "openingText": "In space"})

	var out bytes.Buffer
	require.NoError(t, List(context.Background(), f.opts, &out))

	assert.Equal(t, "Heat\n1995-12-15\n\nAlien\nIn space\n", out.String())
	assert.Contains(t, readLog(t, f.logFile), "rating fetch skipped")
}

func TestList_EmptyCollection(t *testing.T) {
	f := newFixture(t, "")

	var out bytes.Buffer
	require.NoError(t, List(context.Background(), f.opts, &out))
	assert.Equal(t, "Found no movies.\n", out.String())
}

func TestList_FailureIsPrintedNotReturned(t *testing.T) {
	f := newFixture(t, "")
	f.store.FailWith(http.StatusServiceUnavailable)

	var out bytes.Buffer
	require.NoError(t, List(context.Background(), f.opts, &out))
	assert.Equal(t, "Something went wrong!\n", out.String())
	assert.Contains(t, readLog(t, f.logFile), "fetch movies failed")
}

func TestList_FetchesRatingWithConfiguredKey(t *testing.T) {
	var gotKey string
	ratingServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("api_key")
		_, _ = w.Write([]byte(`{"id":550,"title":"Fight Club","vote_average":8.4}`))
	}))
	t.Cleanup(ratingServer.Close)

	f := newFixture(t, fmt.Sprintf("rating_url = %q\nrating_api_key = \"secret\"\n", ratingServer.URL))

	var out bytes.Buffer
	require.NoError(t, List(context.Background(), f.opts, &out))

	assert.Equal(t, "secret", gotKey)
	logged := readLog(t, f.logFile)
	assert.Contains(t, logged, "rating response")
	assert.Contains(t, logged, "vote_average")
}

func TestList_RatingKeyFromEnvironment(t *testing.T) {
	var gotKey string
	ratingServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("api_key")
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(ratingServer.Close)

	f := newFixture(t, fmt.Sprintf("rating_url = %q\n", ratingServer.URL))
	t.Setenv(config.EnvRatingAPIKey, "from-env")

	var out bytes.Buffer
	require.NoError(t, List(context.Background(), f.opts, &out))
	assert.Equal(t, "from-env", gotKey)
}

func TestList_FailedFetchCancelsRating(t *testing.T) {
	release := make(chan struct{})
	ratingServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-release:
			_, _ = w.Write([]byte(`{"late":true}`))
		}
	}))
	t.Cleanup(ratingServer.Close)
	t.Cleanup(func() { close(release) })

	f := newFixture(t, fmt.Sprintf("rating_url = %q\nrating_api_key = \"k\"\n", ratingServer.URL))
	f.store.FailWith(http.StatusInternalServerError)

	done := make(chan error, 1)
	var out bytes.Buffer
	go func() { done <- List(context.Background(), f.opts, &out) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("List did not return after the movie fetch failed")
	}

	assert.Equal(t, "Something went wrong!\n", out.String())
	logged := readLog(t, f.logFile)
	assert.Contains(t, logged, "rating fetch failed")
	assert.Contains(t, logged, "context canceled")
	assert.NotContains(t, logged, "rating response")
}

func TestAdd_PostsAndPrintsResponse(t *testing.T) {
	f := newFixture(t, "")

	var out bytes.Buffer
	movie := movies.NewMovie{Title: "A", OpeningText: "B", ReleaseDate: "2020-01-01"}
	require.NoError(t, Add(context.Background(), f.opts, movie, &out))

	posts := f.store.Posts()
	require.Len(t, posts, 1)
	assert.JSONEq(t, `{"title":"A","openingText":"B","releaseDate":"2020-01-01"}`, string(posts[0]))

	var resp movies.AddResponse
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(out.Bytes()), &resp))
	assert.True(t, strings.HasPrefix(resp.Name, "-"), "name = %q", resp.Name)
	assert.Contains(t, readLog(t, f.logFile), "movie added")
}

func TestAdd_FailureIsReturned(t *testing.T) {
	f := newFixture(t, "")
	f.store.FailWith(http.StatusInternalServerError)

	var out bytes.Buffer
	err := Add(context.Background(), f.opts, movies.NewMovie{Title: "A"}, &out)
	require.Error(t, err)
	assert.ErrorIs(t, err, movies.ErrSomethingWentWrong)
	assert.Empty(t, out.String())
}

func TestSetup_LogLevelOverride(t *testing.T) {
	f := newFixture(t, "")

	f.opts.LogLevel = "loud"
	_, err := setup(f.opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log_level")

	f.opts.LogLevel = "error"
	d, err := setup(f.opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })
	assert.Equal(t, "error", d.cfg.LogLevel)
	assert.Nil(t, d.rating)
}

func TestSetup_BadConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("collection_url = \"ftp://nope\"\n"+
		fmt.Sprintf("log_file = %q\n", filepath.Join(dir, "reel.log"))), 0o644))
	t.Setenv(config.EnvCollectionURL, "")

	_, err := setup(Options{ConfigPath: cfgPath, EnvFiles: []string{filepath.Join(dir, "none.env")}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "init movie client")
}
