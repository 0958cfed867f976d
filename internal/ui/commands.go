package ui

import (
	"context"
	"encoding/json"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/reel/internal/logtail"
	"github.com/five82/reel/internal/movies"
	"github.com/five82/reel/internal/rating"
)

// Messages

// mountMsg is delivered once when the program starts.
type mountMsg struct{}

type moviesFetchedMsg struct {
	seq    uint64
	movies []movies.Movie
	err    error
}

type movieAddedMsg struct {
	movie    movies.NewMovie
	response json.RawMessage
	err      error
}

type ratingFetchedMsg struct {
	result rating.Result
	err    error
}

type refreshTickMsg time.Time

type logLinesMsg struct {
	lines []string
	err   error
}

// Commands

func mountCmd() tea.Msg {
	return mountMsg{}
}

func fetchMoviesCmd(ctx context.Context, collection movies.Collection, seq uint64) tea.Cmd {
	return func() tea.Msg {
		list, err := collection.Fetch(ctx)
		return moviesFetchedMsg{seq: seq, movies: list, err: err}
	}
}

func addMovieCmd(ctx context.Context, collection movies.Collection, movie movies.NewMovie) tea.Cmd {
	return func() tea.Msg {
		resp, err := collection.Add(ctx, movie)
		return movieAddedMsg{movie: movie, response: resp, err: err}
	}
}

func fetchRatingCmd(ctx context.Context, fetcher RatingFetcher) tea.Cmd {
	return func() tea.Msg {
		result, err := fetcher.Fetch(ctx)
		return ratingFetchedMsg{result: result, err: err}
	}
}

func refreshTickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return refreshTickMsg(t)
	})
}

func readLogCmd(path string, maxLines int) tea.Cmd {
	return func() tea.Msg {
		lines, err := logtail.Tail(path, maxLines)
		return logLinesMsg{lines: lines, err: err}
	}
}
