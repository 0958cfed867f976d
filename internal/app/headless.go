package app

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/five82/reel/internal/movies"
	"github.com/five82/reel/internal/state"
	"github.com/five82/reel/internal/ui"
)

// List runs the startup fetches once and writes the movie pane to out as
// plain text. A failed fetch is part of the output, not an error.
func List(ctx context.Context, opts Options, out io.Writer) error {
	d, err := setup(opts)
	if err != nil {
		return err
	}
	defer func() { _ = d.Close() }()

	var view state.View
	seq := view.BeginFetch()

	var list []movies.Movie
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		list, err = d.movies.Fetch(gctx)
		return err
	})
	g.Go(func() error {
		d.fetchRating(gctx)
		return nil
	})
	// A failed list fetch cancels the rating request; its error is shown as
	// the pane text below rather than returned.
	fetchErr := g.Wait()
	if fetchErr != nil {
		d.logger.Warn().Err(fetchErr).Msg("fetch movies failed")
	}
	view.FinishFetch(seq, list, fetchErr)

	if _, err := fmt.Fprintln(out, ui.ContentText(view)); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// Add posts one movie and writes the store's JSON answer to out.
func Add(ctx context.Context, opts Options, movie movies.NewMovie, out io.Writer) error {
	d, err := setup(opts)
	if err != nil {
		return err
	}
	defer func() { _ = d.Close() }()

	resp, err := d.movies.Add(ctx, movie)
	if err != nil {
		d.logger.Warn().Err(err).Str("title", movie.Title).Msg("add movie failed")
		return fmt.Errorf("add movie: %w", err)
	}
	d.logger.Info().Str("title", movie.Title).RawJSON("response", resp).Msg("movie added")

	if _, err := fmt.Fprintln(out, string(resp)); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func (d *deps) fetchRating(ctx context.Context) {
	if d.rating == nil {
		d.logger.Warn().Msg("rating fetch skipped: no api key configured")
		return
	}
	result, err := d.rating.Fetch(ctx)
	if err != nil {
		d.logger.Warn().Err(err).Msg("rating fetch failed")
		return
	}
	result.Log(d.logger)
}
