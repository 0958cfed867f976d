package ui

import (
	"strings"

	"github.com/five82/reel/internal/movies"
	"github.com/five82/reel/internal/state"
)

// renderMovieList draws the movie cards separated by blank lines.
func renderMovieList(list []movies.Movie, styles Styles, width int, compact bool) string {
	sep := "\n\n"
	if compact {
		sep = "\n"
	}
	return strings.Join(movieItems(list, styles, width, compact), sep)
}

// movieItems renders one block per movie. The first line of every block is
// the title.
func movieItems(list []movies.Movie, styles Styles, width int, compact bool) []string {
	items := make([]string, 0, len(list))
	for _, movie := range list {
		items = append(items, renderMovie(movie, styles, width, compact))
	}
	return items
}

func renderMovie(movie movies.Movie, styles Styles, width int, compact bool) string {
	title := styles.MovieTitle.Render(movie.Title)
	if compact {
		if movie.ReleaseDate == "" {
			return title
		}
		return title + "  " + styles.MovieDate.Render(movie.ReleaseDate)
	}

	lines := []string{title}
	if movie.ReleaseDate != "" {
		lines = append(lines, styles.MovieDate.Render(movie.ReleaseDate))
	}
	if text := strings.TrimSpace(movie.OpeningText); text != "" {
		if width > 0 {
			lines = append(lines, styles.Text.Width(width).Render(text))
		} else {
			lines = append(lines, styles.Text.Render(text))
		}
	}
	return strings.Join(lines, "\n")
}

// renderMessage draws the body for the loading, error and empty states.
func renderMessage(v state.View, styles Styles) string {
	switch v.Content() {
	case state.ContentError:
		return styles.DangerText.Render(v.Message())
	case state.ContentLoading:
		return styles.WarningText.Render(v.Message())
	default:
		return styles.MutedText.Render(v.Message())
	}
}

// ContentText renders the movie pane without styling, for headless output.
func ContentText(v state.View) string {
	if v.Content() == state.ContentList {
		return renderMovieList(v.Movies, Styles{}, 0, false)
	}
	return v.Message()
}
