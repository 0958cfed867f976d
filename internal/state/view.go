package state

import (
	"time"

	"github.com/five82/reel/internal/movies"
)

// Content identifies which of the mutually exclusive bodies the UI shows.
type Content int

const (
	ContentEmpty Content = iota
	ContentList
	ContentError
	ContentLoading
)

const (
	// LoadingText is shown while any fetch is in flight.
	LoadingText = "Loading..."
	// EmptyText is shown when the last successful fetch returned nothing.
	EmptyText = "Found no movies."
)

// String returns a short label for logs.
func (c Content) String() string {
	switch c {
	case ContentList:
		return "list"
	case ContentError:
		return "error"
	case ContentLoading:
		return "loading"
	default:
		return "empty"
	}
}

// View is the state that decides what the movie pane displays.
// It is a value type owned by a single goroutine (the Bubble Tea update loop).
type View struct {
	Movies       []movies.Movie
	Loading      bool
	ErrorMessage string // empty means no error
	LastUpdated  time.Time

	inFlight int
	issued   uint64
	applied  uint64
}

// BeginFetch marks a list fetch as started and clears the previous error.
// The returned sequence number must be passed back to FinishFetch.
func (v *View) BeginFetch() uint64 {
	v.issued++
	v.inFlight++
	v.Loading = true
	v.ErrorMessage = ""
	return v.issued
}

// FinishFetch records the outcome of the fetch identified by seq. Loading
// stays true while other fetches are outstanding. Results from a fetch that
// was issued before an already applied one are dropped so the latest request
// wins. On error the previous list is kept.
func (v *View) FinishFetch(seq uint64, list []movies.Movie, err error) {
	if v.inFlight > 0 {
		v.inFlight--
	}
	v.Loading = v.inFlight > 0

	if seq < v.applied {
		return
	}
	v.applied = seq
	v.LastUpdated = time.Now()

	if err != nil {
		// An empty message leaves the pane on the kept list or the empty text.
		v.ErrorMessage = err.Error()
		return
	}
	v.ErrorMessage = ""
	v.Movies = cloneMovies(list)
}

// InFlight reports how many fetches have not settled yet.
func (v View) InFlight() int {
	return v.inFlight
}

// Content derives the displayed body: loading beats error, error beats list,
// and an empty list falls through to ContentEmpty.
func (v View) Content() Content {
	switch {
	case v.Loading:
		return ContentLoading
	case v.ErrorMessage != "":
		return ContentError
	case len(v.Movies) > 0:
		return ContentList
	default:
		return ContentEmpty
	}
}

// Message returns the text for the non-list bodies, or "" for ContentList.
func (v View) Message() string {
	switch v.Content() {
	case ContentLoading:
		return LoadingText
	case ContentError:
		return v.ErrorMessage
	case ContentEmpty:
		return EmptyText
	default:
		return ""
	}
}

func cloneMovies(items []movies.Movie) []movies.Movie {
	if len(items) == 0 {
		return nil
	}
	dup := make([]movies.Movie, len(items))
	copy(dup, items)
	return dup
}
