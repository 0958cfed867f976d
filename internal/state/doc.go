// Package state holds the view state of the movie pane and derives what it
// should display.
//
// # Overview
//
// View carries three pieces of state: the last loaded movie list, a loading
// flag and an optional error message. Content is a pure function over them:
//
//	Loading            -> ContentLoading  ("Loading...")
//	ErrorMessage != "" -> ContentError    (the message)
//	len(Movies) > 0    -> ContentList
//	otherwise          -> ContentEmpty    ("Found no movies.")
//
// Nothing about the previous display is stored; every render recomputes it.
//
// # Overlapping Fetches
//
// The operator may trigger a fetch while another is still running.
// BeginFetch hands out increasing sequence numbers and counts in-flight
// requests; FinishFetch keeps Loading true until the count drops to zero and
// ignores results from a request issued before one that has already been
// applied. The loading indicator therefore brackets every attempt and the
// final list always reflects the latest request.
//
// # Concurrency Model
//
// View is not safe for concurrent use. It lives inside the Bubble Tea model
// and is only mutated from the update loop; HTTP work happens in commands
// that report back through messages.
package state
