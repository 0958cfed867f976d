// Package ui provides the reel terminal user interface.
//
// # Architecture Overview
//
// The UI is a single Bubble Tea program. Model owns all view state and is
// only touched from Update; HTTP calls run as tea.Cmd goroutines and report
// back as messages. The movie pane's state machine lives in state.View so it
// can be tested without a terminal.
//
// # Package Structure
//
//   - app.go: Model, Options, Init/Update/View, key routing and Run
//   - commands.go: message types and the commands that fetch, post and tail
//   - form.go: the add-movie form (title, opening text, release date)
//   - list.go: pure renderers for the movie list and the message bodies
//   - keys.go: key bindings and their help text
//   - help.go: the help overlay
//   - theme.go: colour themes and the lipgloss styles derived from them
//
// # Screen Layout
//
//	┌───────────────────────────────────────────┐
//	│ reel  <endpoint>  ⣾  updated 15:04:05     │ header
//	│ Title / Opening Text / Release Date       │ form
//	│ [f] Fetch Movies  [a] Add Movie  [m] MOVIE│ actions
//	│ list | Loading... | error | Found no ...  │ movie pane
//	│ f fetch • a add • m rating • ? help       │ footer
//	└───────────────────────────────────────────┘
//
// The movie pane shows exactly one body, chosen with the precedence
// loading > error > list > empty.
//
// # Event Flow
//
//  1. Init returns mountCmd; the mount message starts the list fetch and the
//     rating fetch, plus the refresh ticker when refresh_interval is set
//  2. startFetch calls View.BeginFetch, so "Loading..." shows before the
//     request leaves, and tags the command with a sequence number
//  3. moviesFetchedMsg goes through View.FinishFetch; results from a fetch
//     issued before an already applied one are dropped
//  4. Submitting the form sends one POST; its answer is only logged
//  5. Rating results and failures are only logged
//
// # Key Handling
//
// ctrl+c always quits. An open overlay (help or log) takes every other key.
// While the form has focus, printable keys go to the focused input, so the
// single-letter shortcuts only work after esc leaves the form.
//
// # Persistence
//
// Cycling the theme (T) or toggling the compact list (c) writes
// prefs.toml immediately; failures are logged and otherwise ignored.
package ui
