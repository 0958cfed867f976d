// Package logging builds the zerolog logger shared by every reel component.
//
// The terminal belongs to the TUI, so output is appended to a file
// (log_file, default ~/.local/state/reel/reel.log). An empty path writes to
// stderr, which the headless commands and tests use.
//
// # Formats
//
//   - console: zerolog.ConsoleWriter without colour, RFC3339 timestamps
//   - json: one JSON object per line
//
// Levels are debug, info, warn and error; anything else falls back to info.
package logging
