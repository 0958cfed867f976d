// Package app wires configuration, logging and the HTTP clients together and
// hands them to one of three front ends.
//
// # Front ends
//
//   - Run: the interactive terminal UI (package ui).
//   - List: one-shot fetch of the collection and the rating record, printing
//     the same text the UI would show in its movie pane.
//   - Add: posts one movie and prints the store's JSON answer.
//
// # Startup
//
//  1. Load .env files without overriding the environment
//  2. Read ~/.config/reel/config.toml and apply REEL_* overrides
//  3. Open the log file; the terminal belongs to the UI
//  4. Build the movie client and, when an api key is present, the rating client
//
// Configuration and logging failures are returned from every front end.
// Request failures are not: the UI and List show them in the movie pane, and
// rating or submit failures only reach the log.
package app
