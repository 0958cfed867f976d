// Package prefs persists the display settings an operator toggles from
// inside the UI: the theme name and the compact list flag.
//
// Preferences live in ~/.config/reel/prefs.toml, apart from config.toml, so
// the UI never rewrites a hand-edited config file.
//
// # Error Handling
//
// A missing file yields defaults and no error. An unreadable or malformed
// file yields defaults and the error, which the caller logs.
package prefs
