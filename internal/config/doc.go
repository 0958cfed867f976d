// Package config loads reel's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/reel/config.toml (default)
//  3. If the config file doesn't exist, fall back to built-in defaults
//  4. Empty or blank fields keep their defaults
//  5. REEL_COLLECTION_URL, REEL_RATING_URL and REEL_RATING_API_KEY override the file
//
// LoadDotEnv may be called first to populate those variables from a .env
// file; values already present in the environment win.
//
// # TOML Format
//
//	collection_url   = "https://<db>.firebaseio.com/movies.json"
//	rating_url       = "https://api.themoviedb.org/3/movie/550"
//	rating_api_key   = "..."   # prefer REEL_RATING_API_KEY
//	request_timeout  = "10s"   # empty: no timeout
//	refresh_interval = "30s"   # empty: no periodic refresh
//	log_file         = "~/.local/state/reel/reel.log"
//	log_level        = "info"  # debug, info, warn, error
//	log_format       = "console"  # or json
//
// All fields are optional. The rating API key has no default; without it the
// rating fetch is skipped.
//
// # Error Handling
//
// Load returns errors for unreadable files, TOML syntax errors, malformed
// durations and values rejected by Validate. A missing file is not an error.
package config
