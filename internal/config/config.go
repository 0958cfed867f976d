package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Config captures everything reel needs at startup.
type Config struct {
	CollectionURL   string
	RatingURL       string
	RatingAPIKey    string
	RequestTimeout  time.Duration // zero means requests never time out
	RefreshInterval time.Duration // zero disables periodic refresh
	LogFile         string
	LogLevel        string
	LogFormat       string
}

const (
	defaultConfigPath    = "~/.config/reel/config.toml"
	defaultCollectionURL = "https://udemy-react-http-2f0b2-default-rtdb.firebaseio.com/movies.json"
	defaultRatingURL     = "https://api.themoviedb.org/3/movie/550"
	defaultLogFile       = "~/.local/state/reel/reel.log"
	defaultLogLevel      = "info"
	defaultLogFormat     = "console"
)

// Environment variables that override the file.
const (
	EnvCollectionURL = "REEL_COLLECTION_URL"
	EnvRatingURL     = "REEL_RATING_URL"
	EnvRatingAPIKey  = "REEL_RATING_API_KEY"
)

// Load locates and parses the reel config, falling back to defaults when
// missing, then applies environment overrides.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// defaults only
	case err != nil:
		return Config{}, fmt.Errorf("open config: %w", err)
	default:
		defer file.Close()
		if err := parse(file, &cfg); err != nil {
			return Config{}, err
		}
	}

	applyEnv(&cfg)
	cfg.LogFile = mustExpand(cfg.LogFile)

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		CollectionURL: defaultCollectionURL,
		RatingURL:     defaultRatingURL,
		LogFile:       defaultLogFile,
		LogLevel:      defaultLogLevel,
		LogFormat:     defaultLogFormat,
	}
}

// LoadDotEnv loads variables from .env files without overriding the ones
// already set. Missing files are ignored.
func LoadDotEnv(files ...string) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		_ = godotenv.Load(f)
	}
}

// Validate checks values that cannot be defaulted.
func (c Config) Validate() error {
	if strings.TrimSpace(c.CollectionURL) == "" {
		return fmt.Errorf("collection_url is required")
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("request_timeout must not be negative")
	}
	if c.RefreshInterval < 0 {
		return fmt.Errorf("refresh_interval must not be negative")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level: %s", c.LogLevel)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log_format: %s", c.LogFormat)
	}
	return nil
}

// RatingEnabled reports whether a credential for the rating API is present.
func (c Config) RatingEnabled() bool {
	return strings.TrimSpace(c.RatingAPIKey) != ""
}

func parse(r io.Reader, cfg *Config) error {
	bytes, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		CollectionURL   string `toml:"collection_url"`
		RatingURL       string `toml:"rating_url"`
		RatingAPIKey    string `toml:"rating_api_key"`
		RequestTimeout  string `toml:"request_timeout"`
		RefreshInterval string `toml:"refresh_interval"`
		LogFile         string `toml:"log_file"`
		LogLevel        string `toml:"log_level"`
		LogFormat       string `toml:"log_format"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	setIfPresent(&cfg.CollectionURL, raw.CollectionURL)
	setIfPresent(&cfg.RatingURL, raw.RatingURL)
	setIfPresent(&cfg.RatingAPIKey, raw.RatingAPIKey)
	setIfPresent(&cfg.LogFile, raw.LogFile)
	setIfPresent(&cfg.LogLevel, strings.ToLower(raw.LogLevel))
	setIfPresent(&cfg.LogFormat, strings.ToLower(raw.LogFormat))

	if cfg.RequestTimeout, err = parseDuration("request_timeout", raw.RequestTimeout); err != nil {
		return err
	}
	if cfg.RefreshInterval, err = parseDuration("refresh_interval", raw.RefreshInterval); err != nil {
		return err
	}
	return nil
}

func applyEnv(cfg *Config) {
	setIfPresent(&cfg.CollectionURL, os.Getenv(EnvCollectionURL))
	setIfPresent(&cfg.RatingURL, os.Getenv(EnvRatingURL))
	setIfPresent(&cfg.RatingAPIKey, os.Getenv(EnvRatingAPIKey))
}

func setIfPresent(dst *string, value string) {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		*dst = trimmed
	}
}

func parseDuration(field, value string) (time.Duration, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(trimmed)
	if err != nil {
		return 0, fmt.Errorf("parse config: %s: %w", field, err)
	}
	return d, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
