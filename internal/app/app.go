package app

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/five82/reel/internal/config"
	"github.com/five82/reel/internal/logging"
	"github.com/five82/reel/internal/movies"
	"github.com/five82/reel/internal/prefs"
	"github.com/five82/reel/internal/rating"
	"github.com/five82/reel/internal/ui"
)

// Options configure a reel invocation.
type Options struct {
	ConfigPath string
	PrefsPath  string   // empty uses ~/.config/reel/prefs.toml
	EnvFiles   []string // empty loads .env from the working directory
	LogLevel   string   // overrides log_level from the config file
}

// deps holds everything built from configuration.
type deps struct {
	cfg    config.Config
	logger zerolog.Logger
	closer io.Closer
	movies *movies.Client
	rating *rating.Client // nil when no api key is configured
}

func (d *deps) Close() error {
	return d.closer.Close()
}

func setup(opts Options) (*deps, error) {
	config.LoadDotEnv(opts.EnvFiles...)

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid config: %w", err)
		}
	}

	logger, closer, err := logging.New(logging.Options{
		Path:   cfg.LogFile,
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}

	client, err := movies.NewClient(cfg.CollectionURL,
		movies.WithTimeout(cfg.RequestTimeout),
		movies.WithLogger(logger.With().Str("component", "movies").Logger()),
	)
	if err != nil {
		_ = closer.Close()
		return nil, fmt.Errorf("init movie client: %w", err)
	}

	d := &deps{cfg: cfg, logger: logger, closer: closer, movies: client}

	if cfg.RatingEnabled() {
		rc, err := rating.NewClient(cfg.RatingURL, cfg.RatingAPIKey, &http.Client{Timeout: cfg.RequestTimeout})
		if err != nil {
			_ = closer.Close()
			return nil, fmt.Errorf("init rating client: %w", err)
		}
		d.rating = rc
	}

	logger.Debug().
		Str("collection", client.Endpoint()).
		Bool("rating", d.rating != nil).
		Dur("timeout", cfg.RequestTimeout).
		Msg("reel starting")
	return d, nil
}

// Run boots the TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	d, err := setup(opts)
	if err != nil {
		return err
	}
	defer func() { _ = d.Close() }()

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		d.logger.Warn().Err(err).Msg("load prefs failed, using defaults")
	}

	uiOpts := ui.Options{
		Context:    ctx,
		Collection: d.movies,
		Logger:     d.logger.With().Str("component", "ui").Logger(),
		Endpoint:   d.movies.Endpoint(),
		LogPath:    d.cfg.LogFile,
		Refresh:    d.cfg.RefreshInterval,
		ThemeName:  userPrefs.Theme,
		Compact:    userPrefs.Compact,
		PrefsPath:  opts.PrefsPath,
	}
	// Leave the interface nil rather than holding a typed nil pointer.
	if d.rating != nil {
		uiOpts.Rating = d.rating
	}

	if err := ui.Run(uiOpts); err != nil {
		d.logger.Error().Err(err).Msg("ui exited with error")
		return err
	}
	return nil
}
