package main

import (
	"github.com/spf13/cobra"

	"github.com/five82/reel/internal/app"
)

type rootFlags struct {
	configPath string
	prefsPath  string
	envFile    string
	logLevel   string
}

func (f *rootFlags) options() app.Options {
	opts := app.Options{
		ConfigPath: f.configPath,
		PrefsPath:  f.prefsPath,
		LogLevel:   f.logLevel,
	}
	if f.envFile != "" {
		opts.EnvFiles = []string{f.envFile}
	}
	return opts
}

// newRootCmd builds the command tree. Running it bare starts the TUI.
func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "reel",
		Short: "Browse and add movies in a remote collection",
		Long: `reel lists the movies stored in a remote JSON collection and lets you add
new ones. Without a subcommand it starts the terminal UI.

Configuration is read from ~/.config/reel/config.toml. REEL_COLLECTION_URL,
REEL_RATING_URL and REEL_RATING_API_KEY override the file and may be set in a
.env file in the working directory.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), flags.options())
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "config file (default ~/.config/reel/config.toml)")
	pf.StringVar(&flags.prefsPath, "prefs", "", "preferences file (default ~/.config/reel/prefs.toml)")
	pf.StringVar(&flags.envFile, "env-file", "", "dotenv file to load (default .env)")
	pf.StringVar(&flags.logLevel, "log-level", "", "override log_level (debug, info, warn, error)")

	cmd.AddCommand(newListCmd(flags))
	cmd.AddCommand(newAddCmd(flags))
	return cmd
}
