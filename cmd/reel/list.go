package main

import (
	"github.com/spf13/cobra"

	"github.com/five82/reel/internal/app"
)

func newListCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Fetch the collection once and print it",
		Long: `Fetch the movie collection and the rating record once, then print what the
UI would show: the movies, "Found no movies.", or the error message.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.List(cmd.Context(), flags.options(), cmd.OutOrStdout())
		},
	}
}
