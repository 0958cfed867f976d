package main

import (
	"github.com/spf13/cobra"

	"github.com/five82/reel/internal/app"
	"github.com/five82/reel/internal/movies"
)

func newAddCmd(flags *rootFlags) *cobra.Command {
	var movie movies.NewMovie

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a movie to the collection",
		Long: `Post one movie to the collection and print the store's response.
Fields are sent as given; nothing is validated.`,
		Example: `  reel add --title "Heat" --opening-text "A group of pros..." --release-date 1995-12-15`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Add(cmd.Context(), flags.options(), movie, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&movie.Title, "title", "", "movie title")
	cmd.Flags().StringVar(&movie.OpeningText, "opening-text", "", "opening crawl or synopsis")
	cmd.Flags().StringVar(&movie.ReleaseDate, "release-date", "", "release date, e.g. 1995-12-15")
	return cmd
}
