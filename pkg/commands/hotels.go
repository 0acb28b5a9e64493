package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/trek/pkg/catalogue"
	"tableflip.dev/trek/pkg/commands/options"
	"tableflip.dev/trek/pkg/runner/browse"
)

func addHotels(topLevel *cobra.Command) {
	so := &options.SearchOptions{}

	cmd := &cobra.Command{
		Use:   "hotels",
		Short: "Browse the hotel catalogue",
		Example: `
trek hotels
trek hotels --search seaside --sort price
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := browse.Hotels{
				Search:     so.Search,
				SortBy:     catalogue.HotelSort(so.SortBy),
				Descending: so.Descending,
				Client:     catalogue.NewClient(""),
			}
			err := s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddSearchArg(cmd, so)
	options.AddHotelSortArgs(cmd, so)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
