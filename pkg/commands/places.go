package commands

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/trek/pkg/catalogue"
	"tableflip.dev/trek/pkg/commands/options"
	"tableflip.dev/trek/pkg/runner/browse"
)

func addPlaces(topLevel *cobra.Command) {
	oo := &options.OwnerOptions{}
	so := &options.SearchOptions{}

	cmd := &cobra.Command{
		Use:   "places",
		Short: "Browse destinations",
		Example: `
trek places
trek places --country Portugal
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			favorites, err := catalogue.LoadFavorites(nil)
			if err != nil {
				return err
			}
			s := browse.Places{
				Search:    so.Search,
				Cities:    so.Cities,
				Countries: so.Countries,
				Owner:     oo.Resolve(),
				Client:    catalogue.NewClient(""),
				Favorites: favorites,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOwnerArg(cmd, oo)
	options.AddSearchArg(cmd, so)
	options.AddPlaceFilterArgs(cmd, so)
	options.AddOutputArg(cmd, output)

	addPlacesFavorite(cmd)

	topLevel.AddCommand(cmd)
}

func addPlacesFavorite(topLevel *cobra.Command) {
	oo := &options.OwnerOptions{}

	cmd := &cobra.Command{
		Use:   "favorite <place-id>",
		Short: "Toggle a place in your favorites",
		Example: `
trek places favorite 3
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			favorites, err := catalogue.LoadFavorites(nil)
			if err != nil {
				return err
			}
			s := browse.Favorite{
				Owner:     oo.Resolve(),
				PlaceID:   id,
				Client:    catalogue.NewClient(""),
				Favorites: favorites,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOwnerArg(cmd, oo)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
