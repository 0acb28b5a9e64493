package options

import (
	"github.com/spf13/cobra"
)

// SearchOptions captures catalogue filtering and sorting flags.
type SearchOptions struct {
	Search     string
	SortBy     string
	Descending bool
	Type       string
	Cities     []string
	Countries  []string
}

// AddSearchArg wires the shared search term flag.
func AddSearchArg(cmd *cobra.Command, o *SearchOptions) {
	cmd.Flags().StringVarP(&o.Search, "search", "q", "",
		"Filter listings by a search term.")
}

// AddHotelSortArgs wires hotel sorting flags.
func AddHotelSortArgs(cmd *cobra.Command, o *SearchOptions) {
	cmd.Flags().StringVar(&o.SortBy, "sort", "name",
		"Sort hotels by one of: name, rating, price.")
	cmd.Flags().BoolVar(&o.Descending, "desc", false,
		"Sort in descending order.")
}

// AddActivityTypeArg wires the activity type filter.
func AddActivityTypeArg(cmd *cobra.Command, o *SearchOptions) {
	cmd.Flags().StringVarP(&o.Type, "type", "t", "All",
		"Only show activities of this type.")
}

// AddPlaceFilterArgs wires the place city/country filters.
func AddPlaceFilterArgs(cmd *cobra.Command, o *SearchOptions) {
	cmd.Flags().StringSliceVar(&o.Cities, "city", nil,
		"Only show places in these cities.")
	cmd.Flags().StringSliceVar(&o.Countries, "country", nil,
		"Only show places in these countries.")
}
