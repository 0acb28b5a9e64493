package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/trek/pkg/catalogue"
	"tableflip.dev/trek/pkg/commands/options"
	"tableflip.dev/trek/pkg/runner/browse"
)

func addActivities(topLevel *cobra.Command) {
	so := &options.SearchOptions{}

	cmd := &cobra.Command{
		Use:   "activities",
		Short: "Browse the activity catalogue",
		Example: `
trek activities
trek activities --type Hiking --search trail
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := browse.Activities{
				Search: so.Search,
				Type:   so.Type,
				Client: catalogue.NewClient(""),
			}
			err := s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddSearchArg(cmd, so)
	options.AddActivityTypeArg(cmd, so)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
