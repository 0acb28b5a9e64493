package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/trek/pkg/clock"
	"tableflip.dev/trek/pkg/commands/options"
	"tableflip.dev/trek/pkg/runner/next"
	"tableflip.dev/trek/pkg/store"
)

func addUpcoming(topLevel *cobra.Command) {
	oo := &options.OwnerOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "upcoming",
		Short: "List future events, soonest first",
		Example: `
trek upcoming
trek upcoming --owner ana
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil, nil)
			if err != nil {
				return err
			}
			s := next.Next{
				Owner:       oo.Resolve(),
				ShowID:      io.ShowID,
				Persistence: p,
				Clock:       clock.Real{},
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOwnerArg(cmd, oo)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
