package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/trek/pkg/app"
	"tableflip.dev/trek/pkg/clock"
	"tableflip.dev/trek/pkg/commands/options"
	"tableflip.dev/trek/pkg/store"
	"tableflip.dev/trek/pkg/tui/planner"
)

func addPlan(topLevel *cobra.Command) {
	oo := &options.OwnerOptions{}

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Open the interactive event planner",
		Example: `
trek plan
trek plan --owner ana
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil, nil)
			if err != nil {
				return err
			}
			svc := &app.Service{
				Persistence: p,
				Clock:       clock.Real{},
			}
			return planner.Run(svc, oo.Resolve())
		},
	}

	options.AddOwnerArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
