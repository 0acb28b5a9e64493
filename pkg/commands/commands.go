package commands

import (
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/trek/pkg/commands/options"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "trek",
		Short: base.Wrap80("Travel planning on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func joinArgs(args []string) string {
	return strings.Join(args, " ")
}

func AddCommands(topLevel *cobra.Command) {
	addEvent(topLevel)
	addUpcoming(topLevel)
	addHotels(topLevel)
	addActivities(topLevel)
	addPlaces(topLevel)
	addPlan(topLevel)
	addCompletions(topLevel)
	addVersion(topLevel)
}
