package options

import (
	"github.com/spf13/cobra"
)

// EventOptions captures event field flags for add/edit commands.
type EventOptions struct {
	Title       string
	Start       string
	End         string
	Description string
	Color       string
}

// AddEventArgs wires event field flags on the provided command.
func AddEventArgs(cmd *cobra.Command, o *EventOptions) {
	cmd.Flags().StringVarP(&o.Start, "start", "s", "",
		"Start of the event, e.g. 2030-01-01T10:00.")
	cmd.Flags().StringVarP(&o.End, "end", "e", "",
		"End of the event.")
	cmd.Flags().StringVarP(&o.Description, "description", "d", "",
		"Free-text description.")
	cmd.Flags().StringVar(&o.Color, "color", "",
		"Display color as a hex value, e.g. #3788d8.")
}
