// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/trek/pkg/store"
)

// OwnerOptions captures which user's plan a command operates on.
type OwnerOptions struct {
	Owner string
}

// AddOwnerArg wires the owner flag on the provided command.
func AddOwnerArg(cmd *cobra.Command, o *OwnerOptions) {
	cmd.Flags().StringVarP(&o.Owner, "owner", "u", "",
		"Owner of the event collection. Defaults to the configured owner (TREK_OWNER).")
}

// Resolve returns the explicit owner, falling back to configuration. An empty
// result means no owner context; repository calls will refuse it.
func (o *OwnerOptions) Resolve() string {
	if o.Owner != "" {
		return o.Owner
	}
	return store.Owner()
}
