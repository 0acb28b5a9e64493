package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/trek/pkg/commands/options"
	"tableflip.dev/trek/pkg/runner/add"
	"tableflip.dev/trek/pkg/runner/del"
	"tableflip.dev/trek/pkg/runner/edit"
	"tableflip.dev/trek/pkg/runner/get"
	"tableflip.dev/trek/pkg/store"
)

func addEvent(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "event",
		Short: "Manage planner events",
		Example: `
trek event add "Tour the old town" --start 2030-01-01T10:00 --end 2030-01-01T12:00
trek event get --show-id
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addEventAdd(cmd)
	addEventGet(cmd)
	addEventEdit(cmd)
	addEventDelete(cmd)

	topLevel.AddCommand(cmd)
}

func addEventAdd(topLevel *cobra.Command) {
	oo := &options.OwnerOptions{}
	eo := &options.EventOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add an event to the plan",
		Example: `
trek event add "Flight to Lisbon" --start 2030-01-01T10:00 --end 2030-01-01T12:00 --color "#3788d8"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			eo.Title = joinArgs(args)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil, nil)
			if err != nil {
				return err
			}
			s := add.Add{
				Owner:       oo.Resolve(),
				Title:       eo.Title,
				Start:       eo.Start,
				End:         eo.End,
				Description: eo.Description,
				Color:       eo.Color,
				ShowID:      io.ShowID,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOwnerArg(cmd, oo)
	options.AddEventArgs(cmd, eo)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

func addEventGet(topLevel *cobra.Command) {
	oo := &options.OwnerOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "get",
		Short: "List the plan's events",
		Example: `
trek event get
trek event get --owner ana --show-id
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil, nil)
			if err != nil {
				return err
			}
			s := get.Get{
				Owner:       oo.Resolve(),
				ShowID:      io.ShowID,
				Persistence: p,
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

func addEventEdit(topLevel *cobra.Command) {
	oo := &options.OwnerOptions{}
	eo := &options.EventOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "edit [title]",
		Short: "Edit an event by id",
		Example: `
trek event edit "Renamed trip" --id 171dff69 --start 2030-02-01T09:00
`,
		Args: func(cmd *cobra.Command, args []string) error {
			eo.Title = joinArgs(args)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil, nil)
			if err != nil {
				return err
			}
			s := edit.Edit{
				Owner:       oo.Resolve(),
				ID:          io.ID,
				Title:       eo.Title,
				Start:       eo.Start,
				End:         eo.End,
				Description: eo.Description,
				Color:       eo.Color,
				ShowID:      io.ShowID,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOwnerArg(cmd, oo)
	options.AddEventArgs(cmd, eo)
	options.AddIDArgs(cmd, io)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)
	_ = cmd.MarkFlagRequired("id")

	topLevel.AddCommand(cmd)
}

func addEventDelete(topLevel *cobra.Command) {
	oo := &options.OwnerOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete an event by id",
		Example: `
trek event delete --id 171dff69
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil, nil)
			if err != nil {
				return err
			}
			s := del.Delete{
				Owner:       oo.Resolve(),
				ID:          io.ID,
				ShowID:      io.ShowID,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOwnerArg(cmd, oo)
	options.AddIDArgs(cmd, io)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)
	_ = cmd.MarkFlagRequired("id")

	topLevel.AddCommand(cmd)
}
