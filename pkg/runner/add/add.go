// Package add provides the runner logic for creating a planner event.
package add

import (
	"context"
	"errors"

	"tableflip.dev/trek/pkg/event"
	"tableflip.dev/trek/pkg/printers"
	"tableflip.dev/trek/pkg/store"
)

type Add struct {
	Owner       string
	Title       string
	Start       string
	End         string
	Description string
	Color       string
	ShowID      bool

	Persistence store.Persistence
}

func (n *Add) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not add, no persistence")
	}

	e := event.New(n.Title, event.Timestamp(n.Start), event.Timestamp(n.End))
	e.Description = n.Description
	if n.Color != "" {
		e.Color = event.NormalizeColor(n.Color)
	}

	c, err := n.Persistence.Create(ctx, n.Owner, e)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	pp.TitleWithCount("Events", len(c))
	pp.Events(c...)
	return nil
}
