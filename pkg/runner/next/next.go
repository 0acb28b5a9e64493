// Package next provides the runner logic for the upcoming-events feed.
package next

import (
	"context"
	"errors"

	"tableflip.dev/trek/pkg/app"
	"tableflip.dev/trek/pkg/clock"
	"tableflip.dev/trek/pkg/printers"
	"tableflip.dev/trek/pkg/store"
)

type Next struct {
	Owner  string
	ShowID bool

	Persistence store.Persistence
	Clock       clock.Clock
}

func (n *Next) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not list upcoming, no persistence")
	}

	svc := &app.Service{Persistence: n.Persistence, Clock: n.Clock}
	events, err := svc.Upcoming(ctx, n.Owner)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	pp.TitleWithCount("Upcoming Events", len(events))
	pp.Events(events...)
	return nil
}
