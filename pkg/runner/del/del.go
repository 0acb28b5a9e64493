// Package del provides the runner logic for deleting a stored event.
package del

import (
	"context"
	"errors"

	"tableflip.dev/trek/pkg/printers"
	"tableflip.dev/trek/pkg/store"
)

type Delete struct {
	Owner  string
	ID     string
	ShowID bool

	Persistence store.Persistence
}

func (n *Delete) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not delete, no persistence")
	}

	// Deleting an absent id is already satisfied, matching the planner UI
	// which only offers delete on a selected event.
	c, err := n.Persistence.Delete(ctx, n.Owner, n.ID)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	pp.TitleWithCount("Events", len(c))
	pp.Events(c...)
	return nil
}
