// Package get provides the runner logic for listing stored events.
package get

import (
	"context"
	"errors"

	"tableflip.dev/trek/pkg/printers"
	"tableflip.dev/trek/pkg/store"
)

type Get struct {
	Owner  string
	ShowID bool

	Persistence store.Persistence
}

func (n *Get) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get, no persistence")
	}

	c, err := n.Persistence.Load(ctx, n.Owner)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	pp.TitleWithCount("Events", len(c))
	pp.Events(c...)
	return nil
}
