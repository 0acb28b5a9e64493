// Package edit provides the runner logic for editing a stored event. The
// edit runs through an editing session so the same open/commit protocol the
// TUI uses is exercised here.
package edit

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/trek/pkg/event"
	"tableflip.dev/trek/pkg/printers"
	"tableflip.dev/trek/pkg/session"
	"tableflip.dev/trek/pkg/store"
)

type Edit struct {
	Owner string
	ID    string

	// Non-empty values override the stored fields.
	Title       string
	Start       string
	End         string
	Description string
	Color       string

	ShowID bool

	Persistence store.Persistence
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not edit, no persistence")
	}

	c, err := n.Persistence.Load(ctx, n.Owner)
	if err != nil {
		return err
	}
	target, ok := c.Find(n.ID)
	if !ok {
		return fmt.Errorf("%w: %s", store.ErrEventNotFound, n.ID)
	}

	s := session.New()
	if err := s.OpenForEdit(target); err != nil {
		return err
	}

	draft := s.Draft()
	if n.Title != "" {
		draft.Title = n.Title
	}
	if n.Start != "" {
		draft.Start = event.Timestamp(n.Start)
	}
	if n.End != "" {
		draft.End = event.Timestamp(n.End)
	}
	if n.Description != "" {
		draft.Description = n.Description
	}
	if n.Color != "" {
		draft.Color = event.NormalizeColor(n.Color)
	}
	if err := s.SetDraft(draft); err != nil {
		return err
	}

	c, err = s.Commit(ctx, n.Owner, n.Persistence)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	pp.TitleWithCount("Events", len(c))
	pp.Events(c...)
	return nil
}
