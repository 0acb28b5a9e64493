// Package session models one create-or-edit interaction as an explicit state
// machine. The draft lives here until it is committed, cancelled, or the
// target event deleted; a failed commit leaves the session open so the draft
// is never silently lost.
package session

import (
	"context"
	"errors"

	"tableflip.dev/trek/pkg/event"
	"tableflip.dev/trek/pkg/store"
)

// State is the session phase. Transitions are enumerated on Session; there is
// no way to reach OpenForEdit without a target id, so "delete while creating"
// cannot be expressed.
type State int

const (
	Closed State = iota
	OpenForCreate
	OpenForEdit
)

func (s State) String() string {
	switch s {
	case Closed:
		return "closed"
	case OpenForCreate:
		return "open-for-create"
	case OpenForEdit:
		return "open-for-edit"
	}
	return "unknown"
}

var (
	// ErrAlreadyOpen guards double-opens. The UI is expected to prevent
	// this; the session refuses it rather than clobbering a live draft.
	ErrAlreadyOpen = errors.New("session: already open")

	// ErrNotOpen is returned by operations that need an open session.
	ErrNotOpen = errors.New("session: not open")

	// ErrNoTarget is returned by Delete when the session is creating rather
	// than editing.
	ErrNoTarget = errors.New("session: no target event")
)

// Session coordinates a single create-or-edit interaction. Zero value is a
// closed session. Not safe for concurrent use; all transitions happen on the
// interaction thread.
type Session struct {
	state    State
	draft    event.Event
	targetID string
}

func New() *Session {
	return &Session{}
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) IsOpen() bool {
	return s.state != Closed
}

// TargetID is the id of the event being edited, or "" when creating.
func (s *Session) TargetID() string {
	return s.targetID
}

// Draft returns the in-progress event fields.
func (s *Session) Draft() event.Event {
	return s.draft
}

// SetDraft replaces the draft fields of an open session. The commit target is
// fixed by how the session was opened; a draft carrying a different id does
// not change it.
func (s *Session) SetDraft(e event.Event) error {
	if s.state == Closed {
		return ErrNotOpen
	}
	s.draft = e
	return nil
}

// OpenForCreate starts a create interaction, typically from an "add event"
// action or a calendar date-range selection. Start and end may be blank.
func (s *Session) OpenForCreate(start, end event.Timestamp) error {
	if s.state != Closed {
		return ErrAlreadyOpen
	}
	s.state = OpenForCreate
	s.targetID = ""
	s.draft = event.Event{
		Start: start,
		End:   end,
		Color: event.DefaultColor,
	}
	return nil
}

// OpenForEdit starts an edit interaction from a clicked event. The draft is a
// copy; stored state does not change until Commit.
func (s *Session) OpenForEdit(e event.Event) error {
	if s.state != Closed {
		return ErrAlreadyOpen
	}
	s.state = OpenForEdit
	s.targetID = e.ID
	s.draft = e
	return nil
}

// Commit persists the draft, creating or updating depending on how the
// session was opened. On success the session closes and the new collection is
// returned. On failure (missing owner, vanished target) the session stays
// open with the draft intact.
func (s *Session) Commit(ctx context.Context, owner string, p store.Persistence) (event.Collection, error) {
	if s.state == Closed {
		return nil, ErrNotOpen
	}

	var (
		c   event.Collection
		err error
	)
	if s.targetID != "" {
		draft := s.draft
		draft.ID = s.targetID
		c, err = p.Update(ctx, owner, draft)
	} else {
		c, err = p.Create(ctx, owner, s.draft)
	}
	if err != nil {
		return nil, err
	}
	s.reset()
	return c, nil
}

// Cancel discards the draft with no repository call.
func (s *Session) Cancel() {
	s.reset()
}

// Delete removes the target event. Only an editing session has one; create
// sessions cannot delete. The session stays open when the repository refuses
// (missing owner), so the interaction can be retried or cancelled explicitly.
func (s *Session) Delete(ctx context.Context, owner string, p store.Persistence) (event.Collection, error) {
	switch s.state {
	case Closed:
		return nil, ErrNotOpen
	case OpenForCreate:
		return nil, ErrNoTarget
	}
	c, err := p.Delete(ctx, owner, s.targetID)
	if err != nil {
		return nil, err
	}
	s.reset()
	return c, nil
}

func (s *Session) reset() {
	s.state = Closed
	s.targetID = ""
	s.draft = event.Event{}
}
