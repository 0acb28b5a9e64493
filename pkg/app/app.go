// Package app provides high-level planner operations shared by the CLI and
// the TUI. It wraps persistence, the clock, and the projection so surfaces do
// not talk to storage directly.
package app

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/trek/pkg/clock"
	"tableflip.dev/trek/pkg/event"
	"tableflip.dev/trek/pkg/store"
	"tableflip.dev/trek/pkg/upcoming"
)

// Service provides event-planner operations for one backing store.
type Service struct {
	Persistence store.Persistence
	Clock       clock.Clock
}

var errNoPersistence = errors.New("app: no persistence configured")

func (s *Service) now() time.Time {
	if s.Clock == nil {
		return time.Now()
	}
	return s.Clock.Now()
}

// Events returns the owner's full collection.
func (s *Service) Events(ctx context.Context, owner string) (event.Collection, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	return s.Persistence.Load(ctx, owner)
}

// Upcoming recomputes the future-events feed against the current snapshot.
func (s *Service) Upcoming(ctx context.Context, owner string) ([]event.Event, error) {
	c, err := s.Events(ctx, owner)
	if err != nil {
		return nil, err
	}
	return upcoming.Events(c, s.now()), nil
}

// Create stores a new event under the owner and returns the new collection.
func (s *Service) Create(ctx context.Context, owner string, e event.Event) (event.Collection, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	return s.Persistence.Create(ctx, owner, e)
}

// Update replaces the stored event matching e.ID in place.
func (s *Service) Update(ctx context.Context, owner string, e event.Event) (event.Collection, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	return s.Persistence.Update(ctx, owner, e)
}

// Delete removes the event with the given id, tolerating absence.
func (s *Service) Delete(ctx context.Context, owner, id string) (event.Collection, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	return s.Persistence.Delete(ctx, owner, id)
}

// Watch subscribes to persistence change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Change, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	return s.Persistence.Watch(ctx)
}
