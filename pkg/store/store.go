package store

import (
	"context"
	"errors"

	"tableflip.dev/trek/pkg/event"
)

var (
	// ErrOwnerMissing is returned by every operation invoked without an
	// owner. There is no anonymous collection; callers surface this to the
	// user and abort the interaction.
	ErrOwnerMissing = errors.New("store: no owner")

	// ErrEventNotFound is returned by Update when the event id is not in
	// the owner's collection. Update never creates; the id must come from a
	// prior Load or Create.
	ErrEventNotFound = errors.New("store: event not found")
)

// Persistence is the durability contract for per-owner event collections.
// The whole collection is the unit of durability: ReplaceAll is the only
// primitive, and Create/Update/Delete are compute-new-collection-then-replace
// on top of it. A record that exists but cannot be parsed is treated as
// absent, never as an error.
type Persistence interface {
	Load(ctx context.Context, owner string) (event.Collection, error)
	ReplaceAll(ctx context.Context, owner string, c event.Collection) error
	Create(ctx context.Context, owner string, e event.Event) (event.Collection, error)
	Update(ctx context.Context, owner string, e event.Event) (event.Collection, error)
	Delete(ctx context.Context, owner, id string) (event.Collection, error)
	Watch(ctx context.Context) (<-chan Change, error)
}

// Change is emitted by Watch when an owner's stored collection changes.
type Change struct {
	Owner string
}
