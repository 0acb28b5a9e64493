package store

import (
	"context"
	"fmt"
	"sync"

	"tableflip.dev/trek/pkg/event"
	"tableflip.dev/trek/pkg/ident"
)

// NewMemory returns a Persistence backed by a process-local map. It honors
// the same contract as the diskv implementation and exists for tests and
// demos; nothing survives the process.
func NewMemory(gen ident.Generator) Persistence {
	if gen == nil {
		gen = ident.UUID{}
	}
	return &memory{
		gen:    gen,
		owners: make(map[string]event.Collection),
	}
}

type memory struct {
	mu      sync.Mutex
	gen     ident.Generator
	owners  map[string]event.Collection
	watches []chan Change
}

func (m *memory) Load(_ context.Context, owner string) (event.Collection, error) {
	if owner == "" {
		return nil, ErrOwnerMissing
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.owners[owner].Clone(), nil
}

func (m *memory) ReplaceAll(_ context.Context, owner string, c event.Collection) error {
	if owner == "" {
		return ErrOwnerMissing
	}
	m.mu.Lock()
	m.owners[owner] = c.Clone()
	watches := append([]chan Change(nil), m.watches...)
	m.mu.Unlock()

	for _, ch := range watches {
		select {
		case ch <- Change{Owner: owner}:
		default:
		}
	}
	return nil
}

func (m *memory) Create(ctx context.Context, owner string, e event.Event) (event.Collection, error) {
	if owner == "" {
		return nil, ErrOwnerMissing
	}
	c, err := m.Load(ctx, owner)
	if err != nil {
		return nil, err
	}
	e.ID = m.gen.NewID()
	if e.Color == "" {
		e.Color = event.DefaultColor
	}
	c = append(c, e)
	if err := m.ReplaceAll(ctx, owner, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (m *memory) Update(ctx context.Context, owner string, e event.Event) (event.Collection, error) {
	if owner == "" {
		return nil, ErrOwnerMissing
	}
	c, err := m.Load(ctx, owner)
	if err != nil {
		return nil, err
	}
	idx := c.IndexOf(e.ID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrEventNotFound, e.ID)
	}
	c[idx] = e
	if err := m.ReplaceAll(ctx, owner, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (m *memory) Delete(ctx context.Context, owner, id string) (event.Collection, error) {
	if owner == "" {
		return nil, ErrOwnerMissing
	}
	c, err := m.Load(ctx, owner)
	if err != nil {
		return nil, err
	}
	idx := c.IndexOf(id)
	if idx < 0 {
		return c, nil
	}
	c = append(c[:idx], c[idx+1:]...)
	if err := m.ReplaceAll(ctx, owner, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (m *memory) Watch(ctx context.Context) (<-chan Change, error) {
	ch := make(chan Change, 64)
	m.mu.Lock()
	m.watches = append(m.watches, ch)
	m.mu.Unlock()

	go func() {
		<-ctx.Done()
		m.mu.Lock()
		for i, w := range m.watches {
			if w == ch {
				m.watches = append(m.watches[:i], m.watches[i+1:]...)
				break
			}
		}
		m.mu.Unlock()
		close(ch)
	}()
	return ch, nil
}
