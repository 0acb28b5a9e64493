// Package ident generates event identifiers. The generator is injected into
// persistence so tests can supply deterministic ids.
package ident

import (
	"fmt"

	"github.com/google/uuid"
)

// Generator produces unique identifiers. Ids only need to be unique within a
// single owner's collection, but the default implementation is globally unique
// anyway.
type Generator interface {
	NewID() string
}

// UUID generates random UUIDv4 identifiers.
type UUID struct{}

func (UUID) NewID() string {
	return uuid.NewString()
}

// Sequence hands out "id-1", "id-2", ... in order. Intended for tests.
type Sequence struct {
	n int
}

func (s *Sequence) NewID() string {
	s.n++
	return fmt.Sprintf("id-%d", s.n)
}
