// Package clock abstracts the current instant so projections and tests can
// control time instead of reading the wall clock directly.
package clock

import "time"

// Clock supplies the current instant.
type Clock interface {
	Now() time.Time
}

// Real reads the system clock.
type Real struct{}

func (Real) Now() time.Time {
	return time.Now()
}

// Fixed always reports the same instant. Intended for tests.
type Fixed struct {
	Instant time.Time
}

func (f Fixed) Now() time.Time {
	return f.Instant
}

// At returns a Fixed clock pinned to the given instant.
func At(t time.Time) Fixed {
	return Fixed{Instant: t}
}
