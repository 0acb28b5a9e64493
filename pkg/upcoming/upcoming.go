// Package upcoming derives the "upcoming events" feed from a collection
// snapshot. The projection is pure and holds no state: callers recompute it
// after every mutation (and on render) with "now" taken from an injected
// clock, rather than caching against a version or running a timer.
package upcoming

import (
	"sort"
	"time"

	"tableflip.dev/trek/pkg/event"
)

// Events returns the events starting strictly after now, ascending by start.
// Ties keep the collection's order. Events whose start does not parse are
// never upcoming.
func Events(c event.Collection, now time.Time) []event.Event {
	out := make([]event.Event, 0, len(c))
	for _, e := range c {
		if e.Start.After(now) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, _ := out[i].Start.Time()
		b, _ := out[j].Start.Time()
		return a.Before(b)
	})
	return out
}

// Next returns the soonest upcoming event, if any.
func Next(c event.Collection, now time.Time) (event.Event, bool) {
	all := Events(c, now)
	if len(all) == 0 {
		return event.Event{}, false
	}
	return all[0], true
}
