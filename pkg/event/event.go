package event

// DefaultColor is used when an event has no explicit display color.
const DefaultColor = "#3788d8"

func New(title string, start, end Timestamp) Event {
	return Event{
		Title: title,
		Start: start,
		End:   end,
		Color: DefaultColor,
	}
}

// Event is a scheduled item owned by exactly one user. The ID is opaque and
// stable for the event's lifetime; it is only unique within the owner's
// collection.
type Event struct {
	ID          string
	Title       string
	Start       Timestamp
	End         Timestamp
	Description string

	// Color is the display color. The stored form writes it to both the
	// background and border fields, so there is no independent border color.
	Color string
}

// Collection is the full ordered set of events belonging to one owner. Order
// is incidental; lookups are always by id. It is the unit of persistence.
type Collection []Event

// Find returns the event with the given id.
func (c Collection) Find(id string) (Event, bool) {
	for _, e := range c {
		if e.ID == id {
			return e, true
		}
	}
	return Event{}, false
}

// IndexOf returns the position of the event with the given id, or -1.
func (c Collection) IndexOf(id string) int {
	for i, e := range c {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a copy so callers can mutate without aliasing stored state.
func (c Collection) Clone() Collection {
	if c == nil {
		return nil
	}
	out := make(Collection, len(c))
	copy(out, c)
	return out
}
