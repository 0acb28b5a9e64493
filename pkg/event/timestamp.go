package event

import "time"

// Timestamp is a textual date-time as entered or stored. The raw string round
// trips untouched; parsing only happens when a caller needs to compare
// instants. Nothing validates that an event's end follows its start.
type Timestamp string

// layouts accepted when interpreting a timestamp, most specific first.
// Zoneless forms are interpreted in local time, matching how date pickers
// produce them.
var layouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Time interprets the timestamp as an instant. The second return is false
// when the text matches none of the accepted layouts; callers treat such
// events as never upcoming rather than failing.
func (t Timestamp) Time() (time.Time, bool) {
	s := string(t)
	if s == "" {
		return time.Time{}, false
	}
	if parsed, err := time.Parse(time.RFC3339, s); err == nil {
		return parsed, true
	}
	for _, layout := range layouts[1:] {
		if parsed, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// After reports whether the timestamp parses and is strictly after then.
func (t Timestamp) After(then time.Time) bool {
	parsed, ok := t.Time()
	return ok && parsed.After(then)
}

func (t Timestamp) IsZero() bool {
	return t == ""
}

// Stamp formats an instant in the zoneless form used for new drafts.
func Stamp(v time.Time) Timestamp {
	return Timestamp(v.Format("2006-01-02T15:04"))
}
