package event

import "github.com/lucasb-eyer/go-colorful"

// NormalizeColor parses a hex display color and returns its lowercase
// #rrggbb form. Anything unparsable falls back to DefaultColor; the planner
// never rejects an event over a bad color.
func NormalizeColor(s string) string {
	if s == "" {
		return DefaultColor
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return DefaultColor
	}
	return c.Hex()
}
