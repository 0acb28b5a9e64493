package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/trek/pkg/event"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("171dff69-f8b9-9dca  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" event")
	default:
		_, _ = c.Println(" events")
	}
}

// Events prints a collection, one line per event.
func (pp *PrettyPrint) Events(events ...event.Event) {
	if len(events) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	t := color.New()
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	d := color.New(color.Faint)

	for _, e := range events {
		if pp.ShowID {
			_, _ = y.Print(e.ID)
			if pad := len(spacing) - len(e.ID); pad > 0 {
				_, _ = y.Print(strings.Repeat(" ", pad))
			} else {
				_, _ = y.Print("  ")
			}
		}
		title := e.Title
		if title == "" {
			title = "(untitled)"
		}
		_, _ = t.Printf("%s  %s", span(e), title)
		if e.Description != "" {
			_, _ = d.Printf("  %s", e.Description)
		}
		_, _ = t.Println("")
	}
	_, _ = t.Println("")
}

// span renders the start, and the end when one is set.
func span(e event.Event) string {
	if e.End.IsZero() || e.End == e.Start {
		return string(e.Start)
	}
	return fmt.Sprintf("%s → %s", e.Start, e.End)
}
