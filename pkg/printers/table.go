package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/trek/pkg/catalogue"
)

// Hotels renders the hotel listing as a table.
func Hotels(hotels []catalogue.Hotel) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 40
	tbl.AddRow(bold.Sprint("Hotel"), bold.Sprint("Location"), bold.Sprint("Rating"), bold.Sprint("Price"))
	for _, h := range hotels {
		tbl.AddRow(h.Name, h.Location, fmt.Sprintf("%.1f", h.Rating), fmt.Sprintf("%.0f", h.Price))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Activities renders the activity listing as a table.
func Activities(activities []catalogue.Activity) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 50
	tbl.AddRow(bold.Sprint("Type"), bold.Sprint("Address"))
	for _, a := range activities {
		tbl.AddRow(a.Type, a.Address)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Places renders the place listing as a table, marking favorites.
func Places(places []catalogue.Place, favorites []catalogue.Place) {
	bold := color.New(color.Bold)
	fav := make(map[int]bool, len(favorites))
	for _, f := range favorites {
		fav[f.ID] = true
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	tbl.AddRow("", bold.Sprint("City"), bold.Sprint("Country"), bold.Sprint("Description"))
	for _, p := range places {
		mark := " "
		if fav[p.ID] {
			mark = "♥"
		}
		tbl.AddRow(mark, p.City, p.Country, oneLine(p.Description))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
