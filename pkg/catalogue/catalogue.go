// Package catalogue is the read-only client for the travel catalogue backend:
// hotels, activities, and places. Browsing is fetch-filter-render; the
// backend owns the data and nothing here mutates it. Place favorites are the
// one locally persisted extra.
package catalogue

import (
	"sort"
	"strings"
)

type Hotel struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Location  string   `json:"location"`
	Rating    float64  `json:"rating"`
	Price     float64  `json:"price"`
	Image     string   `json:"image"`
	Amenities []string `json:"amenities"`
}

type Activity struct {
	ID      int    `json:"id"`
	Type    string `json:"type"`
	Address string `json:"address"`
}

type Place struct {
	ID          int    `json:"id"`
	City        string `json:"city"`
	Country     string `json:"country"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// HotelSort names a sortable hotel field.
type HotelSort string

const (
	ByName   HotelSort = "name"
	ByRating HotelSort = "rating"
	ByPrice  HotelSort = "price"
)

// SearchHotels keeps hotels whose name contains term, case-insensitively.
// An empty term keeps everything.
func SearchHotels(hotels []Hotel, term string) []Hotel {
	if term == "" {
		return hotels
	}
	term = strings.ToLower(term)
	out := make([]Hotel, 0, len(hotels))
	for _, h := range hotels {
		if strings.Contains(strings.ToLower(h.Name), term) {
			out = append(out, h)
		}
	}
	return out
}

// SortHotels orders hotels by the given field. Unknown fields sort by name.
func SortHotels(hotels []Hotel, by HotelSort, ascending bool) []Hotel {
	out := append([]Hotel(nil), hotels...)
	less := func(a, b Hotel) bool {
		switch by {
		case ByRating:
			return a.Rating < b.Rating
		case ByPrice:
			return a.Price < b.Price
		default:
			return a.Name < b.Name
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if ascending {
			return less(out[i], out[j])
		}
		return less(out[j], out[i])
	})
	return out
}

// FilterActivities keeps activities matching the search term (against address
// or type) and, when typ is not "" or "All", exactly that type.
func FilterActivities(activities []Activity, term, typ string) []Activity {
	term = strings.ToLower(term)
	out := make([]Activity, 0, len(activities))
	for _, a := range activities {
		if term != "" &&
			!strings.Contains(strings.ToLower(a.Address), term) &&
			!strings.Contains(strings.ToLower(a.Type), term) {
			continue
		}
		if typ != "" && typ != "All" && a.Type != typ {
			continue
		}
		out = append(out, a)
	}
	return out
}

// FilterPlaces keeps places matching the search term (city or country) and
// any selected city/country filters. Empty filters keep everything.
func FilterPlaces(places []Place, term string, cities, countries []string) []Place {
	term = strings.ToLower(term)
	out := make([]Place, 0, len(places))
	for _, p := range places {
		if term != "" &&
			!strings.Contains(strings.ToLower(p.City), term) &&
			!strings.Contains(strings.ToLower(p.Country), term) {
			continue
		}
		if len(cities) > 0 && !contains(cities, p.City) {
			continue
		}
		if len(countries) > 0 && !contains(countries, p.Country) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Cities returns the distinct cities in order of first appearance.
func Cities(places []Place) []string {
	return distinct(places, func(p Place) string { return p.City })
}

// Countries returns the distinct countries in order of first appearance.
func Countries(places []Place) []string {
	return distinct(places, func(p Place) string { return p.Country })
}

func distinct(places []Place, key func(Place) string) []string {
	seen := make(map[string]bool, len(places))
	out := make([]string, 0, len(places))
	for _, p := range places {
		k := key(p)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
