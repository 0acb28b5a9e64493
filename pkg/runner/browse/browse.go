// Package browse provides the runner logic for catalogue listings: hotels,
// activities, and places fetched from the backend, filtered and sorted
// locally.
package browse

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/trek/pkg/catalogue"
	"tableflip.dev/trek/pkg/printers"
)

// Hotels lists hotels, optionally filtered by a search term and sorted.
type Hotels struct {
	Search     string
	SortBy     catalogue.HotelSort
	Descending bool

	Client *catalogue.Client
}

func (n *Hotels) Do(ctx context.Context) error {
	if n.Client == nil {
		return errors.New("can not browse, no catalogue client")
	}
	hotels, err := n.Client.Hotels(ctx)
	if err != nil {
		return err
	}
	hotels = catalogue.SearchHotels(hotels, n.Search)
	hotels = catalogue.SortHotels(hotels, n.SortBy, !n.Descending)
	printers.Hotels(hotels)
	return nil
}

// Activities lists activities, optionally filtered by term and type.
type Activities struct {
	Search string
	Type   string

	Client *catalogue.Client
}

func (n *Activities) Do(ctx context.Context) error {
	if n.Client == nil {
		return errors.New("can not browse, no catalogue client")
	}
	activities, err := n.Client.Activities(ctx)
	if err != nil {
		return err
	}
	printers.Activities(catalogue.FilterActivities(activities, n.Search, n.Type))
	return nil
}

// Places lists places with the owner's favorites marked.
type Places struct {
	Search    string
	Cities    []string
	Countries []string
	Owner     string

	Client    *catalogue.Client
	Favorites *catalogue.Favorites
}

func (n *Places) Do(ctx context.Context) error {
	if n.Client == nil {
		return errors.New("can not browse, no catalogue client")
	}
	places, err := n.Client.Places(ctx)
	if err != nil {
		return err
	}
	places = catalogue.FilterPlaces(places, n.Search, n.Cities, n.Countries)

	var favorites []catalogue.Place
	if n.Favorites != nil && n.Owner != "" {
		if favorites, err = n.Favorites.List(n.Owner); err != nil {
			return err
		}
	}
	printers.Places(places, favorites)
	return nil
}

// Favorite toggles a place in the owner's favorites by place id.
type Favorite struct {
	Owner   string
	PlaceID int

	Client    *catalogue.Client
	Favorites *catalogue.Favorites
}

func (n *Favorite) Do(ctx context.Context) error {
	if n.Client == nil || n.Favorites == nil {
		return errors.New("can not favorite, no catalogue client")
	}
	places, err := n.Client.Places(ctx)
	if err != nil {
		return err
	}
	for _, p := range places {
		if p.ID == n.PlaceID {
			added, err := n.Favorites.Toggle(n.Owner, p)
			if err != nil {
				return err
			}
			if added {
				fmt.Printf("Added %s to favorites\n", p.City)
			} else {
				fmt.Printf("Removed %s from favorites\n", p.City)
			}
			return nil
		}
	}
	return fmt.Errorf("browse: no place with id %d", n.PlaceID)
}
