package catalogue

import (
	"testing"
)

var hotels = []Hotel{
	{ID: 1, Name: "Seaside Inn", Rating: 4.2, Price: 120},
	{ID: 2, Name: "Grand Plaza", Rating: 4.8, Price: 300},
	{ID: 3, Name: "Budget Stop", Rating: 3.1, Price: 45},
}

func TestSearchHotels(t *testing.T) {
	got := SearchHotels(hotels, "sea")
	if len(got) != 1 || got[0].Name != "Seaside Inn" {
		t.Fatalf("search 'sea' = %+v", got)
	}
	if got := SearchHotels(hotels, ""); len(got) != 3 {
		t.Fatalf("empty term should keep all hotels, got %d", len(got))
	}
	if got := SearchHotels(hotels, "GRAND"); len(got) != 1 {
		t.Fatalf("search should be case-insensitive, got %+v", got)
	}
}

func TestSortHotels(t *testing.T) {
	byPrice := SortHotels(hotels, ByPrice, true)
	if byPrice[0].Name != "Budget Stop" || byPrice[2].Name != "Grand Plaza" {
		t.Fatalf("ascending price order wrong: %+v", byPrice)
	}
	byRatingDesc := SortHotels(hotels, ByRating, false)
	if byRatingDesc[0].Name != "Grand Plaza" {
		t.Fatalf("descending rating order wrong: %+v", byRatingDesc)
	}
	// input must not be reordered
	if hotels[0].Name != "Seaside Inn" {
		t.Fatalf("sort mutated its input: %+v", hotels)
	}
}

func TestFilterActivities(t *testing.T) {
	activities := []Activity{
		{ID: 1, Type: "Hiking", Address: "North Ridge Trail"},
		{ID: 2, Type: "Museum", Address: "Old Town Square"},
		{ID: 3, Type: "Hiking", Address: "Lakeside Loop"},
	}
	if got := FilterActivities(activities, "", "Hiking"); len(got) != 2 {
		t.Fatalf("type filter = %+v", got)
	}
	if got := FilterActivities(activities, "town", "All"); len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("term filter = %+v", got)
	}
	if got := FilterActivities(activities, "hik", ""); len(got) != 2 {
		t.Fatalf("term matches type too: %+v", got)
	}
}

func TestFilterPlaces(t *testing.T) {
	places := []Place{
		{ID: 1, City: "Lisbon", Country: "Portugal"},
		{ID: 2, City: "Porto", Country: "Portugal"},
		{ID: 3, City: "Kyoto", Country: "Japan"},
	}
	if got := FilterPlaces(places, "lis", nil, nil); len(got) != 1 || got[0].City != "Lisbon" {
		t.Fatalf("term filter = %+v", got)
	}
	if got := FilterPlaces(places, "", nil, []string{"Portugal"}); len(got) != 2 {
		t.Fatalf("country filter = %+v", got)
	}
	if got := FilterPlaces(places, "", []string{"Kyoto"}, nil); len(got) != 1 || got[0].Country != "Japan" {
		t.Fatalf("city filter = %+v", got)
	}

	if got := Cities(places); len(got) != 3 || got[0] != "Lisbon" {
		t.Fatalf("cities = %v", got)
	}
	if got := Countries(places); len(got) != 2 {
		t.Fatalf("countries = %v", got)
	}
}
