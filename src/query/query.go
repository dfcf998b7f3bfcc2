package query

import (
	"sort"
	"strings"

	"venue-finder/src/types"
)

// Suggestion is a search dropdown entry: a matching city or venue.
type Suggestion struct {
	Kind    string  `json:"kind"` // "city" or "venue"
	Name    string  `json:"name"`
	VenueID int     `json:"venue_id,omitempty"`
	Lat     float64 `json:"lat,omitempty"`
	Long    float64 `json:"long,omitempty"`
}

type Results struct {
	Displayed   []types.Venue `json:"displayed"`
	Suggestions []Suggestion  `json:"suggestions"`
}

// NormalizeCity maps locale-specific city spellings to the form used in
// venue addresses. The dataset stores the capital as "Bucharest".
func NormalizeCity(city string) string {
	if strings.EqualFold(city, "bucurești") || strings.EqualFold(city, "bucuresti") {
		return "bucharest"
	}
	return city
}

// ComputeResults derives the venues to display and the search
// suggestions from the catalog, a free-text search term and the active
// filters. It is a pure function: the input slices are never mutated,
// and suggestions ignore the advanced filters.
func ComputeResults(venues []types.Venue, cities []types.City, searchTerm string, filters types.Filters) Results {
	term := strings.ToLower(strings.TrimSpace(searchTerm))

	displayed := make([]types.Venue, 0, len(venues))
	for _, v := range venues {
		if term != "" &&
			!strings.Contains(strings.ToLower(v.Name), term) &&
			!strings.Contains(strings.ToLower(v.Address), term) {
			continue
		}
		if filters.City != "" && filters.City != "all" {
			city := strings.ToLower(NormalizeCity(filters.City))
			if !strings.Contains(strings.ToLower(v.Address), city) {
				continue
			}
		}
		if v.Rating < filters.MinRating {
			continue
		}
		displayed = append(displayed, v)
	}

	sortVenues(displayed, filters.SortBy)

	return Results{
		Displayed:   displayed,
		Suggestions: suggestions(venues, cities, term),
	}
}

// suggestions matches the unfiltered catalog: cities first, then venues.
func suggestions(venues []types.Venue, cities []types.City, term string) []Suggestion {
	if term == "" {
		return nil
	}

	var out []Suggestion
	for _, c := range cities {
		if strings.Contains(strings.ToLower(c.Name), term) {
			out = append(out, Suggestion{Kind: "city", Name: c.Name, Lat: c.Lat, Long: c.Long})
		}
	}
	for _, v := range venues {
		if strings.Contains(strings.ToLower(v.Name), term) ||
			strings.Contains(strings.ToLower(v.Address), term) {
			out = append(out, Suggestion{
				Kind:    "venue",
				Name:    v.Name,
				VenueID: v.ID,
				Lat:     v.Coordinates.Lat,
				Long:    v.Coordinates.Long,
			})
		}
	}
	return out
}

func sortVenues(venues []types.Venue, sortBy string) {
	switch sortBy {
	case types.SortRatingAsc:
		sort.SliceStable(venues, func(i, j int) bool { return venues[i].Rating < venues[j].Rating })
	case types.SortRatingDesc:
		sort.SliceStable(venues, func(i, j int) bool { return venues[i].Rating > venues[j].Rating })
	case types.SortNameAsc:
		sort.SliceStable(venues, func(i, j int) bool {
			return strings.ToLower(venues[i].Name) < strings.ToLower(venues[j].Name)
		})
	}
}
