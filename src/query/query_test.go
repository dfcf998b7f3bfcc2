package query_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venue-finder/src/query"
	"venue-finder/src/types"
)

func testVenues() []types.Venue {
	return []types.Venue{
		{ID: 0, Name: "The Urbanist Coffee", Address: "Strada Academiei 12, Bucharest", Rating: 4.6},
		{ID: 1, Name: "Casa Boema", Address: "Strada Iuliu Maniu 34, Cluj-Napoca", Rating: 4.8},
		{ID: 2, Name: "Berăria 700", Address: "Piața 700, Timișoara", Rating: 4.1},
		{ID: 3, Name: "Atrium Café", Address: "Piața Mică 16, Sibiu", Rating: 4.3},
		{ID: 4, Name: "Rivo Pub", Address: "Strada Republicii 30, Oradea", Rating: 3.9},
	}
}

func testCities() []types.City {
	return []types.City{
		{Name: "București", Lat: 44.4268, Long: 26.1025},
		{Name: "Cluj-Napoca", Lat: 46.7712, Long: 23.6236},
		{Name: "Sibiu", Lat: 45.7983, Long: 24.1256},
	}
}

func TestComputeResults_DefaultsReturnFullCatalogInOrder(t *testing.T) {
	venues := testVenues()
	results := query.ComputeResults(venues, testCities(), "", types.DefaultFilters())

	require.Len(t, results.Displayed, len(venues))
	for i, v := range results.Displayed {
		assert.Equal(t, i, v.ID)
	}
	assert.Empty(t, results.Suggestions)
}

func TestComputeResults_FilterInvariants(t *testing.T) {
	filters := types.Filters{City: "Cluj-Napoca", MinRating: 4.0, SortBy: types.SortDefault}
	results := query.ComputeResults(testVenues(), testCities(), "", filters)

	require.NotEmpty(t, results.Displayed)
	for _, v := range results.Displayed {
		assert.GreaterOrEqual(t, v.Rating, 4.0)
		assert.Contains(t, strings.ToLower(v.Address), "cluj-napoca")
	}
}

func TestComputeResults_MinRatingExcludes(t *testing.T) {
	filters := types.Filters{City: "all", MinRating: 4.5, SortBy: types.SortDefault}
	results := query.ComputeResults(testVenues(), testCities(), "", filters)

	require.Len(t, results.Displayed, 2)
	for _, v := range results.Displayed {
		assert.GreaterOrEqual(t, v.Rating, 4.5)
	}
}

func TestComputeResults_SortDescIsReverseOfAsc(t *testing.T) {
	asc := query.ComputeResults(testVenues(), testCities(), "", types.Filters{City: "all", SortBy: types.SortRatingAsc})
	desc := query.ComputeResults(testVenues(), testCities(), "", types.Filters{City: "all", SortBy: types.SortRatingDesc})

	require.Equal(t, len(asc.Displayed), len(desc.Displayed))
	n := len(asc.Displayed)
	for i := 0; i < n; i++ {
		assert.Equal(t, asc.Displayed[i].ID, desc.Displayed[n-1-i].ID)
	}
}

func TestComputeResults_SortByName(t *testing.T) {
	results := query.ComputeResults(testVenues(), testCities(), "", types.Filters{City: "all", SortBy: types.SortNameAsc})

	for i := 1; i < len(results.Displayed); i++ {
		prev := strings.ToLower(results.Displayed[i-1].Name)
		cur := strings.ToLower(results.Displayed[i].Name)
		assert.LessOrEqual(t, prev, cur)
	}
}

func TestComputeResults_DoesNotMutateInput(t *testing.T) {
	venues := testVenues()
	query.ComputeResults(venues, testCities(), "", types.Filters{City: "all", SortBy: types.SortRatingDesc})

	for i, v := range venues {
		assert.Equal(t, i, v.ID, "input slice order must be preserved")
	}
}

func TestComputeResults_SuggestionsCitiesFirstAndUnfiltered(t *testing.T) {
	// "si" matches the city Sibiu and the venue "The Urbanist Coffee";
	// the rating filter must not suppress either suggestion.
	filters := types.Filters{City: "all", MinRating: 5, SortBy: types.SortDefault}
	results := query.ComputeResults(testVenues(), testCities(), "si", filters)

	assert.Empty(t, results.Displayed)
	require.NotEmpty(t, results.Suggestions)
	assert.Equal(t, "city", results.Suggestions[0].Kind)
	assert.Equal(t, "Sibiu", results.Suggestions[0].Name)

	var venueSuggestion bool
	sawCity := false
	for _, s := range results.Suggestions {
		if s.Kind == "city" {
			sawCity = true
			assert.False(t, venueSuggestion, "cities must come before venues")
		} else {
			venueSuggestion = true
		}
	}
	assert.True(t, sawCity)
}

func TestComputeResults_SearchMatchesNameOrAddress(t *testing.T) {
	byName := query.ComputeResults(testVenues(), testCities(), "boema", types.DefaultFilters())
	require.Len(t, byName.Displayed, 1)
	assert.Equal(t, "Casa Boema", byName.Displayed[0].Name)

	byAddress := query.ComputeResults(testVenues(), testCities(), "republicii", types.DefaultFilters())
	require.Len(t, byAddress.Displayed, 1)
	assert.Equal(t, "Rivo Pub", byAddress.Displayed[0].Name)
}

func TestNormalizeCity(t *testing.T) {
	assert.Equal(t, "bucharest", query.NormalizeCity("București"))
	assert.Equal(t, "bucharest", query.NormalizeCity("bucuresti"))
	assert.Equal(t, "Sibiu", query.NormalizeCity("Sibiu"))
}
