package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"venue-finder/src/query"
	"venue-finder/src/types"
)

func TestExploreState_Defaults(t *testing.T) {
	state := query.NewExploreState()
	snap := state.Snapshot()

	assert.Equal(t, types.DefaultFilters(), snap.Filters)
	assert.True(t, snap.MapView)
	assert.Equal(t, -1, snap.FocusedID)
}

func TestExploreState_CityFilterClearsFocus(t *testing.T) {
	state := query.NewExploreState()
	state.Focus(3)
	assert.Equal(t, 3, state.Snapshot().FocusedID)

	filters := types.DefaultFilters()
	filters.City = "Cluj-Napoca"
	state.ApplyFilters(filters)

	snap := state.Snapshot()
	assert.Equal(t, "Cluj-Napoca", snap.Filters.City)
	assert.Equal(t, -1, snap.FocusedID, "focused venue must be unset after a city filter")
}

func TestExploreState_FocusClearsCityFilter(t *testing.T) {
	state := query.NewExploreState()
	filters := types.DefaultFilters()
	filters.City = "Sibiu"
	state.ApplyFilters(filters)

	state.Focus(1)

	snap := state.Snapshot()
	assert.Equal(t, 1, snap.FocusedID)
	assert.Equal(t, "all", snap.Filters.City)
}

func TestExploreState_SameCityKeepsFocus(t *testing.T) {
	state := query.NewExploreState()
	state.Focus(2)

	// Re-applying filters without changing the city (e.g. a rating
	// change) must not drop the highlight.
	filters := types.DefaultFilters()
	filters.MinRating = 4
	state.ApplyFilters(filters)

	assert.Equal(t, 2, state.Snapshot().FocusedID)
}

func TestExploreState_SearchResetsFocus(t *testing.T) {
	state := query.NewExploreState()
	state.Focus(4)
	state.SetSearchTerm("boema")

	snap := state.Snapshot()
	assert.Equal(t, "boema", snap.SearchTerm)
	assert.Equal(t, -1, snap.FocusedID)
}

func TestExploreState_ToggleView(t *testing.T) {
	state := query.NewExploreState()
	assert.False(t, state.ToggleView())
	assert.True(t, state.ToggleView())
}
