package query

import (
	"sync"

	"venue-finder/src/types"
)

// ExploreState holds the explore surface session: active filters,
// search term, view mode and the focused venue. At most one of
// {focused venue, city filter} is active at a time.
type ExploreState struct {
	mu         sync.Mutex
	filters    types.Filters
	searchTerm string
	mapView    bool
	focusedID  int // -1 when nothing is focused
}

type ExploreSnapshot struct {
	Filters    types.Filters `json:"filters"`
	SearchTerm string        `json:"search_term"`
	MapView    bool          `json:"map_view"`
	FocusedID  int           `json:"focused_id"`
}

func NewExploreState() *ExploreState {
	return &ExploreState{
		filters:   types.DefaultFilters(),
		mapView:   true,
		focusedID: -1,
	}
}

func (s *ExploreState) Snapshot() ExploreSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ExploreSnapshot{
		Filters:    s.filters,
		SearchTerm: s.searchTerm,
		MapView:    s.mapView,
		FocusedID:  s.focusedID,
	}
}

// ApplyFilters replaces the filter state. Changing the city filter
// clears any focused venue.
func (s *ExploreState) ApplyFilters(f types.Filters) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if f.City != s.filters.City {
		s.focusedID = -1
	}
	s.filters = f
}

// Focus highlights a single venue and releases the city filter, so the
// highlight is never hidden by an unrelated filter.
func (s *ExploreState) Focus(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.focusedID = id
	s.filters.City = "all"
}

func (s *ExploreState) ClearFocus() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.focusedID = -1
}

func (s *ExploreState) SetSearchTerm(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchTerm = term
	s.focusedID = -1
}

func (s *ExploreState) ToggleView() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mapView = !s.mapView
	return s.mapView
}
