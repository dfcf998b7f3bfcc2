package handlers

import (
	"encoding/json"
	"net/http"

	"venue-finder/src/channel"
	"venue-finder/src/query"
	"venue-finder/src/types"
)

type exploreResponse struct {
	State   query.ExploreSnapshot `json:"state"`
	Results query.Results         `json:"results"`
}

// HandleExplore returns the explore surface: session state plus the
// venues it should display under the active search term and filters.
func HandleExplore(w http.ResponseWriter, r *http.Request, store types.VenueStore, state *query.ExploreState) {
	if term := r.URL.Query().Get("search"); term != "" || r.URL.Query().Has("search") {
		state.SetSearchTerm(term)
	}
	snap := state.Snapshot()
	writeJSON(w, exploreResponse{
		State:   snap,
		Results: query.ComputeResults(store.Venues(), store.Cities(), snap.SearchTerm, snap.Filters),
	})
}

func HandleExploreFilters(w http.ResponseWriter, r *http.Request, state *query.ExploreState) {
	var filters types.Filters
	if err := json.NewDecoder(r.Body).Decode(&filters); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	switch filters.SortBy {
	case types.SortDefault, types.SortRatingAsc, types.SortRatingDesc, types.SortNameAsc:
	default:
		http.Error(w, "Unknown sort order", http.StatusBadRequest)
		return
	}
	if filters.MinRating < 0 || filters.MinRating > 5 {
		http.Error(w, "Rating must be between 0 and 5", http.StatusBadRequest)
		return
	}
	if filters.City == "" {
		filters.City = "all"
	}
	state.ApplyFilters(filters)
	writeJSON(w, state.Snapshot())
}

func HandleExploreFocus(w http.ResponseWriter, r *http.Request, store types.VenueStore, state *query.ExploreState) {
	var req struct {
		ID int `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if _, ok := store.ByID(req.ID); !ok {
		http.Error(w, "Location not found", http.StatusNotFound)
		return
	}
	state.Focus(req.ID)
	writeJSON(w, state.Snapshot())
}

func HandleExploreToggleView(w http.ResponseWriter, r *http.Request, state *query.ExploreState) {
	mapView := state.ToggleView()
	writeJSON(w, map[string]bool{"map_view": mapView})
}

// HandleExploreConsume applies the pending mailbox action to the
// explore state and clears the slot, so the action takes effect at
// most once even with several observers.
func HandleExploreConsume(w http.ResponseWriter, r *http.Request, store types.VenueStore, state *query.ExploreState, mailbox *channel.Mailbox) {
	pending, ok := mailbox.Observe()
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	switch pending.Action.Type {
	case types.ActionNavigate:
		if _, found := store.ByID(pending.Action.LocationID); !found {
			mailbox.Clear()
			http.Error(w, "Location not found", http.StatusNotFound)
			return
		}
		state.Focus(pending.Action.LocationID)
	case types.ActionCityFilter:
		filters := state.Snapshot().Filters
		filters.City = pending.Action.City
		state.ApplyFilters(filters)
	}

	mailbox.Clear()
	writeJSON(w, map[string]interface{}{
		"applied": pending.Action,
		"state":   state.Snapshot(),
	})
}
