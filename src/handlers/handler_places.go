package handlers

import (
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"os"
	"strconv"
	"strings"

	"venue-finder/src/metrics"
	"venue-finder/src/query"
	"venue-finder/src/types"
)

const (
	pageSize   = 10
	nearbySize = 3
)

type HandlePlaces struct {
	Name     string
	Total    int
	Places   []types.Venue
	Page     int
	LastPage int
	PrevPage int
	NextPage int
}

type PlacesResponse struct {
	HandlePlaces
	Suggestions []query.Suggestion `json:"suggestions,omitempty"`
}

type Recommendation struct {
	Name   string        `json:"name"`
	Places []types.Venue `json:"places"`
}

// filtersFromQuery reads the advanced filter params; anything absent
// falls back to the defaults.
func filtersFromQuery(r *http.Request) types.Filters {
	filters := types.DefaultFilters()
	q := r.URL.Query()

	if city := q.Get("city"); city != "" {
		filters.City = city
	}
	if min := q.Get("min_rating"); min != "" {
		if v, err := strconv.ParseFloat(min, 64); err == nil && v >= 0 && v <= 5 {
			filters.MinRating = v
		}
	}
	switch q.Get("sort") {
	case types.SortRatingAsc, types.SortRatingDesc, types.SortNameAsc:
		filters.SortBy = q.Get("sort")
	}
	return filters
}

func handleGetPlaces(w http.ResponseWriter, r *http.Request, store types.VenueStore, indexName string) (*PlacesResponse, error) {
	pageStr := r.URL.Query().Get("page")
	if pageStr == "" {
		pageStr = "1"
	}
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		http.Error(w, "Invalid page number", http.StatusBadRequest)
		return nil, errors.New("invalid page number")
	}

	searchTerm := r.URL.Query().Get("search")
	results := query.ComputeResults(store.Venues(), store.Cities(), searchTerm, filtersFromQuery(r))
	if len(results.Displayed) == 0 {
		metrics.EmptyResultsTotal.Inc()
	}

	total := len(results.Displayed)
	lastPage := (total + pageSize - 1) / pageSize
	offset := (page - 1) * pageSize
	end := offset + pageSize
	if offset > total {
		offset = total
	}
	if end > total {
		end = total
	}

	data := &PlacesResponse{
		HandlePlaces: HandlePlaces{
			Name:     indexName,
			Places:   results.Displayed[offset:end],
			Total:    total,
			Page:     page,
			LastPage: lastPage,
		},
		Suggestions: results.Suggestions,
	}

	if page > 1 {
		data.PrevPage = page - 1
	}
	if page < lastPage {
		data.NextPage = page + 1
	}

	return data, nil
}

func HandleGetPlacesHTML(w http.ResponseWriter, r *http.Request, store types.VenueStore, tmpl *template.Template) {
	data, err := handleGetPlaces(w, r, store, "Places")
	if err != nil {
		return
	}

	if err = tmpl.Execute(w, data.HandlePlaces); err != nil {
		http.Error(w, "Error rendering template", http.StatusInternalServerError)
	}
}

// HandlePlacesAPI serves both the paginated list (/api/places/) and
// the venue detail (/api/places/{id}).
func HandlePlacesAPI(w http.ResponseWriter, r *http.Request, store types.VenueStore) {
	idStr := strings.TrimPrefix(r.URL.Path, "/api/places/")
	if idStr == "" {
		data, err := handleGetPlaces(w, r, store, "Places")
		if err != nil {
			return
		}
		writeJSON(w, data)
		return
	}

	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Location not found", http.StatusNotFound)
		return
	}
	venue, ok := store.ByID(id)
	if !ok {
		http.Error(w, "Location not found", http.StatusNotFound)
		return
	}
	writeJSON(w, venue)
}

func HandleSuggestAPI(w http.ResponseWriter, r *http.Request, store types.VenueStore) {
	term := r.URL.Query().Get("q")
	results := query.ComputeResults(store.Venues(), store.Cities(), term, types.DefaultFilters())
	writeJSON(w, map[string]interface{}{"suggestions": results.Suggestions})
}

func HandleRecommendAPI(w http.ResponseWriter, r *http.Request, store types.VenueStore) {
	latStr := r.URL.Query().Get("lat")
	lonStr := r.URL.Query().Get("lon")
	if latStr == "" || lonStr == "" {
		http.Error(w, "Missing latitude or longitude", http.StatusBadRequest)
		return
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		http.Error(w, "Invalid latitude", http.StatusBadRequest)
		return
	}

	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		http.Error(w, "Invalid longitude", http.StatusBadRequest)
		return
	}

	writeJSON(w, Recommendation{
		Name:   "Recommendation",
		Places: store.Nearby(lat, lon, nearbySize),
	})
}

func LoadTemplate(filename string) (*template.Template, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	return template.New("places").Funcs(template.FuncMap{
		"sub": func(a, b int) int { return a - b },
		"add": func(a, b int) int { return a + b },
	}).Parse(string(data))
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Error rendering JSON", http.StatusInternalServerError)
	}
}
