package types

type Coordinates struct {
	Lat  float64 `json:"lat"`
	Long float64 `json:"long"`
}

type Venue struct {
	ID               int         `json:"id"`
	Name             string      `json:"name"`
	Address          string      `json:"address"`
	Coordinates      Coordinates `json:"coordinates"`
	ImageURL         string      `json:"image_url"`
	ShortDescription string      `json:"short_description"`
	Rating           float64     `json:"rating"`
}

type City struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Long float64 `json:"lng"`
}

const (
	SortDefault    = "default"
	SortRatingAsc  = "rating_asc"
	SortRatingDesc = "rating_desc"
	SortNameAsc    = "name_asc"
)

// Filters describes the advanced filter state of the explore surface.
// City is "all" when no city filter is active.
type Filters struct {
	City      string  `json:"city"`
	MinRating float64 `json:"min_rating"`
	SortBy    string  `json:"sort_by"`
}

func DefaultFilters() Filters {
	return Filters{City: "all", MinRating: 0, SortBy: SortDefault}
}

const (
	ActionNavigate   = "navigate_to_location"
	ActionCityFilter = "apply_city_filter"
)

// StructuredAction is a typed instruction emitted by the chat surface
// for the explore surface: navigate to a venue or apply a city filter.
type StructuredAction struct {
	Type       string `json:"type"`
	LocationID int    `json:"location_id,omitempty"`
	City       string `json:"city,omitempty"`
}

type ChatMessage struct {
	ID     string            `json:"id"`
	Text   string            `json:"text"`
	Sender string            `json:"sender"`
	Action *StructuredAction `json:"action,omitempty"`
}

type VenueStore interface {
	Venues() []Venue
	Cities() []City
	ByID(id int) (Venue, bool)
	Nearby(lat, long float64, n int) []Venue
}
