package catalog

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sort"

	"venue-finder/src/types"
)

// jsonVenue is the on-disk shape; ids are assigned from dataset position.
type jsonVenue struct {
	Name             string            `json:"name"`
	Address          string            `json:"address"`
	Coordinates      types.Coordinates `json:"coordinates"`
	ImageURL         string            `json:"image_url"`
	ShortDescription string            `json:"short_description"`
	Rating           float64           `json:"rating"`
}

type Catalog struct {
	venues []types.Venue
	cities []types.City
}

// Load reads the bundled venue and city datasets once. The venue id is
// the position in the source list, stable for a given dataset load.
func Load(venuesPath, citiesPath string) (*Catalog, error) {
	venuesRaw, err := os.ReadFile(venuesPath)
	if err != nil {
		return nil, fmt.Errorf("read venues: %w", err)
	}

	var raw []jsonVenue
	if err := json.Unmarshal(venuesRaw, &raw); err != nil {
		return nil, fmt.Errorf("parse venues: %w", err)
	}

	citiesRaw, err := os.ReadFile(citiesPath)
	if err != nil {
		return nil, fmt.Errorf("read cities: %w", err)
	}

	var cities []types.City
	if err := json.Unmarshal(citiesRaw, &cities); err != nil {
		return nil, fmt.Errorf("parse cities: %w", err)
	}

	venues := make([]types.Venue, 0, len(raw))
	for i, v := range raw {
		venues = append(venues, types.Venue{
			ID:               i,
			Name:             v.Name,
			Address:          v.Address,
			Coordinates:      v.Coordinates,
			ImageURL:         v.ImageURL,
			ShortDescription: v.ShortDescription,
			Rating:           v.Rating,
		})
	}

	return &Catalog{venues: venues, cities: cities}, nil
}

// Venues returns the full catalog in dataset order. Callers must treat
// the slice as read-only; copy before sorting.
func (c *Catalog) Venues() []types.Venue {
	return c.venues
}

func (c *Catalog) Cities() []types.City {
	return c.cities
}

func (c *Catalog) CityNames() []string {
	names := make([]string, 0, len(c.cities))
	for _, city := range c.cities {
		names = append(names, city.Name)
	}
	return names
}

// ByID looks up a venue by its dataset position. An out-of-range id is
// "not found", never a panic.
func (c *Catalog) ByID(id int) (types.Venue, bool) {
	if id < 0 || id >= len(c.venues) {
		return types.Venue{}, false
	}
	return c.venues[id], true
}

// Nearby returns the n venues closest to the given point.
func (c *Catalog) Nearby(lat, long float64, n int) []types.Venue {
	venues := make([]types.Venue, len(c.venues))
	copy(venues, c.venues)

	sort.SliceStable(venues, func(i, j int) bool {
		di := haversineKm(lat, long, venues[i].Coordinates.Lat, venues[i].Coordinates.Long)
		dj := haversineKm(lat, long, venues[j].Coordinates.Lat, venues[j].Coordinates.Long)
		return di < dj
	})

	if n > len(venues) {
		n = len(venues)
	}
	return venues[:n]
}

const earthRadiusKm = 6371.0

func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}
