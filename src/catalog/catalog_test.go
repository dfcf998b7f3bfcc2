package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venue-finder/src/catalog"
)

const venuesJSON = `[
  {"name": "Casa Boema", "address": "Strada Iuliu Maniu 34, Cluj-Napoca",
   "coordinates": {"lat": 46.7689, "long": 23.5899},
   "image_url": "https://images.example.com/boema.jpg",
   "short_description": "cafea de specialitate", "rating": 4.8},
  {"name": "Trattoria Il Forno", "address": "Bulevardul Unirii 22, Bucharest",
   "coordinates": {"lat": 44.4275, "long": 26.1031},
   "image_url": "https://images.example.com/ilforno.jpg",
   "short_description": "pizza napoletană", "rating": 4.4},
  {"name": "Pescăresc Tomis", "address": "Portul Tomis 1, Constanța",
   "coordinates": {"lat": 44.1733, "long": 28.6609},
   "image_url": "https://images.example.com/tomis.jpg",
   "short_description": "seafood proaspăt", "rating": 4.4}
]`

const citiesJSON = `[
  {"name": "București", "lat": 44.4268, "lng": 26.1025},
  {"name": "Cluj-Napoca", "lat": 46.7712, "lng": 23.6236}
]`

func writeDataset(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	venuesPath := filepath.Join(dir, "locations.json")
	citiesPath := filepath.Join(dir, "cities.json")
	require.NoError(t, os.WriteFile(venuesPath, []byte(venuesJSON), 0o644))
	require.NoError(t, os.WriteFile(citiesPath, []byte(citiesJSON), 0o644))
	return venuesPath, citiesPath
}

func TestLoad_AssignsIDsByPosition(t *testing.T) {
	venuesPath, citiesPath := writeDataset(t)
	store, err := catalog.Load(venuesPath, citiesPath)
	require.NoError(t, err)

	venues := store.Venues()
	require.Len(t, venues, 3)
	for i, v := range venues {
		assert.Equal(t, i, v.ID)
	}
	assert.Equal(t, "Casa Boema", venues[0].Name)
	assert.Len(t, store.Cities(), 2)
	assert.Equal(t, []string{"București", "Cluj-Napoca"}, store.CityNames())
}

func TestLoad_MissingFile(t *testing.T) {
	_, citiesPath := writeDataset(t)
	_, err := catalog.Load(filepath.Join(t.TempDir(), "missing.json"), citiesPath)
	assert.Error(t, err)
}

func TestLoad_MalformedJSON(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o644))
	_, citiesPath := writeDataset(t)

	_, err := catalog.Load(bad, citiesPath)
	assert.Error(t, err)
}

func TestByID(t *testing.T) {
	venuesPath, citiesPath := writeDataset(t)
	store, err := catalog.Load(venuesPath, citiesPath)
	require.NoError(t, err)

	v, ok := store.ByID(1)
	require.True(t, ok)
	assert.Equal(t, "Trattoria Il Forno", v.Name)

	_, ok = store.ByID(-1)
	assert.False(t, ok)
	_, ok = store.ByID(3)
	assert.False(t, ok)
}

func TestNearby_OrdersByDistance(t *testing.T) {
	venuesPath, citiesPath := writeDataset(t)
	store, err := catalog.Load(venuesPath, citiesPath)
	require.NoError(t, err)

	// from central Bucharest the trattoria is closest, the Cluj cafe
	// farthest
	nearby := store.Nearby(44.4268, 26.1025, 3)
	require.Len(t, nearby, 3)
	assert.Equal(t, "Trattoria Il Forno", nearby[0].Name)
	assert.Equal(t, "Pescăresc Tomis", nearby[1].Name)
	assert.Equal(t, "Casa Boema", nearby[2].Name)
}

func TestNearby_ClampsCount(t *testing.T) {
	venuesPath, citiesPath := writeDataset(t)
	store, err := catalog.Load(venuesPath, citiesPath)
	require.NoError(t, err)

	assert.Len(t, store.Nearby(44.4268, 26.1025, 10), 3)
}
