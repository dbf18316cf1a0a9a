package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dinesim/dinesim/internal/models"
)

func TestRestaurantsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "restaurants.json")

	restaurants := []models.Restaurant{
		{
			ID: "r1", Name: "Bella Italia", Cuisine: "Italian", Location: "Downtown",
			PriceRange: "$$$", Rating: 4.3,
			DietaryOptions: []string{"vegetarian"},
			Hours:          models.Hours{Lunch: "11:30am-2:30pm", Dinner: "5:00pm-10:00pm"},
		},
	}

	require.NoError(t, SaveRestaurants(path, restaurants))

	loaded, err := LoadRestaurants(path)
	require.NoError(t, err)
	assert.Equal(t, restaurants, loaded)
}

func TestAvailabilityRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "availability.json")

	availability := models.Availability{
		"r1": {
			"2026-09-10": {"11:30": 4, "19:00": 0},
			"2026-09-11": {"18:00": 2},
		},
	}

	require.NoError(t, SaveAvailability(path, availability))

	loaded, err := LoadAvailability(path)
	require.NoError(t, err)
	assert.Equal(t, availability, loaded)
}

func TestLoadMissingFileFails(t *testing.T) {
	_, err := LoadRestaurants(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)

	_, err = LoadAvailability(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
