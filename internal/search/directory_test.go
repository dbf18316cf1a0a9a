package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetByID(t *testing.T) {
	restaurants := sampleRestaurants()

	r, ok := GetByID(restaurants, "r2")
	require.True(t, ok)
	assert.Equal(t, "Bella Roma", r.Name)

	_, ok = GetByID(restaurants, "r9")
	assert.False(t, ok)
}

func TestByCuisineAndLocationAreCaseInsensitive(t *testing.T) {
	restaurants := sampleRestaurants()

	assert.Len(t, ByCuisine(restaurants, "ITALIAN"), 2)
	assert.Len(t, ByLocation(restaurants, "downtown"), 2)
	assert.Empty(t, ByCuisine(restaurants, "Thai"))
}

func TestSortByRating(t *testing.T) {
	restaurants := sampleRestaurants()

	sorted := SortByRating(restaurants, true)
	assert.Equal(t, "r2", sorted[0].ID)
	assert.Equal(t, "r1", sorted[2].ID)

	ascending := SortByRating(restaurants, false)
	assert.Equal(t, "r1", ascending[0].ID)

	assert.Equal(t, "r1", restaurants[0].ID, "input order is preserved")
}

func TestSortByPrice(t *testing.T) {
	sorted := SortByPrice(sampleRestaurants())
	assert.Equal(t, "$$", sorted[0].PriceRange)
	assert.Equal(t, "$$$", sorted[1].PriceRange)
}

func TestStats(t *testing.T) {
	stats := Stats(sampleRestaurants())

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.ByCuisine["Italian"])
	assert.Equal(t, 2, stats.ByLocation["Downtown"])
	assert.Equal(t, 2, stats.ByPriceRange["$$$"])
	assert.InDelta(t, (4.2+4.7+4.5)/3, stats.AverageRating, 0.001)
}

func TestStatsEmptyDirectory(t *testing.T) {
	stats := Stats(nil)
	assert.Zero(t, stats.Total)
	assert.Zero(t, stats.AverageRating)
}
