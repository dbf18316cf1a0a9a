package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dinesim/dinesim/internal/models"
)

func boolPtr(b bool) *bool        { return &b }
func floatPtr(f float64) *float64 { return &f }

func sampleRestaurants() []models.Restaurant {
	return []models.Restaurant{
		{
			ID: "r1", Name: "Bella Italia", Cuisine: "Italian", Location: "Downtown",
			PriceRange: "$$$", Rating: 4.2,
			DietaryOptions: []string{"vegetarian", "gluten-free"},
			OutdoorSeating: true, PrivateDining: true,
		},
		{
			ID: "r2", Name: "Bella Roma", Cuisine: "Italian", Location: "Midtown",
			PriceRange: "$$$", Rating: 4.7,
			DietaryOptions: []string{"vegetarian", "vegan"},
			OutdoorSeating: false, PrivateDining: true,
		},
		{
			ID: "r3", Name: "Sakura Sushi", Cuisine: "Japanese", Location: "Downtown",
			PriceRange: "$$", Rating: 4.5,
			DietaryOptions: []string{"gluten-free"},
			OutdoorSeating: true, PrivateDining: false,
		},
	}
}

func TestSearchMatchesAllPresentFilters(t *testing.T) {
	restaurants := sampleRestaurants()

	results := Search(restaurants, Filters{Cuisine: "italian", Location: "downtown"})
	require.Len(t, results, 1)
	assert.Equal(t, "r1", results[0].ID)

	results = Search(restaurants, Filters{Cuisine: "Italian"})
	assert.Len(t, results, 2)

	assert.Empty(t, Search(restaurants, Filters{Cuisine: "Italian", PriceRange: "$"}))
}

func TestSearchDietaryOptionsAreSupersetMatch(t *testing.T) {
	restaurants := sampleRestaurants()

	results := Search(restaurants, Filters{DietaryOptions: []string{"Vegetarian", "VEGAN"}})
	require.Len(t, results, 1)
	assert.Equal(t, "r2", results[0].ID)
}

func TestSearchBooleanFiltersDistinguishUnsetFromFalse(t *testing.T) {
	restaurants := sampleRestaurants()

	assert.Len(t, Search(restaurants, Filters{}), 3, "no filters matches everything")

	results := Search(restaurants, Filters{OutdoorSeating: boolPtr(false)})
	require.Len(t, results, 1)
	assert.Equal(t, "r2", results[0].ID)

	results = Search(restaurants, Filters{OutdoorSeating: boolPtr(true), PrivateDining: boolPtr(true)})
	require.Len(t, results, 1)
	assert.Equal(t, "r1", results[0].ID)
}

func TestSearchMinRatingIsInclusive(t *testing.T) {
	results := Search(sampleRestaurants(), Filters{MinRating: floatPtr(4.5)})
	require.Len(t, results, 2)
	assert.Equal(t, "r2", results[0].ID)
	assert.Equal(t, "r3", results[1].ID)
}

func TestRecommendExcludesBelowMinRating(t *testing.T) {
	results := Recommend(sampleRestaurants(), Preferences{
		Cuisine:   "Italian",
		MinRating: floatPtr(4.5),
	}, 5)

	require.Len(t, results, 2)
	assert.Equal(t, "r2", results[0].ID, "the 4.7 Italian outranks everything")
	assert.Equal(t, "r3", results[1].ID)

	for _, r := range results {
		assert.NotEqual(t, "r1", r.ID, "the 4.2 Italian is excluded, not just ranked low")
	}
}

func TestRecommendScoring(t *testing.T) {
	// cuisine +10, one dietary match +5, price +5, rating*2
	results := Recommend(sampleRestaurants(), Preferences{
		Cuisine:        "italian",
		DietaryOptions: []string{"vegan"},
		PriceRange:     "$$$",
	}, 5)

	require.Len(t, results, 3)
	// r2: 10+5+5+9.4=29.4, r1: 10+0+5+8.4=23.4, r3: 0+0+0+9.0=9.0
	assert.Equal(t, []string{"r2", "r1", "r3"}, []string{results[0].ID, results[1].ID, results[2].ID})
}

func TestRecommendDefaultAndExplicitLimit(t *testing.T) {
	results := Recommend(sampleRestaurants(), Preferences{}, 1)
	require.Len(t, results, 1)
	assert.Equal(t, "r2", results[0].ID, "highest rating wins on rating-only scoring")

	assert.Len(t, Recommend(sampleRestaurants(), Preferences{}, 0), 3,
		"zero limit falls back to the default of 5, capped by pool size")
}

func TestSimilarExcludesTargetAndKeepsZeroScores(t *testing.T) {
	restaurants := sampleRestaurants()
	target := restaurants[0]

	results := Similar(restaurants, target, 5)
	require.Len(t, results, 2)
	for _, r := range results {
		assert.NotEqual(t, target.ID, r.ID)
	}

	// r2: same cuisine +10, same price +5, rating within 0.5 +2, shared
	// "vegetarian" +1 = 18; r3: rating within 0.5 +2, shared "gluten-free"
	// +1, same location +3 = 6
	assert.Equal(t, "r2", results[0].ID)
	assert.Equal(t, "r3", results[1].ID)
}

func TestSimilarLimit(t *testing.T) {
	results := Similar(sampleRestaurants(), sampleRestaurants()[0], 1)
	assert.Len(t, results, 1)
}
