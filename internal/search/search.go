// Package search implements attribute-filtered search over restaurant
// records plus preference-based recommendation and similarity scoring.
package search

import (
	"sort"
	"strings"

	"github.com/dinesim/dinesim/internal/models"
)

// Filters are the optional search criteria. Zero-value string fields and nil
// pointers mean "don't care"; a set pointer demands an exact match.
type Filters struct {
	Cuisine        string
	Location       string
	PriceRange     string
	DietaryOptions []string
	MinRating      *float64
	OutdoorSeating *bool
	PrivateDining  *bool
}

// Search returns the restaurants satisfying every present filter field.
func Search(restaurants []models.Restaurant, filters Filters) []models.Restaurant {
	var results []models.Restaurant
	for _, r := range restaurants {
		if matches(r, filters) {
			results = append(results, r)
		}
	}
	return results
}

func matches(r models.Restaurant, f Filters) bool {
	if f.Cuisine != "" && !strings.EqualFold(r.Cuisine, f.Cuisine) {
		return false
	}
	if f.Location != "" && !strings.EqualFold(r.Location, f.Location) {
		return false
	}
	if f.PriceRange != "" && r.PriceRange != f.PriceRange {
		return false
	}
	for _, want := range f.DietaryOptions {
		if !hasOption(r.DietaryOptions, want) {
			return false
		}
	}
	if f.MinRating != nil && r.Rating < *f.MinRating {
		return false
	}
	if f.OutdoorSeating != nil && r.OutdoorSeating != *f.OutdoorSeating {
		return false
	}
	if f.PrivateDining != nil && r.PrivateDining != *f.PrivateDining {
		return false
	}
	return true
}

func hasOption(options []string, want string) bool {
	for _, opt := range options {
		if strings.EqualFold(opt, want) {
			return true
		}
	}
	return false
}

// Preferences drive recommendation scoring.
type Preferences struct {
	Cuisine        string
	DietaryOptions []string
	PriceRange     string
	MinRating      *float64
}

type scoredRestaurant struct {
	restaurant models.Restaurant
	score      float64
	excluded   bool
}

// Recommend scores every restaurant against the preferences and returns the
// top matches, best first. Restaurants below the minimum rating are excluded
// outright rather than carried with a sentinel score; so are restaurants that
// end up with a non-positive score. limit <= 0 means the default of 5.
func Recommend(restaurants []models.Restaurant, prefs Preferences, limit int) []models.Restaurant {
	if limit <= 0 {
		limit = 5
	}

	scored := make([]scoredRestaurant, 0, len(restaurants))
	for _, r := range restaurants {
		candidate := scoredRestaurant{restaurant: r}

		if prefs.Cuisine != "" && strings.EqualFold(r.Cuisine, prefs.Cuisine) {
			candidate.score += 10
		}
		for _, want := range prefs.DietaryOptions {
			if hasOption(r.DietaryOptions, want) {
				candidate.score += 5
			}
		}
		if prefs.PriceRange != "" && r.PriceRange == prefs.PriceRange {
			candidate.score += 5
		}
		candidate.score += r.Rating * 2

		if prefs.MinRating != nil && r.Rating < *prefs.MinRating {
			candidate.excluded = true
		}

		if !candidate.excluded && candidate.score > 0 {
			scored = append(scored, candidate)
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}
	results := make([]models.Restaurant, len(scored))
	for i, candidate := range scored {
		results[i] = candidate.restaurant
	}
	return results
}

// Similar ranks restaurants by likeness to the target, which is itself
// excluded from the pool. Unlike Recommend there is no score floor; a
// zero-score restaurant may still appear. limit <= 0 means the default of 3.
func Similar(restaurants []models.Restaurant, target models.Restaurant, limit int) []models.Restaurant {
	if limit <= 0 {
		limit = 3
	}

	scored := make([]scoredRestaurant, 0, len(restaurants))
	for _, r := range restaurants {
		if r.ID == target.ID {
			continue
		}

		candidate := scoredRestaurant{restaurant: r}
		if r.Cuisine == target.Cuisine {
			candidate.score += 10
		}
		if r.PriceRange == target.PriceRange {
			candidate.score += 5
		}
		if r.Location == target.Location {
			candidate.score += 3
		}
		if diff := r.Rating - target.Rating; diff <= 0.5 && diff >= -0.5 {
			candidate.score += 2
		}
		candidate.score += float64(sharedOptions(r.DietaryOptions, target.DietaryOptions))

		scored = append(scored, candidate)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}
	results := make([]models.Restaurant, len(scored))
	for i, candidate := range scored {
		results[i] = candidate.restaurant
	}
	return results
}

// sharedOptions counts the case-sensitive set intersection.
func sharedOptions(a, b []string) int {
	set := make(map[string]struct{}, len(a))
	for _, opt := range a {
		set[opt] = struct{}{}
	}
	count := 0
	seen := make(map[string]struct{}, len(b))
	for _, opt := range b {
		if _, dup := seen[opt]; dup {
			continue
		}
		seen[opt] = struct{}{}
		if _, ok := set[opt]; ok {
			count++
		}
	}
	return count
}
