package search

import (
	"sort"
	"strings"

	"github.com/dinesim/dinesim/internal/models"
)

// GetByID finds a restaurant by id.
func GetByID(restaurants []models.Restaurant, restaurantID string) (models.Restaurant, bool) {
	for _, r := range restaurants {
		if r.ID == restaurantID {
			return r, true
		}
	}
	return models.Restaurant{}, false
}

// ByCuisine returns restaurants of the given cuisine, case-insensitively.
func ByCuisine(restaurants []models.Restaurant, cuisine string) []models.Restaurant {
	var results []models.Restaurant
	for _, r := range restaurants {
		if strings.EqualFold(r.Cuisine, cuisine) {
			results = append(results, r)
		}
	}
	return results
}

// ByLocation returns restaurants in the given location, case-insensitively.
func ByLocation(restaurants []models.Restaurant, location string) []models.Restaurant {
	var results []models.Restaurant
	for _, r := range restaurants {
		if strings.EqualFold(r.Location, location) {
			results = append(results, r)
		}
	}
	return results
}

// SortByRating returns a copy sorted by rating, best first when descending.
func SortByRating(restaurants []models.Restaurant, descending bool) []models.Restaurant {
	sorted := append([]models.Restaurant(nil), restaurants...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if descending {
			return sorted[i].Rating > sorted[j].Rating
		}
		return sorted[i].Rating < sorted[j].Rating
	})
	return sorted
}

// SortByPrice returns a copy sorted cheapest first. Unknown price symbols
// sort with the moderate tier.
func SortByPrice(restaurants []models.Restaurant) []models.Restaurant {
	sorted := append([]models.Restaurant(nil), restaurants...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return priceOrder(sorted[i].PriceRange) < priceOrder(sorted[j].PriceRange)
	})
	return sorted
}

func priceOrder(symbol string) int {
	if order, ok := models.PriceRangeOrder[symbol]; ok {
		return order
	}
	return models.PriceRangeOrder["$$"]
}

// DirectoryStats summarises the whole directory.
type DirectoryStats struct {
	Total         int            `json:"total"`
	ByCuisine     map[string]int `json:"by_cuisine"`
	ByLocation    map[string]int `json:"by_location"`
	ByPriceRange  map[string]int `json:"by_price_range"`
	AverageRating float64        `json:"average_rating"`
}

// Stats counts restaurants by cuisine, location and price tier.
func Stats(restaurants []models.Restaurant) DirectoryStats {
	stats := DirectoryStats{
		Total:        len(restaurants),
		ByCuisine:    make(map[string]int),
		ByLocation:   make(map[string]int),
		ByPriceRange: make(map[string]int),
	}

	var totalRating float64
	for _, r := range restaurants {
		stats.ByCuisine[r.Cuisine]++
		stats.ByLocation[r.Location]++
		stats.ByPriceRange[r.PriceRange]++
		totalRating += r.Rating
	}
	if len(restaurants) > 0 {
		stats.AverageRating = totalRating / float64(len(restaurants))
	}
	return stats
}
