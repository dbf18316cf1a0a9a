package availability

import (
	"sort"

	"github.com/dinesim/dinesim/internal/models"
	"github.com/dinesim/dinesim/internal/timeutil"
)

// Check returns the table count for a single (restaurant, date, time) key
// path. ok is false when any level of the path is missing, which is distinct
// from a present slot with zero tables.
func Check(availability models.Availability, restaurantID, date, slotTime string) (int, bool) {
	dates, ok := availability[restaurantID]
	if !ok {
		return 0, false
	}
	slots, ok := dates[date]
	if !ok {
		return 0, false
	}
	tables, ok := slots[slotTime]
	return tables, ok
}

// Slots returns every slot on the given date with at least minTables free,
// sorted ascending by time of day. A missing restaurant or date yields an
// empty result.
func Slots(availability models.Availability, restaurantID, date string, minTables int) []models.TimeSlot {
	var result []models.TimeSlot
	for slotTime, tables := range availability[restaurantID][date] {
		if tables >= minTables {
			result = append(result, models.TimeSlot{Time: slotTime, AvailableTables: tables})
		}
	}
	// HH:MM is fixed width, so the lexicographic order is the time order
	sort.Slice(result, func(i, j int) bool {
		return result[i].Time < result[j].Time
	})
	return result
}

// Dates returns every date on which the restaurant has at least one slot with
// minTables or more free, sorted ascending.
func Dates(availability models.Availability, restaurantID string, minTables int) []string {
	var dates []string
	for date, slots := range availability[restaurantID] {
		for _, tables := range slots {
			if tables >= minTables {
				dates = append(dates, date)
				break
			}
		}
	}
	sort.Strings(dates)
	return dates
}

// Alternatives returns up to maxAlternatives qualifying slots on the date,
// excluding preferredTime itself, nearest to preferredTime first. Ties keep
// the earlier slot first.
func Alternatives(availability models.Availability, restaurantID, date, preferredTime string, minTables, maxAlternatives int) []models.TimeSlot {
	all := Slots(availability, restaurantID, date, minTables)

	alternatives := make([]models.TimeSlot, 0, len(all))
	for _, slot := range all {
		if slot.Time != preferredTime {
			alternatives = append(alternatives, slot)
		}
	}

	preferredMinutes := timeutil.ToMinutes(preferredTime)
	sort.SliceStable(alternatives, func(i, j int) bool {
		return abs(timeutil.ToMinutes(alternatives[i].Time)-preferredMinutes) <
			abs(timeutil.ToMinutes(alternatives[j].Time)-preferredMinutes)
	})

	if len(alternatives) > maxAlternatives {
		alternatives = alternatives[:maxAlternatives]
	}
	return alternatives
}

// CheckMultiple reports availability of a single (date, time) slot across
// restaurants, in input order. Missing key paths count as zero tables here.
func CheckMultiple(availability models.Availability, restaurantIDs []string, date, slotTime string, minTables int) []models.RestaurantCheck {
	results := make([]models.RestaurantCheck, 0, len(restaurantIDs))
	for _, restaurantID := range restaurantIDs {
		tables, _ := Check(availability, restaurantID, date, slotTime)
		results = append(results, models.RestaurantCheck{
			RestaurantID: restaurantID,
			Available:    tables >= minTables,
			Tables:       tables,
		})
	}
	return results
}

// Stats summarises every generated slot for one restaurant. A restaurant with
// no slots yields all zeroes, not an error.
func Stats(availability models.Availability, restaurantID string) models.AvailabilityStats {
	var stats models.AvailabilityStats
	for _, slots := range availability[restaurantID] {
		for _, tables := range slots {
			stats.TotalSlots++
			if tables > 0 {
				stats.AvailableSlots++
			} else {
				stats.FullyBookedSlots++
			}
		}
	}
	if stats.TotalSlots > 0 {
		stats.AvailabilityRate = float64(stats.AvailableSlots) / float64(stats.TotalSlots) * 100
	}
	return stats
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
