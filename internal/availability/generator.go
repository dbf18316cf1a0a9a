package availability

import (
	"time"

	"github.com/dinesim/dinesim/internal/models"
	"github.com/dinesim/dinesim/internal/timeutil"
)

// TimeSlots is the canonical reservable slot set, in time order.
var TimeSlots = []string{
	"11:30", "12:00", "12:30", "13:00", "13:30", "14:00", // lunch
	"17:00", "17:30", "18:00", "18:30", "19:00", "19:30", // early dinner
	"20:00", "20:30", "21:00", "21:30", "22:00", // late dinner
}

// Rand is the uniform random source behind the demand heuristics. *rand.Rand
// satisfies it; tests substitute a deterministic source.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Generator produces synthetic per-slot table counts over a horizon of days
// starting today.
type Generator struct {
	Rng Rand
	Now func() time.Time
}

func NewGenerator(rng Rand) *Generator {
	return &Generator{Rng: rng, Now: time.Now}
}

// Generate builds the full availability mapping for the given restaurant ids
// covering today through today+daysAhead-1.
func (g *Generator) Generate(restaurantIDs []string, daysAhead int) models.Availability {
	availability := make(models.Availability, len(restaurantIDs))
	for _, restaurantID := range restaurantIDs {
		availability[restaurantID] = g.GenerateRestaurant(daysAhead)
	}
	return availability
}

// GenerateRestaurant builds the date->slot->tables mapping for one
// restaurant. Draws are independent per slot.
func (g *Generator) GenerateRestaurant(daysAhead int) models.RestaurantAvailability {
	today := g.Now()
	dates := make(models.RestaurantAvailability, daysAhead)

	for offset := 0; offset < daysAhead; offset++ {
		date := today.AddDate(0, 0, offset)
		dates[timeutil.FormatDate(date)] = g.generateDay(date.Weekday())
	}
	return dates
}

func (g *Generator) generateDay(weekday time.Weekday) models.DaySlots {
	slots := make(models.DaySlots, len(TimeSlots))

	for _, slot := range TimeSlots {
		hour := timeutil.SlotHour(slot)
		isLunch := hour < 15
		isDinner := hour >= 17

		// some restaurants drop weekend lunch service entirely
		if isLunch && isWeekendDay(weekday) && g.Rng.Float64() < 0.3 {
			continue
		}

		tables := g.baseTables(hour, isLunch)

		// Friday and Saturday dinners book out faster
		if isDinner && (weekday == time.Friday || weekday == time.Saturday) {
			tables = max(0, tables-2)
		}

		// weekday lunch draws the office crowd
		if isLunch && weekday >= time.Monday && weekday <= time.Friday {
			tables = max(0, tables-1)
		}

		// peak slots sometimes sell out outright
		if (hour == 19 || hour == 20) && g.Rng.Float64() < 0.2 {
			tables = 0
		}

		slots[slot] = tables
	}
	return slots
}

// baseTables draws the starting count from the slot's popularity band.
func (g *Generator) baseTables(hour int, isLunch bool) int {
	switch {
	case hour == 19 || hour == 20:
		return g.intBetween(0, 2)
	case hour == 18 || hour == 21:
		return g.intBetween(0, 4)
	case isLunch:
		return g.intBetween(2, 7)
	default:
		return g.intBetween(1, 8)
	}
}

// intBetween draws uniformly from [lo, hi] inclusive.
func (g *Generator) intBetween(lo, hi int) int {
	return lo + g.Rng.Intn(hi-lo+1)
}

func isWeekendDay(weekday time.Weekday) bool {
	return weekday == time.Saturday || weekday == time.Sunday
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
