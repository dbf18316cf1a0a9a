package availability

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dinesim/dinesim/internal/timeutil"
)

// stubRand replays fixed values so the demand arithmetic can be asserted
// independent of the probabilistic skip and sellout steps.
type stubRand struct {
	float float64
	ints  []int
	i     int
}

func (s *stubRand) Float64() float64 { return s.float }

func (s *stubRand) Intn(n int) int {
	v := s.ints[s.i%len(s.ints)]
	s.i++
	return v % n
}

func generatorAt(rng Rand, date time.Time) *Generator {
	g := NewGenerator(rng)
	g.Now = func() time.Time { return date }
	return g
}

func TestGenerateFridayDinnerAdjustment(t *testing.T) {
	friday := time.Date(2026, 9, 4, 10, 0, 0, 0, time.UTC)
	require.Equal(t, time.Friday, friday.Weekday())

	// Float64=1.0 disables both the lunch skip and the peak sellout;
	// Intn always yields 3%n
	g := generatorAt(&stubRand{float: 1.0, ints: []int{3}}, friday)
	days := g.GenerateRestaurant(1)

	slots := days[timeutil.FormatDate(friday)]
	require.Len(t, slots, len(TimeSlots))

	// base draw for 18:00 is Intn(5)=3, minus the weekend dinner adjustment
	assert.Equal(t, 1, slots["18:00"])
	// 19:00 draws Intn(3)=0 and floors at 0 after the adjustment
	assert.Equal(t, 0, slots["19:00"])
	// lunch on a weekday: 2+Intn(6)=5, minus the weekday lunch adjustment
	assert.Equal(t, 4, slots["11:30"])
	// off-peak dinner gets no Friday adjustment below zero: 1+Intn(8)=4, -2
	assert.Equal(t, 2, slots["17:00"])
}

func TestGenerateMondayHasNoWeekendAdjustment(t *testing.T) {
	monday := time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC)
	require.Equal(t, time.Monday, monday.Weekday())

	g := generatorAt(&stubRand{float: 1.0, ints: []int{4}}, monday)
	slots := g.GenerateRestaurant(1)[timeutil.FormatDate(monday)]

	assert.Equal(t, 4, slots["18:00"], "popular dinner keeps its base draw")
	assert.Equal(t, 5, slots["12:00"], "weekday lunch drops exactly one table")
	assert.Equal(t, 1, slots["19:00"], "peak base draw Intn(3)=1 survives without sellout")
}

func TestGenerateWeekendSkipsLunchAndSellsOutPeaks(t *testing.T) {
	saturday := time.Date(2026, 9, 5, 10, 0, 0, 0, time.UTC)
	require.Equal(t, time.Saturday, saturday.Weekday())

	// Float64=0.0 always triggers the lunch skip and the peak sellout
	g := generatorAt(&stubRand{float: 0.0, ints: []int{5}}, saturday)
	slots := g.GenerateRestaurant(1)[timeutil.FormatDate(saturday)]

	for _, lunch := range []string{"11:30", "12:00", "12:30", "13:00", "13:30", "14:00"} {
		_, present := slots[lunch]
		assert.False(t, present, "lunch slot %s should be absent, not zero", lunch)
	}
	assert.Equal(t, 0, slots["19:00"])
	assert.Equal(t, 0, slots["20:00"])
	assert.Len(t, slots, 11)
}

func TestGenerateSingleRestaurantSingleDay(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(7)))
	availability := g.Generate([]string{"r1"}, 1)

	require.Len(t, availability, 1)
	dates, ok := availability["r1"]
	require.True(t, ok)
	require.Len(t, dates, 1)

	slots, ok := dates[timeutil.Today()]
	require.True(t, ok)

	canonical := make(map[string]bool, len(TimeSlots))
	for _, slot := range TimeSlots {
		canonical[slot] = true
	}
	for slotTime := range slots {
		assert.True(t, canonical[slotTime], "unexpected slot %s", slotTime)
	}
}

func TestGeneratedCountsAreNeverNegative(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(42)))
	availability := g.Generate([]string{"r1", "r2", "r3"}, 14)

	for restaurantID, dates := range availability {
		assert.Len(t, dates, 14)
		for _, slots := range dates {
			for slotTime, tables := range slots {
				assert.GreaterOrEqual(t, tables, 0,
					"%s %s has a negative count", restaurantID, slotTime)
			}
		}
	}
}
