package booking

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dinesim/dinesim/internal/models"
	"github.com/dinesim/dinesim/internal/timeutil"
)

func TestValidateCollectsEveryViolation(t *testing.T) {
	valid, problems := Validate(timeutil.DaysFromNow(-1), "bad", 0)

	assert.False(t, valid)
	assert.Len(t, problems, 3, "past date, party size and time format all reported")
}

func TestValidatePastDate(t *testing.T) {
	valid, problems := Validate(timeutil.DaysFromNow(-1), "19:00", 4)
	assert.False(t, valid)
	assert.Contains(t, problems, "Cannot book for a past date")

	valid, problems = Validate(timeutil.Today(), "19:00", 4)
	assert.True(t, valid, "booking for today is allowed: %v", problems)
}

func TestValidatePartySizeBounds(t *testing.T) {
	tomorrow := timeutil.DaysFromNow(1)

	valid, _ := Validate(tomorrow, "19:00", 0)
	assert.False(t, valid)

	valid, problems := Validate(tomorrow, "19:00", 21)
	assert.False(t, valid)
	require.Len(t, problems, 1)
	assert.Contains(t, problems[0], "contact restaurant directly")

	valid, _ = Validate(tomorrow, "19:00", 20)
	assert.True(t, valid)
	valid, _ = Validate(tomorrow, "19:00", 1)
	assert.True(t, valid)
}

func TestValidateTimeFormat(t *testing.T) {
	tomorrow := timeutil.DaysFromNow(1)

	for _, bad := range []string{"7:00", "19:0", "1900", "19:00:00", "ab:cd", "25:00", "19:61", ""} {
		valid, problems := Validate(tomorrow, bad, 4)
		assert.False(t, valid, "time %q should be rejected", bad)
		assert.Contains(t, problems, "Invalid time format. Use HH:MM")
	}

	valid, _ := Validate(tomorrow, "07:00", 4)
	assert.True(t, valid)
	valid, _ = Validate(tomorrow, "19:00", 4)
	assert.True(t, valid)
}

func TestNewBookingID(t *testing.T) {
	pattern := regexp.MustCompile(`^BK\d{14}[A-Z0-9]{4}$`)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		id := NewBookingID()
		assert.Regexp(t, pattern, id)
		seen[id] = true
	}
	assert.Greater(t, len(seen), 1, "ids should vary across calls")
}

func TestNewAssemblesConfirmedBooking(t *testing.T) {
	before := time.Now()
	b := New(Request{
		RestaurantID:    "r1",
		RestaurantName:  "Bella Italia",
		Date:            "2026-09-10",
		Time:            "19:00",
		PartySize:       4,
		CustomerName:    "Dana Reeve",
		CustomerPhone:   "555-1234",
		SpecialRequests: "window seat",
	})

	assert.Equal(t, models.BookingStatusConfirmed, b.Status)
	assert.Equal(t, "r1", b.RestaurantID)
	assert.Equal(t, "Bella Italia", b.RestaurantName)
	assert.Equal(t, 4, b.PartySize)
	assert.Equal(t, "window seat", b.SpecialRequests)
	assert.NotEmpty(t, b.BookingID)
	assert.False(t, b.CreatedAt.Before(before))
}

func TestApplyDecrementsWithFloor(t *testing.T) {
	avail := models.Availability{
		"r1": {"2026-09-10": {"19:00": 3, "20:00": 1}},
	}

	updated := Apply(avail, "r1", "2026-09-10", "19:00", 1)
	assert.Equal(t, 2, updated["r1"]["2026-09-10"]["19:00"])

	updated = Apply(avail, "r1", "2026-09-10", "20:00", 5)
	assert.Equal(t, 0, updated["r1"]["2026-09-10"]["20:00"], "decrement floors at zero")
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	avail := models.Availability{
		"r1": {"2026-09-10": {"19:00": 3}},
	}

	updated := Apply(avail, "r1", "2026-09-10", "19:00", 2)

	assert.Equal(t, 3, avail["r1"]["2026-09-10"]["19:00"], "caller's mapping is untouched")
	assert.Equal(t, 1, updated["r1"]["2026-09-10"]["19:00"])
}

func TestApplyMissingPathIsNoOp(t *testing.T) {
	avail := models.Availability{
		"r1": {"2026-09-10": {"19:00": 3}},
	}

	for _, target := range []struct{ id, date, slot string }{
		{"r9", "2026-09-10", "19:00"},
		{"r1", "2026-09-11", "19:00"},
		{"r1", "2026-09-10", "18:00"},
	} {
		updated := Apply(avail, target.id, target.date, target.slot, 1)
		assert.Equal(t, avail, updated)
	}
}
