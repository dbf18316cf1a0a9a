// Package booking implements the booking lifecycle: request validation,
// booking construction and the copy-on-write application of a confirmed
// booking to the availability mapping.
package booking

import (
	"fmt"
	"math/rand"
	"regexp"
	"time"

	"github.com/dinesim/dinesim/internal/models"
	"github.com/dinesim/dinesim/internal/timeutil"
)

const (
	MinPartySize = 1
	MaxPartySize = 20
)

var clockPattern = regexp.MustCompile(`^\d{2}:\d{2}$`)

// Validate checks a booking request against the business rules and returns
// every violated rule, not just the first. An empty problem list means the
// request is valid.
func Validate(date, slotTime string, partySize int) (bool, []string) {
	var problems []string

	if timeutil.IsPastDate(date, time.Now()) {
		problems = append(problems, "Cannot book for a past date")
	}

	if partySize < MinPartySize {
		problems = append(problems, "Party size must be at least 1")
	}
	if partySize > MaxPartySize {
		problems = append(problems, "Party size cannot exceed 20. Please contact restaurant directly for large groups")
	}

	if !clockPattern.MatchString(slotTime) {
		problems = append(problems, "Invalid time format. Use HH:MM")
	} else if hour, minute, err := timeutil.ParseClock(slotTime); err != nil || hour >= 24 || minute >= 60 {
		problems = append(problems, "Invalid time format. Use HH:MM")
	}

	return len(problems) == 0, problems
}

// NewBookingID builds a confirmation number from the current timestamp plus
// a random suffix. Unique in practice, not formally guaranteed.
func NewBookingID() string {
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	suffix := make([]byte, 4)
	for i := range suffix {
		suffix[i] = alphabet[rand.Intn(len(alphabet))]
	}
	return fmt.Sprintf("BK%s%s", time.Now().Format("20060102150405"), suffix)
}

// Request carries the caller-supplied fields of a booking.
type Request struct {
	RestaurantID    string
	RestaurantName  string
	Date            string
	Time            string
	PartySize       int
	CustomerName    string
	CustomerPhone   string
	SpecialRequests string
}

// New assembles a confirmed booking from the request. It performs no
// validation; callers run Validate first. Construction never fails.
func New(req Request) models.Booking {
	return models.Booking{
		BookingID:       NewBookingID(),
		RestaurantID:    req.RestaurantID,
		RestaurantName:  req.RestaurantName,
		Date:            req.Date,
		Time:            req.Time,
		PartySize:       req.PartySize,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		SpecialRequests: req.SpecialRequests,
		Status:          models.BookingStatusConfirmed,
		CreatedAt:       time.Now(),
	}
}

// Apply returns a copy of the availability mapping with the target slot
// reduced by tablesBooked, floored at zero. The input mapping is never
// mutated, so the caller keeps the pre-booking state. A missing key path
// returns the copy unchanged.
func Apply(availability models.Availability, restaurantID, date, slotTime string, tablesBooked int) models.Availability {
	updated := availability.Clone()

	slots, ok := updated[restaurantID][date]
	if !ok {
		return updated
	}
	current, ok := slots[slotTime]
	if !ok {
		return updated
	}

	remaining := current - tablesBooked
	if remaining < 0 {
		remaining = 0
	}
	slots[slotTime] = remaining
	return updated
}
