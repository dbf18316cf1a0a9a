// Package timeutil holds the date and time primitives shared by the
// availability, booking and simulation packages. Dates travel as YYYY-MM-DD
// strings and times of day as 24-hour HH:MM strings.
package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(date string) (time.Time, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return t, nil
}

// FormatDate renders a time as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Today returns today's date as YYYY-MM-DD.
func Today() string {
	return FormatDate(time.Now())
}

// DaysFromNow returns the date n days from today as YYYY-MM-DD.
func DaysFromNow(n int) string {
	return FormatDate(time.Now().AddDate(0, 0, n))
}

// IsPastDate reports whether date falls strictly before now's calendar day.
// YYYY-MM-DD is fixed width, so once the date parses the string comparison is
// the calendar comparison with no timezone involved. Unparseable dates are
// treated as past.
func IsPastDate(date string, now time.Time) bool {
	if _, err := ParseDate(date); err != nil {
		return true
	}
	return date < FormatDate(now)
}

// ParseClock splits an HH:MM string into hour and minute. It accepts any
// shape strconv can digest; callers that need the strict two-digit form
// check that separately.
func ParseClock(clock string) (hour, minute int, err error) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time %q: want HH:MM", clock)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time %q: %w", clock, err)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time %q: %w", clock, err)
	}
	return hour, minute, nil
}

// ToMinutes converts an HH:MM string to minutes since midnight. Invalid
// inputs map to 0.
func ToMinutes(clock string) int {
	hour, minute, err := ParseClock(clock)
	if err != nil {
		return 0
	}
	return hour*60 + minute
}

// SlotHour returns the hour component of an HH:MM string, -1 when invalid.
func SlotHour(clock string) int {
	hour, _, err := ParseClock(clock)
	if err != nil {
		return -1
	}
	return hour
}

// DayName returns the weekday name for a YYYY-MM-DD date.
func DayName(date string) string {
	d, err := ParseDate(date)
	if err != nil {
		return ""
	}
	return d.Weekday().String()
}

// IsWeekend reports whether a YYYY-MM-DD date is a Saturday or Sunday.
func IsWeekend(date string) bool {
	d, err := ParseDate(date)
	if err != nil {
		return false
	}
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
