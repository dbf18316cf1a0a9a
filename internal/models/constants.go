package models

const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusPending   = "pending"
	BookingStatusCancelled = "cancelled"

	EventBookingConfirmed   = "booking_confirmed"
	EventBookingRejected    = "booking_rejected"
	EventAvailabilityChange = "availability_change"

	TopicRestaurants   = "restaurants"
	TopicAvailability  = "availability"
	TopicBookingEvents = "booking_events"
)

// PriceRangeOrder gives the sort position of each price symbol.
var PriceRangeOrder = map[string]int{
	"$":    1,
	"$$":   2,
	"$$$":  3,
	"$$$$": 4,
}

// PriceRangeLabels maps a price symbol to its display range.
var PriceRangeLabels = map[string]string{
	"$":    "Budget-friendly ($10-20)",
	"$$":   "Moderate ($20-40)",
	"$$$":  "Upscale ($40-70)",
	"$$$$": "Fine Dining ($70-150)",
}
