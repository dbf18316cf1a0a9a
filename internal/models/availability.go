package models

// Availability maps restaurant id -> date (YYYY-MM-DD) -> time (HH:MM) ->
// available table count. Slots are created wholesale by the generator and
// only ever decremented afterwards; counts never go below zero.
type Availability map[string]RestaurantAvailability

// RestaurantAvailability maps a date to its slot counts.
type RestaurantAvailability map[string]DaySlots

// DaySlots maps a time of day to the number of free tables.
type DaySlots map[string]int

// TimeSlot pairs a time of day with its table count, as returned by the
// query layer.
type TimeSlot struct {
	Time            string `json:"time"`
	AvailableTables int    `json:"available_tables"`
}

// RestaurantCheck is one row of a multi-restaurant availability check.
type RestaurantCheck struct {
	RestaurantID string `json:"restaurant_id"`
	Available    bool   `json:"available"`
	Tables       int    `json:"tables"`
}

// AvailabilityStats summarises a single restaurant's slots over the whole
// horizon. AvailabilityRate is a percentage in [0,100].
type AvailabilityStats struct {
	TotalSlots       int     `json:"total_slots"`
	AvailableSlots   int     `json:"available_slots"`
	FullyBookedSlots int     `json:"fully_booked_slots"`
	AvailabilityRate float64 `json:"availability_rate"`
}

// Clone returns a deep copy. Mutating the copy never affects the receiver.
func (a Availability) Clone() Availability {
	out := make(Availability, len(a))
	for restaurantID, dates := range a {
		datesCopy := make(RestaurantAvailability, len(dates))
		for date, slots := range dates {
			slotsCopy := make(DaySlots, len(slots))
			for t, tables := range slots {
				slotsCopy[t] = tables
			}
			datesCopy[date] = slotsCopy
		}
		out[restaurantID] = datesCopy
	}
	return out
}
