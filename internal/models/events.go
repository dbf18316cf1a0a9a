package models

import "sort"

// SlotRecord is one flattened availability row, the shape every output sink
// consumes.
type SlotRecord struct {
	RestaurantID    string `json:"restaurant_id"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	AvailableTables int    `json:"available_tables"`
}

// FlattenAvailability turns the nested mapping into sorted slot rows
// (restaurant, then date, then time ascending).
func FlattenAvailability(availability Availability) []SlotRecord {
	var records []SlotRecord
	for restaurantID, dates := range availability {
		for date, slots := range dates {
			for slotTime, tables := range slots {
				records = append(records, SlotRecord{
					RestaurantID:    restaurantID,
					Date:            date,
					Time:            slotTime,
					AvailableTables: tables,
				})
			}
		}
	}
	sort.Slice(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if a.RestaurantID != b.RestaurantID {
			return a.RestaurantID < b.RestaurantID
		}
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		return a.Time < b.Time
	})
	return records
}

// BookingEvent is emitted to the booking_events topic for every simulated
// booking attempt.
type BookingEvent struct {
	EventID         string   `json:"event_id"`
	EventType       string   `json:"event_type"`
	Timestamp       int64    `json:"timestamp"`
	RestaurantID    string   `json:"restaurant_id"`
	Date            string   `json:"date"`
	Time            string   `json:"time"`
	PartySize       int      `json:"party_size"`
	BookingID       string   `json:"booking_id,omitempty"`
	TablesRemaining int      `json:"tables_remaining"`
	Problems        []string `json:"problems,omitempty"`
	Booking         *Booking `json:"booking,omitempty"`
}
