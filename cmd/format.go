package cmd

import (
	"fmt"
	"strings"

	"github.com/dinesim/dinesim/internal/models"
	"github.com/dinesim/dinesim/internal/timeutil"
)

func formatRestaurant(r models.Restaurant) string {
	return strings.TrimSpace(fmt.Sprintf(`%s (%s)
Cuisine: %s
Location: %s
Price: %s
Rating: %.1f/5.0
Dietary Options: %s
Phone: %s
Address: %s
Features: %s
Popular Dishes: %s`,
		r.Name, r.ID,
		r.Cuisine,
		r.Location,
		formatPriceRange(r.PriceRange),
		r.Rating,
		strings.Join(r.DietaryOptions, ", "),
		r.Phone,
		r.Address,
		strings.Join(r.Features, ", "),
		strings.Join(r.PopularDishes, ", "),
	))
}

func formatBooking(b models.Booking) string {
	special := ""
	if b.SpecialRequests != "" {
		special = fmt.Sprintf("\nSpecial Requests: %s", b.SpecialRequests)
	}
	return strings.TrimSpace(fmt.Sprintf(`BOOKING CONFIRMATION
Confirmation Number: %s
Restaurant: %s
Date: %s (%s)
Time: %s
Party Size: %d
Name: %s
Phone: %s%s
Status: %s
Booked on: %s`,
		b.BookingID,
		b.RestaurantName,
		b.Date, timeutil.DayName(b.Date),
		b.Time,
		b.PartySize,
		b.CustomerName,
		b.CustomerPhone, special,
		strings.ToUpper(b.Status),
		b.CreatedAt.Format("2006-01-02 15:04:05"),
	))
}

func formatPriceRange(symbol string) string {
	if label, ok := models.PriceRangeLabels[symbol]; ok {
		return label
	}
	return symbol
}
