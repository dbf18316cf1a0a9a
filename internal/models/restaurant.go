package models

// Restaurant is an immutable directory record. Records are created once by
// the factory and never mutated afterwards.
type Restaurant struct {
	ID                    string   `json:"id"`
	Name                  string   `json:"name"`
	Cuisine               string   `json:"cuisine"`
	Location              string   `json:"location"`
	PriceRange            string   `json:"price_range"`
	Rating                float64  `json:"rating"`
	DietaryOptions        []string `json:"dietary_options"`
	Hours                 Hours    `json:"hours"`
	Phone                 string   `json:"phone"`
	Address               string   `json:"address"`
	Features              []string `json:"features"`
	PopularDishes         []string `json:"popular_dishes"`
	AveragePricePerPerson string   `json:"average_price_per_person"`
	ReservationsRequired  bool     `json:"reservations_required"`
	OutdoorSeating        bool     `json:"outdoor_seating"`
	PrivateDining         bool     `json:"private_dining"`
	TakeoutAvailable      bool     `json:"takeout_available"`
	DeliveryAvailable     bool     `json:"delivery_available"`
}

// Hours holds opaque display strings. Lunch is optional, dinner is always set.
type Hours struct {
	Lunch  string `json:"lunch,omitempty"`
	Dinner string `json:"dinner"`
}
