package factories

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/dinesim/dinesim/internal/models"
	"github.com/jaswdr/faker"
)

var fake = faker.New()

type restaurantTemplate struct {
	namePrefix   string
	nameSuffixes []string
	cuisine      string
	locations    []string
	priceRange   string
	dietaryBase  []string
	featuresBase []string
	dishesBase   []string
}

var restaurantTemplates = []restaurantTemplate{
	{
		namePrefix:   "Bella",
		nameSuffixes: []string{"Italia", "Napoli", "Roma", "Toscana", "Venezia"},
		cuisine:      "Italian",
		locations:    []string{"Downtown", "Midtown", "Uptown", "Old Town", "West End"},
		priceRange:   "$$$",
		dietaryBase:  []string{"vegetarian", "gluten-free", "vegan"},
		featuresBase: []string{"romantic ambiance", "wine bar", "pasta made fresh daily", "outdoor patio"},
		dishesBase:   []string{"Truffle Carbonara", "Osso Buco", "Margherita Pizza", "Tiramisu"},
	},
	{
		namePrefix:   "Sakura",
		nameSuffixes: []string{"Sushi", "Japanese Bistro", "Izakaya", "Ramen House", "Sushi Bar"},
		cuisine:      "Japanese",
		locations:    []string{"Downtown", "Midtown", "Uptown", "East Side", "Arts District"},
		priceRange:   "$$",
		dietaryBase:  []string{"vegetarian", "gluten-free", "vegan"},
		featuresBase: []string{"sushi bar seating", "sake selection", "omakase available", "authentic Japanese"},
		dishesBase:   []string{"Omakase", "Spicy Tuna Roll", "Ramen", "Tempura"},
	},
	{
		namePrefix:   "The Steakhouse",
		nameSuffixes: []string{"Prime", "Grill", "Chophouse", "& Co", "Club"},
		cuisine:      "American Steakhouse",
		locations:    []string{"Financial District", "Downtown", "Uptown", "Business District", "Harbor"},
		priceRange:   "$$$$",
		dietaryBase:  []string{"gluten-free"},
		featuresBase: []string{"dry-aged beef", "wine cellar", "private dining rooms", "valet parking"},
		dishesBase:   []string{"Ribeye Steak", "Filet Mignon", "Lobster Tail", "NY Cheesecake"},
	},
	{
		namePrefix:   "Spice",
		nameSuffixes: []string{"of India", "Kitchen", "Palace", "Garden", "Tandoor"},
		cuisine:      "Indian",
		locations:    []string{"Midtown", "University District", "Downtown", "West End", "Little India"},
		priceRange:   "$$",
		dietaryBase:  []string{"vegetarian", "vegan", "gluten-free"},
		featuresBase: []string{"tandoor oven", "lunch buffet", "authentic spices", "family-owned"},
		dishesBase:   []string{"Chicken Tikka Masala", "Palak Paneer", "Biryani", "Naan Bread"},
	},
	{
		namePrefix:   "Le",
		nameSuffixes: []string{"Bistro", "Café", "Jardin", "Petit", "Bouchon"},
		cuisine:      "French",
		locations:    []string{"Downtown", "Arts District", "Old Town", "Riverside", "Historic District"},
		priceRange:   "$$$",
		dietaryBase:  []string{"vegetarian", "gluten-free"},
		featuresBase: []string{"french wine list", "outdoor seating", "romantic setting", "chef-owned"},
		dishesBase:   []string{"Coq au Vin", "Bouillabaisse", "Crème Brûlée", "Escargot"},
	},
	{
		namePrefix:   "Taco",
		nameSuffixes: []string{"Loco", "Fiesta", "Cantina", "Casa", "Express"},
		cuisine:      "Mexican",
		locations:    []string{"Downtown", "Beach Area", "Midtown", "South Side", "Market District"},
		priceRange:   "$",
		dietaryBase:  []string{"vegetarian", "vegan", "gluten-free"},
		featuresBase: []string{"margarita bar", "taco tuesday", "fresh ingredients", "casual dining"},
		dishesBase:   []string{"Street Tacos", "Carnitas", "Guacamole", "Churros"},
	},
	{
		namePrefix:   "Dragon",
		nameSuffixes: []string{"Palace", "Garden", "Wok", "House", "Kitchen"},
		cuisine:      "Chinese",
		locations:    []string{"Chinatown", "Downtown", "Midtown", "East Side", "University Area"},
		priceRange:   "$$",
		dietaryBase:  []string{"vegetarian", "vegan", "gluten-free"},
		featuresBase: []string{"dim sum", "family-style dining", "authentic recipes", "lunch specials"},
		dishesBase:   []string{"Peking Duck", "Kung Pao Chicken", "Dumplings", "Fried Rice"},
	},
	{
		namePrefix:   "Mediterranean",
		nameSuffixes: []string{"Grill", "Kitchen", "Taverna", "Cafe", "Bistro"},
		cuisine:      "Mediterranean",
		locations:    []string{"Downtown", "Waterfront", "Old Town", "Arts District", "Beach Area"},
		priceRange:   "$$",
		dietaryBase:  []string{"vegetarian", "vegan", "gluten-free"},
		featuresBase: []string{"healthy options", "fresh seafood", "outdoor patio", "mezze platters"},
		dishesBase:   []string{"Lamb Kebab", "Falafel", "Hummus Platter", "Baklava"},
	},
}

type RestaurantFactory struct{}

// CreateRestaurant builds the i-th directory record (ids run r1..rN).
// Templates cycle so any count yields a spread of cuisines.
func (rf *RestaurantFactory) CreateRestaurant(i int) *models.Restaurant {
	template := restaurantTemplates[i%len(restaurantTemplates)]
	suffix := template.nameSuffixes[(i/len(restaurantTemplates))%len(template.nameSuffixes)]
	location := template.locations[i%len(template.locations)]
	upscale := len(template.priceRange) >= 3

	restaurant := &models.Restaurant{
		ID:                    fmt.Sprintf("r%d", i+1),
		Name:                  fmt.Sprintf("%s %s", template.namePrefix, suffix),
		Cuisine:               template.cuisine,
		Location:              location,
		PriceRange:            template.priceRange,
		Rating:                math.Round((4.0+rand.Float64())*10) / 10,
		DietaryOptions:        append([]string(nil), template.dietaryBase...),
		Hours:                 models.Hours{Dinner: "5:00pm-10:00pm"},
		Phone:                 fake.Phone().Number(),
		Address:               fmt.Sprintf("%d %s Street", fake.IntBetween(100, 999), location),
		Features:              append([]string(nil), template.featuresBase...),
		PopularDishes:         append([]string(nil), template.dishesBase...),
		AveragePricePerPerson: priceLabel(template.priceRange),
		ReservationsRequired:  upscale,
		OutdoorSeating:        rand.Float64() > 0.5,
		PrivateDining:         upscale,
		TakeoutAvailable:      true,
		DeliveryAvailable:     rand.Float64() > 0.3,
	}

	// most restaurants also serve lunch
	if rand.Float64() > 0.3 {
		restaurant.Hours.Lunch = "11:30am-2:30pm"
	}

	return restaurant
}

func priceLabel(symbol string) string {
	labels := map[string]string{
		"$":    "$10-20",
		"$$":   "$20-40",
		"$$$":  "$40-70",
		"$$$$": "$70-150",
	}
	if label, ok := labels[symbol]; ok {
		return label
	}
	return "$20-40"
}
