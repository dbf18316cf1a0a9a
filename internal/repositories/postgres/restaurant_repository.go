package postgres

import (
	"context"

	"github.com/dinesim/dinesim/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RestaurantRepository struct {
	pool *pgxpool.Pool
}

func NewRestaurantRepository(pool *pgxpool.Pool) *RestaurantRepository {
	return &RestaurantRepository{pool: pool}
}

const insertRestaurant = `
    INSERT INTO restaurants (
        id, name, cuisine, location, price_range, rating, dietary_options,
        lunch_hours, dinner_hours, phone, address, features, popular_dishes,
        average_price_per_person, reservations_required, outdoor_seating,
        private_dining, takeout_available, delivery_available
    ) VALUES (
        $1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
        $11, $12, $13, $14, $15, $16, $17, $18, $19
    )
    ON CONFLICT (id) DO NOTHING
`

func (r *RestaurantRepository) BulkCreate(ctx context.Context, restaurants []*models.Restaurant) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, restaurant := range restaurants {
		_, err = tx.Exec(ctx, insertRestaurant,
			restaurant.ID,
			restaurant.Name,
			restaurant.Cuisine,
			restaurant.Location,
			restaurant.PriceRange,
			restaurant.Rating,
			restaurant.DietaryOptions,
			restaurant.Hours.Lunch,
			restaurant.Hours.Dinner,
			restaurant.Phone,
			restaurant.Address,
			restaurant.Features,
			restaurant.PopularDishes,
			restaurant.AveragePricePerPerson,
			restaurant.ReservationsRequired,
			restaurant.OutdoorSeating,
			restaurant.PrivateDining,
			restaurant.TakeoutAvailable,
			restaurant.DeliveryAvailable,
		)
		if err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *RestaurantRepository) Create(ctx context.Context, restaurant *models.Restaurant) error {
	_, err := r.pool.Exec(ctx, insertRestaurant,
		restaurant.ID,
		restaurant.Name,
		restaurant.Cuisine,
		restaurant.Location,
		restaurant.PriceRange,
		restaurant.Rating,
		restaurant.DietaryOptions,
		restaurant.Hours.Lunch,
		restaurant.Hours.Dinner,
		restaurant.Phone,
		restaurant.Address,
		restaurant.Features,
		restaurant.PopularDishes,
		restaurant.AveragePricePerPerson,
		restaurant.ReservationsRequired,
		restaurant.OutdoorSeating,
		restaurant.PrivateDining,
		restaurant.TakeoutAvailable,
		restaurant.DeliveryAvailable,
	)
	return err
}
