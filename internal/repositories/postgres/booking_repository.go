package postgres

import (
	"context"

	"github.com/dinesim/dinesim/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

func (r *BookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	_, err := r.pool.Exec(ctx, `
        INSERT INTO bookings (
            booking_id, restaurant_id, restaurant_name, date, time, party_size,
            customer_name, customer_phone, special_requests, status, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        ON CONFLICT (booking_id) DO NOTHING
    `,
		booking.BookingID,
		booking.RestaurantID,
		booking.RestaurantName,
		booking.Date,
		booking.Time,
		booking.PartySize,
		booking.CustomerName,
		booking.CustomerPhone,
		booking.SpecialRequests,
		booking.Status,
		booking.CreatedAt,
	)
	return err
}
