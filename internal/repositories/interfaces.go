// Package repositories declares the persistence surface the Postgres output
// writes through.
package repositories

import (
	"context"

	"github.com/dinesim/dinesim/internal/models"
)

type RestaurantRepository interface {
	BulkCreate(ctx context.Context, restaurants []*models.Restaurant) error
	Create(ctx context.Context, restaurant *models.Restaurant) error
}

type AvailabilityRepository interface {
	BulkCreate(ctx context.Context, slots []models.SlotRecord) error
	Create(ctx context.Context, slot models.SlotRecord) error
}

type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
}
