package postgres

import (
	"context"

	"github.com/dinesim/dinesim/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AvailabilityRepository struct {
	pool *pgxpool.Pool
}

func NewAvailabilityRepository(pool *pgxpool.Pool) *AvailabilityRepository {
	return &AvailabilityRepository{pool: pool}
}

const insertSlot = `
    INSERT INTO availability_slots (restaurant_id, date, time, available_tables)
    VALUES ($1, $2, $3, $4)
    ON CONFLICT (restaurant_id, date, time)
    DO UPDATE SET available_tables = EXCLUDED.available_tables
`

func (r *AvailabilityRepository) BulkCreate(ctx context.Context, slots []models.SlotRecord) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, slot := range slots {
		_, err = tx.Exec(ctx, insertSlot, slot.RestaurantID, slot.Date, slot.Time, slot.AvailableTables)
		if err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *AvailabilityRepository) Create(ctx context.Context, slot models.SlotRecord) error {
	_, err := r.pool.Exec(ctx, insertSlot, slot.RestaurantID, slot.Date, slot.Time, slot.AvailableTables)
	return err
}
