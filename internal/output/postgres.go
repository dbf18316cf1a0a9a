package output

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dinesim/dinesim/internal/models"
	"github.com/dinesim/dinesim/internal/repositories"
	"github.com/dinesim/dinesim/internal/repositories/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresOutput writes each topic into its own table through the pgx
// repositories. Snapshot rows (restaurants, availability) are buffered and
// land in one BulkCreate transaction per table; the first booking event
// forces the flush so per-booking slot updates always follow the snapshot.
type PostgresOutput struct {
	pool         *pgxpool.Pool
	timeout      func(context.Context) (context.Context, context.CancelFunc)
	restaurants  repositories.RestaurantRepository
	availability repositories.AvailabilityRepository
	bookings     repositories.BookingRepository

	pendingRestaurants []*models.Restaurant
	pendingSlots       []models.SlotRecord
	flushed            bool
}

func NewPostgresOutput(config *models.Config) (*PostgresOutput, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.Database.Host, config.Database.Port, config.Database.User,
		config.Database.Password, config.Database.DBName, config.Database.SSLMode,
	)

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}
	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		return nil, fmt.Errorf("error pinging database: %w", err)
	}

	queryTimeout := config.QueryTimeout
	return &PostgresOutput{
		pool: pool,
		timeout: func(parent context.Context) (context.Context, context.CancelFunc) {
			if queryTimeout <= 0 {
				return context.WithCancel(parent)
			}
			return context.WithTimeout(parent, queryTimeout)
		},
		restaurants:  postgres.NewRestaurantRepository(pool),
		availability: postgres.NewAvailabilityRepository(pool),
		bookings:     postgres.NewBookingRepository(pool),
	}, nil
}

func (p *PostgresOutput) WriteMessage(topic string, msg []byte) error {
	ctx, cancel := p.timeout(context.Background())
	defer cancel()

	switch topic {
	case models.TopicRestaurants:
		var restaurant models.Restaurant
		if err := json.Unmarshal(msg, &restaurant); err != nil {
			return fmt.Errorf("decoding restaurant message: %w", err)
		}
		if p.flushed {
			return p.restaurants.Create(ctx, &restaurant)
		}
		p.pendingRestaurants = append(p.pendingRestaurants, &restaurant)
		return nil

	case models.TopicAvailability:
		var slot models.SlotRecord
		if err := json.Unmarshal(msg, &slot); err != nil {
			return fmt.Errorf("decoding availability message: %w", err)
		}
		if p.flushed {
			return p.availability.Create(ctx, slot)
		}
		p.pendingSlots = append(p.pendingSlots, slot)
		return nil

	case models.TopicBookingEvents:
		var event models.BookingEvent
		if err := json.Unmarshal(msg, &event); err != nil {
			return fmt.Errorf("decoding booking event: %w", err)
		}
		if err := p.flush(ctx); err != nil {
			return err
		}
		if event.Booking != nil {
			if err := p.bookings.Create(ctx, event.Booking); err != nil {
				return err
			}
		}
		// the availability change rides along on confirmed events
		if event.EventType == models.EventBookingConfirmed {
			return p.availability.Create(ctx, models.SlotRecord{
				RestaurantID:    event.RestaurantID,
				Date:            event.Date,
				Time:            event.Time,
				AvailableTables: event.TablesRemaining,
			})
		}
		return nil

	default:
		return fmt.Errorf("unknown topic %q", topic)
	}
}

func (p *PostgresOutput) flush(ctx context.Context) error {
	if p.flushed {
		return nil
	}
	if len(p.pendingRestaurants) > 0 {
		if err := p.restaurants.BulkCreate(ctx, p.pendingRestaurants); err != nil {
			return err
		}
	}
	if len(p.pendingSlots) > 0 {
		if err := p.availability.BulkCreate(ctx, p.pendingSlots); err != nil {
			return err
		}
	}
	p.pendingRestaurants = nil
	p.pendingSlots = nil
	p.flushed = true
	return nil
}

func (p *PostgresOutput) Close() error {
	ctx, cancel := p.timeout(context.Background())
	defer cancel()

	if err := p.flush(ctx); err != nil {
		return err
	}
	if p.pool != nil {
		p.pool.Close()
	}
	return nil
}
