// Package sim orchestrates the pipeline: build the synthetic directory,
// generate availability over the horizon, persist both as JSON snapshots,
// then replay a stream of booking requests against the availability and emit
// the resulting events.
package sim

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/dinesim/dinesim/internal/availability"
	"github.com/dinesim/dinesim/internal/booking"
	"github.com/dinesim/dinesim/internal/factories"
	"github.com/dinesim/dinesim/internal/logger"
	"github.com/dinesim/dinesim/internal/models"
	"github.com/dinesim/dinesim/internal/output"
	"github.com/dinesim/dinesim/internal/store"
	"github.com/jaswdr/faker"
	"github.com/lucsky/cuid"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
)

type Simulator struct {
	Config       *models.Config
	Restaurants  []models.Restaurant
	Availability models.Availability
	Bookings     []models.Booking
	Rng          *rand.Rand
}

func NewSimulator(config *models.Config) *Simulator {
	seed := int64(config.Seed)
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Simulator{
		Config: config,
		Rng:    rand.New(rand.NewSource(seed)),
	}
}

func (s *Simulator) initializeData() {
	restaurantFactory := &factories.RestaurantFactory{}

	s.Restaurants = make([]models.Restaurant, s.Config.InitialRestaurants)
	for i := 0; i < s.Config.InitialRestaurants; i++ {
		s.Restaurants[i] = *restaurantFactory.CreateRestaurant(i)
	}

	generator := availability.NewGenerator(s.Rng)
	s.Availability = make(models.Availability, len(s.Restaurants))

	bar := progressbar.Default(int64(len(s.Restaurants)), "generating availability")
	for _, restaurant := range s.Restaurants {
		s.Availability[restaurant.ID] = generator.GenerateRestaurant(s.Config.DaysAhead)
		_ = bar.Add(1)
	}
}

func (s *Simulator) Run() error {
	log := logger.Get()

	out, err := s.determineOutputDestination()
	if err != nil {
		return err
	}
	defer func() {
		if err := out.Close(); err != nil {
			log.Error("failed to close output", zap.Error(err))
		}
	}()

	s.initializeData()
	log.Info("directory generated",
		zap.Int("restaurants", len(s.Restaurants)),
		zap.Int("days_ahead", s.Config.DaysAhead))

	if err := s.emitDirectory(out); err != nil {
		return err
	}
	if err := s.simulateBookings(out); err != nil {
		return err
	}

	if err := store.SaveRestaurants(s.Config.RestaurantsFile, s.Restaurants); err != nil {
		return err
	}
	if err := store.SaveAvailability(s.Config.AvailabilityFile, s.Availability); err != nil {
		return err
	}

	log.Info("simulation completed",
		zap.Int("bookings_confirmed", len(s.Bookings)),
		zap.String("restaurants_file", s.Config.RestaurantsFile),
		zap.String("availability_file", s.Config.AvailabilityFile))
	return nil
}

func (s *Simulator) emitDirectory(out output.Destination) error {
	for i := range s.Restaurants {
		msg, err := json.Marshal(&s.Restaurants[i])
		if err != nil {
			return fmt.Errorf("serializing restaurant %s: %w", s.Restaurants[i].ID, err)
		}
		if err := out.WriteMessage(models.TopicRestaurants, msg); err != nil {
			return err
		}
	}

	for _, slot := range models.FlattenAvailability(s.Availability) {
		msg, err := json.Marshal(slot)
		if err != nil {
			return fmt.Errorf("serializing availability slot: %w", err)
		}
		if err := out.WriteMessage(models.TopicAvailability, msg); err != nil {
			return err
		}
	}
	return nil
}

// simulateBookings replays random booking requests against the availability
// mapping. Each confirmed booking is applied copy-on-write and emitted as an
// event; requests for sold-out or invalid slots emit rejections.
func (s *Simulator) simulateBookings(out output.Destination) error {
	if s.Config.SimulatedBookings <= 0 {
		return nil
	}

	log := logger.Get()
	fake := faker.New()

	for i := 0; i < s.Config.SimulatedBookings; i++ {
		restaurant := s.Restaurants[s.Rng.Intn(len(s.Restaurants))]
		date := s.randomDate(restaurant.ID)
		slotTime := availability.TimeSlots[s.Rng.Intn(len(availability.TimeSlots))]
		partySize := 1 + s.Rng.Intn(8)

		event := models.BookingEvent{
			EventID:      cuid.New(),
			Timestamp:    time.Now().Unix(),
			RestaurantID: restaurant.ID,
			Date:         date,
			Time:         slotTime,
			PartySize:    partySize,
		}

		valid, problems := booking.Validate(date, slotTime, partySize)
		tables, found := availability.Check(s.Availability, restaurant.ID, date, slotTime)

		switch {
		case !valid:
			event.EventType = models.EventBookingRejected
			event.Problems = problems
		case !found || tables < 1:
			event.EventType = models.EventBookingRejected
			event.Problems = []string{"No tables available at the requested time"}
		default:
			confirmed := booking.New(booking.Request{
				RestaurantID:   restaurant.ID,
				RestaurantName: restaurant.Name,
				Date:           date,
				Time:           slotTime,
				PartySize:      partySize,
				CustomerName:   fake.Person().Name(),
				CustomerPhone:  fake.Phone().Number(),
			})
			s.Availability = booking.Apply(s.Availability, restaurant.ID, date, slotTime, 1)
			s.Bookings = append(s.Bookings, confirmed)

			remaining, _ := availability.Check(s.Availability, restaurant.ID, date, slotTime)
			event.EventType = models.EventBookingConfirmed
			event.BookingID = confirmed.BookingID
			event.TablesRemaining = remaining
			event.Booking = &confirmed
		}

		msg, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("serializing booking event: %w", err)
		}
		if err := out.WriteMessage(models.TopicBookingEvents, msg); err != nil {
			log.Error("failed to write booking event", zap.Error(err))
		}
	}
	return nil
}

// randomDate picks one of the restaurant's generated dates, falling back to
// today when the restaurant has none.
func (s *Simulator) randomDate(restaurantID string) string {
	dates := make([]string, 0, len(s.Availability[restaurantID]))
	for date := range s.Availability[restaurantID] {
		dates = append(dates, date)
	}
	if len(dates) == 0 {
		return time.Now().Format("2006-01-02")
	}
	sort.Strings(dates)
	return dates[s.Rng.Intn(len(dates))]
}

func (s *Simulator) determineOutputDestination() (output.Destination, error) {
	switch s.Config.OutputFormat {
	case "", "console":
		return &output.ConsoleOutput{}, nil
	case "json":
		return output.NewJSONOutput(s.Config.OutputPath, s.Config.OutputFolder), nil
	case "kafka":
		return output.NewKafkaOutput(s.Config)
	case "postgres":
		return output.NewPostgresOutput(s.Config)
	case "parquet":
		return output.NewParquetOutput(s.Config)
	default:
		return nil, fmt.Errorf("unknown output format %q", s.Config.OutputFormat)
	}
}
