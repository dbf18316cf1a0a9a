package sim

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dinesim/dinesim/internal/models"
	"github.com/dinesim/dinesim/internal/store"
)

func testConfig(t *testing.T) *models.Config {
	dir := t.TempDir()
	return &models.Config{
		Seed:               1,
		InitialRestaurants: 3,
		DaysAhead:          2,
		SimulatedBookings:  10,
		RestaurantsFile:    filepath.Join(dir, "restaurants.json"),
		AvailabilityFile:   filepath.Join(dir, "availability.json"),
		OutputFormat:       "json",
		OutputPath:         dir,
		OutputFolder:       "data",
	}
}

func TestRunGeneratesAndPersistsSnapshots(t *testing.T) {
	cfg := testConfig(t)
	simulator := NewSimulator(cfg)
	require.NoError(t, simulator.Run())

	restaurants, err := store.LoadRestaurants(cfg.RestaurantsFile)
	require.NoError(t, err)
	assert.Len(t, restaurants, 3)

	availability, err := store.LoadAvailability(cfg.AvailabilityFile)
	require.NoError(t, err)
	require.Len(t, availability, 3)
	for restaurantID, dates := range availability {
		assert.Len(t, dates, 2, "restaurant %s should cover the horizon", restaurantID)
		for _, slots := range dates {
			for slotTime, tables := range slots {
				assert.GreaterOrEqual(t, tables, 0, "slot %s", slotTime)
			}
		}
	}

	assert.FileExists(t, filepath.Join(cfg.OutputPath, "data", "restaurants.json"))
	assert.FileExists(t, filepath.Join(cfg.OutputPath, "data", "availability.json"))
	assert.FileExists(t, filepath.Join(cfg.OutputPath, "data", "booking_events.json"))
}

func TestSimulatedBookingsNeverOverdraw(t *testing.T) {
	cfg := testConfig(t)
	cfg.SimulatedBookings = 50
	simulator := NewSimulator(cfg)
	require.NoError(t, simulator.Run())

	for _, booked := range simulator.Bookings {
		assert.Equal(t, models.BookingStatusConfirmed, booked.Status)
	}
	for _, dates := range simulator.Availability {
		for _, slots := range dates {
			for _, tables := range slots {
				assert.GreaterOrEqual(t, tables, 0)
			}
		}
	}
}

func TestDetermineOutputDestinationRejectsUnknownFormat(t *testing.T) {
	cfg := testConfig(t)
	cfg.OutputFormat = "carrier-pigeon"
	simulator := NewSimulator(cfg)

	_, err := simulator.determineOutputDestination()
	assert.Error(t, err)
}
