package output

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dinesim/dinesim/internal/models"
)

type fakeRestaurantRepo struct {
	bulk    [][]*models.Restaurant
	created []*models.Restaurant
}

func (f *fakeRestaurantRepo) BulkCreate(_ context.Context, restaurants []*models.Restaurant) error {
	f.bulk = append(f.bulk, restaurants)
	return nil
}

func (f *fakeRestaurantRepo) Create(_ context.Context, restaurant *models.Restaurant) error {
	f.created = append(f.created, restaurant)
	return nil
}

type fakeAvailabilityRepo struct {
	bulk    [][]models.SlotRecord
	created []models.SlotRecord
}

func (f *fakeAvailabilityRepo) BulkCreate(_ context.Context, slots []models.SlotRecord) error {
	f.bulk = append(f.bulk, slots)
	return nil
}

func (f *fakeAvailabilityRepo) Create(_ context.Context, slot models.SlotRecord) error {
	f.created = append(f.created, slot)
	return nil
}

type fakeBookingRepo struct {
	created []*models.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *models.Booking) error {
	f.created = append(f.created, booking)
	return nil
}

func newFakePostgresOutput() (*PostgresOutput, *fakeRestaurantRepo, *fakeAvailabilityRepo, *fakeBookingRepo) {
	restaurants := &fakeRestaurantRepo{}
	availability := &fakeAvailabilityRepo{}
	bookings := &fakeBookingRepo{}
	out := &PostgresOutput{
		timeout:      func(parent context.Context) (context.Context, context.CancelFunc) { return context.WithCancel(parent) },
		restaurants:  restaurants,
		availability: availability,
		bookings:     bookings,
	}
	return out, restaurants, availability, bookings
}

func mustMarshal(t *testing.T, v interface{}) []byte {
	t.Helper()
	msg, err := json.Marshal(v)
	require.NoError(t, err)
	return msg
}

func TestPostgresOutputBatchesSnapshotsUntilFirstBookingEvent(t *testing.T) {
	out, restaurants, availability, bookings := newFakePostgresOutput()

	require.NoError(t, out.WriteMessage(models.TopicRestaurants,
		mustMarshal(t, models.Restaurant{ID: "r1", Name: "Bella Italia"})))
	require.NoError(t, out.WriteMessage(models.TopicAvailability,
		mustMarshal(t, models.SlotRecord{RestaurantID: "r1", Date: "2026-09-05", Time: "19:00", AvailableTables: 2})))

	assert.Empty(t, restaurants.bulk, "snapshot rows stay buffered")
	assert.Empty(t, availability.bulk)

	event := models.BookingEvent{
		EventID:         "e1",
		EventType:       models.EventBookingConfirmed,
		RestaurantID:    "r1",
		Date:            "2026-09-05",
		Time:            "19:00",
		PartySize:       2,
		TablesRemaining: 1,
		Booking:         &models.Booking{BookingID: "BK1", RestaurantID: "r1"},
	}
	require.NoError(t, out.WriteMessage(models.TopicBookingEvents, mustMarshal(t, event)))

	require.Len(t, restaurants.bulk, 1)
	assert.Equal(t, "r1", restaurants.bulk[0][0].ID)
	require.Len(t, availability.bulk, 1)
	assert.Equal(t, 2, availability.bulk[0][0].AvailableTables)

	require.Len(t, bookings.created, 1)
	assert.Equal(t, "BK1", bookings.created[0].BookingID)
	require.Len(t, availability.created, 1, "confirmed event updates the slot row")
	assert.Equal(t, 1, availability.created[0].AvailableTables)
}

func TestPostgresOutputWritesDirectlyAfterFlush(t *testing.T) {
	out, restaurants, availability, _ := newFakePostgresOutput()

	rejected := models.BookingEvent{EventID: "e1", EventType: models.EventBookingRejected}
	require.NoError(t, out.WriteMessage(models.TopicBookingEvents, mustMarshal(t, rejected)))
	assert.Empty(t, availability.created, "rejected events change no rows")

	require.NoError(t, out.WriteMessage(models.TopicRestaurants,
		mustMarshal(t, models.Restaurant{ID: "r2"})))
	require.Len(t, restaurants.created, 1)
	assert.Empty(t, restaurants.bulk)
}

func TestPostgresOutputCloseFlushesPendingSnapshots(t *testing.T) {
	out, restaurants, availability, _ := newFakePostgresOutput()

	require.NoError(t, out.WriteMessage(models.TopicRestaurants,
		mustMarshal(t, models.Restaurant{ID: "r1"})))
	require.NoError(t, out.Close())

	require.Len(t, restaurants.bulk, 1)
	assert.Empty(t, availability.bulk, "no slots buffered, no slot transaction")
}

func TestPostgresOutputRejectsUnknownTopic(t *testing.T) {
	out, _, _, _ := newFakePostgresOutput()
	assert.Error(t, out.WriteMessage("orders", []byte("{}")))
}
