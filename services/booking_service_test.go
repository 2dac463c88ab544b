package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hms-backend/models"
)

func TestCreateBooking(t *testing.T) {
	db := newTestDB(t)
	fx := newFixture(t, db)
	svc := NewBookingService(db)

	booking, err := svc.CreateBooking(fx.Customer.ID, fx.Room.ID, "2026-06-10", "2026-06-15")
	require.NoError(t, err)

	assert.NotZero(t, booking.ID)
	assert.Len(t, booking.ReferenceCode, 8)
	assert.Equal(t, models.BookingConfirmed, booking.Status)
	assert.Equal(t, "2026-06-10", booking.CheckIn().Format("2006-01-02"))
	assert.Equal(t, "2026-06-15", booking.CheckOut().Format("2006-01-02"))
	assert.EqualValues(t, 1, countBookings(t, db, fx.Room.ID))
}

func TestCreateBooking_OverlapRejected(t *testing.T) {
	db := newTestDB(t)
	fx := newFixture(t, db)
	svc := NewBookingService(db)

	_, err := svc.CreateBooking(fx.Customer.ID, fx.Room.ID, "2026-06-10", "2026-06-15")
	require.NoError(t, err)

	_, err = svc.CreateBooking(fx.Customer.ID, fx.Room.ID, "2026-06-12", "2026-06-18")
	assert.True(t, IsKind(err, KindRoomUnavailable))

	// the failed attempt must leave no row behind
	assert.EqualValues(t, 1, countBookings(t, db, fx.Room.ID))
}

func TestCreateBooking_AdjacentAllowed(t *testing.T) {
	db := newTestDB(t)
	fx := newFixture(t, db)
	svc := NewBookingService(db)

	_, err := svc.CreateBooking(fx.Customer.ID, fx.Room.ID, "2026-06-10", "2026-06-15")
	require.NoError(t, err)

	// checkout day equals the next stay's checkin day
	_, err = svc.CreateBooking(fx.Customer.ID, fx.Room.ID, "2026-06-15", "2026-06-20")
	require.NoError(t, err)

	_, err = svc.CreateBooking(fx.Customer.ID, fx.Room.ID, "2026-06-05", "2026-06-10")
	require.NoError(t, err)

	assert.EqualValues(t, 3, countBookings(t, db, fx.Room.ID))
}

func TestCreateBooking_OtherRoomUnaffected(t *testing.T) {
	db := newTestDB(t)
	fx := newFixture(t, db)
	svc := NewBookingService(db)

	other := models.Room{HotelID: fx.Hotel.ID, RoomNumber: "102", RoomType: models.RoomTypeSingle, PricePerNight: 9900, Capacity: 1}
	require.NoError(t, db.Create(&other).Error)

	_, err := svc.CreateBooking(fx.Customer.ID, fx.Room.ID, "2026-06-10", "2026-06-15")
	require.NoError(t, err)

	_, err = svc.CreateBooking(fx.Customer.ID, other.ID, "2026-06-10", "2026-06-15")
	require.NoError(t, err)
}

func TestCreateBooking_UnknownReferences(t *testing.T) {
	db := newTestDB(t)
	fx := newFixture(t, db)
	svc := NewBookingService(db)

	_, err := svc.CreateBooking(9999, fx.Room.ID, "2026-06-10", "2026-06-15")
	assert.True(t, IsKind(err, KindNotFound))

	_, err = svc.CreateBooking(fx.Customer.ID, 9999, "2026-06-10", "2026-06-15")
	assert.True(t, IsKind(err, KindNotFound))

	assert.EqualValues(t, 0, countBookings(t, db, fx.Room.ID))
}

func TestCreateBooking_InvalidRange(t *testing.T) {
	db := newTestDB(t)
	fx := newFixture(t, db)
	svc := NewBookingService(db)

	_, err := svc.CreateBooking(fx.Customer.ID, fx.Room.ID, "2026-06-15", "2026-06-15")
	assert.True(t, IsKind(err, KindInvalidRange))

	_, err = svc.CreateBooking(fx.Customer.ID, fx.Room.ID, "2026-06-20", "2026-06-15")
	assert.True(t, IsKind(err, KindInvalidRange))

	_, err = svc.CreateBooking(fx.Customer.ID, fx.Room.ID, "June 15", "2026-06-20")
	assert.True(t, IsKind(err, KindInvalidRange))

	assert.EqualValues(t, 0, countBookings(t, db, fx.Room.ID))
}

func TestCancelBooking(t *testing.T) {
	db := newTestDB(t)
	fx := newFixture(t, db)
	svc := NewBookingService(db)

	booking, err := svc.CreateBooking(fx.Customer.ID, fx.Room.ID, "2026-06-10", "2026-06-15")
	require.NoError(t, err)

	require.NoError(t, svc.CancelBooking(booking.ID))

	var got models.Booking
	require.NoError(t, db.First(&got, booking.ID).Error)
	assert.Equal(t, models.BookingCancelled, got.Status)
}

func TestCancelBooking_NotIdempotent(t *testing.T) {
	db := newTestDB(t)
	fx := newFixture(t, db)
	svc := NewBookingService(db)

	booking, err := svc.CreateBooking(fx.Customer.ID, fx.Room.ID, "2026-06-10", "2026-06-15")
	require.NoError(t, err)

	require.NoError(t, svc.CancelBooking(booking.ID))
	// second cancel is an error, not a silent success
	assert.True(t, IsKind(svc.CancelBooking(booking.ID), KindNotFound))

	assert.True(t, IsKind(svc.CancelBooking(9999), KindNotFound))
}

func TestCancelBooking_RestoresAvailability(t *testing.T) {
	db := newTestDB(t)
	fx := newFixture(t, db)
	bookingSvc := NewBookingService(db)
	catalogSvc := NewCatalogService(db)

	booking, err := bookingSvc.CreateBooking(fx.Customer.ID, fx.Room.ID, "2026-06-10", "2026-06-15")
	require.NoError(t, err)

	rooms, err := catalogSvc.SearchAvailableRooms(fx.Hotel.ID, "2026-06-10", "2026-06-15", 1)
	require.NoError(t, err)
	assert.Empty(t, rooms)

	require.NoError(t, bookingSvc.CancelBooking(booking.ID))

	rooms, err = catalogSvc.SearchAvailableRooms(fx.Hotel.ID, "2026-06-10", "2026-06-15", 1)
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, fx.Room.ID, rooms[0].ID)

	// and the range is bookable again
	_, err = bookingSvc.CreateBooking(fx.Customer.ID, fx.Room.ID, "2026-06-10", "2026-06-15")
	require.NoError(t, err)
}

func TestCompleteBooking(t *testing.T) {
	db := newTestDB(t)
	fx := newFixture(t, db)
	svc := NewBookingService(db)

	booking, err := svc.CreateBooking(fx.Customer.ID, fx.Room.ID, "2026-06-10", "2026-06-15")
	require.NoError(t, err)

	require.NoError(t, svc.CompleteBooking(booking.ID))

	var got models.Booking
	require.NoError(t, db.First(&got, booking.ID).Error)
	assert.Equal(t, models.BookingCompleted, got.Status)

	// completed is terminal: no cancel, no second complete
	assert.True(t, IsKind(svc.CancelBooking(booking.ID), KindNotFound))
	assert.True(t, IsKind(svc.CompleteBooking(booking.ID), KindNotFound))
}

func TestGetBooking(t *testing.T) {
	db := newTestDB(t)
	fx := newFixture(t, db)
	svc := NewBookingService(db)

	booking, err := svc.CreateBooking(fx.Customer.ID, fx.Room.ID, "2026-06-10", "2026-06-15")
	require.NoError(t, err)

	got, err := svc.GetBooking(booking.ID)
	require.NoError(t, err)
	assert.Equal(t, fx.Customer.Name, got.Customer.Name)
	assert.Equal(t, fx.Room.RoomNumber, got.Room.RoomNumber)

	_, err = svc.GetBooking(9999)
	assert.True(t, IsKind(err, KindNotFound))
}

func TestListBookingsForCustomer(t *testing.T) {
	db := newTestDB(t)
	fx := newFixture(t, db)
	svc := NewBookingService(db)

	_, err := svc.CreateBooking(fx.Customer.ID, fx.Room.ID, "2026-06-10", "2026-06-15")
	require.NoError(t, err)
	second, err := svc.CreateBooking(fx.Customer.ID, fx.Room.ID, "2026-06-20", "2026-06-25")
	require.NoError(t, err)

	bookings, err := svc.ListBookingsForCustomer(fx.Customer.ID)
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, second.ID, bookings[0].ID, "newest first")

	_, err = svc.ListBookingsForCustomer(9999)
	assert.True(t, IsKind(err, KindNotFound))
}

func TestCreateBooking_ConcurrentRace(t *testing.T) {
	db := newTestDB(t)
	fx := newFixture(t, db)
	svc := NewBookingService(db)

	const attempts = 8

	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.CreateBooking(fx.Customer.ID, fx.Room.ID, "2026-06-10", "2026-06-15")
		}(i)
	}
	wg.Wait()

	var succeeded, unavailable int
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case IsKind(err, KindRoomUnavailable):
			unavailable++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, succeeded, "exactly one racing request may win")
	assert.Equal(t, attempts-1, unavailable)
	assert.EqualValues(t, 1, countBookings(t, db, fx.Room.ID))

	// the invariant holds: pairwise non-overlapping confirmed bookings
	var confirmed []models.Booking
	require.NoError(t, db.Where("room_id = ? AND status = ?", fx.Room.ID, models.BookingConfirmed).Find(&confirmed).Error)
	for i := range confirmed {
		for j := i + 1; j < len(confirmed); j++ {
			a, b := confirmed[i], confirmed[j]
			overlap := a.CheckOut().After(b.CheckIn()) && a.CheckIn().Before(b.CheckOut())
			assert.False(t, overlap, "bookings %d and %d overlap", a.ID, b.ID)
		}
	}
}
