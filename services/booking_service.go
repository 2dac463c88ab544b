package services

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"hms-backend/models"
	"hms-backend/utils"
)

const refCodeRetries = 5

// roomLocks hands out one mutex per room id so booking attempts for the
// same room serialize while different rooms stay fully concurrent.
type roomLocks struct {
	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func (l *roomLocks) get(roomID uint) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.locks == nil {
		l.locks = make(map[uint]*sync.Mutex)
	}
	m, ok := l.locks[roomID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[roomID] = m
	}
	return m
}

type BookingService struct {
	DB    *gorm.DB
	locks roomLocks
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// CreateBooking reserves a room for [checkIn, checkOut). The whole
// check-then-insert runs under the room's lock and inside one
// transaction, so two racing overlapping requests can never both land:
// one gets the booking, the other gets a room_unavailable error.
func (s *BookingService) CreateBooking(customerID, roomID uint, checkIn, checkOut string) (*models.Booking, error) {
	ci, co, err := ParseDateRange(checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	lock := s.locks.get(roomID)
	lock.Lock()
	defer lock.Unlock()

	var booking models.Booking
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var customer models.Customer
		if err := tx.First(&customer, customerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainErrf(KindNotFound, "customer %d not found", customerID)
			}
			return fmt.Errorf("db error checking customer %d: %w", customerID, err)
		}

		var room models.Room
		if err := tx.First(&room, roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainErrf(KindNotFound, "room %d not found", roomID)
			}
			return fmt.Errorf("db error checking room %d: %w", roomID, err)
		}

		confirmed, err := confirmedBookingsInWindow(tx, roomID, ci, co)
		if err != nil {
			return err
		}

		free, err := RoomIsAvailable(ci, co, confirmed)
		if err != nil {
			return err
		}
		if !free {
			return domainErrf(KindRoomUnavailable, "room is not available for selected dates")
		}

		booking = models.Booking{
			CustomerID:   customerID,
			RoomID:       roomID,
			CheckInDate:  datatypes.Date(ci),
			CheckOutDate: datatypes.Date(co),
			Status:       models.BookingConfirmed,
		}
		return createWithReferenceCode(tx, &booking)
	})
	if txErr != nil {
		return nil, txErr
	}
	return &booking, nil
}

// createWithReferenceCode inserts the booking, regenerating the
// reference code on unique collisions up to a bounded retry count.
func createWithReferenceCode(tx *gorm.DB, booking *models.Booking) error {
	for attempt := 0; attempt < refCodeRetries; attempt++ {
		code, err := utils.GenerateReferenceCode(8)
		if err != nil {
			return fmt.Errorf("failed to generate reference code: %w", err)
		}
		booking.ReferenceCode = code

		err = tx.Create(booking).Error
		if err == nil {
			return nil
		}
		if isDuplicateKey(err) {
			continue
		}
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return domainErrf(KindConflictRetryExhausted,
		"could not allocate a unique reference code after %d attempts", refCodeRetries)
}

// confirmedBookingsInWindow loads the room's confirmed bookings whose
// range could overlap [checkIn, checkOut).
func confirmedBookingsInWindow(tx *gorm.DB, roomID uint, checkIn, checkOut time.Time) ([]models.Booking, error) {
	var confirmed []models.Booking
	err := tx.
		Where("room_id = ? AND status = ?", roomID, models.BookingConfirmed).
		Where("check_in_date < ? AND check_out_date > ?", datatypes.Date(checkOut), datatypes.Date(checkIn)).
		Find(&confirmed).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for room %d: %w", roomID, err)
	}
	return confirmed, nil
}

// CancelBooking moves a confirmed booking to cancelled. Cancelling a
// missing or already-terminal booking is an error, not a no-op.
func (s *BookingService) CancelBooking(bookingID uint) error {
	return s.updateStatus(bookingID, models.BookingCancelled)
}

// CompleteBooking moves a confirmed booking to completed (checkout).
func (s *BookingService) CompleteBooking(bookingID uint) error {
	return s.updateStatus(bookingID, models.BookingCompleted)
}

func (s *BookingService) updateStatus(bookingID uint, to models.BookingStatus) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Booking{}).
			Where("id = ? AND status = ?", bookingID, models.BookingConfirmed).
			Update("status", to)
		if res.Error != nil {
			return fmt.Errorf("failed to update booking %d: %w", bookingID, res.Error)
		}
		if res.RowsAffected == 0 {
			return domainErrf(KindNotFound, "booking %d not found or not confirmed", bookingID)
		}
		return nil
	})
}

// GetBooking returns a booking with its customer and room loaded.
func (s *BookingService) GetBooking(bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.DB.Preload("Customer").Preload("Room").First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainErrf(KindNotFound, "booking %d not found", bookingID)
		}
		return nil, fmt.Errorf("failed to retrieve booking %d: %w", bookingID, err)
	}
	return &booking, nil
}

// ListBookingsForCustomer returns all bookings for a customer, newest
// first.
func (s *BookingService) ListBookingsForCustomer(customerID uint) ([]models.Booking, error) {
	var customer models.Customer
	if err := s.DB.First(&customer, customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainErrf(KindNotFound, "customer %d not found", customerID)
		}
		return nil, fmt.Errorf("db error checking customer %d: %w", customerID, err)
	}

	var bookings []models.Booking
	err := s.DB.Preload("Room").
		Where("customer_id = ?", customerID).
		Order("id DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for customer %d: %w", customerID, err)
	}
	return bookings, nil
}
