package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"hms-backend/models"
)

// CatalogService covers the read-mostly Location/Hotel/Room hierarchy
// and the availability search callers use to pick a room.
type CatalogService struct {
	DB *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{DB: db}
}

func (s *CatalogService) ListLocations() ([]models.Location, error) {
	var locations []models.Location
	if err := s.DB.Order("id ASC").Find(&locations).Error; err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	return locations, nil
}

// ListHotels returns every hotel, or only those in a location when
// locationID is set.
func (s *CatalogService) ListHotels(locationID *uint) ([]models.Hotel, error) {
	q := s.DB.Model(&models.Hotel{})
	if locationID != nil {
		q = q.Where("location_id = ?", *locationID)
	}

	var hotels []models.Hotel
	if err := q.Order("id ASC").Find(&hotels).Error; err != nil {
		return nil, fmt.Errorf("failed to list hotels: %w", err)
	}
	return hotels, nil
}

// SearchAvailableRooms returns the hotel's rooms with capacity >=
// minCapacity that are free for [checkIn, checkOut), ordered by id.
func (s *CatalogService) SearchAvailableRooms(hotelID uint, checkIn, checkOut string, minCapacity int) ([]models.Room, error) {
	ci, co, err := ParseDateRange(checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	if minCapacity <= 0 {
		return nil, domainErrf(KindValidation, "min_capacity must be positive")
	}

	var hotel models.Hotel
	if err := s.DB.First(&hotel, hotelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainErrf(KindNotFound, "hotel %d not found", hotelID)
		}
		return nil, fmt.Errorf("db error checking hotel %d: %w", hotelID, err)
	}

	var rooms []models.Room
	err = s.DB.
		Where("hotel_id = ? AND capacity >= ?", hotelID, minCapacity).
		Order("id ASC").
		Find(&rooms).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load rooms for hotel %d: %w", hotelID, err)
	}

	available := make([]models.Room, 0, len(rooms))
	for _, room := range rooms {
		confirmed, err := confirmedBookingsInWindow(s.DB, room.ID, ci, co)
		if err != nil {
			return nil, err
		}
		free, err := RoomIsAvailable(ci, co, confirmed)
		if err != nil {
			return nil, err
		}
		if free {
			available = append(available, room)
		}
	}
	return available, nil
}

// CreateLocation adds a catalog location. Name is unique.
func (s *CatalogService) CreateLocation(location *models.Location) error {
	location.Name = strings.TrimSpace(location.Name)
	if location.Name == "" {
		return domainErrf(KindValidation, "location name is required")
	}
	if location.City == "" || location.Country == "" {
		return domainErrf(KindValidation, "location city and country are required")
	}
	if err := s.DB.Create(location).Error; err != nil {
		if isDuplicateKey(err) {
			return domainErrf(KindConflict, "location %q already exists", location.Name)
		}
		return fmt.Errorf("failed to create location: %w", err)
	}
	return nil
}

// CreateHotel adds a hotel; when a location id is given it must exist.
func (s *CatalogService) CreateHotel(hotel *models.Hotel) error {
	hotel.Name = strings.TrimSpace(hotel.Name)
	if hotel.Name == "" {
		return domainErrf(KindValidation, "hotel name is required")
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if hotel.LocationID != nil {
			var location models.Location
			if err := tx.First(&location, *hotel.LocationID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return domainErrf(KindNotFound, "location %d not found", *hotel.LocationID)
				}
				return fmt.Errorf("db error checking location %d: %w", *hotel.LocationID, err)
			}
		}
		if err := tx.Create(hotel).Error; err != nil {
			return fmt.Errorf("failed to create hotel: %w", err)
		}
		return nil
	})
}

// CreateRoom adds a room to a hotel. (hotel_id, room_number) is unique.
func (s *CatalogService) CreateRoom(room *models.Room) error {
	room.RoomNumber = strings.TrimSpace(room.RoomNumber)
	if room.RoomNumber == "" {
		return domainErrf(KindValidation, "room_number is required")
	}
	if !room.RoomType.Valid() {
		return domainErrf(KindValidation, "invalid room_type %q", string(room.RoomType))
	}
	if room.Capacity <= 0 {
		return domainErrf(KindValidation, "capacity must be positive")
	}
	if room.PricePerNight < 0 {
		return domainErrf(KindValidation, "price_per_night must not be negative")
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var hotel models.Hotel
		if err := tx.First(&hotel, room.HotelID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainErrf(KindNotFound, "hotel %d not found", room.HotelID)
			}
			return fmt.Errorf("db error checking hotel %d: %w", room.HotelID, err)
		}
		if err := tx.Create(room).Error; err != nil {
			if isDuplicateKey(err) {
				return domainErrf(KindConflict, "room %s already exists in hotel %d", room.RoomNumber, room.HotelID)
			}
			return fmt.Errorf("failed to create room: %w", err)
		}
		return nil
	})
}
