package models

import "time"

// RoomType is a closed set; anything else is rejected before it reaches
// the database.
type RoomType string

const (
	RoomTypeSingle RoomType = "Single"
	RoomTypeDouble RoomType = "Double"
	RoomTypeSuite  RoomType = "Suite"
)

func (t RoomType) Valid() bool {
	switch t {
	case RoomTypeSingle, RoomTypeDouble, RoomTypeSuite:
		return true
	}
	return false
}

type Room struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	HotelID uint `gorm:"column:hotel_id;uniqueIndex:idx_hotel_room;not null" json:"hotel_id"`

	RoomNumber string   `gorm:"column:room_number;uniqueIndex:idx_hotel_room;size:50;not null" json:"room_number"`
	RoomType   RoomType `gorm:"column:room_type;size:32;not null" json:"room_type"`

	// Minor currency units (e.g. cents). Never a float.
	PricePerNight int `gorm:"column:price_per_night;not null" json:"price_per_night"`
	Capacity      int `gorm:"not null" json:"capacity"`

	CreatedAt time.Time `json:"-"`

	Hotel Hotel `gorm:"foreignKey:HotelID" json:"hotel,omitempty"`
}
