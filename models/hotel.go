package models

import "time"

type Hotel struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"size:255;not null" json:"name"`
	LocationID *uint     `gorm:"column:location_id;index" json:"location_id,omitempty"`
	CreatedAt  time.Time `json:"-"`

	Location Location `gorm:"foreignKey:LocationID" json:"location,omitempty"`
	Rooms    []Room   `gorm:"foreignKey:HotelID" json:"rooms,omitempty"`
}
