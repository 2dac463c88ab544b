package models

import "time"

// Location is a city/country entry the catalog hangs hotels off.
// Rows are created by catalog management and never deleted.
type Location struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:255;not null" json:"name"`
	Address   string    `gorm:"size:255;not null" json:"address"`
	City      string    `gorm:"size:128;not null" json:"city"`
	Country   string    `gorm:"size:128;not null" json:"country"`
	CreatedAt time.Time `json:"-"`

	Hotels []Hotel `gorm:"foreignKey:LocationID" json:"hotels,omitempty"`
}
