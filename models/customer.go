package models

import "time"

// Customer identity is keyed on the phone number: the directory dedupes
// on it and the database enforces it.
type Customer struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	PhoneNumber string    `gorm:"column:phone_number;uniqueIndex;size:50;not null" json:"phone_number"`
	CreatedAt   time.Time `json:"-"`
}
