package models

import (
	"time"

	"gorm.io/datatypes"
)

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// Booking holds a half-open [check_in_date, check_out_date) stay.
// Only confirmed bookings participate in the per-room non-overlap
// invariant. Rows are never deleted; confirmed -> cancelled and
// confirmed -> completed are the only legal transitions.
type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ReferenceCode string `gorm:"column:reference_code;uniqueIndex;size:16;not null" json:"reference_code"`

	CustomerID uint `gorm:"column:customer_id;index;not null" json:"customer_id"`
	RoomID     uint `gorm:"column:room_id;index;not null" json:"room_id"`

	CheckInDate  datatypes.Date `gorm:"column:check_in_date;not null" json:"-"`
	CheckOutDate datatypes.Date `gorm:"column:check_out_date;not null" json:"-"`

	Status BookingStatus `gorm:"size:32;not null;default:confirmed" json:"status"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Customer Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Room     Room     `gorm:"foreignKey:RoomID" json:"room,omitempty"`
}

// CheckIn returns the stay start as a plain time.Time at midnight UTC.
func (b Booking) CheckIn() time.Time { return time.Time(b.CheckInDate) }

// CheckOut returns the stay end as a plain time.Time at midnight UTC.
func (b Booking) CheckOut() time.Time { return time.Time(b.CheckOutDate) }
