package services

import (
	"time"

	"hms-backend/models"
)

const dateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string into a midnight-UTC time.Time.
// Every date entering the engine goes through this.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, domainErrf(KindInvalidRange, "invalid date %q: want YYYY-MM-DD", value)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// ParseDateRange parses and validates a check-in/check-out pair.
// Check-out must be strictly after check-in.
func ParseDateRange(checkIn, checkOut string) (time.Time, time.Time, error) {
	ci, err := ParseDate(checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	co, err := ParseDate(checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !co.After(ci) {
		return time.Time{}, time.Time{}, domainErrf(KindInvalidRange,
			"check_out_date %s must be after check_in_date %s", checkOut, checkIn)
	}
	return ci, co, nil
}

// rangesOverlap reports whether half-open [a,b) and [c,d) intersect.
// Adjacent ranges (b == c or a == d) do not: checkout day may equal
// another stay's checkin day.
func rangesOverlap(a, b, c, d time.Time) bool {
	// NOT (b <= c OR a >= d)
	return b.After(c) && a.Before(d)
}

// RoomIsAvailable reports whether a room is free for [checkIn, checkOut)
// given that room's existing confirmed bookings. It is pure: callers
// supply the candidate set and it performs no I/O.
func RoomIsAvailable(checkIn, checkOut time.Time, confirmed []models.Booking) (bool, error) {
	if !checkOut.After(checkIn) {
		return false, domainErrf(KindInvalidRange, "check_out_date must be after check_in_date")
	}
	for _, b := range confirmed {
		if b.Status != models.BookingConfirmed {
			continue
		}
		if rangesOverlap(checkIn, checkOut, b.CheckIn(), b.CheckOut()) {
			return false, nil
		}
	}
	return true, nil
}
