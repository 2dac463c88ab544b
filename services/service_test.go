package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hms-backend/config"
	"hms-backend/models"
)

var testDBSeq atomic.Int64

// newTestDB opens a fresh in-memory sqlite store with the schema
// applied. A single connection keeps the memory database alive for the
// test's lifetime.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:hmstest%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, config.Migrate(db))
	return db
}

type fixture struct {
	Location models.Location
	Hotel    models.Hotel
	Room     models.Room
	Customer models.Customer
}

// newFixture seeds one location, hotel, double room and customer.
func newFixture(t *testing.T, db *gorm.DB) fixture {
	t.Helper()

	fx := fixture{
		Location: models.Location{Name: "Paris Center", Address: "1 Rue de Test", City: "Paris", Country: "France"},
	}
	require.NoError(t, db.Create(&fx.Location).Error)

	fx.Hotel = models.Hotel{Name: "Paris Grand Hotel", LocationID: &fx.Location.ID}
	require.NoError(t, db.Create(&fx.Hotel).Error)

	fx.Room = models.Room{
		HotelID:       fx.Hotel.ID,
		RoomNumber:    "101",
		RoomType:      models.RoomTypeDouble,
		PricePerNight: 14900,
		Capacity:      2,
	}
	require.NoError(t, db.Create(&fx.Room).Error)

	fx.Customer = models.Customer{Name: "Alice Martin", PhoneNumber: "555-0100"}
	require.NoError(t, db.Create(&fx.Customer).Error)

	return fx
}

func countBookings(t *testing.T, db *gorm.DB, roomID uint) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&models.Booking{}).Where("room_id = ?", roomID).Count(&n).Error)
	return n
}
