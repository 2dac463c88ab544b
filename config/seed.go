package config

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"hms-backend/models"
)

var seedCities = map[string][]string{
	"USA":     {"New York", "Los Angeles"},
	"UK":      {"London", "Edinburgh"},
	"France":  {"Paris", "Lyon"},
	"Germany": {"Berlin", "Munich"},
	"Japan":   {"Tokyo", "Kyoto"},
}

var seedRoomTypes = []struct {
	Type          models.RoomType
	Capacity      int
	PricePerNight int // minor units
}{
	{models.RoomTypeSingle, 1, 9900},
	{models.RoomTypeDouble, 2, 14900},
	{models.RoomTypeSuite, 4, 28900},
}

// SeedDatabase fills an empty catalog with demo locations, hotels and
// rooms. Existing data is left alone.
func SeedDatabase(db *gorm.DB) error {
	var locationCount int64
	if err := db.Model(&models.Location{}).Count(&locationCount).Error; err != nil {
		return fmt.Errorf("failed to count locations: %w", err)
	}
	if locationCount > 0 {
		log.Println("catalog already seeded")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for country, cities := range seedCities {
			for _, city := range cities {
				location := models.Location{
					Name:    fmt.Sprintf("%s Center", city),
					Address: fmt.Sprintf("1 Main Street, %s", city),
					City:    city,
					Country: country,
				}
				if err := tx.Create(&location).Error; err != nil {
					return fmt.Errorf("failed to seed location %s: %w", city, err)
				}

				for h := 1; h <= 2; h++ {
					hotel := models.Hotel{
						Name:       fmt.Sprintf("%s Grand Hotel %d", city, h),
						LocationID: &location.ID,
					}
					if err := tx.Create(&hotel).Error; err != nil {
						return fmt.Errorf("failed to seed hotel in %s: %w", city, err)
					}

					number := 100
					for _, rt := range seedRoomTypes {
						for i := 0; i < 3; i++ {
							number++
							room := models.Room{
								HotelID:       hotel.ID,
								RoomNumber:    fmt.Sprintf("%d", number),
								RoomType:      rt.Type,
								PricePerNight: rt.PricePerNight,
								Capacity:      rt.Capacity,
							}
							if err := tx.Create(&room).Error; err != nil {
								return fmt.Errorf("failed to seed room %s: %w", room.RoomNumber, err)
							}
						}
					}
				}
			}
		}
		log.Println("demo catalog seeded")
		return nil
	})
}
