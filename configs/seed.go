package configs

import (
	"log/slog"

	"github.com/23CSE311-SeeFood/seeFood-Backend/entity"
	"gorm.io/gorm"
)

func ptr[T any](v T) *T { return &v }

// SeedDemoData adds a couple of canteens with menus for local development.
// It does nothing when any canteen exists.
func SeedDemoData(db *gorm.DB, log *slog.Logger) error {
	var count int64
	if err := db.Model(&entity.Canteen{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Info("skip seeding: canteens already exist", "count", count)
		return nil
	}

	menus := map[string][]entity.Item{
		"Main Canteen": {
			{Name: "Idli", Price: 30, IsVeg: true, Rating: ptr(4.5)},
			{Name: "Masala Dosa", Price: 50, IsVeg: true},
			{Name: "Chicken Biryani", Price: 120, IsVeg: false, Rating: ptr(4.1)},
		},
		"Juice Corner": {
			{Name: "Tea", Price: 15, IsVeg: true},
			{Name: "Lime Soda", Price: 25, IsVeg: true},
		},
	}
	canteens := []entity.Canteen{
		{Name: "Main Canteen", Ratings: ptr(4.2)},
		{Name: "Juice Corner"},
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		for i := range canteens {
			if err := tx.Create(&canteens[i]).Error; err != nil {
				return err
			}
			items := menus[canteens[i].Name]
			for j := range items {
				items[j].CanteenID = canteens[i].ID
			}
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	log.Info("demo data seeded", "canteens", len(canteens))
	return nil
}
