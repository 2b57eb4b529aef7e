package migration

import (
	entities2 "Meal-Tracker-API/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {

	if err := db.AutoMigrate(&entities2.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities2.Food{}); err != nil {
		log.Fatalf("Error migrating food database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities2.Meal{}, &entities2.MealItem{}); err != nil {
		log.Fatalf("Error migrating meal database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities2.MealLog{}, &entities2.MealLogItem{}); err != nil {
		log.Fatalf("Error migrating meal log database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
