package database

import (
	"log"

	"gorm.io/gorm"

	"github.com/verdantis/herbal-life/backend/internal/models"
)

// Migrate creates or updates the catalog schema. Junction tables
// (plant_benefits, remedy_benefits) are created by gorm from the many2many
// relations with composite primary keys.
func Migrate(db *gorm.DB) error {
	log.Printf("Running schema migration (%s)", db.Dialector.Name())
	return db.AutoMigrate(
		&models.User{},
		&models.PlantCategory{},
		&models.RemedyCategory{},
		&models.Benefit{},
		&models.Plant{},
		&models.PlantImage{},
		&models.Remedy{},
		&models.Ingredient{},
		&models.PreparationStep{},
	)
}
