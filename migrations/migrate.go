package migrations

import (
	"log"

	"github.com/SyedaFakhiraSaghir/Personal-Assistant/models"
	"github.com/SyedaFakhiraSaghir/Personal-Assistant/utils"
)

// Migrate creates or updates every table. The user table goes first so the
// cascade foreign keys on the per-user tables can be created.
func Migrate() {
	err := utils.DB.AutoMigrate(
		&models.User{},
		&models.Notification{},
		&models.Mood{},
		&models.HealthRecord{},
		&models.Income{},
		&models.Expense{},
		&models.Note{},
		&models.Event{},
		&models.Recipe{},
		&models.GroceryItem{},
		&models.Book{},
		&models.Quote{},
	)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
}
