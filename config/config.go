package config

import (
	"fmt"
	"log"
	"os"

	"github.com/rikuto-mikado/fitness-tracker/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}

// Migrate applies the schema for every tracked entity. Shared with the test
// setup, which runs it against sqlite.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.WeightRecord{},
		&models.ExerciseType{},
		&models.WorkoutSession{},
		&models.Goal{},
		&models.Alert{},
	)
}
