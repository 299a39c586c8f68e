package main

import (
	"log"
	"os"

	"airline-support-be/internal/model"
	"airline-support-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting GORM Migration...")

	// 3. AutoMigrate All Models
	models := []interface{}{
		&model.Flight{},
		&model.Booking{},
		&model.Seat{},
		&model.PolicyDocument{},
		&model.RequestType{},
		&model.TaskDefinition{},
		&model.ConversationSession{},
		&model.ConversationMessage{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	log.Printf("✅ Migration completed for %d tables", len(models))
}
