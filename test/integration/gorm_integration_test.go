package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"airline-support-be/internal/repository/specification"
	"airline-support-be/internal/repository/unitofwork"
	"airline-support-be/pkg/database"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.FlightRepository())
	assert.NotNil(t, uow.BookingRepository())
	assert.NotNil(t, uow.ConversationSessionRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	// Verify Data Access (implies columns exist)
	t.Run("Check Flight Repository", func(t *testing.T) {
		count, err := uow.FlightRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Flight count: %d", count)
	})

	t.Run("Check Booking Repository", func(t *testing.T) {
		count, err := uow.BookingRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Booking count: %d", count)
	})

	t.Run("Check Seat Repository", func(t *testing.T) {
		count, err := uow.SeatRepository().Count(context.Background(), specification.AvailableOnly{})
		assert.NoError(t, err)
		t.Logf("Available seat count: %d", count)
	})
}
