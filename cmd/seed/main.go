package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"airline-support-be/internal/model"
	"airline-support-be/internal/pkg/logger"
	"airline-support-be/internal/repository/unitofwork"
	"airline-support-be/internal/service"
	"airline-support-be/pkg/database"

	"github.com/joho/godotenv"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting database seeding...")

	log.Println("Clearing existing data...")
	clearSQL := []string{
		`DELETE FROM seat_details;`,
		`DELETE FROM booking_details;`,
		`DELETE FROM flight_details;`,
		`DELETE FROM task_definitions;`,
		`DELETE FROM request_types;`,
	}
	for _, sql := range clearSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Fatalf("Error: Failed to clear data: %v", err)
		}
	}

	flights := seedFlights(db)
	bookings := seedBookings(db, flights)
	seedSeats(db, flights, bookings)
	seedRequestTypes(db)
	seedPolicies(db)

	log.Println("✅ Database seeding completed successfully")
}

func seedFlights(db *gorm.DB) []model.Flight {
	log.Println("Seeding flights...")

	now := time.Now()
	delayedDeparture := now.Add(2*24*time.Hour + 7*time.Hour + 30*time.Minute)

	flights := []model.Flight{
		{
			SourceAirportCode:      "JFK",
			DestinationAirportCode: "LAX",
			ScheduledDeparture:     now.Add(5*24*time.Hour + 8*time.Hour),
			ScheduledArrival:       now.Add(5*24*time.Hour + 14*time.Hour),
			CurrentStatus:          "On Time",
			MaxRows:                30,
			MaxColumns:             6,
		},
		{
			SourceAirportCode:      "BOS",
			DestinationAirportCode: "SFO",
			ScheduledDeparture:     now.Add(3*24*time.Hour + 10*time.Hour),
			ScheduledArrival:       now.Add(3*24*time.Hour + 16*time.Hour + 30*time.Minute),
			CurrentStatus:          "On Time",
			MaxRows:                25,
			MaxColumns:             6,
		},
		{
			SourceAirportCode:      "ORD",
			DestinationAirportCode: "MIA",
			ScheduledDeparture:     now.Add(7*24*time.Hour + 14*time.Hour),
			ScheduledArrival:       now.Add(7*24*time.Hour + 17*time.Hour + 45*time.Minute),
			CurrentStatus:          "On Time",
			MaxRows:                28,
			MaxColumns:             6,
		},
		{
			SourceAirportCode:      "SEA",
			DestinationAirportCode: "JFK",
			ScheduledDeparture:     now.Add(2*24*time.Hour + 6*time.Hour),
			ScheduledArrival:       now.Add(2*24*time.Hour + 14*time.Hour + 20*time.Minute),
			CurrentStatus:          "Delayed",
			CurrentDeparture:       &delayedDeparture,
			MaxRows:                32,
			MaxColumns:             6,
		},
	}

	if err := db.Create(&flights).Error; err != nil {
		log.Fatalf("Error: Failed to seed flights: %v", err)
	}
	log.Printf("Added %d flights", len(flights))
	return flights
}

func seedBookings(db *gorm.DB, flights []model.Flight) []model.Booking {
	log.Println("Seeding bookings...")

	bookings := []model.Booking{
		{
			Pnr:            "ABC123",
			FlightId:       flights[0].FlightId,
			PassengerName:  "John Doe",
			PassengerEmail: "john.doe@example.com",
			AssignedSeat:   "12A",
			BookingStatus:  "Confirmed",
		},
		{
			Pnr:            "DEF456",
			FlightId:       flights[1].FlightId,
			PassengerName:  "Jane Smith",
			PassengerEmail: "jane.smith@example.com",
			AssignedSeat:   "8C",
			BookingStatus:  "Confirmed",
		},
		{
			Pnr:            "GHI789",
			FlightId:       flights[2].FlightId,
			PassengerName:  "Bob Johnson",
			PassengerEmail: "bob.j@example.com",
			AssignedSeat:   "15F",
			BookingStatus:  "Confirmed",
		},
		{
			Pnr:            "JKL012",
			FlightId:       flights[3].FlightId,
			PassengerName:  "Alice Williams",
			PassengerEmail: "alice.w@example.com",
			AssignedSeat:   "3B",
			BookingStatus:  "Confirmed",
		},
	}

	if err := db.Create(&bookings).Error; err != nil {
		log.Fatalf("Error: Failed to seed bookings: %v", err)
	}
	log.Printf("Added %d bookings", len(bookings))
	return bookings
}

func seedSeats(db *gorm.DB, flights []model.Flight, bookings []model.Booking) {
	log.Println("Seeding seats...")

	// PNR by flight and seat number, so occupied seats can be marked.
	occupied := make(map[uint]map[string]string)
	for _, b := range bookings {
		if occupied[b.FlightId] == nil {
			occupied[b.FlightId] = make(map[string]string)
		}
		occupied[b.FlightId][b.AssignedSeat] = b.Pnr
	}

	columns := []string{"A", "B", "C", "D", "E", "F"}

	var seats []model.Seat
	for _, flight := range flights {
		for row := 1; row <= flight.MaxRows; row++ {
			for _, col := range columns[:flight.MaxColumns] {
				seatClass := "Economy"
				price := 150.0
				if row <= 3 {
					seatClass = "Business"
					price = 500.0
				}

				seatId := columnSeatId(row, col)
				pnr := occupied[flight.FlightId][seatId]

				seats = append(seats, model.Seat{
					FlightId:      flight.FlightId,
					RowNumber:     row,
					ColumnLetter:  col,
					SeatClass:     seatClass,
					Price:         price,
					IsAvailable:   pnr == "",
					OccupiedByPnr: pnr,
				})
			}
		}
	}

	if err := db.CreateInBatches(&seats, 500).Error; err != nil {
		log.Fatalf("Error: Failed to seed seats: %v", err)
	}
	log.Printf("Added %d seats", len(seats))
}

func seedRequestTypes(db *gorm.DB) {
	log.Println("Seeding request types...")

	requestTypes := []model.RequestType{
		{
			Name:        "Cancel Trip",
			Description: "Handle flight cancellation requests",
			IsActive:    true,
			Tasks: []model.TaskDefinition{
				task("Get flight details from customer", "customer_input", 1, `{"input_type": "pnr"}`),
				task("Get booking details", "api_call", 2, `{"endpoint": "/flight/booking"}`),
				task("Confirm booking details with customer", "customer_input", 3, `{"input_type": "confirmation"}`),
				task("Cancel Flight", "api_call", 4, `{"endpoint": "/flight/cancel"}`),
				task("Inform Customer about cancellation and refund details", "response", 5, `{}`),
			},
		},
		{
			Name:        "Cancellation Policy",
			Description: "Provide cancellation policy information",
			IsActive:    true,
			Tasks: []model.TaskDefinition{
				task("Get cancellation policy details", "policy_lookup", 1, `{"policy_type": "cancellation"}`),
				task("Inform customer", "response", 2, `{}`),
			},
		},
		{
			Name:        "Flight Status",
			Description: "Check flight status",
			IsActive:    true,
			Tasks: []model.TaskDefinition{
				task("Get flight details from customer", "customer_input", 1, `{"input_type": "pnr"}`),
				task("Get flight status", "api_call", 2, `{"endpoint": "/flight/status"}`),
				task("Inform customer about the status", "response", 3, `{}`),
			},
		},
		{
			Name:        "Seat Availability",
			Description: "Check available seats",
			IsActive:    true,
			Tasks: []model.TaskDefinition{
				task("Get flight details from customer", "customer_input", 1, `{"input_type": "pnr"}`),
				task("Get seat availability", "api_call", 2, `{"endpoint": "/flight/available-seats"}`),
				task("Inform Customer", "response", 3, `{}`),
			},
		},
		{
			Name:        "Pet Travel",
			Description: "Pet travel policy information",
			IsActive:    true,
			Tasks: []model.TaskDefinition{
				task("Get pet travel policy", "policy_lookup", 1, `{"policy_type": "pet_travel"}`),
				task("Inform Customer", "response", 2, `{}`),
			},
		},
	}

	if err := db.Create(&requestTypes).Error; err != nil {
		log.Fatalf("Error: Failed to seed request types: %v", err)
	}
	log.Printf("Added %d request types", len(requestTypes))
}

func seedPolicies(db *gorm.DB) {
	log.Println("Initializing policies...")

	uowFactory := unitofwork.NewRepositoryFactory(db)
	seedLogger := logger.NewZapLogger("logs/seed.log", false)
	policyService := service.NewPolicyService(uowFactory, seedLogger)

	if err := policyService.SeedDefaults(context.Background()); err != nil {
		log.Fatalf("Error: Failed to seed policies: %v", err)
	}
}

func task(name, taskType string, order int, configuration string) model.TaskDefinition {
	return model.TaskDefinition{
		TaskName:       name,
		TaskType:       taskType,
		ExecutionOrder: order,
		Configuration:  datatypes.JSON([]byte(configuration)),
		IsActive:       true,
	}
}

func columnSeatId(row int, col string) string {
	return fmt.Sprintf("%d%s", row, col)
}
