package dto

import "time"

type BookingResponse struct {
	Pnr                    string    `json:"pnr"`
	FlightId               uint      `json:"flight_id"`
	SourceAirportCode      string    `json:"source_airport_code"`
	DestinationAirportCode string    `json:"destination_airport_code"`
	ScheduledDeparture     time.Time `json:"scheduled_departure"`
	ScheduledArrival       time.Time `json:"scheduled_arrival"`
	AssignedSeat           string    `json:"assigned_seat,omitempty"`
	PassengerName          string    `json:"passenger_name"`
	BookingStatus          string    `json:"booking_status"`
}

type CancelFlightRequest struct {
	Pnr string `json:"pnr" validate:"required"`
}

type CancelFlightResponse struct {
	Pnr             string    `json:"pnr"`
	CancellationFee float64   `json:"cancellation_fee"`
	RefundAmount    float64   `json:"refund_amount"`
	RefundIssueDate time.Time `json:"refund_issue_date"`
}

type FlightStatusResponse struct {
	FlightId               uint       `json:"flight_id"`
	SourceAirportCode      string     `json:"source_airport_code"`
	DestinationAirportCode string     `json:"destination_airport_code"`
	ScheduledDeparture     time.Time  `json:"scheduled_departure"`
	ScheduledArrival       time.Time  `json:"scheduled_arrival"`
	CurrentDeparture       *time.Time `json:"current_departure,omitempty"`
	CurrentArrival         *time.Time `json:"current_arrival,omitempty"`
	CurrentStatus          string     `json:"current_status"`
}

type SeatInfo struct {
	SeatNumber string  `json:"seat_number"`
	SeatClass  string  `json:"seat_class"`
	Price      float64 `json:"price"`
}

type FlightSeatAvailability struct {
	FlightId               uint       `json:"flight_id"`
	SourceAirportCode      string     `json:"source_airport_code"`
	DestinationAirportCode string     `json:"destination_airport_code"`
	ScheduledDeparture     time.Time  `json:"scheduled_departure"`
	EconomySeats           []SeatInfo `json:"economy_seats"`
	BusinessSeats          []SeatInfo `json:"business_seats"`
	EconomyTotal           int        `json:"economy_total"`
	BusinessTotal          int        `json:"business_total"`
}

type SeatSearchRequest struct {
	Source      string `json:"source" validate:"required"`
	Destination string `json:"destination" validate:"required"`
}
