package entity

import "time"

type Booking struct {
	Pnr            string
	FlightId       uint
	AssignedSeat   string
	PassengerName  string
	PassengerEmail string
	BookingStatus  string
	CreatedAt      time.Time
}
