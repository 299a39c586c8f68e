package entity

import "time"

type Flight struct {
	FlightId               uint
	SourceAirportCode      string
	DestinationAirportCode string
	ScheduledDeparture     time.Time
	ScheduledArrival       time.Time
	CurrentDeparture       *time.Time
	CurrentArrival         *time.Time
	CurrentStatus          string
	MaxRows                int
	MaxColumns             int
}
