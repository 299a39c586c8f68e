package model

import "time"

type Flight struct {
	FlightId               uint      `gorm:"primaryKey;autoIncrement"`
	SourceAirportCode      string    `gorm:"type:char(3);not null"`
	DestinationAirportCode string    `gorm:"type:char(3);not null"`
	ScheduledDeparture     time.Time `gorm:"not null"`
	ScheduledArrival       time.Time `gorm:"not null"`
	CurrentDeparture       *time.Time
	CurrentArrival         *time.Time
	CurrentStatus          string `gorm:"type:varchar(20);default:'On Time'"`
	MaxRows                int    `gorm:"not null;default:30"`
	MaxColumns             int    `gorm:"not null;default:6"`
}

func (Flight) TableName() string {
	return "flight_details"
}
