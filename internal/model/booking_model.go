package model

import "time"

type Booking struct {
	Pnr            string    `gorm:"type:varchar(20);primaryKey"`
	FlightId       uint      `gorm:"not null;index"`
	AssignedSeat   string    `gorm:"type:varchar(5)"`
	PassengerName  string    `gorm:"type:varchar(100);not null"`
	PassengerEmail string    `gorm:"type:varchar(100)"`
	BookingStatus  string    `gorm:"type:varchar(20);not null;default:'Confirmed'"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

func (Booking) TableName() string {
	return "booking_details"
}
