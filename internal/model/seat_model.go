package model

type Seat struct {
	Id            uint    `gorm:"primaryKey;autoIncrement"`
	FlightId      uint    `gorm:"not null;index"`
	RowNumber     int     `gorm:"not null"`
	ColumnLetter  string  `gorm:"type:varchar(1);not null"`
	SeatClass     string  `gorm:"type:varchar(20);not null;default:'Economy'"`
	Price         float64 `gorm:"not null;default:0"`
	IsAvailable   bool    `gorm:"not null;default:true"`
	OccupiedByPnr string  `gorm:"type:varchar(20)"`
}

func (Seat) TableName() string {
	return "seat_details"
}
