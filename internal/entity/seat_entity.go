package entity

type Seat struct {
	Id            uint
	FlightId      uint
	RowNumber     int
	ColumnLetter  string
	SeatClass     string
	Price         float64
	IsAvailable   bool
	OccupiedByPnr string
}
