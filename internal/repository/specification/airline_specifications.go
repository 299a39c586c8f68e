package specification

import "gorm.io/gorm"

type ByPnr struct {
	Pnr string
}

func (s ByPnr) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("pnr = ?", s.Pnr)
}

type ByBookingStatus struct {
	Status string
}

func (s ByBookingStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("booking_status = ?", s.Status)
}

type ExcludeBookingStatus struct {
	Status string
}

func (s ExcludeBookingStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("booking_status <> ?", s.Status)
}

type ByFlightID struct {
	FlightID uint
}

func (s ByFlightID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("flight_id = ?", s.FlightID)
}

// ByRouteLike matches airport codes by fragment on either end of the
// route, so partial city or code tokens still find candidate flights.
type ByRouteLike struct {
	SourceFragment      string
	DestinationFragment string
}

func (s ByRouteLike) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(
		"source_airport_code ILIKE ? AND destination_airport_code ILIKE ?",
		"%"+s.SourceFragment+"%",
		"%"+s.DestinationFragment+"%",
	)
}

type AvailableOnly struct{}

func (s AvailableOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_available = ?", true)
}

type OccupiedByPnr struct {
	Pnr string
}

func (s OccupiedByPnr) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("occupied_by_pnr = ?", s.Pnr)
}
