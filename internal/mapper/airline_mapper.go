package mapper

import (
	"airline-support-be/internal/entity"
	"airline-support-be/internal/model"
)

type FlightMapper struct{}

func NewFlightMapper() *FlightMapper {
	return &FlightMapper{}
}

func (m *FlightMapper) ToEntity(f *model.Flight) *entity.Flight {
	if f == nil {
		return nil
	}
	return &entity.Flight{
		FlightId:               f.FlightId,
		SourceAirportCode:      f.SourceAirportCode,
		DestinationAirportCode: f.DestinationAirportCode,
		ScheduledDeparture:     f.ScheduledDeparture,
		ScheduledArrival:       f.ScheduledArrival,
		CurrentDeparture:       f.CurrentDeparture,
		CurrentArrival:         f.CurrentArrival,
		CurrentStatus:          f.CurrentStatus,
		MaxRows:                f.MaxRows,
		MaxColumns:             f.MaxColumns,
	}
}

func (m *FlightMapper) ToModel(f *entity.Flight) *model.Flight {
	if f == nil {
		return nil
	}
	return &model.Flight{
		FlightId:               f.FlightId,
		SourceAirportCode:      f.SourceAirportCode,
		DestinationAirportCode: f.DestinationAirportCode,
		ScheduledDeparture:     f.ScheduledDeparture,
		ScheduledArrival:       f.ScheduledArrival,
		CurrentDeparture:       f.CurrentDeparture,
		CurrentArrival:         f.CurrentArrival,
		CurrentStatus:          f.CurrentStatus,
		MaxRows:                f.MaxRows,
		MaxColumns:             f.MaxColumns,
	}
}

func (m *FlightMapper) ToEntities(flights []*model.Flight) []*entity.Flight {
	entities := make([]*entity.Flight, len(flights))
	for i, f := range flights {
		entities[i] = m.ToEntity(f)
	}
	return entities
}

type BookingMapper struct{}

func NewBookingMapper() *BookingMapper {
	return &BookingMapper{}
}

func (m *BookingMapper) ToEntity(b *model.Booking) *entity.Booking {
	if b == nil {
		return nil
	}
	return &entity.Booking{
		Pnr:            b.Pnr,
		FlightId:       b.FlightId,
		AssignedSeat:   b.AssignedSeat,
		PassengerName:  b.PassengerName,
		PassengerEmail: b.PassengerEmail,
		BookingStatus:  b.BookingStatus,
		CreatedAt:      b.CreatedAt,
	}
}

func (m *BookingMapper) ToModel(b *entity.Booking) *model.Booking {
	if b == nil {
		return nil
	}
	return &model.Booking{
		Pnr:            b.Pnr,
		FlightId:       b.FlightId,
		AssignedSeat:   b.AssignedSeat,
		PassengerName:  b.PassengerName,
		PassengerEmail: b.PassengerEmail,
		BookingStatus:  b.BookingStatus,
		CreatedAt:      b.CreatedAt,
	}
}

func (m *BookingMapper) ToEntities(bookings []*model.Booking) []*entity.Booking {
	entities := make([]*entity.Booking, len(bookings))
	for i, b := range bookings {
		entities[i] = m.ToEntity(b)
	}
	return entities
}

type SeatMapper struct{}

func NewSeatMapper() *SeatMapper {
	return &SeatMapper{}
}

func (m *SeatMapper) ToEntity(s *model.Seat) *entity.Seat {
	if s == nil {
		return nil
	}
	return &entity.Seat{
		Id:            s.Id,
		FlightId:      s.FlightId,
		RowNumber:     s.RowNumber,
		ColumnLetter:  s.ColumnLetter,
		SeatClass:     s.SeatClass,
		Price:         s.Price,
		IsAvailable:   s.IsAvailable,
		OccupiedByPnr: s.OccupiedByPnr,
	}
}

func (m *SeatMapper) ToModel(s *entity.Seat) *model.Seat {
	if s == nil {
		return nil
	}
	return &model.Seat{
		Id:            s.Id,
		FlightId:      s.FlightId,
		RowNumber:     s.RowNumber,
		ColumnLetter:  s.ColumnLetter,
		SeatClass:     s.SeatClass,
		Price:         s.Price,
		IsAvailable:   s.IsAvailable,
		OccupiedByPnr: s.OccupiedByPnr,
	}
}

func (m *SeatMapper) ToEntities(seats []*model.Seat) []*entity.Seat {
	entities := make([]*entity.Seat, len(seats))
	for i, s := range seats {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
