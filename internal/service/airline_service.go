package service

import (
	"context"
	"time"

	"airline-support-be/internal/constant"
	"airline-support-be/internal/dto"
	"airline-support-be/internal/entity"
	"airline-support-be/internal/pkg/logger"
	"airline-support-be/internal/repository/specification"
	"airline-support-be/internal/repository/unitofwork"
	"airline-support-be/pkg/events"
	pkgNats "airline-support-be/pkg/nats"
)

// BaseFare is the flat fare the cancellation charge is computed from.
// Fare classes are out of scope; every booking settles against this.
const BaseFare = 500.0

type IAirlineService interface {
	// GetBookingDetails returns the active booking for a PNR joined with
	// its flight, or nil when no non-cancelled booking exists.
	GetBookingDetails(ctx context.Context, pnr string) (*dto.BookingResponse, error)

	// HasCancelledBooking reports whether the PNR exists in cancelled state.
	HasCancelledBooking(ctx context.Context, pnr string) (bool, error)

	// CancelBooking cancels the booking behind a snapshot taken earlier in
	// the conversation. Returns nil when the booking is already gone or
	// the snapshot no longer matches the flight.
	CancelBooking(ctx context.Context, snapshot *entity.BookingSnapshot) (*dto.CancelFlightResponse, error)

	// GetFlightStatus returns live status for the flight behind an active
	// booking, or nil when the PNR has no active booking.
	GetFlightStatus(ctx context.Context, pnr string) (*dto.FlightStatusResponse, string, error)

	// FindFlightsByRoute matches flights by airport-code fragment on both
	// ends of the route.
	FindFlightsByRoute(ctx context.Context, source, destination string) ([]*entity.Flight, error)

	// CountAvailableSeats returns the number of open seats on a flight.
	CountAvailableSeats(ctx context.Context, flightId uint) (int64, error)

	// GetAvailableSeats lists the open seats on a flight.
	GetAvailableSeats(ctx context.Context, flightId uint) ([]*entity.Seat, error)
}

type airlineService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pkgNats.Publisher
	logger         logger.ILogger
}

func NewAirlineService(
	uowFactory unitofwork.RepositoryFactory,
	eventPublisher *pkgNats.Publisher,
	log logger.ILogger,
) IAirlineService {
	return &airlineService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

// CancellationCharges computes the fee for cancelling this long before
// departure. The schedule is banded on whole days, floored.
func CancellationCharges(timeToDeparture time.Duration) float64 {
	days := int(timeToDeparture.Hours() / 24)
	switch {
	case days > 7:
		return BaseFare * 0.10
	case days > 3:
		return BaseFare * 0.25
	case days > 1:
		return BaseFare * 0.50
	default:
		return BaseFare * 0.75
	}
}

func (s *airlineService) GetBookingDetails(ctx context.Context, pnr string) (*dto.BookingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	booking, err := uow.BookingRepository().FindOne(ctx,
		specification.ByPnr{Pnr: pnr},
		specification.ExcludeBookingStatus{Status: constant.BookingStatusCancelled},
	)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, nil
	}

	flight, err := uow.FlightRepository().FindOne(ctx, specification.ByFlightID{FlightID: booking.FlightId})
	if err != nil {
		return nil, err
	}
	if flight == nil {
		return nil, nil
	}

	return &dto.BookingResponse{
		Pnr:                    booking.Pnr,
		FlightId:               flight.FlightId,
		SourceAirportCode:      flight.SourceAirportCode,
		DestinationAirportCode: flight.DestinationAirportCode,
		ScheduledDeparture:     flight.ScheduledDeparture,
		ScheduledArrival:       flight.ScheduledArrival,
		AssignedSeat:           booking.AssignedSeat,
		PassengerName:          booking.PassengerName,
		BookingStatus:          booking.BookingStatus,
	}, nil
}

func (s *airlineService) HasCancelledBooking(ctx context.Context, pnr string) (bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	booking, err := uow.BookingRepository().FindOne(ctx,
		specification.ByPnr{Pnr: pnr},
		specification.ByBookingStatus{Status: constant.BookingStatusCancelled},
	)
	if err != nil {
		return false, err
	}
	return booking != nil, nil
}

func (s *airlineService) CancelBooking(ctx context.Context, snapshot *entity.BookingSnapshot) (*dto.CancelFlightResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	booking, err := uow.BookingRepository().FindOne(ctx,
		specification.ByPnr{Pnr: snapshot.Pnr},
		specification.ByFlightID{FlightID: snapshot.FlightId},
		specification.ExcludeBookingStatus{Status: constant.BookingStatusCancelled},
	)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, nil
	}

	flight, err := uow.FlightRepository().FindOne(ctx, specification.ByFlightID{FlightID: booking.FlightId})
	if err != nil {
		return nil, err
	}
	// The snapshot was taken a turn ago; reject it if the flight no
	// longer matches what the customer confirmed.
	if flight == nil ||
		flight.SourceAirportCode != snapshot.SourceAirportCode ||
		flight.DestinationAirportCode != snapshot.DestinationAirportCode {
		return nil, nil
	}

	charges := CancellationCharges(time.Until(flight.ScheduledDeparture))
	refund := BaseFare - charges
	refundDate := time.Now().UTC().Add(7 * 24 * time.Hour)

	booking.BookingStatus = constant.BookingStatusCancelled
	if err := uow.BookingRepository().Update(ctx, booking); err != nil {
		return nil, err
	}

	if booking.AssignedSeat != "" {
		if err := uow.SeatRepository().ReleaseByPnr(ctx, booking.Pnr); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		evt := events.NewBookingCancelledEvent(booking.Pnr, booking.FlightId, refund)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("airline", "failed to publish BOOKING_CANCELLED event", map[string]interface{}{
				"pnr":   booking.Pnr,
				"error": err.Error(),
			})
		}
	}

	return &dto.CancelFlightResponse{
		Pnr:             booking.Pnr,
		CancellationFee: charges,
		RefundAmount:    refund,
		RefundIssueDate: refundDate,
	}, nil
}

func (s *airlineService) GetFlightStatus(ctx context.Context, pnr string) (*dto.FlightStatusResponse, string, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	booking, err := uow.BookingRepository().FindOne(ctx,
		specification.ByPnr{Pnr: pnr},
		specification.ExcludeBookingStatus{Status: constant.BookingStatusCancelled},
	)
	if err != nil {
		return nil, "", err
	}
	if booking == nil {
		return nil, "", nil
	}

	flight, err := uow.FlightRepository().FindOne(ctx, specification.ByFlightID{FlightID: booking.FlightId})
	if err != nil {
		return nil, "", err
	}
	if flight == nil {
		return nil, "", nil
	}

	status := &dto.FlightStatusResponse{
		FlightId:               flight.FlightId,
		SourceAirportCode:      flight.SourceAirportCode,
		DestinationAirportCode: flight.DestinationAirportCode,
		ScheduledDeparture:     flight.ScheduledDeparture,
		ScheduledArrival:       flight.ScheduledArrival,
		CurrentDeparture:       flight.CurrentDeparture,
		CurrentArrival:         flight.CurrentArrival,
		CurrentStatus:          flight.CurrentStatus,
	}
	return status, booking.AssignedSeat, nil
}

func (s *airlineService) FindFlightsByRoute(ctx context.Context, source, destination string) ([]*entity.Flight, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	srcFrag := source
	if len(srcFrag) > 3 {
		srcFrag = srcFrag[:3]
	}
	dstFrag := destination
	if len(dstFrag) > 3 {
		dstFrag = dstFrag[:3]
	}

	return uow.FlightRepository().FindAll(ctx, specification.ByRouteLike{
		SourceFragment:      srcFrag,
		DestinationFragment: dstFrag,
	})
}

func (s *airlineService) CountAvailableSeats(ctx context.Context, flightId uint) (int64, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.SeatRepository().Count(ctx,
		specification.ByFlightID{FlightID: flightId},
		specification.AvailableOnly{},
	)
}

func (s *airlineService) GetAvailableSeats(ctx context.Context, flightId uint) ([]*entity.Seat, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.SeatRepository().FindAll(ctx,
		specification.ByFlightID{FlightID: flightId},
		specification.AvailableOnly{},
	)
}
