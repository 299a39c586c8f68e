package controller

import (
	"fmt"

	"airline-support-be/internal/dto"
	"airline-support-be/internal/entity"
	"airline-support-be/internal/pkg/serverutils"
	"airline-support-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAirlineController interface {
	RegisterRoutes(r fiber.Router)
	Booking(ctx *fiber.Ctx) error
	Cancel(ctx *fiber.Ctx) error
	Status(ctx *fiber.Ctx) error
	AvailableSeats(ctx *fiber.Ctx) error
}

// airlineController exposes the airline operations directly, without
// the dialogue layer in front of them.
type airlineController struct {
	airlineService service.IAirlineService
}

func NewAirlineController(airlineService service.IAirlineService) IAirlineController {
	return &airlineController{
		airlineService: airlineService,
	}
}

func (c *airlineController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/flight/v1")
	h.Get("booking", c.Booking)
	h.Post("cancel", c.Cancel)
	h.Get("status", c.Status)
	h.Post("available-seats", c.AvailableSeats)
}

func (c *airlineController) Booking(ctx *fiber.Ctx) error {
	pnr := ctx.Query("pnr")
	if pnr == "" {
		return serverutils.BadRequestError("pnr query parameter is required")
	}

	booking, err := c.airlineService.GetBookingDetails(ctx.Context(), pnr)
	if err != nil {
		return err
	}
	if booking == nil {
		return serverutils.NotFoundError("No active booking found for this PNR")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show booking", booking))
}

func (c *airlineController) Cancel(ctx *fiber.Ctx) error {
	var req dto.CancelFlightRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	booking, err := c.airlineService.GetBookingDetails(ctx.Context(), req.Pnr)
	if err != nil {
		return err
	}
	if booking == nil {
		return serverutils.NotFoundError("No active booking found for this PNR")
	}

	result, err := c.airlineService.CancelBooking(ctx.Context(), &entity.BookingSnapshot{
		Pnr:                    booking.Pnr,
		FlightId:               booking.FlightId,
		SourceAirportCode:      booking.SourceAirportCode,
		DestinationAirportCode: booking.DestinationAirportCode,
		ScheduledDeparture:     booking.ScheduledDeparture,
		ScheduledArrival:       booking.ScheduledArrival,
		AssignedSeat:           booking.AssignedSeat,
	})
	if err != nil {
		return err
	}
	if result == nil {
		return serverutils.NotFoundError("Booking could not be cancelled")
	}

	return ctx.JSON(serverutils.SuccessResponse("Flight Cancelled", result))
}

func (c *airlineController) Status(ctx *fiber.Ctx) error {
	pnr := ctx.Query("pnr")
	if pnr == "" {
		return serverutils.BadRequestError("pnr query parameter is required")
	}

	status, assignedSeat, err := c.airlineService.GetFlightStatus(ctx.Context(), pnr)
	if err != nil {
		return err
	}
	if status == nil {
		return serverutils.NotFoundError("No active booking found for this PNR")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show flight status", fiber.Map{
		"status":        status,
		"assigned_seat": assignedSeat,
	}))
}

func (c *airlineController) AvailableSeats(ctx *fiber.Ctx) error {
	var req dto.SeatSearchRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	flights, err := c.airlineService.FindFlightsByRoute(ctx.Context(), req.Source, req.Destination)
	if err != nil {
		return err
	}

	res := make([]dto.FlightSeatAvailability, 0, len(flights))
	for _, flight := range flights {
		seats, err := c.airlineService.GetAvailableSeats(ctx.Context(), flight.FlightId)
		if err != nil {
			return err
		}

		availability := dto.FlightSeatAvailability{
			FlightId:               flight.FlightId,
			SourceAirportCode:      flight.SourceAirportCode,
			DestinationAirportCode: flight.DestinationAirportCode,
			ScheduledDeparture:     flight.ScheduledDeparture,
			EconomySeats:           []dto.SeatInfo{},
			BusinessSeats:          []dto.SeatInfo{},
		}
		for _, seat := range seats {
			info := dto.SeatInfo{
				SeatNumber: seatNumber(seat),
				SeatClass:  seat.SeatClass,
				Price:      seat.Price,
			}
			if seat.SeatClass == "Business" {
				availability.BusinessSeats = append(availability.BusinessSeats, info)
				availability.BusinessTotal++
			} else {
				availability.EconomySeats = append(availability.EconomySeats, info)
				availability.EconomyTotal++
			}
		}
		res = append(res, availability)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list available seats", res))
}

func seatNumber(seat *entity.Seat) string {
	return fmt.Sprintf("%d%s", seat.RowNumber, seat.ColumnLetter)
}
