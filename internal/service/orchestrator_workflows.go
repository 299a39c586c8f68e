package service

import (
	"context"
	"fmt"
	"strings"

	"airline-support-be/internal/constant"
	"airline-support-be/internal/entity"
)

// Per-intent workflow handlers. Each one reads and mutates the session's
// workflow state; the caller persists the session afterwards.

func (s *orchestratorService) handleCancelTrip(ctx context.Context, session *entity.ConversationSession, query string) (*turnResult, error) {
	state := &session.State

	switch state.Step {
	case 0:
		pnr := s.intents.Extract(ctx, query, "PNR or booking reference")
		if pnr == "" || pnr == constant.ExtractNotFound || len(pnr) <= 3 {
			return &turnResult{
				Response:   "To cancel your trip, I'll need your PNR (booking reference). Could you please provide it?",
				NeedsInput: true,
				InputType:  constant.InputTypePNR,
			}, nil
		}

		state.Collected.Pnr = pnr

		booking, err := s.airline.GetBookingDetails(ctx, pnr)
		if err != nil {
			return nil, err
		}
		if booking == nil {
			cancelled, err := s.airline.HasCancelledBooking(ctx, pnr)
			if err != nil {
				return nil, err
			}
			if cancelled {
				state.Step = constant.StepTerminal
				state.Collected = entity.CollectedData{}
				session.Status = constant.SessionStatusCompleted
				return &turnResult{
					Response: fmt.Sprintf("The booking with PNR %s has already been cancelled. If you have any questions about this cancellation or need to make a new booking, please let me know!", pnr),
				}, nil
			}
			return &turnResult{
				Response:   fmt.Sprintf("I couldn't find an active booking with PNR %s. Please verify and provide the correct PNR.", pnr),
				NeedsInput: true,
				InputType:  constant.InputTypePNR,
			}, nil
		}

		// Snapshot the booking so the confirmation turn can settle the
		// cancellation without a second lookup.
		state.Collected.Booking = &entity.BookingSnapshot{
			Pnr:                    booking.Pnr,
			FlightId:               booking.FlightId,
			SourceAirportCode:      booking.SourceAirportCode,
			DestinationAirportCode: booking.DestinationAirportCode,
			ScheduledDeparture:     booking.ScheduledDeparture,
			ScheduledArrival:       booking.ScheduledArrival,
			AssignedSeat:           booking.AssignedSeat,
		}
		state.Step = 2

		var b strings.Builder
		fmt.Fprintf(&b, "I found your booking (PNR: %s):\n", pnr)
		fmt.Fprintf(&b, "Flight from %s to %s\n", booking.SourceAirportCode, booking.DestinationAirportCode)
		fmt.Fprintf(&b, "Departure: %s\n", booking.ScheduledDeparture.Format("2006-01-02 15:04"))
		fmt.Fprintf(&b, "Seat: %s\n\n", booking.AssignedSeat)
		b.WriteString("Are you sure you want to cancel this flight? Please confirm (yes/no).")

		return &turnResult{
			Response:   b.String(),
			NeedsInput: true,
			InputType:  constant.InputTypeConfirmation,
		}, nil

	case 2:
		confirmation := strings.ToLower(query)
		if !strings.Contains(confirmation, "yes") && !strings.Contains(confirmation, "confirm") {
			state.Step = constant.StepTerminal
			state.Collected = entity.CollectedData{}
			session.Status = constant.SessionStatusCompleted
			return &turnResult{
				Response: "Cancellation cancelled. Is there anything else I can help you with?",
			}, nil
		}

		snapshot := state.Collected.Booking
		if snapshot == nil {
			state.Step = constant.StepTerminal
			state.Collected = entity.CollectedData{}
			session.Status = constant.SessionStatusFailed
			return &turnResult{
				Response: "I'm sorry, I lost the booking information. Please start over by providing your PNR.",
			}, nil
		}

		result, err := s.airline.CancelBooking(ctx, snapshot)
		if err != nil {
			return nil, err
		}
		if result == nil {
			state.Step = constant.StepTerminal
			session.Status = constant.SessionStatusFailed
			return &turnResult{
				Response: "I encountered an error processing your cancellation. Please try again or contact support.",
			}, nil
		}

		state.Step = constant.StepTerminal
		session.Status = constant.SessionStatusCompleted

		var b strings.Builder
		b.WriteString("Flight Cancelled\n\n")
		fmt.Fprintf(&b, "Cancellation charges: $%.2f\n", result.CancellationFee)
		fmt.Fprintf(&b, "Refund amount: $%.2f\n", result.RefundAmount)
		fmt.Fprintf(&b, "Refund will be processed by: %s\n\n", result.RefundIssueDate.Format("2006-01-02"))
		b.WriteString("Is there anything else I can help you with?")

		return &turnResult{Response: b.String()}, nil
	}

	state.Step = constant.StepTerminal
	state.Collected = entity.CollectedData{}
	session.Status = constant.SessionStatusFailed
	return &turnResult{Response: constant.GenericRetryMessage}, nil
}

// handlePolicyInquiry answers the three policy intents from the policy
// store, falling back to the built-in text when nothing is stored.
func (s *orchestratorService) handlePolicyInquiry(ctx context.Context, session *entity.ConversationSession, policyType, fallbackText string) (*turnResult, error) {
	policy, err := s.policies.GetPolicyByType(ctx, policyType)
	if err != nil {
		return nil, err
	}

	var response string
	if policy != nil {
		response = fmt.Sprintf("%s\n\n%s\n\n", policy.Title, policy.Content)
		if policy.SourceURL != "" {
			response += "For more details, visit: " + policy.SourceURL
		}
	} else {
		response = fallbackText
	}

	session.Status = constant.SessionStatusCompleted

	return &turnResult{Response: response}, nil
}

func (s *orchestratorService) handleFlightStatus(ctx context.Context, session *entity.ConversationSession, query string) (*turnResult, error) {
	state := &session.State

	if state.Step == 0 {
		pnr := s.intents.Extract(ctx, query, "PNR or booking reference")
		if pnr == "" || pnr == constant.ExtractNotFound || len(pnr) <= 3 {
			return &turnResult{
				Response:   "To check your flight status, please provide your PNR (booking reference).",
				NeedsInput: true,
				InputType:  constant.InputTypePNR,
			}, nil
		}

		state.Collected.Pnr = pnr

		status, assignedSeat, err := s.airline.GetFlightStatus(ctx, pnr)
		if err != nil {
			return nil, err
		}
		if status == nil {
			cancelled, err := s.airline.HasCancelledBooking(ctx, pnr)
			if err != nil {
				return nil, err
			}
			if cancelled {
				state.Step = constant.StepTerminal
				state.Collected = entity.CollectedData{}
				session.Status = constant.SessionStatusCompleted
				return &turnResult{
					Response: fmt.Sprintf("The booking with PNR %s has been cancelled. I cannot provide flight status for cancelled bookings. Is there anything else I can help you with?", pnr),
				}, nil
			}
			return &turnResult{
				Response:   fmt.Sprintf("I couldn't find an active booking with PNR %s. Please verify your booking reference.", pnr),
				NeedsInput: true,
				InputType:  constant.InputTypePNR,
			}, nil
		}

		currentDeparture := status.ScheduledDeparture
		if status.CurrentDeparture != nil {
			currentDeparture = *status.CurrentDeparture
		}

		var b strings.Builder
		fmt.Fprintf(&b, "Flight Status for PNR %s:\n\n", pnr)
		fmt.Fprintf(&b, "Flight: %d\n", status.FlightId)
		fmt.Fprintf(&b, "Route: %s → %s\n", status.SourceAirportCode, status.DestinationAirportCode)
		fmt.Fprintf(&b, "Scheduled Departure: %s\n", status.ScheduledDeparture.Format("2006-01-02 15:04"))
		fmt.Fprintf(&b, "Current Departure: %s\n", currentDeparture.Format("2006-01-02 15:04"))
		fmt.Fprintf(&b, "Status: %s\n", status.CurrentStatus)
		fmt.Fprintf(&b, "Your Seat: %s\n", assignedSeat)

		state.Step = constant.StepTerminal
		session.Status = constant.SessionStatusCompleted

		return &turnResult{Response: b.String()}, nil
	}

	state.Step = constant.StepTerminal
	state.Collected = entity.CollectedData{}
	session.Status = constant.SessionStatusFailed
	return &turnResult{Response: constant.GenericRetryMessage}, nil
}

func (s *orchestratorService) handleSeatAvailability(ctx context.Context, session *entity.ConversationSession, query string) (*turnResult, error) {
	state := &session.State

	switch state.Step {
	case 0:
		source := s.intents.Extract(ctx, query, "departure city or airport code")
		destination := s.intents.Extract(ctx, query, "arrival city or destination airport code")

		if isRouteToken(source) && isRouteToken(destination) {
			return s.seatSearchByRoute(ctx, session, source, destination)
		}

		pnr := s.intents.Extract(ctx, query, "PNR or booking reference")
		if pnr != "" && pnr != constant.ExtractNotFound && len(pnr) > 3 {
			return s.seatSearchByPnr(ctx, session, pnr)
		}

		return &turnResult{
			Response: "I'd be happy to help you check seat availability!\n\n" +
				"You can search in two ways:\n\n" +
				"1️⃣ **If you have a booking**: Provide your PNR (e.g., ABC123)\n" +
				"   → I'll show available seats on your flight and your current seat\n\n" +
				"2️⃣ **Search by route**: Tell me the route (e.g., 'JFK to LAX' or 'Chennai to Coimbatore')\n" +
				"   → I'll show all flights on that route with seat availability\n\n" +
				"How would you like to proceed?",
			NeedsInput: true,
			InputType:  constant.InputTypeSeatSearch,
		}, nil

	case 1:
		// Follow-up after the initial route listing; rerun the search
		// logic against the new utterance.
		state.Step = 0
		return s.handleSeatAvailability(ctx, session, query)
	}

	state.Step = constant.StepTerminal
	state.Collected = entity.CollectedData{}
	session.Status = constant.SessionStatusFailed
	return &turnResult{Response: constant.GenericRetryMessage}, nil
}

func (s *orchestratorService) seatSearchByRoute(ctx context.Context, session *entity.ConversationSession, source, destination string) (*turnResult, error) {
	state := &session.State

	state.Collected.SearchType = "route"
	state.Collected.Source = normalizeRouteToken(source)
	state.Collected.Destination = normalizeRouteToken(destination)
	state.Step = 1

	flights, err := s.airline.FindFlightsByRoute(ctx, state.Collected.Source, state.Collected.Destination)
	if err != nil {
		return nil, err
	}

	if len(flights) == 0 {
		return &turnResult{
			Response: fmt.Sprintf("I couldn't find any flights from %s to %s. Please check the airport codes and try again.",
				state.Collected.Source, state.Collected.Destination),
		}, nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "I found %d flight(s) from %s to %s:\n\n",
		len(flights), state.Collected.Source, state.Collected.Destination)

	listed := flights
	if len(listed) > 5 {
		listed = listed[:5]
	}
	for idx, flight := range listed {
		available, err := s.airline.CountAvailableSeats(ctx, flight.FlightId)
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(&b, "%d. Flight %d - %s → %s\n", idx+1, flight.FlightId, flight.SourceAirportCode, flight.DestinationAirportCode)
		fmt.Fprintf(&b, "   Departure: %s\n", flight.ScheduledDeparture.Format("2006-01-02 15:04"))
		fmt.Fprintf(&b, "   Available seats: %d\n\n", available)
	}

	if len(flights) == 1 {
		flight := flights[0]
		seats, err := s.airline.GetAvailableSeats(ctx, flight.FlightId)
		if err != nil {
			return nil, err
		}

		b.Reset()
		fmt.Fprintf(&b, "Available seats for Flight %d (%s → %s):\n", flight.FlightId, flight.SourceAirportCode, flight.DestinationAirportCode)
		fmt.Fprintf(&b, "Departure: %s\n\n", flight.ScheduledDeparture.Format("2006-01-02 15:04"))
		writeSeatsByClass(&b, seats)
	} else {
		b.WriteString("To see detailed seat availability for a specific flight, you can:\n")
		b.WriteString("1. Provide your PNR if you have a booking\n")
		b.WriteString("2. Or let me know which flight number you're interested in")
	}

	state.Step = constant.StepTerminal
	session.Status = constant.SessionStatusCompleted

	return &turnResult{Response: b.String()}, nil
}

func (s *orchestratorService) seatSearchByPnr(ctx context.Context, session *entity.ConversationSession, pnr string) (*turnResult, error) {
	state := &session.State

	state.Collected.Pnr = pnr
	state.Collected.SearchType = "pnr"

	booking, err := s.airline.GetBookingDetails(ctx, pnr)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return &turnResult{
			Response:   fmt.Sprintf("I couldn't find a booking with PNR %s. Please verify your booking reference.", pnr),
			NeedsInput: true,
			InputType:  constant.InputTypePNR,
		}, nil
	}

	seats, err := s.airline.GetAvailableSeats(ctx, booking.FlightId)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Available seats for your flight (%s → %s):\n\n", booking.SourceAirportCode, booking.DestinationAirportCode)
	if !writeSeatsByClass(&b, seats) {
		b.WriteString("Unfortunately, there are no available seats on this flight.\n")
	}

	currentSeat := booking.AssignedSeat
	if currentSeat == "" {
		currentSeat = "Not assigned"
	}
	b.WriteString("\n💡 Your current seat: " + currentSeat)

	state.Step = constant.StepTerminal
	session.Status = constant.SessionStatusCompleted

	return &turnResult{Response: b.String()}, nil
}

func (s *orchestratorService) handleGeneralInquiry(ctx context.Context, session *entity.ConversationSession, query string) (*turnResult, error) {
	queryLower := strings.ToLower(strings.TrimSpace(query))

	negative := []string{"no", "nope", "nah", "nothing", "no thanks", "no thank you", "i'm good", "im good", "all good"}
	vague := []string{"ok", "okay", "fine", "sure", "alright", "k"}

	containsAny := func(words ...string) bool {
		for _, w := range words {
			if strings.Contains(queryLower, w) {
				return true
			}
		}
		return false
	}
	equalsAny := func(words []string) bool {
		for _, w := range words {
			if queryLower == w {
				return true
			}
		}
		return false
	}

	var response string
	switch {
	case equalsAny(negative):
		response = "Perfect! Thank you for contacting us. If you need anything in the future, we're here to help. Have a wonderful day and safe travels! ✈️"
	case containsAny("thank", "thanks", "great", "perfect", "awesome"):
		response = "You're welcome! I'm glad I could help. Is there anything else you need assistance with?"
	case equalsAny(vague):
		response = "Great! If you need any further assistance, feel free to ask. Have a wonderful day!"
	case containsAny("bye", "goodbye", "see you", "later"):
		response = "Goodbye! Have a great day and safe travels! ✈️"
	default:
		if len(strings.Fields(query)) > 2 && !s.intents.IsInScope(ctx, query) {
			response = constant.ScopeDeclineMessage
		} else {
			response = s.intents.GenerateReply(ctx, constant.GeneralInquiryContext, query)
		}
	}

	session.Status = constant.SessionStatusCompleted

	return &turnResult{Response: response}, nil
}

// isRouteToken accepts city names or airport codes of at least three
// characters.
func isRouteToken(token string) bool {
	return token != "" && token != constant.ExtractNotFound && len(token) >= 3
}

// normalizeRouteToken upper-cases exact airport codes and leaves longer
// city names as spoken.
func normalizeRouteToken(token string) string {
	if len(token) == 3 {
		return strings.ToUpper(token)
	}
	return token
}

// writeSeatsByClass renders the open seats grouped by cabin class,
// capped at ten lines per class. Returns false when nothing is open.
func writeSeatsByClass(b *strings.Builder, seats []*entity.Seat) bool {
	var economy, business []*entity.Seat
	for _, seat := range seats {
		switch seat.SeatClass {
		case constant.SeatClassEconomy:
			economy = append(economy, seat)
		case constant.SeatClassBusiness:
			business = append(business, seat)
		}
	}

	if len(economy) > 0 {
		fmt.Fprintf(b, "Economy (%d seats):\n", len(economy))
		writeSeatLines(b, economy)
	}
	if len(business) > 0 {
		fmt.Fprintf(b, "\nBusiness (%d seats):\n", len(business))
		writeSeatLines(b, business)
	}

	return len(economy) > 0 || len(business) > 0
}

func writeSeatLines(b *strings.Builder, seats []*entity.Seat) {
	listed := seats
	if len(listed) > 10 {
		listed = listed[:10]
	}
	for _, seat := range listed {
		fmt.Fprintf(b, "  - %d%s ($%g)\n", seat.RowNumber, seat.ColumnLetter, seat.Price)
	}
	if len(seats) > 10 {
		fmt.Fprintf(b, "  ... and %d more\n", len(seats)-10)
	}
}
