package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "BOOKING_CANCELLED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

func NewBookingCancelledEvent(pnr string, flightId uint, refundAmount float64) Event {
	return BaseEvent{
		Type: "BOOKING_CANCELLED",
		Data: map[string]interface{}{
			"pnr":           pnr,
			"flight_id":     flightId,
			"refund_amount": refundAmount,
		},
		OccurredAt: time.Now(),
	}
}

func NewConversationTurnEvent(sessionId, intent string, step int, terminal bool) Event {
	return BaseEvent{
		Type: "CONVERSATION_TURN",
		Data: map[string]interface{}{
			"session_id": sessionId,
			"intent":     intent,
			"step":       step,
			"terminal":   terminal,
		},
		OccurredAt: time.Now(),
	}
}
