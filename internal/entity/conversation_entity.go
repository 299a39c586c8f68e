package entity

import "time"

// ConversationSession is the durable record a dialogue turn operates
// against. No in-process memory survives between turns; everything the
// next turn needs lives in State.
type ConversationSession struct {
	Id              uint
	SessionId       string
	CustomerQuery   string
	DetectedIntents []string
	State           WorkflowState
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// WorkflowState replaces the loosely-typed state blob of the legacy
// system with a closed struct, so each handler's accepted shape is
// enforced by the compiler rather than duck-typed at runtime.
type WorkflowState struct {
	Step          int           `json:"step"`
	CurrentIntent string        `json:"current_intent"`
	Collected     CollectedData `json:"collected_data"`
}

// CollectedData accumulates extracted fields across turns.
type CollectedData struct {
	Pnr         string           `json:"pnr,omitempty"`
	Booking     *BookingSnapshot `json:"booking,omitempty"`
	SearchType  string           `json:"search_type,omitempty"`
	Source      string           `json:"source,omitempty"`
	Destination string           `json:"destination,omitempty"`
}

// BookingSnapshot caches the booking looked up at step 0 of the cancel
// workflow so the confirmation turn can act without a second lookup.
type BookingSnapshot struct {
	Pnr                    string    `json:"pnr"`
	FlightId               uint      `json:"flight_id"`
	SourceAirportCode      string    `json:"source_airport_code"`
	DestinationAirportCode string    `json:"destination_airport_code"`
	ScheduledDeparture     time.Time `json:"scheduled_departure"`
	ScheduledArrival       time.Time `json:"scheduled_arrival"`
	AssignedSeat           string    `json:"assigned_seat,omitempty"`
}

// Terminal reports whether the workflow has ended. Step and Status
// carry the same signal; either one suffices.
func (s *ConversationSession) Terminal() bool {
	return s.State.Step == -1 || s.Status == "completed" || s.Status == "failed"
}

// ConversationMessage is an append-only audit record. The orchestrator
// never reads messages back; they exist for the history endpoint.
type ConversationMessage struct {
	Id          uint
	SessionId   string
	Sender      string
	Message     string
	MessageType string
	Metadata    map[string]interface{}
	CreatedAt   time.Time
}
