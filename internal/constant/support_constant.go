package constant

// Intent labels, the closed classification set.
const (
	IntentCancelTrip         = "Cancel Trip"
	IntentCancellationPolicy = "Cancellation Policy"
	IntentFlightStatus       = "Flight Status"
	IntentSeatAvailability   = "Seat Availability"
	IntentPetTravel          = "Pet Travel"
	IntentBaggagePolicy      = "Baggage Policy"
	IntentGeneralInquiry     = "General Inquiry"
)

// Intents lists every label the classifier may return.
var Intents = []string{
	IntentCancelTrip,
	IntentCancellationPolicy,
	IntentFlightStatus,
	IntentSeatAvailability,
	IntentPetTravel,
	IntentBaggagePolicy,
	IntentGeneralInquiry,
}

// Session lifecycle
const (
	SessionStatusActive    = "active"
	SessionStatusCompleted = "completed"
	SessionStatusFailed    = "failed"

	// StepTerminal marks a workflow that has ended. Must be read together
	// with the session status: either signal alone triggers re-evaluation.
	StepTerminal = -1
)

// Message audit trail
const (
	SenderCustomer = "customer"
	SenderSystem   = "system"

	MessageTypeQuery    = "query"
	MessageTypeInput    = "input"
	MessageTypeResponse = "response"
)

// Booking / flight domain
const (
	BookingStatusConfirmed = "Confirmed"
	BookingStatusCancelled = "Cancelled"

	SeatClassEconomy  = "Economy"
	SeatClassBusiness = "Business"

	FlightStatusOnTime = "On Time"
)

// Policy types stored in policy_documents.
const (
	PolicyTypeCancellation = "cancellation"
	PolicyTypePetTravel    = "pet_travel"
	PolicyTypeBaggage      = "baggage"
)

// Input type hints returned alongside needs_input. Advisory only, the
// state machine never enforces them.
const (
	InputTypePNR          = "pnr"
	InputTypeConfirmation = "confirmation"
	InputTypeSeatSearch   = "seat_search"
)

// ExtractNotFound is the sentinel the intent service returns when it
// cannot pull the requested field out of the utterance.
const ExtractNotFound = "NOT_FOUND"

// SimpleResponses are short conversational replies that bypass scope
// re-validation on terminal sessions and map straight to General Inquiry.
var SimpleResponses = []string{
	"no", "nope", "nah", "yes", "yeah", "yep", "ok", "okay",
	"thanks", "thank you", "bye", "goodbye", "nothing", "no thanks",
}

// AirlineKeywords drive the deterministic scope fallback when the
// language provider is unavailable or ambiguous.
var AirlineKeywords = []string{
	"flight", "book", "cancel", "refund", "seat", "baggage", "luggage",
	"check-in", "airport", "ticket", "pnr", "reservation", "departure",
	"arrival", "delay", "status", "pet", "travel", "airline", "plane",
	"boarding", "gate", "terminal", "passenger", "fare", "price",
	"miles", "points", "upgrade", "change", "modify", "schedule",
}

// ShortScopeResponses are allowed through the scope fallback when the
// utterance is three words or fewer (likely mid-conversation).
var ShortScopeResponses = []string{
	"yes", "no", "ok", "thanks", "thank you", "bye", "hello", "hi",
	"sure", "please", "help", "nope", "yeah", "yep", "nah",
}

// PetKeywords force the Pet Travel intent regardless of other signal.
var PetKeywords = []string{"pet", "dog", "cat", "animal", "puppy", "kitten"}

// ConversationalResponses are classified as General Inquiry by the
// keyword fallback without touching the per-intent keyword rules.
var ConversationalResponses = []string{
	"no", "nope", "nah", "yes", "yeah", "yep", "ok", "okay",
	"thanks", "thank you", "bye", "goodbye", "hi", "hello",
	"nothing", "no thanks", "all good", "im good", "i'm good",
}

// Canned response texts shared across orchestrator paths.
const (
	ScopeDeclineMessage = "I apologize, but I can only assist with airline-related questions and services such as flight bookings, cancellations, baggage policies, seat availability, pet travel, and other airline operations. Please ask me something related to our airline services, and I'll be happy to help!"

	GenericRetryMessage = "I'm having trouble processing your request. Please try again."

	ProviderApologyMessage = "I apologize, but I'm having trouble processing your request. Please try again."
)
