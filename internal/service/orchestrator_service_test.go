package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"airline-support-be/internal/constant"
	"airline-support-be/internal/dto"
	"airline-support-be/internal/entity"
	"airline-support-be/internal/repository/contract"
	"airline-support-be/internal/repository/unitofwork"
	"airline-support-be/pkg/lock"

	"github.com/stretchr/testify/assert"
)

// In-memory repositories so workflow behavior can be exercised without
// a database.

type memSessionRepo struct {
	sessions map[string]*entity.ConversationSession
}

func newMemSessionRepo() *memSessionRepo {
	return &memSessionRepo{sessions: make(map[string]*entity.ConversationSession)}
}

func (r *memSessionRepo) Create(ctx context.Context, session *entity.ConversationSession) error {
	r.sessions[session.SessionId] = session
	return nil
}

func (r *memSessionRepo) Update(ctx context.Context, session *entity.ConversationSession) error {
	r.sessions[session.SessionId] = session
	return nil
}

func (r *memSessionRepo) FindBySessionId(ctx context.Context, sessionId string) (*entity.ConversationSession, error) {
	session, ok := r.sessions[sessionId]
	if !ok {
		return nil, nil
	}
	copied := *session
	return &copied, nil
}

type memMessageRepo struct {
	messages []*entity.ConversationMessage
}

func (r *memMessageRepo) Create(ctx context.Context, message *entity.ConversationMessage) error {
	r.messages = append(r.messages, message)
	return nil
}

func (r *memMessageRepo) FindAllBySessionId(ctx context.Context, sessionId string) ([]*entity.ConversationMessage, error) {
	var res []*entity.ConversationMessage
	for _, m := range r.messages {
		if m.SessionId == sessionId {
			res = append(res, m)
		}
	}
	return res, nil
}

type memUnitOfWork struct {
	sessions *memSessionRepo
	messages *memMessageRepo
}

func (u *memUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *memUnitOfWork) Commit() error                   { return nil }
func (u *memUnitOfWork) Rollback() error                 { return nil }

func (u *memUnitOfWork) FlightRepository() contract.FlightRepository                 { return nil }
func (u *memUnitOfWork) BookingRepository() contract.BookingRepository               { return nil }
func (u *memUnitOfWork) SeatRepository() contract.SeatRepository                     { return nil }
func (u *memUnitOfWork) PolicyRepository() contract.PolicyRepository                 { return nil }
func (u *memUnitOfWork) RequestTypeRepository() contract.RequestTypeRepository       { return nil }
func (u *memUnitOfWork) TaskDefinitionRepository() contract.TaskDefinitionRepository { return nil }

func (u *memUnitOfWork) ConversationSessionRepository() contract.ConversationSessionRepository {
	return u.sessions
}

func (u *memUnitOfWork) ConversationMessageRepository() contract.ConversationMessageRepository {
	return u.messages
}

type memRepositoryFactory struct {
	uow *memUnitOfWork
}

func (f *memRepositoryFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

// Service fakes.

type fakeIntentService struct {
	inScope  bool
	intents  []string
	extracts map[string]string
	reply    string
}

func (f *fakeIntentService) IsInScope(ctx context.Context, query string) bool { return f.inScope }

func (f *fakeIntentService) Classify(ctx context.Context, query string) []string {
	if len(f.intents) == 0 {
		return []string{constant.IntentGeneralInquiry}
	}
	return f.intents
}

func (f *fakeIntentService) Extract(ctx context.Context, query, informationType string) string {
	if v, ok := f.extracts[informationType]; ok {
		return v
	}
	return constant.ExtractNotFound
}

func (f *fakeIntentService) GenerateReply(ctx context.Context, context_, query string) string {
	return f.reply
}

type fakeAirlineService struct {
	booking      *dto.BookingResponse
	cancelled    bool
	cancelResult *dto.CancelFlightResponse
	status       *dto.FlightStatusResponse
	assignedSeat string
	flights      []*entity.Flight
	seatCount    int64
	seats        []*entity.Seat
}

func (f *fakeAirlineService) GetBookingDetails(ctx context.Context, pnr string) (*dto.BookingResponse, error) {
	return f.booking, nil
}

func (f *fakeAirlineService) HasCancelledBooking(ctx context.Context, pnr string) (bool, error) {
	return f.cancelled, nil
}

func (f *fakeAirlineService) CancelBooking(ctx context.Context, snapshot *entity.BookingSnapshot) (*dto.CancelFlightResponse, error) {
	return f.cancelResult, nil
}

func (f *fakeAirlineService) GetFlightStatus(ctx context.Context, pnr string) (*dto.FlightStatusResponse, string, error) {
	return f.status, f.assignedSeat, nil
}

func (f *fakeAirlineService) FindFlightsByRoute(ctx context.Context, source, destination string) ([]*entity.Flight, error) {
	return f.flights, nil
}

func (f *fakeAirlineService) CountAvailableSeats(ctx context.Context, flightId uint) (int64, error) {
	return f.seatCount, nil
}

func (f *fakeAirlineService) GetAvailableSeats(ctx context.Context, flightId uint) ([]*entity.Seat, error) {
	return f.seats, nil
}

type fakePolicyService struct {
	policy *entity.PolicyDocument
}

func (f *fakePolicyService) GetPolicyByType(ctx context.Context, policyType string) (*entity.PolicyDocument, error) {
	return f.policy, nil
}

func (f *fakePolicyService) ListPolicies(ctx context.Context) ([]*dto.PolicyResponse, error) {
	return nil, nil
}

func (f *fakePolicyService) UpsertPolicy(ctx context.Context, req *dto.UpsertPolicyRequest) (*dto.PolicyResponse, error) {
	return nil, nil
}

func (f *fakePolicyService) SeedDefaults(ctx context.Context) error { return nil }

type orchestratorFixture struct {
	svc      IOrchestratorService
	sessions *memSessionRepo
	messages *memMessageRepo
	intents  *fakeIntentService
	airline  *fakeAirlineService
	policies *fakePolicyService
}

func newOrchestratorFixture() *orchestratorFixture {
	sessions := newMemSessionRepo()
	messages := &memMessageRepo{}
	intents := &fakeIntentService{inScope: true, extracts: map[string]string{}}
	airline := &fakeAirlineService{}
	policies := &fakePolicyService{}

	svc := NewOrchestratorService(
		&memRepositoryFactory{uow: &memUnitOfWork{sessions: sessions, messages: messages}},
		intents,
		airline,
		policies,
		lock.NewSessionLocker(nil, 0),
		nil,
		noopLogger{},
	)

	return &orchestratorFixture{
		svc:      svc,
		sessions: sessions,
		messages: messages,
		intents:  intents,
		airline:  airline,
		policies: policies,
	}
}

func TestProcessQueryOutOfScopeNewQuery(t *testing.T) {
	f := newOrchestratorFixture()
	f.intents.inScope = false

	res, err := f.svc.ProcessQuery(context.Background(), "write me a poem about the sea", "")
	assert.NoError(t, err)
	assert.Equal(t, constant.ScopeDeclineMessage, res.Response)
	assert.False(t, res.NeedsInput)
	assert.NotEmpty(t, res.SessionId)

	// The decline must not leave a session behind, only the audit row.
	assert.Len(t, f.sessions.sessions, 0)
	assert.Len(t, f.messages.messages, 1)
	assert.Equal(t, constant.SenderSystem, f.messages.messages[0].Sender)
}

func TestCancelTripConfirmFlow(t *testing.T) {
	f := newOrchestratorFixture()
	f.intents.intents = []string{constant.IntentCancelTrip}
	f.intents.extracts["PNR or booking reference"] = "ABC123"

	departure := time.Now().Add(5 * 24 * time.Hour)
	f.airline.booking = &dto.BookingResponse{
		Pnr:                    "ABC123",
		FlightId:               1,
		SourceAirportCode:      "JFK",
		DestinationAirportCode: "LAX",
		ScheduledDeparture:     departure,
		AssignedSeat:           "12A",
	}
	f.airline.cancelResult = &dto.CancelFlightResponse{
		Pnr:             "ABC123",
		CancellationFee: 125.0,
		RefundAmount:    375.0,
		RefundIssueDate: time.Now().Add(7 * 24 * time.Hour),
	}

	res, err := f.svc.ProcessQuery(context.Background(), "I want to cancel my flight ABC123", "")
	assert.NoError(t, err)
	assert.Contains(t, res.Response, "I found your booking (PNR: ABC123)")
	assert.True(t, res.NeedsInput)
	assert.Equal(t, constant.InputTypeConfirmation, res.InputType)

	session := f.sessions.sessions[res.SessionId]
	assert.NotNil(t, session)
	assert.Equal(t, 2, session.State.Step)
	assert.NotNil(t, session.State.Collected.Booking)

	res2, err := f.svc.ProvideInput(context.Background(), res.SessionId, "yes")
	assert.NoError(t, err)
	assert.Contains(t, res2.Response, "Flight Cancelled")
	assert.Contains(t, res2.Response, "Cancellation charges: $125.00")
	assert.Contains(t, res2.Response, "Refund amount: $375.00")
	assert.False(t, res2.NeedsInput)

	session = f.sessions.sessions[res.SessionId]
	assert.True(t, session.Terminal())
	assert.Equal(t, constant.SessionStatusCompleted, session.Status)

	// query, response, input, response
	assert.Len(t, f.messages.messages, 4)
}

func TestCancelTripDecline(t *testing.T) {
	f := newOrchestratorFixture()
	f.intents.intents = []string{constant.IntentCancelTrip}
	f.intents.extracts["PNR or booking reference"] = "ABC123"
	f.airline.booking = &dto.BookingResponse{
		Pnr:                    "ABC123",
		FlightId:               1,
		SourceAirportCode:      "JFK",
		DestinationAirportCode: "LAX",
		ScheduledDeparture:     time.Now().Add(48 * time.Hour),
	}

	res, err := f.svc.ProcessQuery(context.Background(), "cancel my booking ABC123", "")
	assert.NoError(t, err)
	assert.True(t, res.NeedsInput)

	res2, err := f.svc.ProvideInput(context.Background(), res.SessionId, "no")
	assert.NoError(t, err)
	assert.Equal(t, "Cancellation cancelled. Is there anything else I can help you with?", res2.Response)

	session := f.sessions.sessions[res.SessionId]
	assert.Equal(t, constant.StepTerminal, session.State.Step)
	assert.Equal(t, constant.SessionStatusCompleted, session.Status)
}

func TestCancelTripShortPnrReprompts(t *testing.T) {
	f := newOrchestratorFixture()
	f.intents.intents = []string{constant.IntentCancelTrip}
	f.intents.extracts["PNR or booking reference"] = "AB1"

	res, err := f.svc.ProcessQuery(context.Background(), "cancel my flight", "")
	assert.NoError(t, err)
	assert.True(t, res.NeedsInput)
	assert.Equal(t, constant.InputTypePNR, res.InputType)
	assert.Contains(t, res.Response, "provide it")

	session := f.sessions.sessions[res.SessionId]
	assert.Equal(t, 0, session.State.Step)
	assert.Equal(t, constant.SessionStatusActive, session.Status)
}

func TestTerminalSessionSimpleReplyResets(t *testing.T) {
	f := newOrchestratorFixture()
	f.sessions.sessions["sess-1"] = &entity.ConversationSession{
		SessionId:       "sess-1",
		DetectedIntents: []string{constant.IntentCancelTrip},
		State: entity.WorkflowState{
			Step:          constant.StepTerminal,
			CurrentIntent: constant.IntentCancelTrip,
		},
		Status: constant.SessionStatusCompleted,
	}

	res, err := f.svc.ProcessQuery(context.Background(), "thanks", "sess-1")
	assert.NoError(t, err)
	assert.Contains(t, res.Response, "You're welcome")

	session := f.sessions.sessions["sess-1"]
	assert.Equal(t, constant.IntentGeneralInquiry, session.State.CurrentIntent)
}

func TestTerminalSessionOutOfScopeQueryDeclines(t *testing.T) {
	f := newOrchestratorFixture()
	f.intents.inScope = false
	f.sessions.sessions["sess-2"] = &entity.ConversationSession{
		SessionId: "sess-2",
		State: entity.WorkflowState{
			Step:          constant.StepTerminal,
			CurrentIntent: constant.IntentFlightStatus,
		},
		Status: constant.SessionStatusCompleted,
	}

	res, err := f.svc.ProcessQuery(context.Background(), "please write me a long poem", "sess-2")
	assert.NoError(t, err)
	assert.Equal(t, constant.ScopeDeclineMessage, res.Response)
	assert.Equal(t, "sess-2", res.SessionId)
	assert.Equal(t, constant.SessionStatusCompleted, f.sessions.sessions["sess-2"].Status)
}

func TestSeatAvailabilityPromptWhenNothingExtracted(t *testing.T) {
	f := newOrchestratorFixture()
	f.intents.intents = []string{constant.IntentSeatAvailability}

	res, err := f.svc.ProcessQuery(context.Background(), "I want to check seats", "")
	assert.NoError(t, err)
	assert.True(t, res.NeedsInput)
	assert.Equal(t, constant.InputTypeSeatSearch, res.InputType)
	assert.Contains(t, res.Response, "You can search in two ways")

	session := f.sessions.sessions[res.SessionId]
	assert.Equal(t, 0, session.State.Step)
	assert.False(t, session.Terminal())
}

func TestSeatAvailabilityRouteSearch(t *testing.T) {
	f := newOrchestratorFixture()
	f.intents.intents = []string{constant.IntentSeatAvailability}
	f.intents.extracts["departure city or airport code"] = "jfk"
	f.intents.extracts["arrival city or destination airport code"] = "lax"
	f.airline.flights = []*entity.Flight{
		{FlightId: 1, SourceAirportCode: "JFK", DestinationAirportCode: "LAX", ScheduledDeparture: time.Now().Add(24 * time.Hour)},
		{FlightId: 2, SourceAirportCode: "JFK", DestinationAirportCode: "LAX", ScheduledDeparture: time.Now().Add(48 * time.Hour)},
	}
	f.airline.seatCount = 10

	res, err := f.svc.ProcessQuery(context.Background(), "seats from jfk to lax", "")
	assert.NoError(t, err)
	assert.Contains(t, res.Response, "I found 2 flight(s) from JFK to LAX")
	assert.Contains(t, res.Response, "Available seats: 10")

	session := f.sessions.sessions[res.SessionId]
	assert.True(t, session.Terminal())
	assert.Equal(t, "route", session.State.Collected.SearchType)
	assert.Equal(t, "JFK", session.State.Collected.Source)
}

func TestSeatAvailabilityRouteWithoutFlightsStaysOpen(t *testing.T) {
	f := newOrchestratorFixture()
	f.intents.intents = []string{constant.IntentSeatAvailability}
	f.intents.extracts["departure city or airport code"] = "jfk"
	f.intents.extracts["arrival city or destination airport code"] = "syd"

	res, err := f.svc.ProcessQuery(context.Background(), "seats from jfk to syd", "")
	assert.NoError(t, err)
	assert.Contains(t, res.Response, "I couldn't find any flights from JFK to SYD")

	session := f.sessions.sessions[res.SessionId]
	assert.Equal(t, 1, session.State.Step)
	assert.False(t, session.Terminal())
}

func TestPolicyInquiryFallbackText(t *testing.T) {
	f := newOrchestratorFixture()
	f.intents.intents = []string{constant.IntentCancellationPolicy}

	res, err := f.svc.ProcessQuery(context.Background(), "what is your cancellation policy", "")
	assert.NoError(t, err)
	assert.Equal(t, constant.DefaultCancellationPolicyText, res.Response)

	session := f.sessions.sessions[res.SessionId]
	assert.Equal(t, constant.SessionStatusCompleted, session.Status)
}

func TestPolicyInquiryUsesStoredDocument(t *testing.T) {
	f := newOrchestratorFixture()
	f.intents.intents = []string{constant.IntentPetTravel}
	f.policies.policy = &entity.PolicyDocument{
		Title:     "Pet Travel Policy",
		Content:   "Small pets fly in the cabin.",
		SourceURL: "https://www.airline.com/pets",
	}

	res, err := f.svc.ProcessQuery(context.Background(), "can my dog fly with me", "")
	assert.NoError(t, err)
	assert.Contains(t, res.Response, "Pet Travel Policy")
	assert.Contains(t, res.Response, "Small pets fly in the cabin.")
	assert.Contains(t, res.Response, "For more details, visit: https://www.airline.com/pets")
}

func TestGeneralInquiryFarewell(t *testing.T) {
	f := newOrchestratorFixture()
	f.intents.intents = []string{constant.IntentGeneralInquiry}

	res, err := f.svc.ProcessQuery(context.Background(), "no", "")
	assert.NoError(t, err)
	assert.Contains(t, res.Response, "safe travels")
	assert.Equal(t, constant.SessionStatusCompleted, f.sessions.sessions[res.SessionId].Status)
}

func TestGetSessionReturnsHistory(t *testing.T) {
	f := newOrchestratorFixture()
	f.intents.intents = []string{constant.IntentGeneralInquiry}
	f.intents.reply = "We fly to over 50 destinations."

	res, err := f.svc.ProcessQuery(context.Background(), "hi", "")
	assert.NoError(t, err)

	history, err := f.svc.GetSession(context.Background(), res.SessionId)
	assert.NoError(t, err)
	assert.Equal(t, res.SessionId, history.SessionId)
	assert.Len(t, history.Messages, 2)
	assert.Equal(t, constant.SenderCustomer, history.Messages[0].Sender)
	assert.Equal(t, constant.SenderSystem, history.Messages[1].Sender)
}

func TestGetSessionNotFound(t *testing.T) {
	f := newOrchestratorFixture()

	history, err := f.svc.GetSession(context.Background(), "missing")
	assert.Error(t, err)
	assert.Nil(t, history)
}

func TestWriteSeatsByClassCapsPerClass(t *testing.T) {
	var seats []*entity.Seat
	for row := 1; row <= 12; row++ {
		seats = append(seats, &entity.Seat{RowNumber: row, ColumnLetter: "A", SeatClass: constant.SeatClassEconomy, Price: 150})
	}
	seats = append(seats,
		&entity.Seat{RowNumber: 1, ColumnLetter: "B", SeatClass: constant.SeatClassBusiness, Price: 500},
		&entity.Seat{RowNumber: 2, ColumnLetter: "B", SeatClass: constant.SeatClassBusiness, Price: 500},
	)

	var b strings.Builder
	assert.True(t, writeSeatsByClass(&b, seats))

	out := b.String()
	assert.Contains(t, out, "Economy (12 seats):")
	assert.Contains(t, out, "... and 2 more")
	assert.Contains(t, out, "Business (2 seats):")
	assert.Contains(t, out, "- 1B ($500)")
	assert.Equal(t, 10, strings.Count(out, "$150"))
}

func TestWriteSeatsByClassEmpty(t *testing.T) {
	var b strings.Builder
	assert.False(t, writeSeatsByClass(&b, nil))
	assert.Empty(t, b.String())
}
