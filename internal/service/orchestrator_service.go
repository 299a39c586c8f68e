package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"airline-support-be/internal/constant"
	"airline-support-be/internal/dto"
	"airline-support-be/internal/entity"
	"airline-support-be/internal/pkg/logger"
	"airline-support-be/internal/pkg/serverutils"
	"airline-support-be/internal/repository/unitofwork"
	"airline-support-be/pkg/lock"

	"github.com/google/uuid"
)

type IOrchestratorService interface {
	// ProcessQuery runs one dialogue turn. A blank sessionId starts a new
	// conversation.
	ProcessQuery(ctx context.Context, query, sessionId string) (*dto.CustomerQueryResponse, error)

	// ProvideInput records a follow-up answer and runs it through the
	// same turn pipeline.
	ProvideInput(ctx context.Context, sessionId, input string) (*dto.CustomerQueryResponse, error)

	// GetSession returns the conversation history for a session.
	GetSession(ctx context.Context, sessionId string) (*dto.SessionHistoryResponse, error)
}

type orchestratorService struct {
	uowFactory unitofwork.RepositoryFactory
	intents    IIntentService
	airline    IAirlineService
	policies   IPolicyService
	locker     *lock.SessionLocker
	publisher  IPublisherService
	logger     logger.ILogger
}

func NewOrchestratorService(
	uowFactory unitofwork.RepositoryFactory,
	intents IIntentService,
	airline IAirlineService,
	policies IPolicyService,
	locker *lock.SessionLocker,
	publisher IPublisherService,
	log logger.ILogger,
) IOrchestratorService {
	return &orchestratorService{
		uowFactory: uowFactory,
		intents:    intents,
		airline:    airline,
		policies:   policies,
		locker:     locker,
		publisher:  publisher,
		logger:     log,
	}
}

// turnResult is what every workflow handler produces for one turn.
type turnResult struct {
	Response   string
	NeedsInput bool
	InputType  string
}

func (s *orchestratorService) ProcessQuery(ctx context.Context, query, sessionId string) (*dto.CustomerQueryResponse, error) {
	if sessionId != "" {
		release, ok := s.locker.Acquire(ctx, sessionId)
		if !ok {
			return nil, serverutils.NewApiError(409, "Another request for this session is in progress. Please retry.")
		}
		defer release()
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	var session *entity.ConversationSession
	if sessionId != "" {
		var err error
		session, err = uow.ConversationSessionRepository().FindBySessionId(ctx, sessionId)
		if err != nil {
			return nil, err
		}
	}

	// New conversations must be in scope before any state is written.
	if session == nil {
		if !s.intents.IsInScope(ctx, query) {
			tempSessionId := uuid.NewString()
			res := &dto.CustomerQueryResponse{
				SessionId:  tempSessionId,
				Response:   constant.ScopeDeclineMessage,
				NeedsInput: false,
			}
			s.appendMessage(ctx, uow, tempSessionId, constant.SenderSystem, res.Response, constant.MessageTypeResponse)
			return res, nil
		}
	}

	// A finished conversation receiving a substantial new query gets
	// re-validated; short conversational replies skip the check.
	if session != nil && session.Terminal() {
		if !isSimpleResponse(query) && len(strings.Fields(query)) > 2 {
			if !s.intents.IsInScope(ctx, query) {
				session.Status = constant.SessionStatusCompleted
				if err := uow.ConversationSessionRepository().Update(ctx, session); err != nil {
					return nil, err
				}
				res := &dto.CustomerQueryResponse{
					SessionId:  session.SessionId,
					Response:   constant.ScopeDeclineMessage,
					NeedsInput: false,
				}
				s.appendMessage(ctx, uow, session.SessionId, constant.SenderSystem, res.Response, constant.MessageTypeResponse)
				return res, nil
			}
		}
	}

	if session == nil {
		intents := s.intents.Classify(ctx, query)
		session = &entity.ConversationSession{
			SessionId:       uuid.NewString(),
			CustomerQuery:   query,
			DetectedIntents: intents,
			State: entity.WorkflowState{
				Step:          0,
				CurrentIntent: intents[0],
			},
			Status: constant.SessionStatusActive,
		}
		if err := uow.ConversationSessionRepository().Create(ctx, session); err != nil {
			return nil, err
		}
		s.appendMessage(ctx, uow, session.SessionId, constant.SenderCustomer, query, constant.MessageTypeQuery)
	}

	// A terminal session that survived the scope gate starts over with a
	// fresh workflow.
	if session.Terminal() {
		var newIntent string
		if isSimpleResponse(query) || len(strings.Fields(query)) <= 2 {
			newIntent = constant.IntentGeneralInquiry
		} else {
			intents := s.intents.Classify(ctx, query)
			newIntent = intents[0]
		}
		session.State = entity.WorkflowState{
			Step:          0,
			CurrentIntent: newIntent,
		}
		session.Status = constant.SessionStatusActive
	}

	result, err := s.executeIntentWorkflow(ctx, session, session.State.CurrentIntent, query)
	if err != nil {
		return nil, err
	}

	session.UpdatedAt = time.Now().UTC()
	if err := uow.ConversationSessionRepository().Update(ctx, session); err != nil {
		return nil, err
	}

	s.appendMessage(ctx, uow, session.SessionId, constant.SenderSystem, result.Response, constant.MessageTypeResponse)
	s.publishTurn(ctx, session)

	return &dto.CustomerQueryResponse{
		SessionId:  session.SessionId,
		Response:   result.Response,
		NeedsInput: result.NeedsInput,
		InputType:  result.InputType,
	}, nil
}

func (s *orchestratorService) ProvideInput(ctx context.Context, sessionId, input string) (*dto.CustomerQueryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	s.appendMessage(ctx, uow, sessionId, constant.SenderCustomer, input, constant.MessageTypeInput)
	return s.ProcessQuery(ctx, input, sessionId)
}

func (s *orchestratorService) GetSession(ctx context.Context, sessionId string) (*dto.SessionHistoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.ConversationSessionRepository().FindBySessionId(ctx, sessionId)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, serverutils.NotFoundError("Session not found")
	}

	messages, err := uow.ConversationMessageRepository().FindAllBySessionId(ctx, sessionId)
	if err != nil {
		return nil, err
	}

	res := &dto.SessionHistoryResponse{
		SessionId:       session.SessionId,
		Status:          session.Status,
		DetectedIntents: session.DetectedIntents,
		Messages:        make([]dto.ConversationMessageResponse, len(messages)),
	}
	for i, m := range messages {
		res.Messages[i] = dto.ConversationMessageResponse{
			Sender:      m.Sender,
			Message:     m.Message,
			MessageType: m.MessageType,
			CreatedAt:   m.CreatedAt,
		}
	}
	return res, nil
}

func (s *orchestratorService) executeIntentWorkflow(ctx context.Context, session *entity.ConversationSession, intent, query string) (*turnResult, error) {
	switch intent {
	case constant.IntentCancelTrip:
		return s.handleCancelTrip(ctx, session, query)
	case constant.IntentCancellationPolicy:
		return s.handlePolicyInquiry(ctx, session, constant.PolicyTypeCancellation, constant.DefaultCancellationPolicyText)
	case constant.IntentFlightStatus:
		return s.handleFlightStatus(ctx, session, query)
	case constant.IntentSeatAvailability:
		return s.handleSeatAvailability(ctx, session, query)
	case constant.IntentPetTravel:
		return s.handlePolicyInquiry(ctx, session, constant.PolicyTypePetTravel, constant.DefaultPetTravelPolicyText)
	case constant.IntentBaggagePolicy:
		return s.handlePolicyInquiry(ctx, session, constant.PolicyTypeBaggage, constant.DefaultBaggagePolicyText)
	default:
		return s.handleGeneralInquiry(ctx, session, query)
	}
}

// appendMessage writes an audit record. Audit failures are logged, not
// surfaced; losing a history row must not break the turn.
func (s *orchestratorService) appendMessage(ctx context.Context, uow unitofwork.UnitOfWork, sessionId, sender, text, messageType string) {
	msg := &entity.ConversationMessage{
		SessionId:   sessionId,
		Sender:      sender,
		Message:     text,
		MessageType: messageType,
	}
	if err := uow.ConversationMessageRepository().Create(ctx, msg); err != nil {
		s.logger.Error("orchestrator", "failed to append conversation message", map[string]interface{}{
			"session_id": sessionId,
			"error":      err.Error(),
		})
	}
}

func (s *orchestratorService) publishTurn(ctx context.Context, session *entity.ConversationSession) {
	if s.publisher == nil {
		return
	}
	payload, err := json.Marshal(dto.ConversationTurnMessage{
		SessionId: session.SessionId,
		Intent:    session.State.CurrentIntent,
		Step:      session.State.Step,
		Terminal:  session.Terminal(),
	})
	if err != nil {
		return
	}
	if err := s.publisher.Publish(ctx, payload); err != nil {
		s.logger.Warn("orchestrator", "failed to publish turn message", map[string]interface{}{
			"session_id": session.SessionId,
			"error":      err.Error(),
		})
	}
}

func isSimpleResponse(query string) bool {
	queryLower := strings.ToLower(strings.TrimSpace(query))
	for _, r := range constant.SimpleResponses {
		if queryLower == r {
			return true
		}
	}
	return false
}
