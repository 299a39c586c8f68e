package mapper

import (
	"encoding/json"
	"fmt"

	"airline-support-be/internal/entity"
	"airline-support-be/internal/model"

	"gorm.io/datatypes"
)

type ConversationMapper struct{}

func NewConversationMapper() *ConversationMapper {
	return &ConversationMapper{}
}

// SessionToEntity decodes the persisted JSON columns. A corrupt state
// column is an error, not a silent reset; the orchestrator must never
// run a workflow against a half-decoded state.
func (m *ConversationMapper) SessionToEntity(s *model.ConversationSession) (*entity.ConversationSession, error) {
	if s == nil {
		return nil, nil
	}

	var intents []string
	if len(s.DetectedIntents) > 0 {
		if err := json.Unmarshal(s.DetectedIntents, &intents); err != nil {
			return nil, fmt.Errorf("decode detected intents for session %s: %w", s.SessionId, err)
		}
	}

	var state entity.WorkflowState
	if len(s.CurrentState) > 0 {
		if err := json.Unmarshal(s.CurrentState, &state); err != nil {
			return nil, fmt.Errorf("decode workflow state for session %s: %w", s.SessionId, err)
		}
	}

	return &entity.ConversationSession{
		Id:              s.Id,
		SessionId:       s.SessionId,
		CustomerQuery:   s.CustomerQuery,
		DetectedIntents: intents,
		State:           state,
		Status:          s.Status,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}, nil
}

func (m *ConversationMapper) SessionToModel(s *entity.ConversationSession) (*model.ConversationSession, error) {
	if s == nil {
		return nil, nil
	}

	intents := s.DetectedIntents
	if intents == nil {
		intents = []string{}
	}
	rawIntents, err := json.Marshal(intents)
	if err != nil {
		return nil, fmt.Errorf("encode detected intents for session %s: %w", s.SessionId, err)
	}

	rawState, err := json.Marshal(s.State)
	if err != nil {
		return nil, fmt.Errorf("encode workflow state for session %s: %w", s.SessionId, err)
	}

	return &model.ConversationSession{
		Id:              s.Id,
		SessionId:       s.SessionId,
		CustomerQuery:   s.CustomerQuery,
		DetectedIntents: datatypes.JSON(rawIntents),
		CurrentState:    datatypes.JSON(rawState),
		Status:          s.Status,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}, nil
}

func (m *ConversationMapper) MessageToEntity(msg *model.ConversationMessage) *entity.ConversationMessage {
	if msg == nil {
		return nil
	}

	var metadata map[string]interface{}
	if len(msg.Metadata) > 0 {
		_ = json.Unmarshal(msg.Metadata, &metadata)
	}

	return &entity.ConversationMessage{
		Id:          msg.Id,
		SessionId:   msg.SessionId,
		Sender:      msg.Sender,
		Message:     msg.Message,
		MessageType: msg.MessageType,
		Metadata:    metadata,
		CreatedAt:   msg.CreatedAt,
	}
}

func (m *ConversationMapper) MessageToModel(msg *entity.ConversationMessage) *model.ConversationMessage {
	if msg == nil {
		return nil
	}

	var metadata datatypes.JSON
	if msg.Metadata != nil {
		raw, err := json.Marshal(msg.Metadata)
		if err == nil {
			metadata = datatypes.JSON(raw)
		}
	}

	return &model.ConversationMessage{
		Id:          msg.Id,
		SessionId:   msg.SessionId,
		Sender:      msg.Sender,
		Message:     msg.Message,
		MessageType: msg.MessageType,
		Metadata:    metadata,
		CreatedAt:   msg.CreatedAt,
	}
}

func (m *ConversationMapper) MessagesToEntities(msgs []*model.ConversationMessage) []*entity.ConversationMessage {
	entities := make([]*entity.ConversationMessage, len(msgs))
	for i, msg := range msgs {
		entities[i] = m.MessageToEntity(msg)
	}
	return entities
}
