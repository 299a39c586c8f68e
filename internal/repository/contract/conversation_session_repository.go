package contract

import (
	"context"

	"airline-support-be/internal/entity"
)

// ConversationSessionRepository uses explicit finders instead of
// specifications. Sessions are only ever addressed by their public id,
// and the memory fakes used in workflow tests stay trivial this way.
type ConversationSessionRepository interface {
	Create(ctx context.Context, session *entity.ConversationSession) error
	Update(ctx context.Context, session *entity.ConversationSession) error
	FindBySessionId(ctx context.Context, sessionId string) (*entity.ConversationSession, error)
}
