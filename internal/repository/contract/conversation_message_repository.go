package contract

import (
	"context"

	"airline-support-be/internal/entity"
)

type ConversationMessageRepository interface {
	Create(ctx context.Context, message *entity.ConversationMessage) error
	FindAllBySessionId(ctx context.Context, sessionId string) ([]*entity.ConversationMessage, error)
}
