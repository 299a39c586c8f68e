package implementation

import (
	"context"

	"airline-support-be/internal/entity"
	"airline-support-be/internal/mapper"
	"airline-support-be/internal/model"
	"airline-support-be/internal/repository/contract"

	"gorm.io/gorm"
)

type ConversationMessageRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ConversationMapper
}

func NewConversationMessageRepository(db *gorm.DB) contract.ConversationMessageRepository {
	return &ConversationMessageRepositoryImpl{
		db:     db,
		mapper: mapper.NewConversationMapper(),
	}
}

func (r *ConversationMessageRepositoryImpl) Create(ctx context.Context, message *entity.ConversationMessage) error {
	m := r.mapper.MessageToModel(message)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*message = *r.mapper.MessageToEntity(m)
	return nil
}

func (r *ConversationMessageRepositoryImpl) FindAllBySessionId(ctx context.Context, sessionId string) ([]*entity.ConversationMessage, error) {
	var models []*model.ConversationMessage
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionId).
		Order("created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.MessagesToEntities(models), nil
}
