package implementation

import (
	"context"
	"errors"

	"airline-support-be/internal/entity"
	"airline-support-be/internal/mapper"
	"airline-support-be/internal/model"
	"airline-support-be/internal/repository/contract"

	"gorm.io/gorm"
)

type ConversationSessionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ConversationMapper
}

func NewConversationSessionRepository(db *gorm.DB) contract.ConversationSessionRepository {
	return &ConversationSessionRepositoryImpl{
		db:     db,
		mapper: mapper.NewConversationMapper(),
	}
}

func (r *ConversationSessionRepositoryImpl) Create(ctx context.Context, session *entity.ConversationSession) error {
	m, err := r.mapper.SessionToModel(session)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	decoded, err := r.mapper.SessionToEntity(m)
	if err != nil {
		return err
	}
	*session = *decoded
	return nil
}

func (r *ConversationSessionRepositoryImpl) Update(ctx context.Context, session *entity.ConversationSession) error {
	m, err := r.mapper.SessionToModel(session)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	decoded, err := r.mapper.SessionToEntity(m)
	if err != nil {
		return err
	}
	*session = *decoded
	return nil
}

func (r *ConversationSessionRepositoryImpl) FindBySessionId(ctx context.Context, sessionId string) (*entity.ConversationSession, error) {
	var m model.ConversationSession
	err := r.db.WithContext(ctx).Where("session_id = ?", sessionId).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.SessionToEntity(&m)
}
