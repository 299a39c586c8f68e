package implementation

import (
	"context"

	"airline-support-be/internal/entity"
	"airline-support-be/internal/mapper"
	"airline-support-be/internal/model"
	"airline-support-be/internal/repository/contract"

	"gorm.io/gorm"
)

type TaskDefinitionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RequestTypeMapper
}

func NewTaskDefinitionRepository(db *gorm.DB) contract.TaskDefinitionRepository {
	return &TaskDefinitionRepositoryImpl{
		db:     db,
		mapper: mapper.NewRequestTypeMapper(),
	}
}

func (r *TaskDefinitionRepositoryImpl) Create(ctx context.Context, task *entity.TaskDefinition) error {
	m := r.mapper.TaskToModel(task)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*task = *r.mapper.TaskToEntity(m)
	return nil
}

func (r *TaskDefinitionRepositoryImpl) DeleteAllByRequestTypeId(ctx context.Context, requestTypeId uint) error {
	return r.db.WithContext(ctx).
		Where("request_type_id = ?", requestTypeId).
		Delete(&model.TaskDefinition{}).Error
}

func (r *TaskDefinitionRepositoryImpl) FindAllByRequestTypeId(ctx context.Context, requestTypeId uint) ([]*entity.TaskDefinition, error) {
	var models []*model.TaskDefinition
	err := r.db.WithContext(ctx).
		Where("request_type_id = ?", requestTypeId).
		Order("execution_order ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.TasksToEntities(models), nil
}
