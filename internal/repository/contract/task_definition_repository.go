package contract

import (
	"context"

	"airline-support-be/internal/entity"
)

type TaskDefinitionRepository interface {
	Create(ctx context.Context, task *entity.TaskDefinition) error
	DeleteAllByRequestTypeId(ctx context.Context, requestTypeId uint) error
	FindAllByRequestTypeId(ctx context.Context, requestTypeId uint) ([]*entity.TaskDefinition, error)
}
