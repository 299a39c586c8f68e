package contract

import (
	"context"

	"airline-support-be/internal/entity"
	"airline-support-be/internal/repository/specification"
)

type RequestTypeRepository interface {
	Create(ctx context.Context, requestType *entity.RequestType) error
	Update(ctx context.Context, requestType *entity.RequestType) error
	Delete(ctx context.Context, id uint) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.RequestType, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.RequestType, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
