package contract

import (
	"context"

	"airline-support-be/internal/entity"
	"airline-support-be/internal/repository/specification"
)

type PolicyRepository interface {
	Create(ctx context.Context, policy *entity.PolicyDocument) error
	Update(ctx context.Context, policy *entity.PolicyDocument) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PolicyDocument, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PolicyDocument, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
