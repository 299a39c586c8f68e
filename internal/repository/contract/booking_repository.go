package contract

import (
	"context"

	"airline-support-be/internal/entity"
	"airline-support-be/internal/repository/specification"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	Update(ctx context.Context, booking *entity.Booking) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Booking, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Booking, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
