package contract

import (
	"context"

	"airline-support-be/internal/entity"
	"airline-support-be/internal/repository/specification"
)

type SeatRepository interface {
	Create(ctx context.Context, seat *entity.Seat) error
	Update(ctx context.Context, seat *entity.Seat) error
	ReleaseByPnr(ctx context.Context, pnr string) error // Mark held seats available again
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Seat, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Seat, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
