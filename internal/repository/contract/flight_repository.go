package contract

import (
	"context"

	"airline-support-be/internal/entity"
	"airline-support-be/internal/repository/specification"
)

type FlightRepository interface {
	Create(ctx context.Context, flight *entity.Flight) error
	Update(ctx context.Context, flight *entity.Flight) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Flight, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Flight, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
