package implementation

import (
	"context"
	"errors"

	"airline-support-be/internal/entity"
	"airline-support-be/internal/mapper"
	"airline-support-be/internal/model"
	"airline-support-be/internal/repository/contract"
	"airline-support-be/internal/repository/specification"

	"gorm.io/gorm"
)

type FlightRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.FlightMapper
}

func NewFlightRepository(db *gorm.DB) contract.FlightRepository {
	return &FlightRepositoryImpl{
		db:     db,
		mapper: mapper.NewFlightMapper(),
	}
}

func (r *FlightRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *FlightRepositoryImpl) Create(ctx context.Context, flight *entity.Flight) error {
	m := r.mapper.ToModel(flight)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*flight = *r.mapper.ToEntity(m)
	return nil
}

func (r *FlightRepositoryImpl) Update(ctx context.Context, flight *entity.Flight) error {
	m := r.mapper.ToModel(flight)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*flight = *r.mapper.ToEntity(m)
	return nil
}

func (r *FlightRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Flight, error) {
	var m model.Flight
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *FlightRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Flight, error) {
	var models []*model.Flight
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *FlightRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Flight{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
