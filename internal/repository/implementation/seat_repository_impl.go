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

type SeatRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SeatMapper
}

func NewSeatRepository(db *gorm.DB) contract.SeatRepository {
	return &SeatRepositoryImpl{
		db:     db,
		mapper: mapper.NewSeatMapper(),
	}
}

func (r *SeatRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SeatRepositoryImpl) Create(ctx context.Context, seat *entity.Seat) error {
	m := r.mapper.ToModel(seat)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*seat = *r.mapper.ToEntity(m)
	return nil
}

func (r *SeatRepositoryImpl) Update(ctx context.Context, seat *entity.Seat) error {
	m := r.mapper.ToModel(seat)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*seat = *r.mapper.ToEntity(m)
	return nil
}

func (r *SeatRepositoryImpl) ReleaseByPnr(ctx context.Context, pnr string) error {
	return r.db.WithContext(ctx).
		Model(&model.Seat{}).
		Where("occupied_by_pnr = ?", pnr).
		Updates(map[string]interface{}{
			"is_available":    true,
			"occupied_by_pnr": "",
		}).Error
}

func (r *SeatRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Seat, error) {
	var m model.Seat
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SeatRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Seat, error) {
	var models []*model.Seat
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *SeatRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Seat{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
