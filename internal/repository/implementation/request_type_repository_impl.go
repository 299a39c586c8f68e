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

type RequestTypeRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RequestTypeMapper
}

func NewRequestTypeRepository(db *gorm.DB) contract.RequestTypeRepository {
	return &RequestTypeRepositoryImpl{
		db:     db,
		mapper: mapper.NewRequestTypeMapper(),
	}
}

func (r *RequestTypeRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *RequestTypeRepositoryImpl) Create(ctx context.Context, requestType *entity.RequestType) error {
	m := r.mapper.ToModel(requestType)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*requestType = *r.mapper.ToEntity(m)
	return nil
}

func (r *RequestTypeRepositoryImpl) Update(ctx context.Context, requestType *entity.RequestType) error {
	m := r.mapper.ToModel(requestType)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*requestType = *r.mapper.ToEntity(m)
	return nil
}

func (r *RequestTypeRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.RequestType{}, id).Error
}

func (r *RequestTypeRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.RequestType, error) {
	var m model.RequestType
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("Tasks"), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *RequestTypeRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.RequestType, error) {
	var models []*model.RequestType
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("Tasks"), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *RequestTypeRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.RequestType{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
