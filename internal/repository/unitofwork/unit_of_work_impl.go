package unitofwork

import (
	"context"
	"fmt"

	"airline-support-be/internal/repository/contract"
	"airline-support-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) FlightRepository() contract.FlightRepository {
	return implementation.NewFlightRepository(u.getDB())
}

func (u *UnitOfWorkImpl) BookingRepository() contract.BookingRepository {
	return implementation.NewBookingRepository(u.getDB())
}

func (u *UnitOfWorkImpl) SeatRepository() contract.SeatRepository {
	return implementation.NewSeatRepository(u.getDB())
}

func (u *UnitOfWorkImpl) PolicyRepository() contract.PolicyRepository {
	return implementation.NewPolicyRepository(u.getDB())
}

func (u *UnitOfWorkImpl) RequestTypeRepository() contract.RequestTypeRepository {
	return implementation.NewRequestTypeRepository(u.getDB())
}

func (u *UnitOfWorkImpl) TaskDefinitionRepository() contract.TaskDefinitionRepository {
	return implementation.NewTaskDefinitionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ConversationSessionRepository() contract.ConversationSessionRepository {
	return implementation.NewConversationSessionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ConversationMessageRepository() contract.ConversationMessageRepository {
	return implementation.NewConversationMessageRepository(u.getDB())
}
