package unitofwork

import (
	"context"

	"airline-support-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	FlightRepository() contract.FlightRepository
	BookingRepository() contract.BookingRepository
	SeatRepository() contract.SeatRepository
	PolicyRepository() contract.PolicyRepository
	RequestTypeRepository() contract.RequestTypeRepository
	TaskDefinitionRepository() contract.TaskDefinitionRepository
	ConversationSessionRepository() contract.ConversationSessionRepository
	ConversationMessageRepository() contract.ConversationMessageRepository
}
