package service

import (
	"context"

	"airline-support-be/internal/dto"
	"airline-support-be/internal/entity"
	"airline-support-be/internal/pkg/logger"
	"airline-support-be/internal/pkg/serverutils"
	"airline-support-be/internal/repository/specification"
	"airline-support-be/internal/repository/unitofwork"
)

type IAdminService interface {
	ListRequestTypes(ctx context.Context) ([]*dto.RequestTypeResponse, error)
	GetRequestType(ctx context.Context, id uint) (*dto.RequestTypeResponse, error)
	CreateRequestType(ctx context.Context, req *dto.CreateRequestTypeRequest) (*dto.RequestTypeResponse, error)
	UpdateRequestType(ctx context.Context, req *dto.UpdateRequestTypeRequest) (*dto.RequestTypeResponse, error)

	// DeactivateRequestType soft-disables a request type; its history
	// stays queryable.
	DeactivateRequestType(ctx context.Context, id uint) error

	GetLogs(level string, limit, offset int) ([]logger.LogEntry, error)
}

type adminService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewAdminService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IAdminService {
	return &adminService{
		uowFactory: uowFactory,
		logger:     log,
	}
}

func (s *adminService) ListRequestTypes(ctx context.Context) ([]*dto.RequestTypeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	requestTypes, err := uow.RequestTypeRepository().FindAll(ctx, specification.ActiveOnly{})
	if err != nil {
		return nil, err
	}

	res := make([]*dto.RequestTypeResponse, len(requestTypes))
	for i, rt := range requestTypes {
		res[i] = requestTypeToResponse(rt)
	}
	return res, nil
}

func (s *adminService) GetRequestType(ctx context.Context, id uint) (*dto.RequestTypeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	requestType, err := uow.RequestTypeRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if requestType == nil {
		return nil, serverutils.NotFoundError("Request type not found")
	}
	return requestTypeToResponse(requestType), nil
}

func (s *adminService) CreateRequestType(ctx context.Context, req *dto.CreateRequestTypeRequest) (*dto.RequestTypeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.RequestTypeRepository().FindOne(ctx, specification.ByName{Name: req.Name})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, serverutils.BadRequestError("Request type already exists")
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	requestType := &entity.RequestType{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
	}
	if err := uow.RequestTypeRepository().Create(ctx, requestType); err != nil {
		return nil, err
	}

	for _, taskReq := range req.Tasks {
		task := &entity.TaskDefinition{
			RequestTypeId:  requestType.Id,
			TaskName:       taskReq.TaskName,
			TaskType:       taskReq.TaskType,
			ExecutionOrder: taskReq.ExecutionOrder,
			Configuration:  taskReq.Configuration,
			IsActive:       true,
		}
		if err := uow.TaskDefinitionRepository().Create(ctx, task); err != nil {
			return nil, err
		}
		requestType.Tasks = append(requestType.Tasks, *task)
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("admin", "request type created", map[string]interface{}{
		"name": requestType.Name,
		"id":   requestType.Id,
	})

	return requestTypeToResponse(requestType), nil
}

func (s *adminService) UpdateRequestType(ctx context.Context, req *dto.UpdateRequestTypeRequest) (*dto.RequestTypeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	requestType, err := uow.RequestTypeRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if requestType == nil {
		return nil, serverutils.NotFoundError("Request type not found")
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	requestType.Name = req.Name
	requestType.Description = req.Description
	if req.IsActive != nil {
		requestType.IsActive = *req.IsActive
	}
	requestType.Tasks = nil
	if err := uow.RequestTypeRepository().Update(ctx, requestType); err != nil {
		return nil, err
	}

	// Task lists are replaced wholesale on update.
	if err := uow.TaskDefinitionRepository().DeleteAllByRequestTypeId(ctx, requestType.Id); err != nil {
		return nil, err
	}
	for _, taskReq := range req.Tasks {
		task := &entity.TaskDefinition{
			RequestTypeId:  requestType.Id,
			TaskName:       taskReq.TaskName,
			TaskType:       taskReq.TaskType,
			ExecutionOrder: taskReq.ExecutionOrder,
			Configuration:  taskReq.Configuration,
			IsActive:       true,
		}
		if err := uow.TaskDefinitionRepository().Create(ctx, task); err != nil {
			return nil, err
		}
		requestType.Tasks = append(requestType.Tasks, *task)
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return requestTypeToResponse(requestType), nil
}

func (s *adminService) DeactivateRequestType(ctx context.Context, id uint) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	requestType, err := uow.RequestTypeRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if requestType == nil {
		return serverutils.NotFoundError("Request type not found")
	}

	requestType.IsActive = false
	return uow.RequestTypeRepository().Update(ctx, requestType)
}

func (s *adminService) GetLogs(level string, limit, offset int) ([]logger.LogEntry, error) {
	return s.logger.GetLogs(level, limit, offset)
}

func requestTypeToResponse(rt *entity.RequestType) *dto.RequestTypeResponse {
	tasks := make([]dto.TaskDefinitionResponse, len(rt.Tasks))
	for i, t := range rt.Tasks {
		tasks[i] = dto.TaskDefinitionResponse{
			Id:             t.Id,
			TaskName:       t.TaskName,
			TaskType:       t.TaskType,
			ExecutionOrder: t.ExecutionOrder,
			Configuration:  t.Configuration,
			IsActive:       t.IsActive,
		}
	}
	return &dto.RequestTypeResponse{
		Id:          rt.Id,
		Name:        rt.Name,
		Description: rt.Description,
		IsActive:    rt.IsActive,
		CreatedAt:   rt.CreatedAt,
		Tasks:       tasks,
	}
}
