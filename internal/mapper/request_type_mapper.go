package mapper

import (
	"encoding/json"

	"airline-support-be/internal/entity"
	"airline-support-be/internal/model"

	"gorm.io/datatypes"
)

type RequestTypeMapper struct{}

func NewRequestTypeMapper() *RequestTypeMapper {
	return &RequestTypeMapper{}
}

func (m *RequestTypeMapper) ToEntity(rt *model.RequestType) *entity.RequestType {
	if rt == nil {
		return nil
	}

	tasks := make([]entity.TaskDefinition, len(rt.Tasks))
	for i := range rt.Tasks {
		tasks[i] = *m.TaskToEntity(&rt.Tasks[i])
	}

	return &entity.RequestType{
		Id:          rt.Id,
		Name:        rt.Name,
		Description: rt.Description,
		IsActive:    rt.IsActive,
		CreatedAt:   rt.CreatedAt,
		Tasks:       tasks,
	}
}

func (m *RequestTypeMapper) ToModel(rt *entity.RequestType) *model.RequestType {
	if rt == nil {
		return nil
	}

	tasks := make([]model.TaskDefinition, len(rt.Tasks))
	for i := range rt.Tasks {
		tasks[i] = *m.TaskToModel(&rt.Tasks[i])
	}

	return &model.RequestType{
		Id:          rt.Id,
		Name:        rt.Name,
		Description: rt.Description,
		IsActive:    rt.IsActive,
		CreatedAt:   rt.CreatedAt,
		Tasks:       tasks,
	}
}

func (m *RequestTypeMapper) ToEntities(requestTypes []*model.RequestType) []*entity.RequestType {
	entities := make([]*entity.RequestType, len(requestTypes))
	for i, rt := range requestTypes {
		entities[i] = m.ToEntity(rt)
	}
	return entities
}

func (m *RequestTypeMapper) TaskToEntity(t *model.TaskDefinition) *entity.TaskDefinition {
	if t == nil {
		return nil
	}

	var configuration map[string]interface{}
	if len(t.Configuration) > 0 {
		_ = json.Unmarshal(t.Configuration, &configuration)
	}

	return &entity.TaskDefinition{
		Id:             t.Id,
		RequestTypeId:  t.RequestTypeId,
		TaskName:       t.TaskName,
		TaskType:       t.TaskType,
		ExecutionOrder: t.ExecutionOrder,
		Configuration:  configuration,
		IsActive:       t.IsActive,
	}
}

func (m *RequestTypeMapper) TaskToModel(t *entity.TaskDefinition) *model.TaskDefinition {
	if t == nil {
		return nil
	}

	var configuration datatypes.JSON
	if t.Configuration != nil {
		raw, err := json.Marshal(t.Configuration)
		if err == nil {
			configuration = datatypes.JSON(raw)
		}
	}

	return &model.TaskDefinition{
		Id:             t.Id,
		RequestTypeId:  t.RequestTypeId,
		TaskName:       t.TaskName,
		TaskType:       t.TaskType,
		ExecutionOrder: t.ExecutionOrder,
		Configuration:  configuration,
		IsActive:       t.IsActive,
	}
}

func (m *RequestTypeMapper) TasksToEntities(tasks []*model.TaskDefinition) []*entity.TaskDefinition {
	entities := make([]*entity.TaskDefinition, len(tasks))
	for i, t := range tasks {
		entities[i] = m.TaskToEntity(t)
	}
	return entities
}
