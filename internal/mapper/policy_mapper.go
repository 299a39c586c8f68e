package mapper

import (
	"encoding/json"

	"airline-support-be/internal/entity"
	"airline-support-be/internal/model"

	"gorm.io/datatypes"
)

type PolicyMapper struct{}

func NewPolicyMapper() *PolicyMapper {
	return &PolicyMapper{}
}

func (m *PolicyMapper) ToEntity(p *model.PolicyDocument) *entity.PolicyDocument {
	if p == nil {
		return nil
	}

	var metadata map[string]interface{}
	if len(p.Metadata) > 0 {
		_ = json.Unmarshal(p.Metadata, &metadata)
	}

	return &entity.PolicyDocument{
		Id:          p.Id,
		PolicyType:  p.PolicyType,
		Title:       p.Title,
		Content:     p.Content,
		SourceURL:   p.SourceURL,
		LastUpdated: p.LastUpdated,
		Metadata:    metadata,
	}
}

func (m *PolicyMapper) ToModel(p *entity.PolicyDocument) *model.PolicyDocument {
	if p == nil {
		return nil
	}

	var metadata datatypes.JSON
	if p.Metadata != nil {
		raw, err := json.Marshal(p.Metadata)
		if err == nil {
			metadata = datatypes.JSON(raw)
		}
	}

	return &model.PolicyDocument{
		Id:          p.Id,
		PolicyType:  p.PolicyType,
		Title:       p.Title,
		Content:     p.Content,
		SourceURL:   p.SourceURL,
		LastUpdated: p.LastUpdated,
		Metadata:    metadata,
	}
}

func (m *PolicyMapper) ToEntities(policies []*model.PolicyDocument) []*entity.PolicyDocument {
	entities := make([]*entity.PolicyDocument, len(policies))
	for i, p := range policies {
		entities[i] = m.ToEntity(p)
	}
	return entities
}
