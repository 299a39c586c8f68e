package dto

import "time"

type TaskDefinitionRequest struct {
	TaskName       string                 `json:"task_name" validate:"required"`
	TaskType       string                 `json:"task_type" validate:"required"`
	ExecutionOrder int                    `json:"execution_order"`
	Configuration  map[string]interface{} `json:"configuration"`
	IsActive       *bool                  `json:"is_active"`
}

type TaskDefinitionResponse struct {
	Id             uint                   `json:"id"`
	TaskName       string                 `json:"task_name"`
	TaskType       string                 `json:"task_type"`
	ExecutionOrder int                    `json:"execution_order"`
	Configuration  map[string]interface{} `json:"configuration,omitempty"`
	IsActive       bool                   `json:"is_active"`
}

type CreateRequestTypeRequest struct {
	Name        string                  `json:"name" validate:"required"`
	Description string                  `json:"description"`
	Tasks       []TaskDefinitionRequest `json:"tasks"`
}

type UpdateRequestTypeRequest struct {
	Id          uint
	Name        string                  `json:"name" validate:"required"`
	Description string                  `json:"description"`
	IsActive    *bool                   `json:"is_active"`
	Tasks       []TaskDefinitionRequest `json:"tasks"`
}

type RequestTypeResponse struct {
	Id          uint                     `json:"id"`
	Name        string                   `json:"name"`
	Description string                   `json:"description"`
	IsActive    bool                     `json:"is_active"`
	CreatedAt   time.Time                `json:"created_at"`
	Tasks       []TaskDefinitionResponse `json:"tasks"`
}

type UpsertPolicyRequest struct {
	PolicyType string                 `json:"policy_type" validate:"required"`
	Title      string                 `json:"title" validate:"required"`
	Content    string                 `json:"content" validate:"required"`
	SourceURL  string                 `json:"source_url"`
	Metadata   map[string]interface{} `json:"metadata"`
}

type PolicyResponse struct {
	Id          uint      `json:"id"`
	PolicyType  string    `json:"policy_type"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	SourceURL   string    `json:"source_url,omitempty"`
	LastUpdated time.Time `json:"last_updated"`
}
