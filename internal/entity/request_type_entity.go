package entity

import "time"

// RequestType is the administrative declaration of a customer request
// and its ordered task templates. Stored configuration only: runtime
// dispatch stays with the fixed per-intent handlers.
type RequestType struct {
	Id          uint
	Name        string
	Description string
	IsActive    bool
	CreatedAt   time.Time
	Tasks       []TaskDefinition
}

type TaskDefinition struct {
	Id             uint
	RequestTypeId  uint
	TaskName       string
	TaskType       string
	ExecutionOrder int
	Configuration  map[string]interface{}
	IsActive       bool
}
