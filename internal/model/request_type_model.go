package model

import (
	"time"

	"gorm.io/datatypes"
)

type RequestType struct {
	Id          uint      `gorm:"primaryKey;autoIncrement"`
	Name        string    `gorm:"type:varchar(100);not null;unique"`
	Description string    `gorm:"type:text"`
	IsActive    bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`

	Tasks []TaskDefinition `gorm:"foreignKey:RequestTypeId"`
}

func (RequestType) TableName() string {
	return "request_types"
}

type TaskDefinition struct {
	Id             uint   `gorm:"primaryKey;autoIncrement"`
	RequestTypeId  uint   `gorm:"not null;index"`
	TaskName       string `gorm:"type:varchar(100);not null"`
	TaskType       string `gorm:"type:varchar(50);not null"`
	ExecutionOrder int    `gorm:"not null"`
	Configuration  datatypes.JSON
	IsActive       bool `gorm:"not null;default:true"`
}

func (TaskDefinition) TableName() string {
	return "task_definitions"
}
