package model

import (
	"time"

	"gorm.io/datatypes"
)

type ConversationSession struct {
	Id              uint   `gorm:"primaryKey;autoIncrement"`
	SessionId       string `gorm:"type:varchar(100);not null;uniqueIndex"`
	CustomerQuery   string `gorm:"type:text;not null"`
	DetectedIntents datatypes.JSON
	CurrentState    datatypes.JSON
	Status          string    `gorm:"type:varchar(20);not null;default:'active'"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

func (ConversationSession) TableName() string {
	return "conversation_sessions"
}
