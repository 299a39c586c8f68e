package model

import (
	"time"

	"gorm.io/datatypes"
)

type ConversationMessage struct {
	Id          uint   `gorm:"primaryKey;autoIncrement"`
	SessionId   string `gorm:"type:varchar(100);not null;index"`
	Sender      string `gorm:"type:varchar(20);not null"`
	Message     string `gorm:"type:text;not null"`
	MessageType string `gorm:"type:varchar(50)"`
	Metadata    datatypes.JSON
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (ConversationMessage) TableName() string {
	return "conversation_messages"
}
