package model

import (
	"time"

	"gorm.io/datatypes"
)

type PolicyDocument struct {
	Id          uint      `gorm:"primaryKey;autoIncrement"`
	PolicyType  string    `gorm:"type:varchar(50);not null;index"`
	Title       string    `gorm:"type:varchar(200);not null"`
	Content     string    `gorm:"type:text;not null"`
	SourceURL   string    `gorm:"type:varchar(500)"`
	LastUpdated time.Time `gorm:"autoUpdateTime"`
	Metadata    datatypes.JSON
}

func (PolicyDocument) TableName() string {
	return "policy_documents"
}
