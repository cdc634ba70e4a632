package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type KnowledgeFile struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	Type      string    `gorm:"type:varchar(64);not null" json:"type"`
	Size      string    `gorm:"type:varchar(64);not null" json:"size"`
	Tag       string    `gorm:"type:varchar(64);not null" json:"tag"`
	Content   string    `gorm:"type:longtext" json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

func (KnowledgeFile) TableName() string { return "knowledge_files" }

func (k *KnowledgeFile) BeforeCreate(tx *gorm.DB) error {
	if k.ID == "" {
		k.ID = uuid.New().String()
	}
	return nil
}
