package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Deal is one pipeline entry. Stage tracks pipeline position, status the
// commercial outcome (new / closed_won / closed_lost / ...).
type Deal struct {
	ID             string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	ClientName     string    `gorm:"type:text;not null" json:"clientName"`
	ClientType     string    `gorm:"type:varchar(64);not null" json:"clientType"`
	Stage          string    `gorm:"type:varchar(64);not null" json:"stage"`
	Value          string    `gorm:"type:varchar(64)" json:"value"`
	Owner          string    `gorm:"type:varchar(255);not null" json:"owner"`
	Status         string    `gorm:"type:varchar(64);not null" json:"status"`
	AwarenessLevel string    `gorm:"type:varchar(64)" json:"awarenessLevel"`
	Notes          string    `gorm:"type:text" json:"notes"`
	CreatedAt      time.Time `json:"createdAt"`
}

func (Deal) TableName() string { return "deals" }

func (d *Deal) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	return nil
}
