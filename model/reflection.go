package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DailyReflection stores one journal entry per date. Date is the
// YYYY-MM-DD string the client submits, looked up verbatim.
type DailyReflection struct {
	ID           string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Date         string    `gorm:"type:varchar(64);not null;index" json:"date"`
	Learned      string    `gorm:"type:text;not null" json:"learned"`
	Shortcomings string    `gorm:"type:text" json:"shortcomings"`
	Wins         string    `gorm:"type:text" json:"wins"`
	Goals        string    `gorm:"type:text" json:"goals"`
	Mood         int       `json:"mood"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (DailyReflection) TableName() string { return "daily_reflections" }

func (r *DailyReflection) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}
