package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Referral struct {
	ID             string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	ReferrerName   string    `gorm:"type:text;not null" json:"referrerName"`
	ReferrerDealID string    `gorm:"type:varchar(36)" json:"referrerDealId"`
	ReferredName   string    `gorm:"type:text;not null" json:"referredName"`
	ReferredPhone  string    `gorm:"type:varchar(64)" json:"referredPhone"`
	ReferredEmail  string    `gorm:"type:varchar(255)" json:"referredEmail"`
	ReferredType   string    `gorm:"type:varchar(64)" json:"referredType"`
	Status         string    `gorm:"type:varchar(64);not null" json:"status"`
	Notes          string    `gorm:"type:text" json:"notes"`
	FollowUpDate   string    `gorm:"type:varchar(64)" json:"followUpDate"`
	CreatedAt      time.Time `json:"createdAt"`
}

func (Referral) TableName() string { return "referrals" }

func (r *Referral) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}
