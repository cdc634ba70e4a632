package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClientAnalysis captures the intake form for a prospective client plus
// the generated needs analysis text.
type ClientAnalysis struct {
	ID             string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	ClientName     string    `gorm:"type:text;not null" json:"clientName"`
	ClientType     string    `gorm:"type:varchar(64);not null" json:"clientType"`
	Field          string    `gorm:"type:text;not null" json:"field"`
	CurrentMethod  string    `gorm:"type:text" json:"currentMethod"`
	TargetAudience string    `gorm:"type:text" json:"targetAudience"`
	Experience     string    `gorm:"type:text" json:"experience"`
	Challenges     string    `gorm:"type:text" json:"challenges"`
	Goals          string    `gorm:"type:text" json:"goals"`
	AdditionalInfo string    `gorm:"type:text" json:"additionalInfo"`
	AiAnalysis     string    `gorm:"type:longtext" json:"aiAnalysis"`
	CreatedAt      time.Time `json:"createdAt"`
}

func (ClientAnalysis) TableName() string { return "client_analyses" }

func (a *ClientAnalysis) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}
