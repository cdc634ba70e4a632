package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClientQualification holds a BANT-style scoring sheet. DealID is a soft
// reference, not enforced against the deals table.
type ClientQualification struct {
	ID                  string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	ClientName          string    `gorm:"type:text;not null" json:"clientName"`
	ClientType          string    `gorm:"type:varchar(64);not null" json:"clientType"`
	ClientIndustry      string    `gorm:"type:text" json:"clientIndustry"`
	ClientDescription   string    `gorm:"type:text" json:"clientDescription"`
	AiPainPoints        string    `gorm:"type:text" json:"aiPainPoints"`
	DealID              string    `gorm:"type:varchar(36)" json:"dealId"`
	Budget              string    `gorm:"type:varchar(64)" json:"budget"`
	NeedLevel           int       `json:"needLevel"`
	AuthorityLevel      int       `json:"authorityLevel"`
	TimelineLevel       int       `json:"timelineLevel"`
	FitLevel            int       `json:"fitLevel"`
	TotalScore          int       `json:"totalScore"`
	QualificationResult string    `gorm:"type:varchar(64)" json:"qualificationResult"`
	Notes               string    `gorm:"type:text" json:"notes"`
	ActionPlan          string    `gorm:"type:text" json:"actionPlan"`
	CreatedAt           time.Time `json:"createdAt"`
}

func (ClientQualification) TableName() string { return "client_qualifications" }

func (q *ClientQualification) BeforeCreate(tx *gorm.DB) error {
	if q.ID == "" {
		q.ID = uuid.New().String()
	}
	return nil
}
