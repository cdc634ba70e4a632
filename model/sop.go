package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SopStep is one step of the sales standard operating procedure. Steps are
// listed by StepNumber, not by creation time.
type SopStep struct {
	ID              string `gorm:"type:varchar(36);primaryKey" json:"id"`
	StepNumber      int    `gorm:"not null" json:"stepNumber"`
	Title           string `gorm:"type:text;not null" json:"title"`
	Objective       string `gorm:"type:text;not null" json:"objective"`
	ResponsibleRole string `gorm:"type:varchar(255);not null" json:"responsibleRole"`
	Actions         string `gorm:"type:text;not null" json:"actions"`
	SuccessCriteria string `gorm:"type:text;not null" json:"successCriteria"`
	CommonMistakes  string `gorm:"type:text" json:"commonMistakes"`
	NextStepYes     string `gorm:"type:text" json:"nextStepYes"`
	NextStepNo      string `gorm:"type:text" json:"nextStepNo"`
}

func (SopStep) TableName() string { return "sop_steps" }

func (s *SopStep) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}
