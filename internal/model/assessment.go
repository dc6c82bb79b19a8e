package model

import (
	"time"

	"gorm.io/gorm"
)

type Assessment struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	PlatformID     uint           `json:"platform_id" gorm:"not null;index"`
	Platform       Platform       `json:"platform,omitempty" gorm:"foreignKey:PlatformID"`
	Identifier     string         `json:"identifier" gorm:"size:40;not null;uniqueIndex"`
	Name           string         `json:"name" gorm:"size:100;not null"`
	Stripped       string         `json:"stripped" gorm:"size:100;not null;index"`
	Description    string         `json:"description,omitempty" gorm:"type:text"`
	Private        bool           `json:"private" gorm:"not null;default:false"`
	Start          time.Time      `json:"start" gorm:"not null"`
	End            *time.Time     `json:"end,omitempty"`
	Duration       *int           `json:"duration,omitempty"` // minutes
	Retakes        *int           `json:"retakes,omitempty"`
	CandidateLimit *int           `json:"candidate_limit,omitempty"`
	Questions      []Question     `json:"questions,omitempty" gorm:"foreignKey:AssessmentID"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
