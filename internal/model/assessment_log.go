package model

import (
	"time"

	"gorm.io/gorm"
)

// AssessmentLog is one candidate's timed pass through an assessment. A null
// EndTime means the session is still open; once set it is never cleared.
type AssessmentLog struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	Reference    string         `json:"reference" gorm:"size:40;not null;uniqueIndex"`
	UserID       uint           `json:"user_id" gorm:"not null;index"`
	AssessmentID uint           `json:"assessment_id" gorm:"not null;index"`
	Assessment   Assessment     `json:"assessment,omitempty" gorm:"foreignKey:AssessmentID"`
	StartTime    time.Time      `json:"start_time" gorm:"not null"`
	EndTime      *time.Time     `json:"end_time,omitempty"`
	UserAnswers  []UserAnswer   `json:"user_answers,omitempty" gorm:"foreignKey:LogID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// Open reports whether the session still accepts answers.
func (l *AssessmentLog) Open() bool {
	return l.EndTime == nil
}
