package model

import (
	"time"

	"gorm.io/gorm"
)

// Question holds a dense 1-based order within its assessment. New questions
// always append at count+1; reordering swaps positions rather than shifting.
type Question struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	AssessmentID   uint           `json:"assessment_id" gorm:"not null;index"`
	Assessment     Assessment     `json:"assessment,omitempty" gorm:"foreignKey:AssessmentID"`
	Question       string         `json:"question" gorm:"type:text;not null"`
	MultipleAnswer bool           `json:"multiple_answer" gorm:"not null;default:false"`
	Order          int            `json:"order" gorm:"column:order_index;not null"`
	Answers        []Answer       `json:"answers,omitempty" gorm:"foreignKey:QuestionID"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
