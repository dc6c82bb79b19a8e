package model

import (
	"time"

	"gorm.io/gorm"
)

// Answer is one selectable option under a question. If the owning question has
// MultipleAnswer false, at most one Answer under it may have Correct true.
type Answer struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	QuestionID uint           `json:"question_id" gorm:"not null;index"`
	Question   Question       `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	Option     string         `json:"option" gorm:"type:text;not null"`
	Correct    bool           `json:"correct" gorm:"not null;default:false"`
	Order      int            `json:"order" gorm:"column:order_index;not null"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
