package model

import (
	"time"
)

// UserAnswer records a candidate's selected option for one question within a
// session. Single-answer questions keep at most one row per (log, question);
// multiple-answer questions accumulate one row per selected option.
type UserAnswer struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	LogID        uint      `json:"log_id" gorm:"not null;index:idx_user_answers_log_question"`
	QuestionID   uint      `json:"question_id" gorm:"not null;index:idx_user_answers_log_question"`
	UserID       uint      `json:"user_id" gorm:"not null;index"`
	AssessmentID uint      `json:"assessment_id" gorm:"not null;index"`
	AnswerID     uint      `json:"answer_id" gorm:"not null"`
	Answer       Answer    `json:"answer,omitempty" gorm:"foreignKey:AnswerID"`
	Question     Question  `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
