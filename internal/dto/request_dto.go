package dto

import "time"

type CreateAssessmentRequest struct {
	Name           string     `json:"name" binding:"required"`
	Description    string     `json:"description"`
	Private        bool       `json:"private"`
	Start          time.Time  `json:"start" binding:"required"`
	End            *time.Time `json:"end"`
	Duration       *int       `json:"duration"` // minutes, plan-gated
	Retakes        *int       `json:"retakes"`  // extra attempts beyond the first, plan-gated
	CandidateLimit *int       `json:"candidate_limit"`
}

type UpdateAssessmentRequest struct {
	Name           *string    `json:"name"`
	Description    *string    `json:"description"`
	Private        *bool      `json:"private"`
	Start          *time.Time `json:"start"`
	End            *time.Time `json:"end"`
	Duration       *int       `json:"duration"`
	Retakes        *int       `json:"retakes"`
	CandidateLimit *int       `json:"candidate_limit"`
}

type CreateQuestionRequest struct {
	Question       string `json:"question" binding:"required"`
	MultipleAnswer bool   `json:"multiple_answer"`
}

type UpdateQuestionRequest struct {
	Question       *string `json:"question"`
	MultipleAnswer *bool   `json:"multiple_answer"`
}

type CreateAnswerRequest struct {
	Option  string `json:"option" binding:"required"`
	Correct bool   `json:"correct"`
}

type UpdateAnswerRequest struct {
	Option string `json:"option" binding:"required"`
}

// UpdateCriteriaRequest marks an option correct or incorrect.
type UpdateCriteriaRequest struct {
	Correct *bool `json:"correct" binding:"required"`
}

// ReorderRequest moves a question or answer to a new 1-based position.
type ReorderRequest struct {
	Order int `json:"order" binding:"required,min=1"`
}

type RecordAnswerRequest struct {
	QuestionID uint `json:"question_id" binding:"required"`
	AnswerID   uint `json:"answer_id" binding:"required"`
}
