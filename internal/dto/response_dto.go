package dto

import "time"

type AssessmentResponse struct {
	ID             uint       `json:"id"`
	Identifier     string     `json:"identifier"`
	Name           string     `json:"name"`
	Description    string     `json:"description,omitempty"`
	Private        bool       `json:"private"`
	Start          time.Time  `json:"start"`
	End            *time.Time `json:"end,omitempty"`
	Duration       *int       `json:"duration,omitempty"`
	Retakes        *int       `json:"retakes,omitempty"`
	CandidateLimit *int       `json:"candidate_limit,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type QuestionResponse struct {
	ID             uint             `json:"id"`
	Question       string           `json:"question"`
	MultipleAnswer bool             `json:"multiple_answer"`
	Order          int              `json:"order"`
	Answers        []AnswerResponse `json:"answers,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

type AnswerResponse struct {
	ID      uint   `json:"id"`
	Option  string `json:"option"`
	Correct bool   `json:"correct"`
	Order   int    `json:"order"`
}

// Candidate-facing shapes. Correct flags never leave the platform surface.

type CandidateAnswerResponse struct {
	ID     uint   `json:"id"`
	Option string `json:"option"`
	Order  int    `json:"order"`
}

type CandidateQuestionResponse struct {
	ID             uint                      `json:"id"`
	Question       string                    `json:"question"`
	MultipleAnswer bool                      `json:"multiple_answer"`
	Order          int                       `json:"order"`
	Answers        []CandidateAnswerResponse `json:"answers"`
}

type CandidateAssessmentResponse struct {
	Identifier  string                      `json:"identifier"`
	Name        string                      `json:"name"`
	Description string                      `json:"description,omitempty"`
	Duration    *int                        `json:"duration,omitempty"`
	Questions   []CandidateQuestionResponse `json:"questions"`
}

type LogResponse struct {
	Reference  string     `json:"reference"`
	Assessment string     `json:"assessment,omitempty"`
	StartTime  time.Time  `json:"start_time"`
	EndTime    *time.Time `json:"end_time,omitempty"`
}

type UserAnswerResponse struct {
	QuestionID uint      `json:"question_id"`
	AnswerID   uint      `json:"answer_id"`
	Question   string    `json:"question,omitempty"`
	Option     string    `json:"option,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
