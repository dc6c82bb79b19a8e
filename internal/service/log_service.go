package service

import (
	"errors"

	"github.com/google/uuid"
	"github.com/quizzyhq/quizzy-core/internal/apperr"
	"github.com/quizzyhq/quizzy-core/internal/dto"
	"github.com/quizzyhq/quizzy-core/internal/model"
	"github.com/quizzyhq/quizzy-core/internal/notifier"
	"github.com/quizzyhq/quizzy-core/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type LogService interface {
	ViewAssessment(identifier string) (*dto.CandidateAssessmentResponse, error)
	StartAssessment(userID uint, identifier string) (*dto.LogResponse, error)
	EndAssessment(userID uint, reference string) (*dto.LogResponse, error)
	GetLog(userID uint, reference string) (*dto.LogResponse, error)
	GetAllLogs(userID uint) ([]dto.LogResponse, error)
}

type logService struct {
	repo           repository.LogRepository
	assessmentRepo repository.AssessmentRepository
	clock          Clock
	notifier       notifier.Notifier
}

func NewLogService(repo repository.LogRepository, assessmentRepo repository.AssessmentRepository, clock Clock, n notifier.Notifier) LogService {
	return &logService{repo: repo, assessmentRepo: assessmentRepo, clock: clock, notifier: n}
}

// ViewAssessment returns the candidate-facing shape of an assessment with its
// questions and options in display order. Correct flags are never included.
func (s *logService) ViewAssessment(identifier string) (*dto.CandidateAssessmentResponse, error) {
	assessment, err := s.assessmentRepo.FindByIdentifierWithQuestions(identifier)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Assessment not found")
	}
	if err != nil {
		return nil, err
	}

	resp := dto.CandidateAssessmentResponse{
		Identifier:  assessment.Identifier,
		Name:        assessment.Name,
		Description: assessment.Description,
		Duration:    assessment.Duration,
		Questions:   make([]dto.CandidateQuestionResponse, 0, len(assessment.Questions)),
	}
	for _, q := range assessment.Questions {
		question := dto.CandidateQuestionResponse{
			ID:             q.ID,
			Question:       q.Question,
			MultipleAnswer: q.MultipleAnswer,
			Order:          q.Order,
			Answers:        make([]dto.CandidateAnswerResponse, 0, len(q.Answers)),
		}
		for _, a := range q.Answers {
			question.Answers = append(question.Answers, dto.CandidateAnswerResponse{
				ID:     a.ID,
				Option: a.Option,
				Order:  a.Order,
			})
		}
		resp.Questions = append(resp.Questions, question)
	}
	return &resp, nil
}

// StartAssessment opens a session after every admission gate passes. Gates
// run in a fixed order and each failure carries its own message: existence,
// start time, end time, candidate limit, retakes.
func (s *logService) StartAssessment(userID uint, identifier string) (*dto.LogResponse, error) {
	assessment, err := s.assessmentRepo.FindByIdentifier(identifier)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Assessment not found")
	}
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	if assessment.Start.After(now) {
		return nil, apperr.BusinessRule("Assessment hasn't started yet!")
	}
	if assessment.End != nil && !assessment.End.After(now) {
		return nil, apperr.BusinessRule("Assessment has ended!")
	}

	// Other distinct candidates count against the limit; a returning
	// candidate never blocks themselves.
	if assessment.CandidateLimit != nil {
		others, err := s.repo.CountDistinctOtherCandidates(assessment.ID, userID)
		if err != nil {
			return nil, err
		}
		if others >= int64(*assessment.CandidateLimit) {
			return nil, apperr.BusinessRule("Maximum number of candidates reached!")
		}
	}

	prior, err := s.repo.CountByAssessmentAndUser(assessment.ID, userID)
	if err != nil {
		return nil, err
	}
	allowedRetakes := 0
	if assessment.Retakes != nil {
		allowedRetakes = *assessment.Retakes
	}
	if prior > int64(allowedRetakes) {
		return nil, apperr.BusinessRule("Max retakes reached on assessment!")
	}

	session := model.AssessmentLog{
		Reference:    uuid.NewString(),
		UserID:       userID,
		AssessmentID: assessment.ID,
		StartTime:    now,
	}
	if err := s.repo.Create(&session); err != nil {
		log.Error().Err(err).Uint("userID", userID).Str("identifier", identifier).Msg("Failed to start assessment session")
		return nil, err
	}

	s.notifier.Publish(notifier.Event{
		Subject: "session",
		Action:  "started",
		ActorID: userID,
		Details: session.Reference,
	})

	return &dto.LogResponse{
		Reference:  session.Reference,
		Assessment: assessment.Name,
		StartTime:  session.StartTime,
	}, nil
}

// EndAssessment closes the session. The close is a conditional write, so of
// two concurrent calls exactly one succeeds and the other is rejected as
// already completed.
func (s *logService) EndAssessment(userID uint, reference string) (*dto.LogResponse, error) {
	session, err := s.findOwned(userID, reference)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	closed, err := s.repo.Complete(session.ID, now)
	if err != nil {
		return nil, err
	}
	if !closed {
		return nil, apperr.BusinessRule("Assessment has already been completed!")
	}

	s.notifier.Publish(notifier.Event{
		Subject: "session",
		Action:  "completed",
		ActorID: userID,
		Details: session.Reference,
	})

	session.EndTime = &now
	return &dto.LogResponse{
		Reference:  session.Reference,
		Assessment: session.Assessment.Name,
		StartTime:  session.StartTime,
		EndTime:    session.EndTime,
	}, nil
}

func (s *logService) GetLog(userID uint, reference string) (*dto.LogResponse, error) {
	session, err := s.findOwned(userID, reference)
	if err != nil {
		return nil, err
	}
	return &dto.LogResponse{
		Reference:  session.Reference,
		Assessment: session.Assessment.Name,
		StartTime:  session.StartTime,
		EndTime:    session.EndTime,
	}, nil
}

func (s *logService) GetAllLogs(userID uint) ([]dto.LogResponse, error) {
	sessions, err := s.repo.FindAllByUser(userID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.LogResponse, 0, len(sessions))
	for _, session := range sessions {
		resp = append(resp, dto.LogResponse{
			Reference:  session.Reference,
			Assessment: session.Assessment.Name,
			StartTime:  session.StartTime,
			EndTime:    session.EndTime,
		})
	}
	return resp, nil
}

func (s *logService) findOwned(userID uint, reference string) (*model.AssessmentLog, error) {
	session, err := s.repo.FindByUserAndReference(userID, reference)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Assessment session not found")
	}
	if err != nil {
		return nil, err
	}
	return session, nil
}
