package service

import (
	"errors"

	"github.com/quizzyhq/quizzy-core/internal/apperr"
	"github.com/quizzyhq/quizzy-core/internal/dto"
	"github.com/quizzyhq/quizzy-core/internal/model"
	"github.com/quizzyhq/quizzy-core/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type UserAnswerService interface {
	RecordAnswer(userID uint, reference string, req dto.RecordAnswerRequest) (*dto.UserAnswerResponse, error)
	GetAllAnswers(userID uint, reference string) ([]dto.UserAnswerResponse, error)
}

type userAnswerService struct {
	repo         repository.UserAnswerRepository
	logRepo      repository.LogRepository
	questionRepo repository.QuestionRepository
	answerRepo   repository.AnswerRepository
}

func NewUserAnswerService(repo repository.UserAnswerRepository, logRepo repository.LogRepository, questionRepo repository.QuestionRepository, answerRepo repository.AnswerRepository) UserAnswerService {
	return &userAnswerService{repo: repo, logRepo: logRepo, questionRepo: questionRepo, answerRepo: answerRepo}
}

// RecordAnswer appends or replaces a selection on an open session. A
// single-answer question keeps at most one row per question; a later
// selection replaces the earlier one. A multiple-answer question accumulates
// rows, rejecting a repeat of the same option.
func (s *userAnswerService) RecordAnswer(userID uint, reference string, req dto.RecordAnswerRequest) (*dto.UserAnswerResponse, error) {
	session, err := s.logRepo.FindByUserAndReference(userID, reference)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Assessment session not found")
	}
	if err != nil {
		return nil, err
	}
	if !session.Open() {
		return nil, apperr.BusinessRule("You've completed the assessment already!")
	}

	question, err := s.questionRepo.FindByAssessmentAndID(session.AssessmentID, req.QuestionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Question not found")
	}
	if err != nil {
		return nil, err
	}

	answer, err := s.answerRepo.FindByQuestionAndID(question.ID, req.AnswerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Answer not found")
	}
	if err != nil {
		return nil, err
	}

	record := model.UserAnswer{
		LogID:        session.ID,
		QuestionID:   question.ID,
		UserID:       userID,
		AssessmentID: session.AssessmentID,
		AnswerID:     answer.ID,
	}

	if question.MultipleAnswer {
		existing, err := s.repo.FindAllByLogAndQuestion(session.ID, question.ID)
		if err != nil {
			return nil, err
		}
		for _, e := range existing {
			if e.AnswerID == answer.ID {
				return nil, apperr.BusinessRule("Answer already recorded!")
			}
		}
		if err := s.repo.Create(&record); err != nil {
			log.Error().Err(err).Uint("logID", session.ID).Msg("Failed to record answer")
			return nil, err
		}
	} else {
		if err := s.repo.ReplaceForQuestion(session.ID, question.ID, &record); err != nil {
			log.Error().Err(err).Uint("logID", session.ID).Msg("Failed to record answer")
			return nil, err
		}
	}

	return &dto.UserAnswerResponse{
		QuestionID: question.ID,
		AnswerID:   answer.ID,
		Question:   question.Question,
		Option:     answer.Option,
		CreatedAt:  record.CreatedAt,
	}, nil
}

func (s *userAnswerService) GetAllAnswers(userID uint, reference string) ([]dto.UserAnswerResponse, error) {
	session, err := s.logRepo.FindByUserAndReference(userID, reference)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Assessment session not found")
	}
	if err != nil {
		return nil, err
	}

	records, err := s.repo.FindAllByLog(session.ID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.UserAnswerResponse, 0, len(records))
	for _, r := range records {
		resp = append(resp, dto.UserAnswerResponse{
			QuestionID: r.QuestionID,
			AnswerID:   r.AnswerID,
			Question:   r.Question.Question,
			Option:     r.Answer.Option,
			CreatedAt:  r.CreatedAt,
		})
	}
	return resp, nil
}
