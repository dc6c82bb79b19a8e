package service

import (
	"errors"

	"github.com/jinzhu/copier"
	"github.com/quizzyhq/quizzy-core/internal/apperr"
	"github.com/quizzyhq/quizzy-core/internal/dto"
	"github.com/quizzyhq/quizzy-core/internal/model"
	"github.com/quizzyhq/quizzy-core/internal/notifier"
	"github.com/quizzyhq/quizzy-core/internal/ordering"
	"github.com/quizzyhq/quizzy-core/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type QuestionService interface {
	AddQuestion(platformID, assessmentID uint, req dto.CreateQuestionRequest) (*dto.QuestionResponse, error)
	GetAllQuestions(platformID, assessmentID uint) ([]dto.QuestionResponse, error)
	UpdateQuestion(platformID, assessmentID, id uint, req dto.UpdateQuestionRequest) (*dto.QuestionResponse, error)
	ReorderQuestion(platformID, assessmentID, id uint, target int) (*dto.QuestionResponse, error)
	RemoveQuestion(platformID, assessmentID, id uint) error
}

type questionService struct {
	repo           repository.QuestionRepository
	assessmentRepo repository.AssessmentRepository
	entitlement    EntitlementService
	notifier       notifier.Notifier
}

func NewQuestionService(repo repository.QuestionRepository, assessmentRepo repository.AssessmentRepository, entitlement EntitlementService, n notifier.Notifier) QuestionService {
	return &questionService{repo: repo, assessmentRepo: assessmentRepo, entitlement: entitlement, notifier: n}
}

func (s *questionService) AddQuestion(platformID, assessmentID uint, req dto.CreateQuestionRequest) (*dto.QuestionResponse, error) {
	if err := s.checkOwnership(platformID, assessmentID); err != nil {
		return nil, err
	}

	limits, err := s.entitlement.LimitsFor(platformID)
	if err != nil {
		return nil, err
	}

	count, err := s.repo.CountByAssessment(assessmentID)
	if err != nil {
		return nil, err
	}
	if count >= int64(limits.MaxQuestions) {
		return nil, apperr.BusinessRule("Maximum number of questions reached!")
	}

	// New questions always append. Positions are assigned, never chosen.
	question := model.Question{
		AssessmentID:   assessmentID,
		Question:       req.Question,
		MultipleAnswer: req.MultipleAnswer,
		Order:          int(count) + 1,
	}
	if err := s.repo.Create(&question); err != nil {
		log.Error().Err(err).Uint("assessmentID", assessmentID).Msg("Failed to create question")
		return nil, err
	}

	s.notifier.Publish(notifier.Event{
		Subject: "question",
		Action:  "created",
		ActorID: platformID,
	})

	var resp dto.QuestionResponse
	copier.Copy(&resp, &question)
	return &resp, nil
}

func (s *questionService) GetAllQuestions(platformID, assessmentID uint) ([]dto.QuestionResponse, error) {
	if err := s.checkOwnership(platformID, assessmentID); err != nil {
		return nil, err
	}
	questions, err := s.repo.FindAllByAssessment(assessmentID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.QuestionResponse, 0, len(questions))
	copier.Copy(&resp, &questions)
	return resp, nil
}

func (s *questionService) UpdateQuestion(platformID, assessmentID, id uint, req dto.UpdateQuestionRequest) (*dto.QuestionResponse, error) {
	if err := s.checkOwnership(platformID, assessmentID); err != nil {
		return nil, err
	}
	question, err := s.findOwned(assessmentID, id)
	if err != nil {
		return nil, err
	}

	if req.Question != nil {
		question.Question = *req.Question
	}
	if req.MultipleAnswer != nil {
		question.MultipleAnswer = *req.MultipleAnswer
	}
	if err := s.repo.Update(question); err != nil {
		log.Error().Err(err).Uint("questionID", id).Msg("Failed to update question")
		return nil, err
	}

	s.notifier.Publish(notifier.Event{
		Subject: "question",
		Action:  "updated",
		ActorID: platformID,
	})

	var resp dto.QuestionResponse
	copier.Copy(&resp, question)
	return &resp, nil
}

// ReorderQuestion moves the question to target by swapping with the occupant
// of that position. A vacant target is taken directly, leaving a gap at the
// question's old position.
func (s *questionService) ReorderQuestion(platformID, assessmentID, id uint, target int) (*dto.QuestionResponse, error) {
	if err := s.checkOwnership(platformID, assessmentID); err != nil {
		return nil, err
	}
	question, err := s.findOwned(assessmentID, id)
	if err != nil {
		return nil, err
	}

	count, err := s.repo.CountByAssessment(assessmentID)
	if err != nil {
		return nil, err
	}
	if target < 1 || int64(target) > count {
		return nil, apperr.BusinessRule("Ordering is out of range!")
	}

	occupant, err := s.repo.FindByOrder(assessmentID, target)
	hasOccupant := true
	if errors.Is(err, gorm.ErrRecordNotFound) {
		hasOccupant = false
	} else if err != nil {
		return nil, err
	}

	var occupantID uint
	if hasOccupant {
		occupantID = occupant.ID
	}
	plan := ordering.PlanReorder(question.ID, question.Order, occupantID, hasOccupant, target)

	if plan.Kind == ordering.Retain {
		s.notifier.Publish(notifier.Event{
			Subject: "question",
			Action:  "reordered",
			ActorID: platformID,
			Details: "Ordering already in place",
		})
		var resp dto.QuestionResponse
		copier.Copy(&resp, question)
		return &resp, nil
	}

	if err := s.repo.ApplyReorder(assessmentID, plan); err != nil {
		log.Error().Err(err).Uint("questionID", id).Int("target", target).Msg("Failed to reorder question")
		return nil, err
	}

	details := ""
	if plan.Kind == ordering.Move {
		details = "Replaced ordering not found in range"
	}
	s.notifier.Publish(notifier.Event{
		Subject: "question",
		Action:  "reordered",
		ActorID: platformID,
		Details: details,
	})

	question.Order = target
	var resp dto.QuestionResponse
	copier.Copy(&resp, question)
	return &resp, nil
}

func (s *questionService) RemoveQuestion(platformID, assessmentID, id uint) error {
	if err := s.checkOwnership(platformID, assessmentID); err != nil {
		return err
	}
	if _, err := s.findOwned(assessmentID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(assessmentID, id); err != nil {
		return err
	}
	s.notifier.Publish(notifier.Event{
		Subject: "question",
		Action:  "deleted",
		ActorID: platformID,
	})
	return nil
}

func (s *questionService) checkOwnership(platformID, assessmentID uint) error {
	_, err := s.assessmentRepo.FindByPlatformAndID(platformID, assessmentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("Assessment not found")
	}
	return err
}

func (s *questionService) findOwned(assessmentID, id uint) (*model.Question, error) {
	question, err := s.repo.FindByAssessmentAndID(assessmentID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Question not found")
	}
	if err != nil {
		return nil, err
	}
	return question, nil
}
