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

type AnswerService interface {
	AddAnswer(platformID, assessmentID, questionID uint, req dto.CreateAnswerRequest) (*dto.AnswerResponse, error)
	GetAllAnswers(platformID, assessmentID, questionID uint) ([]dto.AnswerResponse, error)
	UpdateAnswer(platformID, assessmentID, questionID, id uint, req dto.UpdateAnswerRequest) (*dto.AnswerResponse, error)
	UpdateCriteria(platformID, assessmentID, questionID, id uint, correct bool) (*dto.AnswerResponse, error)
	ReorderAnswer(platformID, assessmentID, questionID, id uint, target int) (*dto.AnswerResponse, error)
	RemoveAnswer(platformID, assessmentID, questionID, id uint) error
}

type answerService struct {
	repo           repository.AnswerRepository
	questionRepo   repository.QuestionRepository
	assessmentRepo repository.AssessmentRepository
	entitlement    EntitlementService
	notifier       notifier.Notifier
}

func NewAnswerService(repo repository.AnswerRepository, questionRepo repository.QuestionRepository, assessmentRepo repository.AssessmentRepository, entitlement EntitlementService, n notifier.Notifier) AnswerService {
	return &answerService{repo: repo, questionRepo: questionRepo, assessmentRepo: assessmentRepo, entitlement: entitlement, notifier: n}
}

func (s *answerService) AddAnswer(platformID, assessmentID, questionID uint, req dto.CreateAnswerRequest) (*dto.AnswerResponse, error) {
	question, err := s.ownedQuestion(platformID, assessmentID, questionID)
	if err != nil {
		return nil, err
	}

	limits, err := s.entitlement.LimitsFor(platformID)
	if err != nil {
		return nil, err
	}

	count, err := s.repo.CountByQuestion(questionID)
	if err != nil {
		return nil, err
	}
	if count >= int64(limits.MaxAnswers) {
		return nil, apperr.BusinessRule("Maximum number of answers reached!")
	}

	// A single-answer question holds at most one correct option.
	if req.Correct && !question.MultipleAnswer {
		current, err := s.repo.FindCorrect(questionID)
		if err != nil {
			return nil, err
		}
		if current != nil {
			return nil, apperr.BusinessRule("A correct answer already exists on this question!")
		}
	}

	answer := model.Answer{
		QuestionID: questionID,
		Option:     req.Option,
		Correct:    req.Correct,
		Order:      int(count) + 1,
	}
	if err := s.repo.Create(&answer); err != nil {
		log.Error().Err(err).Uint("questionID", questionID).Msg("Failed to create answer")
		return nil, err
	}

	s.notifier.Publish(notifier.Event{
		Subject: "answer",
		Action:  "created",
		ActorID: platformID,
	})

	var resp dto.AnswerResponse
	copier.Copy(&resp, &answer)
	return &resp, nil
}

func (s *answerService) GetAllAnswers(platformID, assessmentID, questionID uint) ([]dto.AnswerResponse, error) {
	if _, err := s.ownedQuestion(platformID, assessmentID, questionID); err != nil {
		return nil, err
	}
	answers, err := s.repo.FindAllByQuestion(questionID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.AnswerResponse, 0, len(answers))
	copier.Copy(&resp, &answers)
	return resp, nil
}

func (s *answerService) UpdateAnswer(platformID, assessmentID, questionID, id uint, req dto.UpdateAnswerRequest) (*dto.AnswerResponse, error) {
	if _, err := s.ownedQuestion(platformID, assessmentID, questionID); err != nil {
		return nil, err
	}
	answer, err := s.findOwned(questionID, id)
	if err != nil {
		return nil, err
	}

	answer.Option = req.Option
	if err := s.repo.Update(answer); err != nil {
		log.Error().Err(err).Uint("answerID", id).Msg("Failed to update answer")
		return nil, err
	}

	s.notifier.Publish(notifier.Event{
		Subject: "answer",
		Action:  "updated",
		ActorID: platformID,
	})

	var resp dto.AnswerResponse
	copier.Copy(&resp, answer)
	return &resp, nil
}

// UpdateCriteria marks the answer correct or incorrect. A single-answer
// question holds at most one correct option, so its current correct option
// must be unmarked before another can be marked.
func (s *answerService) UpdateCriteria(platformID, assessmentID, questionID, id uint, correct bool) (*dto.AnswerResponse, error) {
	question, err := s.ownedQuestion(platformID, assessmentID, questionID)
	if err != nil {
		return nil, err
	}
	answer, err := s.findOwned(questionID, id)
	if err != nil {
		return nil, err
	}

	if correct && !question.MultipleAnswer {
		current, err := s.repo.FindCorrect(questionID)
		if err != nil {
			return nil, err
		}
		if current != nil && current.ID != answer.ID {
			return nil, apperr.BusinessRule("A correct answer already exists on this question!")
		}
	}
	if !correct && !answer.Correct {
		return nil, apperr.BusinessRule("Answer is not marked as correct!")
	}

	answer.Correct = correct
	if err := s.repo.Update(answer); err != nil {
		log.Error().Err(err).Uint("answerID", id).Msg("Failed to update answer criteria")
		return nil, err
	}

	s.notifier.Publish(notifier.Event{
		Subject: "answer",
		Action:  "criteria_updated",
		ActorID: platformID,
	})

	var resp dto.AnswerResponse
	copier.Copy(&resp, answer)
	return &resp, nil
}

func (s *answerService) ReorderAnswer(platformID, assessmentID, questionID, id uint, target int) (*dto.AnswerResponse, error) {
	if _, err := s.ownedQuestion(platformID, assessmentID, questionID); err != nil {
		return nil, err
	}
	answer, err := s.findOwned(questionID, id)
	if err != nil {
		return nil, err
	}

	count, err := s.repo.CountByQuestion(questionID)
	if err != nil {
		return nil, err
	}
	if target < 1 || int64(target) > count {
		return nil, apperr.BusinessRule("Ordering is out of range!")
	}

	occupant, err := s.repo.FindByOrder(questionID, target)
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
	plan := ordering.PlanReorder(answer.ID, answer.Order, occupantID, hasOccupant, target)

	if plan.Kind != ordering.Retain {
		if err := s.repo.ApplyReorder(questionID, plan); err != nil {
			log.Error().Err(err).Uint("answerID", id).Int("target", target).Msg("Failed to reorder answer")
			return nil, err
		}
		answer.Order = target
	}

	details := ""
	switch plan.Kind {
	case ordering.Move:
		details = "Replaced ordering not found in range"
	case ordering.Retain:
		details = "Ordering already in place"
	}
	s.notifier.Publish(notifier.Event{
		Subject: "answer",
		Action:  "reordered",
		ActorID: platformID,
		Details: details,
	})

	var resp dto.AnswerResponse
	copier.Copy(&resp, answer)
	return &resp, nil
}

func (s *answerService) RemoveAnswer(platformID, assessmentID, questionID, id uint) error {
	if _, err := s.ownedQuestion(platformID, assessmentID, questionID); err != nil {
		return err
	}
	if _, err := s.findOwned(questionID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(questionID, id); err != nil {
		return err
	}
	s.notifier.Publish(notifier.Event{
		Subject: "answer",
		Action:  "deleted",
		ActorID: platformID,
	})
	return nil
}

// ownedQuestion walks the platform -> assessment -> question chain so a
// platform can never touch another platform's options.
func (s *answerService) ownedQuestion(platformID, assessmentID, questionID uint) (*model.Question, error) {
	_, err := s.assessmentRepo.FindByPlatformAndID(platformID, assessmentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Assessment not found")
	}
	if err != nil {
		return nil, err
	}
	question, err := s.questionRepo.FindByAssessmentAndID(assessmentID, questionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Question not found")
	}
	if err != nil {
		return nil, err
	}
	return question, nil
}

func (s *answerService) findOwned(questionID, id uint) (*model.Answer, error) {
	answer, err := s.repo.FindByQuestionAndID(questionID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Answer not found")
	}
	if err != nil {
		return nil, err
	}
	return answer, nil
}
