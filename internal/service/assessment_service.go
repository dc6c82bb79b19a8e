package service

import (
	"errors"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/quizzyhq/quizzy-core/internal/apperr"
	"github.com/quizzyhq/quizzy-core/internal/dto"
	"github.com/quizzyhq/quizzy-core/internal/model"
	"github.com/quizzyhq/quizzy-core/internal/notifier"
	"github.com/quizzyhq/quizzy-core/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const maxRetakes = 100

type AssessmentService interface {
	CreateAssessment(platformID uint, req dto.CreateAssessmentRequest) (*dto.AssessmentResponse, error)
	GetAssessment(platformID, id uint) (*dto.AssessmentResponse, error)
	GetAllAssessments(platformID uint) ([]dto.AssessmentResponse, error)
	UpdateAssessment(platformID, id uint, req dto.UpdateAssessmentRequest) (*dto.AssessmentResponse, error)
	DeleteAssessment(platformID, id uint) error
	PurgeAssessment(platformID, id uint) error
}

type assessmentService struct {
	repo        repository.AssessmentRepository
	entitlement EntitlementService
	notifier    notifier.Notifier
}

func NewAssessmentService(repo repository.AssessmentRepository, entitlement EntitlementService, n notifier.Notifier) AssessmentService {
	return &assessmentService{repo: repo, entitlement: entitlement, notifier: n}
}

// stripText reduces a name to its lowercase alphanumeric characters. Stripped
// names are unique per platform so "My Test" and "my-test" cannot coexist.
func stripText(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (s *assessmentService) CreateAssessment(platformID uint, req dto.CreateAssessmentRequest) (*dto.AssessmentResponse, error) {
	limits, err := s.entitlement.LimitsFor(platformID)
	if err != nil {
		return nil, err
	}

	count, err := s.repo.CountByPlatform(platformID)
	if err != nil {
		return nil, err
	}
	if count >= int64(limits.MaxAssessments) {
		return nil, apperr.BusinessRule("Maximum number of assessments reached!")
	}

	stripped := stripText(req.Name)
	if stripped == "" {
		return nil, apperr.BusinessRule("Assessment name is invalid!")
	}
	exists, err := s.repo.ExistsByStripped(platformID, stripped, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.BusinessRule("An assessment with a similar name already exists!")
	}

	if err := validateSchedule(req.Start, req.End); err != nil {
		return nil, err
	}
	if err := validateDuration(req.Duration, limits); err != nil {
		return nil, err
	}
	if err := validateRetakes(req.Retakes, limits); err != nil {
		return nil, err
	}
	if err := validateCandidateLimit(req.CandidateLimit, limits); err != nil {
		return nil, err
	}

	assessment := model.Assessment{
		PlatformID:     platformID,
		Identifier:     uuid.NewString(),
		Name:           req.Name,
		Stripped:       stripped,
		Description:    req.Description,
		Private:        req.Private,
		Start:          req.Start,
		End:            req.End,
		Duration:       req.Duration,
		Retakes:        req.Retakes,
		CandidateLimit: req.CandidateLimit,
	}
	if err := s.repo.Create(&assessment); err != nil {
		log.Error().Err(err).Uint("platformID", platformID).Msg("Failed to create assessment")
		return nil, err
	}

	s.notifier.Publish(notifier.Event{
		Subject: "assessment",
		Action:  "created",
		ActorID: platformID,
		Details: assessment.Identifier,
	})

	var resp dto.AssessmentResponse
	copier.Copy(&resp, &assessment)
	return &resp, nil
}

func (s *assessmentService) GetAssessment(platformID, id uint) (*dto.AssessmentResponse, error) {
	assessment, err := s.findOwned(platformID, id)
	if err != nil {
		return nil, err
	}
	var resp dto.AssessmentResponse
	copier.Copy(&resp, assessment)
	return &resp, nil
}

func (s *assessmentService) GetAllAssessments(platformID uint) ([]dto.AssessmentResponse, error) {
	assessments, err := s.repo.FindAllByPlatform(platformID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.AssessmentResponse, 0, len(assessments))
	copier.Copy(&resp, &assessments)
	return resp, nil
}

func (s *assessmentService) UpdateAssessment(platformID, id uint, req dto.UpdateAssessmentRequest) (*dto.AssessmentResponse, error) {
	assessment, err := s.findOwned(platformID, id)
	if err != nil {
		return nil, err
	}

	limits, err := s.entitlement.LimitsFor(platformID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		stripped := stripText(*req.Name)
		if stripped == "" {
			return nil, apperr.BusinessRule("Assessment name is invalid!")
		}
		exists, err := s.repo.ExistsByStripped(platformID, stripped, id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, apperr.BusinessRule("An assessment with a similar name already exists!")
		}
		assessment.Name = *req.Name
		assessment.Stripped = stripped
	}
	if req.Description != nil {
		assessment.Description = *req.Description
	}
	if req.Private != nil {
		assessment.Private = *req.Private
	}
	if req.Start != nil {
		assessment.Start = *req.Start
	}
	if req.End != nil {
		assessment.End = req.End
	}
	if req.Duration != nil {
		if err := validateDuration(req.Duration, limits); err != nil {
			return nil, err
		}
		assessment.Duration = req.Duration
	}
	if req.Retakes != nil {
		if err := validateRetakes(req.Retakes, limits); err != nil {
			return nil, err
		}
		assessment.Retakes = req.Retakes
	}
	if req.CandidateLimit != nil {
		if err := validateCandidateLimit(req.CandidateLimit, limits); err != nil {
			return nil, err
		}
		assessment.CandidateLimit = req.CandidateLimit
	}
	if err := validateSchedule(assessment.Start, assessment.End); err != nil {
		return nil, err
	}

	if err := s.repo.Update(assessment); err != nil {
		log.Error().Err(err).Uint("assessmentID", id).Msg("Failed to update assessment")
		return nil, err
	}

	s.notifier.Publish(notifier.Event{
		Subject: "assessment",
		Action:  "updated",
		ActorID: platformID,
		Details: assessment.Identifier,
	})

	var resp dto.AssessmentResponse
	copier.Copy(&resp, assessment)
	return &resp, nil
}

func (s *assessmentService) DeleteAssessment(platformID, id uint) error {
	assessment, err := s.findOwned(platformID, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(platformID, id); err != nil {
		return err
	}
	s.notifier.Publish(notifier.Event{
		Subject: "assessment",
		Action:  "deleted",
		ActorID: platformID,
		Details: assessment.Identifier,
	})
	return nil
}

// PurgeAssessment permanently removes the assessment with its questions,
// answers and candidate history.
func (s *assessmentService) PurgeAssessment(platformID, id uint) error {
	if err := s.repo.HardDelete(platformID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Assessment not found")
		}
		return err
	}
	s.notifier.Publish(notifier.Event{
		Subject: "assessment",
		Action:  "purged",
		ActorID: platformID,
	})
	return nil
}

func (s *assessmentService) findOwned(platformID, id uint) (*model.Assessment, error) {
	assessment, err := s.repo.FindByPlatformAndID(platformID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Assessment not found")
	}
	if err != nil {
		return nil, err
	}
	return assessment, nil
}

func validateSchedule(start time.Time, end *time.Time) error {
	if end != nil && !end.After(start) {
		return apperr.BusinessRule("Assessment end must be after its start!")
	}
	return nil
}

func validateDuration(duration *int, limits Limits) error {
	if duration == nil {
		return nil
	}
	if !limits.DurationEnabled {
		return apperr.BusinessRule("Assessment duration is not available on your current plan!")
	}
	if *duration < 1 || *duration > limits.DurationLimit {
		return apperr.BusinessRule("Assessment duration is out of range!")
	}
	return nil
}

func validateRetakes(retakes *int, limits Limits) error {
	if retakes == nil {
		return nil
	}
	if !limits.RetakesEnabled {
		return apperr.BusinessRule("Assessment retakes are not available on your current plan!")
	}
	if *retakes < 1 || *retakes > maxRetakes {
		return apperr.BusinessRule("Assessment retakes are out of range!")
	}
	return nil
}

func validateCandidateLimit(limit *int, limits Limits) error {
	if limit == nil {
		return nil
	}
	if *limit < 1 || *limit > limits.MaxCandidates {
		return apperr.BusinessRule("Candidate limit exceeds your current plan!")
	}
	return nil
}
