package service

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/quizzyhq/quizzy-core/internal/apperr"
	"github.com/quizzyhq/quizzy-core/internal/model"
	"github.com/quizzyhq/quizzy-core/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Tier is a platform's resolved subscription level. It is recomputed on every
// check; nothing caches the outcome per platform.
type Tier string

const (
	TierFree Tier = "Free"
	TierPaid Tier = "Paid"
)

// Entitlement catalogue criteria. Every criterion must exist for both tiers
// or startup fails.
const (
	criteriaMaxFreeCandidates      = "Max Free Candidates"
	criteriaMaxPaidCandidates      = "Max Paid Candidates"
	criteriaMaxFreeQuestions       = "Max Free Questions"
	criteriaMaxPaidQuestions       = "Max Paid Questions"
	criteriaMaxFreeAssessments     = "Max Free Assessments"
	criteriaMaxPaidAssessments     = "Max Paid Assessments"
	criteriaMaxFreeAnswers         = "Max Free Answers"
	criteriaMaxPaidAnswers         = "Max Paid Answers"
	criteriaMaxFreePlatformUsers   = "Max Free Platform Users"
	criteriaMaxPaidPlatformUsers   = "Max Paid Platform Users"
	criteriaFreeAssessmentDuration = "Free Assessment Duration"
	criteriaPaidAssessmentDuration = "Paid Assessment Duration"
	criteriaFreeAssessmentRetakes  = "Free Assessment Retakes"
	criteriaPaidAssessmentRetakes  = "Paid Assessment Retakes"
	criteriaFreeDurationLimit      = "Free Assessment Duration Limit"
	criteriaPaidDurationLimit      = "Paid Assessment Duration Limit"
)

// Limits is the typed view of one tier's catalogue entries.
type Limits struct {
	MaxAssessments   int
	MaxQuestions     int
	MaxAnswers       int
	MaxCandidates    int
	MaxPlatformUsers int
	DurationEnabled  bool
	DurationLimit    int // minutes
	RetakesEnabled   bool
}

// Catalog holds both tiers' limits, loaded once at startup and immutable
// afterwards.
type Catalog struct {
	free Limits
	paid Limits
}

func (c *Catalog) Limits(tier Tier) Limits {
	if tier == TierPaid {
		return c.paid
	}
	return c.free
}

// DefaultCatalogSeed returns the rows seeded into an empty catalogue.
func DefaultCatalogSeed() []model.AppDefault {
	return []model.AppDefault{
		{Criteria: criteriaMaxFreeCandidates, DataType: "INTEGER", Value: "100"},
		{Criteria: criteriaMaxPaidCandidates, DataType: "INTEGER", Value: "5000"},
		{Criteria: criteriaMaxFreeQuestions, DataType: "INTEGER", Value: "20"},
		{Criteria: criteriaMaxPaidQuestions, DataType: "INTEGER", Value: "100"},
		{Criteria: criteriaMaxFreeAssessments, DataType: "INTEGER", Value: "10"},
		{Criteria: criteriaMaxPaidAssessments, DataType: "INTEGER", Value: "1000"},
		{Criteria: criteriaMaxFreeAnswers, DataType: "INTEGER", Value: "4"},
		{Criteria: criteriaMaxPaidAnswers, DataType: "INTEGER", Value: "6"},
		{Criteria: criteriaMaxFreePlatformUsers, DataType: "INTEGER", Value: "5"},
		{Criteria: criteriaMaxPaidPlatformUsers, DataType: "INTEGER", Value: "50"},
		{Criteria: criteriaFreeAssessmentDuration, DataType: "BOOLEAN", Value: "false"},
		{Criteria: criteriaPaidAssessmentDuration, DataType: "BOOLEAN", Value: "true"},
		{Criteria: criteriaFreeAssessmentRetakes, DataType: "BOOLEAN", Value: "false"},
		{Criteria: criteriaPaidAssessmentRetakes, DataType: "BOOLEAN", Value: "true"},
		{Criteria: criteriaFreeDurationLimit, DataType: "INTEGER", Value: "1440"},
		{Criteria: criteriaPaidDurationLimit, DataType: "INTEGER", Value: "43800"},
	}
}

// coerceValue converts a catalogue row's raw string per its declared type.
func coerceValue(d model.AppDefault) (interface{}, error) {
	switch d.DataType {
	case "STRING":
		return d.Value, nil
	case "INTEGER", "BIGINT":
		n, err := strconv.Atoi(d.Value)
		if err != nil {
			return nil, fmt.Errorf("criteria %q: %w", d.Criteria, err)
		}
		return n, nil
	case "BOOLEAN":
		return d.Value == "true", nil
	default:
		return nil, fmt.Errorf("criteria %q: unknown data type %q", d.Criteria, d.DataType)
	}
}

// NewCatalog seeds missing catalogue rows and loads the full set into typed
// per-tier limits. A missing or uncoercible criterion is a deployment defect
// and fails startup with a ConfigMissing error.
func NewCatalog(repo repository.AppDefaultRepository) (*Catalog, error) {
	if err := repo.Seed(DefaultCatalogSeed()); err != nil {
		return nil, fmt.Errorf("seeding entitlement catalogue: %w", err)
	}

	defaults, err := repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("loading entitlement catalogue: %w", err)
	}

	byCriteria := make(map[string]model.AppDefault, len(defaults))
	for _, d := range defaults {
		byCriteria[d.Criteria] = d
	}

	intValue := func(criteria string) (int, error) {
		d, ok := byCriteria[criteria]
		if !ok {
			return 0, apperr.ConfigMissing("app default not found: " + criteria)
		}
		v, err := coerceValue(d)
		if err != nil {
			return 0, apperr.Wrap(apperr.KindConfigMissing, "app default invalid", err)
		}
		n, ok := v.(int)
		if !ok {
			return 0, apperr.ConfigMissing("app default not an integer: " + criteria)
		}
		return n, nil
	}
	boolValue := func(criteria string) (bool, error) {
		d, ok := byCriteria[criteria]
		if !ok {
			return false, apperr.ConfigMissing("app default not found: " + criteria)
		}
		v, err := coerceValue(d)
		if err != nil {
			return false, apperr.Wrap(apperr.KindConfigMissing, "app default invalid", err)
		}
		b, ok := v.(bool)
		if !ok {
			return false, apperr.ConfigMissing("app default not a boolean: " + criteria)
		}
		return b, nil
	}

	var catalog Catalog
	var firstErr error
	assign := func(dst *int, criteria string) {
		if firstErr != nil {
			return
		}
		n, err := intValue(criteria)
		if err != nil {
			firstErr = err
			return
		}
		*dst = n
	}
	assignBool := func(dst *bool, criteria string) {
		if firstErr != nil {
			return
		}
		b, err := boolValue(criteria)
		if err != nil {
			firstErr = err
			return
		}
		*dst = b
	}

	assign(&catalog.free.MaxCandidates, criteriaMaxFreeCandidates)
	assign(&catalog.paid.MaxCandidates, criteriaMaxPaidCandidates)
	assign(&catalog.free.MaxQuestions, criteriaMaxFreeQuestions)
	assign(&catalog.paid.MaxQuestions, criteriaMaxPaidQuestions)
	assign(&catalog.free.MaxAssessments, criteriaMaxFreeAssessments)
	assign(&catalog.paid.MaxAssessments, criteriaMaxPaidAssessments)
	assign(&catalog.free.MaxAnswers, criteriaMaxFreeAnswers)
	assign(&catalog.paid.MaxAnswers, criteriaMaxPaidAnswers)
	assign(&catalog.free.MaxPlatformUsers, criteriaMaxFreePlatformUsers)
	assign(&catalog.paid.MaxPlatformUsers, criteriaMaxPaidPlatformUsers)
	assignBool(&catalog.free.DurationEnabled, criteriaFreeAssessmentDuration)
	assignBool(&catalog.paid.DurationEnabled, criteriaPaidAssessmentDuration)
	assignBool(&catalog.free.RetakesEnabled, criteriaFreeAssessmentRetakes)
	assignBool(&catalog.paid.RetakesEnabled, criteriaPaidAssessmentRetakes)
	assign(&catalog.free.DurationLimit, criteriaFreeDurationLimit)
	assign(&catalog.paid.DurationLimit, criteriaPaidDurationLimit)

	if firstErr != nil {
		return nil, firstErr
	}

	log.Info().Msg("Entitlement catalogue loaded")
	return &catalog, nil
}

// EntitlementService resolves a platform's tier and exposes the tier's
// limits. Authoring operations and the session start gate consult it before
// writing anything.
type EntitlementService interface {
	ResolveTier(platformID uint) (Tier, error)
	LimitsFor(platformID uint) (Limits, error)
}

type entitlementService struct {
	platformRepo repository.PlatformRepository
	catalog      *Catalog
	clock        Clock
}

func NewEntitlementService(platformRepo repository.PlatformRepository, catalog *Catalog, clock Clock) EntitlementService {
	return &entitlementService{platformRepo: platformRepo, catalog: catalog, clock: clock}
}

// ResolveTier returns Paid iff the platform's pro flag is set and the pro
// expiry is either unset or strictly in the future.
func (s *entitlementService) ResolveTier(platformID uint) (Tier, error) {
	platform, err := s.platformRepo.FindByID(platformID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", apperr.NotFound("Platform not found")
	}
	if err != nil {
		return "", err
	}

	if platform.Pro && (platform.ProExpiring == nil || platform.ProExpiring.After(s.clock.Now())) {
		return TierPaid, nil
	}
	return TierFree, nil
}

func (s *entitlementService) LimitsFor(platformID uint) (Limits, error) {
	tier, err := s.ResolveTier(platformID)
	if err != nil {
		return Limits{}, err
	}
	return s.catalog.Limits(tier), nil
}
