package repository

import (
	"github.com/quizzyhq/quizzy-core/internal/model"
	"gorm.io/gorm"
)

type AssessmentRepository interface {
	Create(assessment *model.Assessment) error
	FindByID(id uint) (*model.Assessment, error)
	FindByPlatformAndID(platformID, id uint) (*model.Assessment, error)
	FindByIdentifier(identifier string) (*model.Assessment, error)
	FindByIdentifierWithQuestions(identifier string) (*model.Assessment, error)
	FindAllByPlatform(platformID uint) ([]model.Assessment, error)
	CountByPlatform(platformID uint) (int64, error)
	ExistsByStripped(platformID uint, stripped string, excludeID uint) (bool, error)
	Update(assessment *model.Assessment) error
	Delete(platformID, id uint) error
	HardDelete(platformID, id uint) error
}

type assessmentRepository struct {
	db *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) AssessmentRepository {
	return &assessmentRepository{db: db}
}

func (r *assessmentRepository) Create(assessment *model.Assessment) error {
	return r.db.Create(assessment).Error
}

func (r *assessmentRepository) FindByID(id uint) (*model.Assessment, error) {
	var assessment model.Assessment
	if err := r.db.First(&assessment, id).Error; err != nil {
		return nil, err
	}
	return &assessment, nil
}

func (r *assessmentRepository) FindByPlatformAndID(platformID, id uint) (*model.Assessment, error) {
	var assessment model.Assessment
	err := r.db.Where("platform_id = ?", platformID).First(&assessment, id).Error
	if err != nil {
		return nil, err
	}
	return &assessment, nil
}

func (r *assessmentRepository) FindByIdentifier(identifier string) (*model.Assessment, error) {
	var assessment model.Assessment
	err := r.db.Where("identifier = ?", identifier).First(&assessment).Error
	if err != nil {
		return nil, err
	}
	return &assessment, nil
}

func (r *assessmentRepository) FindByIdentifierWithQuestions(identifier string) (*model.Assessment, error) {
	var assessment model.Assessment
	err := r.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.order_index ASC")
		}).
		Preload("Questions.Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("answers.order_index ASC")
		}).
		Where("identifier = ?", identifier).
		First(&assessment).Error
	if err != nil {
		return nil, err
	}
	return &assessment, nil
}

func (r *assessmentRepository) FindAllByPlatform(platformID uint) ([]model.Assessment, error) {
	var assessments []model.Assessment
	err := r.db.Where("platform_id = ?", platformID).Order("created_at DESC").Find(&assessments).Error
	if err != nil {
		return nil, err
	}
	return assessments, nil
}

func (r *assessmentRepository) CountByPlatform(platformID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Assessment{}).Where("platform_id = ?", platformID).Count(&count).Error
	return count, err
}

func (r *assessmentRepository) ExistsByStripped(platformID uint, stripped string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.Model(&model.Assessment{}).
		Where("platform_id = ? AND stripped = ?", platformID, stripped)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *assessmentRepository) Update(assessment *model.Assessment) error {
	return r.db.Save(assessment).Error
}

func (r *assessmentRepository) Delete(platformID, id uint) error {
	return r.db.Where("platform_id = ?", platformID).Delete(&model.Assessment{}, id).Error
}

// HardDelete removes the assessment and everything beneath it: questions,
// answers, candidate logs and recorded answers. Soft deletes never cascade;
// this is the one explicit, irreversible removal path.
func (r *assessmentRepository) HardDelete(platformID, id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var assessment model.Assessment
		if err := tx.Unscoped().Where("platform_id = ?", platformID).First(&assessment, id).Error; err != nil {
			return err
		}

		if err := tx.Unscoped().Where("assessment_id = ?", id).Delete(&model.UserAnswer{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("assessment_id = ?", id).Delete(&model.AssessmentLog{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().
			Where("question_id IN (?)", tx.Model(&model.Question{}).Unscoped().Select("id").Where("assessment_id = ?", id)).
			Delete(&model.Answer{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("assessment_id = ?", id).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&model.Assessment{}, id).Error
	})
}
