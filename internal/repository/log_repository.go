package repository

import (
	"time"

	"github.com/quizzyhq/quizzy-core/internal/model"
	"gorm.io/gorm"
)

type LogRepository interface {
	Create(log *model.AssessmentLog) error
	FindByUserAndReference(userID uint, reference string) (*model.AssessmentLog, error)
	FindAllByUser(userID uint) ([]model.AssessmentLog, error)
	CountByAssessmentAndUser(assessmentID, userID uint) (int64, error)
	CountDistinctOtherCandidates(assessmentID, excludeUserID uint) (int64, error)
	Complete(id uint, endTime time.Time) (bool, error)
}

type logRepository struct {
	db *gorm.DB
}

func NewLogRepository(db *gorm.DB) LogRepository {
	return &logRepository{db: db}
}

func (r *logRepository) Create(log *model.AssessmentLog) error {
	return r.db.Create(log).Error
}

func (r *logRepository) FindByUserAndReference(userID uint, reference string) (*model.AssessmentLog, error) {
	var log model.AssessmentLog
	err := r.db.Preload("Assessment").
		Where("user_id = ? AND reference = ?", userID, reference).
		First(&log).Error
	if err != nil {
		return nil, err
	}
	return &log, nil
}

func (r *logRepository) FindAllByUser(userID uint) ([]model.AssessmentLog, error) {
	var logs []model.AssessmentLog
	err := r.db.Preload("Assessment").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *logRepository) CountByAssessmentAndUser(assessmentID, userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.AssessmentLog{}).
		Where("assessment_id = ? AND user_id = ?", assessmentID, userID).
		Count(&count).Error
	return count, err
}

// CountDistinctOtherCandidates counts how many candidates other than
// excludeUserID hold at least one log for the assessment. The candidate limit
// gate compares against this, so a returning candidate never blocks themselves.
func (r *logRepository) CountDistinctOtherCandidates(assessmentID, excludeUserID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.AssessmentLog{}).
		Distinct("user_id").
		Where("assessment_id = ? AND user_id <> ?", assessmentID, excludeUserID).
		Count(&count).Error
	return count, err
}

// Complete sets the end time only when the session is still open. The
// conditional write makes closing idempotence-safe under concurrent calls:
// exactly one caller observes true.
func (r *logRepository) Complete(id uint, endTime time.Time) (bool, error) {
	res := r.db.Model(&model.AssessmentLog{}).
		Where("id = ? AND end_time IS NULL", id).
		Update("end_time", endTime)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
