package repository

import (
	"github.com/quizzyhq/quizzy-core/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserAnswerRepository interface {
	Create(userAnswer *model.UserAnswer) error
	FindAllByLogAndQuestion(logID, questionID uint) ([]model.UserAnswer, error)
	FindAllByLog(logID uint) ([]model.UserAnswer, error)
	ReplaceForQuestion(logID, questionID uint, userAnswer *model.UserAnswer) error
}

type userAnswerRepository struct {
	db *gorm.DB
}

func NewUserAnswerRepository(db *gorm.DB) UserAnswerRepository {
	return &userAnswerRepository{db: db}
}

func (r *userAnswerRepository) Create(userAnswer *model.UserAnswer) error {
	return r.db.Create(userAnswer).Error
}

func (r *userAnswerRepository) FindAllByLogAndQuestion(logID, questionID uint) ([]model.UserAnswer, error) {
	var answers []model.UserAnswer
	err := r.db.Where("log_id = ? AND question_id = ?", logID, questionID).Find(&answers).Error
	if err != nil {
		return nil, err
	}
	return answers, nil
}

func (r *userAnswerRepository) FindAllByLog(logID uint) ([]model.UserAnswer, error) {
	var answers []model.UserAnswer
	err := r.db.Preload("Question").Preload("Answer").
		Where("log_id = ?", logID).
		Order("created_at ASC").
		Find(&answers).Error
	if err != nil {
		return nil, err
	}
	return answers, nil
}

// ReplaceForQuestion records a new selection for a single-answer question by
// deleting whatever rows exist for (log, question) and inserting the new one,
// all inside one transaction with the existing rows locked. This enforces the
// at-most-one-row invariant even if historical data held duplicates, instead
// of updating a single arbitrary row in place.
func (r *userAnswerRepository) ReplaceForQuestion(logID, questionID uint, userAnswer *model.UserAnswer) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing []model.UserAnswer
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("log_id = ? AND question_id = ?", logID, questionID).
			Find(&existing).Error; err != nil {
			return err
		}
		if len(existing) > 0 {
			if err := tx.Where("log_id = ? AND question_id = ?", logID, questionID).
				Delete(&model.UserAnswer{}).Error; err != nil {
				return err
			}
		}
		return tx.Create(userAnswer).Error
	})
}
