package repository

import (
	"github.com/quizzyhq/quizzy-core/internal/model"
	"github.com/quizzyhq/quizzy-core/internal/ordering"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(question *model.Question) error
	FindByID(id uint) (*model.Question, error)
	FindByAssessmentAndID(assessmentID, id uint) (*model.Question, error)
	FindByOrder(assessmentID uint, order int) (*model.Question, error)
	FindAllByAssessment(assessmentID uint) ([]model.Question, error)
	CountByAssessment(assessmentID uint) (int64, error)
	Update(question *model.Question) error
	ApplyReorder(assessmentID uint, plan ordering.Plan) error
	Delete(assessmentID, id uint) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(question *model.Question) error {
	return r.db.Create(question).Error
}

func (r *questionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindByAssessmentAndID(assessmentID, id uint) (*model.Question, error) {
	var question model.Question
	err := r.db.Where("assessment_id = ?", assessmentID).First(&question, id).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindByOrder(assessmentID uint, order int) (*model.Question, error) {
	var question model.Question
	err := r.db.Where("assessment_id = ? AND order_index = ?", assessmentID, order).First(&question).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindAllByAssessment(assessmentID uint) ([]model.Question, error) {
	var questions []model.Question
	err := r.db.Where("assessment_id = ?", assessmentID).Order("order_index ASC").Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) CountByAssessment(assessmentID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Question{}).Where("assessment_id = ?", assessmentID).Count(&count).Error
	return count, err
}

func (r *questionRepository) Update(question *model.Question) error {
	return r.db.Save(question).Error
}

func (r *questionRepository) ApplyReorder(assessmentID uint, plan ordering.Plan) error {
	return applyReorder(r.db, &model.Question{}, "assessment_id", assessmentID, plan)
}

func (r *questionRepository) Delete(assessmentID, id uint) error {
	return r.db.Where("assessment_id = ?", assessmentID).Delete(&model.Question{}, id).Error
}
