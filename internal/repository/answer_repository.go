package repository

import (
	"errors"

	"github.com/quizzyhq/quizzy-core/internal/model"
	"github.com/quizzyhq/quizzy-core/internal/ordering"
	"gorm.io/gorm"
)

type AnswerRepository interface {
	Create(answer *model.Answer) error
	FindByQuestionAndID(questionID, id uint) (*model.Answer, error)
	FindByOrder(questionID uint, order int) (*model.Answer, error)
	FindCorrect(questionID uint) (*model.Answer, error)
	FindAllByQuestion(questionID uint) ([]model.Answer, error)
	CountByQuestion(questionID uint) (int64, error)
	Update(answer *model.Answer) error
	ApplyReorder(questionID uint, plan ordering.Plan) error
	Delete(questionID, id uint) error
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) Create(answer *model.Answer) error {
	return r.db.Create(answer).Error
}

func (r *answerRepository) FindByQuestionAndID(questionID, id uint) (*model.Answer, error) {
	var answer model.Answer
	err := r.db.Where("question_id = ?", questionID).First(&answer, id).Error
	if err != nil {
		return nil, err
	}
	return &answer, nil
}

func (r *answerRepository) FindByOrder(questionID uint, order int) (*model.Answer, error) {
	var answer model.Answer
	err := r.db.Where("question_id = ? AND order_index = ?", questionID, order).First(&answer).Error
	if err != nil {
		return nil, err
	}
	return &answer, nil
}

// FindCorrect returns the option currently marked correct under the question,
// or nil without error when there is none.
func (r *answerRepository) FindCorrect(questionID uint) (*model.Answer, error) {
	var answer model.Answer
	err := r.db.Where("question_id = ? AND correct = ?", questionID, true).First(&answer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &answer, nil
}

func (r *answerRepository) FindAllByQuestion(questionID uint) ([]model.Answer, error) {
	var answers []model.Answer
	err := r.db.Where("question_id = ?", questionID).Order("order_index ASC").Find(&answers).Error
	if err != nil {
		return nil, err
	}
	return answers, nil
}

func (r *answerRepository) CountByQuestion(questionID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Answer{}).Where("question_id = ?", questionID).Count(&count).Error
	return count, err
}

func (r *answerRepository) Update(answer *model.Answer) error {
	return r.db.Save(answer).Error
}

func (r *answerRepository) ApplyReorder(questionID uint, plan ordering.Plan) error {
	return applyReorder(r.db, &model.Answer{}, "question_id", questionID, plan)
}

func (r *answerRepository) Delete(questionID, id uint) error {
	return r.db.Where("question_id = ?", questionID).Delete(&model.Answer{}, id).Error
}
