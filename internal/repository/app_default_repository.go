package repository

import (
	"github.com/quizzyhq/quizzy-core/internal/model"
	"gorm.io/gorm"
)

type AppDefaultRepository interface {
	FindAll() ([]model.AppDefault, error)
	Seed(defaults []model.AppDefault) error
}

type appDefaultRepository struct {
	db *gorm.DB
}

func NewAppDefaultRepository(db *gorm.DB) AppDefaultRepository {
	return &appDefaultRepository{db: db}
}

func (r *appDefaultRepository) FindAll() ([]model.AppDefault, error) {
	var defaults []model.AppDefault
	if err := r.db.Find(&defaults).Error; err != nil {
		return nil, err
	}
	return defaults, nil
}

// Seed inserts any catalogue row that does not exist yet. Existing rows are
// left untouched so operator overrides survive restarts.
func (r *appDefaultRepository) Seed(defaults []model.AppDefault) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, d := range defaults {
			if err := tx.Where(model.AppDefault{Criteria: d.Criteria}).
				Attrs(model.AppDefault{DataType: d.DataType, Value: d.Value}).
				FirstOrCreate(&model.AppDefault{}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
