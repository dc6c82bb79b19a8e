package repository

import (
	"github.com/quizzyhq/quizzy-core/internal/model"
	"gorm.io/gorm"
)

type PlatformRepository interface {
	FindByID(id uint) (*model.Platform, error)
}

type platformRepository struct {
	db *gorm.DB
}

func NewPlatformRepository(db *gorm.DB) PlatformRepository {
	return &platformRepository{db: db}
}

func (r *platformRepository) FindByID(id uint) (*model.Platform, error) {
	var platform model.Platform
	if err := r.db.First(&platform, id).Error; err != nil {
		return nil, err
	}
	return &platform, nil
}
