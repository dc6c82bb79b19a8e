package model

import (
	"time"

	"gorm.io/gorm"
)

// Platform is the tenant that authors assessments. Account CRUD and
// authentication live in external services; this core only reads the
// subscription fields to resolve the entitlement tier.
type Platform struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Name        string         `json:"name" gorm:"size:100;not null;uniqueIndex"`
	Email       string         `json:"email,omitempty" gorm:"size:100"`
	Pro         bool           `json:"pro" gorm:"not null;default:false"`
	ProExpiring *time.Time     `json:"pro_expiring,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
