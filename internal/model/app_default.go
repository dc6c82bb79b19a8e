package model

import "time"

// AppDefault is one row of the entitlement catalogue: a tier-qualified
// criterion name with a declared value type and a raw string value. The rows
// are seeded at startup and read-only afterwards.
type AppDefault struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Criteria  string    `json:"criteria" gorm:"size:50;not null;uniqueIndex"`
	DataType  string    `json:"data_type" gorm:"size:10;not null"` // STRING, INTEGER, BIGINT, BOOLEAN
	Value     string    `json:"value" gorm:"size:50;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
