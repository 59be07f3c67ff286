package entities

import (
	"time"

	"gorm.io/gorm"
)

// Crop grown by a registrant. Name is a free-form commodity name
// ("Rice", "Corn", "Coconut", ...); CornType applies to corn only.
type Crop struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	RegistrantID uint           `gorm:"index" json:"registrant_id"`
	Name         string         `json:"name"`
	CornType     string         `json:"corn_type,omitempty"` // yellow|white
	Value        string         `json:"value,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// Livestock entry. HeadCount below 1 is treated as 1 when aggregating.
type Livestock struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	RegistrantID uint           `gorm:"index" json:"registrant_id"`
	Animal       string         `json:"animal"`
	HeadCount    int            `json:"head_count"`
	CreatedAt    time.Time      `json:"created_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// Poultry entry, same head-count rule as Livestock.
type Poultry struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	RegistrantID uint           `gorm:"index" json:"registrant_id"`
	Bird         string         `json:"bird"`
	HeadCount    int            `json:"head_count"`
	CreatedAt    time.Time      `json:"created_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}
