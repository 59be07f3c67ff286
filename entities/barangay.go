package entities

import "time"

// Barangay reference row, seeded from the PSGC directory ingest. Used to
// populate address dropdowns; aggregations key on the free-text address
// barangay, not on this table.
type Barangay struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:128" json:"name"`
	PSGCCode  string    `gorm:"column:psgc_code;size:16" json:"psgc_code"`
	District  string    `json:"district"`
	CreatedAt time.Time `json:"created_at"`
}
