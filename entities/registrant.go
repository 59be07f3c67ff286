package entities

import (
	"time"

	"gorm.io/gorm"
)

// Registry classifications accepted by the office.
const (
	RegistryFarmer     = "farmer"
	RegistryFisherfolk = "fisherfolk"
	RegistryAgriYouth  = "agri_youth"
	RegistryFarmWorker = "farm_worker"
)

// Registrant is one enrolled farmer/fisherfolk. Child collections are
// preloaded by the repository; aggregations treat them as an immutable
// snapshot and never write back.
type Registrant struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	ReferenceNo string     `gorm:"uniqueIndex;size:32" json:"reference_no"` // RSBSA number
	Registry    string     `gorm:"index" json:"registry"`                   // farmer|fisherfolk|agri_youth|farm_worker
	Surname     string     `json:"surname"`
	FirstName   string     `json:"first_name"`
	MiddleName  string     `json:"middle_name"`
	Sex         string     `json:"sex"`
	BirthDate   *time.Time `json:"birth_date"`
	CivilStatus string     `json:"civil_status"`
	ContactNo   string     `json:"contact_no"`

	Addresses      []Address       `gorm:"foreignKey:RegistrantID" json:"addresses,omitempty"`
	Crops          []Crop          `gorm:"foreignKey:RegistrantID" json:"crops,omitempty"`
	Livestock      []Livestock     `gorm:"foreignKey:RegistrantID" json:"livestock,omitempty"`
	Poultry        []Poultry       `gorm:"foreignKey:RegistrantID" json:"poultry,omitempty"`
	FarmParcels    []FarmParcel    `gorm:"foreignKey:RegistrantID" json:"farm_parcels,omitempty"`
	FinancialInfos []FinancialInfo `gorm:"foreignKey:RegistrantID" json:"financial_infos,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// Address of a registrant. The first row is treated as canonical.
type Address struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	RegistrantID uint   `gorm:"index" json:"registrant_id"`
	Purok        string `json:"purok"`
	Barangay     string `gorm:"index" json:"barangay"`
	Municipality string `json:"municipality"`
	Province     string `json:"province"`
	Region       string `json:"region"`
}

type FinancialInfo struct {
	ID             uint     `gorm:"primaryKey" json:"id"`
	RegistrantID   uint     `gorm:"index" json:"registrant_id"`
	SourceOfIncome string   `json:"source_of_income"`
	GrossIncome    *float64 `json:"gross_income"`
}
