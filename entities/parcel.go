package entities

import "time"

// FarmParcel is one physically distinct piece of land. A parcel with both
// coordinates set is "located" and shows up on the pin map.
type FarmParcel struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	RegistrantID    uint      `gorm:"index" json:"registrant_id"`
	TotalFarmAreaHa *float64  `json:"total_farm_area_ha"`
	Latitude        *float64  `json:"latitude"`
	Longitude       *float64  `json:"longitude"`
	OwnershipType   string    `json:"ownership_type"` // owner|tenant|lessee
	TenantName      string    `json:"tenant_name,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// Located reports whether the parcel carries a usable coordinate pair.
func (p FarmParcel) Located() bool { return p.Latitude != nil && p.Longitude != nil }

// ParcelInfo carries the irrigation classification of a parcel. FarmKind is
// free text expected to contain "irrigated" or "rainfed".
type ParcelInfo struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	ParcelID uint   `gorm:"index" json:"parcel_id"`
	FarmKind string `json:"farm_kind"`
	Organic  bool   `json:"organic"`
	Remarks  string `json:"remarks,omitempty"`
}
