package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"agritech/pkg/registrant/repository"
	"agritech/pkg/report"
)

// Marker is one pin on the farm map. Only parcels carrying both
// coordinates are emitted.
type Marker struct {
	ParcelID uint     `json:"parcel_id"`
	Owner    string   `json:"owner"`
	Registry string   `json:"registry"`
	Barangay string   `json:"barangay"`
	Purok    string   `json:"purok"`
	Lat      float64  `json:"lat"`
	Lng      float64  `json:"lng"`
	AreaHa   *float64 `json:"area_ha,omitempty"`
	Crops    []string `json:"crops,omitempty"`
}

type MapCtrl struct{ repo repository.RegistrantRepository }

func New(repo repository.RegistrantRepository) *MapCtrl { return &MapCtrl{repo} }

func (h *MapCtrl) Markers(c echo.Context) error {
	rs, err := h.repo.ListActive()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	markers := []Marker{}
	for i := range rs {
		r := &rs[i]
		barangay, purok := "", ""
		if len(r.Addresses) > 0 {
			barangay, purok = r.Addresses[0].Barangay, r.Addresses[0].Purok
		}
		var crops []string
		for _, cr := range r.Crops {
			if !cr.DeletedAt.Valid && cr.Name != "" {
				crops = append(crops, cr.Name)
			}
		}
		for _, p := range r.FarmParcels {
			if !p.Located() {
				continue
			}
			markers = append(markers, Marker{
				ParcelID: p.ID,
				Owner:    report.FormatName(r.Surname, r.FirstName, r.MiddleName),
				Registry: r.Registry,
				Barangay: barangay,
				Purok:    purok,
				Lat:      *p.Latitude,
				Lng:      *p.Longitude,
				AreaHa:   p.TotalFarmAreaHa,
				Crops:    crops,
			})
		}
	}
	return c.JSON(http.StatusOK, markers)
}
