package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"agritech/entities"
	"agritech/pkg/registrant/service"
)

type RegistrantCtrl struct{ svc service.RegistrantService }

func New(svc service.RegistrantService) *RegistrantCtrl { return &RegistrantCtrl{svc} }

type addressReq struct {
	Purok        string `json:"purok"`
	Barangay     string `json:"barangay"`
	Municipality string `json:"municipality"`
	Province     string `json:"province"`
	Region       string `json:"region"`
}

type cropReq struct {
	Name     string `json:"name"`
	CornType string `json:"corn_type"`
	Value    string `json:"value"`
}

type headReq struct {
	Name      string `json:"name"`
	HeadCount int    `json:"head_count"`
}

type parcelReq struct {
	TotalFarmAreaHa *float64 `json:"total_farm_area_ha"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
	OwnershipType   string   `json:"ownership_type"`
	TenantName      string   `json:"tenant_name"`
}

type financialReq struct {
	SourceOfIncome string   `json:"source_of_income"`
	GrossIncome    *float64 `json:"gross_income"`
}

type upsertReq struct {
	ReferenceNo string `json:"reference_no"`
	Registry    string `json:"registry"`
	Surname     string `json:"surname"`
	FirstName   string `json:"first_name"`
	MiddleName  string `json:"middle_name"`
	Sex         string `json:"sex"`
	BirthDate   string `json:"birth_date"` // YYYY-MM-DD, optional
	CivilStatus string `json:"civil_status"`
	ContactNo   string `json:"contact_no"`

	Addresses      []addressReq   `json:"addresses"`
	Crops          []cropReq      `json:"crops"`
	Livestock      []headReq      `json:"livestock"`
	Poultry        []headReq      `json:"poultry"`
	FarmParcels    []parcelReq    `json:"farm_parcels"`
	FinancialInfos []financialReq `json:"financial_infos"`
}

func (req upsertReq) toEntity() *entities.Registrant {
	r := &entities.Registrant{
		ReferenceNo: req.ReferenceNo,
		Registry:    req.Registry,
		Surname:     req.Surname,
		FirstName:   req.FirstName,
		MiddleName:  req.MiddleName,
		Sex:         req.Sex,
		CivilStatus: req.CivilStatus,
		ContactNo:   req.ContactNo,
	}
	if req.BirthDate != "" {
		if bd, err := time.Parse("2006-01-02", req.BirthDate); err == nil {
			r.BirthDate = &bd
		}
	}
	for _, a := range req.Addresses {
		r.Addresses = append(r.Addresses, entities.Address{
			Purok: a.Purok, Barangay: a.Barangay,
			Municipality: a.Municipality, Province: a.Province, Region: a.Region,
		})
	}
	for _, cr := range req.Crops {
		r.Crops = append(r.Crops, entities.Crop{Name: cr.Name, CornType: cr.CornType, Value: cr.Value})
	}
	for _, l := range req.Livestock {
		r.Livestock = append(r.Livestock, entities.Livestock{Animal: l.Name, HeadCount: l.HeadCount})
	}
	for _, p := range req.Poultry {
		r.Poultry = append(r.Poultry, entities.Poultry{Bird: p.Name, HeadCount: p.HeadCount})
	}
	for _, fp := range req.FarmParcels {
		r.FarmParcels = append(r.FarmParcels, entities.FarmParcel{
			TotalFarmAreaHa: fp.TotalFarmAreaHa,
			Latitude:        fp.Latitude, Longitude: fp.Longitude,
			OwnershipType: fp.OwnershipType, TenantName: fp.TenantName,
		})
	}
	for _, fi := range req.FinancialInfos {
		r.FinancialInfos = append(r.FinancialInfos, entities.FinancialInfo{
			SourceOfIncome: fi.SourceOfIncome, GrossIncome: fi.GrossIncome,
		})
	}
	return r
}

func actor(c echo.Context) service.Actor {
	name, _ := c.Get("user_name").(string)
	if name == "" {
		name = "system"
	}
	return service.Actor{Name: name, IP: c.RealIP()}
}

func paramID(c echo.Context) (uint, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}

func (h *RegistrantCtrl) List(c echo.Context) error {
	rs, err := h.svc.List()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rs)
}

func (h *RegistrantCtrl) Get(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	r, err := h.svc.Get(id)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "registrant not found"})
	}
	return c.JSON(http.StatusOK, r)
}

func (h *RegistrantCtrl) Create(c echo.Context) error {
	var req upsertReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	r, err := h.svc.Create(req.toEntity(), actor(c))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, r)
}

func (h *RegistrantCtrl) Update(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var req upsertReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	r, err := h.svc.Update(id, req.toEntity(), actor(c))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, r)
}

func (h *RegistrantCtrl) Archive(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err := h.svc.Archive(id, actor(c)); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "registrant not found"})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "archived"})
}

func (h *RegistrantCtrl) Restore(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err := h.svc.Restore(id, actor(c)); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "restored"})
}

func (h *RegistrantCtrl) Purge(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err := h.svc.Purge(id, actor(c)); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *RegistrantCtrl) Deleted(c echo.Context) error {
	rs, err := h.svc.Deleted()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rs)
}
