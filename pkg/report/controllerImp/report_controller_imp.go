package controllerImp

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"agritech/pkg/registrant/repository"
	"agritech/pkg/report"
	"agritech/pkg/report/pdf"
)

type ReportCtrl struct {
	repo     repository.RegistrantRepository
	builder  *report.Builder
	renderer *pdf.Renderer
}

func New(repo repository.RegistrantRepository, builder *report.Builder, renderer *pdf.Renderer) *ReportCtrl {
	return &ReportCtrl{repo: repo, builder: builder, renderer: renderer}
}

// categoryReq is the filter shape the frontend still sends. It collapses to
// the tagged CategoryFilter; enabled=false wins over everything else.
type categoryReq struct {
	Enabled  bool     `json:"enabled"`
	All      bool     `json:"all"`
	Selected []string `json:"selected"`
}

func (cr categoryReq) toFilter() report.CategoryFilter {
	switch {
	case !cr.Enabled:
		return report.Disabled()
	case cr.All:
		return report.All()
	default:
		return report.Subset(cr.Selected...)
	}
}

type pdfReq struct {
	ReportType   string          `json:"reportType"`
	RegistryType string          `json:"registryType"`
	Crops        categoryReq     `json:"crops"`
	Livestock    categoryReq     `json:"livestock"`
	Poultry      categoryReq     `json:"poultry"`
	RequestText  string          `json:"requestText"`
	Signers      []report.Signer `json:"signatories"`
	Preview      bool            `json:"preview"`
}

func (h *ReportCtrl) GeneratePDF(c echo.Context) error {
	var req pdfReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.ReportType != report.TypeSummary {
		req.ReportType = report.TypeDetail
	}
	if req.RegistryType == "" {
		req.RegistryType = report.RegistryAll
	}

	rs, err := h.repo.ListActive()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	cfg := report.Config{
		ReportType:   req.ReportType,
		RegistryType: req.RegistryType,
		Crops:        req.Crops.toFilter(),
		Livestock:    req.Livestock.toFilter(),
		Poultry:      req.Poultry.toFilter(),
		RequestText:  req.RequestText,
		Signers:      req.Signers,
	}
	doc := h.builder.Build(rs, cfg)

	data, filename, err := h.renderer.Output(doc)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	disposition := "attachment"
	if req.Preview {
		disposition = "inline"
	}
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`%s; filename="%s"`, disposition, filename))
	return c.Blob(http.StatusOK, "application/pdf", data)
}

func csvOptions(c echo.Context) report.CSVOptions {
	opt := report.CSVOptions{
		Registry: c.QueryParam("registry"),
		Crop:     c.QueryParam("crop"),
	}
	if cols := c.QueryParam("columns"); cols != "" {
		opt.Columns = strings.Split(cols, ",")
	}
	return opt
}

func (h *ReportCtrl) ExportCSV(c echo.Context) error {
	rs, err := h.repo.ListActive()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	var buf bytes.Buffer
	if err := report.WriteCSV(&buf, rs, csvOptions(c)); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	filename := fmt.Sprintf("AgriTech_Registrants_Export_%s.csv", time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func (h *ReportCtrl) ExportXLSX(c echo.Context) error {
	rs, err := h.repo.ListActive()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	f, err := report.WriteXLSX(rs, csvOptions(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	defer f.Close()

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s"`, report.XLSXFilename(time.Now().Format("2006-01-02"))))
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
