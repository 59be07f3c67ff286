package controllerImp

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"agritech/pkg/history/repository"
)

type HistoryCtrl struct{ repo repository.HistoryRepository }

func New(repo repository.HistoryRepository) *HistoryCtrl { return &HistoryCtrl{repo} }

// List serves GET /history?search=&page=&per_page= with newest-first
// pagination.
func (h *HistoryCtrl) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	perPage, _ := strconv.Atoi(c.QueryParam("per_page"))

	logs, total, err := h.repo.List(c.QueryParam("search"), page, perPage)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"logs":  logs,
		"total": total,
	})
}

// ExportCSV dumps the complete activity trail, uppercased like the
// registrant export.
func (h *HistoryCtrl) ExportCSV(c echo.Context) error {
	logs, err := h.repo.All()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	if err := cw.Write([]string{"DATE", "USER", "ACTION", "TARGET", "IP ADDRESS"}); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	for _, l := range logs {
		row := []string{
			l.CreatedAt.Format("1/2/2006"),
			strings.ToUpper(l.UserName),
			strings.ToUpper(l.Action),
			strings.ToUpper(l.Target),
			l.IPAddress,
		}
		if err := cw.Write(row); err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="AgriTech_Activity_Log.csv"`)
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
