package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"agritech/pkg/dashboard/service"
)

type DashboardCtrl struct{ svc service.DashboardService }

func New(svc service.DashboardService) *DashboardCtrl { return &DashboardCtrl{svc} }

// Get serves GET /dashboard?year=YYYY. Year defaults to the current one;
// a malformed value is treated the same way rather than erroring.
func (h *DashboardCtrl) Get(c echo.Context) error {
	year := time.Now().Year()
	if q := c.QueryParam("year"); q != "" {
		if y, err := strconv.Atoi(q); err == nil && y > 1900 {
			year = y
		}
	}
	p, err := h.svc.Build(year)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, p)
}
