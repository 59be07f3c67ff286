package router

import (
	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"

	authctrl "agritech/pkg/auth/controller"
	authImp "agritech/pkg/auth/controllerImp"
	dashImp "agritech/pkg/dashboard/controllerImp"
	healthImp "agritech/pkg/health/controllerImp"
	histImp "agritech/pkg/history/controllerImp"
	mapImp "agritech/pkg/mapdata/controllerImp"
	"agritech/pkg/middleware"
	refImp "agritech/pkg/refdata/controllerImp"
	regctrl "agritech/pkg/registrant/controller"
	repctrl "agritech/pkg/report/controller"
)

type Controllers struct {
	Auth       authctrl.AuthController
	Registrant regctrl.RegistrantController
	Dashboard  *dashImp.DashboardCtrl
	Report     repctrl.ReportController
	Map        *mapImp.MapCtrl
	History    *histImp.HistoryCtrl
	Refdata    *refImp.RefdataCtrl
	Health     *healthImp.HealthCtrl
}

// New mounts every route. Everything except login and the health probe
// sits behind the session check.
func New(e *echo.Echo, store sessions.Store, ctrl Controllers) *echo.Echo {
	e.GET("/health", ctrl.Health.Health)
	e.POST("/auth/login", ctrl.Auth.Login)

	api := e.Group("", middleware.RequireSession(store, authImp.SessionName))

	api.POST("/auth/logout", ctrl.Auth.Logout)
	api.GET("/whoami", ctrl.Auth.WhoAmI)

	api.GET("/registrants", ctrl.Registrant.List)
	api.POST("/registrants", ctrl.Registrant.Create)
	api.GET("/registrants/deleted", ctrl.Registrant.Deleted)
	api.GET("/registrants/:id", ctrl.Registrant.Get)
	api.PUT("/registrants/:id", ctrl.Registrant.Update)
	api.DELETE("/registrants/:id", ctrl.Registrant.Archive)
	api.POST("/registrants/:id/restore", ctrl.Registrant.Restore)
	api.DELETE("/registrants/:id/purge", ctrl.Registrant.Purge)

	api.GET("/dashboard", ctrl.Dashboard.Get)
	api.GET("/map/markers", ctrl.Map.Markers)

	api.POST("/reports/pdf", ctrl.Report.GeneratePDF)
	api.GET("/reports/export.csv", ctrl.Report.ExportCSV)
	api.GET("/reports/export.xlsx", ctrl.Report.ExportXLSX)

	api.GET("/history", ctrl.History.List)
	api.GET("/history/export.csv", ctrl.History.ExportCSV)

	api.GET("/refdata/barangays", ctrl.Refdata.List)
	api.POST("/refdata/barangays/ingest", ctrl.Refdata.IngestURL)

	return e
}
