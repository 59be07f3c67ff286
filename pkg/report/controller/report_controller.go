package controller

import "github.com/labstack/echo/v4"

type ReportController interface {
	GeneratePDF(c echo.Context) error
	ExportCSV(c echo.Context) error
	ExportXLSX(c echo.Context) error
}
