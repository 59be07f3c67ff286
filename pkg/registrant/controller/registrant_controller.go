package controller

import "github.com/labstack/echo/v4"

type RegistrantController interface {
	List(c echo.Context) error
	Get(c echo.Context) error
	Create(c echo.Context) error
	Update(c echo.Context) error
	Archive(c echo.Context) error
	Restore(c echo.Context) error
	Purge(c echo.Context) error
	Deleted(c echo.Context) error
}
