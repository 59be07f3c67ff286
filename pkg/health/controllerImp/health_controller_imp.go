package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"agritech/entities"
)

var appStart = time.Now()

type HealthCtrl struct {
	db *gorm.DB
}

func New(db *gorm.DB) *HealthCtrl { return &HealthCtrl{db: db} }

// Health pings the database and reports the registry size, so monitoring
// can spot a silently emptied database as well as a dead one.
func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	dbOK := true
	dbErr := ""
	var registrants int64
	if h.db == nil {
		dbOK = false
		dbErr = "gorm db is nil"
	} else if sqlDB, err := h.db.DB(); err != nil {
		dbOK = false
		dbErr = "db.DB(): " + err.Error()
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbOK = false
		dbErr = "ping: " + err.Error()
	} else if err := h.db.WithContext(ctx).Model(&entities.Registrant{}).Count(&registrants).Error; err != nil {
		dbOK = false
		dbErr = "count: " + err.Error()
	}

	status := http.StatusOK
	if !dbOK {
		status = http.StatusServiceUnavailable
	}

	type sub struct {
		OK  bool   `json:"ok"`
		Err string `json:"err,omitempty"`
	}
	return c.JSON(status, map[string]any{
		"status":      map[string]any{"ok": dbOK},
		"uptime_sec":  int(time.Since(appStart).Seconds()),
		"registrants": registrants,
		"checks": map[string]any{
			"database": sub{OK: dbOK, Err: dbErr},
		},
		"time": time.Now().Format(time.RFC3339),
	})
}
