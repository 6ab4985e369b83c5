package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// HealthHandler reports service liveness and database reachability
type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) HealthCheck(c echo.Context) error {
	status, database := "healthy", "up"
	code := http.StatusOK
	if sqlDB, err := h.db.DB(); err != nil || sqlDB.PingContext(c.Request().Context()) != nil {
		status, database = "degraded", "down"
		code = http.StatusServiceUnavailable
	}
	return c.JSON(code, map[string]string{
		"status":   status,
		"service":  "portfolio-api",
		"database": database,
	})
}
