package handlers

import (
	"net/http"

	"github.com/anonto42/portfolio/backend/internal/middleware"
	"github.com/anonto42/portfolio/backend/internal/models"
	"github.com/anonto42/portfolio/backend/internal/repositories"
	"github.com/jinzhu/copier"
	"github.com/labstack/echo/v4"
)

// SettingsHandler serves the site settings singleton
type SettingsHandler struct {
	settingsRepository repositories.SettingsRepository
}

func NewSettingsHandler(settingsRepo repositories.SettingsRepository) *SettingsHandler {
	return &SettingsHandler{settingsRepository: settingsRepo}
}

// RegisterSettingsRoutes registers settings routes
func (h *SettingsHandler) RegisterSettingsRoutes(g *echo.Group) {
	admin := middleware.Require(middleware.IsAdmin)
	g.GET("/settings", h.GetSettings)
	g.PATCH("/settings", h.UpdateSettings, admin)
	g.PUT("/settings", h.UpdateSettings, admin)
}

// GetSettings returns the settings, without secrets unless the caller is an admin
func (h *SettingsHandler) GetSettings(c echo.Context) error {
	settings, err := h.settingsRepository.GetSettings()
	if err != nil {
		return err
	}
	if !currentUser(c).IsAdmin() {
		return c.JSON(http.StatusOK, settings.Public())
	}
	return c.JSON(http.StatusOK, settings)
}

// UpdateSettings applies the fields present in the body. PUT and PATCH
// behave alike.
func (h *SettingsHandler) UpdateSettings(c echo.Context) error {
	var req models.UpdateSettingsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	settings, err := h.settingsRepository.GetSettings()
	if err != nil {
		return err
	}
	if err := copier.CopyWithOption(settings, &req, copier.Option{IgnoreEmpty: true}); err != nil {
		return err
	}
	if err := h.settingsRepository.UpdateSettings(settings); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, settings)
}
