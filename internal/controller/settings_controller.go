package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"smm-panel/internal/model"
	"smm-panel/internal/service"
)

type SettingsController struct {
	settingsService service.SettingsService
}

func NewSettingsController(settingsService service.SettingsService) *SettingsController {
	return &SettingsController{
		settingsService: settingsService,
	}
}

func (sc *SettingsController) RegisterRoutes(e *echo.Echo, adminGate echo.MiddlewareFunc) {
	e.GET("/api/settings", sc.GetSettings)
	e.POST("/api/settings", sc.UpdateSettings, adminGate)
}

func (sc *SettingsController) GetSettings(c echo.Context) error {
	settings, err := sc.settingsService.GetSettings(c.Request().Context())
	if err != nil {
		if errors.Is(err, service.ErrDatabaseNotConfigured) {
			return c.JSON(http.StatusInternalServerError, errorBody("Database not configured"))
		}
		return c.JSON(http.StatusInternalServerError, errorBody("Failed to load settings"))
	}
	return c.JSON(http.StatusOK, settings)
}

// UpdateSettings replaces the whole settings document. Fields omitted from
// the payload come back as their declared defaults on the next read.
func (sc *SettingsController) UpdateSettings(c echo.Context) error {
	var settings model.PanelSettings
	if err := c.Bind(&settings); err != nil {
		return bindFailed(c)
	}

	settings.ApplyDefaults()
	if err := settings.Validate(); err != nil {
		return validationFailed(c, err)
	}

	if err := sc.settingsService.ReplaceSettings(c.Request().Context(), &settings); err != nil {
		if errors.Is(err, service.ErrDatabaseNotConfigured) {
			return c.JSON(http.StatusInternalServerError, errorBody("Database not configured"))
		}
		return c.JSON(http.StatusInternalServerError, errorBody("Failed to update settings"))
	}

	return c.JSON(http.StatusOK, &settings)
}
