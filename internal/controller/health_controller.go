package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"smm-panel/internal/repository"
)

type HealthController struct {
	store *repository.Store
}

func NewHealthController(store *repository.Store) *HealthController {
	return &HealthController{
		store: store,
	}
}

func (hc *HealthController) RegisterRoutes(e *echo.Echo) {
	e.GET("/", hc.Root)
	e.GET("/test", hc.TestDatabase)
}

func (hc *HealthController) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"message": "SMM Panel API running"})
}

// TestDatabase reports whether storage is reachable and which collections
// exist, for quick deployment smoke checks.
func (hc *HealthController) TestDatabase(c echo.Context) error {
	info := map[string]interface{}{
		"backend": "running",
	}

	if !hc.store.Configured() {
		info["database"] = "not-configured"
		return c.JSON(http.StatusOK, info)
	}

	info["database"] = "connected"

	names, err := hc.store.CollectionNames(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorBody("Failed to list collections"))
	}
	info["collections"] = names

	return c.JSON(http.StatusOK, info)
}
