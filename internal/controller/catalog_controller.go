package controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"smm-panel/internal/model"
	"smm-panel/internal/service"
)

type CatalogController struct {
	catalogService service.CatalogService
}

func NewCatalogController(catalogService service.CatalogService) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

func (cc *CatalogController) RegisterRoutes(e *echo.Echo, adminGate echo.MiddlewareFunc) {
	e.GET("/api/services", cc.ListServices)
	e.POST("/api/services", cc.CreateService, adminGate)
	e.DELETE("/api/services/:name", cc.DeleteService, adminGate)
}

func (cc *CatalogController) ListServices(c echo.Context) error {
	services, err := cc.catalogService.ListServices(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorBody("Failed to list services"))
	}
	return c.JSON(http.StatusOK, services)
}

func (cc *CatalogController) CreateService(c echo.Context) error {
	var svc model.Service
	if err := c.Bind(&svc); err != nil {
		return bindFailed(c)
	}

	svc.ApplyDefaults()
	if err := svc.Validate(); err != nil {
		return validationFailed(c, err)
	}

	if err := cc.catalogService.CreateService(c.Request().Context(), &svc); err != nil {
		if errors.Is(err, service.ErrDatabaseNotConfigured) {
			return c.JSON(http.StatusInternalServerError, errorBody("Database not configured"))
		}
		return c.JSON(http.StatusInternalServerError, errorBody("Failed to create service"))
	}

	return c.JSON(http.StatusOK, &svc)
}

func (cc *CatalogController) DeleteService(c echo.Context) error {
	name := c.Param("name")

	deleted, err := cc.catalogService.DeleteService(c.Request().Context(), name)
	if err != nil {
		if errors.Is(err, service.ErrDatabaseNotConfigured) {
			return c.JSON(http.StatusInternalServerError, errorBody("Database not configured"))
		}
		return c.JSON(http.StatusInternalServerError, errorBody("Failed to delete service"))
	}

	if admin := AdminFromContext(c); admin != nil {
		log.Printf("Service %q deleted (%d documents) by %s", name, deleted, admin.Email)
	}

	return c.JSON(http.StatusOK, map[string]int64{"deleted": deleted})
}
