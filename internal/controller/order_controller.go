package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"smm-panel/internal/model"
	"smm-panel/internal/service"
)

type OrderController struct {
	orderService service.OrderService
}

func NewOrderController(orderService service.OrderService) *OrderController {
	return &OrderController{
		orderService: orderService,
	}
}

func (oc *OrderController) RegisterRoutes(e *echo.Echo, adminGate echo.MiddlewareFunc) {
	e.POST("/api/orders", oc.CreateOrder)
	e.GET("/api/orders", oc.ListOrders, adminGate)
}

// CreateOrder is public: customers place their own orders. The response
// carries the server-computed charge_pkr.
func (oc *OrderController) CreateOrder(c echo.Context) error {
	var order model.Order
	if err := c.Bind(&order); err != nil {
		return bindFailed(c)
	}

	order.ApplyDefaults()
	if err := order.Validate(); err != nil {
		return validationFailed(c, err)
	}

	if err := oc.orderService.CreateOrder(c.Request().Context(), &order); err != nil {
		switch {
		case errors.Is(err, service.ErrServiceNotFound):
			return c.JSON(http.StatusNotFound, errorBody("Service not found"))
		case errors.Is(err, service.ErrDatabaseNotConfigured):
			return c.JSON(http.StatusInternalServerError, errorBody("Database not configured"))
		default:
			return c.JSON(http.StatusInternalServerError, errorBody("Failed to create order"))
		}
	}

	return c.JSON(http.StatusOK, &order)
}

func (oc *OrderController) ListOrders(c echo.Context) error {
	orders, err := oc.orderService.ListOrders(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorBody("Failed to list orders"))
	}
	return c.JSON(http.StatusOK, orders)
}
