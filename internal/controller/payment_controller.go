package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"smm-panel/internal/model"
	"smm-panel/internal/service"
)

type PaymentController struct {
	paymentService service.PaymentService
}

func NewPaymentController(paymentService service.PaymentService) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
	}
}

func (pc *PaymentController) RegisterRoutes(e *echo.Echo, adminGate echo.MiddlewareFunc) {
	e.POST("/api/payments", pc.CreatePayment)
	e.GET("/api/payments", pc.ListPayments, adminGate)
}

// CreatePayment is public so customers can self-report a payment reference.
func (pc *PaymentController) CreatePayment(c echo.Context) error {
	var payment model.Payment
	if err := c.Bind(&payment); err != nil {
		return bindFailed(c)
	}

	payment.ApplyDefaults()
	if err := payment.Validate(); err != nil {
		return validationFailed(c, err)
	}

	if err := pc.paymentService.CreatePayment(c.Request().Context(), &payment); err != nil {
		if errors.Is(err, service.ErrDatabaseNotConfigured) {
			return c.JSON(http.StatusInternalServerError, errorBody("Database not configured"))
		}
		return c.JSON(http.StatusInternalServerError, errorBody("Failed to create payment"))
	}

	return c.JSON(http.StatusOK, &payment)
}

func (pc *PaymentController) ListPayments(c echo.Context) error {
	payments, err := pc.paymentService.ListPayments(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorBody("Failed to list payments"))
	}
	return c.JSON(http.StatusOK, payments)
}
