package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"smm-panel/internal/model"
	"smm-panel/internal/service"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

func (ac *AuthController) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/admin/login", ac.Login)
	e.POST("/api/admin/bootstrap", ac.Bootstrap)
}

type LoginRequest struct {
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
}

type AuthResponse struct {
	Token string `json:"token"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func (ac *AuthController) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return bindFailed(c)
	}
	if req.Email == "" {
		return validationFailed(c, &model.ValidationError{Field: "email", Reason: "is required"})
	}
	if req.PasswordHash == "" {
		return validationFailed(c, &model.ValidationError{Field: "password_hash", Reason: "is required"})
	}

	result, err := ac.authService.Login(c.Request().Context(), req.Email, req.PasswordHash)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			return c.JSON(http.StatusUnauthorized, errorBody("Invalid credentials"))
		case errors.Is(err, service.ErrDatabaseNotConfigured):
			return c.JSON(http.StatusInternalServerError, errorBody("Database not configured"))
		default:
			return c.JSON(http.StatusInternalServerError, errorBody("Failed to log in"))
		}
	}

	return c.JSON(http.StatusOK, AuthResponse{
		Token: result.Token,
		Name:  result.Name,
		Role:  result.Role,
	})
}

type BootstrapRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
}

// Bootstrap creates the first admin account. Deliberately ungated so a
// fresh deployment can be initialized; once an admin exists for the email
// it refuses with 400.
func (ac *AuthController) Bootstrap(c echo.Context) error {
	var req BootstrapRequest
	if err := c.Bind(&req); err != nil {
		return bindFailed(c)
	}
	if req.Name == "" {
		return validationFailed(c, &model.ValidationError{Field: "name", Reason: "is required"})
	}
	if req.Email == "" {
		return validationFailed(c, &model.ValidationError{Field: "email", Reason: "is required"})
	}
	if req.PasswordHash == "" {
		return validationFailed(c, &model.ValidationError{Field: "password_hash", Reason: "is required"})
	}

	if err := ac.authService.Bootstrap(c.Request().Context(), req.Name, req.Email, req.PasswordHash); err != nil {
		switch {
		case errors.Is(err, service.ErrAdminExists):
			return c.JSON(http.StatusBadRequest, errorBody("Admin already exists"))
		case errors.Is(err, service.ErrDatabaseNotConfigured):
			return c.JSON(http.StatusInternalServerError, errorBody("Database not configured"))
		default:
			return c.JSON(http.StatusInternalServerError, errorBody("Failed to create admin"))
		}
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
