package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"smm-panel/internal/model"
	"smm-panel/internal/service"
)

const adminTokenHeader = "X-Admin-Token"

// Context key under which AdminAuth stores the resolved admin.
const adminContextKey = "admin"

// AdminAuth gates a route on a valid X-Admin-Token header. The token is
// resolved through the auth service on every request; there is no caching
// or expiry.
func AdminAuth(authService service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := c.Request().Header.Get(adminTokenHeader)

			admin, err := authService.Authenticate(c.Request().Context(), token)
			if err != nil {
				switch {
				case errors.Is(err, service.ErrDatabaseNotConfigured):
					return c.JSON(http.StatusInternalServerError, errorBody("Database not configured"))
				case errors.Is(err, service.ErrMissingToken):
					return c.JSON(http.StatusUnauthorized, errorBody("Missing admin token"))
				case errors.Is(err, service.ErrInvalidToken):
					return c.JSON(http.StatusUnauthorized, errorBody("Invalid admin token"))
				case errors.Is(err, service.ErrAdminDisabled):
					return c.JSON(http.StatusForbidden, errorBody("Admin disabled"))
				default:
					return c.JSON(http.StatusInternalServerError, errorBody("Failed to authenticate admin"))
				}
			}

			c.Set(adminContextKey, admin)
			return next(c)
		}
	}
}

// AdminFromContext returns the admin stored by AdminAuth, or nil on an
// ungated route.
func AdminFromContext(c echo.Context) *model.AdminUser {
	admin, _ := c.Get(adminContextKey).(*model.AdminUser)
	return admin
}

func errorBody(msg string) map[string]string {
	return map[string]string{"error": msg}
}

func validationFailed(c echo.Context, err error) error {
	return c.JSON(http.StatusUnprocessableEntity, errorBody(err.Error()))
}

// bindFailed reports an unparseable or wrongly-typed body. Type mismatches
// count as validation failures, same as a value outside its declared
// bounds, so this is a 422 rather than a 400.
func bindFailed(c echo.Context) error {
	return c.JSON(http.StatusUnprocessableEntity, errorBody("Invalid request body"))
}
