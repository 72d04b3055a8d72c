package middleware

import (
	"fmt"
	"net/http"
	"slices"

	"github.com/labstack/echo/v4"
)

// RequireRole admits callers whose token role is one of roles. It reads the
// claims Auth stored on the request context, so it must run after Auth.
// Failures are returned as echo.HTTPError for the central error handler.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := ClaimsFromContext(c.Request().Context())
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			if !slices.Contains(roles, claims.Role) {
				return echo.NewHTTPError(http.StatusForbidden, fmt.Sprintf("role %q may not access this resource", claims.Role))
			}
			return next(c)
		}
	}
}
