package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mosadie/charity-api/internal/core/domain"
)

// Identity returns the identity resolved by the Session middleware, or nil
// when the request is anonymous.
func Identity(c echo.Context) *domain.User {
	identity, _ := c.Get(ContextIdentity).(*domain.User)
	return identity
}

// RequireAuth rejects anonymous requests with 401. This is the server half of
// the client's redirect-to-login behaviour.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if Identity(c) == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			return next(c)
		}
	}
}

// RequireRole enforces the role gate on a route: anonymous requests get 401,
// and an authenticated identity passes only when its role satisfies the
// required one — admin satisfies every gate.
func RequireRole(required domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity := Identity(c)
			if identity == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			if !identity.Role.Satisfies(required) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
