package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mosadie/charity-api/internal/api/middleware"
	"github.com/mosadie/charity-api/internal/core/domain"
)

// actor extracts the identity injected by the Session middleware and performs
// a fast-fail check before any service call: handlers behind a role gate must
// always see a resolved identity, so a nil here means the route is miswired.
func actor(c echo.Context) (*domain.User, error) {
	identity := middleware.Identity(c)
	if identity == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return identity, nil
}
