package middleware

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/mosadie/charity-api/internal/core/ports"
)

// Context keys set by the Session middleware.
const (
	ContextIdentity  = "identity"
	ContextSessionID = "session_id"
)

// Session resolves the bearer token to an identity and injects it into the
// request context. It never rejects on its own: a missing, malformed, expired,
// or unresolvable token leaves the request anonymous, and the role gates
// downstream decide what anonymous is allowed to do.
func Session(jwtSecret string, auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return next(c)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return next(c)
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return next(c)
			}

			sid, _ := claims["sid"].(string)
			if sid == "" {
				return next(c)
			}
			c.Set(ContextSessionID, sid)

			if identity := auth.ResolveIdentity(c.Request().Context(), sid); identity != nil {
				c.Set(ContextIdentity, identity)
			}

			return next(c)
		}
	}
}
