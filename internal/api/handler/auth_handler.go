package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mosadie/charity-api/internal/api/metrics"
	"github.com/mosadie/charity-api/internal/api/middleware"
	"github.com/mosadie/charity-api/internal/core/domain"
	"github.com/mosadie/charity-api/internal/core/ports"
)

// AuthHandler handles sign-in, sign-out, and the current-session view.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string       `json:"token,omitempty"`
	User  *domain.User `json:"user,omitempty"`
}

type sessionResponse struct {
	User              *domain.User `json:"user"`
	IsAuthenticated   bool         `json:"is_authenticated"`
	IsAdmin           bool         `json:"is_admin"`
	IsEmployeeOrAbove bool         `json:"is_employee_or_above"`
}

// Login authenticates a user and returns a session token.
//
// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.authService.SignIn(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			metrics.SignInsTotal.WithLabelValues("invalid_credentials").Inc()
		case errors.Is(err, domain.ErrProfileNotFound):
			metrics.SignInsTotal.WithLabelValues("profile_unresolved").Inc()
		default:
			metrics.SignInsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.SignInsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, authResponse{Token: token, User: user})
}

// Logout invalidates the current session. It always reports success: even if
// the store-side invalidation fails, the client forgets its token and is
// signed out from its own perspective.
//
// @Summary      Sign out
// @Tags         auth
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  errorResponse
// @Router       /v1/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	sid, _ := c.Get(middleware.ContextSessionID).(string)
	if sid == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	_ = h.authService.SignOut(c.Request().Context(), sid)
	return c.NoContent(http.StatusNoContent)
}

// Session returns the current identity and its derived flags. Anonymous
// requests get a null user with every flag false — never an error.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  sessionResponse
// @Router       /v1/auth/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	identity := middleware.Identity(c)
	return c.JSON(http.StatusOK, sessionResponse{
		User:              identity,
		IsAuthenticated:   identity != nil,
		IsAdmin:           identity.IsAdmin(),
		IsEmployeeOrAbove: identity.IsEmployeeOrAbove(),
	})
}
