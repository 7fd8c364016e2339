package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mosadie/charity-api/internal/api/metrics"
	"github.com/mosadie/charity-api/internal/core/domain"
	"github.com/mosadie/charity-api/internal/core/ports"
)

// VolunteerHandler handles the public volunteer sign-up and its review flow.
type VolunteerHandler struct {
	service ports.SubmissionService
}

func NewVolunteerHandler(service ports.SubmissionService) *VolunteerHandler {
	return &VolunteerHandler{service: service}
}

type volunteerRequest struct {
	FirstName    string   `json:"first_name"   validate:"required,min=2,max=50"`
	LastName     string   `json:"last_name"    validate:"required,min=2,max=50"`
	Email        string   `json:"email"        validate:"required,email"`
	Phone        string   `json:"phone"        validate:"required,min=10,max=20"`
	Interests    []string `json:"interests"    validate:"required,min=1,dive,min=2"`
	Availability string   `json:"availability" validate:"required"`
	Message      string   `json:"message"      validate:"omitempty,max=2000"`
}

type reviewVolunteerRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

type listVolunteersResponse struct {
	Data []*domain.Volunteer `json:"data"`
}

// Submit handles POST /v1/volunteers.
//
// @Summary      Submit a volunteer application
// @Tags         volunteers
// @Accept       json
// @Produce      json
// @Param        body  body      volunteerRequest  true  "Application"
// @Success      202   {object}  acceptedResponse
// @Failure      400   {object}  errorResponse
// @Router       /v1/volunteers [post]
func (h *VolunteerHandler) Submit(c echo.Context) error {
	var req volunteerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.service.SubmitVolunteer(c.Request().Context(), ports.VolunteerInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		Interests:    req.Interests,
		Availability: req.Availability,
		Message:      req.Message,
	})
	if err != nil {
		metrics.SubmissionErrorsTotal.WithLabelValues("volunteer").Inc()
		return err
	}

	metrics.SubmissionsTotal.WithLabelValues("volunteer").Inc()
	return c.JSON(http.StatusAccepted, acceptedResponse{Message: "thank you for volunteering, our team will review your application"})
}

// List handles GET /v1/admin/volunteers.
//
// @Summary      List volunteer applications
// @Tags         volunteers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listVolunteersResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/volunteers [get]
func (h *VolunteerHandler) List(c echo.Context) error {
	volunteers, err := h.service.ListVolunteers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listVolunteersResponse{Data: volunteers})
}

// Review handles PATCH /v1/admin/volunteers/:id. Staff approve or reject pending
// applications; the decision records who made it.
//
// @Summary      Review a volunteer application
// @Tags         volunteers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                  true  "Application ID"
// @Param        body  body      reviewVolunteerRequest  true  "Decision"
// @Success      200   {object}  domain.Volunteer
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/admin/volunteers/{id} [patch]
func (h *VolunteerHandler) Review(c echo.Context) error {
	staff, err := actor(c)
	if err != nil {
		return err
	}

	var req reviewVolunteerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	volunteer, err := h.service.ReviewVolunteer(c.Request().Context(), c.Param("id"), domain.VolunteerStatus(req.Status), staff.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, volunteer)
}
