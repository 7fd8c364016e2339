package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mosadie/charity-api/internal/api/metrics"
	"github.com/mosadie/charity-api/internal/core/domain"
	"github.com/mosadie/charity-api/internal/core/ports"
)

// ContactHandler handles the public contact form and its back-office views.
type ContactHandler struct {
	service ports.SubmissionService
}

func NewContactHandler(service ports.SubmissionService) *ContactHandler {
	return &ContactHandler{service: service}
}

type contactRequest struct {
	Name    string `json:"name"    validate:"required,min=3,max=100"`
	Email   string `json:"email"   validate:"required,email"`
	Subject string `json:"subject" validate:"required,min=5,max=200"`
	Message string `json:"message" validate:"required,min=10,max=2000"`
}

type markMessageRequest struct {
	Status string `json:"status" validate:"required,oneof=read responded"`
}

type listMessagesResponse struct {
	Data []*domain.ContactMessage `json:"data"`
}

// Submit handles POST /v1/contact.
//
// @Summary      Submit a contact message
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body      contactRequest  true  "Message"
// @Success      202   {object}  acceptedResponse
// @Failure      400   {object}  errorResponse
// @Router       /v1/contact [post]
func (h *ContactHandler) Submit(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.service.SubmitContact(c.Request().Context(), ports.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		metrics.SubmissionErrorsTotal.WithLabelValues("contact").Inc()
		return err
	}

	metrics.SubmissionsTotal.WithLabelValues("contact").Inc()
	return c.JSON(http.StatusAccepted, acceptedResponse{Message: "thank you for reaching out, we will get back to you soon"})
}

// List handles GET /v1/admin/messages.
//
// @Summary      List contact messages
// @Tags         contact
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listMessagesResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/messages [get]
func (h *ContactHandler) List(c echo.Context) error {
	messages, err := h.service.ListMessages(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listMessagesResponse{Data: messages})
}

// Mark handles PATCH /v1/admin/messages/:id. Staff move messages from unread to
// read or responded; the responded transition records who answered.
//
// @Summary      Update a message's handling state
// @Tags         contact
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Message ID"
// @Param        body  body      markMessageRequest  true  "New status"
// @Success      200   {object}  domain.ContactMessage
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/admin/messages/{id} [patch]
func (h *ContactHandler) Mark(c echo.Context) error {
	staff, err := actor(c)
	if err != nil {
		return err
	}

	var req markMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	message, err := h.service.MarkMessage(c.Request().Context(), c.Param("id"), domain.MessageStatus(req.Status), staff.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, message)
}
