package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mosadie/charity-api/internal/api/metrics"
	"github.com/mosadie/charity-api/internal/core/domain"
	"github.com/mosadie/charity-api/internal/core/ports"
)

// DonationHandler handles the public donation intake and the admin views over
// donations and donators.
type DonationHandler struct {
	service ports.DonationService
}

func NewDonationHandler(service ports.DonationService) *DonationHandler {
	return &DonationHandler{service: service}
}

type donateRequest struct {
	Amount      float64 `json:"amount"       validate:"required,gt=0"`
	DonorName   string  `json:"donor_name"   validate:"required,min=2,max=100"`
	DonorEmail  string  `json:"donor_email"  validate:"required,email"`
	Message     string  `json:"message"      validate:"omitempty,max=1000"`
	ProjectID   string  `json:"project_id"`
	IsAnonymous bool    `json:"is_anonymous"`
}

type listDonationsResponse struct {
	Data []*domain.Donation `json:"data"`
}

type listDonatorsResponse struct {
	Data []*domain.Donator `json:"data"`
}

// Donate handles POST /v1/donations. The donator row is upserted (the running
// total grows) before the donation itself is recorded.
//
// @Summary      Record a donation
// @Tags         donations
// @Accept       json
// @Produce      json
// @Param        body  body      donateRequest  true  "Donation"
// @Success      201   {object}  domain.Donation
// @Failure      400   {object}  errorResponse
// @Router       /v1/donations [post]
func (h *DonationHandler) Donate(c echo.Context) error {
	var req donateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	donation, err := h.service.Donate(c.Request().Context(), ports.DonateInput{
		Amount:      req.Amount,
		DonorName:   req.DonorName,
		DonorEmail:  req.DonorEmail,
		Message:     req.Message,
		ProjectID:   req.ProjectID,
		IsAnonymous: req.IsAnonymous,
	})
	if err != nil {
		metrics.SubmissionErrorsTotal.WithLabelValues("donation").Inc()
		return err
	}

	metrics.SubmissionsTotal.WithLabelValues("donation").Inc()
	return c.JSON(http.StatusCreated, donation)
}

// ListDonations handles GET /v1/admin/donations.
//
// @Summary      List donations
// @Tags         donations
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listDonationsResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/donations [get]
func (h *DonationHandler) ListDonations(c echo.Context) error {
	donations, err := h.service.ListDonations(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listDonationsResponse{Data: donations})
}

// ListDonators handles GET /v1/admin/donators.
//
// @Summary      List donators
// @Tags         donations
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listDonatorsResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/donators [get]
func (h *DonationHandler) ListDonators(c echo.Context) error {
	donators, err := h.service.ListDonators(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listDonatorsResponse{Data: donators})
}
