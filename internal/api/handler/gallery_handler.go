package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mosadie/charity-api/internal/core/domain"
	"github.com/mosadie/charity-api/internal/core/ports"
)

// GalleryHandler handles the public gallery and its staff-managed writes.
type GalleryHandler struct {
	service ports.GalleryService
}

func NewGalleryHandler(service ports.GalleryService) *GalleryHandler {
	return &GalleryHandler{service: service}
}

type addImageRequest struct {
	Title       string `json:"title"       validate:"required,min=2,max=200"`
	Description string `json:"description" validate:"omitempty,max=1000"`
	ImageURL    string `json:"image_url"   validate:"required,url"`
	ProjectID   string `json:"project_id"`
	IsFeatured  bool   `json:"is_featured"`
}

type listImagesResponse struct {
	Data []*domain.GalleryImage `json:"data"`
}

// List handles GET /v1/gallery.
//
// @Summary      List gallery images
// @Tags         gallery
// @Produce      json
// @Param        featured  query     bool  false  "Only featured images"
// @Success      200       {object}  listImagesResponse
// @Router       /v1/gallery [get]
func (h *GalleryHandler) List(c echo.Context) error {
	featuredOnly := c.QueryParam("featured") == "true"

	images, err := h.service.List(c.Request().Context(), featuredOnly)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listImagesResponse{Data: images})
}

// Add handles POST /v1/gallery.
//
// @Summary      Add a gallery image
// @Tags         gallery
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addImageRequest  true  "Image details"
// @Success      201   {object}  domain.GalleryImage
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/gallery [post]
func (h *GalleryHandler) Add(c echo.Context) error {
	staff, err := actor(c)
	if err != nil {
		return err
	}

	var req addImageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	image, err := h.service.Add(c.Request().Context(), ports.AddImageInput{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		ProjectID:   req.ProjectID,
		UploadedBy:  staff.ID,
		IsFeatured:  req.IsFeatured,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, image)
}

// Remove handles DELETE /v1/gallery/:id.
//
// @Summary      Remove a gallery image
// @Tags         gallery
// @Security     BearerAuth
// @Param        id  path  string  true  "Image ID"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/gallery/{id} [delete]
func (h *GalleryHandler) Remove(c echo.Context) error {
	if err := h.service.Remove(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
