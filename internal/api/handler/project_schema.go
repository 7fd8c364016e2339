package handler

import (
	"github.com/mosadie/charity-api/internal/core/domain"
	"github.com/mosadie/charity-api/internal/core/ports"
)

type createProjectRequest struct {
	Name        string  `json:"project_name"   validate:"required,min=3"`
	Description string  `json:"description"    validate:"required,min=10"`
	Status      string  `json:"status"         validate:"required,oneof=planning active completed"`
	Start       string  `json:"project_start"  validate:"required,datetime=2006-01-02"`
	End         string  `json:"project_end"    validate:"omitempty,datetime=2006-01-02"`
	Budget      float64 `json:"project_budget" validate:"gte=0"`
	ImageURL    string  `json:"image_url"      validate:"omitempty,url"`
}

// updateProjectRequest carries a partial update: nil fields are not sent to
// the store at all, so the corresponding columns keep their values.
type updateProjectRequest struct {
	Name        *string  `json:"project_name"   validate:"omitempty,min=3"`
	Description *string  `json:"description"    validate:"omitempty,min=10"`
	Status      *string  `json:"status"         validate:"omitempty,oneof=planning active completed"`
	Start       *string  `json:"project_start"  validate:"omitempty,datetime=2006-01-02"`
	End         *string  `json:"project_end"    validate:"omitempty"`
	Budget      *float64 `json:"project_budget" validate:"omitempty,gte=0"`
	ImageURL    *string  `json:"image_url"      validate:"omitempty"`
}

func (r updateProjectRequest) toInput() ports.UpdateProjectInput {
	input := ports.UpdateProjectInput{
		Name:        r.Name,
		Description: r.Description,
		Start:       r.Start,
		End:         r.End,
		Budget:      r.Budget,
		ImageURL:    r.ImageURL,
	}
	if r.Status != nil {
		status := domain.ProjectStatus(*r.Status)
		input.Status = &status
	}
	return input
}

type listProjectsResponse struct {
	Data []*domain.Project `json:"data"`
}
