package ports

import (
	"context"

	"github.com/mosadie/charity-api/internal/core/domain"
)

// CreateProjectInput carries all data needed to create a project.
type CreateProjectInput struct {
	Name        string
	Description string
	Status      domain.ProjectStatus
	Start       string
	End         string
	Budget      float64
	ImageURL    string
	CreatedBy   string
}

// ProjectService defines use-case operations for projects.
type ProjectService interface {
	List(ctx context.Context, status domain.ProjectStatus) ([]*domain.Project, error)
	Get(ctx context.Context, id string) (*domain.Project, error)
	Create(ctx context.Context, input CreateProjectInput) (*domain.Project, error)
	Update(ctx context.Context, id string, input UpdateProjectInput) (*domain.Project, error)
	Delete(ctx context.Context, id string) error
}
