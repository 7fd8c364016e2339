package ports

import (
	"context"

	"github.com/mosadie/charity-api/internal/core/domain"
)

// UpdateProjectInput carries a partial project update. Nil fields are left
// untouched in the stored row; a non-nil pointer to the zero value clears an
// optional column.
type UpdateProjectInput struct {
	Name        *string
	Description *string
	Status      *domain.ProjectStatus
	Start       *string
	End         *string
	Budget      *float64
	ImageURL    *string
}

// ProjectRepository defines persistence for charity projects.
type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project) error
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	// List returns projects newest first, optionally filtered by status.
	List(ctx context.Context, status domain.ProjectStatus) ([]*domain.Project, error)
	// Update applies only the fields present in input and returns the
	// resulting row.
	Update(ctx context.Context, id string, input UpdateProjectInput) (*domain.Project, error)
	Delete(ctx context.Context, id string) error
}
