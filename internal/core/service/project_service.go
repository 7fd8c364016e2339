package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mosadie/charity-api/internal/core/domain"
	"github.com/mosadie/charity-api/internal/core/ports"
)

// ProjectService implements project CRUD. Every call maps to exactly one
// repository operation; failures propagate to the caller untouched.
type ProjectService struct {
	repo ports.ProjectRepository
	log  zerolog.Logger
}

func NewProjectService(repo ports.ProjectRepository, log zerolog.Logger) *ProjectService {
	return &ProjectService{repo: repo, log: log}
}

func (s *ProjectService) List(ctx context.Context, status domain.ProjectStatus) ([]*domain.Project, error) {
	if status != "" && !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}
	return s.repo.List(ctx, status)
}

func (s *ProjectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProjectService) Create(ctx context.Context, input ports.CreateProjectInput) (*domain.Project, error) {
	if !input.Status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	now := time.Now().UTC()
	project := &domain.Project{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
		Status:      input.Status,
		Start:       input.Start,
		End:         input.End,
		Budget:      input.Budget,
		ImageURL:    input.ImageURL,
		CreatedBy:   input.CreatedBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, project); err != nil {
		s.log.Error().Err(err).Str("project_name", input.Name).Msg("failed to create project")
		return nil, err
	}

	s.log.Info().Str("project_id", project.ID).Str("created_by", input.CreatedBy).Msg("project created")
	return project, nil
}

// Update applies only the fields present in input; absent fields are left
// untouched server-side.
func (s *ProjectService) Update(ctx context.Context, id string, input ports.UpdateProjectInput) (*domain.Project, error) {
	if input.Status != nil && !input.Status.Valid() {
		return nil, domain.ErrInvalidStatus
	}
	return s.repo.Update(ctx, id, input)
}

func (s *ProjectService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("project_id", id).Msg("project deleted")
	return nil
}
