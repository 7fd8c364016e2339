package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/mosadie/charity-api/internal/core/domain"
	"github.com/mosadie/charity-api/internal/core/ports"
)

type stubProjectRepo struct {
	projects map[string]*domain.Project
}

func newStubProjectRepo() *stubProjectRepo {
	return &stubProjectRepo{projects: make(map[string]*domain.Project)}
}

func (r *stubProjectRepo) Create(_ context.Context, p *domain.Project) error {
	clone := *p
	r.projects[p.ID] = &clone
	return nil
}

func (r *stubProjectRepo) FindByID(_ context.Context, id string) (*domain.Project, error) {
	if p, ok := r.projects[id]; ok {
		clone := *p
		return &clone, nil
	}
	return nil, domain.ErrProjectNotFound
}

func (r *stubProjectRepo) List(_ context.Context, status domain.ProjectStatus) ([]*domain.Project, error) {
	var out []*domain.Project
	for _, p := range r.projects {
		if status == "" || p.Status == status {
			clone := *p
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubProjectRepo) Update(_ context.Context, id string, input ports.UpdateProjectInput) (*domain.Project, error) {
	p, ok := r.projects[id]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	if input.Name != nil {
		p.Name = *input.Name
	}
	if input.Description != nil {
		p.Description = *input.Description
	}
	if input.Status != nil {
		p.Status = *input.Status
	}
	if input.Start != nil {
		p.Start = *input.Start
	}
	if input.End != nil {
		p.End = *input.End
	}
	if input.Budget != nil {
		p.Budget = *input.Budget
	}
	if input.ImageURL != nil {
		p.ImageURL = *input.ImageURL
	}
	clone := *p
	return &clone, nil
}

func (r *stubProjectRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.projects[id]; !ok {
		return domain.ErrProjectNotFound
	}
	delete(r.projects, id)
	return nil
}

func TestProjectService_Create(t *testing.T) {
	repo := newStubProjectRepo()
	svc := NewProjectService(repo, zerolog.Nop())

	project, err := svc.Create(context.Background(), ports.CreateProjectInput{
		Name:        "Community Garden",
		Description: "A shared garden for the neighbourhood.",
		Status:      domain.ProjectPlanning,
		Start:       "2026-09-01",
		Budget:      12500,
		CreatedBy:   "admin_1",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if project.ID == "" {
		t.Fatalf("expected generated id")
	}
	if project.CreatedBy != "admin_1" {
		t.Fatalf("creator not recorded: %+v", project)
	}
	if _, ok := repo.projects[project.ID]; !ok {
		t.Fatalf("project not persisted")
	}
}

func TestProjectService_Create_InvalidStatus(t *testing.T) {
	svc := NewProjectService(newStubProjectRepo(), zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.CreateProjectInput{
		Name:   "X",
		Status: "archived",
	})
	if !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestProjectService_Update_Partial(t *testing.T) {
	repo := newStubProjectRepo()
	repo.projects["p1"] = &domain.Project{
		ID:          "p1",
		Name:        "Community Garden",
		Description: "A shared garden for the neighbourhood.",
		Status:      domain.ProjectPlanning,
		Start:       "2026-09-01",
		ImageURL:    "https://img.example.com/garden.jpg",
		Budget:      12500,
	}
	svc := NewProjectService(repo, zerolog.Nop())

	status := domain.ProjectActive
	budget := 15000.0
	updated, err := svc.Update(context.Background(), "p1", ports.UpdateProjectInput{
		Status: &status,
		Budget: &budget,
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Status != domain.ProjectActive || updated.Budget != 15000 {
		t.Fatalf("present fields not applied: %+v", updated)
	}
	if updated.Name != "Community Garden" || updated.Start != "2026-09-01" {
		t.Fatalf("absent fields must stay untouched: %+v", updated)
	}

	// Pointer to the empty string clears an optional column.
	empty := ""
	updated, err = svc.Update(context.Background(), "p1", ports.UpdateProjectInput{ImageURL: &empty})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.ImageURL != "" {
		t.Fatalf("expected cleared image url, got %q", updated.ImageURL)
	}
}

func TestProjectService_Update_InvalidStatus(t *testing.T) {
	svc := NewProjectService(newStubProjectRepo(), zerolog.Nop())

	bad := domain.ProjectStatus("archived")
	if _, err := svc.Update(context.Background(), "p1", ports.UpdateProjectInput{Status: &bad}); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestProjectService_List_StatusFilter(t *testing.T) {
	repo := newStubProjectRepo()
	repo.projects["p1"] = &domain.Project{ID: "p1", Status: domain.ProjectActive}
	repo.projects["p2"] = &domain.Project{ID: "p2", Status: domain.ProjectCompleted}
	svc := NewProjectService(repo, zerolog.Nop())

	active, err := svc.List(context.Background(), domain.ProjectActive)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(active) != 1 || active[0].ID != "p1" {
		t.Fatalf("unexpected filter result: %+v", active)
	}

	if _, err := svc.List(context.Background(), "archived"); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus for unknown filter, got %v", err)
	}

	all, err := svc.List(context.Background(), "")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 projects without filter, got %d", len(all))
	}
}

func TestProjectService_Delete_NotFound(t *testing.T) {
	svc := NewProjectService(newStubProjectRepo(), zerolog.Nop())

	if err := svc.Delete(context.Background(), "ghost"); !errors.Is(err, domain.ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}
