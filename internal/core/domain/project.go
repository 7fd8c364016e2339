package domain

import (
	"errors"
	"time"
)

// ProjectStatus represents the lifecycle state of a charity project.
type ProjectStatus string

const (
	ProjectPlanning  ProjectStatus = "planning"
	ProjectActive    ProjectStatus = "active"
	ProjectCompleted ProjectStatus = "completed"
)

var ErrProjectNotFound = errors.New("project not found")
var ErrInvalidStatus = errors.New("invalid status")

// Valid reports whether s is one of the known project statuses.
func (s ProjectStatus) Valid() bool {
	return s == ProjectPlanning || s == ProjectActive || s == ProjectCompleted
}

// Project is a charity project shown on the public site and managed through
// the admin dashboard. Start and End are date-only strings (YYYY-MM-DD),
// matching the stored column format.
type Project struct {
	ID          string        `json:"id"`
	Name        string        `json:"project_name"`
	Description string        `json:"description"`
	Status      ProjectStatus `json:"status"`
	Start       string        `json:"project_start"`
	End         string        `json:"project_end,omitempty"`
	Budget      float64       `json:"project_budget"`
	ImageURL    string        `json:"image_url,omitempty"`
	CreatedBy   string        `json:"created_by,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
