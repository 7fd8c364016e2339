package ports

import (
	"context"

	"github.com/mosadie/charity-api/internal/core/domain"
)

// ContactRepository defines persistence for contact messages.
type ContactRepository interface {
	Insert(ctx context.Context, m *domain.ContactMessage) error
	// List returns messages newest first.
	List(ctx context.Context) ([]*domain.ContactMessage, error)
	// UpdateStatus sets the handling status and who handled it, returning
	// the resulting row.
	UpdateStatus(ctx context.Context, id string, status domain.MessageStatus, respondedBy string) (*domain.ContactMessage, error)
}

// VolunteerRepository defines persistence for volunteer applications.
type VolunteerRepository interface {
	Insert(ctx context.Context, v *domain.Volunteer) error
	List(ctx context.Context) ([]*domain.Volunteer, error)
	UpdateStatus(ctx context.Context, id string, status domain.VolunteerStatus, approvedBy string) (*domain.Volunteer, error)
}
