package ports

import (
	"context"

	"github.com/mosadie/charity-api/internal/core/domain"
)

// ContactInput is a public contact form submission.
type ContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// VolunteerInput is a public volunteer sign-up.
type VolunteerInput struct {
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	Interests    []string
	Availability string
	Message      string
}

// SubmissionService handles the public form intakes and their back-office
// review operations.
type SubmissionService interface {
	// SubmitContact stores the message with status unread. A byte-identical
	// resubmission within the dedup window is acknowledged without inserting
	// a second row.
	SubmitContact(ctx context.Context, input ContactInput) error
	// SubmitVolunteer stores the application with status pending.
	SubmitVolunteer(ctx context.Context, input VolunteerInput) error

	ListMessages(ctx context.Context) ([]*domain.ContactMessage, error)
	MarkMessage(ctx context.Context, id string, status domain.MessageStatus, actorID string) (*domain.ContactMessage, error)
	ListVolunteers(ctx context.Context) ([]*domain.Volunteer, error)
	ReviewVolunteer(ctx context.Context, id string, status domain.VolunteerStatus, actorID string) (*domain.Volunteer, error)
}
