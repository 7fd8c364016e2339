package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mosadie/charity-api/internal/core/domain"
	"github.com/mosadie/charity-api/internal/core/ports"
)

// DuplicateChecker abstracts the resubmission-suppression store (Redis).
type DuplicateChecker interface {
	IsDuplicate(ctx context.Context, form, email, digest string) (bool, error)
	Mark(ctx context.Context, form, email, digest string) error
}

type submissionService struct {
	contacts   ports.ContactRepository
	volunteers ports.VolunteerRepository
	dedup      DuplicateChecker
	notifier   ports.Notifier
	log        zerolog.Logger
}

// NewSubmissionService returns a SubmissionService implementation.
func NewSubmissionService(
	contacts ports.ContactRepository,
	volunteers ports.VolunteerRepository,
	dedup DuplicateChecker,
	notifier ports.Notifier,
	log zerolog.Logger,
) ports.SubmissionService {
	return &submissionService{
		contacts:   contacts,
		volunteers: volunteers,
		dedup:      dedup,
		notifier:   notifier,
		log:        log,
	}
}

// SubmitContact stores a contact message with status unread. An identical
// resubmission inside the dedup window is acknowledged without inserting a
// second row.
func (s *submissionService) SubmitContact(ctx context.Context, in ports.ContactInput) error {
	digest := payloadDigest(in.Name, in.Subject, in.Message)

	isDup, err := s.dedup.IsDuplicate(ctx, "contact", in.Email, digest)
	if err != nil {
		s.log.Warn().Err(err).Str("email", in.Email).Msg("dedup check failed, processing anyway")
	} else if isDup {
		s.log.Debug().Str("email", in.Email).Msg("duplicate contact submission skipped")
		return nil
	}

	now := time.Now().UTC()
	msg := &domain.ContactMessage{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		Subject:   in.Subject,
		Message:   in.Message,
		Status:    domain.MessageUnread,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.contacts.Insert(ctx, msg); err != nil {
		return fmt.Errorf("submit contact: %w", err)
	}

	if markErr := s.dedup.Mark(ctx, "contact", in.Email, digest); markErr != nil {
		s.log.Warn().Err(markErr).Str("email", in.Email).Msg("failed to set dedup key")
	}

	s.notifier.Enqueue(ports.NotificationInput{
		Kind:      ports.NotifyContactMessage,
		Reference: msg.ID,
		Email:     msg.Email,
		Summary:   msg.Subject,
	})
	return nil
}

// SubmitVolunteer stores a volunteer application with status pending.
func (s *submissionService) SubmitVolunteer(ctx context.Context, in ports.VolunteerInput) error {
	digest := payloadDigest(in.FirstName, in.LastName, in.Phone, strings.Join(in.Interests, ","), in.Availability, in.Message)

	isDup, err := s.dedup.IsDuplicate(ctx, "volunteer", in.Email, digest)
	if err != nil {
		s.log.Warn().Err(err).Str("email", in.Email).Msg("dedup check failed, processing anyway")
	} else if isDup {
		s.log.Debug().Str("email", in.Email).Msg("duplicate volunteer application skipped")
		return nil
	}

	now := time.Now().UTC()
	volunteer := &domain.Volunteer{
		ID:           uuid.NewString(),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		Phone:        in.Phone,
		Interests:    in.Interests,
		Availability: in.Availability,
		Message:      in.Message,
		Status:       domain.VolunteerPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.volunteers.Insert(ctx, volunteer); err != nil {
		return fmt.Errorf("submit volunteer: %w", err)
	}

	if markErr := s.dedup.Mark(ctx, "volunteer", in.Email, digest); markErr != nil {
		s.log.Warn().Err(markErr).Str("email", in.Email).Msg("failed to set dedup key")
	}

	s.notifier.Enqueue(ports.NotificationInput{
		Kind:      ports.NotifyVolunteerApplied,
		Reference: volunteer.ID,
		Email:     volunteer.Email,
		Summary:   volunteer.FirstName + " " + volunteer.LastName,
	})
	return nil
}

func (s *submissionService) ListMessages(ctx context.Context) ([]*domain.ContactMessage, error) {
	return s.contacts.List(ctx)
}

// MarkMessage moves a message to read or responded. The responder is recorded
// only on the responded transition.
func (s *submissionService) MarkMessage(ctx context.Context, id string, status domain.MessageStatus, actorID string) (*domain.ContactMessage, error) {
	if status != domain.MessageRead && status != domain.MessageResponded {
		return nil, domain.ErrInvalidStatus
	}
	respondedBy := ""
	if status == domain.MessageResponded {
		respondedBy = actorID
	}
	return s.contacts.UpdateStatus(ctx, id, status, respondedBy)
}

func (s *submissionService) ListVolunteers(ctx context.Context) ([]*domain.Volunteer, error) {
	return s.volunteers.List(ctx)
}

// ReviewVolunteer approves or rejects an application, recording the reviewer.
func (s *submissionService) ReviewVolunteer(ctx context.Context, id string, status domain.VolunteerStatus, actorID string) (*domain.Volunteer, error) {
	if status != domain.VolunteerApproved && status != domain.VolunteerRejected {
		return nil, domain.ErrInvalidStatus
	}
	return s.volunteers.UpdateStatus(ctx, id, status, actorID)
}

// payloadDigest fingerprints a submission for duplicate suppression.
func payloadDigest(parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil)[:16])
}
