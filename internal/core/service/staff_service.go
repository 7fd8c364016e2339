package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/mosadie/charity-api/internal/core/domain"
	"github.com/mosadie/charity-api/internal/core/ports"
)

// StaffService manages admin and employee accounts.
type StaffService struct {
	users    ports.UserRepository
	notifier ports.Notifier
	log      zerolog.Logger
}

func NewStaffService(users ports.UserRepository, notifier ports.Notifier, log zerolog.Logger) *StaffService {
	return &StaffService{users: users, notifier: notifier, log: log}
}

func (s *StaffService) List(ctx context.Context) ([]*domain.User, error) {
	return s.users.ListByRoles(ctx, domain.RoleAdmin, domain.RoleEmployee)
}

func (s *StaffService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

// Create provisions a staff account in two steps: the credential row is
// inserted first with the default role, then updated with the profile fields
// and the staff role. When the second step fails the bare credential is left
// in place — there is no rollback; the failure is surfaced to the caller and
// an operator alert is enqueued so the orphan can be cleaned up by hand.
func (s *StaffService) Create(ctx context.Context, input ports.CreateStaffInput) (*domain.User, error) {
	if input.Role != domain.RoleAdmin && input.Role != domain.RoleEmployee {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	credential, err := s.users.Create(ctx, &domain.User{
		ID:           uuid.NewString(),
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	update := ports.UpdateUserInput{
		FirstName: &input.FirstName,
		LastName:  &input.LastName,
		Role:      &input.Role,
	}
	if input.Phone != "" {
		update.Phone = &input.Phone
	}

	staff, err := s.users.Update(ctx, credential.ID, update)
	if err != nil {
		s.notifier.Enqueue(ports.NotificationInput{
			Kind:      ports.NotifyOrphanedCredential,
			Reference: credential.ID,
			Email:     credential.Email,
			Summary:   "staff credential created without a populated profile",
		})
		s.log.Error().Err(err).Str("user_id", credential.ID).Msg("staff profile update failed after credential insert")
		return nil, fmt.Errorf("staff create: profile update: %w", err)
	}

	s.log.Info().Str("user_id", staff.ID).Str("role", string(staff.Role)).Msg("staff account created")
	return staff, nil
}

// Update applies only the fields present in input.
func (s *StaffService) Update(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
	if input.Role != nil && *input.Role != domain.RoleAdmin && *input.Role != domain.RoleEmployee {
		return nil, domain.ErrInvalidCredentials
	}
	return s.users.Update(ctx, id, input)
}

// Delete removes the profile row. Because credential and profile share a row
// here, the auth credential goes with it.
func (s *StaffService) Delete(ctx context.Context, id string) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("user_id", id).Msg("staff account deleted")
	return nil
}
