package ports

import (
	"context"

	"github.com/mosadie/charity-api/internal/core/domain"
)

// UpdateUserInput carries a partial profile update. Nil fields are left
// untouched in the stored row.
type UpdateUserInput struct {
	FirstName *string
	LastName  *string
	Phone     *string
	Role      *domain.Role
}

// UserRepository defines persistence for user credential + profile rows.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Create inserts a new credential row and returns the stored user.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// Update applies only the fields present in input and returns the
	// resulting row.
	Update(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	// ListByRoles returns users holding any of the given roles, newest first.
	ListByRoles(ctx context.Context, roles ...domain.Role) ([]*domain.User, error)
}
