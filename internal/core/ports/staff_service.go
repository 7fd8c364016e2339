package ports

import (
	"context"

	"github.com/mosadie/charity-api/internal/core/domain"
)

// CreateStaffInput carries all data needed to provision a staff account.
type CreateStaffInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
	Role      domain.Role
}

// StaffService manages admin/employee accounts. Creation is a two-step
// protocol: the credential row is inserted first, then updated with the
// profile fields. A step-two failure leaves the bare credential in place;
// there is no compensating rollback, only an operator alert.
type StaffService interface {
	List(ctx context.Context) ([]*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, input CreateStaffInput) (*domain.User, error)
	Update(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
