package ports

import (
	"context"

	"github.com/mosadie/charity-api/internal/core/domain"
)

// DonateInput carries a public donation submission.
type DonateInput struct {
	Amount      float64
	DonorName   string
	DonorEmail  string
	Message     string
	ProjectID   string
	IsAnonymous bool
}

// DonationService records donations and exposes the admin views.
type DonationService interface {
	Donate(ctx context.Context, input DonateInput) (*domain.Donation, error)
	ListDonations(ctx context.Context) ([]*domain.Donation, error)
	ListDonators(ctx context.Context) ([]*domain.Donator, error)
}
