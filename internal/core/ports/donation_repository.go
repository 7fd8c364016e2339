package ports

import (
	"context"

	"github.com/mosadie/charity-api/internal/core/domain"
)

// DonationRepository defines persistence for donations and donators.
type DonationRepository interface {
	InsertDonation(ctx context.Context, d *domain.Donation) error
	// UpsertDonator finds the donator by email, creating the row on first
	// sight, and adds amount to the running total. Returns the resulting row.
	UpsertDonator(ctx context.Context, donator *domain.Donator, amount float64) (*domain.Donator, error)
	ListDonations(ctx context.Context) ([]*domain.Donation, error)
	ListDonators(ctx context.Context) ([]*domain.Donator, error)
}
