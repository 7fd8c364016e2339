package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mosadie/charity-api/internal/core/domain"
	"github.com/mosadie/charity-api/internal/core/ports"
)

// DonationService records public donations and keeps donator totals current.
type DonationService struct {
	repo ports.DonationRepository
	log  zerolog.Logger
}

func NewDonationService(repo ports.DonationRepository, log zerolog.Logger) *DonationService {
	return &DonationService{repo: repo, log: log}
}

// Donate upserts the donator row (accumulating total_donated) and records the
// donation. A failure between the two steps leaves the total updated without
// a matching donation row; the error is surfaced rather than rolled back.
func (s *DonationService) Donate(ctx context.Context, in ports.DonateInput) (*domain.Donation, error) {
	now := time.Now().UTC()

	donator, err := s.repo.UpsertDonator(ctx, &domain.Donator{
		ID:          uuid.NewString(),
		Name:        in.DonorName,
		Email:       in.DonorEmail,
		IsAnonymous: in.IsAnonymous,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, in.Amount)
	if err != nil {
		return nil, fmt.Errorf("donate: upsert donator: %w", err)
	}

	donation := &domain.Donation{
		ID:           uuid.NewString(),
		Amount:       in.Amount,
		DonatorID:    donator.ID,
		ProjectID:    in.ProjectID,
		Message:      in.Message,
		DonationDate: now,
		CreatedAt:    now,
	}
	if err := s.repo.InsertDonation(ctx, donation); err != nil {
		return nil, fmt.Errorf("donate: insert donation: %w", err)
	}

	s.log.Info().Str("donation_id", donation.ID).Float64("amount", in.Amount).Bool("anonymous", in.IsAnonymous).Msg("donation recorded")
	return donation, nil
}

func (s *DonationService) ListDonations(ctx context.Context) ([]*domain.Donation, error) {
	return s.repo.ListDonations(ctx)
}

func (s *DonationService) ListDonators(ctx context.Context) ([]*domain.Donator, error) {
	return s.repo.ListDonators(ctx)
}
