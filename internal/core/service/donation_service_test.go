package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/mosadie/charity-api/internal/core/domain"
	"github.com/mosadie/charity-api/internal/core/ports"
)

type stubDonationRepo struct {
	donators  map[string]*domain.Donator // keyed by email
	donations []*domain.Donation
	insertErr error
}

func newStubDonationRepo() *stubDonationRepo {
	return &stubDonationRepo{donators: make(map[string]*domain.Donator)}
}

func (r *stubDonationRepo) UpsertDonator(_ context.Context, donator *domain.Donator, amount float64) (*domain.Donator, error) {
	existing, ok := r.donators[donator.Email]
	if !ok {
		clone := *donator
		clone.TotalDonated = amount
		r.donators[donator.Email] = &clone
		out := clone
		return &out, nil
	}
	existing.TotalDonated += amount
	existing.Name = donator.Name
	existing.IsAnonymous = donator.IsAnonymous
	clone := *existing
	return &clone, nil
}

func (r *stubDonationRepo) InsertDonation(_ context.Context, d *domain.Donation) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	clone := *d
	r.donations = append(r.donations, &clone)
	return nil
}

func (r *stubDonationRepo) ListDonations(context.Context) ([]*domain.Donation, error) {
	return r.donations, nil
}

func (r *stubDonationRepo) ListDonators(context.Context) ([]*domain.Donator, error) {
	var out []*domain.Donator
	for _, d := range r.donators {
		clone := *d
		out = append(out, &clone)
	}
	return out, nil
}

func TestDonationService_Donate_AccumulatesTotal(t *testing.T) {
	repo := newStubDonationRepo()
	svc := NewDonationService(repo, zerolog.Nop())

	first, err := svc.Donate(context.Background(), ports.DonateInput{
		Amount:     50,
		DonorName:  "Pat",
		DonorEmail: "pat@example.com",
	})
	if err != nil {
		t.Fatalf("Donate returned error: %v", err)
	}

	second, err := svc.Donate(context.Background(), ports.DonateInput{
		Amount:     25,
		DonorName:  "Pat",
		DonorEmail: "pat@example.com",
		ProjectID:  "p1",
	})
	if err != nil {
		t.Fatalf("Donate returned error: %v", err)
	}

	if first.DonatorID != second.DonatorID {
		t.Fatalf("repeat donor must reuse the donator row: %q vs %q", first.DonatorID, second.DonatorID)
	}
	donator := repo.donators["pat@example.com"]
	if donator.TotalDonated != 75 {
		t.Fatalf("expected running total 75, got %v", donator.TotalDonated)
	}
	if len(repo.donations) != 2 {
		t.Fatalf("expected 2 donation rows, got %d", len(repo.donations))
	}
	if second.ProjectID != "p1" {
		t.Fatalf("project link not recorded: %+v", second)
	}
}

func TestDonationService_Donate_InsertFailureSurfaces(t *testing.T) {
	repo := newStubDonationRepo()
	repo.insertErr = errors.New("write concern failed")
	svc := NewDonationService(repo, zerolog.Nop())

	_, err := svc.Donate(context.Background(), ports.DonateInput{
		Amount:     10,
		DonorName:  "Pat",
		DonorEmail: "pat@example.com",
	})
	if err == nil {
		t.Fatalf("expected error when the donation row cannot be written")
	}
	// The upsert already ran; the total stays updated without a rollback.
	if repo.donators["pat@example.com"].TotalDonated != 10 {
		t.Fatalf("donator total must reflect the completed upsert")
	}
	if len(repo.donations) != 0 {
		t.Fatalf("no donation row expected after failed insert")
	}
}
