package domain

import "time"

// Donator is a known donor. TotalDonated accumulates across donations.
type Donator struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	TotalDonated float64   `json:"total_donated"`
	IsAnonymous  bool      `json:"is_anonymous"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Donation is a single recorded gift, optionally tied to a donator and a
// project.
type Donation struct {
	ID           string    `json:"id"`
	Amount       float64   `json:"amount"`
	DonatorID    string    `json:"donator_id,omitempty"`
	ProjectID    string    `json:"project_id,omitempty"`
	Message      string    `json:"message,omitempty"`
	DonationDate time.Time `json:"donation_date"`
	CreatedAt    time.Time `json:"created_at"`
}
