package domain

import (
	"errors"
	"time"
)

// MessageStatus tracks the back-office handling state of a contact message.
type MessageStatus string

const (
	MessageUnread    MessageStatus = "unread"
	MessageRead      MessageStatus = "read"
	MessageResponded MessageStatus = "responded"
)

// VolunteerStatus tracks the review state of a volunteer application.
type VolunteerStatus string

const (
	VolunteerPending  VolunteerStatus = "pending"
	VolunteerApproved VolunteerStatus = "approved"
	VolunteerRejected VolunteerStatus = "rejected"
)

var ErrMessageNotFound = errors.New("contact message not found")
var ErrVolunteerNotFound = errors.New("volunteer application not found")

func (s MessageStatus) Valid() bool {
	return s == MessageUnread || s == MessageRead || s == MessageResponded
}

func (s VolunteerStatus) Valid() bool {
	return s == VolunteerPending || s == VolunteerApproved || s == VolunteerRejected
}

// ContactMessage is a public contact form submission. New rows always start
// in the unread state.
type ContactMessage struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Email       string        `json:"email"`
	Subject     string        `json:"subject"`
	Message     string        `json:"message"`
	Status      MessageStatus `json:"status"`
	RespondedBy string        `json:"responded_by,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// Volunteer is a public volunteer sign-up. New rows always start pending
// until a staff member approves or rejects them.
type Volunteer struct {
	ID           string          `json:"id"`
	FirstName    string          `json:"first_name"`
	LastName     string          `json:"last_name"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone"`
	Interests    []string        `json:"interests"`
	Availability string          `json:"availability"`
	Message      string          `json:"message,omitempty"`
	Status       VolunteerStatus `json:"status"`
	ApprovedBy   string          `json:"approved_by,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
