package domain

import (
	"errors"
	"time"
)

// Role is the application-level authorization level of a user.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
	RoleUser     Role = "user"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrProfileNotFound = errors.New("profile not found")
var ErrForbidden = errors.New("access forbidden")

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleEmployee || r == RoleUser
}

// Satisfies reports whether a user holding role r passes a gate that requires
// the given role. Admin satisfies every gate; any other role only its own.
func (r Role) Satisfies(required Role) bool {
	return r == RoleAdmin || r == required
}

// User is the resolved application identity: the profile row linked 1:1 to an
// auth credential, including the role consulted by the access gate.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Phone        string    `json:"phone,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

func (u *User) IsEmployeeOrAbove() bool {
	return u != nil && (u.Role == RoleAdmin || u.Role == RoleEmployee)
}
