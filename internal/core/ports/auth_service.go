package ports

import (
	"context"

	"github.com/mosadie/charity-api/internal/core/domain"
)

// AuthService implements sign-in, sign-out, and session-to-identity
// resolution.
type AuthService interface {
	// SignIn checks the credentials, opens a session, and resolves the
	// identity. An authenticated credential whose profile row cannot be
	// resolved fails the whole sign-in (domain.ErrProfileNotFound).
	SignIn(ctx context.Context, email, password string) (string, *domain.User, error)
	// SignOut invalidates the session. It never fails from the caller's
	// perspective; store errors are logged and swallowed.
	SignOut(ctx context.Context, sessionID string) error
	// ResolveIdentity maps a session id to its identity. Any failure —
	// missing session, missing profile row, store error — yields nil,
	// treated by all callers as "not signed in".
	ResolveIdentity(ctx context.Context, sessionID string) *domain.User
}
