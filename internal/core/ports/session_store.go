package ports

import (
	"context"
	"time"

	"github.com/mosadie/charity-api/internal/core/domain"
)

// SessionStore holds active sessions. Expiry is passive: records vanish when
// their TTL lapses, and the application never refreshes them.
type SessionStore interface {
	Create(ctx context.Context, session *domain.Session, ttl time.Duration) error
	// Find returns the session or domain.ErrSessionNotFound.
	Find(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}
