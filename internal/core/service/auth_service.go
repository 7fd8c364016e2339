package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/mosadie/charity-api/internal/core/domain"
	"github.com/mosadie/charity-api/internal/core/ports"
)

// AuthService implements sign-in, sign-out, and identity resolution against
// the user table and the session store.
type AuthService struct {
	users      ports.UserRepository
	sessions   ports.SessionStore
	jwtSecret  string
	sessionTTL time.Duration
	log        zerolog.Logger
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionStore, jwtSecret string, sessionTTL time.Duration, log zerolog.Logger) *AuthService {
	if sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
	}
	return &AuthService{
		users:      users,
		sessions:   sessions,
		jwtSecret:  jwtSecret,
		sessionTTL: sessionTTL,
		log:        log,
	}
}

// SignIn performs the direct credential check and opens a session. If the
// credential authenticates but the profile row cannot be resolved, the whole
// sign-in fails and the session is discarded: an authenticated-but-
// unresolvable account is an error here, never a silent anonymous state.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		// An unknown email reads the same as a wrong password so that the
		// response never confirms whether an account exists.
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	session := &domain.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Email:     user.Email,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.sessions.Create(ctx, session, s.sessionTTL); err != nil {
		return "", nil, err
	}

	identity, err := s.users.FindByID(ctx, session.UserID)
	if err != nil {
		if delErr := s.sessions.Delete(ctx, session.ID); delErr != nil {
			s.log.Warn().Err(delErr).Str("session_id", session.ID).Msg("failed to discard session after resolution failure")
		}
		s.log.Error().Err(err).Str("user_id", session.UserID).Msg("sign-in resolved no profile")
		return "", nil, domain.ErrProfileNotFound
	}

	token, err := s.generateToken(session)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("user_id", identity.ID).Str("role", string(identity.Role)).Msg("user signed in")
	return token, identity, nil
}

// SignOut invalidates the session in the store. The local outcome is always
// success: a store failure is logged and swallowed so that logging out never
// appears to fail.
func (s *AuthService) SignOut(ctx context.Context, sessionID string) error {
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		s.log.Warn().Err(err).Str("session_id", sessionID).Msg("session invalidation failed, clearing locally anyway")
	}
	return nil
}

// ResolveIdentity maps a session id to its identity. Every failure path —
// expired or unknown session, missing profile row, store error — yields nil,
// which callers treat exactly like "not signed in".
func (s *AuthService) ResolveIdentity(ctx context.Context, sessionID string) *domain.User {
	if sessionID == "" {
		return nil
	}

	session, err := s.sessions.Find(ctx, sessionID)
	if err != nil {
		return nil
	}

	user, err := s.users.FindByID(ctx, session.UserID)
	if err != nil {
		return nil
	}
	return user
}

func (s *AuthService) generateToken(session *domain.Session) (string, error) {
	claims := jwt.MapClaims{
		"sid": session.ID,
		"sub": session.UserID,
		"exp": time.Now().Add(s.sessionTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
