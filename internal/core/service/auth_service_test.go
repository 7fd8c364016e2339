package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/mosadie/charity-api/internal/core/domain"
	"github.com/mosadie/charity-api/internal/core/ports"
)

type stubUserRepo struct {
	byID    map[string]*domain.User
	byEmail map[string]*domain.User

	findByIDErr error
	updateFn    func(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error)
	deleteErr   error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		byID:    make(map[string]*domain.User),
		byEmail: make(map[string]*domain.User),
	}
}

func (r *stubUserRepo) add(u *domain.User) {
	r.byID[u.ID] = u
	r.byEmail[u.Email] = u
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if r.findByIDErr != nil {
		return nil, r.findByIDErr
	}
	if u, ok := r.byID[id]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := r.byEmail[email]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.byEmail[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	clone := *user
	r.add(&clone)
	out := clone
	return &out, nil
}

func (r *stubUserRepo) Update(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
	if r.updateFn != nil {
		return r.updateFn(ctx, id, input)
	}
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if input.FirstName != nil {
		u.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		u.LastName = *input.LastName
	}
	if input.Phone != nil {
		u.Phone = *input.Phone
	}
	if input.Role != nil {
		u.Role = *input.Role
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	u, ok := r.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	delete(r.byID, id)
	delete(r.byEmail, u.Email)
	return nil
}

func (r *stubUserRepo) ListByRoles(_ context.Context, roles ...domain.Role) ([]*domain.User, error) {
	var out []*domain.User
	for _, u := range r.byID {
		for _, role := range roles {
			if u.Role == role {
				clone := *u
				out = append(out, &clone)
				break
			}
		}
	}
	return out, nil
}

type stubSessionStore struct {
	sessions  map[string]*domain.Session
	createErr error
	deleteErr error
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]*domain.Session)}
}

func (s *stubSessionStore) Create(_ context.Context, session *domain.Session, _ time.Duration) error {
	if s.createErr != nil {
		return s.createErr
	}
	clone := *session
	s.sessions[session.ID] = &clone
	return nil
}

func (s *stubSessionStore) Find(_ context.Context, id string) (*domain.Session, error) {
	if sess, ok := s.sessions[id]; ok {
		clone := *sess
		return &clone, nil
	}
	return nil, domain.ErrSessionNotFound
}

func (s *stubSessionStore) Delete(_ context.Context, id string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	delete(s.sessions, id)
	return nil
}

func seedUser(t *testing.T, repo *stubUserRepo, email, password string, role domain.Role) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	u := &domain.User{
		ID:           "user_" + email,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		FirstName:    "Test",
		LastName:     "User",
	}
	repo.add(u)
	return u
}

func TestAuthService_SignIn_Success(t *testing.T) {
	repo := newStubUserRepo()
	sessions := newStubSessionStore()
	seedUser(t, repo, "alice@example.com", "s3cret", domain.RoleAdmin)

	svc := NewAuthService(repo, sessions, "secret", time.Hour, zerolog.Nop())

	token, user, err := svc.SignIn(context.Background(), "alice@example.com", "s3cret")
	if err != nil {
		t.Fatalf("SignIn returned error: %v", err)
	}
	if user == nil || user.Role != domain.RoleAdmin {
		t.Fatalf("unexpected user: %+v", user)
	}
	if len(sessions.sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(sessions.sessions))
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not parse: %v", err)
	}
	sid, _ := claims["sid"].(string)
	if _, ok := sessions.sessions[sid]; !ok {
		t.Fatalf("token sid %q does not match a stored session", sid)
	}
	if sub, _ := claims["sub"].(string); sub != user.ID {
		t.Fatalf("token sub = %q, want %q", sub, user.ID)
	}
}

func TestAuthService_SignIn_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	sessions := newStubSessionStore()
	seedUser(t, repo, "alice@example.com", "s3cret", domain.RoleUser)

	svc := NewAuthService(repo, sessions, "secret", time.Hour, zerolog.Nop())

	if _, _, err := svc.SignIn(context.Background(), "alice@example.com", "nope"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if len(sessions.sessions) != 0 {
		t.Fatalf("no session should remain after failed sign-in")
	}
}

func TestAuthService_SignIn_UnknownEmail(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), newStubSessionStore(), "secret", time.Hour, zerolog.Nop())

	// An unknown email must be indistinguishable from a wrong password.
	if _, _, err := svc.SignIn(context.Background(), "ghost@example.com", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_SignIn_UnresolvableProfileFails(t *testing.T) {
	repo := newStubUserRepo()
	sessions := newStubSessionStore()
	seedUser(t, repo, "bob@example.com", "pass1234", domain.RoleEmployee)

	// Credential check passes, but the profile lookup that follows does not.
	repo.findByIDErr = errors.New("profile table unreachable")

	svc := NewAuthService(repo, sessions, "secret", time.Hour, zerolog.Nop())

	_, _, err := svc.SignIn(context.Background(), "bob@example.com", "pass1234")
	if !errors.Is(err, domain.ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
	if len(sessions.sessions) != 0 {
		t.Fatalf("session must be discarded when the profile cannot be resolved")
	}
}

func TestAuthService_SignOut_SwallowsStoreFailure(t *testing.T) {
	sessions := newStubSessionStore()
	sessions.deleteErr = errors.New("redis down")

	svc := NewAuthService(newStubUserRepo(), sessions, "secret", time.Hour, zerolog.Nop())

	if err := svc.SignOut(context.Background(), "sess_1"); err != nil {
		t.Fatalf("SignOut must always succeed, got %v", err)
	}
}

func TestAuthService_ResolveIdentity_Success(t *testing.T) {
	repo := newStubUserRepo()
	sessions := newStubSessionStore()
	u := seedUser(t, repo, "carol@example.com", "pw", domain.RoleEmployee)
	sessions.sessions["sess_1"] = &domain.Session{ID: "sess_1", UserID: u.ID, Email: u.Email}

	svc := NewAuthService(repo, sessions, "secret", time.Hour, zerolog.Nop())

	identity := svc.ResolveIdentity(context.Background(), "sess_1")
	if identity == nil || identity.ID != u.ID {
		t.Fatalf("unexpected identity: %+v", identity)
	}
}

func TestAuthService_ResolveIdentity_FailOpen(t *testing.T) {
	repo := newStubUserRepo()
	sessions := newStubSessionStore()
	sessions.sessions["sess_orphan"] = &domain.Session{ID: "sess_orphan", UserID: "gone"}

	svc := NewAuthService(repo, sessions, "secret", time.Hour, zerolog.Nop())

	if got := svc.ResolveIdentity(context.Background(), ""); got != nil {
		t.Fatalf("empty session id must resolve to nil, got %+v", got)
	}
	if got := svc.ResolveIdentity(context.Background(), "sess_unknown"); got != nil {
		t.Fatalf("unknown session must resolve to nil, got %+v", got)
	}
	// Session exists but the profile row does not: still anonymous, no error.
	if got := svc.ResolveIdentity(context.Background(), "sess_orphan"); got != nil {
		t.Fatalf("orphaned session must resolve to nil, got %+v", got)
	}
}
