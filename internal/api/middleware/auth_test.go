package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/mosadie/charity-api/internal/core/domain"
)

type stubResolver struct {
	identities map[string]*domain.User
}

func (s *stubResolver) SignIn(context.Context, string, string) (string, *domain.User, error) {
	panic("not used")
}

func (s *stubResolver) SignOut(context.Context, string) error {
	panic("not used")
}

func (s *stubResolver) ResolveIdentity(_ context.Context, sessionID string) *domain.User {
	return s.identities[sessionID]
}

func signToken(t *testing.T, secret, sid string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sid": sid,
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func runSession(t *testing.T, authHeader string, resolver *stubResolver) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := Session("secret", resolver)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(c)
	if err != nil {
		t.Fatalf("session middleware must never reject: %v", err)
	}
	return c
}

func TestSession_ResolvesIdentity(t *testing.T) {
	resolver := &stubResolver{identities: map[string]*domain.User{
		"sess_1": {ID: "u1", Role: domain.RoleEmployee},
	}}
	token := signToken(t, "secret", "sess_1")

	c := runSession(t, "Bearer "+token, resolver)

	if sid, _ := c.Get(ContextSessionID).(string); sid != "sess_1" {
		t.Fatalf("expected session id in context, got %q", sid)
	}
	identity := Identity(c)
	if identity == nil || identity.ID != "u1" {
		t.Fatalf("expected resolved identity, got %+v", identity)
	}
}

func TestSession_AnonymousPaths(t *testing.T) {
	resolver := &stubResolver{identities: map[string]*domain.User{}}

	cases := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"not bearer", "Basic abc123"},
		{"garbage token", "Bearer not.a.jwt"},
		{"wrong signature", "Bearer " + signToken(t, "other-secret", "sess_1")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := runSession(t, tc.header, resolver)
			if Identity(c) != nil {
				t.Fatalf("expected anonymous request")
			}
		})
	}
}

func TestSession_UnresolvableSessionStaysAnonymous(t *testing.T) {
	// Valid token for a session the store no longer has: the request
	// proceeds anonymously, but the sid stays available for logout.
	resolver := &stubResolver{identities: map[string]*domain.User{}}
	token := signToken(t, "secret", "sess_expired")

	c := runSession(t, "Bearer "+token, resolver)

	if Identity(c) != nil {
		t.Fatalf("expected anonymous request for expired session")
	}
	if sid, _ := c.Get(ContextSessionID).(string); sid != "sess_expired" {
		t.Fatalf("session id must still be recorded, got %q", sid)
	}
}

func TestSession_RejectsUnexpectedAlgorithm(t *testing.T) {
	resolver := &stubResolver{identities: map[string]*domain.User{
		"sess_1": {ID: "u1"},
	}}

	// Unsigned token claiming alg=none must never authenticate.
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sid": "sess_1",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	c := runSession(t, "Bearer "+unsigned, resolver)
	if Identity(c) != nil {
		t.Fatalf("alg=none token must stay anonymous")
	}
}
