package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/causeway/backend/domain"
)

type fakeUserRepo struct {
	users map[string]*domain.User
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

type fakeSessionRepo struct {
	sessions map[string]*domain.Session
	extended map[string]int
	saveErr  error
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{
		sessions: make(map[string]*domain.Session),
		extended: make(map[string]int),
	}
}

func (f *fakeSessionRepo) Get(ctx context.Context, id string) (*domain.Session, error) {
	s, ok := f.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return s, nil
}

func (f *fakeSessionRepo) Save(ctx context.Context, session *domain.Session) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.sessions[session.ID] = session
	return nil
}

func (f *fakeSessionRepo) Delete(ctx context.Context, id string) error {
	delete(f.sessions, id)
	return nil
}

func (f *fakeSessionRepo) Extend(ctx context.Context, id string, ttlSeconds int) error {
	f.extended[id] = ttlSeconds
	return nil
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	return string(hash)
}

func TestLoginSuccess(t *testing.T) {
	users := &fakeUserRepo{users: map[string]*domain.User{
		"admin@ngo.org": {
			ID:           "user-1",
			Email:        "admin@ngo.org",
			PasswordHash: hashPassword(t, "s3cret"),
			Role:         "admin",
		},
	}}
	sessions := newFakeSessionRepo()
	uc := New(users, sessions, "test-secret", "ngo-backend", nil)

	creds, err := uc.Login(context.Background(), "admin@ngo.org", "s3cret", time.Hour)
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if creds.Token == "" {
		t.Fatalf("expected a signed token")
	}
	if _, ok := sessions.sessions[creds.Session.ID]; !ok {
		t.Fatalf("expected session persisted")
	}

	parsed, err := jwt.Parse(creds.Token, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
	claims := parsed.Claims.(jwt.MapClaims)
	if claims["user_id"] != "user-1" {
		t.Fatalf("expected user_id claim, got %v", claims["user_id"])
	}
	if claims["session_id"] != creds.Session.ID {
		t.Fatalf("expected session_id claim to match the stored session")
	}
	if claims["iss"] != "ngo-backend" {
		t.Fatalf("expected issuer claim, got %v", claims["iss"])
	}
}

func TestLoginWrongPassword(t *testing.T) {
	users := &fakeUserRepo{users: map[string]*domain.User{
		"admin@ngo.org": {
			ID:           "user-1",
			Email:        "admin@ngo.org",
			PasswordHash: hashPassword(t, "s3cret"),
		},
	}}
	sessions := newFakeSessionRepo()
	uc := New(users, sessions, "test-secret", "ngo-backend", nil)

	_, err := uc.Login(context.Background(), "admin@ngo.org", "wrong", time.Hour)
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if len(sessions.sessions) != 0 {
		t.Fatalf("expected no session for a failed login")
	}
}

func TestLoginUnknownEmailIsUnauthorized(t *testing.T) {
	users := &fakeUserRepo{users: map[string]*domain.User{}}
	uc := New(users, newFakeSessionRepo(), "test-secret", "ngo-backend", nil)

	_, err := uc.Login(context.Background(), "nobody@ngo.org", "s3cret", time.Hour)
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected unauthorized for unknown email, got %v", err)
	}
}

func TestRefreshExtendsSession(t *testing.T) {
	sessions := newFakeSessionRepo()
	sessions.sessions["sess-1"] = &domain.Session{
		ID:        "sess-1",
		UserID:    "user-1",
		CreatedAt: time.Now().Add(-time.Minute),
		ExpiresAt: time.Now().Add(time.Minute),
	}
	uc := New(&fakeUserRepo{}, sessions, "test-secret", "ngo-backend", nil)

	creds, err := uc.Refresh(context.Background(), "sess-1", time.Hour)
	if err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if creds.Token == "" {
		t.Fatalf("expected a fresh token")
	}
	if sessions.extended["sess-1"] != int(time.Hour.Seconds()) {
		t.Fatalf("expected session TTL extended to 3600s, got %d", sessions.extended["sess-1"])
	}
}

func TestRefreshExpiredSession(t *testing.T) {
	sessions := newFakeSessionRepo()
	sessions.sessions["sess-1"] = &domain.Session{
		ID:        "sess-1",
		UserID:    "user-1",
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	uc := New(&fakeUserRepo{}, sessions, "test-secret", "ngo-backend", nil)

	_, err := uc.Refresh(context.Background(), "sess-1", time.Hour)
	if !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected session not found for expired session, got %v", err)
	}
	if _, ok := sessions.sessions["sess-1"]; ok {
		t.Fatalf("expected expired session deleted")
	}
}

func TestRevoke(t *testing.T) {
	sessions := newFakeSessionRepo()
	sessions.sessions["sess-1"] = &domain.Session{ID: "sess-1"}
	uc := New(&fakeUserRepo{}, sessions, "test-secret", "ngo-backend", nil)

	if err := uc.Revoke(context.Background(), "sess-1"); err != nil {
		t.Fatalf("revoke failed: %v", err)
	}
	if _, ok := sessions.sessions["sess-1"]; ok {
		t.Fatalf("expected session removed")
	}
}
