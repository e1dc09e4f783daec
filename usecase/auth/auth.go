package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/causeway/backend/domain"
	"github.com/causeway/backend/repository"
)

type UseCase struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	secret   []byte
	issuer   string
	logger   *zap.Logger
}

// Credentials is the result of a successful login.
type Credentials struct {
	Token   string          `json:"token"`
	Session *domain.Session `json:"session"`
}

func New(users repository.UserRepository, sessions repository.SessionRepository, secret, issuer string, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		users:    users,
		sessions: sessions,
		secret:   []byte(secret),
		issuer:   issuer,
		logger:   logger,
	}
}

// Login verifies the password, stores a session and signs a token carrying the
// user and session ids. Unknown emails and bad passwords both come back as a
// plain unauthorized so the response does not reveal which one it was.
func (uc *UseCase) Login(ctx context.Context, email, password string, ttl time.Duration) (*Credentials, error) {
	user, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		if domain.IsDomainError(err, domain.ErrCodeNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	session := &domain.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(ttl),
	}
	if err := uc.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	token, err := uc.signToken(user.ID, session)
	if err != nil {
		return nil, err
	}
	return &Credentials{Token: token, Session: session}, nil
}

// Refresh extends an existing session and issues a fresh token.
func (uc *UseCase) Refresh(ctx context.Context, sessionID string, ttl time.Duration) (*Credentials, error) {
	session, err := uc.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.IsExpired(time.Now()) {
		_ = uc.sessions.Delete(ctx, sessionID)
		return nil, domain.ErrSessionNotFound
	}

	if err := uc.sessions.Extend(ctx, sessionID, int(ttl.Seconds())); err != nil {
		return nil, err
	}
	session.ExpiresAt = time.Now().Add(ttl)

	token, err := uc.signToken(session.UserID, session)
	if err != nil {
		return nil, err
	}
	return &Credentials{Token: token, Session: session}, nil
}

// Revoke deletes the session.
func (uc *UseCase) Revoke(ctx context.Context, sessionID string) error {
	return uc.sessions.Delete(ctx, sessionID)
}

func (uc *UseCase) signToken(userID string, session *domain.Session) (string, error) {
	claims := jwt.MapClaims{
		"user_id":    userID,
		"session_id": session.ID,
		"iss":        uc.issuer,
		"exp":        session.ExpiresAt.Unix(),
		"iat":        time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(uc.secret)
	if err != nil {
		return "", domain.WrapError(domain.ErrCodeInternal, "sign token", err)
	}
	return signed, nil
}
