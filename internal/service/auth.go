package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"kamerways/internal/domain"
	"kamerways/internal/redis"
)

// credentialRecord is one of the two fixed accounts the system knows.
// This is deliberately not a real authentication system: it exists to
// gate the admin and customer views, nothing more.
type credentialRecord struct {
	user         domain.User
	passwordHash string
}

// fixedCredentials holds exactly two records: the administrator and the
// demo customer. Password hashes are bcrypt.
var fixedCredentials = []credentialRecord{
	{
		user: domain.User{
			ID:    "user-admin",
			Name:  "KamerWays Admin",
			Email: "admin@kamerways.com",
			Phone: "+237670000000",
			Role:  domain.RoleAdmin,
		},
		passwordHash: "$2b$12$IapRQANDed/XLwB7vy9onuSwWsiLm3/6jfrz.m.qf.sbe9bGHeobu", // admin123
	},
	{
		user: domain.User{
			ID:    "user-customer",
			Name:  "John Doe",
			Email: "john.doe@email.com",
			Phone: "+237670000001",
			Role:  domain.RoleCustomer,
		},
		passwordHash: "$2b$12$JBkqFiNACuTwSMkF6ir0K.GDKk5xmWwY/aJiE9ZaQiJNCcF9.jdvW", // customer123
	},
}

// AuthService resolves logins against the fixed credential records and
// keeps issued sessions in the session store.
type AuthService struct {
	sessions redis.SessionStoreInterface
}

// NewAuthService creates a new AuthService.
func NewAuthService(sessions redis.SessionStoreInterface) *AuthService {
	return &AuthService{sessions: sessions}
}

// Login checks the email and password against the two fixed records.
// On a match it issues an opaque token and persists the session; on any
// mismatch it fails with ErrInvalidCredentials and changes no state.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	for _, record := range fixedCredentials {
		if record.user.Email != email {
			continue
		}
		if err := bcrypt.CompareHashAndPassword([]byte(record.passwordHash), []byte(password)); err != nil {
			return nil, ErrInvalidCredentials
		}

		user := record.user
		user.CreatedAt = time.Now()
		session := &domain.Session{
			Token: uuid.New().String(),
			User:  user,
		}
		if err := s.sessions.Save(ctx, session); err != nil {
			return nil, err
		}
		return session, nil
	}
	return nil, ErrInvalidCredentials
}

// Logout clears the session for a token unconditionally. Calling it
// twice leaves the same empty state both times.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

// Resolve restores the user for a token. The token is opaque: existence
// in the store is the only check performed.
func (s *AuthService) Resolve(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, ErrInvalidCredentials
	}
	user, err := s.sessions.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
