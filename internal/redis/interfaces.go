package redis

import (
	"context"
	"time"

	"kamerways/internal/domain"
	"kamerways/internal/wizard"
)

// DraftStoreInterface defines the interface for wizard draft persistence.
type DraftStoreInterface interface {
	Save(ctx context.Context, session *wizard.Session) error
	Get(ctx context.Context, id string) (*wizard.Session, error)
	Delete(ctx context.Context, id string) error
}

// SessionStoreInterface defines the interface for login sessions.
type SessionStoreInterface interface {
	Save(ctx context.Context, session *domain.Session) error
	Get(ctx context.Context, token string) (*domain.User, error)
	Delete(ctx context.Context, token string) error
}

// LockStoreInterface defines the interface for submission locking.
type LockStoreInterface interface {
	AcquireSubmitLock(ctx context.Context, sessionID string, ttl time.Duration) (bool, error)
	ReleaseSubmitLock(ctx context.Context, sessionID string) error
}

// Ensure concrete types implement interfaces.
var (
	_ DraftStoreInterface   = (*DraftStore)(nil)
	_ SessionStoreInterface = (*SessionStore)(nil)
	_ LockStoreInterface    = (*LockStore)(nil)
)
