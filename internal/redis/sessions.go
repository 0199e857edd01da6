package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"kamerways/internal/domain"
)

// SessionTTL matches the front end's persisted-login lifetime.
const SessionTTL = 7 * 24 * time.Hour

const sessionPrefix = "auth:session:"

// SessionStore maps opaque login tokens to their users. Tokens are
// never re-validated after issue; lookup by existence is the only check.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore creates a new SessionStore.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// Save persists a session under its token.
func (s *SessionStore) Save(ctx context.Context, session *domain.Session) error {
	data, err := json.Marshal(session.User)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionPrefix+session.Token, data, SessionTTL).Err()
}

// Get restores the user for a token. An unknown token returns nil, nil.
func (s *SessionStore) Get(ctx context.Context, token string) (*domain.User, error) {
	data, err := s.client.Get(ctx, sessionPrefix+token).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var user domain.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Delete removes a session. Idempotent: deleting an absent token is
// not an error, so logging out twice leaves the same empty state.
func (s *SessionStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, sessionPrefix+token).Err()
}
