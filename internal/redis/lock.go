package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LockStore handles distributed locking in Redis.
type LockStore struct {
	client *redis.Client
}

// NewLockStore creates a new LockStore.
func NewLockStore(client *redis.Client) *LockStore {
	return &LockStore{client: client}
}

// AcquireSubmitLock attempts to take the single-submission lock for a
// wizard session. Returns true if acquired, false if a submission is
// already in flight.
func (s *LockStore) AcquireSubmitLock(ctx context.Context, sessionID string, ttl time.Duration) (bool, error) {
	key := fmt.Sprintf("lock:submit:%s", sessionID)

	ok, err := s.client.SetNX(ctx, key, "1", ttl).Result()
	if err != nil {
		return false, err
	}

	return ok, nil
}

// ReleaseSubmitLock releases the submission lock for a wizard session.
func (s *LockStore) ReleaseSubmitLock(ctx context.Context, sessionID string) error {
	key := fmt.Sprintf("lock:submit:%s", sessionID)

	return s.client.Del(ctx, key).Err()
}
