package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"kamerways/internal/wizard"
)

// DraftTTL bounds how long an abandoned wizard session survives.
const DraftTTL = 30 * time.Minute

const draftPrefix = "wizard:draft:"

// DraftStore persists in-progress wizard sessions in Redis so a booking
// draft survives page reloads but is discarded after submission.
type DraftStore struct {
	client *redis.Client
}

// NewDraftStore creates a new DraftStore.
func NewDraftStore(client *redis.Client) *DraftStore {
	return &DraftStore{client: client}
}

// Save stores the session under its ID, refreshing the TTL.
func (s *DraftStore) Save(ctx context.Context, session *wizard.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, draftPrefix+session.ID, data, DraftTTL).Err()
}

// Get retrieves a session by ID. A missing session returns nil, nil.
func (s *DraftStore) Get(ctx context.Context, id string) (*wizard.Session, error) {
	data, err := s.client.Get(ctx, draftPrefix+id).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var session wizard.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Delete discards a session. Deleting a missing session is a no-op.
func (s *DraftStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, draftPrefix+id).Err()
}
