package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"kamerways/internal/domain"
)

// Fixed storage keys, mirroring the browser's localStorage keys.
const (
	prefPrefix     = "pref:"
	snapshotPrefix = "wizard:selected-route:"

	prefTTL     = 90 * 24 * time.Hour
	snapshotTTL = time.Hour
)

// Preferences holds the per-user presentation settings persisted across
// visits.
type Preferences struct {
	Language string `json:"language"`
	Theme    string `json:"theme"`
}

// PreferenceStore keeps language/theme preferences and the transient
// selected-route snapshot written just before entering the wizard.
type PreferenceStore struct {
	client *redis.Client
}

// NewPreferenceStore creates a new PreferenceStore.
func NewPreferenceStore(client *redis.Client) *PreferenceStore {
	return &PreferenceStore{client: client}
}

// SetPreferences stores a user's language and theme.
func (s *PreferenceStore) SetPreferences(ctx context.Context, userID string, prefs Preferences) error {
	data, err := json.Marshal(prefs)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, prefPrefix+userID, data, prefTTL).Err()
}

// GetPreferences retrieves a user's preferences. Missing preferences
// default to English and light theme.
func (s *PreferenceStore) GetPreferences(ctx context.Context, userID string) (Preferences, error) {
	prefs := Preferences{Language: "en", Theme: "light"}

	data, err := s.client.Get(ctx, prefPrefix+userID).Bytes()
	if err != nil {
		if err == redis.Nil {
			return prefs, nil
		}
		return prefs, err
	}
	if err := json.Unmarshal(data, &prefs); err != nil {
		return prefs, err
	}
	return prefs, nil
}

// SetRouteSnapshot writes the transient selected-route snapshot taken
// before navigating into the wizard.
func (s *PreferenceStore) SetRouteSnapshot(ctx context.Context, userID string, route *domain.Route) error {
	data, err := json.Marshal(route)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, snapshotPrefix+userID, data, snapshotTTL).Err()
}

// GetRouteSnapshot reads back the selected-route snapshot, or nil when
// none was written.
func (s *PreferenceStore) GetRouteSnapshot(ctx context.Context, userID string) (*domain.Route, error) {
	data, err := s.client.Get(ctx, snapshotPrefix+userID).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var route domain.Route
	if err := json.Unmarshal(data, &route); err != nil {
		return nil, err
	}
	return &route, nil
}
