package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"kamerways/internal/domain"
	"kamerways/internal/repository"
)

// Cache TTL constants
const (
	RouteListCacheTTL = 30 * time.Second // listings change as seats sell
	AgencyCacheTTL    = 5 * time.Minute  // agency records change rarely
)

// Key prefixes
const (
	routeListPrefix = "cache:routes:"
	agencyPrefix    = "cache:agency:"
)

// CacheStore handles read-side caching of route listings and agencies.
type CacheStore struct {
	client *redis.Client
}

// NewCacheStore creates a new CacheStore.
func NewCacheStore(client *redis.Client) *CacheStore {
	return &CacheStore{client: client}
}

func routeListKey(filter repository.RouteFilter) string {
	return routeListPrefix + filter.Origin + "|" + filter.Destination + "|" + filter.Date + "|" + filter.AgencyID
}

// GetRouteList retrieves a cached route listing for a filter.
// A cache miss returns nil, nil.
func (s *CacheStore) GetRouteList(ctx context.Context, filter repository.RouteFilter) ([]*domain.Route, error) {
	data, err := s.client.Get(ctx, routeListKey(filter)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var routes []*domain.Route
	if err := json.Unmarshal(data, &routes); err != nil {
		return nil, err
	}
	return routes, nil
}

// SetRouteList stores a route listing for a filter.
func (s *CacheStore) SetRouteList(ctx context.Context, filter repository.RouteFilter, routes []*domain.Route) error {
	data, err := json.Marshal(routes)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, routeListKey(filter), data, RouteListCacheTTL).Err()
}

// InvalidateRouteLists drops every cached listing. Called after admin
// route mutations. Seat counts changed by bookings surface once the
// listing TTL lapses.
func (s *CacheStore) InvalidateRouteLists(ctx context.Context) error {
	iter := s.client.Scan(ctx, 0, routeListPrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return s.client.Del(ctx, keys...).Err()
}

// GetAgency retrieves an agency from cache. A miss returns nil, nil.
func (s *CacheStore) GetAgency(ctx context.Context, id string) (*domain.Agency, error) {
	data, err := s.client.Get(ctx, agencyPrefix+id).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var agency domain.Agency
	if err := json.Unmarshal(data, &agency); err != nil {
		return nil, err
	}
	return &agency, nil
}

// SetAgency stores an agency in cache.
func (s *CacheStore) SetAgency(ctx context.Context, agency *domain.Agency) error {
	data, err := json.Marshal(agency)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, agencyPrefix+agency.ID, data, AgencyCacheTTL).Err()
}

// InvalidateAgency removes an agency from cache.
func (s *CacheStore) InvalidateAgency(ctx context.Context, id string) error {
	return s.client.Del(ctx, agencyPrefix+id).Err()
}
