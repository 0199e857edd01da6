package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"kamerways/internal/domain"
	"kamerways/internal/redis"
	"kamerways/internal/repository"
)

// CatalogService serves agencies and routes, fronted by the read cache.
type CatalogService struct {
	routeRepo  repository.RouteRepository
	agencyRepo repository.AgencyRepository
	cache      *redis.CacheStore
}

// NewCatalogService creates a new CatalogService. The cache may be nil
// in demo mode.
func NewCatalogService(routeRepo repository.RouteRepository, agencyRepo repository.AgencyRepository, cache *redis.CacheStore) *CatalogService {
	return &CatalogService{
		routeRepo:  routeRepo,
		agencyRepo: agencyRepo,
		cache:      cache,
	}
}

// ListRoutes retrieves routes matching the filter, cache first.
func (s *CatalogService) ListRoutes(ctx context.Context, filter repository.RouteFilter) ([]*domain.Route, error) {
	if s.cache != nil {
		cached, err := s.cache.GetRouteList(ctx, filter)
		if err == nil && cached != nil {
			return cached, nil
		}
	}

	routes, err := s.routeRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.SetRouteList(ctx, filter, routes)
	}
	return routes, nil
}

// GetRoute retrieves one route.
func (s *CatalogService) GetRoute(ctx context.Context, id string) (*domain.Route, error) {
	if id == "" {
		return nil, ErrInvalidRouteID
	}
	return s.routeRepo.GetByID(ctx, id)
}

// CreateRoute persists a new route and drops stale listings.
func (s *CatalogService) CreateRoute(ctx context.Context, route *domain.Route) error {
	if route.Price <= 0 {
		return ErrInvalidPrice
	}
	if route.ID == "" {
		route.ID = uuid.New().String()
	}
	if route.CreatedAt.IsZero() {
		route.CreatedAt = time.Now()
	}
	if route.AvailableSeats == 0 {
		route.AvailableSeats = route.TotalSeats
	}
	if err := s.routeRepo.Create(ctx, route); err != nil {
		return err
	}
	s.invalidateRoutes(ctx)
	return nil
}

// UpdateRoute updates a route and drops stale listings.
func (s *CatalogService) UpdateRoute(ctx context.Context, route *domain.Route) error {
	if route.ID == "" {
		return ErrInvalidRouteID
	}
	if route.Price <= 0 {
		return ErrInvalidPrice
	}
	if err := s.routeRepo.Update(ctx, route); err != nil {
		return err
	}
	s.invalidateRoutes(ctx)
	return nil
}

// DeleteRoute removes a route and drops stale listings.
func (s *CatalogService) DeleteRoute(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidRouteID
	}
	if err := s.routeRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateRoutes(ctx)
	return nil
}

// ListAgencies retrieves all agencies.
func (s *CatalogService) ListAgencies(ctx context.Context) ([]*domain.Agency, error) {
	return s.agencyRepo.GetAll(ctx)
}

// GetAgency retrieves one agency, cache first.
func (s *CatalogService) GetAgency(ctx context.Context, id string) (*domain.Agency, error) {
	if id == "" {
		return nil, ErrInvalidAgencyID
	}

	if s.cache != nil {
		cached, err := s.cache.GetAgency(ctx, id)
		if err == nil && cached != nil {
			return cached, nil
		}
	}

	agency, err := s.agencyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.SetAgency(ctx, agency)
	}
	return agency, nil
}

// CreateAgency persists a new agency.
func (s *CatalogService) CreateAgency(ctx context.Context, agency *domain.Agency) error {
	if agency.ID == "" {
		agency.ID = uuid.New().String()
	}
	if agency.CreatedAt.IsZero() {
		agency.CreatedAt = time.Now()
	}
	return s.agencyRepo.Create(ctx, agency)
}

// UpdateAgency updates an agency and invalidates its cache entry.
func (s *CatalogService) UpdateAgency(ctx context.Context, agency *domain.Agency) error {
	if agency.ID == "" {
		return ErrInvalidAgencyID
	}
	if err := s.agencyRepo.Update(ctx, agency); err != nil {
		return err
	}
	if s.cache != nil {
		_ = s.cache.InvalidateAgency(ctx, agency.ID)
	}
	return nil
}

// DeleteAgency removes an agency and invalidates its cache entry.
func (s *CatalogService) DeleteAgency(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidAgencyID
	}
	if err := s.agencyRepo.Delete(ctx, id); err != nil {
		return err
	}
	if s.cache != nil {
		_ = s.cache.InvalidateAgency(ctx, id)
	}
	return nil
}

func (s *CatalogService) invalidateRoutes(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.InvalidateRouteLists(ctx)
	}
}
