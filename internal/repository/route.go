package repository

import (
	"context"

	"kamerways/internal/domain"
)

// RouteFilter narrows route listings. Zero-value fields are ignored.
type RouteFilter struct {
	Origin      string
	Destination string
	Date        string
	AgencyID    string
}

// RouteRepository defines the persistence operations for routes.
type RouteRepository interface {
	// Create persists a new route.
	Create(ctx context.Context, route *domain.Route) error

	// GetByID retrieves a route by ID.
	GetByID(ctx context.Context, id string) (*domain.Route, error)

	// List retrieves routes matching the filter.
	List(ctx context.Context, filter RouteFilter) ([]*domain.Route, error)

	// Update updates an existing route.
	Update(ctx context.Context, route *domain.Route) error

	// Delete removes a route.
	Delete(ctx context.Context, id string) error

	// ReserveSeats decrements available seats by count, failing if
	// fewer than count seats remain.
	ReserveSeats(ctx context.Context, id string, count int) error

	// ReleaseSeats returns count seats reserved by a booking attempt
	// that did not complete. Never raises availability past total seats.
	ReleaseSeats(ctx context.Context, id string, count int) error
}
