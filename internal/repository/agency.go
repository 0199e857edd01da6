package repository

import (
	"context"

	"kamerways/internal/domain"
)

// AgencyRepository defines the persistence operations for agencies.
type AgencyRepository interface {
	// Create persists a new agency.
	Create(ctx context.Context, agency *domain.Agency) error

	// GetByID retrieves an agency by ID.
	GetByID(ctx context.Context, id string) (*domain.Agency, error)

	// GetAll retrieves all agencies.
	GetAll(ctx context.Context) ([]*domain.Agency, error)

	// Update updates an existing agency.
	Update(ctx context.Context, agency *domain.Agency) error

	// Delete removes an agency.
	Delete(ctx context.Context, id string) error
}
