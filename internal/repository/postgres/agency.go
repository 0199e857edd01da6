package postgres

import (
	"context"
	"database/sql"
	"errors"

	"kamerways/internal/domain"
	"kamerways/internal/repository"
)

// AgencyRepository is a PostgreSQL implementation of repository.AgencyRepository.
type AgencyRepository struct {
	q Querier
}

// NewAgencyRepository creates a new PostgreSQL agency repository.
func NewAgencyRepository(db *sql.DB) *AgencyRepository {
	return &AgencyRepository{q: db}
}

// Create persists a new agency.
func (r *AgencyRepository) Create(ctx context.Context, agency *domain.Agency) error {
	query := `
		INSERT INTO agencies (id, name, description, phone, email, city, rating, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.q.ExecContext(ctx, query,
		agency.ID,
		agency.Name,
		agency.Description,
		agency.Phone,
		agency.Email,
		agency.City,
		agency.Rating,
		agency.CreatedAt,
	)
	return err
}

// GetByID retrieves an agency by ID, with its current route count.
func (r *AgencyRepository) GetByID(ctx context.Context, id string) (*domain.Agency, error) {
	query := `
		SELECT a.id, a.name, a.description, a.phone, a.email, a.city, a.rating, a.created_at,
		       (SELECT COUNT(*) FROM routes r WHERE r.agency_id = a.id)
		FROM agencies a WHERE a.id = $1
	`

	var agency domain.Agency
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&agency.ID,
		&agency.Name,
		&agency.Description,
		&agency.Phone,
		&agency.Email,
		&agency.City,
		&agency.Rating,
		&agency.CreatedAt,
		&agency.RouteCount,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &agency, nil
}

// GetAll retrieves all agencies with route counts.
func (r *AgencyRepository) GetAll(ctx context.Context) ([]*domain.Agency, error) {
	query := `
		SELECT a.id, a.name, a.description, a.phone, a.email, a.city, a.rating, a.created_at,
		       (SELECT COUNT(*) FROM routes r WHERE r.agency_id = a.id)
		FROM agencies a ORDER BY a.name
	`

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var agencies []*domain.Agency
	for rows.Next() {
		var agency domain.Agency
		if err := rows.Scan(
			&agency.ID,
			&agency.Name,
			&agency.Description,
			&agency.Phone,
			&agency.Email,
			&agency.City,
			&agency.Rating,
			&agency.CreatedAt,
			&agency.RouteCount,
		); err != nil {
			return nil, err
		}
		agencies = append(agencies, &agency)
	}
	return agencies, rows.Err()
}

// Update updates an existing agency.
func (r *AgencyRepository) Update(ctx context.Context, agency *domain.Agency) error {
	query := `
		UPDATE agencies
		SET name = $1, description = $2, phone = $3, email = $4, city = $5, rating = $6
		WHERE id = $7
	`
	result, err := r.q.ExecContext(ctx, query,
		agency.Name,
		agency.Description,
		agency.Phone,
		agency.Email,
		agency.City,
		agency.Rating,
		agency.ID,
	)
	if err != nil {
		return err
	}
	return requireRow(result)
}

// Delete removes an agency.
func (r *AgencyRepository) Delete(ctx context.Context, id string) error {
	result, err := r.q.ExecContext(ctx, `DELETE FROM agencies WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(result)
}
