package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"kamerways/internal/domain"
	"kamerways/internal/repository"
)

// RouteRepository is a PostgreSQL implementation of repository.RouteRepository.
type RouteRepository struct {
	q Querier
}

// NewRouteRepository creates a new PostgreSQL route repository.
func NewRouteRepository(db *sql.DB) *RouteRepository {
	return &RouteRepository{q: db}
}

// NewRouteRepositoryWithTx creates a route repository using a transaction.
func NewRouteRepositoryWithTx(tx *sql.Tx) *RouteRepository {
	return &RouteRepository{q: tx}
}

const routeColumns = `id, agency_id, origin, destination, departure_time, arrival_time, duration, price, bus_type, amenities, available_seats, total_seats, travel_date, created_at`

// Create persists a new route.
func (r *RouteRepository) Create(ctx context.Context, route *domain.Route) error {
	query := `
		INSERT INTO routes (` + routeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err := r.q.ExecContext(ctx, query,
		route.ID,
		route.AgencyID,
		route.Origin,
		route.Destination,
		route.DepartureTime,
		route.ArrivalTime,
		route.Duration,
		route.Price,
		route.BusType,
		pq.Array(route.Amenities),
		route.AvailableSeats,
		route.TotalSeats,
		route.Date,
		route.CreatedAt,
	)
	return err
}

func scanRoute(scan func(dest ...any) error) (*domain.Route, error) {
	var route domain.Route
	var amenities pq.StringArray
	err := scan(
		&route.ID,
		&route.AgencyID,
		&route.Origin,
		&route.Destination,
		&route.DepartureTime,
		&route.ArrivalTime,
		&route.Duration,
		&route.Price,
		&route.BusType,
		&amenities,
		&route.AvailableSeats,
		&route.TotalSeats,
		&route.Date,
		&route.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	route.Amenities = amenities
	return &route, nil
}

// GetByID retrieves a route by ID.
func (r *RouteRepository) GetByID(ctx context.Context, id string) (*domain.Route, error) {
	query := `SELECT ` + routeColumns + ` FROM routes WHERE id = $1`

	route, err := scanRoute(r.q.QueryRowContext(ctx, query, id).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return route, nil
}

// List retrieves routes matching the filter. Zero-value filter fields
// are ignored.
func (r *RouteRepository) List(ctx context.Context, filter repository.RouteFilter) ([]*domain.Route, error) {
	query := `
		SELECT ` + routeColumns + ` FROM routes
		WHERE ($1 = '' OR origin = $1)
		  AND ($2 = '' OR destination = $2)
		  AND ($3 = '' OR travel_date = $3)
		  AND ($4 = '' OR agency_id = $4)
		ORDER BY travel_date, departure_time
		LIMIT 200
	`

	rows, err := r.q.QueryContext(ctx, query, filter.Origin, filter.Destination, filter.Date, filter.AgencyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var routes []*domain.Route
	for rows.Next() {
		route, err := scanRoute(rows.Scan)
		if err != nil {
			return nil, err
		}
		routes = append(routes, route)
	}
	return routes, rows.Err()
}

// Update updates an existing route.
func (r *RouteRepository) Update(ctx context.Context, route *domain.Route) error {
	query := `
		UPDATE routes
		SET agency_id = $1, origin = $2, destination = $3, departure_time = $4, arrival_time = $5, duration = $6, price = $7, bus_type = $8, amenities = $9, available_seats = $10, total_seats = $11, travel_date = $12
		WHERE id = $13
	`
	result, err := r.q.ExecContext(ctx, query,
		route.AgencyID,
		route.Origin,
		route.Destination,
		route.DepartureTime,
		route.ArrivalTime,
		route.Duration,
		route.Price,
		route.BusType,
		pq.Array(route.Amenities),
		route.AvailableSeats,
		route.TotalSeats,
		route.Date,
		route.ID,
	)
	if err != nil {
		return err
	}
	return requireRow(result)
}

// Delete removes a route.
func (r *RouteRepository) Delete(ctx context.Context, id string) error {
	result, err := r.q.ExecContext(ctx, `DELETE FROM routes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(result)
}

// ReserveSeats decrements available seats by count. The WHERE clause
// keeps the decrement from going below zero.
func (r *RouteRepository) ReserveSeats(ctx context.Context, id string, count int) error {
	query := `
		UPDATE routes
		SET available_seats = available_seats - $1
		WHERE id = $2 AND available_seats >= $1
	`
	result, err := r.q.ExecContext(ctx, query, count, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// ReleaseSeats returns seats held by a booking attempt that failed
// after reservation. The WHERE clause keeps availability from
// exceeding the bus capacity.
func (r *RouteRepository) ReleaseSeats(ctx context.Context, id string, count int) error {
	query := `
		UPDATE routes
		SET available_seats = available_seats + $1
		WHERE id = $2 AND available_seats + $1 <= total_seats
	`
	result, err := r.q.ExecContext(ctx, query, count, id)
	if err != nil {
		return err
	}
	return requireRow(result)
}
