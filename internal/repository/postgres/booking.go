package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"kamerways/internal/domain"
	"kamerways/internal/repository"
)

// BookingRepository is a PostgreSQL implementation of repository.BookingRepository.
type BookingRepository struct {
	q Querier
}

// NewBookingRepository creates a new PostgreSQL booking repository.
func NewBookingRepository(db *sql.DB) *BookingRepository {
	return &BookingRepository{q: db}
}

// NewBookingRepositoryWithTx creates a booking repository using a transaction.
func NewBookingRepositoryWithTx(tx *sql.Tx) *BookingRepository {
	return &BookingRepository{q: tx}
}

const bookingColumns = `id, route_id, agency_id, user_id, passenger_name, passenger_email, passenger_phone, passenger_age, passenger_gender, passenger_id_number, seat_count, seat_labels, payment_method, momo_provider, momo_number, total_amount, status, payment_status, confirmation_code, created_at`

// Create persists a new booking.
func (r *BookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	query := `
		INSERT INTO bookings (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
	`

	var userID sql.NullString
	if booking.UserID != "" {
		userID = sql.NullString{String: booking.UserID, Valid: true}
	}
	var provider sql.NullString
	if booking.MobileMoneyProvider != "" {
		provider = sql.NullString{String: string(booking.MobileMoneyProvider), Valid: true}
	}
	var momoNumber sql.NullString
	if booking.MobileMoneyNumber != "" {
		momoNumber = sql.NullString{String: booking.MobileMoneyNumber, Valid: true}
	}

	_, err := r.q.ExecContext(ctx, query,
		booking.ID,
		booking.RouteID,
		booking.AgencyID,
		userID,
		booking.Passenger.Name,
		booking.Passenger.Email,
		booking.Passenger.Phone,
		booking.Passenger.Age,
		booking.Passenger.Gender,
		booking.Passenger.IDNumber,
		booking.SeatCount,
		pq.Array(booking.SeatLabels),
		booking.PaymentMethod,
		provider,
		momoNumber,
		booking.TotalAmount,
		booking.Status,
		booking.PaymentStatus,
		booking.ConfirmationCode,
		booking.CreatedAt,
	)
	return err
}

func scanBooking(scan func(dest ...any) error) (*domain.Booking, error) {
	var b domain.Booking
	var userID, provider, momoNumber sql.NullString
	var labels pq.StringArray

	err := scan(
		&b.ID,
		&b.RouteID,
		&b.AgencyID,
		&userID,
		&b.Passenger.Name,
		&b.Passenger.Email,
		&b.Passenger.Phone,
		&b.Passenger.Age,
		&b.Passenger.Gender,
		&b.Passenger.IDNumber,
		&b.SeatCount,
		&labels,
		&b.PaymentMethod,
		&provider,
		&momoNumber,
		&b.TotalAmount,
		&b.Status,
		&b.PaymentStatus,
		&b.ConfirmationCode,
		&b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.SeatLabels = labels
	if userID.Valid {
		b.UserID = userID.String
	}
	if provider.Valid {
		b.MobileMoneyProvider = domain.MobileMoneyProvider(provider.String)
	}
	if momoNumber.Valid {
		b.MobileMoneyNumber = momoNumber.String
	}
	return &b, nil
}

// GetByID retrieves a booking by ID.
func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.q.QueryRowContext(ctx, query, id).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return booking, nil
}

// GetAll retrieves all bookings, newest first.
func (r *BookingRepository) GetAll(ctx context.Context) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings ORDER BY created_at DESC LIMIT 200`
	return r.list(ctx, query)
}

// GetByUser retrieves bookings belonging to a user, newest first.
func (r *BookingRepository) GetByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE user_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, userID)
}

func (r *BookingRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Booking, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []*domain.Booking
	for rows.Next() {
		booking, err := scanBooking(rows.Scan)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}
	return bookings, rows.Err()
}

// UpdateStatus updates the status, payment status and confirmation code
// of an existing booking.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus, paymentStatus domain.PaymentStatus, confirmationCode string) error {
	query := `
		UPDATE bookings
		SET status = $1, payment_status = $2, confirmation_code = $3
		WHERE id = $4
	`
	result, err := r.q.ExecContext(ctx, query, status, paymentStatus, confirmationCode, id)
	if err != nil {
		return err
	}
	return requireRow(result)
}

// Delete removes a booking.
func (r *BookingRepository) Delete(ctx context.Context, id string) error {
	result, err := r.q.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(result)
}
