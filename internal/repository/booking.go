package repository

import (
	"context"

	"kamerways/internal/domain"
)

// BookingRepository defines the persistence operations for bookings.
type BookingRepository interface {
	// Create persists a new booking.
	Create(ctx context.Context, booking *domain.Booking) error

	// GetByID retrieves a booking by ID.
	GetByID(ctx context.Context, id string) (*domain.Booking, error)

	// GetAll retrieves all bookings, newest first.
	GetAll(ctx context.Context) ([]*domain.Booking, error)

	// GetByUser retrieves bookings belonging to a user.
	GetByUser(ctx context.Context, userID string) ([]*domain.Booking, error)

	// UpdateStatus updates the status, payment status and confirmation
	// code of an existing booking.
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus, paymentStatus domain.PaymentStatus, confirmationCode string) error

	// Delete removes a booking.
	Delete(ctx context.Context, id string) error
}
