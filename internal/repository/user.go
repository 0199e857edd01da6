package repository

import (
	"context"

	"kamerways/internal/domain"
)

// UserRepository defines the persistence operations for users.
type UserRepository interface {
	// GetByEmail retrieves a user by email.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// GetByID retrieves a user by ID.
	GetByID(ctx context.Context, id string) (*domain.User, error)

	// GetAll retrieves all users.
	GetAll(ctx context.Context) ([]*domain.User, error)
}

// NotificationRepository owns notification state. Callers create, list
// and mark notifications through it instead of sharing a mutable list.
type NotificationRepository interface {
	// Create persists a new notification.
	Create(ctx context.Context, n *domain.Notification) error

	// GetByUser retrieves a user's notifications, newest first.
	GetByUser(ctx context.Context, userID string) ([]*domain.Notification, error)

	// MarkRead flags a notification as read.
	MarkRead(ctx context.Context, id string) error
}
