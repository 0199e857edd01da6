package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"kamerways/internal/domain"
	"kamerways/internal/repository"
)

// NotificationService records user-facing notifications through an
// injected repository, so notification state has a single owner instead
// of a shared in-memory list.
type NotificationService struct {
	repo repository.NotificationRepository
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(repo repository.NotificationRepository) *NotificationService {
	return &NotificationService{repo: repo}
}

// NotifyBookingCreated records a booking-created notification.
func (s *NotificationService) NotifyBookingCreated(ctx context.Context, booking *domain.Booking) error {
	return s.record(ctx, booking.UserID, domain.NotificationBookingCreated,
		"Booking received",
		fmt.Sprintf("Your booking for %d seat(s) is pending confirmation. Total: %d FCFA.", booking.SeatCount, booking.TotalAmount))
}

// NotifyPaymentResult records the outcome of a payment attempt.
func (s *NotificationService) NotifyPaymentResult(ctx context.Context, booking *domain.Booking, success bool) error {
	if success {
		return s.record(ctx, booking.UserID, domain.NotificationPaymentSuccess,
			"Payment successful",
			fmt.Sprintf("Payment of %d FCFA received for booking %s.", booking.TotalAmount, booking.ID))
	}
	return s.record(ctx, booking.UserID, domain.NotificationPaymentFailed,
		"Payment failed",
		fmt.Sprintf("Payment for booking %s could not be completed.", booking.ID))
}

// NotifyStatusChange records an admin-driven booking status change.
func (s *NotificationService) NotifyStatusChange(ctx context.Context, booking *domain.Booking) error {
	kind := domain.NotificationBookingConfirmed
	title := "Booking confirmed"
	if booking.Status == domain.BookingStatusCancelled {
		kind = domain.NotificationBookingCancelled
		title = "Booking cancelled"
	}
	return s.record(ctx, booking.UserID, kind, title,
		fmt.Sprintf("Booking %s is now %s.", booking.ID, booking.Status))
}

// ListForUser returns a user's notifications, newest first.
func (s *NotificationService) ListForUser(ctx context.Context, userID string) ([]*domain.Notification, error) {
	return s.repo.GetByUser(ctx, userID)
}

// MarkRead flags a notification as read.
func (s *NotificationService) MarkRead(ctx context.Context, id string) error {
	return s.repo.MarkRead(ctx, id)
}

func (s *NotificationService) record(ctx context.Context, userID string, kind domain.NotificationType, title, message string) error {
	if userID == "" {
		// Guest booking: nowhere to deliver, log and move on.
		log.Printf("notification (no user): %s - %s", title, message)
		return nil
	}
	return s.repo.Create(ctx, &domain.Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		Type:      kind,
		Title:     title,
		Message:   message,
		CreatedAt: time.Now(),
	})
}
