package domain

import "time"

// NotificationType represents the kind of event a notification reports.
type NotificationType string

const (
	NotificationBookingCreated   NotificationType = "BOOKING_CREATED"
	NotificationBookingConfirmed NotificationType = "BOOKING_CONFIRMED"
	NotificationBookingCancelled NotificationType = "BOOKING_CANCELLED"
	NotificationPaymentSuccess   NotificationType = "PAYMENT_SUCCESS"
	NotificationPaymentFailed    NotificationType = "PAYMENT_FAILED"
	NotificationReceiptReady     NotificationType = "RECEIPT_READY"
)

// Notification is a message addressed to a user, stored through a
// repository rather than a shared in-memory list so ownership stays
// explicit and testable.
type Notification struct {
	ID        string
	UserID    string
	Type      NotificationType
	Title     string
	Message   string
	Read      bool
	CreatedAt time.Time
}
