package service

import "errors"

var (
	// ErrInvalidCredentials is returned for any failed login. A single
	// generic message avoids leaking which of email or password was wrong.
	ErrInvalidCredentials = errors.New("Invalid credentials")

	// ErrInvalidRouteID is returned when a route ID is empty.
	ErrInvalidRouteID = errors.New("invalid route id")

	// ErrInvalidBookingID is returned when a booking ID is empty.
	ErrInvalidBookingID = errors.New("invalid booking id")

	// ErrInvalidAgencyID is returned when an agency ID is empty.
	ErrInvalidAgencyID = errors.New("invalid agency id")

	// ErrInvalidSessionID is returned when a wizard session ID is empty
	// or unknown.
	ErrInvalidSessionID = errors.New("invalid wizard session id")

	// ErrSessionExpired is returned when a wizard session has been
	// discarded or its TTL lapsed.
	ErrSessionExpired = errors.New("wizard session expired")

	// ErrSubmissionInFlight is returned when a second submission races a
	// pending one for the same wizard session.
	ErrSubmissionInFlight = errors.New("submission already in progress")

	// ErrNotEnoughSeats is returned when a booking requests more seats
	// than the route has available.
	ErrNotEnoughSeats = errors.New("not enough seats available")

	// ErrInvalidSeatCount is returned when a booking has no seats.
	ErrInvalidSeatCount = errors.New("seat count must be positive")

	// ErrInvalidStatus is returned for an unknown booking status value.
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidPrice is returned when a route price is not positive.
	ErrInvalidPrice = errors.New("route price must be positive")

	// ErrPaymentDeclined is returned when the payment provider rejects a
	// charge.
	ErrPaymentDeclined = errors.New("payment was declined")

	// ErrInvalidPaymentMethod is returned for an unknown payment method.
	ErrInvalidPaymentMethod = errors.New("invalid payment method")

	// ErrInvalidProvider is returned for an unknown mobile money provider.
	ErrInvalidProvider = errors.New("invalid mobile money provider")

	// ErrReceiptNotReady is returned when a receipt is requested for a
	// booking that is not confirmed.
	ErrReceiptNotReady = errors.New("receipt not available for unconfirmed booking")
)
