package wizard

import "errors"

var (
	// ErrIllegalTransition is returned for any (step, action) pair not
	// present in the transition table.
	ErrIllegalTransition = errors.New("illegal wizard transition")

	// ErrPassengerIncomplete is returned when a required passenger field
	// is empty.
	ErrPassengerIncomplete = errors.New("all passenger fields are required")

	// ErrInvalidAge is returned when the passenger age is not positive.
	ErrInvalidAge = errors.New("passenger age must be positive")

	// ErrNoSeatsSelected is returned when advancing or submitting with a
	// zero seat count.
	ErrNoSeatsSelected = errors.New("at least one seat must be selected")

	// ErrNotEnoughSeats is returned when the seat count exceeds the
	// route's available seats.
	ErrNotEnoughSeats = errors.New("seat count exceeds available seats")

	// ErrInvalidPaymentMethod is returned for an unknown payment method.
	ErrInvalidPaymentMethod = errors.New("invalid payment method")

	// ErrMobileMoneyIncomplete is returned when mobile money is selected
	// without a provider and phone number.
	ErrMobileMoneyIncomplete = errors.New("mobile money provider and number are required")
)
