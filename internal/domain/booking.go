package domain

import (
	"fmt"
	"time"
)

// BookingStatus represents the lifecycle status of a booking.
type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusInProgress BookingStatus = "in_progress"
	BookingStatusCompleted  BookingStatus = "completed"
	BookingStatusCancelled  BookingStatus = "cancelled"
	BookingStatusRefunded   BookingStatus = "refunded"
	BookingStatusFailed     BookingStatus = "failed"
)

// PaymentStatus represents the payment state of a booking.
type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// PaymentMethod represents how a booking is paid.
type PaymentMethod string

const (
	PaymentMethodMobileMoney PaymentMethod = "mobile_money"
	PaymentMethodBankCard    PaymentMethod = "bank_card"
)

// MobileMoneyProvider represents a mobile money operator.
type MobileMoneyProvider string

const (
	ProviderMTN    MobileMoneyProvider = "mtn"
	ProviderOrange MobileMoneyProvider = "orange"
)

// Gender represents a passenger's declared gender.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// PassengerDetails holds the traveller information collected by the
// booking wizard. All fields are required before the wizard advances
// past its first step; Gender defaults to male when unset.
type PassengerDetails struct {
	Name     string
	Email    string
	Phone    string
	Age      int
	Gender   Gender
	IDNumber string
}

// BookingDraft is the transient, not-yet-submitted booking assembled
// step by step by the wizard. It is discarded after submission.
type BookingDraft struct {
	RouteID             string
	Passenger           PassengerDetails
	SeatCount           int
	SeatLabels          []string
	PaymentMethod       PaymentMethod
	MobileMoneyProvider MobileMoneyProvider
	MobileMoneyNumber   string
}

// SeatLabelsFor derives the deterministic seat labels for a seat count:
// "S1".."Sn". Labels are recomputed on every seat selection, never cached.
func SeatLabelsFor(n int) []string {
	if n <= 0 {
		return nil
	}
	labels := make([]string, n)
	for i := range labels {
		labels[i] = fmt.Sprintf("S%d", i+1)
	}
	return labels
}

// Booking is a persisted reservation against a route.
type Booking struct {
	ID                  string
	RouteID             string
	AgencyID            string
	UserID              string
	Passenger           PassengerDetails
	SeatCount           int
	SeatLabels          []string
	PaymentMethod       PaymentMethod
	MobileMoneyProvider MobileMoneyProvider
	MobileMoneyNumber   string
	TotalAmount         int64 // always Price × SeatCount, recomputed at creation
	Status              BookingStatus
	PaymentStatus       PaymentStatus
	ConfirmationCode    string
	CreatedAt           time.Time
}
