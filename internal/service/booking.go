package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"kamerways/internal/domain"
	"kamerways/internal/repository"
)

// BookingService handles creation and administration of bookings.
type BookingService struct {
	bookingRepo         repository.BookingRepository
	routeRepo           repository.RouteRepository
	psp                 PSP
	notificationService *NotificationService
}

// NewBookingService creates a new BookingService.
func NewBookingService(
	bookingRepo repository.BookingRepository,
	routeRepo repository.RouteRepository,
	psp PSP,
	notificationService *NotificationService,
) *BookingService {
	return &BookingService{
		bookingRepo:         bookingRepo,
		routeRepo:           routeRepo,
		psp:                 psp,
		notificationService: notificationService,
	}
}

// CreateBookingRequest contains the parameters for creating a booking
// from a completed draft.
type CreateBookingRequest struct {
	Draft  domain.BookingDraft
	UserID string // empty for guest bookings
}

// CreateBooking promotes a draft to a persisted booking: it recomputes
// the total from the route price and seat count (never trusting a
// client-side figure), reserves the seats, charges the provider, and
// records the booking in pending status. A failure after the
// reservation releases the held seats, so availability only shrinks
// for bookings that exist.
func (s *BookingService) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	draft := req.Draft
	if draft.RouteID == "" {
		return nil, ErrInvalidRouteID
	}
	if draft.SeatCount <= 0 {
		return nil, ErrInvalidSeatCount
	}

	route, err := s.routeRepo.GetByID(ctx, draft.RouteID)
	if err != nil {
		return nil, err
	}
	if route.Price <= 0 {
		return nil, ErrInvalidPrice
	}
	if draft.SeatCount > route.AvailableSeats {
		return nil, ErrNotEnoughSeats
	}

	// Total is always price × seat count, recomputed here.
	total := route.Price * int64(draft.SeatCount)

	if err := s.routeRepo.ReserveSeats(ctx, route.ID, draft.SeatCount); err != nil {
		if err == repository.ErrNotFound {
			return nil, ErrNotEnoughSeats
		}
		return nil, err
	}

	booking := &domain.Booking{
		ID:                  uuid.New().String(),
		RouteID:             route.ID,
		AgencyID:            route.AgencyID,
		UserID:              req.UserID,
		Passenger:           draft.Passenger,
		SeatCount:           draft.SeatCount,
		SeatLabels:          domain.SeatLabelsFor(draft.SeatCount),
		PaymentMethod:       draft.PaymentMethod,
		MobileMoneyProvider: draft.MobileMoneyProvider,
		MobileMoneyNumber:   draft.MobileMoneyNumber,
		TotalAmount:         total,
		Status:              domain.BookingStatusPending,
		PaymentStatus:       domain.PaymentStatusPending,
		ConfirmationCode:    newConfirmationCode(),
		CreatedAt:           time.Now(),
	}

	charged, err := s.psp.Charge(ctx, draft.PaymentMethod, total)
	if err != nil {
		_ = s.routeRepo.ReleaseSeats(ctx, route.ID, draft.SeatCount)
		return nil, err
	}
	if !charged {
		_ = s.routeRepo.ReleaseSeats(ctx, route.ID, draft.SeatCount)
		return nil, ErrPaymentDeclined
	}
	booking.PaymentStatus = domain.PaymentStatusPaid

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		_ = s.routeRepo.ReleaseSeats(ctx, route.ID, draft.SeatCount)
		return nil, err
	}

	if s.notificationService != nil {
		_ = s.notificationService.NotifyBookingCreated(ctx, booking)
		_ = s.notificationService.NotifyPaymentResult(ctx, booking, true)
	}

	return booking, nil
}

// GetBooking retrieves a booking by ID.
func (s *BookingService) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	if id == "" {
		return nil, ErrInvalidBookingID
	}
	return s.bookingRepo.GetByID(ctx, id)
}

// ListBookings retrieves all bookings for the admin back-office.
func (s *BookingService) ListBookings(ctx context.Context) ([]*domain.Booking, error) {
	return s.bookingRepo.GetAll(ctx)
}

// ListUserBookings retrieves a user's bookings.
func (s *BookingService) ListUserBookings(ctx context.Context, userID string) ([]*domain.Booking, error) {
	return s.bookingRepo.GetByUser(ctx, userID)
}

// UpdateStatusRequest contains the admin status update parameters.
type UpdateStatusRequest struct {
	BookingID     string
	Status        domain.BookingStatus
	PaymentStatus domain.PaymentStatus
}

// UpdateStatus applies an admin-driven status change. Status
// transitions happen here or server-side jobs, never in the wizard.
func (s *BookingService) UpdateStatus(ctx context.Context, req UpdateStatusRequest) (*domain.Booking, error) {
	if req.BookingID == "" {
		return nil, ErrInvalidBookingID
	}
	if !validBookingStatus(req.Status) {
		return nil, ErrInvalidStatus
	}

	booking, err := s.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}

	booking.Status = req.Status
	if req.PaymentStatus != "" {
		booking.PaymentStatus = req.PaymentStatus
	}

	if err := s.bookingRepo.UpdateStatus(ctx, booking.ID, booking.Status, booking.PaymentStatus, booking.ConfirmationCode); err != nil {
		return nil, err
	}

	if s.notificationService != nil {
		_ = s.notificationService.NotifyStatusChange(ctx, booking)
	}

	return booking, nil
}

// DeleteBooking removes a booking.
func (s *BookingService) DeleteBooking(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidBookingID
	}
	return s.bookingRepo.Delete(ctx, id)
}

func validBookingStatus(status domain.BookingStatus) bool {
	switch status {
	case domain.BookingStatusPending, domain.BookingStatusConfirmed,
		domain.BookingStatusInProgress, domain.BookingStatusCompleted,
		domain.BookingStatusCancelled, domain.BookingStatusRefunded,
		domain.BookingStatusFailed:
		return true
	}
	return false
}

// newConfirmationCode generates a short human-readable booking code.
func newConfirmationCode() string {
	return fmt.Sprintf("KW-%06d", rand.Intn(1000000))
}
