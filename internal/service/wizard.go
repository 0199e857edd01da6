package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"kamerways/internal/domain"
	"kamerways/internal/redis"
	"kamerways/internal/repository"
	"kamerways/internal/wizard"
)

// submitLockTTL bounds how long a wizard submission can hold its lock.
const submitLockTTL = 30 * time.Second

// BookingCreator is the slice of BookingService the wizard needs.
type BookingCreator interface {
	CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error)
}

// Ensure BookingService implements BookingCreator.
var _ BookingCreator = (*BookingService)(nil)

// WizardService drives wizard sessions: it loads drafts from the draft
// store, applies one transition, and writes them back. Submission is
// guarded by a per-session lock so a double-click cannot create two
// bookings.
type WizardService struct {
	drafts    redis.DraftStoreInterface
	locks     redis.LockStoreInterface
	routeRepo repository.RouteRepository
	bookings  BookingCreator
}

// NewWizardService creates a new WizardService. A nil lock store skips
// the submit lock; the spent-draft check still blocks duplicates.
func NewWizardService(
	drafts redis.DraftStoreInterface,
	locks redis.LockStoreInterface,
	routeRepo repository.RouteRepository,
	bookings BookingCreator,
) *WizardService {
	return &WizardService{
		drafts:    drafts,
		locks:     locks,
		routeRepo: routeRepo,
		bookings:  bookings,
	}
}

// Start opens a fresh wizard session for a route. Re-entering the
// wizard always starts a new draft; nothing carries over.
func (s *WizardService) Start(ctx context.Context, routeID string) (*wizard.Session, error) {
	if routeID == "" {
		return nil, ErrInvalidRouteID
	}
	if _, err := s.routeRepo.GetByID(ctx, routeID); err != nil {
		return nil, err
	}

	session := wizard.NewSession(uuid.New().String(), routeID)
	if err := s.drafts.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Get loads a wizard session.
func (s *WizardService) Get(ctx context.Context, id string) (*wizard.Session, error) {
	if id == "" {
		return nil, ErrInvalidSessionID
	}
	session, err := s.drafts.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionExpired
	}
	return session, nil
}

// SubmitPassenger applies the passenger-details step. On a validation
// failure the stored draft is untouched and the session stays put.
func (s *WizardService) SubmitPassenger(ctx context.Context, id string, p domain.PassengerDetails) (*wizard.Session, error) {
	return s.apply(ctx, id, func(session *wizard.Session) error {
		return session.SubmitPassenger(p)
	})
}

// ConfirmRoute applies the route-confirmation step.
func (s *WizardService) ConfirmRoute(ctx context.Context, id string) (*wizard.Session, error) {
	return s.apply(ctx, id, func(session *wizard.Session) error {
		return session.ConfirmRoute()
	})
}

// SelectSeats applies the seat-selection step, bounded by the route's
// current availability.
func (s *WizardService) SelectSeats(ctx context.Context, id string, count int) (*wizard.Session, error) {
	return s.apply(ctx, id, func(session *wizard.Session) error {
		route, err := s.routeRepo.GetByID(ctx, session.RouteID)
		if err != nil {
			return err
		}
		return session.SelectSeats(count, route.AvailableSeats)
	})
}

// Back steps the session to the immediately preceding step.
func (s *WizardService) Back(ctx context.Context, id string) (*wizard.Session, error) {
	return s.apply(ctx, id, func(session *wizard.Session) error {
		return session.Back()
	})
}

// SubmitRequest carries the payment-step input that doubles as the
// submission trigger.
type SubmitRequest struct {
	SessionID string
	Method    domain.PaymentMethod
	Provider  domain.MobileMoneyProvider
	Number    string
	UserID    string // empty for guest checkouts
}

// Submit runs the payment step and the terminal submission. Local
// validation failures leave the session on the payment step; a failed
// create-booking call drives the session to its failure display. Either
// terminal outcome discards the stored draft, so re-entering the wizard
// starts fresh.
func (s *WizardService) Submit(ctx context.Context, req SubmitRequest) (*wizard.Session, error) {
	session, err := s.Get(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}

	if err := session.SetPayment(req.Method, req.Provider, req.Number); err != nil {
		return session, err
	}
	if err := session.ValidateSubmission(); err != nil {
		// Local and non-fatal: persist the chosen method, stay on the step.
		_ = s.drafts.Save(ctx, session)
		return session, err
	}

	if s.locks != nil {
		acquired, err := s.locks.AcquireSubmitLock(ctx, session.ID, submitLockTTL)
		if err != nil {
			return nil, err
		}
		if !acquired {
			return nil, ErrSubmissionInFlight
		}
		defer func() { _ = s.locks.ReleaseSubmitLock(ctx, session.ID) }()
	}

	booking, submitErr := s.bookings.CreateBooking(ctx, CreateBookingRequest{
		Draft:  session.Draft,
		UserID: req.UserID,
	})

	var bookingID string
	var total int64
	if submitErr == nil {
		bookingID = booking.ID
		total = booking.TotalAmount
	}
	if err := session.Finish(bookingID, total, submitErr); err != nil {
		return session, err
	}

	// The draft is spent regardless of outcome. No retry.
	_ = s.drafts.Delete(ctx, session.ID)
	return session, nil
}

// apply loads a session, runs one transition, and saves it back when
// the transition succeeded.
func (s *WizardService) apply(ctx context.Context, id string, fn func(*wizard.Session) error) (*wizard.Session, error) {
	session, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(session); err != nil {
		return session, err
	}
	if err := s.drafts.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}
