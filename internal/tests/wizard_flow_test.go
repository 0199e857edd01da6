package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"kamerways/internal/domain"
	"kamerways/internal/service"
	"kamerways/internal/wizard"
)

func seededRouteRepo() *MockRouteRepository {
	routeRepo := NewMockRouteRepository()
	routeRepo.AddRoute(&domain.Route{
		ID:             "route-1",
		AgencyID:       "agency-1",
		Origin:         "Douala",
		Destination:    "Yaoundé",
		Price:          15000,
		BusType:        domain.BusTypeLuxury,
		AvailableSeats: 10,
		TotalSeats:     45,
		Date:           "2026-09-01",
		CreatedAt:      time.Now(),
	})
	return routeRepo
}

func validPassenger() domain.PassengerDetails {
	return domain.PassengerDetails{
		Name:     "Alice Fotso",
		Email:    "alice@example.com",
		Phone:    "+237670123456",
		Age:      29,
		Gender:   domain.GenderFemale,
		IDNumber: "CM-1234567",
	}
}

// walkToPayment drives a fresh session through the first three steps.
func walkToPayment(t *testing.T, wizardService *service.WizardService, seats int) *wizard.Session {
	t.Helper()
	ctx := context.Background()

	session, err := wizardService.Start(ctx, "route-1")
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if _, err := wizardService.SubmitPassenger(ctx, session.ID, validPassenger()); err != nil {
		t.Fatalf("passenger step failed: %v", err)
	}
	if _, err := wizardService.ConfirmRoute(ctx, session.ID); err != nil {
		t.Fatalf("route step failed: %v", err)
	}
	session, err = wizardService.SelectSeats(ctx, session.ID, seats)
	if err != nil {
		t.Fatalf("seats step failed: %v", err)
	}
	return session
}

// ──────────────────────────────────────────────
// 1. END-TO-END WIZARD SUCCESS
// ──────────────────────────────────────────────

func TestWizard_FullFlow_CreatesBooking(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	routeRepo := seededRouteRepo()
	bookingRepo := NewMockBookingRepository()
	drafts := NewMockDraftStore()
	locks := NewMockLockStore()

	bookingService := service.NewBookingService(bookingRepo, routeRepo, service.NewMockPSP(), nil)
	wizardService := service.NewWizardService(drafts, locks, routeRepo, bookingService)

	session := walkToPayment(t, wizardService, 2)
	if session.Step != wizard.StepPayment {
		t.Fatalf("expected payment step, got %s", session.Step)
	}

	session, err := wizardService.Submit(ctx, service.SubmitRequest{
		SessionID: session.ID,
		Method:    domain.PaymentMethodMobileMoney,
		Provider:  domain.ProviderMTN,
		Number:    "670123456",
		UserID:    "user-customer",
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	if session.Step != wizard.StepConfirmation {
		t.Errorf("expected confirmation step, got %s", session.Step)
	}
	if session.Outcome != wizard.OutcomeSuccess {
		t.Errorf("expected success outcome, got %s", session.Outcome)
	}
	// Two seats at 15000 FCFA each.
	if session.Total != 30000 {
		t.Errorf("expected total 30000, got %d", session.Total)
	}
	if session.BookingID == "" {
		t.Fatal("expected booking ID on the finished session")
	}

	booking := bookingRepo.GetBooking(session.BookingID)
	if booking == nil {
		t.Fatal("expected booking to be persisted")
	}
	if booking.TotalAmount != 30000 {
		t.Errorf("expected booking total 30000, got %d", booking.TotalAmount)
	}
	if booking.SeatCount != 2 {
		t.Errorf("expected 2 seats, got %d", booking.SeatCount)
	}
	if len(booking.SeatLabels) != 2 || booking.SeatLabels[0] != "S1" || booking.SeatLabels[1] != "S2" {
		t.Errorf("expected seat labels [S1 S2], got %v", booking.SeatLabels)
	}
	if booking.PaymentStatus != domain.PaymentStatusPaid {
		t.Errorf("expected paid status, got %s", booking.PaymentStatus)
	}
	if booking.ConfirmationCode == "" {
		t.Error("expected a confirmation code")
	}

	// Seats were reserved against the route.
	if got := routeRepo.GetRoute("route-1").AvailableSeats; got != 8 {
		t.Errorf("expected 8 seats remaining, got %d", got)
	}

	// The draft is spent after submission.
	if drafts.Has(session.ID) {
		t.Error("expected draft to be discarded after submission")
	}
	if locks.ReleaseCallCount != 1 {
		t.Errorf("expected 1 lock release, got %d", locks.ReleaseCallCount)
	}
}

// ──────────────────────────────────────────────
// 2. VALIDATION FAILURES STAY ON THE STEP
// ──────────────────────────────────────────────

func TestWizard_MobileMoneyWithoutNumber_StaysOnPayment(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	routeRepo := seededRouteRepo()
	drafts := NewMockDraftStore()
	bookingService := service.NewBookingService(NewMockBookingRepository(), routeRepo, service.NewMockPSP(), nil)
	wizardService := service.NewWizardService(drafts, NewMockLockStore(), routeRepo, bookingService)

	session := walkToPayment(t, wizardService, 1)

	session, err := wizardService.Submit(ctx, service.SubmitRequest{
		SessionID: session.ID,
		Method:    domain.PaymentMethodMobileMoney,
		Provider:  domain.ProviderOrange,
	})
	if err != wizard.ErrMobileMoneyIncomplete {
		t.Fatalf("expected ErrMobileMoneyIncomplete, got: %v", err)
	}
	if session.Step != wizard.StepPayment {
		t.Errorf("expected session to stay on payment, got %s", session.Step)
	}

	// The chosen method is kept so a corrected retry works.
	stored, err := wizardService.Get(ctx, session.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if stored.Draft.PaymentMethod != domain.PaymentMethodMobileMoney {
		t.Errorf("expected stored method mobile_money, got %s", stored.Draft.PaymentMethod)
	}

	// Fixing the input completes the flow on the same session.
	session, err = wizardService.Submit(ctx, service.SubmitRequest{
		SessionID: session.ID,
		Method:    domain.PaymentMethodMobileMoney,
		Provider:  domain.ProviderOrange,
		Number:    "690000000",
	})
	if err != nil {
		t.Fatalf("corrected submit failed: %v", err)
	}
	if session.Outcome != wizard.OutcomeSuccess {
		t.Errorf("expected success, got %s", session.Outcome)
	}
}

func TestWizard_SeatCountBounds(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	routeRepo := seededRouteRepo()
	bookingService := service.NewBookingService(NewMockBookingRepository(), routeRepo, service.NewMockPSP(), nil)
	wizardService := service.NewWizardService(NewMockDraftStore(), NewMockLockStore(), routeRepo, bookingService)

	session, err := wizardService.Start(ctx, "route-1")
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if _, err := wizardService.SubmitPassenger(ctx, session.ID, validPassenger()); err != nil {
		t.Fatalf("passenger step failed: %v", err)
	}
	if _, err := wizardService.ConfirmRoute(ctx, session.ID); err != nil {
		t.Fatalf("route step failed: %v", err)
	}

	if _, err := wizardService.SelectSeats(ctx, session.ID, 0); err != wizard.ErrNoSeatsSelected {
		t.Errorf("expected ErrNoSeatsSelected, got: %v", err)
	}
	if _, err := wizardService.SelectSeats(ctx, session.ID, 11); err != wizard.ErrNotEnoughSeats {
		t.Errorf("expected ErrNotEnoughSeats for 11 of 10, got: %v", err)
	}
	if _, err := wizardService.SelectSeats(ctx, session.ID, 10); err != nil {
		t.Errorf("expected full-bus selection to succeed, got: %v", err)
	}
}

// ──────────────────────────────────────────────
// 3. DOUBLE SUBMISSION
// ──────────────────────────────────────────────

func TestWizard_SubmitWhileLocked_Rejected(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	routeRepo := seededRouteRepo()
	bookingRepo := NewMockBookingRepository()
	locks := NewMockLockStore()

	bookingService := service.NewBookingService(bookingRepo, routeRepo, service.NewMockPSP(), nil)
	wizardService := service.NewWizardService(NewMockDraftStore(), locks, routeRepo, bookingService)

	session := walkToPayment(t, wizardService, 1)

	// Another submission is already in flight for this session.
	locks.Hold(session.ID)

	_, err := wizardService.Submit(ctx, service.SubmitRequest{
		SessionID: session.ID,
		Method:    domain.PaymentMethodBankCard,
	})
	if err != service.ErrSubmissionInFlight {
		t.Fatalf("expected ErrSubmissionInFlight, got: %v", err)
	}
	if bookingRepo.Count() != 0 {
		t.Errorf("expected no booking, got %d", bookingRepo.Count())
	}
}

func TestWizard_SubmitAfterFinish_Rejected(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	routeRepo := seededRouteRepo()
	bookingRepo := NewMockBookingRepository()
	bookingService := service.NewBookingService(bookingRepo, routeRepo, service.NewMockPSP(), nil)
	wizardService := service.NewWizardService(NewMockDraftStore(), NewMockLockStore(), routeRepo, bookingService)

	session := walkToPayment(t, wizardService, 1)

	req := service.SubmitRequest{
		SessionID: session.ID,
		Method:    domain.PaymentMethodBankCard,
	}
	if _, err := wizardService.Submit(ctx, req); err != nil {
		t.Fatalf("first submit failed: %v", err)
	}

	// The draft is gone, so a repeated click finds no session.
	if _, err := wizardService.Submit(ctx, req); err != service.ErrSessionExpired {
		t.Fatalf("expected ErrSessionExpired on resubmit, got: %v", err)
	}
	if bookingRepo.Count() != 1 {
		t.Errorf("expected exactly 1 booking, got %d", bookingRepo.Count())
	}
}

// ──────────────────────────────────────────────
// 4. SUBMISSION FAILURE IS TERMINAL
// ──────────────────────────────────────────────

func TestWizard_BackendFailure_LandsOnFailureDisplay(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	routeRepo := seededRouteRepo()
	drafts := NewMockDraftStore()
	creator := &FailingBookingCreator{Err: errors.New("seat hold expired")}
	wizardService := service.NewWizardService(drafts, NewMockLockStore(), routeRepo, creator)

	session := walkToPayment(t, wizardService, 2)

	session, err := wizardService.Submit(ctx, service.SubmitRequest{
		SessionID: session.ID,
		Method:    domain.PaymentMethodBankCard,
	})
	if err != nil {
		t.Fatalf("submit should return the finished session, got error: %v", err)
	}

	if session.Outcome != wizard.OutcomeFailure {
		t.Errorf("expected failure outcome, got %s", session.Outcome)
	}
	if session.Message != "seat hold expired" {
		t.Errorf("expected the server message to be recorded, got %q", session.Message)
	}
	if session.BookingID != "" {
		t.Errorf("expected no booking ID, got %s", session.BookingID)
	}

	// Failure is terminal: the draft is discarded, there is no retry.
	if drafts.Has(session.ID) {
		t.Error("expected draft to be discarded after a failed submission")
	}
	if creator.CreateCallCount != 1 {
		t.Errorf("expected exactly 1 create attempt, got %d", creator.CreateCallCount)
	}
}

// ──────────────────────────────────────────────
// 5. BACK NAVIGATION AND EXPIRY
// ──────────────────────────────────────────────

func TestWizard_BackKeepsDraft(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	routeRepo := seededRouteRepo()
	bookingService := service.NewBookingService(NewMockBookingRepository(), routeRepo, service.NewMockPSP(), nil)
	wizardService := service.NewWizardService(NewMockDraftStore(), NewMockLockStore(), routeRepo, bookingService)

	session := walkToPayment(t, wizardService, 3)

	session, err := wizardService.Back(ctx, session.ID)
	if err != nil {
		t.Fatalf("back failed: %v", err)
	}
	if session.Step != wizard.StepSeats {
		t.Errorf("expected seats step, got %s", session.Step)
	}
	if session.Draft.Passenger.Name != "Alice Fotso" {
		t.Error("expected passenger details to survive back navigation")
	}
	if session.Draft.SeatCount != 3 {
		t.Errorf("expected seat count 3 to survive, got %d", session.Draft.SeatCount)
	}
}

func TestWizard_ExpiredSession_Reported(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	routeRepo := seededRouteRepo()
	bookingService := service.NewBookingService(NewMockBookingRepository(), routeRepo, service.NewMockPSP(), nil)
	wizardService := service.NewWizardService(NewMockDraftStore(), NewMockLockStore(), routeRepo, bookingService)

	if _, err := wizardService.Get(ctx, "gone"); err != service.ErrSessionExpired {
		t.Errorf("expected ErrSessionExpired, got: %v", err)
	}
	if _, err := wizardService.ConfirmRoute(ctx, "gone"); err != service.ErrSessionExpired {
		t.Errorf("expected ErrSessionExpired on a step, got: %v", err)
	}
}

func TestWizard_StartUnknownRoute_Fails(t *testing.T) {
	t.Parallel()

	routeRepo := seededRouteRepo()
	bookingService := service.NewBookingService(NewMockBookingRepository(), routeRepo, service.NewMockPSP(), nil)
	wizardService := service.NewWizardService(NewMockDraftStore(), NewMockLockStore(), routeRepo, bookingService)

	if _, err := wizardService.Start(context.Background(), "route-404"); err == nil {
		t.Error("expected error for unknown route")
	}
}
