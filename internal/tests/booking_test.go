package tests

import (
	"context"
	"errors"
	"strings"
	"testing"

	"kamerways/internal/domain"
	"kamerways/internal/service"
)

var errInjected = errors.New("storage unavailable")

func draftFor(routeID string, seats int) domain.BookingDraft {
	return domain.BookingDraft{
		RouteID:       routeID,
		Passenger:     validPassenger(),
		SeatCount:     seats,
		SeatLabels:    domain.SeatLabelsFor(seats),
		PaymentMethod: domain.PaymentMethodBankCard,
	}
}

// ──────────────────────────────────────────────
// 1. BOOKING CREATION
// ──────────────────────────────────────────────

func TestCreateBooking_TotalIsAlwaysRecomputed(t *testing.T) {
	t.Parallel()

	routeRepo := seededRouteRepo()
	bookingRepo := NewMockBookingRepository()
	bookingService := service.NewBookingService(bookingRepo, routeRepo, service.NewMockPSP(), nil)

	booking, err := bookingService.CreateBooking(context.Background(), service.CreateBookingRequest{
		Draft: draftFor("route-1", 3),
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	// 3 × 15000, derived from the stored route price, never from input.
	if booking.TotalAmount != 45000 {
		t.Errorf("expected total 45000, got %d", booking.TotalAmount)
	}
	if booking.Status != domain.BookingStatusPending {
		t.Errorf("expected pending status, got %s", booking.Status)
	}
	if !strings.HasPrefix(booking.ConfirmationCode, "KW-") {
		t.Errorf("expected KW- confirmation code, got %q", booking.ConfirmationCode)
	}
	if routeRepo.ReserveSeatsCallCount != 1 {
		t.Errorf("expected 1 seat reservation, got %d", routeRepo.ReserveSeatsCallCount)
	}
}

func TestCreateBooking_NotEnoughSeats_Fails(t *testing.T) {
	t.Parallel()

	routeRepo := seededRouteRepo()
	bookingRepo := NewMockBookingRepository()
	bookingService := service.NewBookingService(bookingRepo, routeRepo, service.NewMockPSP(), nil)

	_, err := bookingService.CreateBooking(context.Background(), service.CreateBookingRequest{
		Draft: draftFor("route-1", 11), // route-1 has 10 seats left
	})
	if err != service.ErrNotEnoughSeats {
		t.Fatalf("expected ErrNotEnoughSeats, got: %v", err)
	}
	if bookingRepo.Count() != 0 {
		t.Errorf("expected no booking, got %d", bookingRepo.Count())
	}
	if got := routeRepo.GetRoute("route-1").AvailableSeats; got != 10 {
		t.Errorf("expected availability untouched at 10, got %d", got)
	}
}

func TestCreateBooking_DeclinedCharge_Fails(t *testing.T) {
	t.Parallel()

	routeRepo := seededRouteRepo()
	bookingRepo := NewMockBookingRepository()
	psp := &DecliningPSP{}
	bookingService := service.NewBookingService(bookingRepo, routeRepo, psp, nil)

	_, err := bookingService.CreateBooking(context.Background(), service.CreateBookingRequest{
		Draft: draftFor("route-1", 3),
	})
	if err != service.ErrPaymentDeclined {
		t.Fatalf("expected ErrPaymentDeclined, got: %v", err)
	}
	if psp.ChargeCallCount != 1 {
		t.Errorf("expected 1 charge attempt, got %d", psp.ChargeCallCount)
	}
	if bookingRepo.Count() != 0 {
		t.Errorf("expected no booking on declined charge, got %d", bookingRepo.Count())
	}
	// The reservation taken before the charge must be undone.
	if routeRepo.ReleaseSeatsCallCount != 1 {
		t.Errorf("expected 1 seat release, got %d", routeRepo.ReleaseSeatsCallCount)
	}
	if got := routeRepo.GetRoute("route-1").AvailableSeats; got != 10 {
		t.Errorf("expected availability restored to 10, got %d", got)
	}
}

func TestCreateBooking_PersistFailure_ReleasesSeats(t *testing.T) {
	t.Parallel()

	routeRepo := seededRouteRepo()
	bookingRepo := NewMockBookingRepository()
	bookingRepo.CreateError = errInjected
	bookingService := service.NewBookingService(bookingRepo, routeRepo, service.NewMockPSP(), nil)

	_, err := bookingService.CreateBooking(context.Background(), service.CreateBookingRequest{
		Draft: draftFor("route-1", 2),
	})
	if err != errInjected {
		t.Fatalf("expected injected error, got: %v", err)
	}
	if routeRepo.ReleaseSeatsCallCount != 1 {
		t.Errorf("expected 1 seat release, got %d", routeRepo.ReleaseSeatsCallCount)
	}
	if got := routeRepo.GetRoute("route-1").AvailableSeats; got != 10 {
		t.Errorf("expected availability restored to 10, got %d", got)
	}
}

func TestCreateBooking_InvalidInput_Fails(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		draft   domain.BookingDraft
		wantErr error
	}{
		{name: "empty route", draft: draftFor("", 1), wantErr: service.ErrInvalidRouteID},
		{name: "zero seats", draft: draftFor("route-1", 0), wantErr: service.ErrInvalidSeatCount},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			bookingService := service.NewBookingService(NewMockBookingRepository(), seededRouteRepo(), service.NewMockPSP(), nil)
			_, err := bookingService.CreateBooking(context.Background(), service.CreateBookingRequest{Draft: tc.draft})
			if err != tc.wantErr {
				t.Errorf("expected %v, got: %v", tc.wantErr, err)
			}
		})
	}
}

// ──────────────────────────────────────────────
// 2. ADMIN STATUS UPDATES
// ──────────────────────────────────────────────

func TestUpdateStatus_ValidTransition_Notifies(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	routeRepo := seededRouteRepo()
	bookingRepo := NewMockBookingRepository()
	notificationRepo := NewMockNotificationRepository()
	notificationService := service.NewNotificationService(notificationRepo)
	bookingService := service.NewBookingService(bookingRepo, routeRepo, service.NewMockPSP(), notificationService)

	created, err := bookingService.CreateBooking(ctx, service.CreateBookingRequest{
		Draft:  draftFor("route-1", 2),
		UserID: "user-customer",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := bookingService.UpdateStatus(ctx, service.UpdateStatusRequest{
		BookingID: created.ID,
		Status:    domain.BookingStatusConfirmed,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Status != domain.BookingStatusConfirmed {
		t.Errorf("expected confirmed, got %s", updated.Status)
	}
	// Payment status untouched when the request omits it.
	if updated.PaymentStatus != domain.PaymentStatusPaid {
		t.Errorf("expected payment status preserved, got %s", updated.PaymentStatus)
	}

	notifications, err := notificationService.ListForUser(ctx, "user-customer")
	if err != nil {
		t.Fatalf("list notifications failed: %v", err)
	}
	var sawConfirmed bool
	for _, n := range notifications {
		if n.Type == domain.NotificationBookingConfirmed {
			sawConfirmed = true
		}
	}
	if !sawConfirmed {
		t.Error("expected a booking-confirmed notification")
	}
}

func TestUpdateStatus_UnknownStatus_Rejected(t *testing.T) {
	t.Parallel()

	bookingService := service.NewBookingService(NewMockBookingRepository(), seededRouteRepo(), service.NewMockPSP(), nil)

	_, err := bookingService.UpdateStatus(context.Background(), service.UpdateStatusRequest{
		BookingID: "booking-1",
		Status:    domain.BookingStatus("ARCHIVED"),
	})
	if err != service.ErrInvalidStatus {
		t.Errorf("expected ErrInvalidStatus, got: %v", err)
	}
}

// ──────────────────────────────────────────────
// 3. NOTIFICATIONS
// ──────────────────────────────────────────────

func TestNotifications_GuestBooking_NothingStored(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	notificationRepo := NewMockNotificationRepository()
	notificationService := service.NewNotificationService(notificationRepo)
	bookingService := service.NewBookingService(NewMockBookingRepository(), seededRouteRepo(), service.NewMockPSP(), notificationService)

	// Guest checkout: no user ID on the request.
	if _, err := bookingService.CreateBooking(ctx, service.CreateBookingRequest{Draft: draftFor("route-1", 1)}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if got := len(notificationRepo.All()); got != 0 {
		t.Errorf("expected no stored notifications for a guest, got %d", got)
	}
}

func TestNotifications_MarkRead(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	notificationRepo := NewMockNotificationRepository()
	notificationService := service.NewNotificationService(notificationRepo)
	bookingService := service.NewBookingService(NewMockBookingRepository(), seededRouteRepo(), service.NewMockPSP(), notificationService)

	if _, err := bookingService.CreateBooking(ctx, service.CreateBookingRequest{
		Draft:  draftFor("route-1", 1),
		UserID: "user-customer",
	}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	notifications, err := notificationService.ListForUser(ctx, "user-customer")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(notifications) == 0 {
		t.Fatal("expected notifications for the booking")
	}
	if notifications[0].Read {
		t.Error("expected new notification to be unread")
	}

	if err := notificationService.MarkRead(ctx, notifications[0].ID); err != nil {
		t.Fatalf("mark read failed: %v", err)
	}

	notifications, err = notificationService.ListForUser(ctx, "user-customer")
	if err != nil {
		t.Fatalf("second list failed: %v", err)
	}
	var found bool
	for _, n := range notifications {
		if n.Read {
			found = true
		}
	}
	if !found {
		t.Error("expected the notification to be marked read")
	}
}
