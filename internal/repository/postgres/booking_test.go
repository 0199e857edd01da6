package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"kamerways/internal/domain"
	"kamerways/internal/repository"
)

func TestBookingRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	repo := NewBookingRepository(db)

	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(0, 1))

	booking := &domain.Booking{
		ID:                  "booking-1",
		RouteID:             "route-1",
		AgencyID:            "agency-1",
		Passenger:           domain.PassengerDetails{Name: "John Doe", Email: "john.doe@email.com", Phone: "+237670000001", Age: 29, Gender: domain.GenderMale, IDNumber: "CM-1234"},
		SeatCount:           2,
		SeatLabels:          []string{"S1", "S2"},
		PaymentMethod:       domain.PaymentMethodMobileMoney,
		MobileMoneyProvider: domain.ProviderMTN,
		MobileMoneyNumber:   "+237670000001",
		TotalAmount:         30000,
		Status:              domain.BookingStatusPending,
		PaymentStatus:       domain.PaymentStatusPending,
		CreatedAt:           time.Now(),
	}

	if err := repo.Create(context.Background(), booking); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingRepository_UpdateStatus_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	repo := NewBookingRepository(db)

	mock.ExpectExec("UPDATE bookings").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.UpdateStatus(context.Background(), "missing", domain.BookingStatusConfirmed, domain.PaymentStatusPaid, "KW-0001")
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRouteRepository_ReserveSeats_Insufficient(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	repo := NewRouteRepository(db)

	// The guarded UPDATE matches no row when seats are insufficient.
	mock.ExpectExec("UPDATE routes").
		WithArgs(5, "route-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.ReserveSeats(context.Background(), "route-1", 5)
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRouteRepository_ReleaseSeats(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	repo := NewRouteRepository(db)

	mock.ExpectExec("UPDATE routes").
		WithArgs(3, "route-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.ReleaseSeats(context.Background(), "route-1", 3); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// Releasing past the bus capacity matches no row.
	mock.ExpectExec("UPDATE routes").
		WithArgs(50, "route-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.ReleaseSeats(context.Background(), "route-1", 50)
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
