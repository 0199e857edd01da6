package wizard

import (
	"errors"
	"testing"

	"kamerways/internal/domain"
)

func validPassenger() domain.PassengerDetails {
	return domain.PassengerDetails{
		Name:     "John Doe",
		Email:    "john.doe@email.com",
		Phone:    "+237670000001",
		Age:      29,
		IDNumber: "CM-1234-5678",
	}
}

func TestSubmitPassenger_ValidInput_Advances(t *testing.T) {
	t.Parallel()

	s := NewSession("w-1", "route-1")

	if err := s.SubmitPassenger(validPassenger()); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if s.Step != StepRoute {
		t.Errorf("expected step %s, got %s", StepRoute, s.Step)
	}
	if s.Draft.Passenger.Gender != domain.GenderMale {
		t.Errorf("expected gender to default to male, got %s", s.Draft.Passenger.Gender)
	}
}

func TestSubmitPassenger_MissingField_StaysOnStep(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		mutate  func(*domain.PassengerDetails)
		wantErr error
	}{
		{"missing name", func(p *domain.PassengerDetails) { p.Name = "" }, ErrPassengerIncomplete},
		{"missing email", func(p *domain.PassengerDetails) { p.Email = "" }, ErrPassengerIncomplete},
		{"missing phone", func(p *domain.PassengerDetails) { p.Phone = "" }, ErrPassengerIncomplete},
		{"missing id number", func(p *domain.PassengerDetails) { p.IDNumber = "" }, ErrPassengerIncomplete},
		{"zero age", func(p *domain.PassengerDetails) { p.Age = 0 }, ErrInvalidAge},
		{"negative age", func(p *domain.PassengerDetails) { p.Age = -3 }, ErrInvalidAge},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s := NewSession("w-1", "route-1")
			p := validPassenger()
			tc.mutate(&p)

			err := s.SubmitPassenger(p)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			if s.Step != StepPassenger {
				t.Errorf("expected session to remain on passenger step, got %s", s.Step)
			}
		})
	}
}

func TestSelectSeats_LabelsAndBounds(t *testing.T) {
	t.Parallel()

	s := NewSession("w-1", "route-1")
	if err := s.SubmitPassenger(validPassenger()); err != nil {
		t.Fatal(err)
	}
	if err := s.ConfirmRoute(); err != nil {
		t.Fatal(err)
	}

	if err := s.SelectSeats(0, 10); !errors.Is(err, ErrNoSeatsSelected) {
		t.Errorf("expected ErrNoSeatsSelected for zero seats, got %v", err)
	}
	if err := s.SelectSeats(11, 10); !errors.Is(err, ErrNotEnoughSeats) {
		t.Errorf("expected ErrNotEnoughSeats for over-selection, got %v", err)
	}

	if err := s.SelectSeats(3, 10); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := []string{"S1", "S2", "S3"}
	if len(s.Draft.SeatLabels) != len(want) {
		t.Fatalf("expected %d labels, got %d", len(want), len(s.Draft.SeatLabels))
	}
	for i, label := range want {
		if s.Draft.SeatLabels[i] != label {
			t.Errorf("label %d: expected %s, got %s", i, label, s.Draft.SeatLabels[i])
		}
	}
	if s.Step != StepPayment {
		t.Errorf("expected step %s, got %s", StepPayment, s.Step)
	}
}

func TestValidateSubmission_PaymentRules(t *testing.T) {
	t.Parallel()

	atPayment := func(t *testing.T) *Session {
		t.Helper()
		s := NewSession("w-1", "route-1")
		if err := s.SubmitPassenger(validPassenger()); err != nil {
			t.Fatal(err)
		}
		if err := s.ConfirmRoute(); err != nil {
			t.Fatal(err)
		}
		if err := s.SelectSeats(2, 20); err != nil {
			t.Fatal(err)
		}
		return s
	}

	t.Run("mobile money without provider blocks submission", func(t *testing.T) {
		s := atPayment(t)
		if err := s.SetPayment(domain.PaymentMethodMobileMoney, "", ""); err != nil {
			t.Fatal(err)
		}
		if err := s.ValidateSubmission(); !errors.Is(err, ErrMobileMoneyIncomplete) {
			t.Errorf("expected ErrMobileMoneyIncomplete, got %v", err)
		}
	})

	t.Run("mobile money with provider and number passes", func(t *testing.T) {
		s := atPayment(t)
		if err := s.SetPayment(domain.PaymentMethodMobileMoney, domain.ProviderMTN, "+237670000001"); err != nil {
			t.Fatal(err)
		}
		if err := s.ValidateSubmission(); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("bank card requires no further input", func(t *testing.T) {
		s := atPayment(t)
		if err := s.SetPayment(domain.PaymentMethodBankCard, "", ""); err != nil {
			t.Fatal(err)
		}
		if err := s.ValidateSubmission(); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("unknown method rejected", func(t *testing.T) {
		s := atPayment(t)
		if err := s.SetPayment("cash", "", ""); !errors.Is(err, ErrInvalidPaymentMethod) {
			t.Errorf("expected ErrInvalidPaymentMethod, got %v", err)
		}
	})
}

func TestBack_PreservesDraft(t *testing.T) {
	t.Parallel()

	s := NewSession("w-1", "route-1")
	p := validPassenger()
	if err := s.SubmitPassenger(p); err != nil {
		t.Fatal(err)
	}
	if err := s.ConfirmRoute(); err != nil {
		t.Fatal(err)
	}
	if err := s.SelectSeats(2, 20); err != nil {
		t.Fatal(err)
	}

	// Walk back to the passenger step and forward again.
	for _, want := range []Step{StepSeats, StepRoute, StepPassenger} {
		if err := s.Back(); err != nil {
			t.Fatalf("back failed: %v", err)
		}
		if s.Step != want {
			t.Fatalf("expected step %s, got %s", want, s.Step)
		}
	}

	p.Gender = domain.GenderMale // defaulted on submission
	if s.Draft.Passenger != p {
		t.Errorf("draft passenger changed after going back: %+v", s.Draft.Passenger)
	}
	if s.Draft.SeatCount != 2 {
		t.Errorf("seat count lost after going back: %d", s.Draft.SeatCount)
	}

	// Forward with the same values reproduces the same draft.
	if err := s.SubmitPassenger(s.Draft.Passenger); err != nil {
		t.Fatal(err)
	}
	if err := s.ConfirmRoute(); err != nil {
		t.Fatal(err)
	}
	if err := s.SelectSeats(s.Draft.SeatCount, 20); err != nil {
		t.Fatal(err)
	}
	if s.Draft.SeatCount != 2 || len(s.Draft.SeatLabels) != 2 {
		t.Errorf("draft not reproduced after back/forward: %+v", s.Draft)
	}
}

func TestIllegalTransitions_Rejected(t *testing.T) {
	t.Parallel()

	s := NewSession("w-1", "route-1")

	if err := s.Back(); !errors.Is(err, ErrIllegalTransition) {
		t.Errorf("back from first step: expected ErrIllegalTransition, got %v", err)
	}
	if err := s.ConfirmRoute(); !errors.Is(err, ErrIllegalTransition) {
		t.Errorf("route confirm from passenger step: expected ErrIllegalTransition, got %v", err)
	}
	if err := s.SelectSeats(1, 10); !errors.Is(err, ErrIllegalTransition) {
		t.Errorf("seat selection from passenger step: expected ErrIllegalTransition, got %v", err)
	}
	if err := s.ValidateSubmission(); !errors.Is(err, ErrIllegalTransition) {
		t.Errorf("submission from passenger step: expected ErrIllegalTransition, got %v", err)
	}
}

func TestFinish_TerminalEitherWay(t *testing.T) {
	t.Parallel()

	run := func(t *testing.T, submitErr error) *Session {
		t.Helper()
		s := NewSession("w-1", "route-1")
		if err := s.SubmitPassenger(validPassenger()); err != nil {
			t.Fatal(err)
		}
		if err := s.ConfirmRoute(); err != nil {
			t.Fatal(err)
		}
		if err := s.SelectSeats(2, 20); err != nil {
			t.Fatal(err)
		}
		if err := s.SetPayment(domain.PaymentMethodBankCard, "", ""); err != nil {
			t.Fatal(err)
		}
		if err := s.Finish("booking-1", 30000, submitErr); err != nil {
			t.Fatal(err)
		}
		return s
	}

	t.Run("success", func(t *testing.T) {
		s := run(t, nil)
		if s.Outcome != OutcomeSuccess || s.Total != 30000 || s.BookingID != "booking-1" {
			t.Errorf("unexpected success state: %+v", s)
		}
		if !s.Done() {
			t.Error("expected session to be done")
		}
	})

	t.Run("failure records server message, no retry path", func(t *testing.T) {
		s := run(t, errors.New("payment provider unavailable"))
		if s.Outcome != OutcomeFailure {
			t.Errorf("expected failure outcome, got %s", s.Outcome)
		}
		if s.Message != "payment provider unavailable" {
			t.Errorf("expected server message to surface, got %q", s.Message)
		}
		// Terminal: every further action is illegal.
		if err := s.Back(); !errors.Is(err, ErrIllegalTransition) {
			t.Errorf("expected terminal step to reject back, got %v", err)
		}
		if err := s.Finish("", 0, nil); !errors.Is(err, ErrIllegalTransition) {
			t.Errorf("expected terminal step to reject resubmission, got %v", err)
		}
	})
}
