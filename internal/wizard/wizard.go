package wizard

import (
	"time"

	"kamerways/internal/domain"
)

// Step is the closed set of wizard states. The flow is strictly linear:
// passenger details, route confirmation, seat selection, payment,
// confirmation. There is no branching and no skipping.
type Step string

const (
	StepPassenger    Step = "passenger"
	StepRoute        Step = "route"
	StepSeats        Step = "seats"
	StepPayment      Step = "payment"
	StepConfirmation Step = "confirmation"
)

// Action is an input accepted by the wizard.
type Action string

const (
	ActionNext   Action = "next"
	ActionBack   Action = "back"
	ActionSubmit Action = "submit"
)

// transitions is the full state × action table. Any (step, action) pair
// absent here is an illegal transition and is rejected with
// ErrIllegalTransition rather than falling through.
var transitions = map[Step]map[Action]Step{
	StepPassenger: {
		ActionNext: StepRoute,
	},
	StepRoute: {
		ActionNext: StepSeats,
		ActionBack: StepPassenger,
	},
	StepSeats: {
		ActionNext: StepPayment,
		ActionBack: StepRoute,
	},
	StepPayment: {
		ActionBack:   StepSeats,
		ActionSubmit: StepConfirmation,
	},
	// StepConfirmation is terminal: no outgoing transitions.
}

// Outcome records how a finished wizard session ended.
type Outcome string

const (
	OutcomeNone    Outcome = ""
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
)

// Session is one in-progress run of the booking wizard. The draft is
// created empty at mount, mutated step by step, and discarded after
// submission regardless of outcome.
type Session struct {
	ID        string
	Step      Step
	RouteID   string
	Draft     domain.BookingDraft
	Outcome   Outcome
	Message   string // server error message on failure
	Total     int64  // total paid, set on success
	BookingID string
	CreatedAt time.Time
}

// NewSession starts a fresh wizard session for the given route.
func NewSession(id, routeID string) *Session {
	return &Session{
		ID:        id,
		Step:      StepPassenger,
		RouteID:   routeID,
		Draft:     domain.BookingDraft{RouteID: routeID},
		CreatedAt: time.Now(),
	}
}

// advance moves the session along the transition table.
func (s *Session) advance(action Action) error {
	next, ok := transitions[s.Step][action]
	if !ok {
		return ErrIllegalTransition
	}
	s.Step = next
	return nil
}

// SubmitPassenger validates and stores passenger details, then advances
// to route confirmation. On a validation failure the session stays on
// the passenger step and the draft is untouched.
func (s *Session) SubmitPassenger(p domain.PassengerDetails) error {
	if s.Step != StepPassenger {
		return ErrIllegalTransition
	}
	if p.Name == "" || p.Email == "" || p.Phone == "" || p.IDNumber == "" {
		return ErrPassengerIncomplete
	}
	if p.Age <= 0 {
		return ErrInvalidAge
	}
	if p.Gender == "" {
		p.Gender = domain.GenderMale
	}
	s.Draft.Passenger = p
	return s.advance(ActionNext)
}

// ConfirmRoute acknowledges the read-only route display. It never
// validates anything; the step always advances.
func (s *Session) ConfirmRoute() error {
	if s.Step != StepRoute {
		return ErrIllegalTransition
	}
	return s.advance(ActionNext)
}

// SelectSeats stores the chosen seat count and derives the seat labels,
// then advances to payment. The count must be within 1..available.
func (s *Session) SelectSeats(count, available int) error {
	if s.Step != StepSeats {
		return ErrIllegalTransition
	}
	if count <= 0 {
		return ErrNoSeatsSelected
	}
	if count > available {
		return ErrNotEnoughSeats
	}
	s.Draft.SeatCount = count
	s.Draft.SeatLabels = domain.SeatLabelsFor(count)
	return s.advance(ActionNext)
}

// SetPayment records the chosen payment method on the draft without
// advancing; mobile money completeness is enforced at submission, since
// the payment step doubles as the submission trigger.
func (s *Session) SetPayment(method domain.PaymentMethod, provider domain.MobileMoneyProvider, number string) error {
	if s.Step != StepPayment {
		return ErrIllegalTransition
	}
	switch method {
	case domain.PaymentMethodMobileMoney, domain.PaymentMethodBankCard:
	default:
		return ErrInvalidPaymentMethod
	}
	s.Draft.PaymentMethod = method
	s.Draft.MobileMoneyProvider = provider
	s.Draft.MobileMoneyNumber = number
	return nil
}

// ValidateSubmission checks the draft is complete enough to submit:
// at least one seat, a payment method, and for mobile money a provider
// and a number. Bank card needs nothing further; its card fields are
// presentational placeholders.
func (s *Session) ValidateSubmission() error {
	if s.Step != StepPayment {
		return ErrIllegalTransition
	}
	if s.Draft.SeatCount <= 0 {
		return ErrNoSeatsSelected
	}
	switch s.Draft.PaymentMethod {
	case domain.PaymentMethodMobileMoney:
		if s.Draft.MobileMoneyProvider == "" || s.Draft.MobileMoneyNumber == "" {
			return ErrMobileMoneyIncomplete
		}
	case domain.PaymentMethodBankCard:
	default:
		return ErrInvalidPaymentMethod
	}
	return nil
}

// Finish drives the session to its terminal confirmation step with the
// submission result. Success records the booking ID and total paid;
// failure records the server-provided message. Either way the session
// is done and accepts no further transitions.
func (s *Session) Finish(bookingID string, total int64, submitErr error) error {
	if err := s.advance(ActionSubmit); err != nil {
		return err
	}
	if submitErr != nil {
		s.Outcome = OutcomeFailure
		s.Message = submitErr.Error()
		return nil
	}
	s.Outcome = OutcomeSuccess
	s.BookingID = bookingID
	s.Total = total
	return nil
}

// Back returns to the immediately preceding step. Prior field values
// stay intact; going back never clears the draft.
func (s *Session) Back() error {
	return s.advance(ActionBack)
}

// Done reports whether the session has reached its terminal step.
func (s *Session) Done() bool {
	return s.Step == StepConfirmation
}
