package service

import (
	"context"

	"kamerways/internal/domain"
)

// PSP is the interface for a payment service provider.
type PSP interface {
	Charge(ctx context.Context, method domain.PaymentMethod, amount int64) (bool, error)
}

// MockPSP is a stand-in payment provider. There is no gateway
// integration; the card form is a presentational placeholder and mobile
// money charges are assumed to settle.
type MockPSP struct{}

// NewMockPSP creates a new mock PSP.
func NewMockPSP() *MockPSP {
	return &MockPSP{}
}

// Charge simulates a payment charge. Always succeeds.
func (p *MockPSP) Charge(ctx context.Context, method domain.PaymentMethod, amount int64) (bool, error) {
	return true, nil
}

// ValidatePaymentMethod validates a payment method string.
func ValidatePaymentMethod(method string) (domain.PaymentMethod, error) {
	switch domain.PaymentMethod(method) {
	case domain.PaymentMethodMobileMoney, domain.PaymentMethodBankCard:
		return domain.PaymentMethod(method), nil
	default:
		return "", ErrInvalidPaymentMethod
	}
}

// ValidateProvider validates a mobile money provider string.
func ValidateProvider(provider string) (domain.MobileMoneyProvider, error) {
	switch domain.MobileMoneyProvider(provider) {
	case domain.ProviderMTN, domain.ProviderOrange:
		return domain.MobileMoneyProvider(provider), nil
	case "":
		return "", nil
	default:
		return "", ErrInvalidProvider
	}
}
