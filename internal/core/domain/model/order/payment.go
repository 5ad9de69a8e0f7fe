package order

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrPaymentIsNotConstructed is returned when a Payment was not created
// through NewPayment.
var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment constructor")

// PaymentMethod enumerates how a guest intends to pay on delivery.
// No payment capture happens in this system; the method is informational.
type PaymentMethod int

const (
	// UnknownMethod represents an invalid or undefined payment method.
	UnknownMethod PaymentMethod = iota

	// Cash means payment in cash on delivery; a change-for amount may apply.
	Cash

	// Card means payment by card on delivery.
	Card

	// Pix means payment by instant bank transfer.
	Pix
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		Cash: "CASH",
		Card: "CARD",
		Pix:  "PIX",
	}
}

// PaymentMethodFromString parses the external representation of a method.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	for method, str := range getPaymentMethodStrings() {
		if str == s {
			return method, nil
		}
	}
	return UnknownMethod, errs.NewValueIsInvalidErrorWithCause("paymentMethod",
		fmt.Errorf("%q is not a valid payment method", s))
}

// String returns the canonical name of the method, e.g. "CASH".
func (m PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[m]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate checks if the PaymentMethod is one of the valid methods.
func (m PaymentMethod) Validate() error {
	if _, ok := getPaymentMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("paymentMethod",
			fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

// Payment holds the declared payment details of a guest order: the method
// and, for cash payments, the optional amount the customer will hand over
// so the courier can bring change.
type Payment struct {
	method    PaymentMethod
	changeFor *kernel.Money

	guard guard.ConstructorGuard
}

// NewPayment creates validated payment details.
// changeFor is optional and stored as given when present.
func NewPayment(method PaymentMethod, changeFor *kernel.Money) (Payment, error) {
	if err := method.Validate(); err != nil {
		return Payment{}, err
	}
	if changeFor != nil {
		if err := changeFor.Validate(); err != nil {
			return Payment{}, err
		}
	}

	return Payment{
		method:    method,
		changeFor: changeFor,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Method returns the declared payment method.
func (p Payment) Method() PaymentMethod {
	return p.method
}

// ChangeFor returns the amount the customer will pay with, if declared.
// Returns nil when no change is requested.
func (p Payment) ChangeFor() *kernel.Money {
	return p.changeFor
}

// Validate ensures the Payment was created via NewPayment.
func (p Payment) Validate() error {
	return p.guard.Validate(ErrPaymentIsNotConstructed)
}
