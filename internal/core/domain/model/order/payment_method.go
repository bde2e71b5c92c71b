package order

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

// PaymentMethod is the label a customer picks when placing a self-service
// order. It is informational only; no payment gateway sits behind it.
// Walk-in till orders carry no payment method.
type PaymentMethod string

const (
	PaymentCash          PaymentMethod = "CASH"
	PaymentCreditCard    PaymentMethod = "CREDIT_CARD"
	PaymentDebitCard     PaymentMethod = "DEBIT_CARD"
	PaymentOnlinePayment PaymentMethod = "ONLINE_PAYMENT"
)

func validPaymentMethods() map[PaymentMethod]struct{} {
	return map[PaymentMethod]struct{}{
		PaymentCash:          {},
		PaymentCreditCard:    {},
		PaymentDebitCard:     {},
		PaymentOnlinePayment: {},
	}
}

// PaymentMethodFromString parses a payment method received from a request.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	method := PaymentMethod(s)
	if err := method.Validate(); err != nil {
		return "", err
	}
	return method, nil
}

// Validate checks the method is one of the four enumerated values.
func (m PaymentMethod) Validate() error {
	if _, ok := validPaymentMethods()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("paymentMethod",
			fmt.Errorf("%q is not a valid payment method", string(m)))
	}
	return nil
}

// String returns the wire representation of the method.
func (m PaymentMethod) String() string {
	return string(m)
}
