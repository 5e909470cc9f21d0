package kernel

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// PaymentStatus represents whether an order has been settled.
// Payment is binary in this workflow: an order is either fully paid or
// fully outstanding, there is no partial settlement.
type PaymentStatus int

const (
	// PaymentUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized PaymentStatus values.
	PaymentUnknown PaymentStatus = iota

	// PaymentPending means the full order amount is still outstanding.
	PaymentPending

	// PaymentPaid means the full order amount has been received.
	PaymentPaid
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentUnknown: "Unknown",
		PaymentPending: "Pending",
		PaymentPaid:    "Paid",
	}
}

// ParsePaymentStatus converts the store's string form to a PaymentStatus.
// Unrecognized input maps to PaymentPending: an order with no recorded
// settlement is treated as outstanding.
func ParsePaymentStatus(raw string) PaymentStatus {
	switch raw {
	case "Paid", "paid":
		return PaymentPaid
	default:
		return PaymentPending
	}
}

// Validate checks the PaymentStatus is one of the defined states.
func (s PaymentStatus) Validate() error {
	if s != PaymentPending && s != PaymentPaid {
		return errs.NewValueIsInvalidErrorWithCause("payment status",
			fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

// IsPaid reports whether the order amount has been received in full.
func (s PaymentStatus) IsPaid() bool {
	return s == PaymentPaid
}

// String returns the human-readable name of the status.
func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
