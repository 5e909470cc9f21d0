package kernel

import (
	"strings"

	"fulfillment/internal/pkg/errs"
)

// ErrOrderIDIsNotConstructed is returned when an OrderID was not created
// through NewOrderID. The zero value is invalid.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError(
	"order id must be created via NewOrderID constructor")

// OrderID identifies one order in the external order-management store.
// It is an opaque, non-empty string: the store mints identifiers and this
// core never interprets their contents.
//
// Example:
//
//	id, err := kernel.NewOrderID("ORD-1042")
//	if err != nil {
//	    // Handle validation error
//	}
type OrderID struct {
	value string

	isConstructed bool
}

// NewOrderID creates an OrderID from its raw string form.
// Surrounding whitespace is trimmed; an empty result is rejected.
func NewOrderID(raw string) (OrderID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return OrderID{}, errs.NewValueIsRequiredError("orderId")
	}

	return OrderID{value: trimmed, isConstructed: true}, nil
}

// Validate ensures the OrderID was created through NewOrderID.
func (id OrderID) Validate() error {
	if !id.isConstructed {
		return ErrOrderIDIsNotConstructed
	}
	return nil
}

// IsEqual compares two order identifiers by value.
func (id OrderID) IsEqual(other OrderID) bool {
	return id.value == other.value
}

// String returns the raw identifier.
func (id OrderID) String() string {
	return id.value
}
