// Package kernel provides shared value objects used across the
// fulfillment domain model: order identifiers, payment status, and the
// weight-string parsing convention used by the delivery-routing stage.
//
// All value objects follow the constructor pattern: the zero value is
// invalid and Validate() detects instances created without going through
// the constructor.
package kernel
