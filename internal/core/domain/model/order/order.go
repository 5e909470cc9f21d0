package order

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not
// created through the NewOrder factory method.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Item is one ordered product line as the customer placed it.
// TotalPrice is the quoted price for the whole line, not per kilogram.
type Item struct {
	ProductName string
	TotalPrice  decimal.Decimal
}

// Order is the read model of one customer order as held by the external
// order-management store. This core never mutates orders; it reads them to
// anchor reports (date, payment status, ordered products).
//
// Order invariants:
//   - Must have a valid identifier
//   - Must have a valid payment status
//   - Order date must be set
//   - Can only be created through NewOrder
type Order struct {
	// id is the store-minted order identifier
	id kernel.OrderID

	// customerName is display-only metadata
	customerName string

	// orderDate anchors bill rows and report headers
	orderDate time.Time

	// paymentStatus routes bill amounts to paid or outstanding
	paymentStatus kernel.PaymentStatus

	// items are the ordered product lines
	items []Item

	isConstructed bool
}

// NewOrder creates an Order read model with validation.
//
// Parameters:
//   - id: store-minted identifier (must be valid)
//   - customerName: display metadata, may be empty
//   - orderDate: when the order was placed (must not be zero)
//   - paymentStatus: Paid or Pending
//   - items: ordered product lines, may be empty
func NewOrder(
	id kernel.OrderID,
	customerName string,
	orderDate time.Time,
	paymentStatus kernel.PaymentStatus,
	items []Item,
) (*Order, error) {
	o := &Order{
		customerName:  customerName,
		items:         items,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderDate(orderDate),
		o.setPaymentStatus(paymentStatus),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// CustomerName returns the display name of the ordering customer.
func (o *Order) CustomerName() string {
	return o.customerName
}

// OrderDate returns when the order was placed.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// PaymentStatus returns the order's settlement state.
func (o *Order) PaymentStatus() kernel.PaymentStatus {
	return o.paymentStatus
}

// Items returns the ordered product lines.
func (o *Order) Items() []Item {
	return o.items
}

// ProductNames returns the ordered product labels in line order.
// Used by report rows that render products as one joined display string.
func (o *Order) ProductNames() []string {
	names := make([]string, 0, len(o.items))
	for _, item := range o.items {
		names = append(names, item.ProductName)
	}
	return names
}

func (o *Order) setID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderDate(orderDate time.Time) error {
	if orderDate.IsZero() {
		return errs.NewValueIsRequiredError("orderDate")
	}
	o.orderDate = orderDate
	return nil
}

func (o *Order) setPaymentStatus(status kernel.PaymentStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.paymentStatus = status
	return nil
}
