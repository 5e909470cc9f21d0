package report

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/stage"

	"github.com/shopspring/decimal"
)

// QuantitySource names the stage that supplied a resolved quantity.
type QuantitySource int

const (
	// SourceNone means no stage held a positive quantity for the product.
	SourceNone QuantitySource = iota

	// SourceStage1 is the collection assignment's assigned quantity.
	SourceStage1

	// SourceStage2 is the packaging stage's picked quantity.
	SourceStage2

	// SourceStage3 is the routing stage's parsed gross weight.
	SourceStage3

	// SourceStage4 is the pricing stage's net weight (or quantity).
	SourceStage4
)

// String returns the stage label used in report annotations.
func (s QuantitySource) String() string {
	switch s {
	case SourceStage1:
		return "stage1"
	case SourceStage2:
		return "stage2"
	case SourceStage3:
		return "stage3"
	case SourceStage4:
		return "stage4"
	default:
		return "none"
	}
}

// ResolvedLine is the canonical reconciled view of one product line of
// one order: quantity chosen via the cross-stage fallback chain, price
// joined from the pricing stage, driver from the routing stage.
// Computed per report run, never persisted.
type ResolvedLine struct {
	OrderID    kernel.OrderID
	Product    string
	EntityType stage.EntityType
	EntityID   string
	QuantityKg float64
	Source     QuantitySource
	DriverName string
	PricePerKg decimal.Decimal
	Amount     decimal.Decimal
}

// EntityAmount is one entity-level summary row of an order report.
type EntityAmount struct {
	OrderID           kernel.OrderID
	EntityType        stage.EntityType
	EntityID          string
	EntityDisplayName string
	Products          []string
	Date              time.Time
	TotalAmount       decimal.Decimal
	PaymentStatus     kernel.PaymentStatus
}

// BillLine is one exportable row of a per-entity bill across orders.
// The full line amount lands in either Paid or Outstanding depending on
// the order's payment status; there is no partial split. MarketPrice is
// the pricing stage's recorded market rate, carried for comparison
// against the agreed price; it never feeds the amount.
type BillLine struct {
	SerialNo          int
	Date              time.Time
	Product           string
	Unit              string
	Quantity          float64
	Price             decimal.Decimal
	MarketPrice       decimal.Decimal
	Amount            decimal.Decimal
	PaidAmount        decimal.Decimal
	OutstandingAmount decimal.Decimal
	Remarks           string
}
