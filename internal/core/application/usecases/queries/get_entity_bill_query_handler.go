package queries

import (
	"context"
	"fmt"

	"fulfillment/internal/core/domain/model/directory"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/report"
	"fulfillment/internal/core/domain/model/stage"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"

	"github.com/shopspring/decimal"
)

// StockUnitLabel is the unit column value for weight-based bill lines.
const StockUnitLabel = "STOCK"

// PendingPricingRemark marks bill lines whose order has no pricing stage
// data yet; amounts on such lines are zero until pricing completes.
const PendingPricingRemark = "Pending Pricing"

// GetEntityBillQueryHandler flattens every order's matching
// collection-assignment lines into one entity's bill.
//
// Orders are iterated newest-first as the store lists them; serial
// numbers run sequentially across all orders in that iteration order.
// Payment routing is binary: a paid order puts the full line amount into
// Paid, any other order puts it into Outstanding.
type GetEntityBillQueryHandler struct {
	store   ports.OrderStore
	drivers ports.DriverDirectory
}

// NewGetEntityBillQueryHandler creates a handler for entity bills.
func NewGetEntityBillQueryHandler(
	store ports.OrderStore,
	drivers ports.DriverDirectory,
) GetEntityBillQueryHandler {
	return GetEntityBillQueryHandler{store: store, drivers: drivers}
}

// Handle derives the bill rows of the queried entity across all orders.
func (h GetEntityBillQueryHandler) Handle(
	ctx context.Context,
	query GetEntityBillQuery,
) ([]report.BillLine, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.store.ListOrders(ctx)
	if err != nil {
		return nil, err
	}

	driverList, err := h.drivers.ListDrivers(ctx)
	if err != nil {
		return nil, err
	}
	driverIndex := directory.NewDriverIndex(driverList)

	pricing := services.NewPricingCalculator()

	lines := make([]report.BillLine, 0)
	serial := 0

	for _, o := range orders {
		asg, err := h.store.GetStageAssignment(ctx, o.ID())
		if err != nil {
			return nil, err
		}

		stage4 := asg.Stage4().ProductRows
		resolved := buildResolvedLines(o, asg, driverIndex)

		for i, line := range asg.Stage1().ProductAssignments {
			if line.EntityType != query.EntityType() || line.EntityID != query.EntityID() {
				continue
			}

			r := resolved[i]
			serial++
			priced := r.PricePerKg.IsPositive()

			billLine := report.BillLine{
				SerialNo:    serial,
				Date:        o.OrderDate(),
				Product:     r.Product,
				Unit:        unitLabel(line),
				Quantity:    r.QuantityKg,
				Price:       r.PricePerKg,
				MarketPrice: pricing.MarketPriceFor(r.Product, stage4),
				Amount:      r.Amount,
				Remarks:     remarks(o, priced),
			}

			if o.PaymentStatus().IsPaid() {
				billLine.PaidAmount = r.Amount
				billLine.OutstandingAmount = decimal.Zero
			} else {
				billLine.PaidAmount = decimal.Zero
				billLine.OutstandingAmount = r.Amount
			}

			lines = append(lines, billLine)
		}
	}

	return lines, nil
}

// unitLabel renders the bill's unit column: the box count for box-based
// lines, STOCK for weight-based ones.
func unitLabel(line stage.Stage1Item) string {
	if line.IsBoxBased() {
		return fmt.Sprintf("%d Box", line.AssignedBoxes)
	}
	return StockUnitLabel
}

// remarks carries the order reference, with a pending-pricing note when
// the order has no pricing data yet.
func remarks(o *order.Order, priced bool) string {
	if !priced {
		return fmt.Sprintf("%s (%s)", o.ID().String(), PendingPricingRemark)
	}
	return o.ID().String()
}
