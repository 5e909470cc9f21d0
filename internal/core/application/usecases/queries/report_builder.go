package queries

import (
	"fulfillment/internal/core/domain/model/directory"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/report"
	"fulfillment/internal/core/domain/model/stage"
	"fulfillment/internal/core/domain/services"

	"github.com/shopspring/decimal"
)

// UnknownEntityLabel is rendered when an entity id has no directory entry.
const UnknownEntityLabel = "Unknown"

// entityGroupKey identifies one (entityType, entityId) group of
// collection-assignment lines.
type entityGroupKey struct {
	entityType stage.EntityType
	entityID   string
}

// buildResolvedLines materializes the reconciled view of one order: one
// report.ResolvedLine per collection-assignment line, index-aligned with
// the stage-1 assignments. Each line carries the fallback-resolved
// quantity, the per-kg price and amount joined from the pricing stage,
// and the driver the routing stage assigns the product to. A product the
// routing stage has not picked up yet carries an empty driver name.
//
// Entity rows and bill rows are both derived from these lines.
func buildResolvedLines(
	o *order.Order,
	asg *stage.Assignment,
	drivers directory.DriverIndex,
) []report.ResolvedLine {
	resolver := services.NewQuantityResolver()
	pricing := services.NewPricingCalculator()
	grouping := services.NewDriverGrouping()

	stage2 := asg.Stage2().Items
	stage3 := asg.Stage3().Products
	stage4 := asg.Stage4().ProductRows
	airportGroups := asg.Stage3().AirportGroups

	assignments := asg.Stage1().ProductAssignments
	lines := make([]report.ResolvedLine, 0, len(assignments))

	for _, line := range assignments {
		quantity, source := resolver.ResolveLine(line, stage2, stage3, stage4)
		pricePerKg, amount, _ := pricing.ComputeAmount(line.Product, quantity, stage4)

		driverName := ""
		if routed, ok := routingLineFor(line.Product, stage3); ok {
			driverName = grouping.ResolveDriverName(routed, airportGroups, drivers)
		}

		lines = append(lines, report.ResolvedLine{
			OrderID:    o.ID(),
			Product:    line.Product,
			EntityType: line.EntityType,
			EntityID:   line.EntityID,
			QuantityKg: quantity,
			Source:     source,
			DriverName: driverName,
			PricePerKg: pricePerKg,
			Amount:     amount,
		})
	}

	return lines
}

// routingLineFor finds the first routing line for a product.
func routingLineFor(product string, stage3Items []stage.Stage3Item) (stage.Stage3Item, bool) {
	for _, item := range stage3Items {
		if services.MatchProduct(item.Product, product) {
			return item, true
		}
	}
	return stage.Stage3Item{}, false
}

// buildEntityAmounts groups an order's resolved lines by supplying
// entity and sums their amounts per group. Groups keep the order their
// entity was first encountered in, so row output is deterministic.
func buildEntityAmounts(
	o *order.Order,
	lines []report.ResolvedLine,
	entities directory.EntityIndex,
) []report.EntityAmount {
	var keys []entityGroupKey
	groups := make(map[entityGroupKey]*report.EntityAmount)

	for _, line := range lines {
		key := entityGroupKey{entityType: line.EntityType, entityID: line.EntityID}
		row, ok := groups[key]
		if !ok {
			displayName, found := entities.DisplayName(line.EntityType, line.EntityID)
			if !found {
				displayName = UnknownEntityLabel
			}
			row = &report.EntityAmount{
				OrderID:           o.ID(),
				EntityType:        line.EntityType,
				EntityID:          line.EntityID,
				EntityDisplayName: displayName,
				Date:              o.OrderDate(),
				TotalAmount:       decimal.Zero,
				PaymentStatus:     o.PaymentStatus(),
			}
			groups[key] = row
			keys = append(keys, key)
		}

		row.TotalAmount = row.TotalAmount.Add(line.Amount)
		if !containsProduct(row.Products, line.Product) {
			row.Products = append(row.Products, line.Product)
		}
	}

	rows := make([]report.EntityAmount, 0, len(keys))
	for _, key := range keys {
		rows = append(rows, *groups[key])
	}
	return rows
}

func containsProduct(products []string, product string) bool {
	for _, p := range products {
		if services.MatchProduct(p, product) {
			return true
		}
	}
	return false
}

// buildDriverBuckets derives the ordered driver buckets of one order
// from its routing stage, enriched with pricing.
func buildDriverBuckets(asg *stage.Assignment, drivers directory.DriverIndex) *report.DriverBuckets {
	grouping := services.NewDriverGrouping()
	return grouping.GroupByDriver(
		asg.Stage3().Products,
		asg.Stage3().AirportGroups,
		drivers,
		asg.Stage4().ProductRows,
	)
}
