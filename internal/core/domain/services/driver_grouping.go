package services

import (
	"fmt"

	"fulfillment/internal/core/domain/model/directory"
	"fulfillment/internal/core/domain/model/report"
	"fulfillment/internal/core/domain/model/stage"
)

const (
	// UnassignedDriverLabel is the bucket label for routing lines with no
	// driver information at all.
	UnassignedDriverLabel = "Unassigned"
)

// DriverNotFoundLabel formats the sentinel bucket label for a routing
// line whose selected driver id is absent from the driver directory.
func DriverNotFoundLabel(driverID string) string {
	return fmt.Sprintf("Driver Not Found (ID: %s)", driverID)
}

// DriverGrouping assigns each routing line to a driver bucket.
//
// Driver name resolution order for a line:
//  1. An airport group entry for the product with a non-empty driver.
//  2. The line's selected driver id, resolved against the directory;
//     an id the directory does not know yields the Driver Not Found
//     sentinel label instead of failing.
//  3. The Unassigned label.
//
// Buckets keep first-encounter order of their driver, so bucket numbering
// is reproducible given stable input ordering.
type DriverGrouping struct {
	resolver QuantityResolver
	pricing  PricingCalculator
}

// NewDriverGrouping creates a DriverGrouping.
func NewDriverGrouping() DriverGrouping {
	return DriverGrouping{
		resolver: NewQuantityResolver(),
		pricing:  NewPricingCalculator(),
	}
}

// ResolveDriverName resolves the bucket label for one routing line.
func (g DriverGrouping) ResolveDriverName(
	item stage.Stage3Item,
	airportGroups []stage.AirportGroup,
	drivers directory.DriverIndex,
) string {
	for _, group := range airportGroups {
		for _, p := range group.Products {
			if MatchProduct(p.Product, item.Product) && p.Driver != "" {
				return p.Driver
			}
		}
	}

	if item.SelectedDriverID != "" {
		if name, ok := drivers.DisplayName(item.SelectedDriverID); ok {
			return name
		}
		return DriverNotFoundLabel(item.SelectedDriverID)
	}

	return UnassignedDriverLabel
}

// GroupByDriver partitions routing lines into driver buckets, joining the
// pricing stage onto each line and aggregating per-bucket totals. Lines
// are priced against the quantity the cross-stage resolver chooses for
// their product, keeping bucket amounts consistent with the bill view.
func (g DriverGrouping) GroupByDriver(
	stage3Items []stage.Stage3Item,
	airportGroups []stage.AirportGroup,
	drivers directory.DriverIndex,
	stage4Items []stage.Stage4Item,
) *report.DriverBuckets {
	buckets := report.NewDriverBuckets()

	for _, item := range stage3Items {
		driverName := g.ResolveDriverName(item, airportGroups, drivers)
		bucket := buckets.Get(driverName)

		quantity, _ := g.resolver.Resolve(item.Product, nil, nil, stage3Items, stage4Items)
		pricePerKg, amount, priced := g.pricing.ComputeAmount(item.Product, quantity, stage4Items)

		bucket.Items = append(bucket.Items, report.DriverBucketItem{
			Product:         item.Product,
			Labour:          item.Labour,
			CT:              item.CT,
			WeightKg:        item.GrossWeightKg(),
			Packages:        item.NoOfPkgs,
			AirportName:     item.AirportName,
			AirportLocation: item.AirportLocation,
			PricePerKg:      pricePerKg,
			Amount:          amount,
			PricingPending:  !priced,
		})
		bucket.TotalWeightKg += item.GrossWeightKg()
		bucket.TotalPackages += item.NoOfPkgs
		bucket.TotalAmount = bucket.TotalAmount.Add(amount)
	}

	return buckets
}
