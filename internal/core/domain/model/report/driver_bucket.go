package report

import (
	"github.com/shopspring/decimal"
)

// DriverBucketItem is one product line inside a driver's bucket, carrying
// the routing columns plus the joined pricing columns.
type DriverBucketItem struct {
	Product         string
	Labour          string
	CT              string
	WeightKg        float64
	Packages        int
	AirportName     string
	AirportLocation string
	PricePerKg      decimal.Decimal
	Amount          decimal.Decimal
	PricingPending  bool
}

// DriverBucket is the set of routing lines assigned to one driver with
// aggregated totals. Built fresh per report run.
type DriverBucket struct {
	DriverName    string
	Items         []DriverBucketItem
	TotalWeightKg float64
	TotalPackages int
	TotalAmount   decimal.Decimal
}

// DriverBuckets is an ordered collection of driver buckets. Buckets keep
// the order in which their driver was first encountered in the routing
// lines; report numbering (driver 1, 2, 3...) depends on this order, so
// it must never fall back to map iteration.
type DriverBuckets struct {
	order   []string
	byName  map[string]int
	buckets []*DriverBucket
}

// NewDriverBuckets creates an empty ordered bucket collection.
func NewDriverBuckets() *DriverBuckets {
	return &DriverBuckets{byName: make(map[string]int)}
}

// Get returns the bucket for driverName, creating it at the end of the
// ordering on first encounter.
func (b *DriverBuckets) Get(driverName string) *DriverBucket {
	if idx, ok := b.byName[driverName]; ok {
		return b.buckets[idx]
	}

	bucket := &DriverBucket{DriverName: driverName, TotalAmount: decimal.Zero}
	b.byName[driverName] = len(b.buckets)
	b.order = append(b.order, driverName)
	b.buckets = append(b.buckets, bucket)
	return bucket
}

// Lookup returns the bucket for driverName without creating one.
func (b *DriverBuckets) Lookup(driverName string) (*DriverBucket, bool) {
	idx, ok := b.byName[driverName]
	if !ok {
		return nil, false
	}
	return b.buckets[idx], true
}

// Ordered returns the buckets in first-encounter order.
func (b *DriverBuckets) Ordered() []*DriverBucket {
	out := make([]*DriverBucket, len(b.buckets))
	copy(out, b.buckets)
	return out
}

// Len returns the number of buckets.
func (b *DriverBuckets) Len() int {
	return len(b.buckets)
}
