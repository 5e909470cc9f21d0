package stage

import (
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// Stage1Item is one collection assignment line: a product sourced from
// one farmer, supplier, or third party.
type Stage1Item struct {
	Product       string
	EntityType    EntityType
	EntityID      string
	AssignedQty   float64
	AssignedBoxes int
	Place         string
}

// IsBoxBased reports whether the line was assigned by box count rather
// than by weight.
func (i Stage1Item) IsBoxBased() bool {
	return i.AssignedBoxes > 0 && i.AssignedQty == 0
}

// DeliveryRoute is a collection-stage routing note for a product.
type DeliveryRoute struct {
	Product string
	Place   string
	Vehicle string
}

// Stage2Item is one packaging/quality line for a product.
type Stage2Item struct {
	Product        string
	WastageKg      float64
	ReuseKg        float64
	LabourName     string
	PickedQuantity float64
}

// Stage3Item is one delivery-routing line for a product.
// GrossWeight is kept in its raw string form ("120kg") because that is
// what the routing screen persists; GrossWeightKg parses it on demand.
type Stage3Item struct {
	Product          string
	GrossWeight      string
	Labour           string
	CT               string
	NoOfPkgs         int
	AirportName      string
	AirportLocation  string
	SelectedDriverID string
}

// GrossWeightKg returns the parsed kilogram value of the raw gross
// weight. Unit suffixes are discarded; unparseable input yields 0.
func (i Stage3Item) GrossWeightKg() float64 {
	return kernel.ParseWeight(i.GrossWeight)
}

// AirportProduct is one product/driver pairing inside an airport group.
type AirportProduct struct {
	Product string
	Driver  string
}

// AirportGroup maps an airport code to the products delivered there and
// the driver responsible for each. When a product appears in a group with
// a non-empty driver, that driver is authoritative over the item's own
// SelectedDriverID.
type AirportGroup struct {
	AirportCode string
	Products    []AirportProduct
}

// Stage4Item is one pricing line for a product. FinalPrice and Price are
// alternates for the agreed per-kg price, NetWeight and Quantity are
// alternates for the weighed quantity; which field is populated depends
// on the pricing screen's review step. Use EffectivePrice and
// EffectiveNetWeight rather than reading fields directly.
type Stage4Item struct {
	Product     string
	MarketPrice decimal.Decimal
	FinalPrice  decimal.Decimal
	Price       decimal.Decimal
	NetWeight   float64
	Quantity    float64
}

// stage4PriceAccessor reads one candidate per-kg price field from a
// pricing line, reporting whether the field carries a usable value.
type stage4PriceAccessor func(Stage4Item) (decimal.Decimal, bool)

// stage4WeightAccessor reads one candidate quantity field from a pricing
// line, reporting whether the field carries a usable value.
type stage4WeightAccessor func(Stage4Item) (float64, bool)

func readFinalPrice(i Stage4Item) (decimal.Decimal, bool) {
	return i.FinalPrice, i.FinalPrice.IsPositive()
}

func readPrice(i Stage4Item) (decimal.Decimal, bool) {
	return i.Price, i.Price.IsPositive()
}

func readNetWeight(i Stage4Item) (float64, bool) {
	return i.NetWeight, i.NetWeight > 0
}

func readQuantity(i Stage4Item) (float64, bool) {
	return i.Quantity, i.Quantity > 0
}

// stage4PriceChain is the ordered fallback chain for the per-kg price.
func stage4PriceChain() []stage4PriceAccessor {
	return []stage4PriceAccessor{readFinalPrice, readPrice}
}

// stage4WeightChain is the ordered fallback chain for the weighed quantity.
func stage4WeightChain() []stage4WeightAccessor {
	return []stage4WeightAccessor{readNetWeight, readQuantity}
}

// EffectivePrice returns the agreed per-kg price for the line: the first
// populated field of the price fallback chain, or zero when the line has
// no usable price.
func (i Stage4Item) EffectivePrice() decimal.Decimal {
	for _, read := range stage4PriceChain() {
		if v, ok := read(i); ok {
			return v
		}
	}
	return decimal.Zero
}

// EffectiveNetWeight returns the weighed quantity for the line: the first
// populated field of the weight fallback chain, or 0 when the line has no
// usable quantity.
func (i Stage4Item) EffectiveNetWeight() float64 {
	for _, read := range stage4WeightChain() {
		if v, ok := read(i); ok {
			return v
		}
	}
	return 0
}
