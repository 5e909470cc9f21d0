package services

import (
	"fulfillment/internal/core/domain/model/stage"

	"github.com/shopspring/decimal"
)

// PricingCalculator joins the pricing stage's per-kg price onto resolved
// quantities. An order whose pricing stage has no data yet produces zero
// prices and amounts flagged as pending, never an error; reports render
// such lines as "pending pricing".
type PricingCalculator struct{}

// NewPricingCalculator creates a PricingCalculator.
func NewPricingCalculator() PricingCalculator {
	return PricingCalculator{}
}

// PriceFor returns the agreed per-kg price for a product from the pricing
// rows. ok is false when no row prices the product yet.
func (c PricingCalculator) PriceFor(product string, stage4Items []stage.Stage4Item) (decimal.Decimal, bool) {
	for _, item := range stage4Items {
		if !MatchProduct(item.Product, product) {
			continue
		}
		if price := item.EffectivePrice(); price.IsPositive() {
			return price, true
		}
	}
	return decimal.Zero, false
}

// MarketPriceFor returns the recorded market price for a product, or zero
// when the pricing stage has none.
func (c PricingCalculator) MarketPriceFor(product string, stage4Items []stage.Stage4Item) decimal.Decimal {
	for _, item := range stage4Items {
		if MatchProduct(item.Product, product) && item.MarketPrice.IsPositive() {
			return item.MarketPrice
		}
	}
	return decimal.Zero
}

// ComputeAmount computes the monetary amount for quantityKg of a product.
// priced is false when the pricing stage holds no price for the product,
// in which case both price and amount are zero.
func (c PricingCalculator) ComputeAmount(
	product string,
	quantityKg float64,
	stage4Items []stage.Stage4Item,
) (pricePerKg, amount decimal.Decimal, priced bool) {
	pricePerKg, priced = c.PriceFor(product, stage4Items)
	if !priced || quantityKg == 0 {
		return pricePerKg, decimal.Zero, priced
	}

	amount = pricePerKg.Mul(decimal.NewFromFloat(quantityKg))
	return pricePerKg, amount, true
}
