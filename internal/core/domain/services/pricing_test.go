package services_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/stage"
	"fulfillment/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPricingCalculator_PriceFor(t *testing.T) {
	calc := services.NewPricingCalculator()

	t.Run("final_price_preferred", func(t *testing.T) {
		rows := []stage.Stage4Item{
			{Product: "Tomato", FinalPrice: decimal.NewFromInt(15), Price: decimal.NewFromInt(12)},
		}

		price, ok := calc.PriceFor("Tomato", rows)

		assert.True(t, ok)
		assert.True(t, price.Equal(decimal.NewFromInt(15)))
	})

	t.Run("price_field_as_fallback", func(t *testing.T) {
		rows := []stage.Stage4Item{{Product: "Tomato", Price: decimal.NewFromInt(12)}}

		price, ok := calc.PriceFor("Tomato", rows)

		assert.True(t, ok)
		assert.True(t, price.Equal(decimal.NewFromInt(12)))
	})

	t.Run("no_pricing_data_reports_not_priced", func(t *testing.T) {
		price, ok := calc.PriceFor("Tomato", nil)

		assert.False(t, ok)
		assert.True(t, price.IsZero())
	})
}

func TestPricingCalculator_ComputeAmount(t *testing.T) {
	calc := services.NewPricingCalculator()

	t.Run("amount_is_price_times_quantity", func(t *testing.T) {
		rows := []stage.Stage4Item{{Product: "Tomato", FinalPrice: decimal.NewFromInt(15)}}

		price, amount, priced := calc.ComputeAmount("Tomato", 30, rows)

		assert.True(t, priced)
		assert.True(t, price.Equal(decimal.NewFromInt(15)))
		assert.True(t, amount.Equal(decimal.NewFromInt(450)))
	})

	t.Run("unpriced_product_gives_zero_amount", func(t *testing.T) {
		_, amount, priced := calc.ComputeAmount("Tomato", 30, nil)

		assert.False(t, priced)
		assert.True(t, amount.IsZero())
	})

	t.Run("zero_quantity_gives_zero_amount", func(t *testing.T) {
		rows := []stage.Stage4Item{{Product: "Tomato", FinalPrice: decimal.NewFromInt(15)}}

		price, amount, priced := calc.ComputeAmount("Tomato", 0, rows)

		assert.True(t, priced)
		assert.True(t, price.Equal(decimal.NewFromInt(15)))
		assert.True(t, amount.IsZero())
	})

	t.Run("fractional_quantities_stay_exact", func(t *testing.T) {
		rows := []stage.Stage4Item{{Product: "Beans", FinalPrice: decimal.NewFromInt(20)}}

		_, amount, _ := calc.ComputeAmount("Beans", 75.5, rows)

		assert.True(t, amount.Equal(decimal.NewFromInt(1510)))
	})
}

func TestPricingCalculator_MarketPriceFor(t *testing.T) {
	calc := services.NewPricingCalculator()
	rows := []stage.Stage4Item{{Product: "Tomato", MarketPrice: decimal.NewFromInt(18)}}

	assert.True(t, calc.MarketPriceFor("Tomato", rows).Equal(decimal.NewFromInt(18)))
	assert.True(t, calc.MarketPriceFor("Okra", rows).IsZero())
}
