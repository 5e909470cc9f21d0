package stage_test

import (
	"encoding/json"
	"testing"

	"fulfillment/internal/core/domain/model/stage"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStage1(t *testing.T) {
	t.Run("parses_pre_parsed_structure", func(t *testing.T) {
		payload := map[string]any{
			"productAssignments": []any{
				map[string]any{
					"product":     "Tomato",
					"entityType":  "farmer",
					"entityId":    9,
					"assignedQty": 30,
					"place":       "Ooty",
				},
				map[string]any{
					"product":       "Okra",
					"entityType":    "supplier",
					"entityId":      "S-2",
					"assignedBoxes": 5,
				},
			},
			"deliveryRoutes": []any{
				map[string]any{"product": "Tomato", "place": "Ooty", "vehicle": "TN-43-1234"},
			},
		}

		data := stage.ParseStage1(payload)

		require.Len(t, data.ProductAssignments, 2)
		assert.Equal(t, "Tomato", data.ProductAssignments[0].Product)
		assert.Equal(t, stage.EntityFarmer, data.ProductAssignments[0].EntityType)
		assert.Equal(t, "9", data.ProductAssignments[0].EntityID)
		assert.InDelta(t, 30, data.ProductAssignments[0].AssignedQty, 1e-9)
		assert.False(t, data.ProductAssignments[0].IsBoxBased())

		assert.Equal(t, stage.EntitySupplier, data.ProductAssignments[1].EntityType)
		assert.Equal(t, 5, data.ProductAssignments[1].AssignedBoxes)
		assert.True(t, data.ProductAssignments[1].IsBoxBased())

		require.Len(t, data.DeliveryRoutes, 1)
		assert.Equal(t, "TN-43-1234", data.DeliveryRoutes[0].Vehicle)
	})

	t.Run("parses_serialized_text", func(t *testing.T) {
		raw := `{"productAssignments":[{"product":"Beans","entityType":"thirdParty","entityId":"T-1","assignedQty":"12.5"}]}`

		data := stage.ParseStage1(raw)

		require.Len(t, data.ProductAssignments, 1)
		assert.Equal(t, stage.EntityThirdParty, data.ProductAssignments[0].EntityType)
		assert.InDelta(t, 12.5, data.ProductAssignments[0].AssignedQty, 1e-9)
	})

	t.Run("parses_double_encoded_text", func(t *testing.T) {
		inner := `{"productAssignments":[{"product":"Carrot","entityType":"farmer","entityId":"3","assignedQty":8}]}`
		outer, err := json.Marshal(inner)
		require.NoError(t, err)

		data := stage.ParseStage1(outer)

		require.Len(t, data.ProductAssignments, 1)
		assert.Equal(t, "Carrot", data.ProductAssignments[0].Product)
	})

	t.Run("malformed_text_yields_empty_data", func(t *testing.T) {
		data := stage.ParseStage1("{not json at all")

		assert.Empty(t, data.ProductAssignments)
		assert.Empty(t, data.DeliveryRoutes)
	})

	t.Run("nil_payload_yields_empty_data", func(t *testing.T) {
		assert.Empty(t, stage.ParseStage1(nil).ProductAssignments)
	})
}

func TestParseStage2(t *testing.T) {
	t.Run("parses_items", func(t *testing.T) {
		raw := `{"items":[{"product":"Tomato","wastageKg":2,"reuseKg":1,"labourName":"Mani","pickedQuantity":20}]}`

		data := stage.ParseStage2(raw)

		require.Len(t, data.Items, 1)
		assert.Equal(t, "Mani", data.Items[0].LabourName)
		assert.InDelta(t, 20, data.Items[0].PickedQuantity, 1e-9)
		assert.InDelta(t, 2, data.Items[0].WastageKg, 1e-9)
	})

	t.Run("empty_string_yields_empty_data", func(t *testing.T) {
		assert.Empty(t, stage.ParseStage2("").Items)
	})
}

func TestParseStage3(t *testing.T) {
	t.Run("parses_products_and_airport_groups", func(t *testing.T) {
		raw := `{
			"products":[
				{"product":"Tomato","grossWeight":"120kg","labour":"Mani","ct":"C1","noOfPkgs":4,"airportName":"Coimbatore","airportLocation":"CJB","selectedDriverId":"7"}
			],
			"summaryData":{
				"airportGroups":{
					"MAA":{"products":[{"product":"Okra","driver":"Kumar"}]},
					"CJB":{"products":[{"product":"Tomato","driver":"Velu"}]}
				}
			}
		}`

		data := stage.ParseStage3(raw)

		require.Len(t, data.Products, 1)
		assert.InDelta(t, 120, data.Products[0].GrossWeightKg(), 1e-9)
		assert.Equal(t, "7", data.Products[0].SelectedDriverID)

		// Groups come back sorted by airport code for stable output.
		require.Len(t, data.AirportGroups, 2)
		assert.Equal(t, "CJB", data.AirportGroups[0].AirportCode)
		assert.Equal(t, "MAA", data.AirportGroups[1].AirportCode)
		assert.Equal(t, "Velu", data.AirportGroups[0].Products[0].Driver)
	})

	t.Run("backfills_driver_from_driver_assignments", func(t *testing.T) {
		raw := `{
			"products":[{"product":"Beans","grossWeight":"40kg"}],
			"summaryData":{"driverAssignments":{"Beans":12}}
		}`

		data := stage.ParseStage3(raw)

		require.Len(t, data.Products, 1)
		assert.Equal(t, "12", data.Products[0].SelectedDriverID)
	})

	t.Run("item_driver_wins_over_driver_assignments", func(t *testing.T) {
		raw := `{
			"products":[{"product":"Beans","selectedDriverId":"3"}],
			"summaryData":{"driverAssignments":{"Beans":"12"}}
		}`

		data := stage.ParseStage3(raw)

		assert.Equal(t, "3", data.Products[0].SelectedDriverID)
	})

	t.Run("malformed_text_yields_empty_data", func(t *testing.T) {
		data := stage.ParseStage3("[broken")

		assert.Empty(t, data.Products)
		assert.Empty(t, data.AirportGroups)
	})
}

func TestParseStage4(t *testing.T) {
	t.Run("parses_top_level_product_rows", func(t *testing.T) {
		raw := `{"productRows":[{"product":"Tomato","marketPrice":18,"finalPrice":"15","netWeight":30}]}`

		data := stage.ParseStage4(raw)

		require.Len(t, data.ProductRows, 1)
		row := data.ProductRows[0]
		assert.True(t, row.MarketPrice.Equal(decimal.NewFromInt(18)))
		assert.True(t, row.FinalPrice.Equal(decimal.NewFromInt(15)))
		assert.InDelta(t, 30, row.NetWeight, 1e-9)
	})

	t.Run("falls_back_to_review_data_rows", func(t *testing.T) {
		raw := `{"reviewData":{"productRows":[{"product":"Okra","price":22,"quantity":10}]}}`

		data := stage.ParseStage4(raw)

		require.Len(t, data.ProductRows, 1)
		assert.Equal(t, "Okra", data.ProductRows[0].Product)
		assert.True(t, data.ProductRows[0].EffectivePrice().Equal(decimal.NewFromInt(22)))
		assert.InDelta(t, 10, data.ProductRows[0].EffectiveNetWeight(), 1e-9)
	})

	t.Run("top_level_rows_win_over_review_data", func(t *testing.T) {
		raw := `{
			"productRows":[{"product":"A"}],
			"reviewData":{"productRows":[{"product":"B"}]}
		}`

		data := stage.ParseStage4(raw)

		require.Len(t, data.ProductRows, 1)
		assert.Equal(t, "A", data.ProductRows[0].Product)
	})

	t.Run("garbage_numeric_fields_decode_to_zero", func(t *testing.T) {
		raw := `{"productRows":[{"product":"Tomato","finalPrice":"abc","netWeight":""}]}`

		data := stage.ParseStage4(raw)

		require.Len(t, data.ProductRows, 1)
		assert.True(t, data.ProductRows[0].EffectivePrice().IsZero())
		assert.Zero(t, data.ProductRows[0].EffectiveNetWeight())
	})
}

func TestParseEntityType(t *testing.T) {
	assert.Equal(t, stage.EntityFarmer, stage.ParseEntityType("farmer"))
	assert.Equal(t, stage.EntitySupplier, stage.ParseEntityType("supplier"))
	assert.Equal(t, stage.EntityThirdParty, stage.ParseEntityType("thirdParty"))
	assert.Equal(t, stage.EntityThirdParty, stage.ParseEntityType("third-party"))
	assert.Equal(t, stage.EntityUnknown, stage.ParseEntityType("warehouse"))
}

func TestParseStatus(t *testing.T) {
	assert.True(t, stage.ParseStatus("Completed").IsCompleted())
	assert.True(t, stage.ParseStatus("completed").IsCompleted())
	assert.False(t, stage.ParseStatus("Pending").IsCompleted())
	assert.False(t, stage.ParseStatus("").IsCompleted())
}
