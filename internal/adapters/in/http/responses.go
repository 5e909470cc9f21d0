package http

import (
	"fulfillment/internal/core/domain/model/report"
)

// Error is the JSON error envelope of all endpoints.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// EntityAmountResponse is one entity-level summary row.
type EntityAmountResponse struct {
	OrderID       string   `json:"orderId"`
	EntityType    string   `json:"entityType"`
	EntityID      string   `json:"entityId"`
	EntityName    string   `json:"entityName"`
	Products      []string `json:"products"`
	Date          string   `json:"date"`
	TotalAmount   string   `json:"totalAmount"`
	PaymentStatus string   `json:"paymentStatus"`
}

// DriverBucketItemResponse is one routed product line of a driver.
type DriverBucketItemResponse struct {
	Product         string  `json:"product"`
	Labour          string  `json:"labour,omitempty"`
	CT              string  `json:"ct,omitempty"`
	WeightKg        float64 `json:"weightKg"`
	Packages        int     `json:"packages"`
	AirportName     string  `json:"airportName,omitempty"`
	AirportLocation string  `json:"airportLocation,omitempty"`
	PricePerKg      string  `json:"pricePerKg"`
	Amount          string  `json:"amount"`
	PricingPending  bool    `json:"pricingPending"`
}

// DriverBucketResponse is one driver's bucket with totals.
type DriverBucketResponse struct {
	DriverName    string                     `json:"driverName"`
	Items         []DriverBucketItemResponse `json:"items"`
	TotalWeightKg float64                    `json:"totalWeightKg"`
	TotalPackages int                        `json:"totalPackages"`
	TotalAmount   string                     `json:"totalAmount"`
}

// BillLineResponse is one row of an entity's bill.
type BillLineResponse struct {
	SerialNo          int     `json:"serialNo"`
	Date              string  `json:"date"`
	Product           string  `json:"product"`
	Unit              string  `json:"unit"`
	Quantity          float64 `json:"quantity"`
	Price             string  `json:"price"`
	MarketPrice       string  `json:"marketPrice"`
	Amount            string  `json:"amount"`
	PaidAmount        string  `json:"paidAmount"`
	OutstandingAmount string  `json:"outstandingAmount"`
	Remarks           string  `json:"remarks"`
}

// BatchReportRequest is the POST /reports/batch request body.
type BatchReportRequest struct {
	OrderIDs []string `json:"orderIds"`
}

// BatchOrderResultResponse is one order's annotated outcome.
type BatchOrderResultResponse struct {
	OrderID string `json:"orderId"`
	Outcome string `json:"outcome"`
	Error   string `json:"error,omitempty"`
}

// BatchReportResponse summarizes one batch run.
type BatchReportResponse struct {
	RunID     string                     `json:"runId"`
	Succeeded int                        `json:"succeeded"`
	Results   []BatchOrderResultResponse `json:"results"`
}

const responseDateLayout = "2006-01-02"

func toEntityAmountResponses(rows []report.EntityAmount) []EntityAmountResponse {
	out := make([]EntityAmountResponse, len(rows))
	for i, row := range rows {
		out[i] = EntityAmountResponse{
			OrderID:       row.OrderID.String(),
			EntityType:    row.EntityType.String(),
			EntityID:      row.EntityID,
			EntityName:    row.EntityDisplayName,
			Products:      row.Products,
			Date:          row.Date.Format(responseDateLayout),
			TotalAmount:   row.TotalAmount.String(),
			PaymentStatus: row.PaymentStatus.String(),
		}
	}
	return out
}

func toDriverBucketResponses(buckets []*report.DriverBucket) []DriverBucketResponse {
	out := make([]DriverBucketResponse, len(buckets))
	for i, bucket := range buckets {
		items := make([]DriverBucketItemResponse, len(bucket.Items))
		for j, item := range bucket.Items {
			items[j] = DriverBucketItemResponse{
				Product:         item.Product,
				Labour:          item.Labour,
				CT:              item.CT,
				WeightKg:        item.WeightKg,
				Packages:        item.Packages,
				AirportName:     item.AirportName,
				AirportLocation: item.AirportLocation,
				PricePerKg:      item.PricePerKg.String(),
				Amount:          item.Amount.String(),
				PricingPending:  item.PricingPending,
			}
		}

		out[i] = DriverBucketResponse{
			DriverName:    bucket.DriverName,
			Items:         items,
			TotalWeightKg: bucket.TotalWeightKg,
			TotalPackages: bucket.TotalPackages,
			TotalAmount:   bucket.TotalAmount.String(),
		}
	}
	return out
}

func toBillLineResponses(lines []report.BillLine) []BillLineResponse {
	out := make([]BillLineResponse, len(lines))
	for i, line := range lines {
		out[i] = BillLineResponse{
			SerialNo:          line.SerialNo,
			Date:              line.Date.Format(responseDateLayout),
			Product:           line.Product,
			Unit:              line.Unit,
			Quantity:          line.Quantity,
			Price:             line.Price.String(),
			MarketPrice:       line.MarketPrice.String(),
			Amount:            line.Amount.String(),
			PaidAmount:        line.PaidAmount.String(),
			OutstandingAmount: line.OutstandingAmount.String(),
			Remarks:           line.Remarks,
		}
	}
	return out
}
