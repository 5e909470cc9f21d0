// Package orderstore provides data transfer objects and mapping functions
// for the order store. Orders and their per-stage workflow payloads live
// in separate tables; stage payloads are kept as raw JSON and normalized
// through the domain parsers on the way out, so a malformed payload
// degrades to empty stage data instead of failing the read.
package orderstore

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/stage"

	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for order read models.
// Indexed by order date for the newest-first listing the bill and batch
// flows rely on.
type OrderDTO struct {
	ID            string    `gorm:"primaryKey"`
	CustomerName  string    `gorm:"index"`
	OrderDate     time.Time `gorm:"index"`
	PaymentStatus string

	Items []OrderItemDTO `gorm:"serializer:json"`
}

// TableName specifies the database table name for order read models.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one billed product line inside an order's items column.
type OrderItemDTO struct {
	ProductName string          `json:"productName"`
	TotalPrice  decimal.Decimal `json:"totalPrice"`
}

// StageAssignmentDTO keeps all four stage payloads of one order on a
// single row, mirroring the upstream workflow store's shape. Payload
// columns hold whatever the workflow submitted, including doubly
// serialized JSON strings.
type StageAssignmentDTO struct {
	OrderID string `gorm:"primaryKey"`

	Stage1Status string
	Stage2Status string
	Stage3Status string
	Stage4Status string

	Stage1Payload []byte `gorm:"type:jsonb"`
	Stage2Payload []byte `gorm:"type:jsonb"`
	Stage3Payload []byte `gorm:"type:jsonb"`
	Stage4Payload []byte `gorm:"type:jsonb"`
}

// TableName specifies the database table name for stage assignments.
func (StageAssignmentDTO) TableName() string {
	return "stage_assignments"
}

// orderToDomain converts an order row to its domain read model.
func orderToDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.NewOrderID(dto.ID)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, item := range dto.Items {
		items = append(items, order.Item{
			ProductName: item.ProductName,
			TotalPrice:  item.TotalPrice,
		})
	}

	return order.NewOrder(
		id,
		dto.CustomerName,
		dto.OrderDate,
		kernel.ParsePaymentStatus(dto.PaymentStatus),
		items,
	)
}

// assignmentToDomain normalizes a stage row into the domain aggregate.
// Each payload goes through its tolerant stage parser.
func assignmentToDomain(id kernel.OrderID, dto StageAssignmentDTO) (*stage.Assignment, error) {
	statuses := stage.StageStatuses{
		Stage1: stage.ParseStatus(dto.Stage1Status),
		Stage2: stage.ParseStatus(dto.Stage2Status),
		Stage3: stage.ParseStatus(dto.Stage3Status),
		Stage4: stage.ParseStatus(dto.Stage4Status),
	}

	return stage.NewAssignment(
		id,
		statuses,
		stage.ParseStage1(dto.Stage1Payload),
		stage.ParseStage2(dto.Stage2Payload),
		stage.ParseStage3(dto.Stage3Payload),
		stage.ParseStage4(dto.Stage4Payload),
	)
}
