package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/stage"
)

// OrderStore is the read-only view onto the external order-management
// store. The reconciliation core never writes through this port.
type OrderStore interface {
	// GetOrder retrieves one order by identifier.
	// An unknown id returns errs.ObjectNotFoundError; this is the one
	// hard failure of the pipeline, distinct from absent stage data.
	GetOrder(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// GetStageAssignment retrieves the bundled stage payloads of one
	// order. All four stages live on a single record per the store's
	// convention. An order with no stage record yet yields an empty
	// assignment, not an error.
	GetStageAssignment(ctx context.Context, id kernel.OrderID) (*stage.Assignment, error)

	// ListOrders retrieves every order, newest first. Bill building
	// iterates this ordering to assign serial numbers, so it must be
	// stable for identical data.
	ListOrders(ctx context.Context) ([]*order.Order, error)
}
