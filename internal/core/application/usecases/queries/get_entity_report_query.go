package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetEntityReportQueryIsNotConstructed = errors.New(
	"GetEntityReportQuery must be created via NewGetEntityReportQuery constructor",
)

// GetEntityReportQuery requests the entity-level amount summary of one
// order: how much money each farmer, supplier, and third party is owed
// for what they supplied into the order.
//
// Example:
//
//	orderID, _ := kernel.NewOrderID("ORD-1042")
//	query, err := NewGetEntityReportQuery(orderID)
//	if err != nil {
//	    return err
//	}
//	rows, err := handler.Handle(ctx, query)
type GetEntityReportQuery struct {
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewGetEntityReportQuery creates a query for one order's entity report.
func NewGetEntityReportQuery(orderID kernel.OrderID) (GetEntityReportQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetEntityReportQuery{}, err
	}

	return GetEntityReportQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetEntityReportQuery) Validate() error {
	return q.guard.Validate(ErrGetEntityReportQueryIsNotConstructed)
}

// OrderID returns the order to report on.
func (q GetEntityReportQuery) OrderID() kernel.OrderID {
	return q.orderID
}
