package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetDriverReportQueryIsNotConstructed = errors.New(
	"GetDriverReportQuery must be created via NewGetDriverReportQuery constructor",
)

// GetDriverReportQuery requests the per-driver delivery report of one
// order: which driver moves which products, with weights, packages, and
// priced amounts.
type GetDriverReportQuery struct {
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewGetDriverReportQuery creates a query for one order's driver report.
func NewGetDriverReportQuery(orderID kernel.OrderID) (GetDriverReportQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetDriverReportQuery{}, err
	}

	return GetDriverReportQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriverReportQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverReportQueryIsNotConstructed)
}

// OrderID returns the order to report on.
func (q GetDriverReportQuery) OrderID() kernel.OrderID {
	return q.orderID
}
