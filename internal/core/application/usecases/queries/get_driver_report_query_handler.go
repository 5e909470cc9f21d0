package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/directory"
	"fulfillment/internal/core/domain/model/report"
	"fulfillment/internal/core/ports"
)

// GetDriverReportQueryHandler builds the ordered driver buckets of one
// order from its routing stage. An order whose routing stage has no data
// yet yields zero buckets.
type GetDriverReportQueryHandler struct {
	store   ports.OrderStore
	drivers ports.DriverDirectory
}

// NewGetDriverReportQueryHandler creates a handler for driver reports.
func NewGetDriverReportQueryHandler(
	store ports.OrderStore,
	drivers ports.DriverDirectory,
) GetDriverReportQueryHandler {
	return GetDriverReportQueryHandler{store: store, drivers: drivers}
}

// Handle derives the driver buckets of the queried order, in
// first-encounter order of their driver.
func (h GetDriverReportQueryHandler) Handle(
	ctx context.Context,
	query GetDriverReportQuery,
) ([]*report.DriverBucket, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	// The order must exist even though the report reads only stage data;
	// an unknown id is a hard failure, an absent stage record is not.
	if _, err := h.store.GetOrder(ctx, query.OrderID()); err != nil {
		return nil, err
	}

	asg, err := h.store.GetStageAssignment(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	driverList, err := h.drivers.ListDrivers(ctx)
	if err != nil {
		return nil, err
	}

	buckets := buildDriverBuckets(asg, directory.NewDriverIndex(driverList))
	return buckets.Ordered(), nil
}
