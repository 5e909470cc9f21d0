package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/directory"
	"fulfillment/internal/core/domain/model/report"
	"fulfillment/internal/core/domain/model/stage"
	"fulfillment/internal/core/ports"
)

// GetEntityReportQueryHandler builds the entity-level amount rows for one
// order by reconciling its four stage payloads.
//
// An unknown order id is the only hard failure and surfaces as
// errs.ObjectNotFoundError. Absent stage data yields empty or
// zero-amount rows, and an entity missing from the directory is labeled
// Unknown; neither is an error.
type GetEntityReportQueryHandler struct {
	store    ports.OrderStore
	drivers  ports.DriverDirectory
	entities ports.EntityDirectory
}

// NewGetEntityReportQueryHandler creates a handler for entity reports.
func NewGetEntityReportQueryHandler(
	store ports.OrderStore,
	drivers ports.DriverDirectory,
	entities ports.EntityDirectory,
) GetEntityReportQueryHandler {
	return GetEntityReportQueryHandler{store: store, drivers: drivers, entities: entities}
}

// Handle derives the entity amount rows of the queried order.
func (h GetEntityReportQueryHandler) Handle(
	ctx context.Context,
	query GetEntityReportQuery,
) ([]report.EntityAmount, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	o, err := h.store.GetOrder(ctx, query.OrderID())
	if err != nil {
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

	index, err := loadEntityIndex(ctx, h.entities)
	if err != nil {
		return nil, err
	}

	lines := buildResolvedLines(o, asg, directory.NewDriverIndex(driverList))
	return buildEntityAmounts(o, lines, index), nil
}

// loadEntityIndex fetches all three entity directories into one index.
func loadEntityIndex(ctx context.Context, entities ports.EntityDirectory) (directory.EntityIndex, error) {
	var all []directory.Entity
	for _, entityType := range []stage.EntityType{
		stage.EntityFarmer, stage.EntitySupplier, stage.EntityThirdParty,
	} {
		list, err := entities.ListEntities(ctx, entityType)
		if err != nil {
			return nil, err
		}
		all = append(all, list...)
	}
	return directory.NewEntityIndex(all), nil
}
