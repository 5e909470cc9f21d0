package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/directory"
	"fulfillment/internal/core/domain/model/stage"
)

// DriverDirectory resolves internal driver ids to display names.
// Supplied by the external order-management service.
type DriverDirectory interface {
	// ListDrivers retrieves the full driver directory.
	ListDrivers(ctx context.Context) ([]directory.Driver, error)
}

// EntityDirectory resolves farmer/supplier/third-party ids to display
// names. Supplied by the external order-management service.
type EntityDirectory interface {
	// ListEntities retrieves all directory entries of one entity type.
	ListEntities(ctx context.Context, entityType stage.EntityType) ([]directory.Entity, error)
}
