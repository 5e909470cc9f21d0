package orderstore

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/stage"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderStore implements ports.OrderStore using GORM.
type GormOrderStore struct {
	db *gorm.DB
}

// NewGormOrderStore creates a new GORM order store.
func NewGormOrderStore(db *gorm.DB) *GormOrderStore {
	return &GormOrderStore{db: db}
}

// GetOrder retrieves one order by id. An unknown id is a hard failure.
func (r *GormOrderStore) GetOrder(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return orderToDomain(dto)
}

// GetStageAssignment retrieves the parsed stage payloads of one order.
// An order without a stage row yet is a valid state and yields an empty
// assignment, not an error.
func (r *GormOrderStore) GetStageAssignment(
	ctx context.Context,
	id kernel.OrderID,
) (*stage.Assignment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StageAssignmentDTO
	err := r.db.WithContext(ctx).First(&dto, "order_id = ?", id.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return stage.EmptyAssignment(id)
		}
		return nil, err
	}

	return assignmentToDomain(id, dto)
}

// ListOrders retrieves all orders newest first. Ties on the order date
// break on id so serial numbering stays stable between runs.
func (r *GormOrderStore) ListOrders(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Order("order_date DESC, id DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := orderToDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
