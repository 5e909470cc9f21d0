package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/stage"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrGetEntityBillQueryIsNotConstructed = errors.New(
	"GetEntityBillQuery must be created via NewGetEntityBillQuery constructor",
)

// GetEntityBillQuery requests the bill of one supplying entity across
// all orders: every collection-assignment line that entity appears on,
// flattened into dated, serial-numbered rows with amounts routed to the
// paid or outstanding column.
type GetEntityBillQuery struct {
	entityType stage.EntityType
	entityID   string

	guard guard.ConstructorGuard
}

// NewGetEntityBillQuery creates a bill query for one entity.
func NewGetEntityBillQuery(entityType stage.EntityType, entityID string) (GetEntityBillQuery, error) {
	q := GetEntityBillQuery{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		q.setEntityType(entityType),
		q.setEntityID(entityID),
	); err != nil {
		return GetEntityBillQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetEntityBillQuery) Validate() error {
	return q.guard.Validate(ErrGetEntityBillQueryIsNotConstructed)
}

// EntityType returns the kind of entity billed.
func (q GetEntityBillQuery) EntityType() stage.EntityType {
	return q.entityType
}

// EntityID returns the billed entity's directory id.
func (q GetEntityBillQuery) EntityID() string {
	return q.entityID
}

func (q *GetEntityBillQuery) setEntityType(entityType stage.EntityType) error {
	if err := entityType.Validate(); err != nil {
		return err
	}
	q.entityType = entityType
	return nil
}

func (q *GetEntityBillQuery) setEntityID(entityID string) error {
	if entityID == "" {
		return errs.NewValueIsRequiredError("entityId")
	}
	q.entityID = entityID
	return nil
}
