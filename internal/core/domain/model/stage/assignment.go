package stage

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
)

// ErrAssignmentIsNotConstructed is returned when an Assignment was not
// created through NewAssignment or EmptyAssignment.
var ErrAssignmentIsNotConstructed = errors.New(
	"Assignment must be created via NewAssignment or EmptyAssignment constructor")

// StageStatuses carries the per-stage workflow state of one order.
type StageStatuses struct {
	Stage1 Status
	Stage2 Status
	Stage3 Status
	Stage4 Status
}

// Assignment bundles the parsed payloads of all four workflow stages for
// one order. The external store keeps all four stage payloads on a
// single record per order, so one fetch yields one Assignment.
//
// A stage the workflow has not reached yet is present here as empty
// data with Pending status; absence is a valid state, never an error.
type Assignment struct {
	orderID  kernel.OrderID
	statuses StageStatuses
	stage1   Stage1Data
	stage2   Stage2Data
	stage3   Stage3Data
	stage4   Stage4Data

	isConstructed bool
}

// NewAssignment creates an Assignment from the parsed stage data.
func NewAssignment(
	orderID kernel.OrderID,
	statuses StageStatuses,
	stage1 Stage1Data,
	stage2 Stage2Data,
	stage3 Stage3Data,
	stage4 Stage4Data,
) (*Assignment, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	return &Assignment{
		orderID:       orderID,
		statuses:      statuses,
		stage1:        stage1,
		stage2:        stage2,
		stage3:        stage3,
		stage4:        stage4,
		isConstructed: true,
	}, nil
}

// EmptyAssignment creates an Assignment with no stage data for an order
// whose workflow has not produced a stage record yet.
func EmptyAssignment(orderID kernel.OrderID) (*Assignment, error) {
	return NewAssignment(orderID, StageStatuses{},
		Stage1Data{}, Stage2Data{}, Stage3Data{}, Stage4Data{})
}

// Validate ensures the Assignment was properly constructed.
func (a *Assignment) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAssignmentIsNotConstructed
	}
	return nil
}

// OrderID returns the order this assignment belongs to.
func (a *Assignment) OrderID() kernel.OrderID {
	return a.orderID
}

// Statuses returns the per-stage workflow states.
func (a *Assignment) Statuses() StageStatuses {
	return a.statuses
}

// Stage1 returns the parsed collection-assignment stage.
func (a *Assignment) Stage1() Stage1Data {
	return a.stage1
}

// Stage2 returns the parsed packaging/quality stage.
func (a *Assignment) Stage2() Stage2Data {
	return a.stage2
}

// Stage3 returns the parsed delivery-routing stage.
func (a *Assignment) Stage3() Stage3Data {
	return a.stage3
}

// Stage4 returns the parsed pricing stage.
func (a *Assignment) Stage4() Stage4Data {
	return a.stage4
}
