package queries_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/directory"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/stage"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderStore struct{ mock.Mock }

func (m *MockOrderStore) GetOrder(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderStore) GetStageAssignment(ctx context.Context, id kernel.OrderID) (*stage.Assignment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stage.Assignment), args.Error(1)
}

func (m *MockOrderStore) ListOrders(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockDriverDirectory struct{ mock.Mock }

func (m *MockDriverDirectory) ListDrivers(ctx context.Context) ([]directory.Driver, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]directory.Driver), args.Error(1)
}

type MockEntityDirectory struct{ mock.Mock }

func (m *MockEntityDirectory) ListEntities(ctx context.Context, entityType stage.EntityType) ([]directory.Entity, error) {
	args := m.Called(ctx, entityType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]directory.Entity), args.Error(1)
}

func mustOrderID(t *testing.T, raw string) kernel.OrderID {
	t.Helper()
	id, err := kernel.NewOrderID(raw)
	require.NoError(t, err)
	return id
}

func testOrder(t *testing.T, raw string, status kernel.PaymentStatus, day int) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		mustOrderID(t, raw),
		"Green Basket",
		time.Date(2025, 3, day, 0, 0, 0, 0, time.UTC),
		status,
		nil,
	)
	require.NoError(t, err)
	return o
}

func testAssignment(
	t *testing.T,
	raw string,
	stage1 stage.Stage1Data,
	stage2 stage.Stage2Data,
	stage3 stage.Stage3Data,
	stage4 stage.Stage4Data,
) *stage.Assignment {
	t.Helper()
	asg, err := stage.NewAssignment(mustOrderID(t, raw), stage.StageStatuses{}, stage1, stage2, stage3, stage4)
	require.NoError(t, err)
	return asg
}

func emptyAssignment(t *testing.T, raw string) *stage.Assignment {
	t.Helper()
	asg, err := stage.EmptyAssignment(mustOrderID(t, raw))
	require.NoError(t, err)
	return asg
}

// noEntities wires an entity directory that answers every type with an
// empty list.
func noEntities() *MockEntityDirectory {
	entities := new(MockEntityDirectory)
	entities.On("ListEntities", mock.Anything, mock.Anything).Return([]directory.Entity{}, nil)
	return entities
}
