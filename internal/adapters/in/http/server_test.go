package http_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	adapter "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/directory"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/stage"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
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

type serverFixture struct {
	store    *MockOrderStore
	drivers  *MockDriverDirectory
	entities *MockEntityDirectory
	echo     *echo.Echo
}

func newServerFixture() *serverFixture {
	store := new(MockOrderStore)
	drivers := new(MockDriverDirectory)
	entities := new(MockEntityDirectory)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	server := adapter.NewServer(
		queries.NewGetEntityReportQueryHandler(store, drivers, entities),
		queries.NewGetDriverReportQueryHandler(store, drivers),
		queries.NewGetEntityBillQueryHandler(store, drivers),
		queries.NewBatchReportQueryHandler(store, drivers, entities, 2, logger),
	)

	e := echo.New()
	server.RegisterRoutes(e)

	return &serverFixture{store: store, drivers: drivers, entities: entities, echo: e}
}

func (f *serverFixture) request(method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)
	return rec
}

func mustOrderID(t *testing.T, raw string) kernel.OrderID {
	t.Helper()
	id, err := kernel.NewOrderID(raw)
	require.NoError(t, err)
	return id
}

func testOrder(t *testing.T, raw string) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		mustOrderID(t, raw),
		"Green Basket",
		time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		kernel.PaymentPaid,
		nil,
	)
	require.NoError(t, err)
	return o
}

func pricedAssignment(t *testing.T, raw string) *stage.Assignment {
	t.Helper()
	asg, err := stage.NewAssignment(
		mustOrderID(t, raw),
		stage.StageStatuses{Stage1: stage.StatusCompleted, Stage4: stage.StatusCompleted},
		stage.Stage1Data{ProductAssignments: []stage.Stage1Item{{
			Product:     "Tomato",
			EntityType:  stage.EntityFarmer,
			EntityID:    "5",
			AssignedQty: 10,
		}}},
		stage.Stage2Data{},
		stage.Stage3Data{},
		stage.Stage4Data{ProductRows: []stage.Stage4Item{{
			Product:     "Tomato",
			MarketPrice: decimal.NewFromInt(25),
			FinalPrice:  decimal.NewFromInt(20),
		}}},
	)
	require.NoError(t, err)
	return asg
}

func TestServer_GetHealth(t *testing.T) {
	f := newServerFixture()

	rec := f.request(http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestServer_GetEntityReport(t *testing.T) {
	t.Run("returns_summary_rows", func(t *testing.T) {
		f := newServerFixture()
		id := mustOrderID(t, "ORD-1")
		f.store.On("GetOrder", mock.Anything, id).Return(testOrder(t, "ORD-1"), nil)
		f.store.On("GetStageAssignment", mock.Anything, id).Return(pricedAssignment(t, "ORD-1"), nil)
		f.drivers.On("ListDrivers", mock.Anything).Return([]directory.Driver{}, nil)
		f.entities.On("ListEntities", mock.Anything, mock.Anything).Return([]directory.Entity{
			{ID: "5", Type: stage.EntityFarmer, DisplayName: "Ramesh"},
		}, nil)

		rec := f.request(http.MethodGet, "/orders/ORD-1/reports/entity", "")

		require.Equal(t, http.StatusOK, rec.Code)

		var rows []adapter.EntityAmountResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
		require.Len(t, rows, 1)
		assert.Equal(t, "Ramesh", rows[0].EntityName)
		assert.Equal(t, "200", rows[0].TotalAmount)
		assert.Equal(t, "Paid", rows[0].PaymentStatus)
	})

	t.Run("unknown_order_is_404", func(t *testing.T) {
		f := newServerFixture()
		id := mustOrderID(t, "ORD-404")
		f.store.On("GetOrder", mock.Anything, id).
			Return(nil, errs.NewObjectNotFoundError("order", "ORD-404"))

		rec := f.request(http.MethodGet, "/orders/ORD-404/reports/entity", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestServer_GetDriverReport(t *testing.T) {
	f := newServerFixture()
	id := mustOrderID(t, "ORD-1")
	f.store.On("GetOrder", mock.Anything, id).Return(testOrder(t, "ORD-1"), nil)
	f.store.On("GetStageAssignment", mock.Anything, id).Return(pricedAssignment(t, "ORD-1"), nil)
	f.drivers.On("ListDrivers", mock.Anything).Return([]directory.Driver{}, nil)

	rec := f.request(http.MethodGet, "/orders/ORD-1/reports/drivers", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var buckets []adapter.DriverBucketResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &buckets))
	assert.Empty(t, buckets)
}

func TestServer_GetEntityBill(t *testing.T) {
	t.Run("returns_bill_lines", func(t *testing.T) {
		f := newServerFixture()
		o := testOrder(t, "ORD-1")
		f.store.On("ListOrders", mock.Anything).Return([]*order.Order{o}, nil)
		f.drivers.On("ListDrivers", mock.Anything).Return([]directory.Driver{}, nil)
		f.store.On("GetStageAssignment", mock.Anything, o.ID()).
			Return(pricedAssignment(t, "ORD-1"), nil)

		rec := f.request(http.MethodGet, "/entities/farmer/5/bill", "")

		require.Equal(t, http.StatusOK, rec.Code)

		var lines []adapter.BillLineResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &lines))
		require.Len(t, lines, 1)
		assert.Equal(t, 1, lines[0].SerialNo)
		assert.Equal(t, "25", lines[0].MarketPrice)
		assert.Equal(t, "200", lines[0].PaidAmount)
		assert.Equal(t, "0", lines[0].OutstandingAmount)
	})

	t.Run("unknown_entity_type_is_400", func(t *testing.T) {
		f := newServerFixture()

		rec := f.request(http.MethodGet, "/entities/wholesaler/5/bill", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_RunBatchReport(t *testing.T) {
	t.Run("reports_per_order_outcomes", func(t *testing.T) {
		f := newServerFixture()
		good := mustOrderID(t, "ORD-1")
		bad := mustOrderID(t, "ORD-2")

		f.drivers.On("ListDrivers", mock.Anything).Return([]directory.Driver{}, nil)
		f.entities.On("ListEntities", mock.Anything, mock.Anything).Return([]directory.Entity{}, nil)
		f.store.On("GetOrder", mock.Anything, good).Return(testOrder(t, "ORD-1"), nil)
		f.store.On("GetStageAssignment", mock.Anything, good).
			Return(pricedAssignment(t, "ORD-1"), nil)
		f.store.On("GetOrder", mock.Anything, bad).
			Return(nil, errs.NewObjectNotFoundError("order", "ORD-2"))

		rec := f.request(http.MethodPost, "/reports/batch",
			`{"orderIds":["ORD-1","ORD-2"]}`)

		require.Equal(t, http.StatusOK, rec.Code)

		var response adapter.BatchReportResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, 1, response.Succeeded)
		require.Len(t, response.Results, 2)
		assert.Equal(t, "success", response.Results[0].Outcome)
		assert.Equal(t, "failed", response.Results[1].Outcome)
		assert.NotEmpty(t, response.Results[1].Error)
	})

	t.Run("empty_id_list_is_400", func(t *testing.T) {
		f := newServerFixture()

		rec := f.request(http.MethodPost, "/reports/batch", `{"orderIds":[]}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed_body_is_400", func(t *testing.T) {
		f := newServerFixture()

		rec := f.request(http.MethodPost, "/reports/batch", `{"orderIds": "nope"`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
