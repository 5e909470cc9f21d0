// Package http exposes the reconciled reports over a JSON API.
package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/stage"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles the report HTTP endpoints. It coordinates between HTTP
// handlers and application use cases.
type Server struct {
	entityReportHandler queries.GetEntityReportQueryHandler
	driverReportHandler queries.GetDriverReportQueryHandler
	entityBillHandler   queries.GetEntityBillQueryHandler
	batchReportHandler  queries.BatchReportQueryHandler
}

// NewServer creates a new HTTP server with the required query handlers.
func NewServer(
	entityReportHandler queries.GetEntityReportQueryHandler,
	driverReportHandler queries.GetDriverReportQueryHandler,
	entityBillHandler queries.GetEntityBillQueryHandler,
	batchReportHandler queries.BatchReportQueryHandler,
) *Server {
	return &Server{
		entityReportHandler: entityReportHandler,
		driverReportHandler: driverReportHandler,
		entityBillHandler:   entityBillHandler,
		batchReportHandler:  batchReportHandler,
	}
}

// RegisterRoutes attaches the server's endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.GetHealth)
	e.GET("/orders/:orderId/reports/entity", s.GetEntityReport)
	e.GET("/orders/:orderId/reports/drivers", s.GetDriverReport)
	e.GET("/entities/:entityType/:entityId/bill", s.GetEntityBill)
	e.POST("/reports/batch", s.RunBatchReport)
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetEntityReport handles GET /orders/:orderId/reports/entity.
func (s *Server) GetEntityReport(ctx echo.Context) error {
	orderID, err := kernel.NewOrderID(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetEntityReportQuery(orderID)
	if err != nil {
		return badRequest(ctx, err)
	}

	rows, err := s.entityReportHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toEntityAmountResponses(rows))
}

// GetDriverReport handles GET /orders/:orderId/reports/drivers.
func (s *Server) GetDriverReport(ctx echo.Context) error {
	orderID, err := kernel.NewOrderID(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetDriverReportQuery(orderID)
	if err != nil {
		return badRequest(ctx, err)
	}

	buckets, err := s.driverReportHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDriverBucketResponses(buckets))
}

// GetEntityBill handles GET /entities/:entityType/:entityId/bill.
func (s *Server) GetEntityBill(ctx echo.Context) error {
	entityType := stage.ParseEntityType(ctx.Param("entityType"))

	query, err := queries.NewGetEntityBillQuery(entityType, ctx.Param("entityId"))
	if err != nil {
		return badRequest(ctx, err)
	}

	lines, err := s.entityBillHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toBillLineResponses(lines))
}

// RunBatchReport handles POST /reports/batch.
func (s *Server) RunBatchReport(ctx echo.Context) error {
	var request BatchReportRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	ids := make([]kernel.OrderID, 0, len(request.OrderIDs))
	for _, raw := range request.OrderIDs {
		id, err := kernel.NewOrderID(raw)
		if err != nil {
			return badRequest(ctx, err)
		}
		ids = append(ids, id)
	}

	query, err := queries.NewBatchReportQuery(ids)
	if err != nil {
		return badRequest(ctx, err)
	}

	run, err := s.batchReportHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return problem(ctx, err)
	}

	results := make([]BatchOrderResultResponse, len(run.Results))
	for i, res := range run.Results {
		out := BatchOrderResultResponse{
			OrderID: res.OrderID.String(),
			Outcome: res.Outcome.String(),
		}
		if res.Err != nil {
			out.Error = res.Err.Error()
		}
		results[i] = out
	}

	return ctx.JSON(http.StatusOK, BatchReportResponse{
		RunID:     run.RunID.String(),
		Succeeded: len(run.Succeeded()),
		Results:   results,
	})
}

// badRequest renders a 400 with the validation failure.
func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}

// problem maps use case failures to status codes: unknown objects are
// 404, validation failures 400, everything else 500.
func problem(ctx echo.Context, err error) error {
	var notFound *errs.ObjectNotFoundError
	if errors.As(err, &notFound) {
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	}

	if errors.Is(err, errs.ErrValueIsInvalid) || errors.Is(err, errs.ErrValueIsRequired) {
		return badRequest(ctx, err)
	}

	return ctx.JSON(http.StatusInternalServerError, Error{
		Code:    http.StatusInternalServerError,
		Message: "Failed to build report",
	})
}
