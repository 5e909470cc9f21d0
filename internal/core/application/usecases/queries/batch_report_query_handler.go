package queries

import (
	"context"
	"errors"
	"log/slog"

	"fulfillment/internal/core/domain/model/directory"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/stage"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	// defaultBatchWorkers bounds concurrent per-order fetches against the
	// external store when no explicit limit is configured.
	defaultBatchWorkers = 4

	// storeFetchAttempts is the bounded retry budget per store call.
	storeFetchAttempts = 3
)

// BatchReportQueryHandler reconciles many orders concurrently.
//
// Each order is an independent unit of work: its fetches are retried
// with exponential backoff, and a failure after retries marks that one
// order failed without affecting its siblings. Cancelling the context
// stops new orders from being picked up; orders already reported stay in
// the result set, unprocessed ones are annotated skipped.
type BatchReportQueryHandler struct {
	store    ports.OrderStore
	drivers  ports.DriverDirectory
	entities ports.EntityDirectory
	workers  int
	logger   *slog.Logger
}

// NewBatchReportQueryHandler creates a batch handler. workers bounds the
// per-order concurrency; values below 1 fall back to the default.
func NewBatchReportQueryHandler(
	store ports.OrderStore,
	drivers ports.DriverDirectory,
	entities ports.EntityDirectory,
	workers int,
	logger *slog.Logger,
) BatchReportQueryHandler {
	if workers < 1 {
		workers = defaultBatchWorkers
	}
	return BatchReportQueryHandler{
		store:    store,
		drivers:  drivers,
		entities: entities,
		workers:  workers,
		logger:   logger.With("component", "batch_report_handler"),
	}
}

// Handle runs the batch and returns its best-effort result set. The
// returned error reports only top-level failures (invalid query,
// directories unreachable); per-order failures live in the results.
func (h BatchReportQueryHandler) Handle(
	ctx context.Context,
	query BatchReportQuery,
) (BatchReportResult, error) {
	if err := query.Validate(); err != nil {
		return BatchReportResult{}, err
	}

	// Directories change rarely; fetch them once per run instead of per
	// order.
	driverList, err := fetchWithRetry(ctx, func() ([]directory.Driver, error) {
		return h.drivers.ListDrivers(ctx)
	})
	if err != nil {
		return BatchReportResult{}, err
	}
	driverIndex := directory.NewDriverIndex(driverList)

	entityIndex, err := fetchWithRetry(ctx, func() (directory.EntityIndex, error) {
		return loadEntityIndex(ctx, h.entities)
	})
	if err != nil {
		return BatchReportResult{}, err
	}

	ids := query.OrderIDs()
	results := make([]OrderReportResult, len(ids))
	for i, id := range ids {
		results[i] = OrderReportResult{OrderID: id, Outcome: OutcomeSkipped}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(h.workers)

	for i, id := range ids {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			results[i] = h.reportOne(gctx, id, driverIndex, entityIndex)
			return nil
		})
	}

	// Workers never return errors; Wait only joins them.
	_ = g.Wait()

	run := BatchReportResult{RunID: uuid.New(), Results: results}
	h.logger.InfoContext(ctx, "Batch report run finished",
		"run_id", run.RunID, "orders", len(ids), "succeeded", len(run.Succeeded()))
	return run, nil
}

// reportOne builds both reports of a single order. Failures are folded
// into the result, never propagated.
func (h BatchReportQueryHandler) reportOne(
	ctx context.Context,
	id kernel.OrderID,
	drivers directory.DriverIndex,
	entities directory.EntityIndex,
) OrderReportResult {
	if ctx.Err() != nil {
		return OrderReportResult{OrderID: id, Outcome: OutcomeSkipped}
	}

	o, err := fetchWithRetry(ctx, func() (ordered, error) {
		ord, err := h.store.GetOrder(ctx, id)
		if err != nil {
			return ordered{}, err
		}
		asg, err := h.store.GetStageAssignment(ctx, id)
		if err != nil {
			return ordered{}, err
		}
		return ordered{order: ord, assignment: asg}, nil
	})
	if err != nil {
		h.logger.WarnContext(ctx, "Order report failed", "order_id", id.String(), "error", err)
		return OrderReportResult{OrderID: id, Outcome: OutcomeFailed, Err: err}
	}

	lines := buildResolvedLines(o.order, o.assignment, drivers)
	return OrderReportResult{
		OrderID:       id,
		Outcome:       OutcomeSuccess,
		EntityAmounts: buildEntityAmounts(o.order, lines, entities),
		DriverBuckets: buildDriverBuckets(o.assignment, drivers).Ordered(),
	}
}

// ordered pairs an order with its stage assignment for one fetch unit.
type ordered struct {
	order      *order.Order
	assignment *stage.Assignment
}

// fetchWithRetry runs op with bounded exponential backoff. Not-found is
// permanent: retrying cannot make an unknown order id appear.
func fetchWithRetry[T any](ctx context.Context, op func() (T, error)) (T, error) {
	var out T

	operation := func() error {
		v, err := op()
		if err != nil {
			var notFound *errs.ObjectNotFoundError
			if errors.As(err, &notFound) {
				return backoff.Permanent(err)
			}
			return err
		}
		out = v
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), storeFetchAttempts-1),
		ctx,
	)

	if err := backoff.Retry(operation, policy); err != nil {
		return out, err
	}
	return out, nil
}
