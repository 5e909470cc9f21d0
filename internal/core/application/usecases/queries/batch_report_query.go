package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/report"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/google/uuid"
)

var ErrBatchReportQueryIsNotConstructed = errors.New(
	"BatchReportQuery must be created via NewBatchReportQuery constructor",
)

// BatchReportQuery requests reconciled reports for many orders at once,
// e.g. a fleet-wide export run.
type BatchReportQuery struct {
	orderIDs []kernel.OrderID

	guard guard.ConstructorGuard
}

// NewBatchReportQuery creates a batch query over the given order ids.
func NewBatchReportQuery(orderIDs []kernel.OrderID) (BatchReportQuery, error) {
	if len(orderIDs) == 0 {
		return BatchReportQuery{}, errs.NewValueIsRequiredError("orderIds")
	}

	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return BatchReportQuery{}, err
		}
	}

	return BatchReportQuery{
		orderIDs: orderIDs,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q BatchReportQuery) Validate() error {
	return q.guard.Validate(ErrBatchReportQueryIsNotConstructed)
}

// OrderIDs returns the orders to report on, in request order.
func (q BatchReportQuery) OrderIDs() []kernel.OrderID {
	return q.orderIDs
}

// OrderReportOutcome classifies one order's fate within a batch run.
type OrderReportOutcome int

const (
	// OutcomeSkipped means the batch was cancelled before the order was
	// processed; any partially built rows were discarded.
	OutcomeSkipped OrderReportOutcome = iota

	// OutcomeSuccess means the order's reports were built.
	OutcomeSuccess

	// OutcomeFailed means fetching or reconciling the order failed after
	// retries; Err carries the reason.
	OutcomeFailed
)

// String returns the batch-annotation label of the outcome.
func (o OrderReportOutcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeFailed:
		return "failed"
	default:
		return "skipped"
	}
}

// OrderReportResult is one order's annotated result within a batch run.
type OrderReportResult struct {
	OrderID       kernel.OrderID
	Outcome       OrderReportOutcome
	Err           error
	EntityAmounts []report.EntityAmount
	DriverBuckets []*report.DriverBucket
}

// BatchReportResult is the best-effort result set of one batch run.
// Results appear in request order; a cancelled run still returns the
// orders completed before cancellation.
type BatchReportResult struct {
	RunID   uuid.UUID
	Results []OrderReportResult
}

// Succeeded returns the successfully reported orders, in request order.
func (r BatchReportResult) Succeeded() []OrderReportResult {
	out := make([]OrderReportResult, 0, len(r.Results))
	for _, res := range r.Results {
		if res.Outcome == OutcomeSuccess {
			out = append(out, res)
		}
	}
	return out
}
