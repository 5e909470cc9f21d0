package commands

import (
	"context"
	"fmt"
	"log/slog"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/report"
	"fulfillment/internal/core/domain/model/stage"
	"fulfillment/internal/core/ports"
)

// BatchReporter runs the reconciliation over a set of orders. Satisfied
// by queries.BatchReportQueryHandler.
type BatchReporter interface {
	Handle(ctx context.Context, query queries.BatchReportQuery) (queries.BatchReportResult, error)
}

// EntityBiller derives one entity's bill across all orders. Satisfied
// by queries.GetEntityBillQueryHandler.
type EntityBiller interface {
	Handle(ctx context.Context, query queries.GetEntityBillQuery) ([]report.BillLine, error)
}

// ExportFleetReportCommandHandler renders every order's reconciled
// reports, plus a bill per supplying entity, into one workbook file.
//
// The export is best effort: orders that failed reconciliation are left
// out of the workbook and reported in the log, they do not abort the
// run.
type ExportFleetReportCommandHandler struct {
	store    ports.OrderStore
	reporter BatchReporter
	biller   EntityBiller
	factory  ports.ReportWorkbookFactory
	logger   *slog.Logger
}

// NewExportFleetReportCommandHandler creates the export handler.
func NewExportFleetReportCommandHandler(
	store ports.OrderStore,
	reporter BatchReporter,
	biller EntityBiller,
	factory ports.ReportWorkbookFactory,
	logger *slog.Logger,
) ExportFleetReportCommandHandler {
	return ExportFleetReportCommandHandler{
		store:    store,
		reporter: reporter,
		biller:   biller,
		factory:  factory,
		logger:   logger.With("component", "fleet_report_export"),
	}
}

// Handle exports the fleet workbook to the command's output path.
func (h ExportFleetReportCommandHandler) Handle(
	ctx context.Context,
	command ExportFleetReportCommand,
) error {
	if err := command.Validate(); err != nil {
		return err
	}

	orders, err := h.store.ListOrders(ctx)
	if err != nil {
		return fmt.Errorf("list orders: %w", err)
	}

	workbook := h.factory.NewWorkbook()

	if len(orders) == 0 {
		h.logger.InfoContext(ctx, "No orders to export, writing empty workbook")
		return workbook.SaveAs(command.OutputPath())
	}

	ids := make([]kernel.OrderID, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID())
	}

	query, err := queries.NewBatchReportQuery(ids)
	if err != nil {
		return err
	}

	run, err := h.reporter.Handle(ctx, query)
	if err != nil {
		return fmt.Errorf("reconcile orders: %w", err)
	}

	succeeded := run.Succeeded()
	if failed := len(run.Results) - len(succeeded); failed > 0 {
		h.logger.WarnContext(ctx, "Some orders excluded from export",
			"run_id", run.RunID, "failed", failed)
	}

	amounts := make([]report.EntityAmount, 0)
	for _, res := range succeeded {
		amounts = append(amounts, res.EntityAmounts...)
	}
	if err := workbook.WriteEntityAmounts(amounts); err != nil {
		return fmt.Errorf("write entity amounts: %w", err)
	}

	for _, res := range succeeded {
		if err := workbook.WriteDriverBuckets(res.OrderID, res.DriverBuckets); err != nil {
			return fmt.Errorf("write driver buckets of %s: %w", res.OrderID.String(), err)
		}
	}

	if err := h.writeBills(ctx, workbook, amounts); err != nil {
		return err
	}

	if err := workbook.SaveAs(command.OutputPath()); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}

	h.logger.InfoContext(ctx, "Fleet report exported",
		"run_id", run.RunID, "path", command.OutputPath(), "orders", len(succeeded))
	return nil
}

// writeBills appends one bill sheet per entity seen in the summary
// rows, in first-encounter order.
func (h ExportFleetReportCommandHandler) writeBills(
	ctx context.Context,
	workbook ports.ReportWorkbook,
	amounts []report.EntityAmount,
) error {
	type entityRef struct {
		entityType stage.EntityType
		entityID   string
	}

	seen := make(map[entityRef]bool)
	for _, row := range amounts {
		ref := entityRef{entityType: row.EntityType, entityID: row.EntityID}
		if seen[ref] || row.EntityType == stage.EntityUnknown {
			continue
		}
		seen[ref] = true

		query, err := queries.NewGetEntityBillQuery(row.EntityType, row.EntityID)
		if err != nil {
			return err
		}

		lines, err := h.biller.Handle(ctx, query)
		if err != nil {
			return fmt.Errorf("bill of %s %s: %w", row.EntityType.String(), row.EntityID, err)
		}

		if err := workbook.WriteBillLines(row.EntityDisplayName, lines); err != nil {
			return fmt.Errorf("write bill of %s: %w", row.EntityDisplayName, err)
		}
	}

	return nil
}
