package ports

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/report"
)

// ReportWorkbook collects report rows into an exportable document.
// Implementations own the rendering (spreadsheet, PDF); this core only
// supplies structured rows. A workbook is built up during one export run
// and is not safe for concurrent use.
type ReportWorkbook interface {
	// WriteEntityAmounts appends entity-level summary rows.
	WriteEntityAmounts(rows []report.EntityAmount) error

	// WriteDriverBuckets appends one order's driver buckets.
	WriteDriverBuckets(orderID kernel.OrderID, buckets []*report.DriverBucket) error

	// WriteBillLines appends one entity's bill rows.
	WriteBillLines(entityDisplayName string, lines []report.BillLine) error

	// SaveAs renders the workbook to the given path.
	SaveAs(path string) error
}

// ReportWorkbookFactory creates a fresh workbook per export run.
type ReportWorkbookFactory interface {
	NewWorkbook() ReportWorkbook
}
