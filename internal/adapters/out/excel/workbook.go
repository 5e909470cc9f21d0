// Package excel renders report rows into an xlsx workbook via excelize.
// One workbook per export run: a summary sheet with entity-level amounts,
// a driver sheet with per-order delivery buckets, and a bills sheet with
// one block per supplying entity.
package excel

import (
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/report"
	"fulfillment/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	entitySheet = "Entity Summary"
	driverSheet = "Driver Report"
	billSheet   = "Bills"

	dateLayout = "02-01-2006"
)

// Workbook implements ports.ReportWorkbook on top of an excelize file.
// Not safe for concurrent use.
type Workbook struct {
	file *excelize.File
	rows map[string]int
}

// Factory implements ports.ReportWorkbookFactory.
type Factory struct{}

// NewFactory creates a workbook factory.
func NewFactory() Factory {
	return Factory{}
}

// NewWorkbook creates an empty workbook with all three report sheets.
func (Factory) NewWorkbook() ports.ReportWorkbook {
	return newWorkbook()
}

func newWorkbook() *Workbook {
	f := excelize.NewFile()

	// Reuse the default sheet for the summary, add the rest.
	_ = f.SetSheetName(f.GetSheetName(0), entitySheet)
	_, _ = f.NewSheet(driverSheet)
	_, _ = f.NewSheet(billSheet)

	w := &Workbook{file: f, rows: make(map[string]int)}
	w.appendRow(entitySheet,
		"Order ID", "Entity Type", "Entity", "Products", "Date", "Total Amount", "Payment Status")
	w.appendRow(driverSheet,
		"Order ID", "Driver", "Product", "Labour", "CT", "Airport", "Weight (kg)", "Packages", "Price / kg", "Amount")
	return w
}

// WriteEntityAmounts appends entity-level summary rows.
func (w *Workbook) WriteEntityAmounts(rows []report.EntityAmount) error {
	for _, row := range rows {
		products := ""
		for i, p := range row.Products {
			if i > 0 {
				products += ", "
			}
			products += p
		}

		if err := w.appendRow(entitySheet,
			row.OrderID.String(),
			row.EntityType.String(),
			row.EntityDisplayName,
			products,
			row.Date.Format(dateLayout),
			row.TotalAmount.InexactFloat64(),
			row.PaymentStatus.String(),
		); err != nil {
			return err
		}
	}
	return nil
}

// WriteDriverBuckets appends one order's driver buckets, one line per
// routed product and a totals line per driver.
func (w *Workbook) WriteDriverBuckets(orderID kernel.OrderID, buckets []*report.DriverBucket) error {
	for _, bucket := range buckets {
		for _, item := range bucket.Items {
			airport := item.AirportName
			if item.AirportLocation != "" {
				airport = fmt.Sprintf("%s (%s)", item.AirportName, item.AirportLocation)
			}

			price := any(item.PricePerKg.InexactFloat64())
			amount := any(item.Amount.InexactFloat64())
			if item.PricingPending {
				price = "Pending"
				amount = "Pending"
			}

			if err := w.appendRow(driverSheet,
				orderID.String(),
				bucket.DriverName,
				item.Product,
				item.Labour,
				item.CT,
				airport,
				item.WeightKg,
				item.Packages,
				price,
				amount,
			); err != nil {
				return err
			}
		}

		if err := w.appendRow(driverSheet,
			orderID.String(),
			bucket.DriverName,
			"Total", "", "", "",
			bucket.TotalWeightKg,
			bucket.TotalPackages,
			"",
			bucket.TotalAmount.InexactFloat64(),
		); err != nil {
			return err
		}
	}
	return nil
}

// WriteBillLines appends one entity's bill block: a title row, the
// column header, the lines, and a totals row.
func (w *Workbook) WriteBillLines(entityDisplayName string, lines []report.BillLine) error {
	if err := w.appendRow(billSheet, entityDisplayName); err != nil {
		return err
	}
	if err := w.appendRow(billSheet,
		"S.No", "Date", "Product", "Unit", "Quantity", "Price", "Market Price", "Amount", "Paid", "Outstanding", "Remarks",
	); err != nil {
		return err
	}

	// Totals stay in decimal until the row is rendered, so they match
	// the sum of the line amounts exactly.
	totalPaid := decimal.Zero
	totalOutstanding := decimal.Zero
	for _, line := range lines {
		totalPaid = totalPaid.Add(line.PaidAmount)
		totalOutstanding = totalOutstanding.Add(line.OutstandingAmount)

		if err := w.appendRow(billSheet,
			line.SerialNo,
			line.Date.Format(dateLayout),
			line.Product,
			line.Unit,
			line.Quantity,
			line.Price.InexactFloat64(),
			line.MarketPrice.InexactFloat64(),
			line.Amount.InexactFloat64(),
			line.PaidAmount.InexactFloat64(),
			line.OutstandingAmount.InexactFloat64(),
			line.Remarks,
		); err != nil {
			return err
		}
	}

	if err := w.appendRow(billSheet,
		"", "", "", "", "", "Total", "", "", totalPaid.InexactFloat64(), totalOutstanding.InexactFloat64(), "",
	); err != nil {
		return err
	}

	// Blank separator between entity blocks.
	w.rows[billSheet]++
	return nil
}

// SaveAs renders the workbook to the given path.
func (w *Workbook) SaveAs(path string) error {
	return w.file.SaveAs(path)
}

// appendRow writes values into the sheet's next free row.
func (w *Workbook) appendRow(sheet string, values ...any) error {
	w.rows[sheet]++
	cell, err := excelize.CoordinatesToCellName(1, w.rows[sheet])
	if err != nil {
		return err
	}
	return w.file.SetSheetRow(sheet, cell, &values)
}
