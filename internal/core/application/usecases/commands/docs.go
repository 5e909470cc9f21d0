// Package commands contains the application's write-side use cases:
// operations that produce artifacts or change external state, such as
// exporting the fleet-wide reconciliation workbook.
package commands
