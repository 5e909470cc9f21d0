package commands

import (
	"errors"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrExportFleetReportCommandIsNotConstructed = errors.New(
	"ExportFleetReportCommand must be created via NewExportFleetReportCommand constructor",
)

// ExportFleetReportCommand requests a workbook export of all orders'
// reconciled reports to the given file path.
type ExportFleetReportCommand struct {
	outputPath string

	guard guard.ConstructorGuard
}

// NewExportFleetReportCommand creates an export command.
func NewExportFleetReportCommand(outputPath string) (ExportFleetReportCommand, error) {
	if outputPath == "" {
		return ExportFleetReportCommand{}, errs.NewValueIsRequiredError("outputPath")
	}

	return ExportFleetReportCommand{
		outputPath: outputPath,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ExportFleetReportCommand) Validate() error {
	return c.guard.Validate(ErrExportFleetReportCommandIsNotConstructed)
}

// OutputPath returns the destination file of the exported workbook.
func (c ExportFleetReportCommand) OutputPath() string {
	return c.outputPath
}
