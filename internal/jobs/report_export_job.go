package jobs

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ReportExportJob manages the scheduled export of the fleet workbook.
// Each run writes a timestamped xlsx into the configured output
// directory, reconciling every known order.
type ReportExportJob struct {
	handler   commands.ExportFleetReportCommandHandler
	schedule  string
	outputDir string
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewReportExportJob creates a new job for exporting the fleet report.
// schedule is a six-field cron expression.
func NewReportExportJob(
	handler commands.ExportFleetReportCommandHandler,
	schedule string,
	outputDir string,
	logger *slog.Logger,
) *ReportExportJob {
	return &ReportExportJob{
		handler:   handler,
		schedule:  schedule,
		outputDir: outputDir,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "report_export_job"),
	}
}

// Start begins the report export job on its configured schedule.
func (j *ReportExportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		path := filepath.Join(j.outputDir,
			"fleet-report-"+time.Now().Format("2006-01-02-1504")+".xlsx")

		cmd, err := commands.NewExportFleetReportCommand(path)
		if err != nil {
			j.logger.ErrorContext(ctx, "Report export job misconfigured", "error", err)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Report export job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(),
		"Report export job started", "schedule", j.schedule, "output_dir", j.outputDir)
	return nil
}

// Stop stops the report export job.
func (j *ReportExportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Report export job stopped")
}
