// Package jobs provides scheduled background tasks for the fulfillment
// reporting service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations.
//
// # Available Jobs
//
// 1. ReportExportJob - Runs on a configurable schedule to reconcile all
// orders and write the fleet workbook to disk
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(exportHandler, schedule, outputDir, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The export job takes a six-field cron expression (seconds included),
// hourly by default. A run that overlaps a previous one is safe: each
// run builds its own workbook and writes to a timestamped file.
//
// # Error Handling
//
// Export failures are logged and swallowed; the next scheduled run
// starts from scratch. A failed job start stops any already running jobs.
package jobs
