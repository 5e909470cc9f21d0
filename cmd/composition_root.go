package cmd

import (
	"log/slog"

	httpin "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/excel"
	"fulfillment/internal/adapters/out/postgres/directoryrepo"
	"fulfillment/internal/adapters/out/postgres/orderstore"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config Config
	logger *slog.Logger

	orderStore *orderstore.GormOrderStore
	directory  *directoryrepo.GormDirectory
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		logger:     logger,
		orderStore: orderstore.NewGormOrderStore(gormDB),
		directory:  directoryrepo.NewGormDirectory(gormDB),
	}
}

func (c *CompositionRoot) CreateGetEntityReportQueryHandler() queries.GetEntityReportQueryHandler {
	return queries.NewGetEntityReportQueryHandler(c.orderStore, c.directory, c.directory)
}

func (c *CompositionRoot) CreateGetDriverReportQueryHandler() queries.GetDriverReportQueryHandler {
	return queries.NewGetDriverReportQueryHandler(c.orderStore, c.directory)
}

func (c *CompositionRoot) CreateGetEntityBillQueryHandler() queries.GetEntityBillQueryHandler {
	return queries.NewGetEntityBillQueryHandler(c.orderStore, c.directory)
}

func (c *CompositionRoot) CreateBatchReportQueryHandler() queries.BatchReportQueryHandler {
	return queries.NewBatchReportQueryHandler(
		c.orderStore, c.directory, c.directory, c.config.BatchWorkers, c.logger)
}

func (c *CompositionRoot) CreateExportFleetReportCommandHandler() commands.ExportFleetReportCommandHandler {
	return commands.NewExportFleetReportCommandHandler(
		c.orderStore,
		c.CreateBatchReportQueryHandler(),
		c.CreateGetEntityBillQueryHandler(),
		excel.NewFactory(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateGetEntityReportQueryHandler(),
		c.CreateGetDriverReportQueryHandler(),
		c.CreateGetEntityBillQueryHandler(),
		c.CreateBatchReportQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateExportFleetReportCommandHandler(),
		c.config.ReportCronSchedule,
		c.config.ReportOutputDir,
		c.logger,
	)
}
