package jobs

import (
	"fmt"
	"log/slog"

	"warehouse/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	stockReportJob  *StockReportJob
	orderBacklogJob *OrderBacklogJob
}

// Schedules holds the cron expression of every job.
type Schedules struct {
	StockReport  string
	OrderBacklog string
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers as dependencies to wire up the job execution.
func NewJobManager(
	listProductsHandler queries.ListProductsQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	schedules Schedules,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		stockReportJob:  NewStockReportJob(listProductsHandler, schedules.StockReport, logger),
		orderBacklogJob: NewOrderBacklogJob(listOrdersHandler, schedules.OrderBacklog, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.stockReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start stock report job: %w", err)
	}

	if err := jm.orderBacklogJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.stockReportJob.Stop()
		return fmt.Errorf("failed to start order backlog job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderBacklogJob.Stop()
	jm.stockReportJob.Stop()
}
