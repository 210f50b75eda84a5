package jobs

import (
	"context"
	"log/slog"

	"warehouse/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// StockReportJob logs the state of the catalog on a cron schedule:
// how many products exist, how many units are on hand and which products
// are out of stock.
type StockReportJob struct {
	handler  queries.ListProductsQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewStockReportJob creates the job. schedule is a six field cron expression
// (seconds first), e.g. "0 */5 * * * *".
func NewStockReportJob(handler queries.ListProductsQueryHandler, schedule string, logger *slog.Logger) *StockReportJob {
	return &StockReportJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "stock_report_job"),
	}
}

// Start schedules the report. An invalid schedule is returned as an error.
func (j *StockReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.Report(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Stock report job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stock report job started", "schedule", j.schedule)
	return nil
}

// Stop waits for a running report to finish.
func (j *StockReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Stock report job stopped")
}

// Report reads the catalog once and logs the summary.
func (j *StockReportJob) Report(ctx context.Context) error {
	products, err := j.handler.Handle(ctx, queries.NewListProductsQuery(false))
	if err != nil {
		return err
	}

	units := 0
	outOfStock := make([]string, 0)
	for _, p := range products {
		units += p.Quantity
		if !p.InStock {
			outOfStock = append(outOfStock, p.Name)
		}
	}

	j.logger.InfoContext(ctx, "Stock report",
		"products", len(products),
		"units", units,
		"out_of_stock_count", len(outOfStock),
		"out_of_stock", outOfStock,
	)
	return nil
}
