package jobs

import (
	"context"
	"log/slog"

	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// OrderBacklogJob logs how many orders wait in each open status, i.e.
// pending orders nobody has confirmed and confirmed orders not yet completed.
type OrderBacklogJob struct {
	handler  queries.ListOrdersQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewOrderBacklogJob(handler queries.ListOrdersQueryHandler, schedule string, logger *slog.Logger) *OrderBacklogJob {
	return &OrderBacklogJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "order_backlog_job"),
	}
}

func (j *OrderBacklogJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.Report(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Order backlog job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order backlog job started", "schedule", j.schedule)
	return nil
}

func (j *OrderBacklogJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order backlog job stopped")
}

// Report counts the open orders per status and logs them.
func (j *OrderBacklogJob) Report(ctx context.Context) error {
	counts := make(map[order.Status]int, 2)
	for _, status := range []order.Status{order.Pending, order.Confirmed} {
		query, err := queries.NewListOrdersQuery(status.String())
		if err != nil {
			return err
		}

		orders, err := j.handler.Handle(ctx, query)
		if err != nil {
			return err
		}
		counts[status] = len(orders)
	}

	j.logger.InfoContext(ctx, "Order backlog",
		"pending", counts[order.Pending],
		"confirmed", counts[order.Confirmed],
	)
	return nil
}
