package jobs

import (
	"context"
	"log/slog"

	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// DefaultStatusReportSchedule runs the report at second zero of every minute.
const DefaultStatusReportSchedule = "0 * * * * *"

type statusCountsHandler interface {
	Handle(ctx context.Context, query queries.GetOrderStatusCountsQuery) (queries.GetOrderStatusCountsQueryResponse, error)
}

// OrderStatusReportJob periodically counts orders per status, publishes the
// counts as a gauge and logs them. It only reads.
type OrderStatusReportJob struct {
	handler  statusCountsHandler
	metrics  ports.TransitionMetrics
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewOrderStatusReportJob(
	handler statusCountsHandler,
	metrics ports.TransitionMetrics,
	schedule string,
	logger *slog.Logger,
) *OrderStatusReportJob {
	if schedule == "" {
		schedule = DefaultStatusReportSchedule
	}

	return &OrderStatusReportJob{
		handler:  handler,
		metrics:  metrics,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "order_status_report_job"),
	}
}

func (j *OrderStatusReportJob) Name() string {
	return "order status report"
}

// Start registers the report on the configured schedule and starts the scheduler.
func (j *OrderStatusReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order status report job started", "schedule", j.schedule)
	return nil
}

// Run produces one report.
func (j *OrderStatusReportJob) Run(ctx context.Context) {
	counts, err := j.handler.Handle(ctx, queries.NewGetOrderStatusCountsQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Order status report failed", "error", err)
		return
	}

	j.metrics.SetOrdersByStatus(counts)

	attrs := make([]any, 0, len(counts)*2)
	for _, state := range order.States() {
		attrs = append(attrs, state.String(), counts[state])
	}
	j.logger.InfoContext(ctx, "Order status report", attrs...)
}

// Stop waits for a running report to finish.
func (j *OrderStatusReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order status report job stopped")
}
