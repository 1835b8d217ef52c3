package jobs

import (
	"context"
	"log/slog"
	"time"

	"orders/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// pendingOrdersInterval is how often the pending advancer runs. The dwell
// time itself lives with the command handler; the interval only bounds how
// late past the dwell an order can be picked up.
const pendingOrdersInterval = 30 * time.Second

// PendingOrdersJob periodically promotes aged pending orders to processing.
type PendingOrdersJob struct {
	handler commands.AdvancePendingOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPendingOrdersJob creates the pending order advancer job.
func NewPendingOrdersJob(handler commands.AdvancePendingOrdersCommandHandler, logger *slog.Logger) *PendingOrdersJob {
	return &PendingOrdersJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "pending_orders_job"),
	}
}

// Start schedules the job at a constant 30 second delay. Runs with nothing
// to promote stay silent so the log only shows actual work.
func (j *PendingOrdersJob) Start() error {
	j.cron.Schedule(cron.Every(pendingOrdersInterval), cron.FuncJob(func() {
		ctx := context.Background()
		cmd := commands.NewAdvancePendingOrdersCommand()

		promoted, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Pending orders job failed", "error", err)
			return
		}

		if promoted > 0 {
			j.logger.InfoContext(ctx, "Promoted pending orders to processing", "count", promoted)
		}
	}))

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending orders job started", "interval", pendingOrdersInterval.String())
	return nil
}

// Stop stops scheduling and waits for an in-flight invocation to finish.
func (j *PendingOrdersJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Pending orders job stopped")
}
