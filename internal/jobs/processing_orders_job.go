package jobs

import (
	"context"
	"log/slog"
	"time"

	"orders/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// processingOrdersInterval is how often the processing advancer runs.
const processingOrdersInterval = 45 * time.Second

// ProcessingOrdersJob periodically completes aged processing orders.
type ProcessingOrdersJob struct {
	handler commands.CompleteProcessingOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewProcessingOrdersJob creates the processing order advancer job.
func NewProcessingOrdersJob(
	handler commands.CompleteProcessingOrdersCommandHandler,
	logger *slog.Logger,
) *ProcessingOrdersJob {
	return &ProcessingOrdersJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "processing_orders_job"),
	}
}

// Start schedules the job at a constant 45 second delay. Runs with nothing
// to complete stay silent so the log only shows actual work.
func (j *ProcessingOrdersJob) Start() error {
	j.cron.Schedule(cron.Every(processingOrdersInterval), cron.FuncJob(func() {
		ctx := context.Background()
		cmd := commands.NewCompleteProcessingOrdersCommand()

		completed, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Processing orders job failed", "error", err)
			return
		}

		if completed > 0 {
			j.logger.InfoContext(ctx, "Completed processing orders", "count", completed)
		}
	}))

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Processing orders job started", "interval", processingOrdersInterval.String())
	return nil
}

// Stop stops scheduling and waits for an in-flight invocation to finish.
func (j *ProcessingOrdersJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Processing orders job stopped")
}
