package jobs

import (
	"fmt"
	"log/slog"

	"orders/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	pendingOrdersJob    *PendingOrdersJob
	processingOrdersJob *ProcessingOrdersJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	advancePendingHandler commands.AdvancePendingOrdersCommandHandler,
	completeProcessingHandler commands.CompleteProcessingOrdersCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		pendingOrdersJob:    NewPendingOrdersJob(advancePendingHandler, logger),
		processingOrdersJob: NewProcessingOrdersJob(completeProcessingHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.pendingOrdersJob.Start(); err != nil {
		return fmt.Errorf("failed to start pending orders job: %w", err)
	}

	if err := jm.processingOrdersJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.pendingOrdersJob.Stop()
		return fmt.Errorf("failed to start processing orders job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.processingOrdersJob.Stop()
	jm.pendingOrdersJob.Stop()
}
