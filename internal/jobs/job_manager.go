// Package jobs provides scheduled background tasks for the storefront.
//
// Jobs are cron-based, built on github.com/robfig/cron/v3, and are managed
// through JobManager which starts and stops them as a group. The only job
// today is StaleOrderJob, which reports orders stuck in the pending state.
package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"storefront/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	staleOrderJob *StaleOrderJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	staleOrdersHandler queries.GetStalePendingOrdersQueryHandler,
	staleThreshold time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		staleOrderJob: NewStaleOrderJob(staleOrdersHandler, staleThreshold, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.staleOrderJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale order job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.staleOrderJob.Stop()
}
