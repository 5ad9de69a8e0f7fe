package jobs

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// StaleOrderJob watches for orders stuck in the pending state.
// Runs every minute and logs every order that has been pending longer than
// the configured threshold, so operators can follow up on them.
type StaleOrderJob struct {
	handler   queries.GetStalePendingOrdersQueryHandler
	threshold time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewStaleOrderJob creates a new job reporting orders pending longer than
// threshold.
func NewStaleOrderJob(
	handler queries.GetStalePendingOrdersQueryHandler,
	threshold time.Duration,
	logger *slog.Logger,
) *StaleOrderJob {
	return &StaleOrderJob{
		handler:   handler,
		threshold: threshold,
		cron:      cron.New(),
		logger:    logger.With("component", "stale_order_job"),
	}
}

// Start begins the stale order job to run every minute.
func (j *StaleOrderJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		query, err := queries.NewGetStalePendingOrdersQuery(time.Now().UTC().Add(-j.threshold))
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale order job failed", "error", err)
			return
		}

		stale, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale order job failed", "error", err)
			return
		}

		for _, entry := range stale {
			j.logger.WarnContext(ctx, "Order pending past threshold",
				"orderId", entry.ID.String(),
				"createdAt", entry.CreatedAt,
				"threshold", j.threshold)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order job started (running every minute)")
	return nil
}

// Stop stops the stale order job.
func (j *StaleOrderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order job stopped")
}
