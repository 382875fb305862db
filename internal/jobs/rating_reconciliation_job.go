package jobs

import (
	"context"
	"log/slog"

	"fooddelivery/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// RatingReconciliationJob periodically rewrites every restaurant's rating
// from its stored reviews. Ratings are maintained incrementally with each
// review mutation; the hourly sweep repairs any drift.
type RatingReconciliationJob struct {
	handler commands.ReconcileRatingsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewRatingReconciliationJob creates a new job for reconciling restaurant ratings.
// Uses ReconcileRatingsCommandHandler to recompute ratings every hour.
func NewRatingReconciliationJob(
	handler commands.ReconcileRatingsCommandHandler,
	logger *slog.Logger,
) *RatingReconciliationJob {
	return &RatingReconciliationJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "rating_reconciliation_job"),
	}
}

// Start begins the rating reconciliation job to run at the top of every hour.
func (j *RatingReconciliationJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewReconcileRatingsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Rating reconciliation job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Rating reconciliation job started (running hourly)")
	return nil
}

// Stop stops the rating reconciliation job.
func (j *RatingReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Rating reconciliation job stopped")
}
