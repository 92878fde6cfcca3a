package jobs

import (
	"context"
	"log/slog"
	"time"

	"dietboard/internal/core/domain/model/order"
	"dietboard/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// OverdueOrderJob watches the kitchen pipeline for trays that sit too long.
// Runs every minute and logs a warning for each New or Preparing order older
// than the configured threshold, so the kitchen notices stalled work even
// when nobody is looking at the board.
type OverdueOrderJob struct {
	orders    ports.OrderRepository
	threshold time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOverdueOrderJob creates a new job for overdue order detection.
// The threshold is the age at which an unfinished order counts as overdue.
func NewOverdueOrderJob(orders ports.OrderRepository, threshold time.Duration, logger *slog.Logger) *OverdueOrderJob {
	return &OverdueOrderJob{
		orders:    orders,
		threshold: threshold,
		cron:      cron.New(),
		logger:    logger.With("component", "overdue_order_job"),
	}
}

// Start begins the overdue order job to run every minute.
func (j *OverdueOrderJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		if err := j.run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Overdue order job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue order job started (running every minute)",
		"threshold", j.threshold.String())
	return nil
}

// Stop stops the overdue order job.
func (j *OverdueOrderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue order job stopped")
}

func (j *OverdueOrderJob) run(ctx context.Context) error {
	active, err := j.orders.GetAllActive(ctx)
	if err != nil {
		return err
	}

	cutoff := time.Now().Add(-j.threshold)
	for _, o := range active {
		if o.Status() != order.StatusNew && o.Status() != order.StatusPreparing {
			continue
		}
		if o.CreatedAt().After(cutoff) {
			continue
		}

		j.logger.WarnContext(ctx, "Order is overdue",
			"order_id", o.ID().String(),
			"status", o.Status().String(),
			"meal", o.MealLabel(),
			"room", o.Room(),
			"age", time.Since(o.CreatedAt()).Round(time.Second).String(),
		)
	}

	return nil
}
