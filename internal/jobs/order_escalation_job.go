package jobs

import (
	"context"
	"log/slog"

	"castlecare/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderEscalationJob manages the scheduled sweep for stale pending orders.
// Runs every minute to re-publish events for orders no worker has picked up.
type OrderEscalationJob struct {
	handler commands.EscalatePendingOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderEscalationJob creates a new job for escalating stale pending orders.
func NewOrderEscalationJob(
	handler commands.EscalatePendingOrdersCommandHandler,
	logger *slog.Logger,
) *OrderEscalationJob {
	return &OrderEscalationJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "order_escalation_job"),
	}
}

// Start begins the escalation job to run every minute.
func (j *OrderEscalationJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewEscalatePendingOrdersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Order escalation job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order escalation job started (running every minute)")
	return nil
}

// Stop stops the escalation job.
func (j *OrderEscalationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order escalation job stopped")
}
