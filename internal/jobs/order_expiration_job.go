package jobs

import (
	"context"
	"log/slog"

	"marketplace/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderExpirationJob runs the expiration sweep every minute, archiving
// still-placed orders whose expiration date has passed and terminating their
// open bids. Minute granularity matches the precision of the expiration date.
type OrderExpirationJob struct {
	handler commands.ArchiveExpiredOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderExpirationJob creates the sweep job over the archive handler.
func NewOrderExpirationJob(
	handler commands.ArchiveExpiredOrdersCommandHandler,
	logger *slog.Logger,
) *OrderExpirationJob {
	return &OrderExpirationJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "order_expiration_job"),
	}
}

// Start begins the expiration sweep, running once a minute.
func (j *OrderExpirationJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewArchiveExpiredOrdersCommand()

		archived, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Order expiration sweep failed", "error", err)
			return
		}
		if archived > 0 {
			j.logger.InfoContext(ctx, "Order expiration sweep archived orders", "count", archived)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order expiration job started (running every minute)")
	return nil
}

// Stop stops the expiration sweep.
func (j *OrderExpirationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order expiration job stopped")
}
