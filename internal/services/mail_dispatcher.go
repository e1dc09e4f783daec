package services

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/causeway/backend/internal/infrastructure/outbox"
	"github.com/causeway/backend/internal/services/mailer"
)

// DispatcherConfig controls how frequently the outbox is drained.
type DispatcherConfig struct {
	Interval   time.Duration
	BatchSize  int
	MaxRetries int
	Retention  time.Duration
}

// MailDispatcher drains the outbox and hands messages to the SMTP sender.
// Failed sends are requeued up to MaxRetries; stale messages beyond the
// retention window are dropped so a long SMTP outage cannot grow the queue
// without bound.
type MailDispatcher struct {
	store  *outbox.Store
	sender mailer.Sender
	logger *zap.Logger
	cron   *cron.Cron
	cfg    DispatcherConfig
}

func NewMailDispatcher(store *outbox.Store, sender mailer.Sender, logger *zap.Logger, cfg DispatcherConfig) *MailDispatcher {
	if cfg.Interval <= 0 {
		cfg.Interval = 30 * time.Second
	}
	// The cron spec has second granularity; anything finer would render as
	// "@every 0s" and register no job at all.
	if cfg.Interval < time.Second {
		cfg.Interval = time.Second
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 50
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	d := &MailDispatcher{
		store:  store,
		sender: sender,
		logger: logger,
		cfg:    cfg,
		cron:   cron.New(cron.WithSeconds()),
	}

	schedule := fmt.Sprintf("@every %ds", int(cfg.Interval.Seconds()))
	if _, err := d.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Interval)
		defer cancel()
		if err := d.Drain(ctx); err != nil {
			d.logger.Error("outbox drain failed", zap.Error(err))
		}
	}); err != nil {
		d.logger.Error("failed to schedule outbox drain",
			zap.String("schedule", schedule),
			zap.Error(err))
	}

	return d
}

// Start launches the cron scheduler.
func (d *MailDispatcher) Start() {
	if d == nil || d.cron == nil {
		return
	}
	d.cron.Start()
	d.logger.Info("mail dispatcher started")
}

// Stop gracefully stops the scheduler.
func (d *MailDispatcher) Stop(ctx context.Context) {
	if d == nil || d.cron == nil {
		return
	}
	stopCtx := d.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
	}
	d.logger.Info("mail dispatcher stopped")
}

// Drain sends pending messages synchronously.
func (d *MailDispatcher) Drain(ctx context.Context) error {
	if d == nil || d.store == nil {
		return nil
	}

	if d.cfg.Retention > 0 {
		if err := d.store.Cleanup(time.Now().Add(-d.cfg.Retention)); err != nil {
			d.logger.Warn("outbox cleanup failed", zap.Error(err))
		}
	}

	messages, err := d.store.GetBatch(d.cfg.BatchSize)
	if err != nil {
		return err
	}

	for _, msg := range messages {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := d.sender.Send(msg.To, msg.Subject, msg.Body); err != nil {
			d.logger.Error("failed to send notification email",
				zap.String("message_id", msg.ID),
				zap.String("kind", msg.Kind),
				zap.Error(err))

			msg.Retries++
			if msg.Retries >= d.cfg.MaxRetries {
				d.logger.Warn("dropping outbox message (max retries reached)", zap.String("message_id", msg.ID))
				_ = d.store.Remove(msg)
				continue
			}

			if err := d.store.Remove(msg); err != nil {
				d.logger.Warn("failed to remove outbox message", zap.Error(err))
			}
			if err := d.store.Requeue(msg); err != nil {
				d.logger.Error("failed to requeue outbox message", zap.Error(err))
			}
			continue
		}

		if err := d.store.Remove(msg); err != nil {
			d.logger.Warn("failed to purge sent outbox message", zap.Error(err))
		}
	}
	return nil
}

// Size returns the number of pending messages.
func (d *MailDispatcher) Size() int {
	if d == nil || d.store == nil {
		return 0
	}
	size, err := d.store.Size()
	if err != nil {
		return 0
	}
	return size
}
