// Package propagation runs the background delivery of coordinator status
// changes to the Request Ledger.
package propagation

import (
	"context"
	"log/slog"
	"time"

	"scrap-market/internal/usecase/commands"
)

type Reconciler struct {
	deliverer commands.PropagationCommands
	logger    *slog.Logger
}

func NewReconciler(deliverer commands.PropagationCommands, logger *slog.Logger) *Reconciler {
	return &Reconciler{
		deliverer: deliverer,
		logger:    logger,
	}
}

// Start runs one pass right away and then one per interval until ctx is
// cancelled.
func (r *Reconciler) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	r.logger.Info("propagation reconciler started", slog.Duration("interval", interval))

	r.RunOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			r.logger.Info("propagation reconciler stopped")
			return
		case <-ticker.C:
			r.RunOnce(ctx)
		}
	}
}

// RunOnce delivers one batch of due entries. Errors are logged; the
// entries stay pending and the next pass picks them up.
func (r *Reconciler) RunOnce(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	start := time.Now()
	tried, err := r.deliverer.DeliverDue(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		r.logger.Error("propagation pass failed", slog.String("error", err.Error()))
		return
	}
	if tried > 0 {
		r.logger.Info("propagation pass finished",
			slog.Int("tried", tried),
			slog.Duration("duration", time.Since(start)),
		)
	}
}
