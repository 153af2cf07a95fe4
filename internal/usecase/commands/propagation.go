package commands

//go:generate mockgen -source=propagation.go -destination=../../testutil/mock/commands/propagation_mock.go -package=commandsmock

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"scrap-market/internal/domain/propagation"
	"scrap-market/internal/pkg/clock"
	"scrap-market/internal/pkg/config"
	"scrap-market/internal/pkg/errs"
	"scrap-market/internal/usecase/shared"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// PropagationRecorder receives one observation per push.
type PropagationRecorder interface {
	RecordPropagation(outcome string)
	RecordPropagationLatency(duration time.Duration)
}

type PropagationCommands interface {
	Pusher
	// DeliverDue pushes one batch of due entries with the service token and
	// reports how many were tried.
	DeliverDue(ctx context.Context) (int, error)
}

var ErrNoServiceToken = errs.New("propagation service token is not configured")

type propagationCommandsImpl struct {
	uow      shared.UnitOfWork
	ledger   shared.LedgerGateway
	limiter  *rate.Limiter
	recorder PropagationRecorder
	cfg      config.PropagationConfig
	clock    clock.Clock
}

func NewPropagationCommands(
	uow shared.UnitOfWork,
	ledger shared.LedgerGateway,
	recorder PropagationRecorder,
	cfg config.PropagationConfig,
	clk clock.Clock,
) PropagationCommands {
	limit := rate.Inf
	if cfg.RatePerSecond > 0 {
		limit = rate.Limit(cfg.RatePerSecond)
	}
	burst := int(cfg.RatePerSecond)
	if burst < 1 {
		burst = 1
	}
	return &propagationCommandsImpl{
		uow:      uow,
		ledger:   ledger,
		limiter:  rate.NewLimiter(limit, burst),
		recorder: recorder,
		cfg:      cfg,
		clock:    clk,
	}
}

// DeliverOne pushes a single entry with the given token. Entries that are
// not due, wait behind an older update for the same request, or are held
// by the reconciler are skipped.
func (p *propagationCommandsImpl) DeliverOne(ctx context.Context, id uuid.UUID, token string) error {
	_, pushErr, err := p.deliver(ctx, id, token)
	if err != nil {
		return err
	}
	return pushErr
}

func (p *propagationCommandsImpl) DeliverDue(ctx context.Context) (int, error) {
	if p.cfg.ServiceToken == "" {
		return 0, ErrNoServiceToken
	}

	var ids []uuid.UUID
	err := p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		ids, err = tx.Outbox().DueIDs(ctx, p.clock.Now(), p.cfg.BatchSize)
		return err
	})
	if err != nil {
		return 0, err
	}

	tried := 0
	for _, id := range ids {
		if ctx.Err() != nil {
			break
		}
		claimed, _, err := p.deliver(ctx, id, p.cfg.ServiceToken)
		if err != nil {
			return tried, err
		}
		if claimed {
			tried++
		}
	}
	return tried, nil
}

// deliver claims, pushes and saves one entry in its own transaction.
// pushErr is the Ledger's answer; err is a local failure.
func (p *propagationCommandsImpl) deliver(ctx context.Context, id uuid.UUID, token string) (claimed bool, pushErr, err error) {
	err = p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		claimed, pushErr = false, nil
		entry, err := tx.Outbox().ClaimByID(ctx, id, p.clock.Now())
		if err != nil || entry == nil {
			return err
		}
		claimed = true
		pushErr = p.push(ctx, entry, token)
		return tx.Outbox().Save(ctx, entry)
	})
	return claimed, pushErr, err
}

// push performs one attempt and records its outcome on the entry. The
// returned error is informational; the entry already carries the result.
func (p *propagationCommandsImpl) push(ctx context.Context, entry *propagation.Entry, token string) error {
	if err := p.limiter.Wait(ctx); err != nil {
		return err
	}

	dealerID := entry.DealerID
	start := time.Now()
	code, err := p.ledger.UpdateStatus(ctx, token, entry.RequestID, shared.StatusUpdate{
		Status:           entry.Status,
		AssignedDealerID: &dealerID,
		Notes:            fmt.Sprintf("Updated by dealer %d", entry.DealerID),
	})
	p.recorder.RecordPropagationLatency(time.Since(start))

	now := p.clock.Now()
	if err == nil {
		entry.MarkDelivered(now)
		p.recorder.RecordPropagation(string(propagation.StateDelivered))
		return nil
	}

	entry.MarkFailed(propagation.Classify(code), err.Error(), p.cfg.MaxAttempts, now)
	if entry.State == propagation.StateDead {
		p.recorder.RecordPropagation(string(propagation.StateDead))
		slog.Error("propagation parked as dead",
			"propagation_id", entry.ID.String(),
			"request_id", entry.RequestID,
			"status", entry.Status,
			"attempts", entry.Attempts,
			"ledger_status", code,
			"error", err.Error())
		return err
	}

	p.recorder.RecordPropagation("retry")
	slog.Warn("propagation failed, will retry",
		"propagation_id", entry.ID.String(),
		"request_id", entry.RequestID,
		"attempts", entry.Attempts,
		"next_attempt_at", entry.NextAttemptAt,
		"error", err.Error())
	return err
}
