package commands

//go:generate mockgen -source=assignment.go -destination=../../testutil/mock/commands/assignment_mock.go -package=commandsmock

import (
	"context"
	"errors"
	"log/slog"

	"scrap-market/internal/domain/assignment"
	"scrap-market/internal/domain/auth"
	"scrap-market/internal/domain/propagation"
	"scrap-market/internal/domain/request"
	"scrap-market/internal/infra"
	"scrap-market/internal/pkg/clock"
	"scrap-market/internal/pkg/errs"
	"scrap-market/internal/usecase/shared"

	"github.com/google/uuid"
)

// ClaimChecker is the read side the claim pre-check needs.
type ClaimChecker interface {
	ExistsForRequest(ctx context.Context, requestID int64) (bool, error)
}

// Pusher delivers one outbox entry right away. The token is used for this
// push only and never stored.
type Pusher interface {
	DeliverOne(ctx context.Context, id uuid.UUID, token string) error
}

type AssignmentCommands interface {
	Claim(ctx context.Context, dealer auth.Subject, token string, requestID int64) (*assignment.Assignment, error)
	Complete(ctx context.Context, dealer auth.Subject, token string, requestID int64, c assignment.Completion) (*assignment.Assignment, error)
}

type assignmentCommandsImpl struct {
	uow    shared.UnitOfWork
	claims ClaimChecker
	ledger shared.LedgerGateway
	pusher Pusher
	clock  clock.Clock
}

func NewAssignmentCommands(
	uow shared.UnitOfWork,
	claims ClaimChecker,
	ledger shared.LedgerGateway,
	pusher Pusher,
	clk clock.Clock,
) AssignmentCommands {
	return &assignmentCommandsImpl{
		uow:    uow,
		claims: claims,
		ledger: ledger,
		pusher: pusher,
		clock:  clk,
	}
}

// Claim records the dealer's exclusive claim on a pending request. The
// unique index on request_id is what decides a race; the pre-checks only
// give early, clearer answers.
func (a *assignmentCommandsImpl) Claim(ctx context.Context, dealer auth.Subject, token string, requestID int64) (*assignment.Assignment, error) {
	exists, err := a.claims.ExistsForRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errs.ErrAlreadyAssigned
	}

	ledgerReq, err := a.ledger.GetRequest(ctx, token, requestID)
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) || errs.Is(err, errs.ErrUpstreamUnavailable) {
			return nil, err
		}
		return nil, errs.Mark(err, errs.ErrUpstreamUnavailable)
	}
	if ledgerReq.Status != request.StatusPending.String() {
		return nil, errs.ErrNoLongerAvailable
	}

	now := a.clock.Now()
	claim := assignment.NewClaim(requestID, dealer.ID, ledgerReq.UserID, now)
	entry := propagation.NewEntry(requestID, request.StatusAccepted.String(), dealer.ID, now)

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, createErr := tx.Assignments().Create(ctx, claim)
		if createErr != nil {
			if infra.IsKind(createErr, infra.KindDuplicateKey) {
				return errs.ErrAlreadyAssigned
			}
			return createErr
		}
		claim.ID = id

		if err := tx.DealerProfiles().Ensure(ctx, dealer.ID, now); err != nil {
			return err
		}
		return tx.Outbox().Enqueue(ctx, entry)
	})
	if err != nil {
		return nil, err
	}

	a.pushNow(ctx, entry, token)
	return claim, nil
}

// Complete closes the dealer's assignment, credits the dealer and records
// the payment, all in one local transaction.
func (a *assignmentCommandsImpl) Complete(ctx context.Context, dealer auth.Subject, token string, requestID int64, c assignment.Completion) (*assignment.Assignment, error) {
	if err := c.Validate(); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidArgument)
	}

	now := a.clock.Now()
	entry := propagation.NewEntry(requestID, request.StatusCompleted.String(), dealer.ID, now)

	var completed *assignment.Assignment
	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		asg, findErr := tx.Assignments().FindForUpdate(ctx, requestID, dealer.ID)
		if findErr != nil {
			if infra.IsKind(findErr, infra.KindNotFound) {
				return errs.Wrapf(errs.ErrNotFound, "no assignment for request %d", requestID)
			}
			return findErr
		}

		if completeErr := asg.Complete(c, now); completeErr != nil {
			if errors.Is(completeErr, assignment.ErrAlreadyCompleted) {
				return errs.ErrAlreadyCompleted
			}
			return errs.Mark(completeErr, errs.ErrInvalidArgument)
		}
		if err := tx.Assignments().Save(ctx, asg); err != nil {
			return err
		}
		if err := tx.DealerProfiles().RecordCompletion(ctx, dealer.ID, c.ActualPrice, now); err != nil {
			return err
		}

		payment, err := assignment.PaymentFor(asg)
		if err != nil {
			return err
		}
		if _, err := tx.Transactions().Create(ctx, payment); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.ErrAlreadyCompleted
			}
			return err
		}

		completed = asg
		return tx.Outbox().Enqueue(ctx, entry)
	})
	if err != nil {
		return nil, err
	}

	a.pushNow(ctx, entry, token)
	return completed, nil
}

// pushNow is best-effort with the dealer's own token; the reconciler picks
// up whatever fails or has to wait here.
func (a *assignmentCommandsImpl) pushNow(ctx context.Context, entry *propagation.Entry, token string) {
	if err := a.pusher.DeliverOne(context.WithoutCancel(ctx), entry.ID, token); err != nil {
		slog.Warn("immediate propagation failed, left to reconciler",
			"request_id", entry.RequestID,
			"propagation_id", entry.ID.String(),
			"error", err.Error())
	}
}
