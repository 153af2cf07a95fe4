package commands

//go:generate mockgen -source=request.go -destination=../../testutil/mock/commands/request_mock.go -package=commandsmock

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"scrap-market/internal/domain/auth"
	"scrap-market/internal/domain/pricing"
	"scrap-market/internal/domain/request"
	"scrap-market/internal/infra"
	"scrap-market/internal/pkg/clock"
	"scrap-market/internal/pkg/errs"
	"scrap-market/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

type CreateRequestInput struct {
	CategoryID    int64
	Quantity      decimal.Decimal
	PickupAddress string
	PickupDate    *time.Time
	Notes         string
	Location      string
}

type UpdateStatusInput struct {
	Status           string
	AssignedDealerID *int64
	Notes            string
}

type RequestCommands interface {
	// Create stores a pending request. The price estimate is best-effort.
	Create(ctx context.Context, actor auth.Subject, token string, in CreateRequestInput) (*request.Request, error)
	UpdateStatus(ctx context.Context, actor auth.Subject, id int64, in UpdateStatusInput) error
}

type requestCommandsImpl struct {
	uow     shared.UnitOfWork
	pricing shared.PricingGateway
	policy  request.Policy
	clock   clock.Clock
}

func NewRequestCommands(uow shared.UnitOfWork, pricing shared.PricingGateway, policy request.Policy, clk clock.Clock) RequestCommands {
	return &requestCommandsImpl{
		uow:     uow,
		pricing: pricing,
		policy:  policy,
		clock:   clk,
	}
}

func (r *requestCommandsImpl) Create(ctx context.Context, actor auth.Subject, token string, in CreateRequestInput) (*request.Request, error) {
	req, err := request.New(request.NewParams{
		OwnerID:       actor.ID,
		CategoryID:    in.CategoryID,
		Quantity:      in.Quantity,
		PickupAddress: in.PickupAddress,
		PickupDate:    in.PickupDate,
		Notes:         in.Notes,
	}, r.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidArgument)
	}

	location := pricing.NormalizeLocation(in.Location)
	estimate, err := r.pricing.Estimate(ctx, token, in.CategoryID, in.Quantity, location)
	if err != nil {
		slog.Warn("price estimate unavailable, storing request without it",
			"category_id", in.CategoryID,
			"error", err.Error())
	} else {
		req.AttachEstimate(estimate)
	}

	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, createErr := tx.Requests().Create(ctx, req)
		if createErr != nil {
			return createErr
		}
		req.AssignID(id)
		return tx.History().Append(ctx, request.CreatedEntry(req))
	})
	if err != nil {
		return nil, err
	}
	return req, nil
}

func (r *requestCommandsImpl) UpdateStatus(ctx context.Context, actor auth.Subject, id int64, in UpdateStatusInput) error {
	to, err := request.ParseStatus(in.Status)
	if err != nil {
		return errs.Mark(errs.Wrapf(err, "status %q", in.Status), errs.ErrInvalidArgument)
	}

	return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		req, findErr := tx.Requests().FindForUpdate(ctx, id)
		if findErr != nil {
			if infra.IsKind(findErr, infra.KindNotFound) {
				return errs.Wrapf(errs.ErrNotFound, "request %d", id)
			}
			return findErr
		}
		if !req.CanUpdate(actor.ID, actor.Role) {
			return errs.ErrForbidden
		}

		entry, changeErr := req.ChangeStatus(request.Change{
			To:               to,
			ActorID:          actor.ID,
			AssignedDealerID: in.AssignedDealerID,
			Notes:            in.Notes,
		}, r.policy, r.clock.Now())
		if changeErr != nil {
			if errors.Is(changeErr, request.ErrIllegalTransition) {
				return errs.Mark(errs.Wrapf(changeErr, "%s -> %s", req.Status(), to), errs.ErrInvalidTransition)
			}
			return errs.Mark(changeErr, errs.ErrInvalidArgument)
		}

		if err := tx.Requests().UpdateStatus(ctx, req); err != nil {
			return err
		}
		return tx.History().Append(ctx, entry)
	})
}
