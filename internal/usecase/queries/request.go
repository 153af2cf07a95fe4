package queries

//go:generate mockgen -source=request.go -destination=../../testutil/mock/queries/request_mock.go -package=queriesmock

import (
	"context"

	"scrap-market/internal/domain/auth"
	"scrap-market/internal/domain/request"
	"scrap-market/internal/infra"
	"scrap-market/internal/pkg/errs"
)

type RequestReadStore interface {
	FindByID(ctx context.Context, id int64) (*RequestView, error)
	ListByOwner(ctx context.Context, ownerID int64, status *request.Status) ([]*RequestView, error)
	ListByStatus(ctx context.Context, status *request.Status) ([]*RequestView, error)
	History(ctx context.Context, requestID int64) ([]*HistoryView, error)
}

type RequestQueries interface {
	Get(ctx context.Context, actor auth.Subject, id int64) (*RequestView, error)
	ListMine(ctx context.Context, actor auth.Subject, status string) ([]*RequestView, error)
	ListAllByStatus(ctx context.Context, actor auth.Subject, status string) ([]*RequestView, error)
	History(ctx context.Context, actor auth.Subject, id int64) ([]*HistoryView, error)
}

type requestQueriesImpl struct {
	readStore RequestReadStore
}

func NewRequestQueries(readStore RequestReadStore) RequestQueries {
	return &requestQueriesImpl{readStore: readStore}
}

func (q *requestQueriesImpl) Get(ctx context.Context, actor auth.Subject, id int64) (*RequestView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Wrapf(errs.ErrNotFound, "request %d", id)
		}
		return nil, err
	}
	if !request.CanView(view.UserID, actor.ID, actor.Role) {
		return nil, errs.ErrForbidden
	}
	return view, nil
}

func (q *requestQueriesImpl) ListMine(ctx context.Context, actor auth.Subject, status string) ([]*RequestView, error) {
	filter, err := parseStatusFilter(status)
	if err != nil {
		return nil, err
	}
	return q.readStore.ListByOwner(ctx, actor.ID, filter)
}

func (q *requestQueriesImpl) ListAllByStatus(ctx context.Context, actor auth.Subject, status string) ([]*RequestView, error) {
	if !actor.IsStaff() {
		return nil, errs.ErrForbidden
	}
	filter, err := parseStatusFilter(status)
	if err != nil {
		return nil, err
	}
	return q.readStore.ListByStatus(ctx, filter)
}

func (q *requestQueriesImpl) History(ctx context.Context, actor auth.Subject, id int64) ([]*HistoryView, error) {
	if _, err := q.Get(ctx, actor, id); err != nil {
		return nil, err
	}
	return q.readStore.History(ctx, id)
}

// parseStatusFilter treats an empty filter as "any status".
func parseStatusFilter(s string) (*request.Status, error) {
	if s == "" {
		return nil, nil
	}
	status, err := request.ParseStatus(s)
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "status %q", s), errs.ErrInvalidArgument)
	}
	return &status, nil
}
