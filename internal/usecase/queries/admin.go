package queries

//go:generate mockgen -source=admin.go -destination=../../testutil/mock/queries/admin_mock.go -package=queriesmock

import (
	"context"

	"scrap-market/internal/domain/assignment"
	"scrap-market/internal/domain/propagation"
	"scrap-market/internal/pkg/errs"
)

type AdminQueries interface {
	Assignments(ctx context.Context) ([]*assignment.Assignment, error)
	Dealers(ctx context.Context) ([]assignment.DealerProfile, error)
	Propagation(ctx context.Context, state string) ([]*propagation.Entry, error)
}

type adminQueriesImpl struct {
	readStore AssignmentReadStore
}

func NewAdminQueries(readStore AssignmentReadStore) AdminQueries {
	return &adminQueriesImpl{readStore: readStore}
}

func (q *adminQueriesImpl) Assignments(ctx context.Context) ([]*assignment.Assignment, error) {
	return q.readStore.ListAll(ctx, MaxListLimit)
}

func (q *adminQueriesImpl) Dealers(ctx context.Context) ([]assignment.DealerProfile, error) {
	return q.readStore.ListDealers(ctx, MaxListLimit)
}

func (q *adminQueriesImpl) Propagation(ctx context.Context, state string) ([]*propagation.Entry, error) {
	var filter *propagation.State
	if state != "" {
		s, err := propagation.ParseState(state)
		if err != nil {
			return nil, errs.Mark(errs.Wrapf(err, "state %q", state), errs.ErrInvalidArgument)
		}
		filter = &s
	}
	return q.readStore.ListOutbox(ctx, filter, MaxListLimit)
}
