package queries

//go:generate mockgen -source=dealer.go -destination=../../testutil/mock/queries/dealer_mock.go -package=queriesmock

import (
	"context"
	"log/slog"

	"scrap-market/internal/domain/assignment"
	"scrap-market/internal/domain/propagation"
	"scrap-market/internal/domain/request"
	"scrap-market/internal/pkg/clock"
	"scrap-market/internal/pkg/errs"
	"scrap-market/internal/usecase/shared"
)

// recentTransactionLimit is how many transactions the dashboard shows.
const recentTransactionLimit = 10

type AssignmentReadStore interface {
	ExistsForRequest(ctx context.Context, requestID int64) (bool, error)
	ClaimedRequestIDs(ctx context.Context, ids []int64) (map[int64]struct{}, error)
	ListByDealer(ctx context.Context, dealerID int64, status *assignment.Status) ([]*assignment.Assignment, error)
	ListAll(ctx context.Context, limit int) ([]*assignment.Assignment, error)
	CountsByStatus(ctx context.Context, dealerID int64) (map[assignment.Status]int64, error)
	Profile(ctx context.Context, dealerID int64) (*assignment.DealerProfile, error)
	ListDealers(ctx context.Context, limit int) ([]assignment.DealerProfile, error)
	Transactions(ctx context.Context, dealerID int64, limit int) ([]assignment.Transaction, error)
	ListOutbox(ctx context.Context, state *propagation.State, limit int) ([]*propagation.Entry, error)
}

type DealerQueries interface {
	// AvailableRequests is best-effort: a Ledger failure yields an empty list.
	AvailableRequests(ctx context.Context, token string) ([]shared.LedgerRequest, error)
	Dashboard(ctx context.Context, dealerID int64) (*assignment.Dashboard, error)
	Transactions(ctx context.Context, dealerID int64) ([]assignment.Transaction, error)
	MyAssignments(ctx context.Context, dealerID int64, status string) ([]*assignment.Assignment, error)
}

type dealerQueriesImpl struct {
	readStore AssignmentReadStore
	ledger    shared.LedgerGateway
	uow       shared.UnitOfWork
	clock     clock.Clock
}

func NewDealerQueries(readStore AssignmentReadStore, ledger shared.LedgerGateway, uow shared.UnitOfWork, clk clock.Clock) DealerQueries {
	return &dealerQueriesImpl{
		readStore: readStore,
		ledger:    ledger,
		uow:       uow,
		clock:     clk,
	}
}

func (q *dealerQueriesImpl) AvailableRequests(ctx context.Context, token string) ([]shared.LedgerRequest, error) {
	pending, err := q.ledger.ListAllByStatus(ctx, token, request.StatusPending.String())
	if err != nil {
		slog.Warn("ledger unavailable, showing no available requests", "error", err.Error())
		return []shared.LedgerRequest{}, nil
	}

	ids := make([]int64, 0, len(pending))
	for _, r := range pending {
		ids = append(ids, r.ID)
	}
	claimed, err := q.readStore.ClaimedRequestIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	available := make([]shared.LedgerRequest, 0, len(pending))
	for _, r := range pending {
		if _, ok := claimed[r.ID]; ok {
			continue
		}
		available = append(available, r)
	}
	return available, nil
}

func (q *dealerQueriesImpl) Dashboard(ctx context.Context, dealerID int64) (*assignment.Dashboard, error) {
	profile, err := q.ensureProfile(ctx, dealerID)
	if err != nil {
		return nil, err
	}
	counts, err := q.readStore.CountsByStatus(ctx, dealerID)
	if err != nil {
		return nil, err
	}
	recent, err := q.readStore.Transactions(ctx, dealerID, recentTransactionLimit)
	if err != nil {
		return nil, err
	}
	return &assignment.Dashboard{
		Profile:            *profile,
		CountsByStatus:     counts,
		RecentTransactions: recent,
	}, nil
}

func (q *dealerQueriesImpl) Transactions(ctx context.Context, dealerID int64) ([]assignment.Transaction, error) {
	return q.readStore.Transactions(ctx, dealerID, 0)
}

func (q *dealerQueriesImpl) MyAssignments(ctx context.Context, dealerID int64, status string) ([]*assignment.Assignment, error) {
	var filter *assignment.Status
	if status != "" {
		s, err := assignment.ParseStatus(status)
		if err != nil {
			return nil, errs.Mark(errs.Wrapf(err, "status %q", status), errs.ErrInvalidArgument)
		}
		filter = &s
	}
	return q.readStore.ListByDealer(ctx, dealerID, filter)
}

// ensureProfile creates the profile row on first visit.
func (q *dealerQueriesImpl) ensureProfile(ctx context.Context, dealerID int64) (*assignment.DealerProfile, error) {
	profile, err := q.readStore.Profile(ctx, dealerID)
	if err != nil || profile != nil {
		return profile, err
	}

	err = q.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.DealerProfiles().Ensure(ctx, dealerID, q.clock.Now())
	})
	if err != nil {
		return nil, err
	}

	profile, err = q.readStore.Profile(ctx, dealerID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, errs.Newf("dealer profile %d missing after ensure", dealerID)
	}
	return profile, nil
}
