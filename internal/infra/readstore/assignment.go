package readstore

import (
	"context"

	"scrap-market/internal/domain/assignment"
	"scrap-market/internal/domain/propagation"
	"scrap-market/internal/infra"
	"scrap-market/internal/infra/db"
	"scrap-market/internal/infra/repository/converter"
	"scrap-market/internal/pkg/pgconv"
)

const (
	assignmentExists = `SELECT EXISTS (SELECT 1 FROM request_assignments WHERE request_id = $1)`

	claimedRequestIDs = `SELECT request_id FROM request_assignments WHERE request_id = ANY($1)`

	listAssignmentsByDealer = `
SELECT ` + converter.AssignmentColumns + `
FROM request_assignments
WHERE dealer_id = $1 AND ($2::text IS NULL OR status = $2)
ORDER BY assigned_at DESC, id DESC`

	listAllAssignments = `
SELECT ` + converter.AssignmentColumns + `
FROM request_assignments
ORDER BY assigned_at DESC, id DESC
LIMIT $1`

	countAssignmentsByStatus = `
SELECT status, COUNT(*)
FROM request_assignments
WHERE dealer_id = $1
GROUP BY status`

	getDealerProfile = `SELECT ` + converter.DealerProfileColumns + ` FROM dealer_profiles WHERE dealer_id = $1`

	listDealerProfiles = `SELECT ` + converter.DealerProfileColumns + ` FROM dealer_profiles ORDER BY dealer_id ASC LIMIT $1`

	listDealerTransactions = `
SELECT ` + converter.TransactionColumns + `
FROM transactions
WHERE dealer_id = $1
ORDER BY created_at DESC, id DESC
LIMIT $2::bigint`

	listOutbox = `
SELECT ` + converter.OutboxColumns + `
FROM propagation_outbox
WHERE ($1::text IS NULL OR state = $1)
ORDER BY created_at DESC
LIMIT $2`
)

type AssignmentReadStore struct {
	db db.DBTX
}

func NewAssignmentReadStore(db db.DBTX) *AssignmentReadStore {
	return &AssignmentReadStore{db: db}
}

func (r *AssignmentReadStore) ExistsForRequest(ctx context.Context, requestID int64) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, assignmentExists, requestID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check assignment", err)
	}
	return exists, nil
}

// ClaimedRequestIDs returns the subset of ids that already have an assignment in any status.
func (r *AssignmentReadStore) ClaimedRequestIDs(ctx context.Context, ids []int64) (map[int64]struct{}, error) {
	claimed := make(map[int64]struct{})
	if len(ids) == 0 {
		return claimed, nil
	}
	rows, err := r.db.Query(ctx, claimedRequestIDs, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load claimed requests", err)
	}
	defer rows.Close()
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan claimed request", err)
		}
		claimed[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate claimed requests", err)
	}
	return claimed, nil
}

func (r *AssignmentReadStore) ListByDealer(ctx context.Context, dealerID int64, status *assignment.Status) ([]*assignment.Assignment, error) {
	var s *string
	if status != nil {
		v := status.String()
		s = &v
	}
	return r.listAssignments(ctx, listAssignmentsByDealer, dealerID, s)
}

func (r *AssignmentReadStore) ListAll(ctx context.Context, limit int) ([]*assignment.Assignment, error) {
	return r.listAssignments(ctx, listAllAssignments, limit)
}

func (r *AssignmentReadStore) CountsByStatus(ctx context.Context, dealerID int64) (map[assignment.Status]int64, error) {
	rows, err := r.db.Query(ctx, countAssignmentsByStatus, dealerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count assignments", err)
	}
	defer rows.Close()

	counts := map[assignment.Status]int64{
		assignment.StatusAccepted:   0,
		assignment.StatusInProgress: 0,
		assignment.StatusCompleted:  0,
	}
	for rows.Next() {
		var (
			status string
			n      int64
		)
		if err := rows.Scan(&status, &n); err != nil {
			return nil, infra.WrapRepoErr("failed to scan assignment count", err)
		}
		counts[assignment.Status(status)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate assignment counts", err)
	}
	return counts, nil
}

func (r *AssignmentReadStore) Profile(ctx context.Context, dealerID int64) (*assignment.DealerProfile, error) {
	row, err := converter.ScanDealerProfile(r.db.QueryRow(ctx, getDealerProfile, dealerID))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to get dealer profile", err)
	}
	p, err := row.ToDomain()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode dealer profile", err, infra.KindDBFailure)
	}
	return &p, nil
}

func (r *AssignmentReadStore) ListDealers(ctx context.Context, limit int) ([]assignment.DealerProfile, error) {
	rows, err := r.db.Query(ctx, listDealerProfiles, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list dealers", err)
	}
	defer rows.Close()

	items := make([]assignment.DealerProfile, 0)
	for rows.Next() {
		row, err := converter.ScanDealerProfile(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan dealer profile", err)
		}
		p, err := row.ToDomain()
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode dealer profile", err, infra.KindDBFailure)
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate dealers", err)
	}
	return items, nil
}

// Transactions lists the dealer's transactions newest first. A limit of
// zero or less returns all of them.
func (r *AssignmentReadStore) Transactions(ctx context.Context, dealerID int64, limit int) ([]assignment.Transaction, error) {
	var lim *int
	if limit > 0 {
		lim = &limit
	}
	rows, err := r.db.Query(ctx, listDealerTransactions, dealerID, lim)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list transactions", err)
	}
	defer rows.Close()

	items := make([]assignment.Transaction, 0)
	for rows.Next() {
		row, err := converter.ScanTransaction(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan transaction", err)
		}
		t, err := row.ToDomain()
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode transaction", err, infra.KindDBFailure)
		}
		items = append(items, t)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate transactions", err)
	}
	return items, nil
}

func (r *AssignmentReadStore) ListOutbox(ctx context.Context, state *propagation.State, limit int) ([]*propagation.Entry, error) {
	var s *string
	if state != nil {
		v := string(*state)
		s = &v
	}
	rows, err := r.db.Query(ctx, listOutbox, s, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list propagations", err)
	}
	defer rows.Close()

	items := make([]*propagation.Entry, 0)
	for rows.Next() {
		row, err := converter.ScanOutbox(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan propagation", err)
		}
		items = append(items, row.ToDomain())
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate propagations", err)
	}
	return items, nil
}

func (r *AssignmentReadStore) listAssignments(ctx context.Context, query string, args ...any) ([]*assignment.Assignment, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list assignments", err)
	}
	defer rows.Close()

	items := make([]*assignment.Assignment, 0)
	for rows.Next() {
		row, err := converter.ScanAssignment(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan assignment", err)
		}
		a, err := row.ToDomain()
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode assignment", err, infra.KindDBFailure)
		}
		items = append(items, a)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate assignments", err)
	}
	return items, nil
}
