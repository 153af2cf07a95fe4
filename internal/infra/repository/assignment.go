package repository

import (
	"context"
	"time"

	"scrap-market/internal/domain/assignment"
	"scrap-market/internal/infra"
	"scrap-market/internal/infra/db"
	"scrap-market/internal/infra/repository/converter"
	"scrap-market/internal/pkg/pgconv"

	"github.com/shopspring/decimal"
)

const (
	createAssignment = `
INSERT INTO request_assignments (request_id, dealer_id, user_id, status, notes, assigned_at, accepted_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`

	findAssignmentForUpdate = `
SELECT ` + converter.AssignmentColumns + `
FROM request_assignments
WHERE request_id = $1 AND dealer_id = $2
FOR UPDATE`

	saveAssignment = `
UPDATE request_assignments
SET status = $2, actual_weight = $3, actual_price = $4, notes = $5, completed_at = $6
WHERE id = $1`

	ensureDealerProfile = `
INSERT INTO dealer_profiles (dealer_id, created_at, updated_at)
VALUES ($1, $2, $2)
ON CONFLICT (dealer_id) DO NOTHING`

	recordDealerCompletion = `
INSERT INTO dealer_profiles (dealer_id, total_pickups, total_earnings, created_at, updated_at)
VALUES ($1, 1, $2, $3, $3)
ON CONFLICT (dealer_id) DO UPDATE
SET total_pickups  = dealer_profiles.total_pickups + 1,
    total_earnings = dealer_profiles.total_earnings + EXCLUDED.total_earnings,
    updated_at     = EXCLUDED.updated_at`

	createTransaction = `
INSERT INTO transactions (request_id, user_id, dealer_id, amount, transaction_type, status, created_at, completed_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id`
)

type AssignmentRepository struct {
	db db.DBTX
}

func NewAssignmentRepository(db db.DBTX) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// Create relies on the unique request_id index; a second claim for the same
// request surfaces as KindDuplicateKey.
func (r *AssignmentRepository) Create(ctx context.Context, a *assignment.Assignment) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, createAssignment,
		a.RequestID, a.DealerID, a.UserID, a.Status.String(), a.Notes, a.AssignedAt, pgconv.TimePtrToPgtype(a.AcceptedAt),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create assignment", err)
	}
	return id, nil
}

func (r *AssignmentRepository) FindForUpdate(ctx context.Context, requestID, dealerID int64) (*assignment.Assignment, error) {
	row, err := converter.ScanAssignment(r.db.QueryRow(ctx, findAssignmentForUpdate, requestID, dealerID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock assignment", err)
	}
	a, err := row.ToDomain()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode assignment", err, infra.KindDBFailure)
	}
	return a, nil
}

func (r *AssignmentRepository) Save(ctx context.Context, a *assignment.Assignment) error {
	_, err := r.db.Exec(ctx, saveAssignment,
		a.ID, a.Status.String(), pgconv.DecimalPtrToNumeric(a.ActualWeight), pgconv.DecimalPtrToNumeric(a.ActualPrice),
		a.Notes, pgconv.TimePtrToPgtype(a.CompletedAt),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save assignment", err)
	}
	return nil
}

type DealerProfileRepository struct {
	db db.DBTX
}

func NewDealerProfileRepository(db db.DBTX) *DealerProfileRepository {
	return &DealerProfileRepository{db: db}
}

func (r *DealerProfileRepository) Ensure(ctx context.Context, dealerID int64, now time.Time) error {
	if _, err := r.db.Exec(ctx, ensureDealerProfile, dealerID, now); err != nil {
		return infra.WrapRepoErr("failed to ensure dealer profile", err)
	}
	return nil
}

// RecordCompletion adds one pickup and amount to the dealer's totals,
// creating the profile if the claim never did.
func (r *DealerProfileRepository) RecordCompletion(ctx context.Context, dealerID int64, amount decimal.Decimal, now time.Time) error {
	if _, err := r.db.Exec(ctx, recordDealerCompletion, dealerID, pgconv.DecimalToNumeric(amount), now); err != nil {
		return infra.WrapRepoErr("failed to record dealer completion", err)
	}
	return nil
}

type TransactionRepository struct {
	db db.DBTX
}

func NewTransactionRepository(db db.DBTX) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Create(ctx context.Context, t *assignment.Transaction) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, createTransaction,
		t.RequestID, t.UserID, t.DealerID, pgconv.DecimalToNumeric(t.Amount), t.Type, t.Status,
		t.CreatedAt, pgconv.TimePtrToPgtype(t.CompletedAt),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create transaction", err)
	}
	return id, nil
}
