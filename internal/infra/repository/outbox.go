package repository

import (
	"context"
	"time"

	"scrap-market/internal/domain/propagation"
	"scrap-market/internal/infra"
	"scrap-market/internal/infra/db"
	"scrap-market/internal/infra/repository/converter"
	"scrap-market/internal/pkg/pgconv"

	"github.com/google/uuid"
)

// An entry is only deliverable while no older entry for the same request
// is still pending, so the Ledger sees a request's updates in the order
// they were written.
const (
	enqueueOutbox = `
INSERT INTO propagation_outbox (id, request_id, status, dealer_id, attempts, next_attempt_at, state, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	headOfRequest = `
NOT EXISTS (
	SELECT 1 FROM propagation_outbox older
	WHERE older.request_id = o.request_id AND older.state = 'pending' AND older.seq < o.seq
)`

	listDueOutbox = `
SELECT o.id
FROM propagation_outbox o
WHERE o.state = 'pending' AND o.next_attempt_at <= $1 AND ` + headOfRequest + `
ORDER BY o.next_attempt_at ASC, o.seq ASC
LIMIT $2`

	claimOutboxByID = `
SELECT ` + converter.OutboxColumns + `
FROM propagation_outbox o
WHERE o.id = $1 AND o.state = 'pending' AND o.next_attempt_at <= $2 AND ` + headOfRequest + `
FOR UPDATE SKIP LOCKED`

	saveOutbox = `
UPDATE propagation_outbox
SET attempts = $2, next_attempt_at = $3, last_error = $4, state = $5, updated_at = $6, delivered_at = $7
WHERE id = $1`
)

type OutboxRepository struct {
	db db.DBTX
}

func NewOutboxRepository(db db.DBTX) *OutboxRepository {
	return &OutboxRepository{db: db}
}

func (r *OutboxRepository) Enqueue(ctx context.Context, e *propagation.Entry) error {
	_, err := r.db.Exec(ctx, enqueueOutbox,
		e.ID, e.RequestID, e.Status, e.DealerID, e.Attempts, e.NextAttemptAt, string(e.State), e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to enqueue propagation", err)
	}
	return nil
}

func (r *OutboxRepository) DueIDs(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, listDueOutbox, now, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list due propagations", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan propagation id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate propagations", err)
	}
	return ids, nil
}

func (r *OutboxRepository) ClaimByID(ctx context.Context, id uuid.UUID, now time.Time) (*propagation.Entry, error) {
	row, err := converter.ScanOutbox(r.db.QueryRow(ctx, claimOutboxByID, id, now))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to claim propagation", err)
	}
	return row.ToDomain(), nil
}

func (r *OutboxRepository) Save(ctx context.Context, e *propagation.Entry) error {
	_, err := r.db.Exec(ctx, saveOutbox,
		e.ID, e.Attempts, e.NextAttemptAt, e.LastError, string(e.State), e.UpdatedAt, pgconv.TimePtrToPgtype(e.DeliveredAt),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save propagation", err)
	}
	return nil
}
