package repository

import (
	"context"

	"scrap-market/internal/domain/request"
	"scrap-market/internal/infra"
	"scrap-market/internal/infra/db"
	"scrap-market/internal/infra/repository/converter"
	"scrap-market/internal/pkg/pgconv"
)

const (
	createRequest = `
INSERT INTO scrap_requests (user_id, category_id, quantity, estimated_price, pickup_address, pickup_date,
	notes, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id`

	findRequestForUpdate = `SELECT ` + converter.RequestColumns + ` FROM scrap_requests WHERE id = $1 FOR UPDATE`

	updateRequestStatus = `
UPDATE scrap_requests
SET status = $2, assigned_dealer_id = $3, updated_at = $4
WHERE id = $1`

	appendHistory = `
INSERT INTO request_history (request_id, status, changed_by, notes, created_at)
VALUES ($1, $2, $3, $4, $5)`
)

type RequestRepository struct {
	db db.DBTX
}

func NewRequestRepository(db db.DBTX) *RequestRepository {
	return &RequestRepository{db: db}
}

func (r *RequestRepository) Create(ctx context.Context, req *request.Request) (int64, error) {
	s := req.Snapshot()
	var id int64
	err := r.db.QueryRow(ctx, createRequest,
		s.OwnerID, s.CategoryID, pgconv.DecimalToNumeric(s.Quantity), pgconv.DecimalPtrToNumeric(s.EstimatedPrice),
		s.PickupAddress, pgconv.TimePtrToPgtype(s.PickupDate), s.Notes, s.Status.String(), s.CreatedAt, s.UpdatedAt,
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create request", err)
	}
	return id, nil
}

func (r *RequestRepository) FindForUpdate(ctx context.Context, id int64) (*request.Request, error) {
	row, err := converter.ScanRequest(r.db.QueryRow(ctx, findRequestForUpdate, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock request", err)
	}
	req, err := row.ToDomain()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode request", err, infra.KindDBFailure)
	}
	return req, nil
}

func (r *RequestRepository) UpdateStatus(ctx context.Context, req *request.Request) error {
	s := req.Snapshot()
	tag, err := r.db.Exec(ctx, updateRequestStatus,
		s.ID, s.Status.String(), pgconv.Int64PtrToPgtype(s.AssignedDealerID), s.UpdatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update request status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("request not found", nil, infra.KindNotFound)
	}
	return nil
}

type HistoryRepository struct {
	db db.DBTX
}

func NewHistoryRepository(db db.DBTX) *HistoryRepository {
	return &HistoryRepository{db: db}
}

func (r *HistoryRepository) Append(ctx context.Context, e request.HistoryEntry) error {
	_, err := r.db.Exec(ctx, appendHistory, e.RequestID, e.Status.String(), e.ActorID, e.Note, e.CreatedAt)
	if err != nil {
		return infra.WrapRepoErr("failed to append request history", err)
	}
	return nil
}
