package readstore

import (
	"context"

	"scrap-market/internal/domain/request"
	"scrap-market/internal/infra"
	"scrap-market/internal/infra/db"
	"scrap-market/internal/infra/repository/converter"
	"scrap-market/internal/usecase/queries"
)

const (
	getRequestByID = `SELECT ` + converter.RequestColumns + ` FROM scrap_requests WHERE id = $1`

	listRequestsByOwner = `
SELECT ` + converter.RequestColumns + `
FROM scrap_requests
WHERE user_id = $1 AND ($2::text IS NULL OR status = $2)
ORDER BY created_at DESC, id DESC`

	listRequestsByStatus = `
SELECT ` + converter.RequestColumns + `
FROM scrap_requests
WHERE ($1::text IS NULL OR status = $1)
ORDER BY created_at DESC, id DESC`

	listRequestHistory = `
SELECT id, request_id, status, changed_by, notes, created_at
FROM request_history
WHERE request_id = $1
ORDER BY created_at ASC, id ASC`
)

type RequestReadStore struct {
	db db.DBTX
}

func NewRequestReadStore(db db.DBTX) *RequestReadStore {
	return &RequestReadStore{db: db}
}

func (r *RequestReadStore) FindByID(ctx context.Context, id int64) (*queries.RequestView, error) {
	row, err := converter.ScanRequest(r.db.QueryRow(ctx, getRequestByID, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get request by id", err)
	}
	return toRequestView(row)
}

func (r *RequestReadStore) ListByOwner(ctx context.Context, ownerID int64, status *request.Status) ([]*queries.RequestView, error) {
	return r.list(ctx, "failed to list requests by owner", listRequestsByOwner, ownerID, statusArg(status))
}

func (r *RequestReadStore) ListByStatus(ctx context.Context, status *request.Status) ([]*queries.RequestView, error) {
	return r.list(ctx, "failed to list requests by status", listRequestsByStatus, statusArg(status))
}

func (r *RequestReadStore) History(ctx context.Context, requestID int64) ([]*queries.HistoryView, error) {
	rows, err := r.db.Query(ctx, listRequestHistory, requestID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list request history", err)
	}
	defer rows.Close()

	items := make([]*queries.HistoryView, 0)
	for rows.Next() {
		var h queries.HistoryView
		if err := rows.Scan(&h.ID, &h.RequestID, &h.Status, &h.ChangedBy, &h.Notes, &h.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan request history", err)
		}
		items = append(items, &h)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate request history", err)
	}
	return items, nil
}

func (r *RequestReadStore) list(ctx context.Context, msg, query string, args ...any) ([]*queries.RequestView, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(msg, err)
	}
	defer rows.Close()

	items := make([]*queries.RequestView, 0)
	for rows.Next() {
		row, err := converter.ScanRequest(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(msg, err)
		}
		view, err := toRequestView(row)
		if err != nil {
			return nil, err
		}
		items = append(items, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(msg, err)
	}
	return items, nil
}

func toRequestView(row converter.RequestRow) (*queries.RequestView, error) {
	s, err := row.ToSnapshot()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode request", err, infra.KindDBFailure)
	}
	return &queries.RequestView{
		ID:               s.ID,
		UserID:           s.OwnerID,
		CategoryID:       s.CategoryID,
		Quantity:         s.Quantity,
		EstimatedPrice:   s.EstimatedPrice,
		PickupAddress:    s.PickupAddress,
		PickupDate:       s.PickupDate,
		Status:           s.Status.String(),
		Notes:            s.Notes,
		AssignedDealerID: s.AssignedDealerID,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}, nil
}

func statusArg(status *request.Status) *string {
	if status == nil {
		return nil
	}
	s := status.String()
	return &s
}
