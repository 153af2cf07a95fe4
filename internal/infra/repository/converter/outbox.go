package converter

import (
	"scrap-market/internal/domain/propagation"
	"scrap-market/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const OutboxColumns = `id, request_id, status, dealer_id, attempts, next_attempt_at, last_error, state,
	created_at, updated_at, delivered_at`

type OutboxRow struct {
	ID            uuid.UUID
	RequestID     int64
	Status        string
	DealerID      int64
	Attempts      int32
	NextAttemptAt pgtype.Timestamptz
	LastError     string
	State         string
	CreatedAt     pgtype.Timestamptz
	UpdatedAt     pgtype.Timestamptz
	DeliveredAt   pgtype.Timestamptz
}

func ScanOutbox(row pgx.Row) (OutboxRow, error) {
	var r OutboxRow
	err := row.Scan(
		&r.ID, &r.RequestID, &r.Status, &r.DealerID, &r.Attempts, &r.NextAttemptAt, &r.LastError, &r.State,
		&r.CreatedAt, &r.UpdatedAt, &r.DeliveredAt,
	)
	return r, err
}

func (r OutboxRow) ToDomain() *propagation.Entry {
	return &propagation.Entry{
		ID:            r.ID,
		RequestID:     r.RequestID,
		Status:        r.Status,
		DealerID:      r.DealerID,
		Attempts:      int(r.Attempts),
		NextAttemptAt: r.NextAttemptAt.Time,
		LastError:     r.LastError,
		State:         propagation.State(r.State),
		CreatedAt:     r.CreatedAt.Time,
		UpdatedAt:     r.UpdatedAt.Time,
		DeliveredAt:   pgconv.TimePtrFromPgtype(r.DeliveredAt),
	}
}
