package converter

import (
	"scrap-market/internal/domain/assignment"
	"scrap-market/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const AssignmentColumns = `id, request_id, dealer_id, user_id, status, actual_weight, actual_price, notes,
	assigned_at, accepted_at, completed_at`

type AssignmentRow struct {
	ID           int64
	RequestID    int64
	DealerID     int64
	UserID       int64
	Status       string
	ActualWeight pgtype.Numeric
	ActualPrice  pgtype.Numeric
	Notes        string
	AssignedAt   pgtype.Timestamptz
	AcceptedAt   pgtype.Timestamptz
	CompletedAt  pgtype.Timestamptz
}

func ScanAssignment(row pgx.Row) (AssignmentRow, error) {
	var r AssignmentRow
	err := row.Scan(
		&r.ID, &r.RequestID, &r.DealerID, &r.UserID, &r.Status, &r.ActualWeight, &r.ActualPrice, &r.Notes,
		&r.AssignedAt, &r.AcceptedAt, &r.CompletedAt,
	)
	return r, err
}

func (r AssignmentRow) ToDomain() (*assignment.Assignment, error) {
	status, err := assignment.ParseStatus(r.Status)
	if err != nil {
		return nil, err
	}
	weight, err := pgconv.DecimalPtrFromNumeric(r.ActualWeight)
	if err != nil {
		return nil, err
	}
	price, err := pgconv.DecimalPtrFromNumeric(r.ActualPrice)
	if err != nil {
		return nil, err
	}
	return &assignment.Assignment{
		ID:           r.ID,
		RequestID:    r.RequestID,
		DealerID:     r.DealerID,
		UserID:       r.UserID,
		Status:       status,
		ActualWeight: weight,
		ActualPrice:  price,
		Notes:        r.Notes,
		AssignedAt:   r.AssignedAt.Time,
		AcceptedAt:   pgconv.TimePtrFromPgtype(r.AcceptedAt),
		CompletedAt:  pgconv.TimePtrFromPgtype(r.CompletedAt),
	}, nil
}

const TransactionColumns = `id, request_id, user_id, dealer_id, amount, transaction_type, status, created_at, completed_at`

type TransactionRow struct {
	ID          int64
	RequestID   int64
	UserID      int64
	DealerID    int64
	Amount      pgtype.Numeric
	Type        string
	Status      string
	CreatedAt   pgtype.Timestamptz
	CompletedAt pgtype.Timestamptz
}

func ScanTransaction(row pgx.Row) (TransactionRow, error) {
	var r TransactionRow
	err := row.Scan(&r.ID, &r.RequestID, &r.UserID, &r.DealerID, &r.Amount, &r.Type, &r.Status, &r.CreatedAt, &r.CompletedAt)
	return r, err
}

func (r TransactionRow) ToDomain() (assignment.Transaction, error) {
	amount, err := pgconv.DecimalFromNumeric(r.Amount)
	if err != nil {
		return assignment.Transaction{}, err
	}
	return assignment.Transaction{
		ID:          r.ID,
		RequestID:   r.RequestID,
		UserID:      r.UserID,
		DealerID:    r.DealerID,
		Amount:      amount,
		Type:        r.Type,
		Status:      r.Status,
		CreatedAt:   r.CreatedAt.Time,
		CompletedAt: pgconv.TimePtrFromPgtype(r.CompletedAt),
	}, nil
}

const DealerProfileColumns = `dealer_id, total_pickups, total_earnings, rating, is_active, created_at, updated_at`

type DealerProfileRow struct {
	DealerID      int64
	TotalPickups  int64
	TotalEarnings pgtype.Numeric
	Rating        pgtype.Numeric
	IsActive      bool
	CreatedAt     pgtype.Timestamptz
	UpdatedAt     pgtype.Timestamptz
}

func ScanDealerProfile(row pgx.Row) (DealerProfileRow, error) {
	var r DealerProfileRow
	err := row.Scan(&r.DealerID, &r.TotalPickups, &r.TotalEarnings, &r.Rating, &r.IsActive, &r.CreatedAt, &r.UpdatedAt)
	return r, err
}

func (r DealerProfileRow) ToDomain() (assignment.DealerProfile, error) {
	earnings, err := pgconv.DecimalFromNumeric(r.TotalEarnings)
	if err != nil {
		return assignment.DealerProfile{}, err
	}
	rating, err := pgconv.DecimalFromNumeric(r.Rating)
	if err != nil {
		return assignment.DealerProfile{}, err
	}
	return assignment.DealerProfile{
		DealerID:      r.DealerID,
		TotalPickups:  r.TotalPickups,
		TotalEarnings: earnings,
		Rating:        rating,
		IsActive:      r.IsActive,
		CreatedAt:     r.CreatedAt.Time,
		UpdatedAt:     r.UpdatedAt.Time,
	}, nil
}
