package converter

import (
	"scrap-market/internal/domain/request"
	"scrap-market/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const RequestColumns = `id, user_id, category_id, quantity, estimated_price, pickup_address, pickup_date,
	notes, status, assigned_dealer_id, created_at, updated_at`

type RequestRow struct {
	ID               int64
	UserID           int64
	CategoryID       int64
	Quantity         pgtype.Numeric
	EstimatedPrice   pgtype.Numeric
	PickupAddress    string
	PickupDate       pgtype.Timestamptz
	Notes            string
	Status           string
	AssignedDealerID pgtype.Int8
	CreatedAt        pgtype.Timestamptz
	UpdatedAt        pgtype.Timestamptz
}

func ScanRequest(row pgx.Row) (RequestRow, error) {
	var r RequestRow
	err := row.Scan(
		&r.ID, &r.UserID, &r.CategoryID, &r.Quantity, &r.EstimatedPrice, &r.PickupAddress, &r.PickupDate,
		&r.Notes, &r.Status, &r.AssignedDealerID, &r.CreatedAt, &r.UpdatedAt,
	)
	return r, err
}

func (r RequestRow) ToSnapshot() (request.Snapshot, error) {
	quantity, err := pgconv.DecimalFromNumeric(r.Quantity)
	if err != nil {
		return request.Snapshot{}, err
	}
	estimate, err := pgconv.DecimalPtrFromNumeric(r.EstimatedPrice)
	if err != nil {
		return request.Snapshot{}, err
	}
	status, err := request.ParseStatus(r.Status)
	if err != nil {
		return request.Snapshot{}, err
	}
	return request.Snapshot{
		ID:               r.ID,
		OwnerID:          r.UserID,
		CategoryID:       r.CategoryID,
		Quantity:         quantity,
		EstimatedPrice:   estimate,
		PickupAddress:    r.PickupAddress,
		PickupDate:       pgconv.TimePtrFromPgtype(r.PickupDate),
		Notes:            r.Notes,
		Status:           status,
		AssignedDealerID: pgconv.Int64PtrFromPgtype(r.AssignedDealerID),
		CreatedAt:        r.CreatedAt.Time,
		UpdatedAt:        r.UpdatedAt.Time,
	}, nil
}

func (r RequestRow) ToDomain() (*request.Request, error) {
	s, err := r.ToSnapshot()
	if err != nil {
		return nil, err
	}
	return request.Reconstruct(s), nil
}
