package request

import (
	"strings"
	"time"

	"scrap-market/internal/pkg/errs"
	"scrap-market/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

// pickupDateLayouts are tried in order; clients send either a full
// timestamp or a bare date.
var pickupDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

type CreateRequestRequest struct {
	CategoryID    int64           `json:"category_id" binding:"required,gt=0"`
	Quantity      decimal.Decimal `json:"quantity"`
	PickupAddress string          `json:"pickup_address" binding:"required"`
	PickupDate    string          `json:"pickup_date"`
	Notes         string          `json:"notes"`
	Location      string          `json:"location"`
}

func (r *CreateRequestRequest) ToInput() (commands.CreateRequestInput, error) {
	in := commands.CreateRequestInput{
		CategoryID:    r.CategoryID,
		Quantity:      r.Quantity,
		PickupAddress: r.PickupAddress,
		Notes:         r.Notes,
		Location:      r.Location,
	}

	if s := strings.TrimSpace(r.PickupDate); s != "" {
		pickup, err := parsePickupDate(s)
		if err != nil {
			return commands.CreateRequestInput{}, err
		}
		in.PickupDate = &pickup
	}
	return in, nil
}

func parsePickupDate(s string) (time.Time, error) {
	for _, layout := range pickupDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, errs.Wrapf(errs.ErrInvalidArgument, "pickup_date %q is not an ISO-8601 date", s)
}

type UpdateStatusRequest struct {
	Status           string `json:"status" binding:"required"`
	AssignedDealerID *int64 `json:"assigned_dealer_id"`
	Notes            string `json:"notes"`
}

func (r *UpdateStatusRequest) ToInput() commands.UpdateStatusInput {
	return commands.UpdateStatusInput{
		Status:           r.Status,
		AssignedDealerID: r.AssignedDealerID,
		Notes:            r.Notes,
	}
}
