package queries

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaxListLimit caps admin listings that have no natural bound.
const MaxListLimit = 200

// RequestView represents read-optimized request data
type RequestView struct {
	ID               int64            `json:"id"`
	UserID           int64            `json:"user_id"`
	CategoryID       int64            `json:"category_id"`
	Quantity         decimal.Decimal  `json:"quantity"`
	EstimatedPrice   *decimal.Decimal `json:"estimated_price"`
	PickupAddress    string           `json:"pickup_address"`
	PickupDate       *time.Time       `json:"pickup_date"`
	Status           string           `json:"status"`
	Notes            string           `json:"notes"`
	AssignedDealerID *int64           `json:"assigned_dealer_id"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// HistoryView is one entry of a request's audit trail
type HistoryView struct {
	ID        int64     `json:"id"`
	RequestID int64     `json:"request_id"`
	Status    string    `json:"status"`
	ChangedBy int64     `json:"changed_by"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

// VerifiedUser is the body of a successful verify call
type VerifiedUser struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	FullName string `json:"full_name"`
}
