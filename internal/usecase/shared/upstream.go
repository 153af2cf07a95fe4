package shared

//go:generate mockgen -source=upstream.go -destination=../../testutil/mock/shared/upstream_mock.go -package=sharedmock

import (
	"context"
	"time"

	"scrap-market/internal/domain/auth"

	"github.com/shopspring/decimal"
)

// Ports to the other services. Every call carries the caller's bearer token
// and is bounded by the upstream timeout; none of them retry.

// TokenValidator resolves a raw token into a verified subject. Failures are
// one of errs.ErrAuthMissing, ErrAuthExpired, ErrAuthInvalid or
// ErrUpstreamUnavailable.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (*auth.Subject, error)
}

// LedgerRequest is a request as the Request Ledger reports it.
type LedgerRequest struct {
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
}

type StatusUpdate struct {
	Status           string `json:"status"`
	AssignedDealerID *int64 `json:"assigned_dealer_id,omitempty"`
	Notes            string `json:"notes,omitempty"`
}

type LedgerGateway interface {
	// GetRequest fails with errs.ErrNotFound on 404 and
	// errs.ErrUpstreamUnavailable on anything else that is not 200.
	GetRequest(ctx context.Context, token string, id int64) (*LedgerRequest, error)
	ListAllByStatus(ctx context.Context, token, status string) ([]LedgerRequest, error)
	// UpdateStatus returns the HTTP status the Ledger answered with, or 0
	// when no response arrived.
	UpdateStatus(ctx context.Context, token string, id int64, update StatusUpdate) (int, error)
}

type PricingGateway interface {
	Estimate(ctx context.Context, token string, categoryID int64, quantity decimal.Decimal, location string) (decimal.Decimal, error)
}
