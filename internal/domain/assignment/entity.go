// Package assignment models dealer claims, completions and earnings.
package assignment

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusAccepted   Status = "accepted"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

func (s Status) String() string { return string(s) }

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusAccepted, StatusInProgress, StatusCompleted:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

var (
	ErrInvalidStatus    = errors.New("invalid assignment status")
	ErrAlreadyCompleted = errors.New("assignment already completed")
	ErrNegativeWeight   = errors.New("actual weight must not be negative")
	ErrNegativePrice    = errors.New("actual price must not be negative")
)

// Assignment is the Coordinator's claim on a request. RequestID is unique
// in the store and is a weak reference into the Ledger.
type Assignment struct {
	ID           int64
	RequestID    int64
	DealerID     int64
	UserID       int64
	Status       Status
	ActualWeight *decimal.Decimal
	ActualPrice  *decimal.Decimal
	Notes        string
	AssignedAt   time.Time
	AcceptedAt   *time.Time
	CompletedAt  *time.Time
}

func NewClaim(requestID, dealerID, userID int64, now time.Time) *Assignment {
	return &Assignment{
		RequestID:  requestID,
		DealerID:   dealerID,
		UserID:     userID,
		Status:     StatusAccepted,
		AssignedAt: now,
		AcceptedAt: &now,
	}
}

type Completion struct {
	ActualWeight decimal.Decimal
	ActualPrice  decimal.Decimal
	Notes        string
}

func (c Completion) Validate() error {
	if c.ActualWeight.IsNegative() {
		return ErrNegativeWeight
	}
	if c.ActualPrice.IsNegative() {
		return ErrNegativePrice
	}
	return nil
}

// Complete moves the assignment to completed exactly once.
func (a *Assignment) Complete(c Completion, now time.Time) error {
	if a.Status == StatusCompleted {
		return ErrAlreadyCompleted
	}
	if err := c.Validate(); err != nil {
		return err
	}
	weight, price := c.ActualWeight, c.ActualPrice
	a.Status = StatusCompleted
	a.ActualWeight = &weight
	a.ActualPrice = &price
	if c.Notes != "" {
		a.Notes = c.Notes
	}
	a.CompletedAt = &now
	return nil
}

type DealerProfile struct {
	DealerID      int64
	TotalPickups  int64
	TotalEarnings decimal.Decimal
	Rating        decimal.Decimal
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

const (
	TransactionTypePayment = "payment"
	TransactionCompleted   = "completed"
)

// Transaction is append-only, one per completed assignment.
type Transaction struct {
	ID          int64
	RequestID   int64
	UserID      int64
	DealerID    int64
	Amount      decimal.Decimal
	Type        string
	Status      string
	CreatedAt   time.Time
	CompletedAt *time.Time
}

func PaymentFor(a *Assignment) (*Transaction, error) {
	if a.Status != StatusCompleted || a.ActualPrice == nil {
		return nil, ErrInvalidStatus
	}
	return &Transaction{
		RequestID:   a.RequestID,
		UserID:      a.UserID,
		DealerID:    a.DealerID,
		Amount:      *a.ActualPrice,
		Type:        TransactionTypePayment,
		Status:      TransactionCompleted,
		CreatedAt:   *a.CompletedAt,
		CompletedAt: a.CompletedAt,
	}, nil
}

// Dashboard is the dealer's read-only summary.
type Dashboard struct {
	Profile            DealerProfile
	CountsByStatus     map[Status]int64
	RecentTransactions []Transaction
}
