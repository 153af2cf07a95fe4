package shared

//go:generate mockgen -source=uow.go -destination=../../testutil/mock/shared/uow_mock.go -package=sharedmock

import (
	"context"
	"time"

	"scrap-market/internal/domain/assignment"
	"scrap-market/internal/domain/propagation"
	"scrap-market/internal/domain/request"
	"scrap-market/internal/domain/user"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx hands out repositories bound to the running transaction. Each service
// only touches the repositories whose tables live in its own database.
type Tx interface {
	Users() UserRepository
	Requests() RequestRepository
	History() HistoryRepository
	Assignments() AssignmentRepository
	DealerProfiles() DealerProfileRepository
	Transactions() TransactionRepository
	Outbox() OutboxRepository
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (int64, error)
}

type RequestRepository interface {
	Create(ctx context.Context, r *request.Request) (int64, error)
	// FindForUpdate locks the row until the transaction ends.
	FindForUpdate(ctx context.Context, id int64) (*request.Request, error)
	UpdateStatus(ctx context.Context, r *request.Request) error
}

type HistoryRepository interface {
	Append(ctx context.Context, entry request.HistoryEntry) error
}

type AssignmentRepository interface {
	// Create fails with a duplicate-key repository error when the request
	// already has an assignment.
	Create(ctx context.Context, a *assignment.Assignment) (int64, error)
	FindForUpdate(ctx context.Context, requestID, dealerID int64) (*assignment.Assignment, error)
	Save(ctx context.Context, a *assignment.Assignment) error
}

type DealerProfileRepository interface {
	Ensure(ctx context.Context, dealerID int64, now time.Time) error
	RecordCompletion(ctx context.Context, dealerID int64, amount decimal.Decimal, now time.Time) error
}

type TransactionRepository interface {
	Create(ctx context.Context, t *assignment.Transaction) (int64, error)
}

type OutboxRepository interface {
	Enqueue(ctx context.Context, e *propagation.Entry) error
	// DueIDs lists up to limit due pending entries that are first in line
	// for their request. Nothing is locked.
	DueIDs(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error)
	// ClaimByID locks a single entry that is pending, due and first in line
	// for its request; nil otherwise or when another worker holds it.
	ClaimByID(ctx context.Context, id uuid.UUID, now time.Time) (*propagation.Entry, error)
	Save(ctx context.Context, e *propagation.Entry) error
}
