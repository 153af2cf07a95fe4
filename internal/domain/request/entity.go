package request

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"scrap-market/internal/domain/user"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrMissingAddress  = errors.New("pickup address is required")
	ErrInvalidCategory = errors.New("category id must be positive")
)

// Request is a pickup request owned by the Request Ledger. AssignedDealerID
// is a weak reference the ledger records but never validates.
type Request struct {
	id               int64
	ownerID          int64
	categoryID       int64
	quantity         decimal.Decimal
	estimatedPrice   *decimal.Decimal
	pickupAddress    string
	pickupDate       *time.Time
	notes            string
	status           Status
	assignedDealerID *int64
	createdAt        time.Time
	updatedAt        time.Time
}

type NewParams struct {
	OwnerID        int64
	CategoryID     int64
	Quantity       decimal.Decimal
	EstimatedPrice *decimal.Decimal
	PickupAddress  string
	PickupDate     *time.Time
	Notes          string
}

// New always starts a request in pending; a missing price estimate is fine.
func New(p NewParams, now time.Time) (*Request, error) {
	if p.CategoryID <= 0 {
		return nil, ErrInvalidCategory
	}
	if !p.Quantity.IsPositive() {
		return nil, ErrInvalidQuantity
	}
	address := strings.TrimSpace(p.PickupAddress)
	if address == "" {
		return nil, ErrMissingAddress
	}
	return &Request{
		ownerID:        p.OwnerID,
		categoryID:     p.CategoryID,
		quantity:       p.Quantity,
		estimatedPrice: p.EstimatedPrice,
		pickupAddress:  address,
		pickupDate:     p.PickupDate,
		notes:          p.Notes,
		status:         StatusPending,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

type Snapshot struct {
	ID               int64
	OwnerID          int64
	CategoryID       int64
	Quantity         decimal.Decimal
	EstimatedPrice   *decimal.Decimal
	PickupAddress    string
	PickupDate       *time.Time
	Notes            string
	Status           Status
	AssignedDealerID *int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func Reconstruct(s Snapshot) *Request {
	return &Request{
		id:               s.ID,
		ownerID:          s.OwnerID,
		categoryID:       s.CategoryID,
		quantity:         s.Quantity,
		estimatedPrice:   s.EstimatedPrice,
		pickupAddress:    s.PickupAddress,
		pickupDate:       s.PickupDate,
		notes:            s.Notes,
		status:           s.Status,
		assignedDealerID: s.AssignedDealerID,
		createdAt:        s.CreatedAt,
		updatedAt:        s.UpdatedAt,
	}
}

func (r *Request) Snapshot() Snapshot {
	return Snapshot{
		ID:               r.id,
		OwnerID:          r.ownerID,
		CategoryID:       r.categoryID,
		Quantity:         r.quantity,
		EstimatedPrice:   r.estimatedPrice,
		PickupAddress:    r.pickupAddress,
		PickupDate:       r.pickupDate,
		Notes:            r.notes,
		Status:           r.status,
		AssignedDealerID: r.assignedDealerID,
		CreatedAt:        r.createdAt,
		UpdatedAt:        r.updatedAt,
	}
}

func (r *Request) AssignID(id int64) { r.id = id }

// AttachEstimate records the quote obtained before the request is stored.
func (r *Request) AttachEstimate(price decimal.Decimal) {
	r.estimatedPrice = &price
}

func (r *Request) ID() int64                        { return r.id }
func (r *Request) OwnerID() int64                   { return r.ownerID }
func (r *Request) Status() Status                   { return r.status }
func (r *Request) AssignedDealerID() *int64         { return r.assignedDealerID }
func (r *Request) EstimatedPrice() *decimal.Decimal { return r.estimatedPrice }
func (r *Request) UpdatedAt() time.Time             { return r.updatedAt }

// CanView restricts reads to the owner and staff roles.
func CanView(ownerID, actorID int64, role user.Role) bool {
	return actorID == ownerID || role.IsStaff()
}

func (r *Request) VisibleTo(actorID int64, role user.Role) bool {
	return CanView(r.ownerID, actorID, role)
}

// CanUpdate has the same rule as VisibleTo.
func (r *Request) CanUpdate(actorID int64, role user.Role) bool {
	return r.VisibleTo(actorID, role)
}

type Change struct {
	To               Status
	ActorID          int64
	AssignedDealerID *int64
	Notes            string
}

// ChangeStatus applies the change under policy and returns the audit entry
// to append. A nil AssignedDealerID leaves the current value untouched.
// Change notes belong to the history entry; the owner's notes are not
// touched.
func (r *Request) ChangeStatus(c Change, policy Policy, now time.Time) (HistoryEntry, error) {
	from := r.status
	if err := policy.Check(from, c.To); err != nil {
		return HistoryEntry{}, err
	}

	r.status = c.To
	if c.AssignedDealerID != nil {
		r.assignedDealerID = c.AssignedDealerID
	}
	r.updatedAt = now

	note := c.Notes
	if note == "" {
		note = fmt.Sprintf("Status changed from %s to %s", from, c.To)
	}

	return HistoryEntry{
		RequestID: r.id,
		Status:    c.To,
		ActorID:   c.ActorID,
		Note:      note,
		CreatedAt: now,
	}, nil
}

// HistoryEntry is one append-only audit record.
type HistoryEntry struct {
	ID        int64
	RequestID int64
	Status    Status
	ActorID   int64
	Note      string
	CreatedAt time.Time
}

func CreatedEntry(r *Request) HistoryEntry {
	return HistoryEntry{
		RequestID: r.id,
		Status:    StatusPending,
		ActorID:   r.ownerID,
		Note:      "Request created",
		CreatedAt: r.createdAt,
	}
}
