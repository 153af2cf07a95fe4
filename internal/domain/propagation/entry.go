// Package propagation models the outbox of status updates the Coordinator
// owes the Ledger, and the retry policy applied to them.
package propagation

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
)

type State string

const (
	StatePending   State = "pending"
	StateDelivered State = "delivered"
	StateDead      State = "dead"
)

var ErrInvalidState = errors.New("invalid propagation state")

func ParseState(s string) (State, error) {
	switch State(s) {
	case StatePending, StateDelivered, StateDead:
		return State(s), nil
	default:
		return "", ErrInvalidState
	}
}

const (
	initialBackoff = time.Second
	maxBackoff     = 10 * time.Minute
)

// Entry is one status update to push to the Ledger. It carries no
// credential; whoever pushes it supplies one.
type Entry struct {
	ID            uuid.UUID
	RequestID     int64
	Status        string
	DealerID      int64
	Attempts      int
	NextAttemptAt time.Time
	LastError     string
	State         State
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeliveredAt   *time.Time
}

func NewEntry(requestID int64, status string, dealerID int64, now time.Time) *Entry {
	return &Entry{
		ID:            uuid.New(),
		RequestID:     requestID,
		Status:        status,
		DealerID:      dealerID,
		NextAttemptAt: now,
		State:         StatePending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Outcome classifies a delivery attempt.
type Outcome int

const (
	OutcomeDelivered Outcome = iota
	// OutcomeStop means retrying cannot help (4xx from the Ledger).
	OutcomeStop
	// OutcomeRetry covers timeouts, transport errors and 5xx.
	OutcomeRetry
)

// Classify maps the Ledger's response status. Zero means no response.
func Classify(statusCode int) Outcome {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return OutcomeDelivered
	case statusCode == http.StatusTooManyRequests || statusCode == http.StatusRequestTimeout:
		return OutcomeRetry
	case statusCode >= 400 && statusCode < 500:
		return OutcomeStop
	default:
		return OutcomeRetry
	}
}

// Backoff doubles from one second up to ten minutes.
func Backoff(attempts int) time.Duration {
	delay := initialBackoff
	for i := 1; i < attempts; i++ {
		delay *= 2
		if delay > maxBackoff {
			return maxBackoff
		}
	}
	return delay
}

func (e *Entry) MarkDelivered(now time.Time) {
	e.Attempts++
	e.State = StateDelivered
	e.LastError = ""
	e.DeliveredAt = &now
	e.UpdatedAt = now
}

// MarkFailed records a failed attempt and either schedules the next one
// or parks the entry as dead.
func (e *Entry) MarkFailed(outcome Outcome, reason string, maxAttempts int, now time.Time) {
	e.Attempts++
	e.LastError = reason
	e.UpdatedAt = now
	if outcome == OutcomeStop || e.Attempts >= maxAttempts {
		e.State = StateDead
		return
	}
	e.NextAttemptAt = now.Add(Backoff(e.Attempts))
}
