package request

import "errors"

type Status string

const (
	StatusPending    Status = "pending"
	StatusAccepted   Status = "accepted"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

var ErrInvalidStatus = errors.New("invalid status")

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	_, ok := transitions[s]
	return ok
}

func (s Status) IsTerminal() bool {
	return s.IsValid() && len(transitions[s]) == 0
}

func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

var transitions = map[Status][]Status{
	StatusPending:    {StatusAccepted, StatusCancelled},
	StatusAccepted:   {StatusInProgress, StatusCompleted, StatusCancelled},
	StatusInProgress: {StatusCompleted, StatusCancelled},
	StatusCompleted:  {},
	StatusCancelled:  {},
}

// Transitions returns a copy of the legal forward moves.
func Transitions() map[Status][]Status {
	out := make(map[Status][]Status, len(transitions))
	for from, tos := range transitions {
		out[from] = append([]Status(nil), tos...)
	}
	return out
}

func CanTransition(from, to Status) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Policy decides whether a status change is accepted. The permissive
// policy accepts any valid status; the strict one enforces the table.
// Re-applying the current status is accepted by both.
type Policy struct {
	Strict bool
}

var ErrIllegalTransition = errors.New("illegal status transition")

func (p Policy) Check(from, to Status) error {
	if !to.IsValid() {
		return ErrInvalidStatus
	}
	if from == to || !p.Strict {
		return nil
	}
	if !CanTransition(from, to) {
		return ErrIllegalTransition
	}
	return nil
}
