package response

import (
	"encoding/json"
	"time"

	"scrap-market/internal/domain/assignment"
	"scrap-market/internal/domain/propagation"
)

type ClaimResponse struct {
	Message      string `json:"message"`
	AssignmentID int64  `json:"assignment_id"`
}

type AssignmentResponse struct {
	ID           int64        `json:"id"`
	RequestID    int64        `json:"request_id"`
	DealerID     int64        `json:"dealer_id"`
	UserID       int64        `json:"user_id"`
	Status       string       `json:"status"`
	ActualWeight *json.Number `json:"actual_weight"`
	ActualPrice  *json.Number `json:"actual_price"`
	Notes        string       `json:"notes"`
	AssignedAt   time.Time    `json:"assigned_at"`
	AcceptedAt   *time.Time   `json:"accepted_at"`
	CompletedAt  *time.Time   `json:"completed_at"`
}

type AssignmentListResponse struct {
	Assignments []AssignmentResponse `json:"assignments"`
}

// MyRequestsResponse keeps the "requests" key dealers' clients read.
type MyRequestsResponse struct {
	Requests []AssignmentResponse `json:"requests"`
}

func FromAssignments(as []*assignment.Assignment) ([]AssignmentResponse, error) {
	return copyList[AssignmentResponse](as, len(as))
}

type TransactionResponse struct {
	ID          int64       `json:"id"`
	RequestID   int64       `json:"request_id"`
	UserID      int64       `json:"user_id"`
	Amount      json.Number `json:"amount"`
	Type        string      `json:"transaction_type"`
	Status      string      `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
	CompletedAt *time.Time  `json:"completed_at"`
}

type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

func FromTransactions(ts []assignment.Transaction) (TransactionListResponse, error) {
	list, err := copyList[TransactionResponse](ts, len(ts))
	if err != nil {
		return TransactionListResponse{}, err
	}
	return TransactionListResponse{Transactions: list}, nil
}

type DashboardStats struct {
	TotalRequests      int64       `json:"total_requests"`
	AcceptedRequests   int64       `json:"accepted_requests"`
	InProgressRequests int64       `json:"in_progress_requests"`
	CompletedRequests  int64       `json:"completed_requests"`
	TotalEarnings      json.Number `json:"total_earnings"`
	Rating             json.Number `json:"rating"`
	TotalPickups       int64       `json:"total_pickups"`
}

type DashboardResponse struct {
	Stats              DashboardStats        `json:"stats"`
	RecentTransactions []TransactionResponse `json:"recent_transactions"`
}

func FromDashboard(d *assignment.Dashboard) (DashboardResponse, error) {
	recent, err := copyList[TransactionResponse](d.RecentTransactions, len(d.RecentTransactions))
	if err != nil {
		return DashboardResponse{}, err
	}

	var total int64
	for _, n := range d.CountsByStatus {
		total += n
	}

	return DashboardResponse{
		Stats: DashboardStats{
			TotalRequests:      total,
			AcceptedRequests:   d.CountsByStatus[assignment.StatusAccepted],
			InProgressRequests: d.CountsByStatus[assignment.StatusInProgress],
			CompletedRequests:  d.CountsByStatus[assignment.StatusCompleted],
			TotalEarnings:      Amount(d.Profile.TotalEarnings),
			Rating:             Amount(d.Profile.Rating),
			TotalPickups:       d.Profile.TotalPickups,
		},
		RecentTransactions: recent,
	}, nil
}

type DealerResponse struct {
	DealerID      int64       `json:"dealer_id"`
	TotalPickups  int64       `json:"total_pickups"`
	TotalEarnings json.Number `json:"total_earnings"`
	Rating        json.Number `json:"rating"`
	IsActive      bool        `json:"is_active"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

type DealerListResponse struct {
	Dealers []DealerResponse `json:"dealers"`
}

func FromDealerProfiles(ps []assignment.DealerProfile) (DealerListResponse, error) {
	list, err := copyList[DealerResponse](ps, len(ps))
	if err != nil {
		return DealerListResponse{}, err
	}
	return DealerListResponse{Dealers: list}, nil
}

type PropagationEntryResponse struct {
	ID            string     `json:"id"`
	RequestID     int64      `json:"request_id"`
	Status        string     `json:"status"`
	DealerID      int64      `json:"dealer_id"`
	Attempts      int        `json:"attempts"`
	NextAttemptAt time.Time  `json:"next_attempt_at"`
	LastError     string     `json:"last_error"`
	State         string     `json:"state"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	DeliveredAt   *time.Time `json:"delivered_at"`
}

type PropagationListResponse struct {
	Entries []PropagationEntryResponse `json:"entries"`
}

func FromPropagationEntries(es []*propagation.Entry) (PropagationListResponse, error) {
	list, err := copyList[PropagationEntryResponse](es, len(es))
	if err != nil {
		return PropagationListResponse{}, err
	}
	return PropagationListResponse{Entries: list}, nil
}
