package response

import (
	"encoding/json"
	"time"

	"scrap-market/internal/domain/request"
	"scrap-market/internal/usecase/queries"
	"scrap-market/internal/usecase/shared"
)

type CreateRequestResponse struct {
	Message        string       `json:"message"`
	RequestID      int64        `json:"request_id"`
	EstimatedPrice *json.Number `json:"estimated_price"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type RequestResponse struct {
	ID               int64        `json:"id"`
	UserID           int64        `json:"user_id"`
	CategoryID       int64        `json:"category_id"`
	Quantity         json.Number  `json:"quantity"`
	EstimatedPrice   *json.Number `json:"estimated_price"`
	PickupAddress    string       `json:"pickup_address"`
	PickupDate       *time.Time   `json:"pickup_date"`
	Status           string       `json:"status"`
	Notes            string       `json:"notes"`
	AssignedDealerID *int64       `json:"assigned_dealer_id"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}

type RequestListResponse struct {
	Requests []RequestResponse `json:"requests"`
}

type HistoryResponse struct {
	History []*queries.HistoryView `json:"history"`
}

func FromRequestView(v *queries.RequestView) (RequestResponse, error) {
	return copyOne[RequestResponse](v)
}

func FromRequestViews(vs []*queries.RequestView) (RequestListResponse, error) {
	list, err := copyList[RequestResponse](vs, len(vs))
	if err != nil {
		return RequestListResponse{}, err
	}
	return RequestListResponse{Requests: list}, nil
}

func FromHistoryViews(vs []*queries.HistoryView) HistoryResponse {
	if vs == nil {
		vs = []*queries.HistoryView{}
	}
	return HistoryResponse{History: vs}
}

// AvailableRequestResponse is a Ledger request as dealers see it.
type AvailableRequestResponse struct {
	ID               int64        `json:"id"`
	UserID           int64        `json:"user_id"`
	CategoryID       int64        `json:"category_id"`
	Quantity         json.Number  `json:"quantity"`
	EstimatedPrice   *json.Number `json:"estimated_price"`
	PickupAddress    string       `json:"pickup_address"`
	PickupDate       *time.Time   `json:"pickup_date"`
	Status           string       `json:"status"`
	Notes            string       `json:"notes"`
	AssignedDealerID *int64       `json:"assigned_dealer_id"`
	CreatedAt        time.Time    `json:"created_at"`
}

type AvailableRequestListResponse struct {
	Requests []AvailableRequestResponse `json:"requests"`
}

func FromLedgerRequests(rs []shared.LedgerRequest) (AvailableRequestListResponse, error) {
	list, err := copyList[AvailableRequestResponse](rs, len(rs))
	if err != nil {
		return AvailableRequestListResponse{}, err
	}
	return AvailableRequestListResponse{Requests: list}, nil
}

func FromCreatedRequest(r *request.Request) CreateRequestResponse {
	resp := CreateRequestResponse{
		Message:   "Request created successfully",
		RequestID: r.ID(),
	}
	if price := r.EstimatedPrice(); price != nil {
		n := Amount(*price)
		resp.EstimatedPrice = &n
	}
	return resp
}
