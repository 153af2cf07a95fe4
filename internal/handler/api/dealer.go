package api

import (
	"net/http"

	reqdto "scrap-market/internal/handler/dto/request"
	resdto "scrap-market/internal/handler/dto/response"
	"scrap-market/internal/handler/httperr"
	"scrap-market/internal/handler/middleware"
	"scrap-market/internal/usecase/commands"
	"scrap-market/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DealerHandler struct {
	cmds commands.AssignmentCommands
	q    queries.DealerQueries
}

func NewDealerHandler(cmds commands.AssignmentCommands, q queries.DealerQueries) *DealerHandler {
	return &DealerHandler{cmds: cmds, q: q}
}

// @Summary Available requests
// @Description Pending Ledger requests no dealer has claimed yet
// @Tags dealers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.AvailableRequestListResponse
// @Failure 403 {object} httperr.Response
// @Router /dealers/available-requests [get]
func (h *DealerHandler) AvailableRequests(c *gin.Context) {
	requests, err := h.q.AvailableRequests(c.Request.Context(), middleware.GetToken(c))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromLedgerRequests(requests)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Accept request
// @Description Claim a pending request exclusively
// @Tags dealers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Success 201 {object} resdto.ClaimResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /dealers/requests/{id}/accept [post]
func (h *DealerHandler) Accept(c *gin.Context) {
	subject, ok := currentSubject(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	claimed, err := h.cmds.Claim(c.Request.Context(), subject, middleware.GetToken(c), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.ClaimResponse{
		Message:      "Request accepted successfully",
		AssignmentID: claimed.ID,
	})
}

// @Summary Complete request
// @Description Record the pickup, the payment and the dealer's earnings
// @Tags dealers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Param request body reqdto.CompleteRequest true "Completion"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /dealers/requests/{id}/complete [post]
func (h *DealerHandler) Complete(c *gin.Context) {
	subject, ok := currentSubject(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.CompleteRequest
	if !bindJSON(c, &req) {
		return
	}

	if _, err := h.cmds.Complete(c.Request.Context(), subject, middleware.GetToken(c), id, req.ToCompletion()); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Request completed successfully"})
}

// @Summary Dealer dashboard
// @Tags dealers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.DashboardResponse
// @Router /dealers/dashboard [get]
func (h *DealerHandler) Dashboard(c *gin.Context) {
	subject, ok := currentSubject(c)
	if !ok {
		return
	}

	dashboard, err := h.q.Dashboard(c.Request.Context(), subject.ID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromDashboard(dashboard)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Dealer transactions
// @Description All transactions, newest first
// @Tags dealers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.TransactionListResponse
// @Router /dealers/transactions [get]
func (h *DealerHandler) Transactions(c *gin.Context) {
	subject, ok := currentSubject(c)
	if !ok {
		return
	}

	txs, err := h.q.Transactions(c.Request.Context(), subject.ID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromTransactions(txs)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Dealer assignments
// @Description The dealer's own claims, newest first
// @Tags dealers
// @Produce json
// @Security BearerAuth
// @Param status query string false "Assignment status filter"
// @Success 200 {object} resdto.MyRequestsResponse
// @Failure 400 {object} httperr.Response
// @Router /dealers/my-requests [get]
func (h *DealerHandler) MyRequests(c *gin.Context) {
	subject, ok := currentSubject(c)
	if !ok {
		return
	}

	assignments, err := h.q.MyAssignments(c.Request.Context(), subject.ID, c.Query("status"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	list, err := resdto.FromAssignments(assignments)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.MyRequestsResponse{Requests: list})
}
