package api

import (
	"net/http"

	resdto "scrap-market/internal/handler/dto/response"
	"scrap-market/internal/handler/httperr"
	"scrap-market/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	q queries.AdminQueries
}

func NewAdminHandler(q queries.AdminQueries) *AdminHandler {
	return &AdminHandler{q: q}
}

// @Summary All assignments
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.AssignmentListResponse
// @Failure 403 {object} httperr.Response
// @Router /admin/assignments [get]
func (h *AdminHandler) Assignments(c *gin.Context) {
	assignments, err := h.q.Assignments(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	list, err := resdto.FromAssignments(assignments)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.AssignmentListResponse{Assignments: list})
}

// @Summary All dealers
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.DealerListResponse
// @Failure 403 {object} httperr.Response
// @Router /admin/dealers [get]
func (h *AdminHandler) Dealers(c *gin.Context) {
	profiles, err := h.q.Dealers(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromDealerProfiles(profiles)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Propagation outbox
// @Description Status updates owed to the Ledger, optionally filtered by state
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param state query string false "pending, delivered or dead"
// @Success 200 {object} resdto.PropagationListResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /admin/propagation [get]
func (h *AdminHandler) Propagation(c *gin.Context) {
	entries, err := h.q.Propagation(c.Request.Context(), c.Query("state"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromPropagationEntries(entries)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
