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

type RequestHandler struct {
	cmds commands.RequestCommands
	q    queries.RequestQueries
}

func NewRequestHandler(cmds commands.RequestCommands, q queries.RequestQueries) *RequestHandler {
	return &RequestHandler{cmds: cmds, q: q}
}

// @Summary Create pickup request
// @Description Submit a pending pickup request; the price estimate is best-effort
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRequestRequest true "Create request"
// @Success 201 {object} resdto.CreateRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /users/requests [post]
func (h *RequestHandler) Create(c *gin.Context) {
	subject, ok := currentSubject(c)
	if !ok {
		return
	}
	var req reqdto.CreateRequestRequest
	if !bindJSON(c, &req) {
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	created, err := h.cmds.Create(c.Request.Context(), subject, middleware.GetToken(c), in)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCreatedRequest(created))
}

// @Summary Get pickup request
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Success 200 {object} resdto.RequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /users/requests/{id} [get]
func (h *RequestHandler) Get(c *gin.Context) {
	subject, ok := currentSubject(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	view, err := h.q.Get(c.Request.Context(), subject, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromRequestView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List own pickup requests
// @Description Newest first, optionally filtered by status
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter"
// @Success 200 {object} resdto.RequestListResponse
// @Failure 400 {object} httperr.Response
// @Router /users/requests [get]
func (h *RequestHandler) List(c *gin.Context) {
	subject, ok := currentSubject(c)
	if !ok {
		return
	}

	views, err := h.q.ListMine(c.Request.Context(), subject, c.Query("status"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.renderList(c, views)
}

// @Summary List all pickup requests
// @Description Dealers and admins only
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter"
// @Success 200 {object} resdto.RequestListResponse
// @Failure 403 {object} httperr.Response
// @Router /users/requests/all [get]
func (h *RequestHandler) ListAll(c *gin.Context) {
	subject, ok := currentSubject(c)
	if !ok {
		return
	}

	views, err := h.q.ListAllByStatus(c.Request.Context(), subject, c.Query("status"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.renderList(c, views)
}

func (h *RequestHandler) renderList(c *gin.Context, views []*queries.RequestView) {
	resp, err := resdto.FromRequestViews(views)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Update request status
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Param request body reqdto.UpdateStatusRequest true "Status update"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /users/requests/{id}/status [put]
func (h *RequestHandler) UpdateStatus(c *gin.Context) {
	subject, ok := currentSubject(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.cmds.UpdateStatus(c.Request.Context(), subject, id, req.ToInput()); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Status updated successfully"})
}

// @Summary Request history
// @Description Audit trail, oldest first
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Success 200 {object} resdto.HistoryResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /users/requests/{id}/history [get]
func (h *RequestHandler) History(c *gin.Context) {
	subject, ok := currentSubject(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	views, err := h.q.History(c.Request.Context(), subject, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromHistoryViews(views))
}
