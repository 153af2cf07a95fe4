package api

import (
	"net/http"

	reqdto "scrap-market/internal/handler/dto/request"
	resdto "scrap-market/internal/handler/dto/response"
	"scrap-market/internal/handler/httperr"
	"scrap-market/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PricingHandler struct {
	q queries.PricingQueries
}

func NewPricingHandler(q queries.PricingQueries) *PricingHandler {
	return &PricingHandler{q: q}
}

// @Summary Calculate price
// @Description Quote a quantity of a category at a location
// @Tags pricing
// @Accept json
// @Produce json
// @Param request body reqdto.CalculateRequest true "Quote request"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /pricing/calculate [post]
func (h *PricingHandler) Calculate(c *gin.Context) {
	var req reqdto.CalculateRequest
	if !bindJSON(c, &req) {
		return
	}

	quote, err := h.q.Calculate(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuote(quote))
}
