package api

import (
	"net/http"
	"strconv"

	"scrap-market/internal/domain/auth"
	"scrap-market/internal/handler/httperr"
	"scrap-market/internal/handler/middleware"
	"scrap-market/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const msgInvalidFormat = "Invalid request format"

func pathID(c *gin.Context) (int64, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		httperr.BadRequest(c, errs.Wrapf(errs.ErrInvalidArgument, "path id %q", raw), "Invalid id")
		return 0, false
	}
	return id, true
}

// currentSubject reads what RequireAuth stored. Its absence is a wiring bug.
func currentSubject(c *gin.Context) (auth.Subject, bool) {
	subject, ok := middleware.GetSubject(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, httperr.CodeInternal,
			errs.New("subject missing from context"), "Internal server error", nil)
	}
	return subject, ok
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		httperr.BadRequest(c, err, msgInvalidFormat)
		return false
	}
	return true
}
