package httperr

import (
	"net/http"

	"scrap-market/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// Machine-readable error codes carried in every error body.
const (
	CodeAuthMissing         = "AUTH_MISSING"
	CodeAuthExpired         = "AUTH_EXPIRED"
	CodeAuthInvalid         = "AUTH_INVALID"
	CodeInvalidCredentials  = "INVALID_CREDENTIALS"
	CodeForbidden           = "FORBIDDEN"
	CodeNotFound            = "NOT_FOUND"
	CodeAlreadyAssigned     = "ALREADY_ASSIGNED"
	CodeAlreadyCompleted    = "ALREADY_COMPLETED"
	CodeNoLongerAvailable   = "NO_LONGER_AVAILABLE"
	CodeInvalidTransition   = "INVALID_TRANSITION"
	CodeConflict            = "CONFLICT"
	CodeInvalidArgument     = "INVALID_ARGUMENT"
	CodeUpstreamUnavailable = "UPSTREAM_UNAVAILABLE"
	CodeInternal            = "INTERNAL"
)

const (
	msgInternal    = "Internal server error"
	msgUnavailable = "A dependent service is unavailable"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func NewResponse(status int, code, msg string) Response {
	resp := Response{Status: status}
	resp.Error.Code = code
	resp.Error.Message = msg
	return resp
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, code string, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := NewResponse(status, code, msg)
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort translates a taxonomy error into its status and code. Messages of
// 5xx responses are generic so that internals never leak.
func Abort(c *gin.Context, err error) {
	status, code := Classify(err)
	msg := err.Error()
	switch status {
	case http.StatusInternalServerError:
		msg = msgInternal
	case http.StatusServiceUnavailable:
		msg = msgUnavailable
	}
	AbortWithError(c, status, code, err, msg, nil)
}

// BadRequest is the shortcut for binding and path parameter failures.
func BadRequest(c *gin.Context, err error, msg string) {
	AbortWithError(c, http.StatusBadRequest, CodeInvalidArgument, err, msg, nil)
}

type mapping struct {
	target error
	status int
	code   string
}

// Order matters: the first matching sentinel wins.
var mappings = []mapping{
	{errs.ErrAuthMissing, http.StatusUnauthorized, CodeAuthMissing},
	{errs.ErrAuthExpired, http.StatusUnauthorized, CodeAuthExpired},
	{errs.ErrAuthInvalid, http.StatusUnauthorized, CodeAuthInvalid},
	{errs.ErrInvalidCredentials, http.StatusUnauthorized, CodeInvalidCredentials},
	{errs.ErrForbidden, http.StatusForbidden, CodeForbidden},
	{errs.ErrNotFound, http.StatusNotFound, CodeNotFound},
	{errs.ErrAlreadyAssigned, http.StatusConflict, CodeAlreadyAssigned},
	{errs.ErrAlreadyCompleted, http.StatusConflict, CodeAlreadyCompleted},
	{errs.ErrNoLongerAvailable, http.StatusConflict, CodeNoLongerAvailable},
	{errs.ErrInvalidTransition, http.StatusConflict, CodeInvalidTransition},
	{errs.ErrInvalidArgument, http.StatusBadRequest, CodeInvalidArgument},
	{errs.ErrUpstreamUnavailable, http.StatusServiceUnavailable, CodeUpstreamUnavailable},
}

func Classify(err error) (int, string) {
	for _, m := range mappings {
		if errs.Is(err, m.target) {
			return m.status, m.code
		}
	}
	if errs.IsConflict(err) {
		return http.StatusConflict, CodeConflict
	}
	return http.StatusInternalServerError, CodeInternal
}
