//go:build unit

package httperr_test

import (
	"errors"
	"net/http"
	"testing"

	"scrap-market/internal/handler/httperr"
	"scrap-market/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"auth missing", errs.ErrAuthMissing, http.StatusUnauthorized, httperr.CodeAuthMissing},
		{"auth expired", errs.ErrAuthExpired, http.StatusUnauthorized, httperr.CodeAuthExpired},
		{"auth invalid", errs.Wrap(errs.ErrAuthInvalid, "bad signature"), http.StatusUnauthorized, httperr.CodeAuthInvalid},
		{"bad credentials", errs.ErrInvalidCredentials, http.StatusUnauthorized, httperr.CodeInvalidCredentials},
		{"forbidden", errs.ErrForbidden, http.StatusForbidden, httperr.CodeForbidden},
		{"not found", errs.Wrapf(errs.ErrNotFound, "request %d", 7), http.StatusNotFound, httperr.CodeNotFound},
		{"already assigned", errs.ErrAlreadyAssigned, http.StatusConflict, httperr.CodeAlreadyAssigned},
		{"already completed", errs.ErrAlreadyCompleted, http.StatusConflict, httperr.CodeAlreadyCompleted},
		{"no longer available", errs.ErrNoLongerAvailable, http.StatusConflict, httperr.CodeNoLongerAvailable},
		{"invalid transition", errs.ErrInvalidTransition, http.StatusConflict, httperr.CodeInvalidTransition},
		{"email taken falls back to conflict", errs.ErrEmailTaken, http.StatusConflict, httperr.CodeConflict},
		{"marked invalid argument", errs.Mark(errors.New("quantity must be positive"), errs.ErrInvalidArgument), http.StatusBadRequest, httperr.CodeInvalidArgument},
		{"upstream", errs.Mark(errors.New("dial tcp"), errs.ErrUpstreamUnavailable), http.StatusServiceUnavailable, httperr.CodeUpstreamUnavailable},
		{"anything else", errors.New("boom"), http.StatusInternalServerError, httperr.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, code := httperr.Classify(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}

func TestNewResponse(t *testing.T) {
	resp := httperr.NewResponse(http.StatusNotFound, httperr.CodeNotFound, "request 7: not found")

	assert.Equal(t, http.StatusNotFound, resp.Status)
	assert.Equal(t, httperr.CodeNotFound, resp.Error.Code)
	assert.Equal(t, "request 7: not found", resp.Error.Message)
	assert.Nil(t, resp.Detail)
}
