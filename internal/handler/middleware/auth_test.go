//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"scrap-market/internal/domain/auth"
	"scrap-market/internal/domain/user"
	"scrap-market/internal/handler/middleware"
	"scrap-market/internal/pkg/errs"
	"scrap-market/internal/testutil/httptest"
	sharedmock "scrap-market/internal/testutil/mock/shared"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	router    *gin.Engine
	mockCtrl  *gomock.Controller
	validator *sharedmock.MockTokenValidator
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.validator = sharedmock.NewMockTokenValidator(s.mockCtrl)
	m := middleware.NewAuthMiddleware(s.validator)

	echo := func(c *gin.Context) {
		subject, _ := middleware.GetSubject(c)
		c.JSON(http.StatusOK, gin.H{"id": subject.ID, "token": middleware.GetToken(c)})
	}
	s.router.GET("/any", m.RequireAuth(), echo)
	s.router.GET("/dealers", m.RequireAuth(), m.RequireRole(user.RoleDealer), echo)
	s.router.GET("/misconfigured", m.RequireRole(user.RoleAdmin), echo)
}

func (s *AuthMiddlewareTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth() {
	dealer := &auth.Subject{ID: 21, Role: user.RoleDealer, ExpiresAt: time.Now().Add(time.Hour)}

	s.Run("success: bearer prefix is stripped and the token kept", func() {
		s.validator.EXPECT().ValidateToken(gomock.Any(), "abc").Return(dealer, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/any", nil, "abc")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.EqualValues(21, body["id"])
		s.Equal("abc", body["token"])
	})

	s.Run("success: raw token without prefix", func() {
		s.validator.EXPECT().ValidateToken(gomock.Any(), "abc").Return(dealer, nil)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodGet, "/any", nil,
			map[string]string{"Authorization": "abc"})
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	testCases := []struct {
		name       string
		err        error
		expectCode int
		expectErr  string
	}{
		{name: "missing", err: errs.ErrAuthMissing, expectCode: http.StatusUnauthorized, expectErr: "AUTH_MISSING"},
		{name: "expired", err: errs.ErrAuthExpired, expectCode: http.StatusUnauthorized, expectErr: "AUTH_EXPIRED"},
		{name: "invalid", err: errs.ErrAuthInvalid, expectCode: http.StatusUnauthorized, expectErr: "AUTH_INVALID"},
		{name: "identity down", err: errs.ErrUpstreamUnavailable, expectCode: http.StatusServiceUnavailable, expectErr: "UPSTREAM_UNAVAILABLE"},
	}
	for _, tc := range testCases {
		s.Run("error: "+tc.name, func() {
			s.validator.EXPECT().ValidateToken(gomock.Any(), gomock.Any()).Return(nil, tc.err)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/any", nil, "abc")
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectErr, "")
		})
	}
}

func (s *AuthMiddlewareTestSuite) TestRequireRole() {
	s.Run("success: matching role passes", func() {
		s.validator.EXPECT().ValidateToken(gomock.Any(), "abc").
			Return(&auth.Subject{ID: 21, Role: user.RoleDealer}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/dealers", nil, "abc")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 403 for other roles", func() {
		s.validator.EXPECT().ValidateToken(gomock.Any(), "abc").
			Return(&auth.Subject{ID: 5, Role: user.RoleUser}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/dealers", nil, "abc")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "FORBIDDEN", "Insufficient permissions")
	})

	s.Run("error: 500 when used without RequireAuth", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/misconfigured", nil, "abc")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "INTERNAL", "")
	})
}
