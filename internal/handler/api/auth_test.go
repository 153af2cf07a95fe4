//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"scrap-market/internal/handler/api"
	reqdto "scrap-market/internal/handler/dto/request"
	resdto "scrap-market/internal/handler/dto/response"
	"scrap-market/internal/pkg/errs"
	"scrap-market/internal/testutil"
	"scrap-market/internal/testutil/httptest"
	commandsmock "scrap-market/internal/testutil/mock/commands"
	"scrap-market/internal/usecase/commands"
	"scrap-market/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	handler      *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockCommands)

	s.router.POST("/auth/register", s.handler.Register)
	s.router.POST("/auth/login", s.handler.Login)
	s.router.GET("/auth/verify", fakeAuth(ownerSubject), s.handler.Verify)
	s.router.POST("/auth/refresh", fakeAuth(ownerSubject), s.handler.Refresh)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func authResult() *commands.AuthResult {
	return &commands.AuthResult{
		Token:     "issued-token",
		ExpiresAt: baseTime.Add(7 * 24 * time.Hour),
		User: queries.VerifiedUser{
			ID:       42,
			Email:    "dealer@example.com",
			Role:     "dealer",
			FullName: "Scrap Dealer",
		},
	}
}

func (s *AuthHandlerTestSuite) TestRegister() {
	url := "/auth/register"
	reqBody := reqdto.RegisterRequest{
		Email:    "dealer@example.com",
		Password: "password123",
		FullName: "Scrap Dealer",
		Role:     "dealer",
	}

	s.Run("success: returns 201 with token and user", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), commands.RegisterInput{
			Email:    "dealer@example.com",
			Password: "password123",
			FullName: "Scrap Dealer",
			Role:     "dealer",
		}).Return(authResult(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.AuthResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("User registered successfully", body.Message)
		s.Equal("issued-token", body.Token)
		s.Equal(int64(42), body.User.ID)
		s.Equal("dealer", body.User.Role)
	})

	validation := []struct {
		name   string
		mutate func(m map[string]any)
	}{
		{name: "missing email", mutate: testutil.Field("email", nil)},
		{name: "malformed email", mutate: testutil.Field("email", "not-an-email")},
		{name: "missing password", mutate: testutil.Field("password", nil)},
		{name: "unknown role", mutate: testutil.Field("role", "superuser")},
	}
	for _, tc := range validation {
		s.Run("error: 400 on "+tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "INVALID_ARGUMENT", "Invalid request format")
		})
	}

	s.Run("error: maps usecase errors", func() {
		testCases := []struct {
			name       string
			err        error
			expectCode int
			expectErr  string
		}{
			{name: "email taken", err: errs.ErrEmailTaken, expectCode: http.StatusConflict, expectErr: "CONFLICT"},
			{name: "admin signup disabled", err: errs.ErrForbidden, expectCode: http.StatusForbidden, expectErr: "FORBIDDEN"},
			{name: "weak password", err: errs.Wrap(errs.ErrInvalidArgument, "password too short"), expectCode: http.StatusBadRequest, expectErr: "INVALID_ARGUMENT"},
			{name: "unexpected", err: errors.New("db down"), expectCode: http.StatusInternalServerError, expectErr: "INTERNAL"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectErr, "")
			})
		}
	})

	s.Run("error: internal details are not leaked", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, errors.New("pq: connection refused"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "INTERNAL", "Internal server error")
		s.NotContains(rec.Body.String(), "connection refused")
	})
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	reqBody := reqdto.LoginRequest{Email: "dealer@example.com", Password: "password123"}

	s.Run("success: returns 200 with token", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), "dealer@example.com", "password123").Return(authResult(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.AuthResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Login successful", body.Message)
		s.Equal("issued-token", body.Token)
	})

	s.Run("error: 400 on malformed JSON", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, `{"email":`, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "INVALID_ARGUMENT", "")
	})

	s.Run("error: 401 on bad credentials", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errs.ErrInvalidCredentials)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "INVALID_CREDENTIALS", "")
	})

	s.Run("error: 403 on inactive account", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Wrap(errs.ErrForbidden, "account is inactive"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "FORBIDDEN", "inactive")
	})
}

func (s *AuthHandlerTestSuite) TestVerify() {
	s.Run("success: echoes the verified subject", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/verify", nil, testToken)

		var body resdto.VerifyResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Valid)
		s.Equal(ownerSubject.ID, body.User.ID)
		s.Equal("user", body.User.Role)
		s.Equal("Owner", body.User.FullName)
		s.True(ownerSubject.ExpiresAt.Equal(body.ExpiresAt))
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/verify", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "AUTH_MISSING", "")
	})
}

func (s *AuthHandlerTestSuite) TestRefresh() {
	s.Run("success: re-issues for the current subject", func() {
		s.mockCommands.EXPECT().Refresh(gomock.Any(), ownerSubject).Return(authResult(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/refresh", nil, testToken)

		var body resdto.AuthResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Token refreshed successfully", body.Message)
		s.Equal("issued-token", body.Token)
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/refresh", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "AUTH_MISSING", "")
	})
}
