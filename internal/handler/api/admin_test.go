//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"scrap-market/internal/domain/assignment"
	"scrap-market/internal/domain/propagation"
	"scrap-market/internal/handler/api"
	resdto "scrap-market/internal/handler/dto/response"
	"scrap-market/internal/pkg/errs"
	"scrap-market/internal/testutil/httptest"
	queriesmock "scrap-market/internal/testutil/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockAdminQueries
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockAdminQueries(s.mockCtrl)
	h := api.NewAdminHandler(s.mockQueries)

	g := s.router.Group("/admin", fakeAuth(adminSubject))
	g.GET("/assignments", h.Assignments)
	g.GET("/dealers", h.Dealers)
	g.GET("/propagation", h.Propagation)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) TestAssignments() {
	s.mockQueries.EXPECT().Assignments(gomock.Any()).Return([]*assignment.Assignment{
		{ID: 2, RequestID: 8, DealerID: 21, Status: assignment.StatusAccepted, AssignedAt: baseTime},
		{ID: 1, RequestID: 7, DealerID: 22, Status: assignment.StatusCompleted, AssignedAt: baseTime},
	}, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/assignments", nil, testToken)

	var body resdto.AssignmentListResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Require().Len(body.Assignments, 2)
	s.Equal(int64(8), body.Assignments[0].RequestID)
	s.Equal("completed", body.Assignments[1].Status)
}

func (s *AdminHandlerTestSuite) TestDealers() {
	s.mockQueries.EXPECT().Dealers(gomock.Any()).Return([]assignment.DealerProfile{
		{DealerID: 21, TotalPickups: 4, TotalEarnings: decimal.RequireFromString("1200.5"), Rating: decimal.Zero, IsActive: true},
	}, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/dealers", nil, testToken)

	var body resdto.DealerListResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Require().Len(body.Dealers, 1)
	s.Equal("1200.50", body.Dealers[0].TotalEarnings.String())
	s.True(body.Dealers[0].IsActive)
}

func (s *AdminHandlerTestSuite) TestPropagation() {
	s.Run("success: entries listed by state", func() {
		entry := propagation.NewEntry(7, "accepted", 21, baseTime)
		entry.MarkFailed(propagation.OutcomeStop, "unexpected status 403", 20, baseTime)

		s.mockQueries.EXPECT().Propagation(gomock.Any(), "dead").Return([]*propagation.Entry{entry}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/propagation?state=dead", nil, testToken)

		var body resdto.PropagationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Entries, 1)
		s.Equal(entry.ID.String(), body.Entries[0].ID)
		s.Equal("dead", body.Entries[0].State)
		s.Equal(1, body.Entries[0].Attempts)
	})

	s.Run("error: unknown state", func() {
		s.mockQueries.EXPECT().Propagation(gomock.Any(), "lost").Return(nil, errs.ErrInvalidArgument)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/propagation?state=lost", nil, testToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "INVALID_ARGUMENT", "")
	})
}
