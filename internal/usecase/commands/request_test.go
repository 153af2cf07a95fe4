//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"scrap-market/internal/domain/auth"
	"scrap-market/internal/domain/request"
	"scrap-market/internal/domain/user"
	"scrap-market/internal/infra"
	"scrap-market/internal/pkg/clock"
	"scrap-market/internal/pkg/errs"
	sharedmock "scrap-market/internal/testutil/mock/shared"
	"scrap-market/internal/usecase/commands"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var owner = auth.Subject{ID: 5, Email: "owner@example.com", Role: user.RoleUser}

func newRequestFixture(t *testing.T, policy request.Policy) (*txMocks, *sharedmock.MockPricingGateway, commands.RequestCommands) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := newTxMocks(ctrl)
	pricing := sharedmock.NewMockPricingGateway(ctrl)
	return m, pricing, commands.NewRequestCommands(m.uow, pricing, policy, clock.NewMockClock(baseTime))
}

func storedRequest(status request.Status) *request.Request {
	return request.Reconstruct(request.Snapshot{
		ID:            7,
		OwnerID:       owner.ID,
		CategoryID:    3,
		Quantity:      decimal.NewFromInt(10),
		PickupAddress: "12 Market Road",
		Notes:         "gate code 4411",
		Status:        status,
		CreatedAt:     baseTime.Add(-time.Hour),
		UpdatedAt:     baseTime.Add(-time.Hour),
	})
}

func TestRequestCommands_Create(t *testing.T) {
	ctx := context.Background()
	input := commands.CreateRequestInput{
		CategoryID:    3,
		Quantity:      decimal.NewFromInt(10),
		PickupAddress: "12 Market Road",
		Location:      "  Pune ",
	}

	t.Run("success: estimate attached and creation recorded in history", func(t *testing.T) {
		m, pricing, cmds := newRequestFixture(t, request.Policy{})

		pricing.EXPECT().Estimate(ctx, "tok", int64(3), input.Quantity, "Pune").
			Return(decimal.RequireFromString("125.00"), nil)
		m.requests.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(7), nil)
		m.history.EXPECT().Append(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e request.HistoryEntry) error {
				assert.Equal(t, int64(7), e.RequestID)
				assert.Equal(t, request.StatusPending, e.Status)
				assert.Equal(t, owner.ID, e.ActorID)
				return nil
			})

		got, err := cmds.Create(ctx, owner, "tok", input)
		require.NoError(t, err)
		assert.Equal(t, int64(7), got.ID())
		assert.Equal(t, request.StatusPending, got.Status())
		require.NotNil(t, got.EstimatedPrice())
		assert.Equal(t, "125.00", got.EstimatedPrice().StringFixed(2))
	})

	t.Run("success: pricing outage leaves estimate empty", func(t *testing.T) {
		m, pricing, cmds := newRequestFixture(t, request.Policy{})

		pricing.EXPECT().Estimate(ctx, "tok", int64(3), input.Quantity, "Pune").
			Return(decimal.Zero, errs.ErrUpstreamUnavailable)
		m.requests.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(8), nil)
		m.history.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

		got, err := cmds.Create(ctx, owner, "tok", input)
		require.NoError(t, err)
		assert.Nil(t, got.EstimatedPrice())
	})

	t.Run("error: invalid input rejected before pricing", func(t *testing.T) {
		_, _, cmds := newRequestFixture(t, request.Policy{})

		bad := input
		bad.Quantity = decimal.Zero
		_, err := cmds.Create(ctx, owner, "tok", bad)
		assert.True(t, errs.Is(err, errs.ErrInvalidArgument))
	})

	t.Run("error: history failure fails the whole creation", func(t *testing.T) {
		m, pricing, cmds := newRequestFixture(t, request.Policy{})

		pricing.EXPECT().Estimate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(decimal.NewFromInt(1), nil)
		m.requests.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(9), nil)
		m.history.EXPECT().Append(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))

		_, err := cmds.Create(ctx, owner, "tok", input)
		assert.EqualError(t, err, "insert failed")
	})
}

func TestRequestCommands_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	dealerID := int64(21)
	dealerSubject := auth.Subject{ID: dealerID, Role: user.RoleDealer}

	t.Run("success: dealer accepts and history follows", func(t *testing.T) {
		m, _, cmds := newRequestFixture(t, request.Policy{})
		stored := storedRequest(request.StatusPending)

		gomock.InOrder(
			m.requests.EXPECT().FindForUpdate(gomock.Any(), int64(7)).Return(stored, nil),
			m.requests.EXPECT().UpdateStatus(gomock.Any(), stored).Return(nil),
			m.history.EXPECT().Append(gomock.Any(), request.HistoryEntry{
				RequestID: 7,
				Status:    request.StatusAccepted,
				ActorID:   dealerID,
				Note:      "Updated by dealer 21",
				CreatedAt: baseTime,
			}).Return(nil),
		)

		err := cmds.UpdateStatus(ctx, dealerSubject, 7, commands.UpdateStatusInput{
			Status:           "accepted",
			AssignedDealerID: &dealerID,
			Notes:            "Updated by dealer 21",
		})
		require.NoError(t, err)
		assert.Equal(t, request.StatusAccepted, stored.Status())
		assert.Equal(t, &dealerID, stored.AssignedDealerID())
		assert.Equal(t, "gate code 4411", stored.Snapshot().Notes)
	})

	testCases := []struct {
		name      string
		actor     auth.Subject
		policy    request.Policy
		status    string
		setupMock func(m *txMocks)
		expectErr error
	}{
		{
			name:      "error: unknown status",
			actor:     owner,
			status:    "shipped",
			setupMock: func(m *txMocks) {},
			expectErr: errs.ErrInvalidArgument,
		},
		{
			name:   "error: request does not exist",
			actor:  owner,
			status: "cancelled",
			setupMock: func(m *txMocks) {
				m.requests.EXPECT().FindForUpdate(gomock.Any(), int64(7)).
					Return(nil, infra.WrapRepoErr("find request", nil, infra.KindNotFound))
			},
			expectErr: errs.ErrNotFound,
		},
		{
			name:   "error: another user's request",
			actor:  auth.Subject{ID: 99, Role: user.RoleUser},
			status: "cancelled",
			setupMock: func(m *txMocks) {
				m.requests.EXPECT().FindForUpdate(gomock.Any(), int64(7)).Return(storedRequest(request.StatusPending), nil)
			},
			expectErr: errs.ErrForbidden,
		},
		{
			name:   "error: strict policy rejects skipping to completed",
			actor:  dealerSubject,
			policy: request.Policy{Strict: true},
			status: "completed",
			setupMock: func(m *txMocks) {
				m.requests.EXPECT().FindForUpdate(gomock.Any(), int64(7)).Return(storedRequest(request.StatusPending), nil)
			},
			expectErr: errs.ErrInvalidTransition,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, _, cmds := newRequestFixture(t, tc.policy)
			tc.setupMock(m)

			err := cmds.UpdateStatus(ctx, tc.actor, 7, commands.UpdateStatusInput{Status: tc.status})
			require.Error(t, err)
			assert.True(t, errs.Is(err, tc.expectErr), "got %v", err)
		})
	}
}
