//go:build unit

package queries_test

import (
	"context"
	"testing"

	"scrap-market/internal/domain/auth"
	"scrap-market/internal/domain/request"
	"scrap-market/internal/domain/user"
	"scrap-market/internal/infra"
	"scrap-market/internal/pkg/errs"
	queriesmock "scrap-market/internal/testutil/mock/queries"
	"scrap-market/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	owner    = auth.Subject{ID: 5, Role: user.RoleUser}
	stranger = auth.Subject{ID: 6, Role: user.RoleUser}
	dealer   = auth.Subject{ID: 21, Role: user.RoleDealer}
)

func TestRequestQueries_Get(t *testing.T) {
	ctx := context.Background()
	view := &queries.RequestView{ID: 7, UserID: owner.ID, Status: "pending"}

	testCases := []struct {
		name      string
		actor     auth.Subject
		setupMock func(rs *queriesmock.MockRequestReadStore)
		expectErr error
	}{
		{
			name:  "success: owner reads own request",
			actor: owner,
			setupMock: func(rs *queriesmock.MockRequestReadStore) {
				rs.EXPECT().FindByID(ctx, int64(7)).Return(view, nil)
			},
		},
		{
			name:  "success: staff reads any request",
			actor: dealer,
			setupMock: func(rs *queriesmock.MockRequestReadStore) {
				rs.EXPECT().FindByID(ctx, int64(7)).Return(view, nil)
			},
		},
		{
			name:  "error: another user is forbidden",
			actor: stranger,
			setupMock: func(rs *queriesmock.MockRequestReadStore) {
				rs.EXPECT().FindByID(ctx, int64(7)).Return(view, nil)
			},
			expectErr: errs.ErrForbidden,
		},
		{
			name:  "error: missing request",
			actor: owner,
			setupMock: func(rs *queriesmock.MockRequestReadStore) {
				rs.EXPECT().FindByID(ctx, int64(7)).Return(nil, infra.WrapRepoErr("find request", nil, infra.KindNotFound))
			},
			expectErr: errs.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			rs := queriesmock.NewMockRequestReadStore(ctrl)
			tc.setupMock(rs)

			got, err := queries.NewRequestQueries(rs).Get(ctx, tc.actor, 7)
			if tc.expectErr != nil {
				assert.Nil(t, got)
				assert.True(t, errs.Is(err, tc.expectErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, view, got)
		})
	}
}

func TestRequestQueries_Lists(t *testing.T) {
	ctx := context.Background()

	t.Run("success: own list filtered by status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rs := queriesmock.NewMockRequestReadStore(ctrl)
		pending := request.StatusPending
		rs.EXPECT().ListByOwner(ctx, owner.ID, &pending).Return([]*queries.RequestView{{ID: 1}}, nil)

		got, err := queries.NewRequestQueries(rs).ListMine(ctx, owner, "pending")
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("success: empty filter means any status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rs := queriesmock.NewMockRequestReadStore(ctrl)
		rs.EXPECT().ListByStatus(ctx, (*request.Status)(nil)).Return([]*queries.RequestView{}, nil)

		got, err := queries.NewRequestQueries(rs).ListAllByStatus(ctx, dealer, "")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("error: plain users cannot list everything", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rs := queriesmock.NewMockRequestReadStore(ctrl)

		_, err := queries.NewRequestQueries(rs).ListAllByStatus(ctx, owner, "pending")
		assert.True(t, errs.Is(err, errs.ErrForbidden))
	})

	t.Run("error: unknown status filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rs := queriesmock.NewMockRequestReadStore(ctrl)

		_, err := queries.NewRequestQueries(rs).ListMine(ctx, owner, "shipped")
		assert.True(t, errs.Is(err, errs.ErrInvalidArgument))
	})
}

func TestRequestQueries_History(t *testing.T) {
	ctx := context.Background()

	t.Run("success: visible request returns its trail", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rs := queriesmock.NewMockRequestReadStore(ctrl)
		rs.EXPECT().FindByID(ctx, int64(7)).Return(&queries.RequestView{ID: 7, UserID: owner.ID}, nil)
		rs.EXPECT().History(ctx, int64(7)).Return([]*queries.HistoryView{{ID: 1, Status: "pending"}, {ID: 2, Status: "accepted"}}, nil)

		got, err := queries.NewRequestQueries(rs).History(ctx, owner, 7)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("error: trail hidden from other users", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rs := queriesmock.NewMockRequestReadStore(ctrl)
		rs.EXPECT().FindByID(ctx, int64(7)).Return(&queries.RequestView{ID: 7, UserID: owner.ID}, nil)

		_, err := queries.NewRequestQueries(rs).History(ctx, stranger, 7)
		assert.True(t, errs.Is(err, errs.ErrForbidden))
	})
}
