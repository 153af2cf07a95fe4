//go:build unit

package commands_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"scrap-market/internal/domain/propagation"
	"scrap-market/internal/pkg/clock"
	"scrap-market/internal/pkg/config"
	commandsmock "scrap-market/internal/testutil/mock/commands"
	sharedmock "scrap-market/internal/testutil/mock/shared"
	"scrap-market/internal/usecase/commands"
	"scrap-market/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type propagationFixture struct {
	*txMocks
	ledger   *sharedmock.MockLedgerGateway
	recorder *commandsmock.MockPropagationRecorder
}

func newPropagationFixture(t *testing.T, maxAttempts int) (*propagationFixture, commands.PropagationCommands) {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &propagationFixture{
		txMocks:  newTxMocks(ctrl),
		ledger:   sharedmock.NewMockLedgerGateway(ctrl),
		recorder: commandsmock.NewMockPropagationRecorder(ctrl),
	}
	f.recorder.EXPECT().RecordPropagationLatency(gomock.Any()).AnyTimes()

	cfg := config.PropagationConfig{BatchSize: 10, MaxAttempts: maxAttempts, ServiceToken: "svc-token"}
	return f, commands.NewPropagationCommands(f.uow, f.ledger, f.recorder, cfg, clock.NewMockClock(baseTime))
}

func pendingEntry(requestID int64, status string) *propagation.Entry {
	return propagation.NewEntry(requestID, status, 21, baseTime.Add(-time.Minute))
}

func TestPropagationCommands_DeliverOne(t *testing.T) {
	ctx := context.Background()
	dealerID := int64(21)

	t.Run("success: ledger accepts the update", func(t *testing.T) {
		f, cmds := newPropagationFixture(t, 5)
		entry := pendingEntry(7, "accepted")

		f.outbox.EXPECT().ClaimByID(gomock.Any(), entry.ID, baseTime).Return(entry, nil)
		f.ledger.EXPECT().UpdateStatus(gomock.Any(), "tok", int64(7), shared.StatusUpdate{
			Status:           "accepted",
			AssignedDealerID: &dealerID,
			Notes:            "Updated by dealer 21",
		}).Return(http.StatusOK, nil)
		f.recorder.EXPECT().RecordPropagation("delivered")
		f.outbox.EXPECT().Save(gomock.Any(), entry).Return(nil)

		require.NoError(t, cmds.DeliverOne(ctx, entry.ID, "tok"))
		assert.Equal(t, propagation.StateDelivered, entry.State)
		assert.Equal(t, 1, entry.Attempts)
		require.NotNil(t, entry.DeliveredAt)
		assert.Equal(t, baseTime, *entry.DeliveredAt)
	})

	t.Run("retry: server error schedules another attempt and is still saved", func(t *testing.T) {
		f, cmds := newPropagationFixture(t, 5)
		entry := pendingEntry(7, "accepted")

		f.outbox.EXPECT().ClaimByID(gomock.Any(), entry.ID, baseTime).Return(entry, nil)
		f.ledger.EXPECT().UpdateStatus(gomock.Any(), "tok", int64(7), gomock.Any()).
			Return(http.StatusBadGateway, errors.New("unexpected status 502"))
		f.recorder.EXPECT().RecordPropagation("retry")
		f.outbox.EXPECT().Save(gomock.Any(), entry).Return(nil)

		err := cmds.DeliverOne(ctx, entry.ID, "tok")
		require.Error(t, err)
		assert.Equal(t, propagation.StatePending, entry.State)
		assert.Equal(t, 1, entry.Attempts)
		assert.Equal(t, baseTime.Add(time.Second), entry.NextAttemptAt)
		assert.Contains(t, entry.LastError, "502")
	})

	t.Run("dead: client error stops retrying", func(t *testing.T) {
		f, cmds := newPropagationFixture(t, 5)
		entry := pendingEntry(7, "completed")

		f.outbox.EXPECT().ClaimByID(gomock.Any(), entry.ID, baseTime).Return(entry, nil)
		f.ledger.EXPECT().UpdateStatus(gomock.Any(), "tok", int64(7), gomock.Any()).
			Return(http.StatusForbidden, errors.New("forbidden"))
		f.recorder.EXPECT().RecordPropagation("dead")
		f.outbox.EXPECT().Save(gomock.Any(), entry).Return(nil)

		require.Error(t, cmds.DeliverOne(ctx, entry.ID, "tok"))
		assert.Equal(t, propagation.StateDead, entry.State)
	})

	t.Run("dead: attempt budget exhausted", func(t *testing.T) {
		f, cmds := newPropagationFixture(t, 3)
		entry := pendingEntry(7, "accepted")
		entry.Attempts = 2

		f.outbox.EXPECT().ClaimByID(gomock.Any(), entry.ID, baseTime).Return(entry, nil)
		f.ledger.EXPECT().UpdateStatus(gomock.Any(), "tok", int64(7), gomock.Any()).
			Return(0, errors.New("connection refused"))
		f.recorder.EXPECT().RecordPropagation("dead")
		f.outbox.EXPECT().Save(gomock.Any(), entry).Return(nil)

		require.Error(t, cmds.DeliverOne(ctx, entry.ID, "tok"))
		assert.Equal(t, propagation.StateDead, entry.State)
		assert.Equal(t, 3, entry.Attempts)
	})

	t.Run("skip: entry delivered, held elsewhere or queued behind an older update", func(t *testing.T) {
		f, cmds := newPropagationFixture(t, 5)
		entry := pendingEntry(7, "accepted")

		f.outbox.EXPECT().ClaimByID(gomock.Any(), entry.ID, baseTime).Return(nil, nil)

		assert.NoError(t, cmds.DeliverOne(ctx, entry.ID, "tok"))
	})

	t.Run("error: outbox save failure is returned", func(t *testing.T) {
		f, cmds := newPropagationFixture(t, 5)
		entry := pendingEntry(7, "accepted")

		f.outbox.EXPECT().ClaimByID(gomock.Any(), entry.ID, baseTime).Return(entry, nil)
		f.ledger.EXPECT().UpdateStatus(gomock.Any(), "tok", int64(7), gomock.Any()).Return(http.StatusOK, nil)
		f.recorder.EXPECT().RecordPropagation("delivered")
		f.outbox.EXPECT().Save(gomock.Any(), entry).Return(errors.New("db down"))

		assert.EqualError(t, cmds.DeliverOne(ctx, entry.ID, "tok"), "db down")
	})
}

func TestPropagationCommands_DeliverDue(t *testing.T) {
	ctx := context.Background()

	t.Run("success: each due entry pushed with the service token", func(t *testing.T) {
		f, cmds := newPropagationFixture(t, 5)
		ok := pendingEntry(7, "accepted")
		failing := pendingEntry(8, "completed")

		f.outbox.EXPECT().DueIDs(gomock.Any(), baseTime, 10).Return([]uuid.UUID{ok.ID, failing.ID}, nil)
		f.outbox.EXPECT().ClaimByID(gomock.Any(), ok.ID, baseTime).Return(ok, nil)
		f.outbox.EXPECT().ClaimByID(gomock.Any(), failing.ID, baseTime).Return(failing, nil)
		f.ledger.EXPECT().UpdateStatus(gomock.Any(), "svc-token", int64(7), gomock.Any()).Return(http.StatusOK, nil)
		f.ledger.EXPECT().UpdateStatus(gomock.Any(), "svc-token", int64(8), gomock.Any()).
			Return(http.StatusServiceUnavailable, errors.New("unexpected status 503"))
		f.recorder.EXPECT().RecordPropagation("delivered")
		f.recorder.EXPECT().RecordPropagation("retry")
		f.outbox.EXPECT().Save(gomock.Any(), ok).Return(nil)
		f.outbox.EXPECT().Save(gomock.Any(), failing).Return(nil)

		tried, err := cmds.DeliverDue(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, tried)
		assert.Equal(t, propagation.StateDelivered, ok.State)
		assert.Equal(t, propagation.StatePending, failing.State)
	})

	t.Run("success: entry claimed elsewhere in the meantime is not counted", func(t *testing.T) {
		f, cmds := newPropagationFixture(t, 5)
		accepted := pendingEntry(7, "accepted")
		gone := pendingEntry(9, "accepted")

		f.outbox.EXPECT().DueIDs(gomock.Any(), baseTime, 10).Return([]uuid.UUID{accepted.ID, gone.ID}, nil)
		f.outbox.EXPECT().ClaimByID(gomock.Any(), accepted.ID, baseTime).Return(accepted, nil)
		f.outbox.EXPECT().ClaimByID(gomock.Any(), gone.ID, baseTime).Return(nil, nil)
		f.ledger.EXPECT().UpdateStatus(gomock.Any(), "svc-token", int64(7), gomock.Any()).Return(http.StatusOK, nil)
		f.recorder.EXPECT().RecordPropagation("delivered")
		f.outbox.EXPECT().Save(gomock.Any(), accepted).Return(nil)

		tried, err := cmds.DeliverDue(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, tried)
	})

	t.Run("error: save failure stops the pass but keeps earlier deliveries", func(t *testing.T) {
		f, cmds := newPropagationFixture(t, 5)
		first := pendingEntry(7, "accepted")
		second := pendingEntry(8, "accepted")

		f.outbox.EXPECT().DueIDs(gomock.Any(), baseTime, 10).Return([]uuid.UUID{first.ID, second.ID}, nil)
		f.outbox.EXPECT().ClaimByID(gomock.Any(), first.ID, baseTime).Return(first, nil)
		f.outbox.EXPECT().ClaimByID(gomock.Any(), second.ID, baseTime).Return(second, nil)
		f.ledger.EXPECT().UpdateStatus(gomock.Any(), "svc-token", gomock.Any(), gomock.Any()).Return(http.StatusOK, nil).Times(2)
		f.recorder.EXPECT().RecordPropagation("delivered").Times(2)
		f.outbox.EXPECT().Save(gomock.Any(), first).Return(nil)
		f.outbox.EXPECT().Save(gomock.Any(), second).Return(errors.New("db down"))

		tried, err := cmds.DeliverDue(ctx)
		assert.EqualError(t, err, "db down")
		assert.Equal(t, 1, tried)
	})

	t.Run("error: no service token leaves entries untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		recorder := commandsmock.NewMockPropagationRecorder(ctrl)
		cfg := config.PropagationConfig{BatchSize: 10, MaxAttempts: 5}
		cmds := commands.NewPropagationCommands(m.uow, sharedmock.NewMockLedgerGateway(ctrl), recorder, cfg, clock.NewMockClock(baseTime))

		tried, err := cmds.DeliverDue(ctx)
		assert.ErrorIs(t, err, commands.ErrNoServiceToken)
		assert.Zero(t, tried)
	})
}
