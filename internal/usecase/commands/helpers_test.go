//go:build unit

package commands_test

import (
	"context"
	"time"

	sharedmock "scrap-market/internal/testutil/mock/shared"
	"scrap-market/internal/usecase/shared"

	"go.uber.org/mock/gomock"
)

var baseTime = time.Date(2025, 5, 10, 9, 30, 0, 0, time.UTC)

// txMocks wires a UnitOfWork mock that runs the callback against a Tx mock
// handing out the repository mocks below.
type txMocks struct {
	uow          *sharedmock.MockUnitOfWork
	tx           *sharedmock.MockTx
	users        *sharedmock.MockUserRepository
	requests     *sharedmock.MockRequestRepository
	history      *sharedmock.MockHistoryRepository
	assignments  *sharedmock.MockAssignmentRepository
	profiles     *sharedmock.MockDealerProfileRepository
	transactions *sharedmock.MockTransactionRepository
	outbox       *sharedmock.MockOutboxRepository
}

func newTxMocks(ctrl *gomock.Controller) *txMocks {
	m := &txMocks{
		uow:          sharedmock.NewMockUnitOfWork(ctrl),
		tx:           sharedmock.NewMockTx(ctrl),
		users:        sharedmock.NewMockUserRepository(ctrl),
		requests:     sharedmock.NewMockRequestRepository(ctrl),
		history:      sharedmock.NewMockHistoryRepository(ctrl),
		assignments:  sharedmock.NewMockAssignmentRepository(ctrl),
		profiles:     sharedmock.NewMockDealerProfileRepository(ctrl),
		transactions: sharedmock.NewMockTransactionRepository(ctrl),
		outbox:       sharedmock.NewMockOutboxRepository(ctrl),
	}

	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		}).AnyTimes()

	m.tx.EXPECT().Users().Return(m.users).AnyTimes()
	m.tx.EXPECT().Requests().Return(m.requests).AnyTimes()
	m.tx.EXPECT().History().Return(m.history).AnyTimes()
	m.tx.EXPECT().Assignments().Return(m.assignments).AnyTimes()
	m.tx.EXPECT().DealerProfiles().Return(m.profiles).AnyTimes()
	m.tx.EXPECT().Transactions().Return(m.transactions).AnyTimes()
	m.tx.EXPECT().Outbox().Return(m.outbox).AnyTimes()
	return m
}
