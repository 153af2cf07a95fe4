//go:build e2e

package repository_test

import (
	"context"
	"testing"
	"time"

	"scrap-market/internal/domain/propagation"
	"scrap-market/internal/infra/db"
	"scrap-market/internal/infra/repository"
	"scrap-market/internal/testutil/dbtest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type OutboxRepositoryTestSuite struct {
	suite.Suite
	repo *repository.OutboxRepository
	now  time.Time
}

func TestOutboxRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(OutboxRepositoryTestSuite))
}

func (s *OutboxRepositoryTestSuite) SetupSuite() {
	cfg := dbtest.NewDatabase(s.T())
	require.NoError(s.T(), db.RunMigrations(cfg.BuildDSN(), "coordinator"))

	pool, cleanup, err := db.Connect(context.Background(), cfg)
	require.NoError(s.T(), err)
	s.T().Cleanup(cleanup)

	s.repo = repository.NewOutboxRepository(pool)
	s.now = time.Now().UTC().Truncate(time.Millisecond)
}

func (s *OutboxRepositoryTestSuite) enqueue(requestID int64, status string, at time.Time) *propagation.Entry {
	e := propagation.NewEntry(requestID, status, 21, at)
	require.NoError(s.T(), s.repo.Enqueue(context.Background(), e))
	return e
}

func (s *OutboxRepositoryTestSuite) TestLaterUpdateWaitsForEarlierOne() {
	ctx := context.Background()
	requestID := time.Now().UnixNano()
	accepted := s.enqueue(requestID, "accepted", s.now.Add(-2*time.Second))
	completed := s.enqueue(requestID, "completed", s.now.Add(-time.Second))

	claimed, err := s.repo.ClaimByID(ctx, accepted.ID, s.now)
	require.NoError(s.T(), err)
	require.NotNil(s.T(), claimed)
	claimed.MarkFailed(propagation.OutcomeRetry, "unexpected status 503", 20, s.now)
	require.NoError(s.T(), s.repo.Save(ctx, claimed))

	s.Run("newer update is not claimable while the older one is pending", func() {
		got, err := s.repo.ClaimByID(ctx, completed.ID, s.now)
		require.NoError(s.T(), err)
		s.Nil(got)

		ids, err := s.repo.DueIDs(ctx, s.now, 100)
		require.NoError(s.T(), err)
		s.NotContains(ids, accepted.ID)
		s.NotContains(ids, completed.ID)
	})

	s.Run("older update goes first once it is due", func() {
		later := s.now.Add(time.Minute)
		ids, err := s.repo.DueIDs(ctx, later, 100)
		require.NoError(s.T(), err)
		s.Contains(ids, accepted.ID)
		s.NotContains(ids, completed.ID)

		got, err := s.repo.ClaimByID(ctx, accepted.ID, later)
		require.NoError(s.T(), err)
		require.NotNil(s.T(), got)
		got.MarkDelivered(later)
		require.NoError(s.T(), s.repo.Save(ctx, got))

		ids, err = s.repo.DueIDs(ctx, later, 100)
		require.NoError(s.T(), err)
		s.Contains(ids, completed.ID)

		got, err = s.repo.ClaimByID(ctx, completed.ID, later)
		require.NoError(s.T(), err)
		require.NotNil(s.T(), got)
		s.Equal("completed", got.Status)
	})
}

func (s *OutboxRepositoryTestSuite) TestDeadUpdateReleasesTheNextOne() {
	ctx := context.Background()
	requestID := time.Now().UnixNano()
	accepted := s.enqueue(requestID, "accepted", s.now.Add(-2*time.Second))
	completed := s.enqueue(requestID, "completed", s.now.Add(-time.Second))

	got, err := s.repo.ClaimByID(ctx, accepted.ID, s.now)
	require.NoError(s.T(), err)
	require.NotNil(s.T(), got)
	got.MarkFailed(propagation.OutcomeStop, "unexpected status 403", 20, s.now)
	require.NoError(s.T(), s.repo.Save(ctx, got))

	got, err = s.repo.ClaimByID(ctx, completed.ID, s.now)
	require.NoError(s.T(), err)
	require.NotNil(s.T(), got)
	s.Equal(completed.ID, got.ID)
}

func (s *OutboxRepositoryTestSuite) TestOtherRequestsAreNotBlocked() {
	ctx := context.Background()
	blocked := time.Now().UnixNano()
	s.enqueue(blocked, "accepted", s.now.Add(-time.Second))
	waiting := s.enqueue(blocked, "completed", s.now.Add(-time.Second))
	free := s.enqueue(blocked+1, "accepted", s.now.Add(-time.Second))

	ids, err := s.repo.DueIDs(ctx, s.now, 100)
	require.NoError(s.T(), err)
	s.Contains(ids, free.ID)
	s.NotContains(ids, waiting.ID)
}

func (s *OutboxRepositoryTestSuite) TestUnknownIDIsNotClaimed() {
	got, err := s.repo.ClaimByID(context.Background(), uuid.New(), s.now)
	require.NoError(s.T(), err)
	assert.Nil(s.T(), got)
}
