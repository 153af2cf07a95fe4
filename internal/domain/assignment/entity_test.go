//go:build unit

package assignment_test

import (
	"testing"
	"time"

	"scrap-market/internal/domain/assignment"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 4, 2, 10, 0, 0, 0, time.UTC)

func TestComplete(t *testing.T) {
	a := assignment.NewClaim(7, 11, 5, now)
	assert.Equal(t, assignment.StatusAccepted, a.Status)

	done := now.Add(time.Hour)
	err := a.Complete(assignment.Completion{
		ActualWeight: decimal.RequireFromString("12.5"),
		ActualPrice:  decimal.RequireFromString("560"),
		Notes:        "heavier than expected",
	}, done)
	require.NoError(t, err)
	assert.Equal(t, assignment.StatusCompleted, a.Status)
	assert.Equal(t, &done, a.CompletedAt)

	err = a.Complete(assignment.Completion{ActualPrice: decimal.NewFromInt(1)}, done)
	assert.ErrorIs(t, err, assignment.ErrAlreadyCompleted)
	assert.True(t, a.ActualPrice.Equal(decimal.NewFromInt(560)))

	tx, err := assignment.PaymentFor(a)
	require.NoError(t, err)
	assert.Equal(t, int64(7), tx.RequestID)
	assert.Equal(t, int64(5), tx.UserID)
	assert.Equal(t, assignment.TransactionTypePayment, tx.Type)
	assert.True(t, tx.Amount.Equal(decimal.NewFromInt(560)))
}

func TestCompletionValidate(t *testing.T) {
	a := assignment.NewClaim(7, 11, 5, now)
	err := a.Complete(assignment.Completion{ActualWeight: decimal.NewFromInt(-1)}, now)
	assert.ErrorIs(t, err, assignment.ErrNegativeWeight)
	err = a.Complete(assignment.Completion{ActualPrice: decimal.NewFromInt(-1)}, now)
	assert.ErrorIs(t, err, assignment.ErrNegativePrice)
	assert.Equal(t, assignment.StatusAccepted, a.Status)

	_, err = assignment.PaymentFor(a)
	assert.ErrorIs(t, err, assignment.ErrInvalidStatus)
}
