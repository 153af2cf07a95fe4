//go:build unit

package jwt_test

import (
	"strings"
	"testing"
	"time"

	"scrap-market/internal/domain/user"
	"scrap-market/internal/pkg/clock"
	"scrap-market/internal/pkg/errs"
	"scrap-market/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const week = 7 * 24 * time.Hour

func newService(t *testing.T) (*jwt.Service, *clock.MockClock) {
	t.Helper()
	clk := clock.NewMockClock(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))
	return jwt.NewService("unit-test-secret", week, clk), clk
}

func TestTokenRoundTrip(t *testing.T) {
	svc, clk := newService(t)

	token, expiresAt, err := svc.GenerateToken(42, "dealer@example.com", user.RoleDealer)
	require.NoError(t, err)
	assert.Equal(t, clk.Now().Add(week), expiresAt)

	clk.Add(week - time.Second)
	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "dealer@example.com", claims.Email)
	assert.Equal(t, "dealer", claims.Role)
	assert.Equal(t, expiresAt, claims.ExpiresAt.Time.UTC())
}

func TestTokenExpiry(t *testing.T) {
	svc, clk := newService(t)

	token, _, err := svc.GenerateToken(7, "user@example.com", user.RoleUser)
	require.NoError(t, err)

	t.Run("exactly at expiry", func(t *testing.T) {
		clk.Add(week)
		_, err := svc.ValidateToken(token)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrAuthExpired))
		assert.False(t, errs.Is(err, errs.ErrAuthInvalid))
	})
}

func TestTokenTampering(t *testing.T) {
	svc, _ := newService(t)

	token, _, err := svc.GenerateToken(7, "user@example.com", user.RoleUser)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	tests := []struct {
		name  string
		token string
	}{
		{name: "flipped signature", token: parts[0] + "." + parts[1] + "." + flip(parts[2])},
		{name: "swapped payload", token: parts[0] + "." + flip(parts[1]) + "." + parts[2]},
		{name: "garbage", token: "not-a-token"},
		{name: "other secret", token: otherSecretToken(t)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ValidateToken(tt.token)
			require.Error(t, err)
			assert.True(t, errs.Is(err, errs.ErrAuthInvalid))
		})
	}

	t.Run("empty token", func(t *testing.T) {
		_, err := svc.ValidateToken("")
		assert.True(t, errs.Is(err, errs.ErrAuthMissing))
	})
}

func flip(segment string) string {
	b := []byte(segment)
	if b[0] == 'A' {
		b[0] = 'B'
	} else {
		b[0] = 'A'
	}
	return string(b)
}

func otherSecretToken(t *testing.T) string {
	t.Helper()
	clk := clock.NewMockClock(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))
	token, _, err := jwt.NewService("another-secret", week, clk).GenerateToken(7, "user@example.com", user.RoleUser)
	require.NoError(t, err)
	return token
}
