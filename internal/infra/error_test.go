//go:build unit

package infra_test

import (
	"errors"
	"fmt"
	"testing"

	"scrap-market/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want infra.RepositoryErrorKind
	}{
		{name: "no rows", err: pgx.ErrNoRows, want: infra.KindNotFound},
		{name: "wrapped no rows", err: fmt.Errorf("scan: %w", pgx.ErrNoRows), want: infra.KindNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505", ConstraintName: "uq_request_assignments_request"}, want: infra.KindDuplicateKey},
		{name: "foreign key", err: &pgconn.PgError{Code: "23503"}, want: infra.KindForeignKeyViolated},
		{name: "anything else", err: errors.New("connection reset"), want: infra.KindDBFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := infra.WrapRepoErr("op", tt.err)
			assert.True(t, infra.IsKind(err, tt.want))
			assert.ErrorIs(t, err, tt.err)
		})
	}

	t.Run("explicit kind wins", func(t *testing.T) {
		err := infra.WrapRepoErr("op", errors.New("x"), infra.KindNotFound)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("constraint name", func(t *testing.T) {
		err := infra.WrapRepoErr("op", &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})
		assert.Equal(t, "users_email_key", infra.ConstraintName(err))
	})
}
