package readstore

import (
	"context"

	"scrap-market/internal/domain/user"
	"scrap-market/internal/infra"
	"scrap-market/internal/infra/db"
	"scrap-market/internal/infra/repository/converter"
)

const (
	findUserByID    = `SELECT ` + converter.UserColumns + ` FROM users WHERE id = $1`
	findUserByEmail = `SELECT ` + converter.UserColumns + ` FROM users WHERE email = $1`
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(db db.DBTX) *UserReadStore {
	return &UserReadStore{db: db}
}

func (r *UserReadStore) FindByID(ctx context.Context, id int64) (*user.User, error) {
	return r.findOne(ctx, "failed to find user by ID", findUserByID, id)
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.findOne(ctx, "failed to find user by email", findUserByEmail, email)
}

func (r *UserReadStore) findOne(ctx context.Context, msg, query string, arg any) (*user.User, error) {
	row, err := converter.ScanUser(r.db.QueryRow(ctx, query, arg))
	if err != nil {
		return nil, infra.WrapRepoErr(msg, err)
	}
	u, err := row.ToDomain()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode user", err, infra.KindDBFailure)
	}
	return u, nil
}
