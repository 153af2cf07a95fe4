package repository

import (
	"context"

	"scrap-market/internal/domain/user"
	"scrap-market/internal/infra"
	"scrap-market/internal/infra/db"
)

const createUser = `
INSERT INTO users (email, password_hash, full_name, phone, role, is_active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id`

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(db db.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

// Create fails with KindDuplicateKey when the email is already registered.
func (r *UserRepository) Create(ctx context.Context, u *user.User) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, createUser,
		u.Email().Value(), u.PasswordHash(), u.Profile().FullName, u.Profile().Phone,
		u.Role().String(), u.IsActive(), u.CreatedAt(), u.UpdatedAt(),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}
