package converter

import (
	"scrap-market/internal/domain/user"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const UserColumns = `id, email, password_hash, full_name, phone, role, is_active, created_at, updated_at`

type UserRow struct {
	ID           int64
	Email        string
	PasswordHash string
	FullName     string
	Phone        string
	Role         string
	IsActive     bool
	CreatedAt    pgtype.Timestamptz
	UpdatedAt    pgtype.Timestamptz
}

func ScanUser(row pgx.Row) (UserRow, error) {
	var r UserRow
	err := row.Scan(&r.ID, &r.Email, &r.PasswordHash, &r.FullName, &r.Phone, &r.Role, &r.IsActive, &r.CreatedAt, &r.UpdatedAt)
	return r, err
}

// ToDomain trusts the stored email and role; both were validated on write.
func (r UserRow) ToDomain() (*user.User, error) {
	email, err := user.NewEmail(r.Email)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(r.Role)
	if err != nil {
		return nil, err
	}
	profile := user.Profile{FullName: r.FullName, Phone: r.Phone}
	return user.Reconstruct(r.ID, email, r.PasswordHash, profile, role, r.IsActive, r.CreatedAt.Time, r.UpdatedAt.Time), nil
}
