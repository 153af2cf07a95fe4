//go:build unit || e2e

package builder

import (
	"time"

	"scrap-market/internal/domain/auth"
	"scrap-market/internal/domain/user"
)

type UserBuilder struct {
	ID           int64
	Email        string
	PasswordHash string
	FullName     string
	Phone        string
	Role         string
	IsActive     bool
	CreatedAt    time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           1,
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		FullName:     "Test User",
		Phone:        "555-0100",
		Role:         "user",
		IsActive:     true,
		CreatedAt:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	profile, err := user.NewProfile(u.FullName, u.Phone)
	if err != nil {
		return nil, err
	}

	return user.Reconstruct(u.ID, email, u.PasswordHash, profile, role, u.IsActive, u.CreatedAt, u.CreatedAt), nil
}

func (u *UserBuilder) BuildSubject(expiresAt time.Time) auth.Subject {
	return auth.Subject{
		ID:        u.ID,
		Email:     u.Email,
		Role:      user.Role(u.Role),
		FullName:  u.FullName,
		ExpiresAt: expiresAt,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithID(id int64) *UserBuilder {
	u.ID = id
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) WithFullName(name string) *UserBuilder {
	u.FullName = name
	return u
}

func (u *UserBuilder) AsDealer() *UserBuilder {
	u.Role = "dealer"
	return u
}

func (u *UserBuilder) AsAdmin() *UserBuilder {
	u.Role = "admin"
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}
