package user

import (
	"time"
)

// User is the Identity Authority's subject record.
type User struct {
	id           int64
	email        Email
	passwordHash string
	profile      Profile
	role         Role
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(email Email, passwordHash string, profile Profile, role Role, now time.Time) *User {
	return &User{
		email:        email,
		passwordHash: passwordHash,
		profile:      profile,
		role:         role,
		isActive:     true,
		createdAt:    now,
		updatedAt:    now,
	}
}

// Reconstruct rebuilds a persisted user without re-validating it.
func Reconstruct(id int64, email Email, passwordHash string, profile Profile, role Role, isActive bool, createdAt, updatedAt time.Time) *User {
	return &User{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		profile:      profile,
		role:         role,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) AssignID(id int64) { u.id = id }

func (u *User) ID() int64            { return u.id }
func (u *User) Email() Email         { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Profile() Profile     { return u.profile }
func (u *User) Role() Role           { return u.role }
func (u *User) IsActive() bool       { return u.isActive }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }
