package auth

import (
	"errors"
	"strings"
	"time"

	"scrap-market/internal/domain/user"
)

var (
	ErrEmptyPassword = errors.New("password is required")
)

type Credentials struct {
	email    user.Email
	password string
}

// NewCredentials validates the shape only. Strength rules apply at
// registration, so a short secret at login is just a wrong secret.
func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Credentials{}, err
	}

	if strings.TrimSpace(passwordStr) == "" {
		return Credentials{}, ErrEmptyPassword
	}

	return Credentials{
		email:    email,
		password: passwordStr,
	}, nil
}

func (c Credentials) Email() user.Email {
	return c.email
}

func (c Credentials) Password() string {
	return c.password
}

// Subject is a verified credential as seen by every service.
type Subject struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Role      user.Role `json:"role"`
	FullName  string    `json:"full_name"`
	ExpiresAt time.Time `json:"-"`
}

func (s Subject) IsStaff() bool {
	return s.Role.IsStaff()
}
