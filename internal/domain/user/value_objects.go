package user

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrInvalidRole     = errors.New("invalid role")
	ErrPasswordTooWeak = errors.New("password must be at least 8 characters long")
	ErrFullNameTooLong = errors.New("full name must be at most 100 characters")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

const (
	minPasswordLength = 8
	maxFullNameLength = 100
)

type Email struct {
	value string
}

// NewEmail lower-cases the address so that lookups are case-insensitive.
func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < minPasswordLength {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

type Profile struct {
	FullName string
	Phone    string
}

func NewProfile(fullName, phone string) (Profile, error) {
	fullName = strings.TrimSpace(fullName)
	if len(fullName) > maxFullNameLength {
		return Profile{}, ErrFullNameTooLong
	}
	return Profile{FullName: fullName, Phone: strings.TrimSpace(phone)}, nil
}
