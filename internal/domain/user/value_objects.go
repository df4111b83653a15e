package user

import (
	"regexp"
	"strings"

	"hotel-booking/internal/pkg/errs"
)

const MinPasswordLength = 6

var (
	ErrInvalidEmail    = errs.Validation("invalid email format")
	ErrInvalidRole     = errs.Validation("invalid role")
	ErrNameRequired    = errs.Validation("name is required")
	ErrPasswordTooWeak = errs.Validation("password must be at least 6 characters long")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

// NewEmail lower-cases the address so the unique index is case-insensitive in practice.
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
	if len(s) < MinPasswordLength {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Name{}, ErrNameRequired
	}
	return Name{value: s}, nil
}

func (n Name) Value() string {
	return n.value
}
