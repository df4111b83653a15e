package auth

import (
	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/pkg/errs"
)

var (
	ErrInvalidCredentials = errs.Unauthorized("Invalid credentials")
	ErrInvalidGoogleToken = errs.Unauthorized("Google login failed")
	// ErrGoogleNotConfigured is a server fault, not a bad token.
	ErrGoogleNotConfigured = errs.New("google sign-in is not configured")
)

type Credentials struct {
	email    user.Email
	password string
}

// NewCredentials keeps the raw password; strength rules apply at registration only.
func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Credentials{}, err
	}
	if passwordStr == "" {
		return Credentials{}, errs.Validation("password is required")
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

type Registration struct {
	name     user.Name
	email    user.Email
	password user.Password
}

func NewRegistration(nameStr, emailStr, passwordStr string) (Registration, error) {
	name, err := user.NewName(nameStr)
	if err != nil {
		return Registration{}, err
	}
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Registration{}, err
	}
	password, err := user.NewPassword(passwordStr)
	if err != nil {
		return Registration{}, err
	}
	return Registration{name: name, email: email, password: password}, nil
}

func (r Registration) Name() user.Name         { return r.name }
func (r Registration) Email() user.Email       { return r.email }
func (r Registration) Password() user.Password { return r.password }

// GoogleProfile is the subset of verified ID token claims the service keeps.
type GoogleProfile struct {
	Subject string
	Email   string
	Name    string
	Picture string
}
