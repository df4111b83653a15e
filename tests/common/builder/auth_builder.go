//go:build unit || e2e

package builder

import (
	"hotel-booking/internal/domain/user"
	reqdto "hotel-booking/internal/handler/dto/request"
	"hotel-booking/internal/usecase/commands"
)

type AuthBuilder struct {
	Name     string
	Email    string
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Name:     "Test Guest",
		Email:    "guest@example.com",
		Password: "password123",
	}
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Name:     a.Name,
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildRegisterInput() commands.RegisterInput {
	return commands.RegisterInput{
		Name:     a.Name,
		Email:    a.Email,
		Password: a.Password,
	}
}

// BuildResult is what the auth commands return for the given user.
func (a *AuthBuilder) BuildResult(userID, token string, role user.Role) *commands.AuthResult {
	return &commands.AuthResult{
		Token:  token,
		UserID: userID,
		Role:   role,
		Name:   a.Name,
		Email:  a.Email,
	}
}
