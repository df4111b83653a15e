package usecase

import (
	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/pkg/jwt"
	"hotel-booking/internal/usecase/shared"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (shared.Identity, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (shared.Identity, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return shared.Identity{}, err
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return shared.Identity{}, err
	}

	return shared.Identity{UserID: claims.UserID, Role: role}, nil
}
