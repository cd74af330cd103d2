package usecase

import (
	"cape-tours-api/internal/domain/user"
	"cape-tours-api/internal/pkg/jwt"
	"cape-tours-api/internal/usecase/shared"
)

// TokenValidator resolves an access token into the acting caller for middleware.
type TokenValidator interface {
	ValidateToken(tokenString string) (shared.Actor, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (shared.Actor, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return shared.Actor{}, err
	}

	if claims.TokenType != jwt.TokenTypeAccess {
		return shared.Actor{}, jwt.ErrInvalidToken
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return shared.Actor{}, err
	}

	return shared.Actor{
		UserID:   claims.UserID,
		Role:     role,
		DriverID: claims.DriverID,
	}, nil
}
