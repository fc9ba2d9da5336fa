package usecase

import (
	"github.com/stayhub-app/stayhub/internal/domain/entity"
)

// JWTService defines the interface for JWT operations.
type JWTService interface {
	GenerateAccessToken(userID string, isAdmin bool) (string, error)
	ParseAccessToken(token string) (*entity.Claims, error)
}
