package usecasecontract

import (
	"context"

	"github.com/stayhub-app/stayhub/internal/domain/entity"
)

// IUserUseCase defines the interface for user-related operations.
type IUserUseCase interface {
	Register(ctx context.Context, name, email, password string, avatar *string) (*entity.User, string, error)
	Login(ctx context.Context, email, password string) (*entity.User, string, error)
	Authenticate(ctx context.Context, accessToken string) (*entity.User, error)
	GetUserByID(ctx context.Context, userID string) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID string, updates map[string]interface{}) (*entity.User, string, error)
	UpdatePassword(ctx context.Context, userID, oldPassword, newPassword string) (*entity.User, string, error)
	ListUsers(ctx context.Context, page int) (users []entity.User, totalCount int64, currentPage int, totalPages int, err error)
	UpdateUser(ctx context.Context, userID string, updates map[string]interface{}) (*entity.User, error)
	DeleteUser(ctx context.Context, userID string) error
}
