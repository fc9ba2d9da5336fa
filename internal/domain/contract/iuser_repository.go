package contract

import (
	"context"

	"github.com/stayhub-app/stayhub/internal/domain/entity"
)

type IUserRepository interface {
	CreateUser(ctx context.Context, user *entity.User) error
	GetUserByID(ctx context.Context, id string) (*entity.User, error)
	// GetUserByEmail retrieves a user by email.
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	// ListUsers returns one page of users plus the total user count.
	ListUsers(ctx context.Context, page, pageSize int) ([]*entity.User, int64, error)
	// UpdateUser applies the given field updates and returns the updated user.
	UpdateUser(ctx context.Context, id string, updates map[string]interface{}) (*entity.User, error)
	// UpdateUserPassword updates user's password by ID with the provided hashed password.
	UpdateUserPassword(ctx context.Context, id string, hashedPassword string) error
	// DeleteUser removes a user by ID.
	DeleteUser(ctx context.Context, id string) error
}
