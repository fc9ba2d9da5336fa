package mocks

import (
	"context"
	"errors"

	"github.com/stayhub-app/stayhub/internal/domain/entity"
	usecasecontract "github.com/stayhub-app/stayhub/internal/usecase/contract"
)

// MockUserUsecase is a mock implementation of the IUserUseCase interface
type MockUserUsecase struct {
	// Control mock behavior
	ShouldFailRegister       bool
	RegisterConflict         bool
	ShouldFailLogin          bool
	ShouldFailAuthenticate   bool
	ShouldFailGetByID        bool
	ShouldFailUpdateProfile  bool
	ShouldFailUpdatePassword bool
	WrongOldPassword         bool
	ShouldFailListUsers      bool
	ShouldFailUpdateUser     bool
	UpdateUserNotFound       bool
	ShouldFailDeleteUser     bool

	// Return values
	MockUser   entity.User
	MockToken  string
	MockUsers  []entity.User
	MockCount  int64
	MockPage   int
	MockPages  int
}

// Ensure MockUserUsecase implements the correct interface for handler.NewUserHandler
var _ usecasecontract.IUserUseCase = (*MockUserUsecase)(nil)

func NewMockUserUsecase() *MockUserUsecase {
	return &MockUserUsecase{
		MockUser: entity.User{
			ID:    "mock-user-id",
			Name:  "Test User",
			Email: "test@example.com",
		},
		MockToken: "mock_access_token",
		MockPage:  1,
		MockPages: 1,
	}
}

func (m *MockUserUsecase) Register(ctx context.Context, name, email, password string, avatar *string) (*entity.User, string, error) {
	if m.RegisterConflict {
		return nil, "", errors.New("user with this email already exists")
	}
	if m.ShouldFailRegister {
		return nil, "", errors.New("registration failed")
	}
	return &m.MockUser, m.MockToken, nil
}

func (m *MockUserUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	if m.ShouldFailLogin {
		return nil, "", errors.New("invalid email or password")
	}
	return &m.MockUser, m.MockToken, nil
}

func (m *MockUserUsecase) Authenticate(ctx context.Context, accessToken string) (*entity.User, error) {
	if m.ShouldFailAuthenticate {
		return nil, errors.New("invalid or expired token")
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	if m.ShouldFailGetByID {
		return nil, errors.New("user not found")
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) UpdateProfile(ctx context.Context, userID string, updates map[string]interface{}) (*entity.User, string, error) {
	if m.ShouldFailUpdateProfile {
		return nil, "", errors.New("update profile failed")
	}
	return &m.MockUser, m.MockToken, nil
}

func (m *MockUserUsecase) UpdatePassword(ctx context.Context, userID, oldPassword, newPassword string) (*entity.User, string, error) {
	if m.WrongOldPassword {
		return nil, "", errors.New("old password incorrect")
	}
	if m.ShouldFailUpdatePassword {
		return nil, "", errors.New("update password failed")
	}
	return &m.MockUser, m.MockToken, nil
}

func (m *MockUserUsecase) ListUsers(ctx context.Context, page int) ([]entity.User, int64, int, int, error) {
	if m.ShouldFailListUsers {
		return nil, 0, 0, 0, errors.New("list users failed")
	}
	return m.MockUsers, m.MockCount, m.MockPage, m.MockPages, nil
}

func (m *MockUserUsecase) UpdateUser(ctx context.Context, userID string, updates map[string]interface{}) (*entity.User, error) {
	if m.UpdateUserNotFound {
		return nil, errors.New("user not found")
	}
	if m.ShouldFailUpdateUser {
		return nil, errors.New("update user failed")
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) DeleteUser(ctx context.Context, userID string) error {
	if m.ShouldFailDeleteUser {
		return errors.New("user not found")
	}
	return nil
}
