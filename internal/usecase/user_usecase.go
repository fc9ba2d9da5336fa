package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/stayhub-app/stayhub/internal/domain/contract"
	"github.com/stayhub-app/stayhub/internal/domain/entity"
	usecasecontract "github.com/stayhub-app/stayhub/internal/usecase/contract"
)

// Constants for common error messages
const (
	errUserNotFound   = "user not found"
	errInternalServer = "internal server error"
)

// DefaultPageSize is the fixed page size for every paginated listing.
const DefaultPageSize = 4

// totalPages returns the number of pages needed for count items.
func totalPages(count int64, pageSize int) int {
	return int((count + int64(pageSize) - 1) / int64(pageSize))
}

// UserUsecase implements the IUserUseCase interface.
type UserUsecase struct {
	userRepo      contract.IUserRepository
	hasher        contract.IHasher
	jwtService    JWTService
	logger        usecasecontract.IAppLogger
	config        usecasecontract.IConfigProvider
	validator     usecasecontract.IValidator
	uuidGenerator contract.IUUIDGenerator
}

// NewUserUsecase creates a new UserUsecase instance.
func NewUserUsecase(
	userRepo contract.IUserRepository,
	hasher contract.IHasher,
	jwtService JWTService,
	logger usecasecontract.IAppLogger,
	cfg usecasecontract.IConfigProvider,
	validator usecasecontract.IValidator,
	uuidGenerator contract.IUUIDGenerator,
) *UserUsecase {
	return &UserUsecase{
		userRepo:      userRepo,
		hasher:        hasher,
		jwtService:    jwtService,
		logger:        logger,
		config:        cfg,
		validator:     validator,
		uuidGenerator: uuidGenerator,
	}
}

// check if UserUsecase implements the IUserUseCase
var _ usecasecontract.IUserUseCase = (*UserUsecase)(nil)

// Register handles user registration and issues the first access token.
func (uc *UserUsecase) Register(ctx context.Context, name, email, password string, avatar *string) (*entity.User, string, error) {
	if name == "" {
		return nil, "", errors.New("name is required")
	}
	if err := uc.validator.ValidateEmail(email); err != nil {
		return nil, "", fmt.Errorf("invalid email format: %w", err)
	}
	if err := uc.validator.ValidatePasswordStrength(password); err != nil {
		return nil, "", fmt.Errorf("weak password: %w", err)
	}

	// Check if a user with the same email already exists
	existing, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil && err.Error() != errUserNotFound {
		uc.logger.Errorf("failed to check for existing user by email: %v", err)
		return nil, "", errors.New(errInternalServer)
	}
	if existing != nil {
		return nil, "", fmt.Errorf("user with email %s already exists", email)
	}

	hashedPassword, err := uc.hasher.HashPassword(password)
	if err != nil {
		uc.logger.Errorf("failed to hash password: %v", err)
		return nil, "", fmt.Errorf("failed to process password")
	}

	user := &entity.User{
		ID:           uc.uuidGenerator.NewUUID(),
		Name:         name,
		Email:        email,
		PasswordHash: hashedPassword,
		Avatar:       avatar,
		IsAdmin:      false,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		uc.logger.Errorf("failed to create user: %v", err)
		return nil, "", fmt.Errorf("failed to register user")
	}

	token, err := uc.jwtService.GenerateAccessToken(user.ID, user.IsAdmin)
	if err != nil {
		uc.logger.Errorf("failed to generate access token: %v", err)
		return nil, "", errors.New("failed to generate token")
	}

	return user, token, nil
}

// Login handles user login and token generation.
func (uc *UserUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	user, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if err.Error() == errUserNotFound {
			return nil, "", errors.New("invalid credentials")
		}
		uc.logger.Errorf("failed to retrieve user for login: %v", err)
		return nil, "", errors.New(errInternalServer)
	}

	if err := uc.hasher.ComparePasswordHash(password, user.PasswordHash); err != nil {
		return nil, "", errors.New("invalid credentials")
	}

	token, err := uc.jwtService.GenerateAccessToken(user.ID, user.IsAdmin)
	if err != nil {
		uc.logger.Errorf("failed to generate access token: %v", err)
		return nil, "", errors.New("failed to generate token")
	}

	return user, token, nil
}

// Authenticate resolves an access token back to its user.
func (uc *UserUsecase) Authenticate(ctx context.Context, accessToken string) (*entity.User, error) {
	claims, err := uc.jwtService.ParseAccessToken(accessToken)
	if err != nil {
		return nil, fmt.Errorf("invalid access token: %w", err)
	}

	user, err := uc.userRepo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		return nil, errors.New(errUserNotFound)
	}
	return user, nil
}

// GetUserByID retrieves a user by their ID.
func (uc *UserUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, errors.New(errUserNotFound)
	}
	return user, nil
}

// UpdateProfile updates the current user's own profile fields and returns a
// fresh token alongside the updated profile.
func (uc *UserUsecase) UpdateProfile(ctx context.Context, userID string, updates map[string]interface{}) (*entity.User, string, error) {
	if email, ok := updates["email"].(string); ok {
		if err := uc.validator.ValidateEmail(email); err != nil {
			return nil, "", fmt.Errorf("invalid email format: %w", err)
		}
	}

	user, err := uc.userRepo.UpdateUser(ctx, userID, updates)
	if err != nil {
		return nil, "", err
	}

	token, err := uc.jwtService.GenerateAccessToken(user.ID, user.IsAdmin)
	if err != nil {
		uc.logger.Errorf("failed to generate access token: %v", err)
		return nil, "", errors.New("failed to generate token")
	}
	return user, token, nil
}

// UpdatePassword replaces the stored credential only after the old password
// verifies against the stored hash.
func (uc *UserUsecase) UpdatePassword(ctx context.Context, userID, oldPassword, newPassword string) (*entity.User, string, error) {
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, "", errors.New(errUserNotFound)
	}

	if err := uc.hasher.ComparePasswordHash(oldPassword, user.PasswordHash); err != nil {
		return nil, "", errors.New("old password incorrect")
	}

	if err := uc.validator.ValidatePasswordStrength(newPassword); err != nil {
		return nil, "", fmt.Errorf("weak password: %w", err)
	}

	hashedPassword, err := uc.hasher.HashPassword(newPassword)
	if err != nil {
		uc.logger.Errorf("failed to hash password: %v", err)
		return nil, "", fmt.Errorf("failed to process password")
	}

	if err := uc.userRepo.UpdateUserPassword(ctx, userID, hashedPassword); err != nil {
		uc.logger.Errorf("failed to update password for user %s: %v", userID, err)
		return nil, "", errors.New(errInternalServer)
	}

	token, err := uc.jwtService.GenerateAccessToken(user.ID, user.IsAdmin)
	if err != nil {
		uc.logger.Errorf("failed to generate access token: %v", err)
		return nil, "", errors.New("failed to generate token")
	}
	return user, token, nil
}

// ListUsers returns one page of users for admin management.
func (uc *UserUsecase) ListUsers(ctx context.Context, page int) ([]entity.User, int64, int, int, error) {
	if page < 1 {
		page = 1
	}

	users, count, err := uc.userRepo.ListUsers(ctx, page, DefaultPageSize)
	if err != nil {
		uc.logger.Errorf("failed to list users: %v", err)
		return nil, 0, 0, 0, errors.New(errInternalServer)
	}

	result := make([]entity.User, 0, len(users))
	for _, u := range users {
		result = append(result, *u)
	}
	return result, count, page, totalPages(count, DefaultPageSize), nil
}

// UpdateUser applies admin edits to any user.
func (uc *UserUsecase) UpdateUser(ctx context.Context, userID string, updates map[string]interface{}) (*entity.User, error) {
	return uc.userRepo.UpdateUser(ctx, userID, updates)
}

// DeleteUser removes a user by ID (admin action).
func (uc *UserUsecase) DeleteUser(ctx context.Context, userID string) error {
	return uc.userRepo.DeleteUser(ctx, userID)
}
