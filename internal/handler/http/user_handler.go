package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/stayhub-app/stayhub/internal/handler/http/dto"
	usecasecontract "github.com/stayhub-app/stayhub/internal/usecase/contract"
)

// UserHandlerInterface defines the methods for user handler to allow interface-based dependency injection (for testing/mocking)
type UserHandlerInterface interface {
	Register(*gin.Context)
	Login(*gin.Context)
	UpdateProfile(*gin.Context)
	UpdatePassword(*gin.Context)
	ListUsers(*gin.Context)
	GetUser(*gin.Context)
	UpdateUser(*gin.Context)
	DeleteUser(*gin.Context)
}

// Ensure UserHandler implements UserHandlerInterface
var _ UserHandlerInterface = (*UserHandler)(nil)

type UserHandler struct {
	userUsecase usecasecontract.IUserUseCase
}

func NewUserHandler(userUsecase usecasecontract.IUserUseCase) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
	}
}

// Register handles user registration and returns the profile plus a token.
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, token, err := h.userUsecase.Register(c.Request.Context(), req.Name, req.Email, req.Password, req.Avatar)
	if err != nil {
		if strings.Contains(err.Error(), "already exists") {
			ErrorHandler(c, http.StatusConflict, err.Error())
			return
		}
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return
	}

	SuccessHandler(c, http.StatusCreated, dto.ToAuthResponse(*user, token))
}

// Login handles user authentication.
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, token, err := h.userUsecase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		ErrorHandler(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	SuccessHandler(c, http.StatusOK, dto.ToAuthResponse(*user, token))
}

// UpdateProfile handles updating the current user's own profile.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req dto.UpdateProfileRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Avatar != nil {
		updates["avatar"] = *req.Avatar
	}

	user, token, err := h.userUsecase.UpdateProfile(c.Request.Context(), userID, updates)
	if err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToAuthResponse(*user, token))
}

// UpdatePassword replaces the caller's credential after verifying the old password.
func (h *UserHandler) UpdatePassword(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req dto.UpdatePasswordRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, token, err := h.userUsecase.UpdatePassword(c.Request.Context(), userID, req.OldPassword, req.NewPassword)
	if err != nil {
		if err.Error() == "old password incorrect" {
			ErrorHandler(c, http.StatusUnauthorized, "Old password incorrect")
			return
		}
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToAuthResponse(*user, token))
}

// ListUsers returns one page of users for admin management.
func (h *UserHandler) ListUsers(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("pageNumber", "1"))
	if err != nil {
		ErrorHandler(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	users, count, currentPage, pages, err := h.userUsecase.ListUsers(c.Request.Context(), page)
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to list users")
		return
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, dto.ToUserResponse(u))
	}

	SuccessHandler(c, http.StatusOK, dto.PaginatedUsersResponse{
		Users: responses,
		Page:  currentPage,
		Pages: pages,
		Count: count,
	})
}

// GetUser handles retrieving a user by ID (admin management).
func (h *UserHandler) GetUser(c *gin.Context) {
	userID := c.Param("id")
	user, err := h.userUsecase.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		ErrorHandler(c, http.StatusNotFound, "User not found")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*user))
}

// UpdateUser applies admin edits to any user.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	userID := c.Param("id")

	var req dto.AdminUpdateUserRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Avatar != nil {
		updates["avatar"] = *req.Avatar
	}
	if req.IsAdmin != nil {
		updates["is_admin"] = *req.IsAdmin
	}

	user, err := h.userUsecase.UpdateUser(c.Request.Context(), userID, updates)
	if err != nil {
		if err.Error() == "user not found" {
			ErrorHandler(c, http.StatusNotFound, "User not found")
			return
		}
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*user))
}

// DeleteUser removes a user by ID (admin action).
func (h *UserHandler) DeleteUser(c *gin.Context) {
	userID := c.Param("id")
	if err := h.userUsecase.DeleteUser(c.Request.Context(), userID); err != nil {
		ErrorHandler(c, http.StatusNotFound, "User not found")
		return
	}
	MessageHandler(c, http.StatusOK, "User deleted")
}
