package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/martijn/inkwell/internal/api/dto"
	"github.com/martijn/inkwell/internal/api/middleware"
	"github.com/martijn/inkwell/internal/core/domain"
	"github.com/martijn/inkwell/internal/core/service"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// GetProfile handles GET /api/users/profile
//
//	@Summary	Fetch the current user's profile
//	@Tags		users
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	dto.UserResponse
//	@Failure	401	{object}	dto.ErrorResponse
//	@Router		/api/users/profile [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error:   "Unauthorized",
			Message: "No authenticated user",
			Code:    http.StatusUnauthorized,
		})
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}

// UpdateProfile handles PUT /api/users/profile
//
//	@Summary	Update name and optionally bio
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		dto.UpdateProfileRequest	true	"profile fields"
//	@Success	200		{object}	dto.UserResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Router		/api/users/profile [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error:   "Unauthorized",
			Message: "No authenticated user",
			Code:    http.StatusUnauthorized,
		})
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Bad Request",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
		return
	}

	updated, err := h.userService.UpdateProfile(c.Request.Context(), user, req.Name, req.Bio)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "Internal Server Error",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, toUserResponse(updated))
}

// UpdatePassword handles PUT /api/users/password
//
//	@Summary	Change the current user's password
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		dto.UpdatePasswordRequest	true	"current and new password"
//	@Success	200		{object}	dto.MessageResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Router		/api/users/password [put]
func (h *UserHandler) UpdatePassword(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error:   "Unauthorized",
			Message: "No authenticated user",
			Code:    http.StatusUnauthorized,
		})
		return
	}

	var req dto.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Bad Request",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
		return
	}

	err := h.userService.UpdatePassword(c.Request.Context(), user, req.CurrentPassword, req.NewPassword)
	if err != nil {
		if errors.Is(err, service.ErrIncorrectPassword) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error:   "Bad Request",
				Message: "Current password is incorrect",
				Code:    http.StatusBadRequest,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "Internal Server Error",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Password updated successfully",
	})
}

func toUserResponse(user *domain.User) dto.UserResponse {
	// Projection only: the password hash never leaves the service layer.
	return dto.UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Bio:   user.Bio,
	}
}
