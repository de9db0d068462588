package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/martijn/inkwell/internal/api/dto"
	"github.com/martijn/inkwell/internal/core/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login handles POST /api/auth/login
//
//	@Summary	Log in with email and password
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.LoginRequest	true	"credentials"
//	@Success	200		{object}	dto.LoginResponse
//	@Failure	401		{object}	dto.ErrorResponse
//	@Router		/api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Bad Request",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
		return
	}

	token, user, err := h.authService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// Same response whether the email is unknown or the password
		// is wrong.
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error:   "Unauthorized",
			Message: "Invalid email or password",
			Code:    http.StatusUnauthorized,
		})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token: token,
		User:  toUserResponse(user),
	})
}

// Signup handles POST /api/auth/signup
//
//	@Summary	Register a new account
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.SignupRequest	true	"new account"
//	@Success	201		{object}	dto.MessageResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Router		/api/auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Bad Request",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
		return
	}

	if _, err := h.authService.Register(c.Request.Context(), req.Name, req.Email, req.Password); err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error:   "Bad Request",
				Message: "Email is already taken",
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

	c.JSON(http.StatusCreated, dto.MessageResponse{
		Message: "User registered successfully",
	})
}
