package dto

// LoginRequest represents the login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the bearer token and the profile projection
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// SignupRequest represents the signup request
type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// MessageResponse is a plain confirmation body
type MessageResponse struct {
	Message string `json:"message"`
}
