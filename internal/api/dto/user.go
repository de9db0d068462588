package dto

// UserResponse is the profile projection. The password hash is never
// part of it.
type UserResponse struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Bio   *string `json:"bio,omitempty"`
}

// UpdateProfileRequest represents the partial profile update. A nil Bio
// means the field was not supplied and the stored value is kept.
type UpdateProfileRequest struct {
	Name string  `json:"name" binding:"required"`
	Bio  *string `json:"bio,omitempty"`
}

// UpdatePasswordRequest represents the password change request
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}
