package service

import "errors"

// Typed outcomes surfaced by the use-case services. The API layer maps
// each one deterministically to a status code; NotFound and Forbidden
// are deliberately distinct so "not yours" is never reported as
// "doesn't exist".
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrBlogNotFound       = errors.New("blog not found")
	ErrForbidden          = errors.New("blog belongs to another user")
	ErrEmailTaken         = errors.New("email is already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrIncorrectPassword  = errors.New("current password is incorrect")
)
