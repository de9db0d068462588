package service

import (
	"context"
	"fmt"
	"time"

	"github.com/martijn/inkwell/internal/core/domain"
	"github.com/martijn/inkwell/internal/core/repository"
)

type UserService struct {
	userRepo repository.UserRepository
	auth     *AuthService
}

func NewUserService(userRepo repository.UserRepository, auth *AuthService) *UserService {
	return &UserService{
		userRepo: userRepo,
		auth:     auth,
	}
}

// UpdateProfile applies a partial update: the name is always replaced,
// the bio only when the client supplied the field. Email and password
// are never touched through this path.
func (s *UserService) UpdateProfile(ctx context.Context, user *domain.User, name string, bio *string) (*domain.User, error) {
	user.Name = name
	if bio != nil {
		user.Bio = bio
	}
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return user, nil
}

// UpdatePassword re-hashes and stores the new password after verifying
// the current one. On mismatch nothing is written.
func (s *UserService) UpdatePassword(ctx context.Context, user *domain.User, currentPassword, newPassword string) error {
	if !s.auth.VerifyPassword(currentPassword, user.Password) {
		return ErrIncorrectPassword
	}

	hash, err := s.auth.HashPassword(newPassword)
	if err != nil {
		return err
	}

	user.Password = hash
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}
