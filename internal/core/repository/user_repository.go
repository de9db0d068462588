package repository

import (
	"context"

	"github.com/martijn/inkwell/internal/core/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, user *domain.User) error

	// Delete removes the user and all blogs they own within a single
	// transaction.
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*domain.User, error)
}
