package repository

import (
	"context"

	"github.com/martijn/inkwell/internal/core/domain"
)

// BlogStats aggregates per-owner post counts. All three values come from
// one query so they can never drift apart.
type BlogStats struct {
	Total     int64 `db:"total"`
	Published int64 `db:"published"`
	Drafts    int64 `db:"drafts"`
}

type BlogRepository interface {
	Create(ctx context.Context, blog *domain.Blog) error
	FindByID(ctx context.Context, id int64) (*domain.Blog, error)
	Update(ctx context.Context, blog *domain.Blog) error
	Delete(ctx context.Context, id int64) error

	// FindByOwner returns all blogs owned by userID, newest first.
	// A limit of 0 means no limit.
	FindByOwner(ctx context.Context, userID int64, limit int) ([]*domain.Blog, error)
	StatsByOwner(ctx context.Context, userID int64) (*BlogStats, error)
}
