package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/martijn/inkwell/internal/core/domain"
	"github.com/martijn/inkwell/internal/core/repository"
)

type blogRepository struct {
	db *DB
}

func NewBlogRepository(db *DB) repository.BlogRepository {
	return &blogRepository{db: db}
}

func (r *blogRepository) Create(ctx context.Context, blog *domain.Blog) error {
	query := `
		INSERT INTO blogs (user_id, title, content, published, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	result, err := r.db.ExecContext(ctx, query,
		blog.UserID,
		blog.Title,
		blog.Content,
		blog.Published,
		blog.CreatedAt,
		blog.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create blog: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}
	blog.ID = id

	return nil
}

func (r *blogRepository) FindByID(ctx context.Context, id int64) (*domain.Blog, error) {
	query := `
		SELECT id, user_id, title, content, published, created_at, updated_at
		FROM blogs
		WHERE id = ?
	`
	var blog domain.Blog
	err := r.db.GetContext(ctx, &blog, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find blog: %w", err)
	}
	return &blog, nil
}

func (r *blogRepository) Update(ctx context.Context, blog *domain.Blog) error {
	query := `
		UPDATE blogs
		SET title = ?, content = ?, published = ?, updated_at = ?
		WHERE id = ?
	`
	result, err := r.db.ExecContext(ctx, query,
		blog.Title,
		blog.Content,
		blog.Published,
		blog.UpdatedAt,
		blog.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update blog: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		// A concurrent delete wins; the caller sees not found.
		return repository.ErrNotFound
	}

	return nil
}

func (r *blogRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM blogs WHERE id = ?`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete blog: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *blogRepository) FindByOwner(ctx context.Context, userID int64, limit int) ([]*domain.Blog, error) {
	query := `
		SELECT id, user_id, title, content, published, created_at, updated_at
		FROM blogs
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
	`
	args := []interface{}{userID}

	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	var blogs []*domain.Blog
	err := r.db.SelectContext(ctx, &blogs, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list blogs: %w", err)
	}
	return blogs, nil
}

// StatsByOwner computes all counts in a single aggregate query so the
// totals always add up.
func (r *blogRepository) StatsByOwner(ctx context.Context, userID int64) (*repository.BlogStats, error) {
	query := `
		SELECT
			COUNT(*) AS total,
			COALESCE(SUM(published), 0) AS published,
			COUNT(*) - COALESCE(SUM(published), 0) AS drafts
		FROM blogs
		WHERE user_id = ?
	`
	var stats repository.BlogStats
	if err := r.db.GetContext(ctx, &stats, query, userID); err != nil {
		return nil, fmt.Errorf("failed to count blogs: %w", err)
	}
	return &stats, nil
}
