package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/martijn/inkwell/internal/core/domain"
	"github.com/martijn/inkwell/internal/core/repository"
)

// RecentBlogLimit caps the dashboard's recent-posts listing.
const RecentBlogLimit = 5

type BlogService struct {
	blogRepo repository.BlogRepository
}

func NewBlogService(blogRepo repository.BlogRepository) *BlogService {
	return &BlogService{
		blogRepo: blogRepo,
	}
}

// List returns all blogs owned by the user, newest first.
func (s *BlogService) List(ctx context.Context, user *domain.User) ([]*domain.Blog, error) {
	blogs, err := s.blogRepo.FindByOwner(ctx, user.ID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list blogs: %w", err)
	}
	return blogs, nil
}

// ListRecent returns the user's newest blogs, capped at RecentBlogLimit.
func (s *BlogService) ListRecent(ctx context.Context, user *domain.User) ([]*domain.Blog, error) {
	blogs, err := s.blogRepo.FindByOwner(ctx, user.ID, RecentBlogLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent blogs: %w", err)
	}
	return blogs, nil
}

// Stats returns the user's post counts.
func (s *BlogService) Stats(ctx context.Context, user *domain.User) (*repository.BlogStats, error) {
	stats, err := s.blogRepo.StatsByOwner(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load blog stats: %w", err)
	}
	return stats, nil
}

// GetByID loads a blog and checks ownership. A blog owned by someone
// else yields ErrForbidden, never its content.
func (s *BlogService) GetByID(ctx context.Context, user *domain.User, id int64) (*domain.Blog, error) {
	return s.loadOwned(ctx, user, id)
}

// Create stores a new blog owned by the user. Both timestamps are
// server-assigned.
func (s *BlogService) Create(ctx context.Context, user *domain.User, title, content string, published bool) (*domain.Blog, error) {
	blog := domain.NewBlog(user.ID, title, content, published)
	if err := s.blogRepo.Create(ctx, blog); err != nil {
		return nil, fmt.Errorf("failed to create blog: %w", err)
	}
	return blog, nil
}

// Update overwrites title, content and published on an owned blog.
// Unlike profile updates this is a full replace, matching the editor's
// submit-the-whole-form behavior.
func (s *BlogService) Update(ctx context.Context, user *domain.User, id int64, title, content string, published bool) (*domain.Blog, error) {
	blog, err := s.loadOwned(ctx, user, id)
	if err != nil {
		return nil, err
	}

	blog.Overwrite(title, content, published)

	if err := s.blogRepo.Update(ctx, blog); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBlogNotFound
		}
		return nil, fmt.Errorf("failed to update blog: %w", err)
	}

	return blog, nil
}

// Delete removes an owned blog.
func (s *BlogService) Delete(ctx context.Context, user *domain.User, id int64) error {
	blog, err := s.loadOwned(ctx, user, id)
	if err != nil {
		return err
	}

	if err := s.blogRepo.Delete(ctx, blog.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrBlogNotFound
		}
		return fmt.Errorf("failed to delete blog: %w", err)
	}

	return nil
}

// loadOwned fetches a blog and applies the ownership policy: not found
// is checked before authorization.
func (s *BlogService) loadOwned(ctx context.Context, user *domain.User, id int64) (*domain.Blog, error) {
	blog, err := s.blogRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBlogNotFound
		}
		return nil, fmt.Errorf("failed to find blog: %w", err)
	}

	if !blog.OwnedBy(user.ID) {
		return nil, ErrForbidden
	}

	return blog, nil
}
