package domain

import "time"

type Blog struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	Title     string    `db:"title"`
	Content   string    `db:"content"`
	Published bool      `db:"published"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func NewBlog(userID int64, title, content string, published bool) *Blog {
	now := time.Now()
	return &Blog{
		UserID:    userID,
		Title:     title,
		Content:   content,
		Published: published,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// OwnedBy reports whether the blog belongs to the given user.
// The owner never changes after creation.
func (b *Blog) OwnedBy(userID int64) bool {
	return b.UserID == userID
}

// Overwrite replaces all client-editable fields and refreshes the
// update timestamp. CreatedAt is left untouched.
func (b *Blog) Overwrite(title, content string, published bool) {
	b.Title = title
	b.Content = content
	b.Published = published
	b.UpdatedAt = time.Now()
}
