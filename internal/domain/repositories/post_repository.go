package repositories

import (
	"context"
	"time"

	"github.com/renaspress/renaspress-backend/internal/domain/entities"
)

// PostSort orders post listings.
type PostSort int

const (
	// SortByPublished orders by publishedAt desc, then createdAt desc.
	SortByPublished PostSort = iota
	// SortByCreated orders by createdAt desc.
	SortByCreated
)

// PostFilters narrows post listings. Empty fields do not filter.
type PostFilters struct {
	Statuses []entities.PostStatus
	Category entities.Category
	Search   string // title, content or tags, case-insensitive
	Slug     string
	AuthorID string
	Sort     PostSort
	Page     int
	PerPage  int
}

// PostRepository persists posts, their translations and saved references.
type PostRepository interface {
	Create(ctx context.Context, post *entities.Post) error
	FindByID(ctx context.Context, id string) (*entities.Post, error)
	ExistsBySlugOrTitle(ctx context.Context, slug, title string) (bool, error)
	Update(ctx context.Context, post *entities.Post) error
	// Delete removes the post with its translations and saved references.
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filters PostFilters) ([]*entities.Post, int64, error)

	IncrementViews(ctx context.Context, id string) error
	// AdjustLikes adds delta to the like counter, never going below zero,
	// and returns the stored value.
	AdjustLikes(ctx context.Context, id string, delta int) (int, error)
	// PublishMany publishes every listed draft or pending post and returns
	// how many rows changed. publishedAt is only filled when empty.
	PublishMany(ctx context.Context, ids []string, now time.Time) (int64, error)

	SaveTranslation(ctx context.Context, postID string, lang entities.Language, t entities.Translation) error

	CountByAuthor(ctx context.Context, authorID string) (int64, error)
	DeleteByAuthor(ctx context.Context, authorID string) error

	ListSavedBy(ctx context.Context, userID string) ([]*entities.Post, error)
}
