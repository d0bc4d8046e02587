package repositories

import (
	"context"

	"github.com/renaspress/renaspress-backend/internal/domain/entities"
)

// UserRepository persists users. Finders return (nil, nil) when nothing
// matches and never return soft-deleted users.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	FindByID(ctx context.Context, id string) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	FindByProvider(ctx context.Context, provider entities.Provider, providerID string) (*entities.User, error)
	// EmailTaken includes soft-deleted rows, since the unique index does.
	EmailTaken(ctx context.Context, email, excludeID string) (bool, error)
	Update(ctx context.Context, user *entities.User) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filters UserFilters) ([]*entities.User, int64, error)

	AddSavedPost(ctx context.Context, userID, postID string) error
	RemoveSavedPost(ctx context.Context, userID, postID string) error
}

// UserFilters narrows the admin user listing.
type UserFilters struct {
	Role     *entities.Role
	Search   string // matches name or email, case-insensitive
	Page     int    // starts at 1
	PageSize int    // default 10, max 100
}
