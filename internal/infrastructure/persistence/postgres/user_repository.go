package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/renaspress/renaspress-backend/internal/domain/entities"
	"github.com/renaspress/renaspress-backend/internal/domain/repositories"
	"github.com/renaspress/renaspress-backend/internal/domain/valueobjects"
)

const defaultUserPageSize = 10

// UserRepository implements repositories.UserRepository.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	ensureID(&user.ID)
	model := r.toModel(user)

	if err := dbFromContext(ctx, r.db).Create(model).Error; err != nil {
		return err
	}

	user.CreatedAt = fromMillis(model.CreatedAt)
	user.UpdatedAt = fromMillis(model.UpdatedAt)
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	if !validID(id) {
		return nil, nil
	}
	return r.findOne(ctx, "id = ?", id)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.findOne(ctx, "email = ?", email)
}

func (r *UserRepository) FindByProvider(ctx context.Context, provider entities.Provider, providerID string) (*entities.User, error) {
	return r.findOne(ctx, "provider = ? AND provider_id = ?", string(provider), providerID)
}

func (r *UserRepository) findOne(ctx context.Context, query string, args ...any) (*entities.User, error) {
	var model UserModel

	err := dbFromContext(ctx, r.db).
		Where(query, args...).
		Where("deleted_at IS NULL").
		First(&model).Error
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

// EmailTaken counts soft-deleted rows too: the unique index still holds
// their addresses.
func (r *UserRepository) EmailTaken(ctx context.Context, email, excludeID string) (bool, error) {
	var count int64

	q := dbFromContext(ctx, r.db).Model(&UserModel{}).Where("email = ?", email)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepository) Update(ctx context.Context, user *entities.User) error {
	model := r.toModel(user)
	model.UpdatedAt = 0

	if err := dbFromContext(ctx, r.db).Save(model).Error; err != nil {
		return err
	}

	user.UpdatedAt = fromMillis(model.UpdatedAt)
	return nil
}

// Delete is a soft delete; the row keeps its email reserved.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	now := time.Now().UnixMilli()
	return dbFromContext(ctx, r.db).
		Model(&UserModel{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", now).Error
}

func (r *UserRepository) List(ctx context.Context, filters repositories.UserFilters) ([]*entities.User, int64, error) {
	query := dbFromContext(ctx, r.db).Model(&UserModel{}).Where("deleted_at IS NULL")

	if filters.Role != nil {
		query = query.Where("role = ?", string(*filters.Role))
	}
	if filters.Search != "" {
		query = whereSearch(query, filters.Search, "name", "email")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var models []*UserModel
	err := query.
		Order("created_at DESC").
		Scopes(paginate(filters.Page, filters.PageSize, defaultUserPageSize)).
		Find(&models).Error
	if err != nil {
		return nil, 0, err
	}

	users, err := r.toEntities(models)
	return users, total, err
}

func (r *UserRepository) AddSavedPost(ctx context.Context, userID, postID string) error {
	return dbFromContext(ctx, r.db).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&SavedPostModel{UserID: userID, PostID: postID}).Error
}

func (r *UserRepository) RemoveSavedPost(ctx context.Context, userID, postID string) error {
	return dbFromContext(ctx, r.db).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&SavedPostModel{}).Error
}

func (r *UserRepository) toModel(user *entities.User) *UserModel {
	return userToModel(user)
}

func (r *UserRepository) toEntity(model *UserModel) (*entities.User, error) {
	return userToEntity(model)
}

func (r *UserRepository) toEntities(models []*UserModel) ([]*entities.User, error) {
	users := make([]*entities.User, 0, len(models))

	for _, model := range models {
		user, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, nil
}

func userToModel(user *entities.User) *UserModel {
	return &UserModel{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email.String(),
		PasswordHash: user.PasswordHash,
		Role:         string(user.Role),
		IsActive:     user.IsActive,
		Avatar:       user.Avatar,
		Provider:     string(user.Provider),
		ProviderID:   user.ProviderID,
		CreatedAt:    toMillis(user.CreatedAt),
		UpdatedAt:    toMillis(user.UpdatedAt),
		DeletedAt:    toMillisPtr(user.DeletedAt),
	}
}

func userToEntity(model *UserModel) (*entities.User, error) {
	email, err := valueobjects.NewEmail(model.Email)
	if err != nil {
		return nil, err
	}

	return &entities.User{
		ID:           model.ID,
		Name:         model.Name,
		Email:        email,
		PasswordHash: model.PasswordHash,
		Role:         entities.Role(model.Role),
		IsActive:     model.IsActive,
		Avatar:       model.Avatar,
		Provider:     entities.Provider(model.Provider),
		ProviderID:   model.ProviderID,
		CreatedAt:    fromMillis(model.CreatedAt),
		UpdatedAt:    fromMillis(model.UpdatedAt),
		DeletedAt:    fromMillisPtr(model.DeletedAt),
	}, nil
}
