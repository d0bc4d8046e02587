package postgres

import (
	"context"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/renaspress/renaspress-backend/internal/domain/entities"
	domainerrors "github.com/renaspress/renaspress-backend/internal/domain/errors"
	"github.com/renaspress/renaspress-backend/internal/domain/repositories"
)

const defaultPostPageSize = 10

// Columns written by Update. Counters are left out so an edit never
// overwrites likes or views recorded in the meantime.
var postUpdateColumns = []string{
	"title", "content", "excerpt", "slug", "status", "category", "tags",
	"featured_image", "media", "published_at", "original_language", "updated_at",
}

// PostRepository implements repositories.PostRepository.
type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) repositories.PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Create(ctx context.Context, post *entities.Post) error {
	ensureID(&post.ID)
	model := postToModel(post)

	if err := dbFromContext(ctx, r.db).Omit(clause.Associations).Create(model).Error; err != nil {
		return err
	}

	post.CreatedAt = fromMillis(model.CreatedAt)
	post.UpdatedAt = fromMillis(model.UpdatedAt)
	return nil
}

func (r *PostRepository) FindByID(ctx context.Context, id string) (*entities.Post, error) {
	if !validID(id) {
		return nil, nil
	}

	var model PostModel
	err := dbFromContext(ctx, r.db).
		Preload("Author").
		Preload("Translations").
		Where("id = ?", id).
		First(&model).Error
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	return postToEntity(&model)
}

func (r *PostRepository) ExistsBySlugOrTitle(ctx context.Context, slug, title string) (bool, error) {
	var count int64
	err := dbFromContext(ctx, r.db).
		Model(&PostModel{}).
		Where("slug = ? OR title = ?", slug, title).
		Count(&count).Error
	return count > 0, err
}

func (r *PostRepository) Update(ctx context.Context, post *entities.Post) error {
	model := postToModel(post)
	model.UpdatedAt = time.Now().UnixMilli()

	result := dbFromContext(ctx, r.db).
		Model(model).
		Select(postUpdateColumns).
		Updates(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrPostNotFound
	}

	post.UpdatedAt = fromMillis(model.UpdatedAt)
	return nil
}

func (r *PostRepository) Delete(ctx context.Context, id string) error {
	return dbFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&PostTranslationModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&SavedPostModel{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&PostModel{}).Error
	})
}

func (r *PostRepository) List(ctx context.Context, filters repositories.PostFilters) ([]*entities.Post, int64, error) {
	query := dbFromContext(ctx, r.db).Model(&PostModel{})

	if len(filters.Statuses) > 0 {
		statuses := make([]string, len(filters.Statuses))
		for i, s := range filters.Statuses {
			statuses[i] = string(s)
		}
		query = query.Where("status IN ?", statuses)
	}
	if filters.Category != "" {
		query = query.Where("category = ?", string(filters.Category))
	}
	if filters.Slug != "" {
		query = query.Where("slug = ?", filters.Slug)
	}
	if filters.AuthorID != "" {
		query = query.Where("author_id = ?", filters.AuthorID)
	}
	if filters.Search != "" {
		query = whereSearch(query, filters.Search, "title", "content", "CAST(tags AS TEXT)")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	switch filters.Sort {
	case repositories.SortByCreated:
		query = query.Order("created_at DESC")
	default:
		// Unpublished posts (no publishedAt) sort after published ones.
		query = query.
			Order("CASE WHEN published_at IS NULL THEN 1 ELSE 0 END").
			Order("published_at DESC").
			Order("created_at DESC")
	}

	var models []*PostModel
	err := query.
		Preload("Author").
		Preload("Translations").
		Scopes(paginate(filters.Page, filters.PerPage, defaultPostPageSize)).
		Find(&models).Error
	if err != nil {
		return nil, 0, err
	}

	posts, err := postsToEntities(models)
	return posts, total, err
}

func (r *PostRepository) IncrementViews(ctx context.Context, id string) error {
	return dbFromContext(ctx, r.db).
		Model(&PostModel{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
}

func (r *PostRepository) AdjustLikes(ctx context.Context, id string, delta int) (int, error) {
	expr := gorm.Expr("likes + ?", delta)
	if delta < 0 {
		expr = gorm.Expr("CASE WHEN likes + ? > 0 THEN likes + ? ELSE 0 END", delta, delta)
	}

	db := dbFromContext(ctx, r.db)
	result := db.Model(&PostModel{}).Where("id = ?", id).UpdateColumn("likes", expr)
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, domainerrors.ErrPostNotFound
	}

	var likes int
	if err := db.Model(&PostModel{}).Where("id = ?", id).Pluck("likes", &likes).Error; err != nil {
		return 0, err
	}
	return likes, nil
}

func (r *PostRepository) PublishMany(ctx context.Context, ids []string, now time.Time) (int64, error) {
	valid := make([]string, 0, len(ids))
	for _, id := range ids {
		if validID(id) {
			valid = append(valid, id)
		}
	}
	if len(valid) == 0 {
		return 0, nil
	}

	nowMs := now.UnixMilli()
	result := dbFromContext(ctx, r.db).
		Model(&PostModel{}).
		Where("id IN ? AND status IN ?", valid, []string{string(entities.StatusDraft), string(entities.StatusPending)}).
		UpdateColumns(map[string]any{
			"status":       string(entities.StatusPublished),
			"published_at": gorm.Expr("COALESCE(published_at, ?)", nowMs),
			"updated_at":   nowMs,
		})

	return result.RowsAffected, result.Error
}

func (r *PostRepository) SaveTranslation(ctx context.Context, postID string, lang entities.Language, t entities.Translation) error {
	model := &PostTranslationModel{
		PostID:       postID,
		Language:     string(lang),
		Title:        t.Title,
		Content:      t.Content,
		Excerpt:      t.Excerpt,
		TranslatedAt: toMillis(t.TranslatedAt),
	}

	return dbFromContext(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "post_id"}, {Name: "language"}},
			DoUpdates: clause.AssignmentColumns([]string{"title", "content", "excerpt", "translated_at"}),
		}).
		Create(model).Error
}

func (r *PostRepository) CountByAuthor(ctx context.Context, authorID string) (int64, error) {
	var count int64
	err := dbFromContext(ctx, r.db).
		Model(&PostModel{}).
		Where("author_id = ?", authorID).
		Count(&count).Error
	return count, err
}

func (r *PostRepository) DeleteByAuthor(ctx context.Context, authorID string) error {
	return dbFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		owned := tx.Model(&PostModel{}).Select("id").Where("author_id = ?", authorID)

		if err := tx.Where("post_id IN (?)", owned).Delete(&PostTranslationModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id IN (?)", owned).Delete(&SavedPostModel{}).Error; err != nil {
			return err
		}
		return tx.Where("author_id = ?", authorID).Delete(&PostModel{}).Error
	})
}

func (r *PostRepository) ListSavedBy(ctx context.Context, userID string) ([]*entities.Post, error) {
	var models []*PostModel
	err := dbFromContext(ctx, r.db).
		Joins("JOIN user_saved_posts ON user_saved_posts.post_id = posts.id").
		Where("user_saved_posts.user_id = ?", userID).
		Order("user_saved_posts.created_at DESC").
		Preload("Author").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return postsToEntities(models)
}

func postToModel(post *entities.Post) *PostModel {
	tags := post.Tags
	if tags == nil {
		tags = []string{}
	}

	media := make([]MediaItemModel, len(post.Media))
	for i, m := range post.Media {
		media[i] = MediaItemModel{
			Type:        string(m.Type),
			URL:         m.URL,
			Title:       m.Title,
			Description: m.Description,
		}
	}

	return &PostModel{
		ID:               post.ID,
		Title:            post.Title,
		Content:          post.Content,
		Excerpt:          post.Excerpt,
		Slug:             post.Slug,
		Status:           string(post.Status),
		AuthorID:         post.AuthorID,
		Category:         string(post.Category),
		Tags:             datatypes.JSONSlice[string](tags),
		FeaturedImage:    post.FeaturedImage,
		Media:            datatypes.JSONSlice[MediaItemModel](media),
		Views:            post.Views,
		Likes:            post.Likes,
		PublishedAt:      toMillisPtr(post.PublishedAt),
		OriginalLanguage: string(post.OriginalLanguage),
		CreatedAt:        toMillis(post.CreatedAt),
		UpdatedAt:        toMillis(post.UpdatedAt),
	}
}

func postToEntity(model *PostModel) (*entities.Post, error) {
	media := make([]entities.MediaItem, len(model.Media))
	for i, m := range model.Media {
		media[i] = entities.MediaItem{
			Type:        entities.MediaType(m.Type),
			URL:         m.URL,
			Title:       m.Title,
			Description: m.Description,
		}
	}

	translations := make(map[entities.Language]entities.Translation, len(model.Translations))
	for _, t := range model.Translations {
		translations[entities.Language(t.Language)] = entities.Translation{
			Title:        t.Title,
			Content:      t.Content,
			Excerpt:      t.Excerpt,
			TranslatedAt: fromMillis(t.TranslatedAt),
		}
	}

	post := &entities.Post{
		ID:               model.ID,
		Title:            model.Title,
		Content:          model.Content,
		Excerpt:          model.Excerpt,
		Slug:             model.Slug,
		Status:           entities.PostStatus(model.Status),
		AuthorID:         model.AuthorID,
		Category:         entities.Category(model.Category),
		Tags:             append([]string{}, model.Tags...),
		FeaturedImage:    model.FeaturedImage,
		Media:            media,
		Views:            model.Views,
		Likes:            model.Likes,
		PublishedAt:      fromMillisPtr(model.PublishedAt),
		OriginalLanguage: entities.Language(model.OriginalLanguage),
		Translations:     translations,
		CreatedAt:        fromMillis(model.CreatedAt),
		UpdatedAt:        fromMillis(model.UpdatedAt),
	}

	if model.Author != nil {
		author, err := userToEntity(model.Author)
		if err != nil {
			return nil, err
		}
		post.Author = author
	}

	return post, nil
}

func postsToEntities(models []*PostModel) ([]*entities.Post, error) {
	posts := make([]*entities.Post, 0, len(models))
	for _, model := range models {
		post, err := postToEntity(model)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}
