package postgres

import (
	"context"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/renaspress/renaspress-backend/internal/domain/entities"
	domainerrors "github.com/renaspress/renaspress-backend/internal/domain/errors"
	"github.com/renaspress/renaspress-backend/internal/domain/repositories"
)

const (
	defaultTopicPageSize   = 10
	defaultCommentPageSize = 20
)

// ForumRepository implements repositories.ForumRepository.
type ForumRepository struct {
	db *gorm.DB
}

func NewForumRepository(db *gorm.DB) repositories.ForumRepository {
	return &ForumRepository{db: db}
}

func (r *ForumRepository) CreateTopic(ctx context.Context, topic *entities.ForumTopic) error {
	ensureID(&topic.ID)
	model := topicToModel(topic)

	if err := dbFromContext(ctx, r.db).Omit(clause.Associations).Create(model).Error; err != nil {
		return err
	}

	topic.CreatedAt = fromMillis(model.CreatedAt)
	topic.UpdatedAt = fromMillis(model.UpdatedAt)
	return nil
}

func (r *ForumRepository) FindTopicByID(ctx context.Context, id string) (*entities.ForumTopic, error) {
	if !validID(id) {
		return nil, nil
	}

	var model ForumTopicModel
	err := dbFromContext(ctx, r.db).Preload("Author").Where("id = ?", id).First(&model).Error
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	return topicToEntity(&model)
}

func (r *ForumRepository) ListTopics(ctx context.Context, filters repositories.TopicFilters) ([]*entities.ForumTopic, int64, error) {
	query := dbFromContext(ctx, r.db).Model(&ForumTopicModel{})

	if filters.Category != "" && filters.Category != "all" {
		query = query.Where("category = ?", filters.Category)
	}
	if filters.Search != "" {
		query = whereSearch(query, filters.Search, "title", "content")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var models []*ForumTopicModel
	err := query.
		Preload("Author").
		Order("is_pinned DESC").
		Order("CASE WHEN last_reply_at IS NULL THEN 1 ELSE 0 END").
		Order("last_reply_at DESC").
		Order("created_at DESC").
		Scopes(paginate(filters.Page, filters.Limit, defaultTopicPageSize)).
		Find(&models).Error
	if err != nil {
		return nil, 0, err
	}

	topics := make([]*entities.ForumTopic, 0, len(models))
	for _, m := range models {
		topic, err := topicToEntity(m)
		if err != nil {
			return nil, 0, err
		}
		topics = append(topics, topic)
	}
	return topics, total, nil
}

func (r *ForumRepository) IncrementTopicViews(ctx context.Context, id string) error {
	return dbFromContext(ctx, r.db).
		Model(&ForumTopicModel{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
}

func (r *ForumRepository) RecordReply(ctx context.Context, topicID string, reply entities.LastReply) error {
	authorName := reply.AuthorName
	result := dbFromContext(ctx, r.db).
		Model(&ForumTopicModel{}).
		Where("id = ?", topicID).
		UpdateColumns(map[string]any{
			"replies":                gorm.Expr("replies + ?", 1),
			"last_reply_author_id":   reply.AuthorID,
			"last_reply_author_name": &authorName,
			"last_reply_at":          toMillis(reply.CreatedAt),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrTopicNotFound
	}
	return nil
}

func (r *ForumRepository) CreateComment(ctx context.Context, comment *entities.ForumComment) error {
	ensureID(&comment.ID)
	model := commentToModel(comment)

	if err := dbFromContext(ctx, r.db).Create(model).Error; err != nil {
		return err
	}

	comment.CreatedAt = fromMillis(model.CreatedAt)
	comment.UpdatedAt = fromMillis(model.UpdatedAt)
	return nil
}

func (r *ForumRepository) FindCommentByID(ctx context.Context, id string) (*entities.ForumComment, error) {
	if !validID(id) {
		return nil, nil
	}

	var model ForumCommentModel
	err := dbFromContext(ctx, r.db).Where("id = ? AND is_deleted = ?", id, false).First(&model).Error
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	return commentToEntity(&model), nil
}

func (r *ForumRepository) ListComments(ctx context.Context, topicID string, page, limit int) ([]*entities.ForumComment, int64, error) {
	query := dbFromContext(ctx, r.db).
		Model(&ForumCommentModel{}).
		Where("topic_id = ? AND is_deleted = ?", topicID, false)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var models []*ForumCommentModel
	err := query.
		Order("created_at ASC").
		Scopes(paginate(page, limit, defaultCommentPageSize)).
		Find(&models).Error
	if err != nil {
		return nil, 0, err
	}

	comments := make([]*entities.ForumComment, len(models))
	for i, m := range models {
		comments[i] = commentToEntity(m)
	}
	return comments, total, nil
}

func topicToModel(topic *entities.ForumTopic) *ForumTopicModel {
	tags := topic.Tags
	if tags == nil {
		tags = []string{}
	}

	model := &ForumTopicModel{
		ID:        topic.ID,
		Title:     topic.Title,
		Content:   topic.Content,
		AuthorID:  topic.AuthorID,
		Category:  topic.Category,
		Tags:      datatypes.JSONSlice[string](tags),
		IsPinned:  topic.IsPinned,
		IsLocked:  topic.IsLocked,
		Views:     topic.Views,
		Replies:   topic.Replies,
		CreatedAt: toMillis(topic.CreatedAt),
		UpdatedAt: toMillis(topic.UpdatedAt),
	}

	if topic.LastReply != nil {
		name := topic.LastReply.AuthorName
		at := toMillis(topic.LastReply.CreatedAt)
		model.LastReplyAuthorID = topic.LastReply.AuthorID
		model.LastReplyAuthorName = &name
		model.LastReplyAt = &at
	}

	return model
}

func topicToEntity(model *ForumTopicModel) (*entities.ForumTopic, error) {
	topic := &entities.ForumTopic{
		ID:        model.ID,
		Title:     model.Title,
		Content:   model.Content,
		AuthorID:  model.AuthorID,
		Category:  model.Category,
		Tags:      append([]string{}, model.Tags...),
		IsPinned:  model.IsPinned,
		IsLocked:  model.IsLocked,
		Views:     model.Views,
		Replies:   model.Replies,
		CreatedAt: fromMillis(model.CreatedAt),
		UpdatedAt: fromMillis(model.UpdatedAt),
	}

	if model.LastReplyAt != nil {
		reply := &entities.LastReply{
			AuthorID:  model.LastReplyAuthorID,
			CreatedAt: fromMillis(*model.LastReplyAt),
		}
		if model.LastReplyAuthorName != nil {
			reply.AuthorName = *model.LastReplyAuthorName
		}
		topic.LastReply = reply
	}

	if model.Author != nil {
		author, err := userToEntity(model.Author)
		if err != nil {
			return nil, err
		}
		topic.Author = author
	}

	return topic, nil
}

func commentToModel(comment *entities.ForumComment) *ForumCommentModel {
	return &ForumCommentModel{
		ID:              comment.ID,
		TopicID:         comment.TopicID,
		Content:         comment.Content,
		AuthorID:        comment.AuthorID,
		AuthorName:      comment.AuthorName,
		ParentCommentID: comment.ParentCommentID,
		Likes:           comment.Likes,
		IsDeleted:       comment.IsDeleted,
		CreatedAt:       toMillis(comment.CreatedAt),
		UpdatedAt:       toMillis(comment.UpdatedAt),
	}
}

func commentToEntity(model *ForumCommentModel) *entities.ForumComment {
	return &entities.ForumComment{
		ID:              model.ID,
		TopicID:         model.TopicID,
		Content:         model.Content,
		AuthorID:        model.AuthorID,
		AuthorName:      model.AuthorName,
		ParentCommentID: model.ParentCommentID,
		Likes:           model.Likes,
		IsDeleted:       model.IsDeleted,
		CreatedAt:       fromMillis(model.CreatedAt),
		UpdatedAt:       fromMillis(model.UpdatedAt),
	}
}
