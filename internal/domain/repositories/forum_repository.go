package repositories

import (
	"context"

	"github.com/renaspress/renaspress-backend/internal/domain/entities"
)

// TopicFilters narrows the topic listing.
type TopicFilters struct {
	Category string
	Search   string
	Page     int
	Limit    int
}

// ForumRepository persists topics and comments.
type ForumRepository interface {
	CreateTopic(ctx context.Context, topic *entities.ForumTopic) error
	FindTopicByID(ctx context.Context, id string) (*entities.ForumTopic, error)
	ListTopics(ctx context.Context, filters TopicFilters) ([]*entities.ForumTopic, int64, error)
	IncrementTopicViews(ctx context.Context, id string) error
	// RecordReply bumps the reply counter and moves the last-reply pointer.
	RecordReply(ctx context.Context, topicID string, reply entities.LastReply) error

	CreateComment(ctx context.Context, comment *entities.ForumComment) error
	FindCommentByID(ctx context.Context, id string) (*entities.ForumComment, error)
	// ListComments returns non-deleted comments oldest first.
	ListComments(ctx context.Context, topicID string, page, limit int) ([]*entities.ForumComment, int64, error)
}
