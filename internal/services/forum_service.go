package services

import (
	"context"
	"strings"
	"time"

	"github.com/renaspress/renaspress-backend/internal/domain/entities"
	"github.com/renaspress/renaspress-backend/internal/domain/errors"
	"github.com/renaspress/renaspress-backend/internal/domain/ports"
	"github.com/renaspress/renaspress-backend/internal/domain/repositories"
)

const defaultTopicCategory = "general"

// ForumService runs the discussion board.
type ForumService struct {
	forumRepo repositories.ForumRepository
	uow       ports.UnitOfWork
	logger    ports.Logger
	now       func() time.Time
}

func NewForumService(forumRepo repositories.ForumRepository, uow ports.UnitOfWork, logger ports.Logger) *ForumService {
	return &ForumService{
		forumRepo: forumRepo,
		uow:       uow,
		logger:    logger,
		now:       clock,
	}
}

type CreateTopicInput struct {
	Title    string
	Content  string
	Category string
	Tags     []string
}

// CreateCommentInput is a reply. AuthorName is only read for anonymous
// callers.
type CreateCommentInput struct {
	TopicID    string
	Content    string
	AuthorName string
	ParentID   string
}

// TopicPage is a topic with one page of its comments.
type TopicPage struct {
	Topic         *entities.ForumTopic
	Comments      []*entities.ForumComment
	TotalComments int64
}

func (s *ForumService) ListTopics(ctx context.Context, filters repositories.TopicFilters) ([]*entities.ForumTopic, int64, error) {
	filters.Search = strings.TrimSpace(filters.Search)
	return s.forumRepo.ListTopics(ctx, filters)
}

func (s *ForumService) CreateTopic(ctx context.Context, actor *entities.User, input CreateTopicInput) (*entities.ForumTopic, error) {
	if actor == nil {
		return nil, errors.ErrNoToken
	}

	category := strings.TrimSpace(input.Category)
	if category == "" {
		category = defaultTopicCategory
	}

	topic := &entities.ForumTopic{
		Title:    strings.TrimSpace(input.Title),
		Content:  strings.TrimSpace(input.Content),
		AuthorID: actor.ID,
		Author:   actor,
		Category: category,
		Tags:     entities.NormalizeTags(input.Tags),
	}
	if err := topic.Validate(); err != nil {
		return nil, domainError(err)
	}

	if err := s.forumRepo.CreateTopic(ctx, topic); err != nil {
		return nil, err
	}

	s.logger.Info("forum topic created", "topic_id", topic.ID, "author_id", actor.ID)
	return topic, nil
}

// GetTopic counts a view and returns the topic with a page of comments,
// oldest first.
func (s *ForumService) GetTopic(ctx context.Context, id string, page, limit int) (*TopicPage, error) {
	topic, err := s.findTopic(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.forumRepo.IncrementTopicViews(ctx, topic.ID); err != nil {
		return nil, err
	}
	topic.Views++

	comments, total, err := s.forumRepo.ListComments(ctx, topic.ID, page, limit)
	if err != nil {
		return nil, err
	}

	return &TopicPage{Topic: topic, Comments: comments, TotalComments: total}, nil
}

func (s *ForumService) findTopic(ctx context.Context, id string) (*entities.ForumTopic, error) {
	topic, err := s.forumRepo.FindTopicByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if topic == nil {
		return nil, errors.ErrTopicNotFound
	}
	return topic, nil
}

// CreateComment adds a reply. Signed-in callers comment under their own
// name; anonymous callers must give one. The comment and the topic's reply
// counter are written in one transaction.
func (s *ForumService) CreateComment(ctx context.Context, actor *entities.User, input CreateCommentInput) (*entities.ForumComment, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, errors.ErrCommentContentRequired
	}

	comment := &entities.ForumComment{
		TopicID: input.TopicID,
		Content: content,
	}
	if actor != nil {
		id := actor.ID
		comment.AuthorID = &id
		comment.AuthorName = actor.Name
	} else {
		comment.AuthorName = strings.TrimSpace(input.AuthorName)
		if comment.AuthorName == "" {
			return nil, errors.ErrAuthorNameRequired
		}
	}

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		topic, err := s.findTopic(txCtx, input.TopicID)
		if err != nil {
			return err
		}
		if !topic.AcceptsComments() {
			return errors.ErrTopicLocked
		}

		if parentID := strings.TrimSpace(input.ParentID); parentID != "" {
			parent, err := s.forumRepo.FindCommentByID(txCtx, parentID)
			if err != nil {
				return err
			}
			if parent == nil || parent.TopicID != topic.ID {
				return errors.ErrParentCommentNotFound
			}
			comment.ParentCommentID = &parent.ID
		}

		if err := s.forumRepo.CreateComment(txCtx, comment); err != nil {
			return err
		}

		return s.forumRepo.RecordReply(txCtx, topic.ID, entities.LastReply{
			AuthorID:   comment.AuthorID,
			AuthorName: comment.AuthorName,
			CreatedAt:  s.now(),
		})
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("forum comment created", "comment_id", comment.ID, "topic_id", comment.TopicID, "anonymous", comment.IsAnonymous())
	return comment, nil
}
