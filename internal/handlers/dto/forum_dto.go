package dto

import (
	"time"

	"github.com/renaspress/renaspress-backend/internal/domain/entities"
	"github.com/renaspress/renaspress-backend/internal/services"
)

type CreateTopicRequest struct {
	Title    string   `json:"title" binding:"required,max=200"`
	Content  string   `json:"content" binding:"required"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

// CreateCommentRequest uses snake case keys like the forum client.
type CreateCommentRequest struct {
	TopicID    string `json:"topic_id" binding:"required"`
	Content    string `json:"content" binding:"required"`
	AuthorName string `json:"author_name" binding:"max=50"`
	ParentID   string `json:"parent_id"`
}

type LastReplyResponse struct {
	AuthorID   *string   `json:"authorId"`
	AuthorName string    `json:"authorName,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

type TopicResponse struct {
	ID        string              `json:"id"`
	Title     string              `json:"title"`
	Content   string              `json:"content"`
	AuthorID  string              `json:"authorId"`
	Author    *PostAuthorResponse `json:"author,omitempty"`
	Category  string              `json:"category"`
	Tags      []string            `json:"tags"`
	IsPinned  bool                `json:"isPinned"`
	IsLocked  bool                `json:"isLocked"`
	Views     int                 `json:"views"`
	Replies   int                 `json:"replies"`
	LastReply *LastReplyResponse  `json:"lastReply,omitempty"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
}

type CommentResponse struct {
	ID              string    `json:"id"`
	TopicID         string    `json:"topicId"`
	Content         string    `json:"content"`
	AuthorID        *string   `json:"authorId"`
	AuthorName      string    `json:"authorName"`
	ParentCommentID *string   `json:"parentCommentId"`
	Likes           int       `json:"likes"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type TopicListResponse struct {
	Success    bool            `json:"success"`
	Topics     []TopicResponse `json:"topics"`
	Pagination Pagination      `json:"pagination"`
}

type TopicEnvelope struct {
	Success bool          `json:"success"`
	Topic   TopicResponse `json:"topic"`
	Message string        `json:"message,omitempty"`
}

type TopicPageResponse struct {
	Success    bool              `json:"success"`
	Topic      TopicResponse     `json:"topic"`
	Comments   []CommentResponse `json:"comments"`
	Pagination Pagination        `json:"pagination"`
}

type CommentEnvelope struct {
	Success bool            `json:"success"`
	Comment CommentResponse `json:"comment"`
	Message string          `json:"message"`
}

func (r CreateTopicRequest) ToInput() services.CreateTopicInput {
	return services.CreateTopicInput{
		Title:    r.Title,
		Content:  r.Content,
		Category: r.Category,
		Tags:     r.Tags,
	}
}

func (r CreateCommentRequest) ToInput() services.CreateCommentInput {
	return services.CreateCommentInput{
		TopicID:    r.TopicID,
		Content:    r.Content,
		AuthorName: r.AuthorName,
		ParentID:   r.ParentID,
	}
}

func ToTopicResponse(topic *entities.ForumTopic) TopicResponse {
	tags := topic.Tags
	if tags == nil {
		tags = []string{}
	}
	resp := TopicResponse{
		ID:        topic.ID,
		Title:     topic.Title,
		Content:   topic.Content,
		AuthorID:  topic.AuthorID,
		Category:  topic.Category,
		Tags:      tags,
		IsPinned:  topic.IsPinned,
		IsLocked:  topic.IsLocked,
		Views:     topic.Views,
		Replies:   topic.Replies,
		CreatedAt: topic.CreatedAt,
		UpdatedAt: topic.UpdatedAt,
	}
	if topic.Author != nil {
		resp.Author = &PostAuthorResponse{
			ID:     topic.Author.ID,
			Name:   topic.Author.Name,
			Email:  topic.Author.Email.String(),
			Avatar: topic.Author.Avatar,
		}
	}
	if topic.LastReply != nil {
		resp.LastReply = &LastReplyResponse{
			AuthorID:   topic.LastReply.AuthorID,
			AuthorName: topic.LastReply.AuthorName,
			CreatedAt:  topic.LastReply.CreatedAt,
		}
	}
	return resp
}

func ToTopicResponses(topics []*entities.ForumTopic) []TopicResponse {
	out := make([]TopicResponse, len(topics))
	for i, t := range topics {
		out[i] = ToTopicResponse(t)
	}
	return out
}

func ToCommentResponse(comment *entities.ForumComment) CommentResponse {
	return CommentResponse{
		ID:              comment.ID,
		TopicID:         comment.TopicID,
		Content:         comment.Content,
		AuthorID:        comment.AuthorID,
		AuthorName:      comment.AuthorName,
		ParentCommentID: comment.ParentCommentID,
		Likes:           comment.Likes,
		CreatedAt:       comment.CreatedAt,
		UpdatedAt:       comment.UpdatedAt,
	}
}

func ToCommentResponses(comments []*entities.ForumComment) []CommentResponse {
	out := make([]CommentResponse, len(comments))
	for i, c := range comments {
		out[i] = ToCommentResponse(c)
	}
	return out
}
