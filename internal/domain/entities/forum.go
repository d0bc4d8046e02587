package entities

import (
	"strings"
	"time"
	"unicode/utf8"
)

const MaxTopicTitleLength = 200

// LastReply points at the most recent comment of a topic.
type LastReply struct {
	AuthorID   *string
	AuthorName string
	CreatedAt  time.Time
}

// ForumTopic is a discussion thread.
type ForumTopic struct {
	ID        string
	Title     string
	Content   string
	AuthorID  string
	Author    *User
	Category  string
	Tags      []string
	IsPinned  bool
	IsLocked  bool
	Views     int
	Replies   int
	LastReply *LastReply
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the topic's field invariants.
func (t *ForumTopic) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return ErrPostTitleRequired
	}
	if utf8.RuneCountInString(t.Title) > MaxTopicTitleLength {
		return ErrPostTitleTooLong
	}
	if strings.TrimSpace(t.Content) == "" {
		return ErrPostContentRequired
	}
	return nil
}

// AcceptsComments reports whether new comments may be attached.
func (t *ForumTopic) AcceptsComments() bool {
	return !t.IsLocked
}

// ForumComment is a reply inside a topic. AuthorID is nil for anonymous
// comments, which then carry only AuthorName.
type ForumComment struct {
	ID              string
	TopicID         string
	Content         string
	AuthorID        *string
	AuthorName      string
	ParentCommentID *string
	Likes           int
	IsDeleted       bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (c *ForumComment) IsAnonymous() bool {
	return c.AuthorID == nil
}
