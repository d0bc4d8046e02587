package postgres

import "gorm.io/datatypes"

// Timestamps are unix milliseconds.

// UserModel is the GORM model for users.
type UserModel struct {
	ID           string  `gorm:"type:uuid;primaryKey"`
	Name         string  `gorm:"type:varchar(50);not null;index"`
	Email        string  `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash *string `gorm:"type:varchar(255)"`
	Role         string  `gorm:"type:varchar(20);not null;index"`
	IsActive     bool    `gorm:"not null"`
	Avatar       *string `gorm:"type:varchar(500)"`
	Provider     string  `gorm:"type:varchar(20);not null"`
	ProviderID   *string `gorm:"type:varchar(255);index"`
	CreatedAt    int64   `gorm:"autoCreateTime:milli;index"`
	UpdatedAt    int64   `gorm:"autoUpdateTime:milli"`
	DeletedAt    *int64  `gorm:"index"`
}

func (UserModel) TableName() string {
	return "users"
}

// MediaItemModel is one element of the posts.media JSON column.
type MediaItemModel struct {
	Type        string `json:"type"`
	URL         string `json:"url"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

// PostModel is the GORM model for posts.
type PostModel struct {
	ID               string                              `gorm:"type:uuid;primaryKey"`
	Title            string                              `gorm:"type:varchar(200);not null"`
	Content          string                              `gorm:"type:text;not null"`
	Excerpt          string                              `gorm:"type:varchar(500)"`
	Slug             string                              `gorm:"type:varchar(300);uniqueIndex;not null"`
	Status           string                              `gorm:"type:varchar(20);not null;index"`
	AuthorID         string                              `gorm:"type:uuid;not null;index"`
	Author           *UserModel                          `gorm:"foreignKey:AuthorID"`
	Category         string                              `gorm:"type:varchar(30);not null;index"`
	Tags             datatypes.JSONSlice[string]         `gorm:"not null"`
	FeaturedImage    string                              `gorm:"type:varchar(1000);not null"`
	Media            datatypes.JSONSlice[MediaItemModel] `gorm:"not null"`
	Views            int                                 `gorm:"not null"`
	Likes            int                                 `gorm:"not null"`
	PublishedAt      *int64                              `gorm:"index"`
	OriginalLanguage string                              `gorm:"type:varchar(5);not null"`
	Translations     []PostTranslationModel              `gorm:"foreignKey:PostID"`
	CreatedAt        int64                               `gorm:"autoCreateTime:milli;index"`
	UpdatedAt        int64                               `gorm:"autoUpdateTime:milli"`
}

func (PostModel) TableName() string {
	return "posts"
}

// PostTranslationModel caches one language of a post.
type PostTranslationModel struct {
	PostID       string `gorm:"type:uuid;primaryKey"`
	Language     string `gorm:"type:varchar(5);primaryKey"`
	Title        string `gorm:"type:varchar(500);not null"`
	Content      string `gorm:"type:text;not null"`
	Excerpt      string `gorm:"type:text"`
	TranslatedAt int64  `gorm:"not null"`
}

func (PostTranslationModel) TableName() string {
	return "post_translations"
}

// SavedPostModel is the user to post bookmark relation. The composite key
// makes saving the same post twice a no-op.
type SavedPostModel struct {
	UserID    string `gorm:"type:uuid;primaryKey"`
	PostID    string `gorm:"type:uuid;primaryKey;index"`
	CreatedAt int64  `gorm:"autoCreateTime:milli"`
}

func (SavedPostModel) TableName() string {
	return "user_saved_posts"
}

// ForumTopicModel is the GORM model for forum topics.
type ForumTopicModel struct {
	ID                  string                      `gorm:"type:uuid;primaryKey"`
	Title               string                      `gorm:"type:varchar(200);not null"`
	Content             string                      `gorm:"type:text;not null"`
	AuthorID            string                      `gorm:"type:uuid;not null;index"`
	Author              *UserModel                  `gorm:"foreignKey:AuthorID"`
	Category            string                      `gorm:"type:varchar(50);not null;index"`
	Tags                datatypes.JSONSlice[string] `gorm:"not null"`
	IsPinned            bool                        `gorm:"not null;index"`
	IsLocked            bool                        `gorm:"not null"`
	Views               int                         `gorm:"not null"`
	Replies             int                         `gorm:"not null"`
	LastReplyAuthorID   *string                     `gorm:"type:uuid"`
	LastReplyAuthorName *string                     `gorm:"type:varchar(100)"`
	LastReplyAt         *int64                      `gorm:"index"`
	CreatedAt           int64                       `gorm:"autoCreateTime:milli;index"`
	UpdatedAt           int64                       `gorm:"autoUpdateTime:milli"`
}

func (ForumTopicModel) TableName() string {
	return "forum_topics"
}

// ForumCommentModel is the GORM model for forum comments.
type ForumCommentModel struct {
	ID              string  `gorm:"type:uuid;primaryKey"`
	TopicID         string  `gorm:"type:uuid;not null;index"`
	Content         string  `gorm:"type:text;not null"`
	AuthorID        *string `gorm:"type:uuid;index"`
	AuthorName      string  `gorm:"type:varchar(100);not null"`
	ParentCommentID *string `gorm:"type:uuid;index"`
	Likes           int     `gorm:"not null"`
	IsDeleted       bool    `gorm:"not null"`
	CreatedAt       int64   `gorm:"autoCreateTime:milli;index"`
	UpdatedAt       int64   `gorm:"autoUpdateTime:milli"`
}

func (ForumCommentModel) TableName() string {
	return "forum_comments"
}
