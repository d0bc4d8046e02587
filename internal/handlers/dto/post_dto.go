package dto

import (
	"time"

	"github.com/renaspress/renaspress-backend/internal/domain/entities"
	"github.com/renaspress/renaspress-backend/internal/services"
)

type MediaItemDTO struct {
	Type        string `json:"type" binding:"required,oneof=image video"`
	URL         string `json:"url" binding:"required"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

type CreatePostRequest struct {
	Title            string         `json:"title" binding:"required,max=200"`
	Content          string         `json:"content" binding:"required"`
	Excerpt          string         `json:"excerpt" binding:"max=500"`
	Status           string         `json:"status" binding:"omitempty,post_status"`
	Category         string         `json:"category" binding:"omitempty,category"`
	Tags             []string       `json:"tags"`
	Media            []MediaItemDTO `json:"media" binding:"omitempty,dive"`
	FeaturedImage    string         `json:"featuredImage" binding:"required"`
	OriginalLanguage string         `json:"originalLanguage" binding:"omitempty,language"`
}

// UpdatePostRequest replaces title and content; every other field is
// changed only when present.
type UpdatePostRequest struct {
	Title            string         `json:"title" binding:"required,max=200"`
	Content          string         `json:"content" binding:"required"`
	Excerpt          *string        `json:"excerpt" binding:"omitempty,max=500"`
	Status           *string        `json:"status" binding:"omitempty,post_status"`
	Category         *string        `json:"category" binding:"omitempty,category"`
	Tags             []string       `json:"tags"`
	Media            []MediaItemDTO `json:"media" binding:"omitempty,dive"`
	FeaturedImage    *string        `json:"featuredImage"`
	OriginalLanguage *string        `json:"originalLanguage" binding:"omitempty,language"`
}

// PostListQuery is the public listing query.
type PostListQuery struct {
	Status   string `form:"status"`
	Category string `form:"category"`
	Search   string `form:"search"`
	Slug     string `form:"slug"`
}

type LikeRequest struct {
	Action string `json:"action" binding:"required,oneof=like unlike"`
}

type SavePostRequest struct {
	PostID string `json:"postId" binding:"required"`
	Action string `json:"action" binding:"required,oneof=save unsave"`
}

type BulkPublishRequest struct {
	PostIDs []string `json:"postIds" binding:"required,min=1,dive,required"`
}

type PostAuthorResponse struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	Avatar *string `json:"avatar"`
}

type TranslationResponse struct {
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Excerpt      string    `json:"excerpt,omitempty"`
	TranslatedAt time.Time `json:"translatedAt"`
}

type PostResponse struct {
	ID               string                         `json:"id"`
	Title            string                         `json:"title"`
	Content          string                         `json:"content"`
	Excerpt          string                         `json:"excerpt,omitempty"`
	Slug             string                         `json:"slug"`
	Status           string                         `json:"status"`
	AuthorID         string                         `json:"authorId"`
	Author           *PostAuthorResponse            `json:"author,omitempty"`
	Category         string                         `json:"category"`
	Tags             []string                       `json:"tags"`
	FeaturedImage    string                         `json:"featuredImage"`
	Media            []MediaItemDTO                 `json:"media"`
	Views            int                            `json:"views"`
	Likes            int                            `json:"likes"`
	PublishedAt      *time.Time                     `json:"publishedAt"`
	OriginalLanguage string                         `json:"originalLanguage"`
	Translations     map[string]TranslationResponse `json:"translations,omitempty"`
	CreatedAt        time.Time                      `json:"createdAt"`
	UpdatedAt        time.Time                      `json:"updatedAt"`
}

type PostEnvelope struct {
	Success bool         `json:"success"`
	Post    PostResponse `json:"post"`
	Message string       `json:"message,omitempty"`
}

type PostListResponse struct {
	Success    bool           `json:"success"`
	Posts      []PostResponse `json:"posts"`
	Pagination *Pagination    `json:"pagination,omitempty"`
}

type LikeResponse struct {
	Success bool   `json:"success"`
	Likes   int    `json:"likes"`
	Message string `json:"message"`
}

type BulkPublishResponse struct {
	Success        bool   `json:"success"`
	PublishedCount int64  `json:"publishedCount"`
	Message        string `json:"message"`
}

func (r CreatePostRequest) ToInput() services.CreatePostInput {
	return services.CreatePostInput{
		Title:            r.Title,
		Content:          r.Content,
		Excerpt:          r.Excerpt,
		Status:           r.Status,
		Category:         r.Category,
		Tags:             r.Tags,
		FeaturedImage:    r.FeaturedImage,
		Media:            toMediaItems(r.Media),
		OriginalLanguage: r.OriginalLanguage,
	}
}

func (r UpdatePostRequest) ToInput() services.UpdatePostInput {
	return services.UpdatePostInput{
		Title:            r.Title,
		Content:          r.Content,
		Excerpt:          r.Excerpt,
		Status:           r.Status,
		Category:         r.Category,
		Tags:             r.Tags,
		FeaturedImage:    r.FeaturedImage,
		Media:            toMediaItems(r.Media),
		OriginalLanguage: r.OriginalLanguage,
	}
}

// toMediaItems keeps nil as nil so updates without media leave it alone.
func toMediaItems(in []MediaItemDTO) []entities.MediaItem {
	if in == nil {
		return nil
	}
	out := make([]entities.MediaItem, len(in))
	for i, m := range in {
		out[i] = entities.MediaItem{
			Type:        entities.MediaType(m.Type),
			URL:         m.URL,
			Title:       m.Title,
			Description: m.Description,
		}
	}
	return out
}

func ToTranslationResponse(t entities.Translation) TranslationResponse {
	return TranslationResponse{
		Title:        t.Title,
		Content:      t.Content,
		Excerpt:      t.Excerpt,
		TranslatedAt: t.TranslatedAt,
	}
}

func ToTranslationResponses(translations map[entities.Language]entities.Translation) map[string]TranslationResponse {
	out := make(map[string]TranslationResponse, len(translations))
	for lang, t := range translations {
		out[string(lang)] = ToTranslationResponse(t)
	}
	return out
}

func ToPostResponse(post *entities.Post) PostResponse {
	media := make([]MediaItemDTO, len(post.Media))
	for i, m := range post.Media {
		media[i] = MediaItemDTO{
			Type:        string(m.Type),
			URL:         m.URL,
			Title:       m.Title,
			Description: m.Description,
		}
	}

	tags := post.Tags
	if tags == nil {
		tags = []string{}
	}

	resp := PostResponse{
		ID:               post.ID,
		Title:            post.Title,
		Content:          post.Content,
		Excerpt:          post.Excerpt,
		Slug:             post.Slug,
		Status:           string(post.Status),
		AuthorID:         post.AuthorID,
		Category:         string(post.Category),
		Tags:             tags,
		FeaturedImage:    post.FeaturedImage,
		Media:            media,
		Views:            post.Views,
		Likes:            post.Likes,
		PublishedAt:      post.PublishedAt,
		OriginalLanguage: string(post.OriginalLanguage),
		CreatedAt:        post.CreatedAt,
		UpdatedAt:        post.UpdatedAt,
	}
	if len(post.Translations) > 0 {
		resp.Translations = ToTranslationResponses(post.Translations)
	}
	if post.Author != nil {
		resp.Author = &PostAuthorResponse{
			ID:     post.Author.ID,
			Name:   post.Author.Name,
			Email:  post.Author.Email.String(),
			Avatar: post.Author.Avatar,
		}
	}
	return resp
}

func ToPostResponses(posts []*entities.Post) []PostResponse {
	responses := make([]PostResponse, len(posts))
	for i, post := range posts {
		responses[i] = ToPostResponse(post)
	}
	return responses
}
