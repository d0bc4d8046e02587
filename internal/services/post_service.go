package services

import (
	"context"
	"strings"
	"time"

	"github.com/renaspress/renaspress-backend/internal/domain/entities"
	"github.com/renaspress/renaspress-backend/internal/domain/errors"
	"github.com/renaspress/renaspress-backend/internal/domain/ports"
	"github.com/renaspress/renaspress-backend/internal/domain/repositories"
	"github.com/renaspress/renaspress-backend/internal/domain/valueobjects"
	"github.com/renaspress/renaspress-backend/internal/infrastructure/metrics"
)

const (
	statusFilterAll   = "all"
	categoryFilterAll = "all"

	ActionLike   = "like"
	ActionUnlike = "unlike"
	ActionSave   = "save"
	ActionUnsave = "unsave"
)

// PostService owns the publishing workflow.
type PostService struct {
	postRepo repositories.PostRepository
	userRepo repositories.UserRepository
	logger   ports.Logger
	now      func() time.Time
}

func NewPostService(
	postRepo repositories.PostRepository,
	userRepo repositories.UserRepository,
	logger ports.Logger,
) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
		logger:   logger,
		now:      clock,
	}
}

// CreatePostInput is a new post. Empty Status means draft, empty Category
// means general and empty OriginalLanguage means en.
type CreatePostInput struct {
	Title            string
	Content          string
	Excerpt          string
	Status           string
	Category         string
	Tags             []string
	FeaturedImage    string
	Media            []entities.MediaItem
	OriginalLanguage string
}

// UpdatePostInput replaces title and content and changes the optional fields
// that are set. Nil slices leave tags and media untouched.
type UpdatePostInput struct {
	Title            string
	Content          string
	Excerpt          *string
	Status           *string
	Category         *string
	Tags             []string
	FeaturedImage    *string
	Media            []entities.MediaItem
	OriginalLanguage *string
}

// PostQuery is a listing request as received from the API.
type PostQuery struct {
	Status   string
	Category string
	Search   string
	Slug     string
	Page     int
	PerPage  int
}

func (s *PostService) Create(ctx context.Context, actor *entities.User, input CreatePostInput) (*entities.Post, error) {
	if !entities.CanCreatePost(actor) {
		return nil, errors.ErrForbidden
	}

	status := entities.StatusDraft
	if input.Status != "" {
		st, ok := entities.ParseStatus(input.Status)
		if !ok {
			return nil, errors.ErrInvalidStatus
		}
		status = st
	}

	category := entities.CategoryGeneral
	if input.Category != "" {
		category = entities.Category(input.Category)
	}

	lang := entities.LanguageEnglish
	if input.OriginalLanguage != "" {
		l, ok := entities.ParseLanguage(input.OriginalLanguage)
		if !ok {
			return nil, errors.ErrInvalidLanguage
		}
		lang = l
	}

	now := s.now()
	post := &entities.Post{
		Title:            strings.TrimSpace(input.Title),
		Content:          input.Content,
		Excerpt:          strings.TrimSpace(input.Excerpt),
		Slug:             valueobjects.PostSlug(input.Title, now),
		AuthorID:         actor.ID,
		Category:         category,
		Tags:             entities.NormalizeTags(input.Tags),
		FeaturedImage:    strings.TrimSpace(input.FeaturedImage),
		Media:            input.Media,
		OriginalLanguage: lang,
	}
	if err := post.TransitionTo(status, now); err != nil {
		return nil, domainError(err)
	}
	if err := post.Validate(); err != nil {
		return nil, domainError(err)
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	post.Author = actor

	s.logger.Info("post created", "post_id", post.ID, "author_id", actor.ID, "status", post.Status)
	return post, nil
}

// Get returns a post and counts the view. The returned counter includes
// this view without reading the row again.
func (s *PostService) Get(ctx context.Context, id string) (*entities.Post, error) {
	post, err := s.findPost(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.postRepo.IncrementViews(ctx, post.ID); err != nil {
		return nil, err
	}
	post.Views++

	return post, nil
}

func (s *PostService) findPost(ctx context.Context, id string) (*entities.Post, error) {
	post, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, errors.ErrPostNotFound
	}
	return post, nil
}

// List is the public listing. It shows published posts unless the caller
// may see the other statuses and asks for them. A slug filter wins over
// search.
func (s *PostService) List(ctx context.Context, actor *entities.User, q PostQuery) ([]*entities.Post, int64, error) {
	filters := repositories.PostFilters{
		Statuses: []entities.PostStatus{entities.StatusPublished},
		Sort:     repositories.SortByPublished,
		Page:     q.Page,
		PerPage:  q.PerPage,
	}

	if q.Status != "" && entities.CanListUnpublished(actor) {
		statuses, err := parseStatusFilter(q.Status)
		if err != nil {
			return nil, 0, err
		}
		filters.Statuses = statuses
	}

	category, err := parseCategoryFilter(q.Category)
	if err != nil {
		return nil, 0, err
	}
	filters.Category = category

	if slug := strings.TrimSpace(q.Slug); slug != "" {
		filters.Slug = slug
	} else {
		filters.Search = strings.TrimSpace(q.Search)
	}

	return s.postRepo.List(ctx, filters)
}

// ListOwn lists the caller's posts in every status, newest first.
func (s *PostService) ListOwn(ctx context.Context, actor *entities.User, q PostQuery) ([]*entities.Post, int64, error) {
	if actor == nil {
		return nil, 0, errors.ErrNoToken
	}

	statuses, err := parseStatusFilter(q.Status)
	if err != nil {
		return nil, 0, err
	}

	return s.postRepo.List(ctx, repositories.PostFilters{
		Statuses: statuses,
		AuthorID: actor.ID,
		Search:   strings.TrimSpace(q.Search),
		Sort:     repositories.SortByCreated,
		Page:     q.Page,
		PerPage:  q.PerPage,
	})
}

// parseStatusFilter maps "" and "all" to no filter.
func parseStatusFilter(s string) ([]entities.PostStatus, error) {
	if s == "" || strings.EqualFold(s, statusFilterAll) {
		return nil, nil
	}
	status, ok := entities.ParseStatus(s)
	if !ok {
		return nil, errors.ErrInvalidStatus
	}
	return []entities.PostStatus{status}, nil
}

func parseCategoryFilter(s string) (entities.Category, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, categoryFilterAll) {
		return "", nil
	}
	category := entities.Category(s)
	if !category.IsValid() {
		return "", errors.ErrInvalidCategory
	}
	return category, nil
}

func (s *PostService) Update(ctx context.Context, actor *entities.User, id string, input UpdatePostInput) (*entities.Post, error) {
	post, err := s.findPost(ctx, id)
	if err != nil {
		return nil, err
	}
	if !entities.CanEditPost(actor, post) {
		return nil, errors.ErrForbidden
	}

	if strings.TrimSpace(input.Title) == "" {
		return nil, errors.ErrTitleRequired
	}
	if strings.TrimSpace(input.Content) == "" {
		return nil, errors.ErrContentRequired
	}

	post.Title = strings.TrimSpace(input.Title)
	post.Content = input.Content

	if input.Excerpt != nil {
		post.Excerpt = strings.TrimSpace(*input.Excerpt)
	}
	if input.Category != nil {
		post.Category = entities.Category(*input.Category)
	}
	if input.Tags != nil {
		post.Tags = entities.NormalizeTags(input.Tags)
	}
	if input.FeaturedImage != nil {
		post.FeaturedImage = strings.TrimSpace(*input.FeaturedImage)
	}
	if input.Media != nil {
		post.Media = input.Media
	}
	if input.OriginalLanguage != nil {
		lang, ok := entities.ParseLanguage(*input.OriginalLanguage)
		if !ok {
			return nil, errors.ErrInvalidLanguage
		}
		post.OriginalLanguage = lang
	}
	if input.Status != nil {
		status, ok := entities.ParseStatus(*input.Status)
		if !ok {
			return nil, errors.ErrInvalidStatus
		}
		if err := post.TransitionTo(status, s.now()); err != nil {
			return nil, domainError(err)
		}
	}

	if err := post.Validate(); err != nil {
		return nil, domainError(err)
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	s.logger.Info("post updated", "post_id", post.ID, "by", actor.ID, "status", post.Status)
	return post, nil
}

// Delete removes a post together with its translations and bookmarks.
func (s *PostService) Delete(ctx context.Context, actor *entities.User, id string) error {
	post, err := s.findPost(ctx, id)
	if err != nil {
		return err
	}
	if !entities.CanDeletePost(actor, post) {
		return errors.ErrForbidden
	}

	if err := s.postRepo.Delete(ctx, post.ID); err != nil {
		return err
	}

	s.logger.Info("post deleted", "post_id", post.ID, "by", actor.ID)
	return nil
}

// BulkPublish publishes every listed draft or pending post and returns how
// many changed. Unknown ids and posts in other statuses are skipped.
func (s *PostService) BulkPublish(ctx context.Context, actor *entities.User, ids []string) (int64, error) {
	if !entities.CanBulkPublish(actor) {
		return 0, errors.ErrForbidden
	}
	if len(ids) == 0 {
		return 0, errors.ErrPostIDsRequired
	}

	count, err := s.postRepo.PublishMany(ctx, ids, s.now())
	if err != nil {
		return 0, err
	}

	metrics.PostsPublished.Add(float64(count))
	s.logger.Info("posts bulk published", "requested", len(ids), "published", count, "by", actor.ID)
	return count, nil
}

// React applies a like or unlike and returns the new like count. Unlike
// never takes the counter below zero.
func (s *PostService) React(ctx context.Context, id, action string) (int, error) {
	var delta int
	switch action {
	case ActionLike:
		delta = 1
	case ActionUnlike:
		delta = -1
	default:
		return 0, errors.ErrInvalidAction
	}

	if _, err := s.findPost(ctx, id); err != nil {
		return 0, err
	}

	return s.postRepo.AdjustLikes(ctx, id, delta)
}

// Bookmark saves or unsaves a post for the caller. Saving twice is a no-op.
func (s *PostService) Bookmark(ctx context.Context, actor *entities.User, postID, action string) error {
	if actor == nil {
		return errors.ErrNoToken
	}
	if action != ActionSave && action != ActionUnsave {
		return errors.ErrInvalidAction
	}

	post, err := s.findPost(ctx, postID)
	if err != nil {
		return err
	}

	if action == ActionSave {
		return s.userRepo.AddSavedPost(ctx, actor.ID, post.ID)
	}
	return s.userRepo.RemoveSavedPost(ctx, actor.ID, post.ID)
}

// ListSaved returns the caller's bookmarks, most recently saved first.
func (s *PostService) ListSaved(ctx context.Context, actor *entities.User) ([]*entities.Post, error) {
	if actor == nil {
		return nil, errors.ErrNoToken
	}
	return s.postRepo.ListSavedBy(ctx, actor.ID)
}
