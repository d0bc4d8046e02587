package services

import (
	"context"
	"math/rand/v2"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/renaspress/renaspress-backend/internal/domain/entities"
	"github.com/renaspress/renaspress-backend/internal/domain/ports"
	"github.com/renaspress/renaspress-backend/internal/domain/repositories"
	"github.com/renaspress/renaspress-backend/internal/domain/valueobjects"
	"github.com/renaspress/renaspress-backend/internal/infrastructure/metrics"
)

const (
	SystemUserEmail = "system@renaspress.com"
	SystemUserName  = "RenasPress System"

	newsSlugLength    = 50
	newsExcerptLength = 200
	newsPlaceholder   = "https://via.placeholder.com/800x600?text=News+Image"
)

// newsCategories maps provider categories onto site sections.
var newsCategories = map[string]entities.Category{
	"business":      entities.CategoryDailyNews,
	"entertainment": entities.CategoryDailyNews,
	"general":       entities.CategoryDailyNews,
	"health":        entities.CategoryCharity,
	"science":       entities.CategoryDailyNews,
	"sports":        entities.CategorySports,
	"technology":    entities.CategoryDailyNews,
	"politics":      entities.CategoryPoliticalNews,
}

// uncategorizedNews is the pool unmapped articles are spread over.
var uncategorizedNews = []entities.Category{
	entities.CategoryDailyNews,
	entities.CategoryCharity,
	entities.CategorySports,
	entities.CategoryWoman,
	entities.CategoryPoliticalNews,
}

var (
	htmlTag    = regexp.MustCompile(`<[^>]*>`)
	htmlEntity = regexp.MustCompile(`&[^;\s]+;`)
	whitespace = regexp.MustCompile(`\s+`)
	lastWord   = regexp.MustCompile(`\s+\S*$`)
)

// NewsService imports provider headlines as published posts owned by the
// system account.
type NewsService struct {
	postRepo repositories.PostRepository
	userRepo repositories.UserRepository
	source   ports.NewsSource
	hasher   ports.PasswordHasher
	logger   ports.Logger
	country  string
	pageSize int
	now      func() time.Time
	pick     func(n int) int
}

func NewNewsService(
	postRepo repositories.PostRepository,
	userRepo repositories.UserRepository,
	source ports.NewsSource,
	hasher ports.PasswordHasher,
	logger ports.Logger,
	country string,
	pageSize int,
) *NewsService {
	return &NewsService{
		postRepo: postRepo,
		userRepo: userRepo,
		source:   source,
		hasher:   hasher,
		logger:   logger,
		country:  country,
		pageSize: pageSize,
		now:      clock,
		pick:     rand.IntN,
	}
}

// ImportResult lists the posts created by one import run.
type ImportResult struct {
	Posts         []*entities.Post
	TotalArticles int
}

// Import fetches the top headlines and stores the new ones. Articles
// without title, description or URL, and articles whose slug or title is
// already taken, are skipped. A failing article does not stop the run.
func (s *NewsService) Import(ctx context.Context) (*ImportResult, error) {
	author, err := s.systemUser(ctx)
	if err != nil {
		return nil, err
	}

	articles, err := s.source.TopHeadlines(ctx, s.country, s.pageSize)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{
		Posts:         make([]*entities.Post, 0, len(articles)),
		TotalArticles: len(articles),
	}

	for _, article := range articles {
		post, err := s.importArticle(ctx, author, article)
		if err != nil {
			s.logger.Warn("news article skipped", "url", article.URL, "error", err)
		}
		if post == nil {
			metrics.NewsImported.WithLabelValues("skipped").Inc()
			continue
		}
		metrics.NewsImported.WithLabelValues("imported").Inc()
		result.Posts = append(result.Posts, post)
	}

	s.logger.Info("news import finished", "articles", len(articles), "imported", len(result.Posts))
	return result, nil
}

// importArticle returns (nil, nil) for articles that are skipped on purpose.
func (s *NewsService) importArticle(ctx context.Context, author *entities.User, article ports.NewsArticle) (*entities.Post, error) {
	title := strings.TrimSpace(article.Title)
	if title == "" || strings.TrimSpace(article.Description) == "" || article.URL == "" {
		return nil, nil
	}

	slug := NewsSlug(title, article.URL)
	exists, err := s.postRepo.ExistsBySlugOrTitle(ctx, slug, title)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, nil
	}

	content := article.Content
	if strings.TrimSpace(content) == "" {
		content = article.Description
	}

	publishedAt := article.PublishedAt
	if publishedAt.IsZero() {
		publishedAt = s.now()
	}

	post := &entities.Post{
		Title:            title,
		Content:          content,
		Excerpt:          NewsExcerpt(article.Description),
		Slug:             slug,
		Status:           entities.StatusPublished,
		AuthorID:         author.ID,
		Author:           author,
		Category:         s.category(article.Category),
		Tags:             []string{},
		FeaturedImage:    newsPlaceholder,
		Media:            []entities.MediaItem{},
		PublishedAt:      &publishedAt,
		OriginalLanguage: entities.LanguageEnglish,
	}
	if article.Category != "" {
		post.Tags = []string{article.Category}
	}
	if article.ImageURL != "" {
		post.FeaturedImage = article.ImageURL
		post.Media = []entities.MediaItem{{
			Type:        entities.MediaImage,
			URL:         article.ImageURL,
			Title:       title,
			Description: article.Description,
		}}
	}

	if err := post.Validate(); err != nil {
		return nil, err
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *NewsService) category(providerCategory string) entities.Category {
	if c, ok := newsCategories[strings.ToLower(providerCategory)]; ok {
		return c
	}
	return uncategorizedNews[s.pick(len(uncategorizedNews))]
}

// systemUser returns the account imported posts belong to, creating it on
// first use with a random password nobody knows.
func (s *NewsService) systemUser(ctx context.Context) (*entities.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, SystemUserEmail)
	if err != nil || user != nil {
		return user, err
	}

	hash, err := s.hasher.Hash(uuid.NewString())
	if err != nil {
		return nil, err
	}

	email, err := valueobjects.NewEmail(SystemUserEmail)
	if err != nil {
		return nil, err
	}

	user = &entities.User{
		Name:         SystemUserName,
		Email:        email,
		PasswordHash: &hash,
		Role:         entities.RoleAuthor,
		IsActive:     true,
		Provider:     entities.ProviderCredentials,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("system user created", "user_id", user.ID)
	return user, nil
}

// NewsSlug is the slug of an imported headline: the title slug cut to 50
// characters. Titles without latin letters or digits (most Arabic
// headlines) get a stable slug derived from the article URL instead.
func NewsSlug(title, articleURL string) string {
	slug := valueobjects.TruncateSlug(valueobjects.Slugify(title), newsSlugLength)
	if slug != "" {
		return slug
	}
	id := uuid.NewSHA1(uuid.NameSpaceURL, []byte(articleURL)).String()
	return "news-" + strings.ReplaceAll(id, "-", "")[:12]
}

// CleanText strips HTML tags and entities and collapses whitespace.
func CleanText(s string) string {
	s = htmlTag.ReplaceAllString(s, "")
	s = htmlEntity.ReplaceAllString(s, " ")
	s = whitespace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// NewsExcerpt is the cleaned text cut to 200 characters on a word boundary,
// followed by "...". Short texts are returned whole.
func NewsExcerpt(s string) string {
	cleaned := CleanText(s)
	if utf8.RuneCountInString(cleaned) <= newsExcerptLength {
		return cleaned
	}
	cut := string([]rune(cleaned)[:newsExcerptLength])
	return lastWord.ReplaceAllString(cut, "") + "..."
}
