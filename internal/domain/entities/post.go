package entities

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	MaxPostTitleLength   = 200
	MaxPostExcerptLength = 500
)

// PostStatus is a stage of the publishing workflow.
type PostStatus string

const (
	StatusDraft     PostStatus = "draft"
	StatusPending   PostStatus = "pending"
	StatusPublished PostStatus = "published"
	StatusArchived  PostStatus = "archived"

	// statusPublishAlias is the dashboard's label for published.
	statusPublishAlias = "publish"
)

// ParseStatus accepts the four stored statuses plus the "publish" alias.
func ParseStatus(s string) (PostStatus, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == statusPublishAlias {
		return StatusPublished, true
	}
	st := PostStatus(s)
	return st, st.IsValid()
}

func (s PostStatus) IsValid() bool {
	switch s {
	case StatusDraft, StatusPending, StatusPublished, StatusArchived:
		return true
	}
	return false
}

// Category is one of the six fixed news sections.
type Category string

const (
	CategoryDailyNews     Category = "daily-news"
	CategoryPoliticalNews Category = "political-news"
	CategorySports        Category = "sports"
	CategoryWoman         Category = "woman"
	CategoryCharity       Category = "charity"
	CategoryGeneral       Category = "general"
)

// Categories lists every valid category.
var Categories = []Category{
	CategoryDailyNews,
	CategoryPoliticalNews,
	CategorySports,
	CategoryWoman,
	CategoryCharity,
	CategoryGeneral,
}

func (c Category) IsValid() bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

// Language is a site locale.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageArabic  Language = "ar"
)

func ParseLanguage(s string) (Language, bool) {
	l := Language(strings.ToLower(strings.TrimSpace(s)))
	return l, l.IsValid()
}

func (l Language) IsValid() bool {
	return l == LanguageEnglish || l == LanguageArabic
}

// MediaType tags a gallery item.
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// MediaItem is one entry of a post's ordered gallery.
type MediaItem struct {
	Type        MediaType
	URL         string
	Title       string
	Description string
}

// Translation is a cached machine translation of a post.
type Translation struct {
	Title        string
	Content      string
	Excerpt      string
	TranslatedAt time.Time
}

var (
	ErrPostTitleRequired   = errors.New("title is required")
	ErrPostTitleTooLong    = errors.New("title cannot be more than 200 characters")
	ErrPostContentRequired = errors.New("content is required")
	ErrPostExcerptTooLong  = errors.New("excerpt cannot be more than 500 characters")
	ErrPostImageRequired   = errors.New("featured image is required")
	ErrPostInvalidCategory = errors.New("invalid category")
	ErrPostInvalidStatus   = errors.New("invalid status")
	ErrPostInvalidMedia    = errors.New("invalid media item")
	ErrPostInvalidLanguage = errors.New("invalid original language")
	ErrPostArchived        = errors.New("archived posts cannot change status")
)

// Post is a news article.
type Post struct {
	ID               string
	Title            string
	Content          string
	Excerpt          string
	Slug             string
	Status           PostStatus
	AuthorID         string
	Author           *User
	Category         Category
	Tags             []string
	FeaturedImage    string
	Media            []MediaItem
	Views            int
	Likes            int
	PublishedAt      *time.Time
	OriginalLanguage Language
	Translations     map[Language]Translation
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (p *Post) IsPublished() bool {
	return p.Status == StatusPublished
}

// TransitionTo moves the post to status. Archived is final. publishedAt is
// stamped the first time the post enters published and is never cleared or
// moved afterwards.
func (p *Post) TransitionTo(status PostStatus, now time.Time) error {
	if !status.IsValid() {
		return ErrPostInvalidStatus
	}
	if p.Status == StatusArchived && status != StatusArchived {
		return ErrPostArchived
	}
	p.Status = status
	if status == StatusPublished && p.PublishedAt == nil {
		p.PublishedAt = &now
	}
	return nil
}

// Translation returns the cached translation for lang, if any.
func (p *Post) Translation(lang Language) (Translation, bool) {
	t, ok := p.Translations[lang]
	return t, ok
}

// Validate checks the post's field invariants.
func (p *Post) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return ErrPostTitleRequired
	}
	if utf8.RuneCountInString(p.Title) > MaxPostTitleLength {
		return ErrPostTitleTooLong
	}
	if strings.TrimSpace(p.Content) == "" {
		return ErrPostContentRequired
	}
	if utf8.RuneCountInString(p.Excerpt) > MaxPostExcerptLength {
		return ErrPostExcerptTooLong
	}
	if strings.TrimSpace(p.FeaturedImage) == "" {
		return ErrPostImageRequired
	}
	if !p.Category.IsValid() {
		return ErrPostInvalidCategory
	}
	if !p.Status.IsValid() {
		return ErrPostInvalidStatus
	}
	if !p.OriginalLanguage.IsValid() {
		return ErrPostInvalidLanguage
	}
	for _, m := range p.Media {
		if (m.Type != MediaImage && m.Type != MediaVideo) || strings.TrimSpace(m.URL) == "" {
			return ErrPostInvalidMedia
		}
	}
	return nil
}

// NormalizeTags trims tags and drops empties and duplicates, keeping order.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
