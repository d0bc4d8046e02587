package ports

import (
	"context"
	"time"
)

// NewsArticle is a headline returned by the external news provider.
type NewsArticle struct {
	Title       string
	Description string
	Content     string
	URL         string
	ImageURL    string
	SourceName  string
	Category    string // provider category, often empty
	PublishedAt time.Time
}

// NewsSource fetches top headlines for a country.
type NewsSource interface {
	TopHeadlines(ctx context.Context, country string, pageSize int) ([]NewsArticle, error)
}
