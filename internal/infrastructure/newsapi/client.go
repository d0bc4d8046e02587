// Package newsapi fetches headlines from newsapi.org.
package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	domainerrors "github.com/renaspress/renaspress-backend/internal/domain/errors"
	"github.com/renaspress/renaspress-backend/internal/domain/ports"
	"github.com/renaspress/renaspress-backend/internal/infrastructure/config"
)

const userAgent = "RenasPress/1.0"

// Client implements ports.NewsSource.
type Client struct {
	http    *http.Client
	baseURL string
	apiKey  string
}

func NewClient(cfg config.NewsAPIConfig) *Client {
	return &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
	}
}

var _ ports.NewsSource = (*Client)(nil)

type articlesResponse struct {
	Status   string `json:"status"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Articles []struct {
		Source struct {
			Name string `json:"name"`
		} `json:"source"`
		Title       string `json:"title"`
		Description string `json:"description"`
		Content     string `json:"content"`
		URL         string `json:"url"`
		URLToImage  string `json:"urlToImage"`
		PublishedAt string `json:"publishedAt"`
		Category    string `json:"category"`
	} `json:"articles"`
}

func (c *Client) TopHeadlines(ctx context.Context, country string, pageSize int) ([]ports.NewsArticle, error) {
	if c.apiKey == "" {
		return nil, domainerrors.ErrNewsSourceDisabled
	}

	query := url.Values{}
	query.Set("country", country)
	query.Set("pageSize", strconv.Itoa(pageSize))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/top-headlines?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, domainerrors.ErrNewsFetchFailed.Wrap(err)
	}
	defer resp.Body.Close()

	var out articlesResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 8<<20)).Decode(&out); err != nil {
		return nil, domainerrors.ErrNewsFetchFailed.Wrap(fmt.Errorf("status %d: %w", resp.StatusCode, err))
	}
	if resp.StatusCode != http.StatusOK || out.Status != "ok" {
		return nil, domainerrors.ErrNewsFetchFailed.Wrap(
			fmt.Errorf("status %d: %s %s", resp.StatusCode, out.Code, out.Message))
	}

	articles := make([]ports.NewsArticle, 0, len(out.Articles))
	for _, a := range out.Articles {
		published, err := time.Parse(time.RFC3339, a.PublishedAt)
		if err != nil {
			published = time.Time{}
		}
		articles = append(articles, ports.NewsArticle{
			Title:       a.Title,
			Description: a.Description,
			Content:     a.Content,
			URL:         a.URL,
			ImageURL:    a.URLToImage,
			SourceName:  a.Source.Name,
			Category:    a.Category,
			PublishedAt: published,
		})
	}
	return articles, nil
}
