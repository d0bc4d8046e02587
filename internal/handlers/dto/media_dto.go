package dto

import (
	"github.com/renaspress/renaspress-backend/internal/domain/entities"
	"github.com/renaspress/renaspress-backend/internal/services"
)

type UploadResponse struct {
	Success  bool   `json:"success"`
	ID       string `json:"id"`
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Type     string `json:"type"`
	Size     int64  `json:"size"`
	Message  string `json:"message"`
}

func ToUploadResponse(result *services.UploadResult, message string) UploadResponse {
	return UploadResponse{
		Success:  true,
		ID:       result.ID,
		URL:      result.URL,
		Filename: result.Filename,
		Type:     result.ContentType,
		Size:     result.Size,
		Message:  message,
	}
}

type ImportedPost struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Slug     string `json:"slug"`
}

type NewsImportResponse struct {
	Success       bool           `json:"success"`
	Message       string         `json:"message"`
	Posts         []ImportedPost `json:"posts"`
	TotalArticles int            `json:"totalArticles"`
}

func ToImportedPosts(posts []*entities.Post) []ImportedPost {
	out := make([]ImportedPost, len(posts))
	for i, p := range posts {
		out[i] = ImportedPost{
			ID:       p.ID,
			Title:    p.Title,
			Category: string(p.Category),
			Slug:     p.Slug,
		}
	}
	return out
}
