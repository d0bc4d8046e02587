package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/renaspress/renaspress-backend/internal/domain/entities"
	"github.com/renaspress/renaspress-backend/internal/domain/errors"
	"github.com/renaspress/renaspress-backend/internal/handlers/dto"
	"github.com/renaspress/renaspress-backend/internal/handlers/middleware"
	"github.com/renaspress/renaspress-backend/internal/services"
)

type NewsHandler struct {
	newsService *services.NewsService
}

func NewNewsHandler(newsService *services.NewsService) *NewsHandler {
	return &NewsHandler{newsService: newsService}
}

// ImportNews fetches the current headlines and publishes the new ones.
// Imported posts go live immediately, so it takes the bulk publish right.
// @Summary Import Saudi headlines
// @Tags news
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.NewsImportResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /newsapi/fetch-saudi-news [post]
func (h *NewsHandler) ImportNews(c *gin.Context) {
	if !entities.CanBulkPublish(middleware.CurrentUser(c)) {
		dto.WriteError(c, errors.ErrForbidden)
		return
	}

	result, err := h.newsService.Import(c.Request.Context())
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewsImportResponse{
		Success:       true,
		Message:       dto.T(c, "message.news_imported", map[string]any{"Count": len(result.Posts)}),
		Posts:         dto.ToImportedPosts(result.Posts),
		TotalArticles: result.TotalArticles,
	})
}

// NewsUsage
// @Summary News import usage
// @Tags news
// @Produce json
// @Success 200 {object} dto.UsageResponse
// @Router /newsapi/fetch-saudi-news [get]
func (h *NewsHandler) NewsUsage(c *gin.Context) {
	c.JSON(http.StatusOK, dto.UsageResponse{
		Message: "Use POST method to fetch Saudi Arabia news",
		Usage:   map[string]string{"import": "POST /api/newsapi/fetch-saudi-news"},
	})
}
