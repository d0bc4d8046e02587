package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/renaspress/renaspress-backend/internal/domain/repositories"
	"github.com/renaspress/renaspress-backend/internal/handlers/dto"
	"github.com/renaspress/renaspress-backend/internal/handlers/middleware"
	"github.com/renaspress/renaspress-backend/internal/services"
)

const (
	defaultTopicPageSize   = 10
	defaultCommentPageSize = 20
)

type ForumHandler struct {
	forumService *services.ForumService
}

func NewForumHandler(forumService *services.ForumService) *ForumHandler {
	return &ForumHandler{forumService: forumService}
}

// ListTopics lists topics, pinned first, then by latest activity.
// @Summary List forum topics
// @Tags forum
// @Produce json
// @Param category query string false "Category or all" default(all)
// @Param search query string false "Title, content or tag"
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} dto.TopicListResponse
// @Router /forum/topics [get]
func (h *ForumHandler) ListTopics(c *gin.Context) {
	page, limit := dto.PageParams(c, "limit", defaultTopicPageSize)

	filters := repositories.TopicFilters{
		Search: c.Query("search"),
		Page:   page,
		Limit:  limit,
	}
	if category := c.DefaultQuery("category", "all"); category != "all" {
		filters.Category = category
	}

	topics, total, err := h.forumService.ListTopics(c.Request.Context(), filters)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TopicListResponse{
		Success:    true,
		Topics:     dto.ToTopicResponses(topics),
		Pagination: dto.LimitPagination(page, limit, total),
	})
}

// CreateTopic
// @Summary Create forum topic
// @Tags forum
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateTopicRequest true "Topic"
// @Success 201 {object} dto.TopicEnvelope
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /forum/topics [post]
func (h *ForumHandler) CreateTopic(c *gin.Context) {
	var req dto.CreateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.WriteBindingError(c, err)
		return
	}

	topic, err := h.forumService.CreateTopic(c.Request.Context(), middleware.CurrentUser(c), req.ToInput())
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.TopicEnvelope{
		Success: true,
		Topic:   dto.ToTopicResponse(topic),
		Message: dto.T(c, "message.topic_created"),
	})
}

// GetTopic returns a topic with one page of comments and counts the view.
// @Summary Get forum topic
// @Tags forum
// @Produce json
// @Param id path string true "Topic ID"
// @Param page query int false "Page" default(1)
// @Param limit query int false "Comments per page" default(20)
// @Success 200 {object} dto.TopicPageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /forum/topics/{id} [get]
func (h *ForumHandler) GetTopic(c *gin.Context) {
	page, limit := dto.PageParams(c, "limit", defaultCommentPageSize)

	result, err := h.forumService.GetTopic(c.Request.Context(), c.Param("id"), page, limit)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TopicPageResponse{
		Success:    true,
		Topic:      dto.ToTopicResponse(result.Topic),
		Comments:   dto.ToCommentResponses(result.Comments),
		Pagination: dto.LimitPagination(page, limit, result.TotalComments),
	})
}

// CreateComment replies to a topic. Anonymous callers must give a name.
// @Summary Comment on a forum topic
// @Tags forum
// @Accept json
// @Produce json
// @Param request body dto.CreateCommentRequest true "Comment"
// @Success 201 {object} dto.CommentEnvelope
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /forum/comments [post]
func (h *ForumHandler) CreateComment(c *gin.Context) {
	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.WriteBindingError(c, err)
		return
	}

	comment, err := h.forumService.CreateComment(c.Request.Context(), middleware.CurrentUser(c), req.ToInput())
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CommentEnvelope{
		Success: true,
		Comment: dto.ToCommentResponse(comment),
		Message: dto.T(c, "message.comment_added"),
	})
}
