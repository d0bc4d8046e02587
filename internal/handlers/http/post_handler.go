package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/renaspress/renaspress-backend/internal/handlers/dto"
	"github.com/renaspress/renaspress-backend/internal/handlers/middleware"
	"github.com/renaspress/renaspress-backend/internal/services"
)

const defaultPostPageSize = 10

type PostHandler struct {
	postService *services.PostService
}

func NewPostHandler(postService *services.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

func bindPostQuery(c *gin.Context) (services.PostQuery, bool) {
	var q dto.PostListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		dto.WriteBindingError(c, err)
		return services.PostQuery{}, false
	}
	page, perPage := dto.PageParams(c, "per_page", defaultPostPageSize)
	return services.PostQuery{
		Status:   q.Status,
		Category: q.Category,
		Search:   q.Search,
		Slug:     q.Slug,
		Page:     page,
		PerPage:  perPage,
	}, true
}

// ListPosts is the public listing. Only admins and editors may ask for
// statuses other than published.
// @Summary List posts
// @Tags posts
// @Produce json
// @Param page query int false "Page" default(1)
// @Param per_page query int false "Page size" default(10)
// @Param category query string false "Category or all"
// @Param search query string false "Title, content or tag"
// @Param slug query string false "Exact slug"
// @Param status query string false "Status or all (admin, editor)"
// @Success 200 {object} dto.PostListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /posts [get]
func (h *PostHandler) ListPosts(c *gin.Context) {
	q, ok := bindPostQuery(c)
	if !ok {
		return
	}

	posts, total, err := h.postService.List(c.Request.Context(), middleware.CurrentUser(c), q)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	pagination := dto.PerPagePagination(q.Page, q.PerPage, total)
	c.JSON(http.StatusOK, dto.PostListResponse{
		Success:    true,
		Posts:      dto.ToPostResponses(posts),
		Pagination: &pagination,
	})
}

// ListOwnPosts lists the caller's posts in any status.
// @Summary List my posts
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page" default(1)
// @Param per_page query int false "Page size" default(10)
// @Param status query string false "Status or all" default(all)
// @Param search query string false "Title, content or tag"
// @Success 200 {object} dto.PostListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /posts/user [get]
func (h *PostHandler) ListOwnPosts(c *gin.Context) {
	q, ok := bindPostQuery(c)
	if !ok {
		return
	}

	posts, total, err := h.postService.ListOwn(c.Request.Context(), middleware.CurrentUser(c), q)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	pagination := dto.PerPagePagination(q.Page, q.PerPage, total)
	c.JSON(http.StatusOK, dto.PostListResponse{
		Success:    true,
		Posts:      dto.ToPostResponses(posts),
		Pagination: &pagination,
	})
}

// CreatePost
// @Summary Create post
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreatePostRequest true "Post"
// @Success 200 {object} dto.PostEnvelope
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.WriteBindingError(c, err)
		return
	}

	post, err := h.postService.Create(c.Request.Context(), middleware.CurrentUser(c), req.ToInput())
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PostEnvelope{
		Success: true,
		Post:    dto.ToPostResponse(post),
		Message: dto.T(c, "message.post_created"),
	})
}

// GetPost returns a post and counts the view.
// @Summary Get post
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} dto.PostEnvelope
// @Failure 404 {object} dto.ErrorResponse
// @Router /posts/{id} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	post, err := h.postService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PostEnvelope{Success: true, Post: dto.ToPostResponse(post)})
}

// UpdatePost
// @Summary Update post
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Param request body dto.UpdatePostRequest true "Post"
// @Success 200 {object} dto.PostEnvelope
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /posts/{id} [put]
func (h *PostHandler) UpdatePost(c *gin.Context) {
	var req dto.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.WriteBindingError(c, err)
		return
	}

	post, err := h.postService.Update(c.Request.Context(), middleware.CurrentUser(c), c.Param("id"), req.ToInput())
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PostEnvelope{
		Success: true,
		Post:    dto.ToPostResponse(post),
		Message: dto.T(c, "message.post_updated"),
	})
}

// DeletePost
// @Summary Delete post
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /posts/{id} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	if err := h.postService.Delete(c.Request.Context(), middleware.CurrentUser(c), c.Param("id")); err != nil {
		dto.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: dto.T(c, "message.post_deleted")})
}

// LikePost
// @Summary Like or unlike a post
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Param request body dto.LikeRequest true "like or unlike"
// @Success 200 {object} dto.LikeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /posts/{id}/like [post]
func (h *PostHandler) LikePost(c *gin.Context) {
	var req dto.LikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.WriteBindingError(c, err)
		return
	}

	likes, err := h.postService.React(c.Request.Context(), c.Param("id"), req.Action)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	message := "message.post_liked"
	if req.Action == services.ActionUnlike {
		message = "message.post_unliked"
	}
	c.JSON(http.StatusOK, dto.LikeResponse{Success: true, Likes: likes, Message: dto.T(c, message)})
}

// ListSavedPosts
// @Summary List saved posts
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.PostListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /posts/saved [get]
func (h *PostHandler) ListSavedPosts(c *gin.Context) {
	posts, err := h.postService.ListSaved(c.Request.Context(), middleware.CurrentUser(c))
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PostListResponse{Success: true, Posts: dto.ToPostResponses(posts)})
}

// SavePost
// @Summary Save or unsave a post
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SavePostRequest true "save or unsave"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /posts/saved [post]
func (h *PostHandler) SavePost(c *gin.Context) {
	var req dto.SavePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.WriteBindingError(c, err)
		return
	}

	if err := h.postService.Bookmark(c.Request.Context(), middleware.CurrentUser(c), req.PostID, req.Action); err != nil {
		dto.WriteError(c, err)
		return
	}

	message := "message.post_saved"
	if req.Action == services.ActionUnsave {
		message = "message.post_unsaved"
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: dto.T(c, message)})
}

// BulkPublish moves draft and pending posts to published.
// @Summary Bulk publish
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BulkPublishRequest true "Post IDs"
// @Success 200 {object} dto.BulkPublishResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /posts/bulk-publish [post]
func (h *PostHandler) BulkPublish(c *gin.Context) {
	var req dto.BulkPublishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.WriteBindingError(c, err)
		return
	}

	count, err := h.postService.BulkPublish(c.Request.Context(), middleware.CurrentUser(c), req.PostIDs)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BulkPublishResponse{
		Success:        true,
		PublishedCount: count,
		Message:        dto.T(c, "message.posts_published", map[string]any{"Count": count}),
	})
}
