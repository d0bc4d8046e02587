package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/renaspress/renaspress-backend/internal/domain/entities"
	"github.com/renaspress/renaspress-backend/internal/domain/errors"
	"github.com/renaspress/renaspress-backend/internal/domain/repositories"
	"github.com/renaspress/renaspress-backend/internal/handlers/dto"
	"github.com/renaspress/renaspress-backend/internal/handlers/middleware"
	"github.com/renaspress/renaspress-backend/internal/services"
)

const defaultUserPageSize = 10

// UserHandler serves account administration.
type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// CreateUser is the admin form; the role is selectable.
// @Summary Create user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateUserRequest true "Account"
// @Success 200 {object} dto.UserEnvelope
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.WriteBindingError(c, err)
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), middleware.CurrentUser(c), services.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UserEnvelope{
		Success: true,
		User:    dto.ToUserResponse(user),
		Message: dto.T(c, "message.user_created"),
	})
}

// GetUser returns one account to an admin or to its owner.
// @Summary Get user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} dto.UserEnvelope
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userService.GetUser(c.Request.Context(), middleware.CurrentUser(c), c.Param("id"))
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UserEnvelope{Success: true, User: dto.ToUserResponse(user)})
}

// ListUsers lists accounts for admins.
// @Summary List users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(10)
// @Param search query string false "Name or email"
// @Param role query string false "Role or all" default(all)
// @Success 200 {object} dto.UserListResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	page, limit := dto.PageParams(c, "limit", defaultUserPageSize)

	filters := repositories.UserFilters{
		Search:   strings.TrimSpace(c.Query("search")),
		Page:     page,
		PageSize: limit,
	}
	if role := c.DefaultQuery("role", "all"); role != "all" {
		r, ok := entities.ParseRole(role)
		if !ok {
			dto.WriteError(c, errors.ErrInvalidRole)
			return
		}
		filters.Role = &r
	}

	users, total, err := h.userService.ListUsers(c.Request.Context(), middleware.CurrentUser(c), filters)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UserListResponse{
		Success:    true,
		Users:      dto.ToUserResponses(users),
		Pagination: dto.LimitPagination(page, limit, total),
	})
}

// UpdateUser applies a partial update. Role and isActive are admin only.
// @Summary Update user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body dto.UpdateUserRequest true "Fields to change"
// @Success 200 {object} dto.UserEnvelope
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.WriteBindingError(c, err)
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), middleware.CurrentUser(c), c.Param("id"), services.UpdateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		IsActive: req.IsActive,
	})
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UserEnvelope{
		Success: true,
		User:    dto.ToUserResponse(user),
		Message: dto.T(c, "message.user_updated"),
	})
}

// DeleteUser removes an account. Authors with posts need delete_posts=true.
// @Summary Delete user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param delete_posts query bool false "Delete the user's posts too"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	deletePosts := c.Query("delete_posts") == "true"

	if err := h.userService.DeleteUser(c.Request.Context(), middleware.CurrentUser(c), c.Param("id"), deletePosts); err != nil {
		dto.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: dto.T(c, "message.user_deleted")})
}
