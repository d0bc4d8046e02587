package dto

import (
	stderrors "errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/moogar0880/problems"

	"github.com/renaspress/renaspress-backend/internal/domain/errors"
)

// BaseURLContextKey holds the public base URL used to build problem types.
const BaseURLContextKey = "base_url"

const maxPageSize = 100

// ErrorResponse is an RFC 7807 problem. Error repeats the localized detail
// for clients that only read a single message field.
type ErrorResponse struct {
	*problems.Problem
	Error  string            `json:"error"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// ValidationError is one rejected request field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag,omitempty"`
	Value   string `json:"value,omitempty"`
}

// MessageResponse acknowledges an operation that returns no resource.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Pagination describes one page of a listing. Posts report the page size as
// perPage, users and forum listings as limit.
type Pagination struct {
	Page        int   `json:"page"`
	PerPage     int   `json:"perPage,omitempty"`
	Limit       int   `json:"limit,omitempty"`
	Total       int64 `json:"total"`
	TotalPages  int   `json:"totalPages"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

func newPagination(page, size int, total int64) Pagination {
	totalPages := 0
	if size > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(size)))
	}
	return Pagination{
		Page:        page,
		Total:       total,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}

// PerPagePagination is the post listing form.
func PerPagePagination(page, perPage int, total int64) Pagination {
	p := newPagination(page, perPage, total)
	p.PerPage = perPage
	return p
}

// LimitPagination is the user and forum listing form.
func LimitPagination(page, limit int, total int64) Pagination {
	p := newPagination(page, limit, total)
	p.Limit = limit
	return p
}

// PageParams reads a 1-based page and a page size from the query string.
// Missing or invalid values fall back to page 1 and defaultSize; sizes are
// capped at 100.
func PageParams(c *gin.Context, sizeParam string, defaultSize int) (page, size int) {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		page = 1
	}
	size, err = strconv.Atoi(c.Query(sizeParam))
	if err != nil || size < 1 {
		size = defaultSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return page, size
}

// StatusFor maps a problem type to its HTTP status.
func StatusFor(problemType string) int {
	switch problemType {
	case errors.ProblemTypeValidation, errors.ProblemTypeConflict, errors.ProblemTypeBadRequest:
		return http.StatusBadRequest
	case errors.ProblemTypeUnauthorized:
		return http.StatusUnauthorized
	case errors.ProblemTypeForbidden:
		return http.StatusForbidden
	case errors.ProblemTypeNotFound:
		return http.StatusNotFound
	case errors.ProblemTypeTooManyRequests:
		return http.StatusTooManyRequests
	case errors.ProblemTypeStorageUnauthorized:
		return http.StatusBadGateway
	case errors.ProblemTypeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// NewErrorResponse builds a localized problem for a domain error.
func NewErrorResponse(c *gin.Context, domainErr *errors.DomainError) ErrorResponse {
	status := StatusFor(domainErr.Type)
	detail := T(c, domainErr.Message, domainErr.Params)

	problem := problems.NewStatusProblem(status)
	problem.Type = baseURL(c) + domainErr.Type
	problem.Title = T(c, domainErr.Title)
	problem.Detail = detail
	problem.Instance = c.Request.URL.Path

	return ErrorResponse{Problem: problem, Error: detail}
}

// ValidationErrorResponse is the 400 returned for a request that failed
// binding.
func ValidationErrorResponse(c *gin.Context, fields []ValidationError) ErrorResponse {
	response := NewErrorResponse(c, errors.ErrValidation)
	if len(fields) > 0 {
		response.Error = fields[0].Message
	}
	response.Errors = fields
	return response
}

// WriteError renders err and aborts the handler chain. Errors that are not
// domain errors are recorded on the context for the request logger and
// answered with a generic 500.
func WriteError(c *gin.Context, err error) {
	var domainErr *errors.DomainError
	if !stderrors.As(err, &domainErr) {
		_ = c.Error(err)
		domainErr = errors.ErrInternal
	} else if StatusFor(domainErr.Type) >= http.StatusInternalServerError {
		_ = c.Error(err)
	}

	response := NewErrorResponse(c, domainErr)
	c.AbortWithStatusJSON(response.Status, response)
}

// WriteBindingError renders a binding or validation failure as a 400.
func WriteBindingError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ValidationErrorResponse(c, ValidationErrors(c, err)))
}

func baseURL(c *gin.Context) string {
	if u := c.GetString(BaseURLContextKey); u != "" {
		return u
	}
	return "http://localhost:8080"
}
