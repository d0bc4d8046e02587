package errors

import "errors"

// ProblemType identifies the RFC 7807 problem category of a DomainError.
// The base domain comes from configuration (API_BASE_URL).
//
//nolint:misspell
const (
	ProblemTypeValidation          = "/problems/validation-error"
	ProblemTypeNotFound            = "/problems/not-found"
	ProblemTypeConflict            = "/problems/conflict"
	ProblemTypeUnauthorized        = "/problems/unauthorized"
	ProblemTypeForbidden           = "/problems/forbidden"
	ProblemTypeInternal            = "/problems/internal-error"
	ProblemTypeBadRequest          = "/problems/bad-request"
	ProblemTypeStorageUnauthorized = "/problems/storage-unauthorized"
	ProblemTypeUnavailable         = "/problems/service-unavailable"
	ProblemTypeTooManyRequests     = "/problems/too-many-requests"
)

// DomainError is a business error. Message is an i18n message ID; the
// translations live in internal/infrastructure/i18n/locales/*.json.
type DomainError struct {
	Type    string
	Title   string
	Message string
	Params  map[string]any
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is matches on the message ID so copies produced by WithParams or Wrap
// still satisfy errors.Is against the sentinel.
func (e *DomainError) Is(target error) bool {
	var t *DomainError
	if !errors.As(target, &t) {
		return false
	}
	return e.Message == t.Message && e.Type == t.Type
}

// WithParams returns a copy carrying template parameters for the message.
func (e *DomainError) WithParams(params map[string]any) *DomainError {
	cp := *e
	cp.Params = params
	return &cp
}

// Wrap returns a copy that wraps cause.
func (e *DomainError) Wrap(cause error) *DomainError {
	cp := *e
	cp.Err = cause
	return &cp
}

func newError(problemType, title, message string) *DomainError {
	return &DomainError{Type: problemType, Title: title, Message: message}
}

// Authentication
var (
	ErrNoToken                = newError(ProblemTypeUnauthorized, "error.unauthorized.title", "error.no_token")
	ErrInvalidToken           = newError(ProblemTypeUnauthorized, "error.unauthorized.title", "error.invalid_token")
	ErrUserNotFoundOrInactive = newError(ProblemTypeUnauthorized, "error.unauthorized.title", "error.user_not_found_or_inactive")
	ErrInvalidCredentials     = newError(ProblemTypeUnauthorized, "error.unauthorized.title", "error.invalid_credentials")
	ErrAccountInactive        = newError(ProblemTypeUnauthorized, "error.unauthorized.title", "error.account_inactive")
	ErrForbidden              = newError(ProblemTypeForbidden, "error.forbidden.title", "error.forbidden")
)

// Users
var (
	ErrUserNotFound       = newError(ProblemTypeNotFound, "error.not_found.title", "error.user_not_found")
	ErrEmailAlreadyExists = newError(ProblemTypeConflict, "error.conflict.title", "error.email_already_exists")
	ErrInvalidEmail       = newError(ProblemTypeValidation, "error.validation.title", "error.invalid_email")
	ErrInvalidName        = newError(ProblemTypeValidation, "error.validation.title", "error.invalid_name")
	ErrInvalidRole        = newError(ProblemTypeValidation, "error.validation.title", "error.invalid_role")
	ErrInvalidProvider    = newError(ProblemTypeValidation, "error.validation.title", "error.invalid_provider")
	ErrPasswordMismatch   = newError(ProblemTypeValidation, "error.validation.title", "error.password_mismatch")
	ErrPasswordTooShort   = newError(ProblemTypeValidation, "error.validation.title", "error.password_too_short")
	ErrPasswordRequired   = newError(ProblemTypeValidation, "error.validation.title", "error.password_required")
	ErrCannotDeleteSelf   = newError(ProblemTypeBadRequest, "error.bad_request.title", "error.cannot_delete_self")
	ErrUserHasPosts       = newError(ProblemTypeBadRequest, "error.bad_request.title", "error.user_has_posts")
)

// Posts
var (
	ErrPostNotFound          = newError(ProblemTypeNotFound, "error.not_found.title", "error.post_not_found")
	ErrTitleRequired         = newError(ProblemTypeValidation, "error.validation.title", "error.title_required")
	ErrContentRequired       = newError(ProblemTypeValidation, "error.validation.title", "error.content_required")
	ErrFeaturedImageRequired = newError(ProblemTypeValidation, "error.validation.title", "error.featured_image_required")
	ErrTitleTooLong          = newError(ProblemTypeValidation, "error.validation.title", "error.title_too_long")
	ErrExcerptTooLong        = newError(ProblemTypeValidation, "error.validation.title", "error.excerpt_too_long")
	ErrInvalidCategory       = newError(ProblemTypeValidation, "error.validation.title", "error.invalid_category")
	ErrInvalidStatus         = newError(ProblemTypeValidation, "error.validation.title", "error.invalid_status")
	ErrInvalidMedia          = newError(ProblemTypeValidation, "error.validation.title", "error.invalid_media")
	ErrPostIDsRequired       = newError(ProblemTypeValidation, "error.validation.title", "error.post_ids_required")
	ErrInvalidAction         = newError(ProblemTypeValidation, "error.validation.title", "error.invalid_action")
	ErrPostArchived          = newError(ProblemTypeConflict, "error.conflict.title", "error.post_archived")
)

// Translation
var (
	ErrInvalidLanguage      = newError(ProblemTypeValidation, "error.validation.title", "error.invalid_language")
	ErrTranslationNotFound  = newError(ProblemTypeNotFound, "error.not_found.title", "error.translation_not_found")
	ErrTextRequired         = newError(ProblemTypeValidation, "error.validation.title", "error.text_required")
	ErrTranslatorDisabled   = newError(ProblemTypeUnavailable, "error.unavailable.title", "error.translator_disabled")
	ErrTranslationFailed    = newError(ProblemTypeInternal, "error.internal.title", "error.translation_failed")
	ErrUnsupportedOperation = newError(ProblemTypeValidation, "error.validation.title", "error.unsupported_operation")
)

// Media
var (
	ErrNoFile                = newError(ProblemTypeValidation, "error.validation.title", "error.no_file")
	ErrUnsupportedMediaType  = newError(ProblemTypeValidation, "error.validation.title", "error.unsupported_media_type")
	ErrFileTooLarge          = newError(ProblemTypeValidation, "error.validation.title", "error.file_too_large")
	ErrStorageNotConfigured  = newError(ProblemTypeUnavailable, "error.unavailable.title", "error.storage_not_configured")
	ErrStorageUnauthorized   = newError(ProblemTypeStorageUnauthorized, "error.storage.title", "error.storage_unauthorized")
	ErrStorageUploadRejected = newError(ProblemTypeInternal, "error.storage.title", "error.storage_upload_failed")
)

// Forum
var (
	ErrTopicNotFound          = newError(ProblemTypeNotFound, "error.not_found.title", "error.topic_not_found")
	ErrTopicLocked            = newError(ProblemTypeForbidden, "error.forbidden.title", "error.topic_locked")
	ErrParentCommentNotFound  = newError(ProblemTypeBadRequest, "error.bad_request.title", "error.parent_comment_not_found")
	ErrAuthorNameRequired     = newError(ProblemTypeValidation, "error.validation.title", "error.author_name_required")
	ErrCommentContentRequired = newError(ProblemTypeValidation, "error.validation.title", "error.comment_content_required")
)

// News import
var (
	ErrNewsSourceDisabled = newError(ProblemTypeUnavailable, "error.unavailable.title", "error.news_source_disabled")
	ErrNewsFetchFailed    = newError(ProblemTypeInternal, "error.internal.title", "error.news_fetch_failed")
)

// Generic
var (
	ErrValidation   = newError(ProblemTypeValidation, "error.validation.title", "error.validation.detail")
	ErrRateLimited  = newError(ProblemTypeTooManyRequests, "error.too_many_requests.title", "error.rate_limited")
	ErrInternal     = newError(ProblemTypeInternal, "error.internal.title", "error.internal.detail")
	ErrRouteMissing = newError(ProblemTypeNotFound, "error.not_found.title", "error.route_not_found")
)
