package services

import (
	stderrors "errors"

	"github.com/renaspress/renaspress-backend/internal/domain/entities"
	"github.com/renaspress/renaspress-backend/internal/domain/errors"
	"github.com/renaspress/renaspress-backend/internal/domain/valueobjects"
)

// entityErrors maps entity invariant violations to API errors.
var entityErrors = map[error]*errors.DomainError{
	entities.ErrPostTitleRequired:   errors.ErrTitleRequired,
	entities.ErrPostTitleTooLong:    errors.ErrTitleTooLong,
	entities.ErrPostContentRequired: errors.ErrContentRequired,
	entities.ErrPostExcerptTooLong:  errors.ErrExcerptTooLong,
	entities.ErrPostImageRequired:   errors.ErrFeaturedImageRequired,
	entities.ErrPostInvalidCategory: errors.ErrInvalidCategory,
	entities.ErrPostInvalidStatus:   errors.ErrInvalidStatus,
	entities.ErrPostInvalidMedia:    errors.ErrInvalidMedia,
	entities.ErrPostInvalidLanguage: errors.ErrInvalidLanguage,
	entities.ErrPostArchived:        errors.ErrPostArchived,

	entities.ErrUserNameRequired:     errors.ErrInvalidName,
	entities.ErrUserNameTooLong:      errors.ErrInvalidName,
	entities.ErrUserInvalidRole:      errors.ErrInvalidRole,
	entities.ErrUserInvalidProvider:  errors.ErrInvalidProvider,
	entities.ErrUserPasswordRequired: errors.ErrPasswordRequired,
	entities.ErrUserUnexpectedHash:   errors.ErrInvalidProvider,

	valueobjects.ErrInvalidEmail: errors.ErrInvalidEmail,
}

// domainError translates an entity error, passing anything else through.
func domainError(err error) error {
	if err == nil {
		return nil
	}
	for entityErr, domainErr := range entityErrors {
		if stderrors.Is(err, entityErr) {
			return domainErr
		}
	}
	return err
}
