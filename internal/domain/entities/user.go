package entities

import (
	"errors"
	"time"
	"unicode/utf8"

	"github.com/renaspress/renaspress-backend/internal/domain/valueobjects"
)

const (
	MaxUserNameLength = 50
	MinPasswordLength = 8
)

// Provider is how a user signs in.
type Provider string

const (
	ProviderCredentials Provider = "credentials"
	ProviderGoogle      Provider = "google"
	ProviderFacebook    Provider = "facebook"
)

func (p Provider) IsValid() bool {
	switch p {
	case ProviderCredentials, ProviderGoogle, ProviderFacebook:
		return true
	}
	return false
}

var (
	ErrUserNameRequired     = errors.New("name is required")
	ErrUserNameTooLong      = errors.New("name cannot be more than 50 characters")
	ErrUserInvalidRole      = errors.New("invalid role")
	ErrUserInvalidProvider  = errors.New("invalid provider")
	ErrUserPasswordRequired = errors.New("password hash is required for credentials accounts")
	ErrUserUnexpectedHash   = errors.New("social accounts cannot carry a password hash")
)

// User is a newsroom account.
type User struct {
	ID           string
	Name         string
	Email        valueobjects.Email
	PasswordHash *string
	Role         Role
	IsActive     bool
	Avatar       *string
	Provider     Provider
	ProviderID   *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) HasPermission(permission Permission) bool {
	return u.Role.HasPermission(permission)
}

// GetPermissions lists the user's grants as strings.
func (u *User) GetPermissions() []string {
	perms := u.Role.GetPermissions()
	result := make([]string, len(perms))
	for i, p := range perms {
		result[i] = string(p)
	}
	return result
}

func (u *User) IsDeleted() bool {
	return u.DeletedAt != nil
}

// CanSignIn reports whether the account may authenticate.
func (u *User) CanSignIn() bool {
	return u.IsActive && !u.IsDeleted()
}

func (u *User) SoftDelete(now time.Time) {
	u.DeletedAt = &now
}

// Validate checks the user's own invariants. A password hash is present
// exactly when the provider is credentials.
func (u *User) Validate() error {
	if u.Name == "" {
		return ErrUserNameRequired
	}
	if utf8.RuneCountInString(u.Name) > MaxUserNameLength {
		return ErrUserNameTooLong
	}
	if u.Email.IsZero() {
		return valueobjects.ErrInvalidEmail
	}
	if !u.Role.IsValid() {
		return ErrUserInvalidRole
	}
	if !u.Provider.IsValid() {
		return ErrUserInvalidProvider
	}

	hasHash := u.PasswordHash != nil && *u.PasswordHash != ""
	if u.Provider == ProviderCredentials && !hasHash {
		return ErrUserPasswordRequired
	}
	if u.Provider != ProviderCredentials && hasHash {
		return ErrUserUnexpectedHash
	}

	return nil
}
