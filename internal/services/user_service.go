package services

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/renaspress/renaspress-backend/internal/domain/entities"
	"github.com/renaspress/renaspress-backend/internal/domain/errors"
	"github.com/renaspress/renaspress-backend/internal/domain/ports"
	"github.com/renaspress/renaspress-backend/internal/domain/repositories"
	"github.com/renaspress/renaspress-backend/internal/domain/valueobjects"
)

// UserService holds the account management rules.
type UserService struct {
	userRepo repositories.UserRepository
	postRepo repositories.PostRepository
	hasher   ports.PasswordHasher
	uow      ports.UnitOfWork
	logger   ports.Logger
	now      func() time.Time
}

func NewUserService(
	userRepo repositories.UserRepository,
	postRepo repositories.PostRepository,
	hasher ports.PasswordHasher,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *UserService {
	return &UserService{
		userRepo: userRepo,
		postRepo: postRepo,
		hasher:   hasher,
		uow:      uow,
		logger:   logger,
		now:      clock,
	}
}

// CreateUserInput is a new credentials account. An empty Role means author.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// UpdateUserInput carries only the fields to change.
type UpdateUserInput struct {
	Name     *string
	Email    *string
	Password *string
	Role     *string
	IsActive *bool
}

// SocialProfile is what an OAuth provider reports about a signed-in user.
type SocialProfile struct {
	Provider   entities.Provider
	ProviderID string
	Email      string
	Name       string
	Avatar     string
}

// CreateUser is the admin operation; the role is selectable.
func (s *UserService) CreateUser(ctx context.Context, actor *entities.User, input CreateUserInput) (*entities.User, error) {
	if !entities.CanManageUsers(actor) {
		return nil, errors.ErrForbidden
	}
	return s.createCredentialsUser(ctx, input)
}

// createCredentialsUser validates, hashes and stores a password account.
func (s *UserService) createCredentialsUser(ctx context.Context, input CreateUserInput) (*entities.User, error) {
	role := entities.RoleAuthor
	if input.Role != "" {
		r, ok := entities.ParseRole(input.Role)
		if !ok {
			return nil, errors.ErrInvalidRole
		}
		role = r
	}

	if input.Password == "" {
		return nil, errors.ErrPasswordRequired
	}
	if utf8.RuneCountInString(input.Password) < entities.MinPasswordLength {
		return nil, errors.ErrPasswordTooShort
	}

	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, errors.ErrInvalidEmail
	}

	taken, err := s.userRepo.EmailTaken(ctx, email.String(), "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errors.ErrEmailAlreadyExists
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		PasswordHash: &hash,
		Role:         role,
		IsActive:     true,
		Provider:     entities.ProviderCredentials,
	}
	if err := user.Validate(); err != nil {
		return nil, domainError(err)
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user created", "user_id", user.ID, "role", user.Role)
	return user, nil
}

// GetUser lets admins read any account and users read their own.
func (s *UserService) GetUser(ctx context.Context, actor *entities.User, id string) (*entities.User, error) {
	if !entities.CanViewUser(actor, id) {
		return nil, errors.ErrForbidden
	}
	return s.findUser(ctx, id)
}

func (s *UserService) findUser(ctx context.Context, id string) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context, actor *entities.User, filters repositories.UserFilters) ([]*entities.User, int64, error) {
	if !entities.CanManageUsers(actor) {
		return nil, 0, errors.ErrForbidden
	}
	return s.userRepo.List(ctx, filters)
}

// UpdateUser applies a partial update. Role and active flag changes from
// non-admins are ignored rather than rejected.
func (s *UserService) UpdateUser(ctx context.Context, actor *entities.User, id string, input UpdateUserInput) (*entities.User, error) {
	if !entities.CanEditUser(actor, id) {
		return nil, errors.ErrForbidden
	}

	user, err := s.findUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = strings.TrimSpace(*input.Name)
	}

	if input.Email != nil {
		email, err := valueobjects.NewEmail(*input.Email)
		if err != nil {
			return nil, errors.ErrInvalidEmail
		}
		taken, err := s.userRepo.EmailTaken(ctx, email.String(), user.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, errors.ErrEmailAlreadyExists
		}
		user.Email = email
	}

	if entities.CanChangeRoleOrStatus(actor) {
		if input.Role != nil {
			role, ok := entities.ParseRole(*input.Role)
			if !ok {
				return nil, errors.ErrInvalidRole
			}
			user.Role = role
		}
		if input.IsActive != nil {
			user.IsActive = *input.IsActive
		}
	}

	if input.Password != nil {
		if user.Provider != entities.ProviderCredentials {
			return nil, errors.ErrInvalidProvider
		}
		if utf8.RuneCountInString(*input.Password) < entities.MinPasswordLength {
			return nil, errors.ErrPasswordTooShort
		}
		hash, err := s.hasher.Hash(*input.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = &hash
	}

	if err := user.Validate(); err != nil {
		return nil, domainError(err)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user updated", "user_id", user.ID, "by", actor.ID)
	return user, nil
}

// DeleteUser removes an account. Accounts that still own posts are only
// removed with deletePosts, which deletes the posts in the same transaction.
func (s *UserService) DeleteUser(ctx context.Context, actor *entities.User, id string, deletePosts bool) error {
	if !entities.CanManageUsers(actor) {
		return errors.ErrForbidden
	}
	if !entities.CanDeleteUser(actor, id) {
		return errors.ErrCannotDeleteSelf
	}

	return s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		user, err := s.findUser(txCtx, id)
		if err != nil {
			return err
		}

		if deletePosts {
			if err := s.postRepo.DeleteByAuthor(txCtx, user.ID); err != nil {
				return err
			}
		} else {
			count, err := s.postRepo.CountByAuthor(txCtx, user.ID)
			if err != nil {
				return err
			}
			if count > 0 {
				return errors.ErrUserHasPosts.WithParams(map[string]any{"Count": count})
			}
		}

		if err := s.userRepo.Delete(txCtx, user.ID); err != nil {
			return err
		}

		s.logger.Info("user deleted", "user_id", user.ID, "by", actor.ID, "delete_posts", deletePosts)
		return nil
	})
}

// FindOrCreateSocialUser returns the account linked to an OAuth identity,
// linking an existing account with the same email or creating an author
// account on first sign-in.
func (s *UserService) FindOrCreateSocialUser(ctx context.Context, profile SocialProfile) (*entities.User, error) {
	if !profile.Provider.IsValid() || profile.Provider == entities.ProviderCredentials || profile.ProviderID == "" {
		return nil, errors.ErrInvalidProvider
	}

	user, err := s.userRepo.FindByProvider(ctx, profile.Provider, profile.ProviderID)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	email, err := valueobjects.NewEmail(profile.Email)
	if err != nil {
		return nil, errors.ErrInvalidEmail
	}

	user, err = s.userRepo.FindByEmail(ctx, email.String())
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	providerID := profile.ProviderID
	user = &entities.User{
		Name:       strings.TrimSpace(profile.Name),
		Email:      email,
		Role:       entities.RoleAuthor,
		IsActive:   true,
		Provider:   profile.Provider,
		ProviderID: &providerID,
	}
	if profile.Avatar != "" {
		avatar := profile.Avatar
		user.Avatar = &avatar
	}
	if err := user.Validate(); err != nil {
		return nil, domainError(err)
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("social user created", "user_id", user.ID, "provider", user.Provider)
	return user, nil
}

// EnsureAdmin creates the admin account unless a user with that email
// already exists. The existing account is returned untouched.
func (s *UserService) EnsureAdmin(ctx context.Context, name, email, password string) (*entities.User, bool, error) {
	normalized, err := valueobjects.NewEmail(email)
	if err != nil {
		return nil, false, errors.ErrInvalidEmail
	}

	existing, err := s.userRepo.FindByEmail(ctx, normalized.String())
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	user, err := s.createCredentialsUser(ctx, CreateUserInput{
		Name:     name,
		Email:    normalized.String(),
		Password: password,
		Role:     string(entities.RoleAdmin),
	})
	if err != nil {
		return nil, false, err
	}
	return user, true, nil
}
