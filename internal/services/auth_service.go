package services

import (
	"context"
	"strings"

	"github.com/renaspress/renaspress-backend/internal/domain/entities"
	"github.com/renaspress/renaspress-backend/internal/domain/errors"
	"github.com/renaspress/renaspress-backend/internal/domain/ports"
	"github.com/renaspress/renaspress-backend/internal/domain/repositories"
	"github.com/renaspress/renaspress-backend/internal/domain/valueobjects"
)

const bearerPrefix = "Bearer "

// AuthService registers, signs in and authenticates users.
type AuthService struct {
	userRepo repositories.UserRepository
	users    *UserService
	tokens   ports.TokenService
	hasher   ports.PasswordHasher
	logger   ports.Logger
}

func NewAuthService(
	userRepo repositories.UserRepository,
	users *UserService,
	tokens ports.TokenService,
	hasher ports.PasswordHasher,
	logger ports.Logger,
) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		users:    users,
		tokens:   tokens,
		hasher:   hasher,
		logger:   logger,
	}
}

type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// AuthResult is a signed-in user and its bearer token.
type AuthResult struct {
	User  *entities.User
	Token string
}

// Register creates a credentials account. Self-registered users are always
// authors; other roles are assigned by an admin.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	if input.Password != input.ConfirmPassword {
		return nil, errors.ErrPasswordMismatch
	}

	user, err := s.users.createCredentialsUser(ctx, CreateUserInput{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		Role:     string(entities.RoleAuthor),
	})
	if err != nil {
		return nil, err
	}

	return s.issue(user)
}

// Login checks a password. Unknown emails and wrong passwords get the same
// error.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	normalized, err := valueobjects.NewEmail(email)
	if err != nil {
		return nil, errors.ErrInvalidCredentials
	}

	user, err := s.userRepo.FindByEmail(ctx, normalized.String())
	if err != nil {
		return nil, err
	}
	if user == nil || user.PasswordHash == nil {
		return nil, errors.ErrInvalidCredentials
	}
	if err := s.hasher.Compare(*user.PasswordHash, password); err != nil {
		return nil, errors.ErrInvalidCredentials
	}
	if !user.CanSignIn() {
		return nil, errors.ErrAccountInactive
	}

	s.logger.Info("user logged in", "user_id", user.ID)
	return s.issue(user)
}

func (s *AuthService) issue(user *entities.User) (*AuthResult, error) {
	token, err := s.tokens.Generate(user)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user, Token: token}, nil
}

// Authenticate resolves an Authorization header to an active user.
func (s *AuthService) Authenticate(ctx context.Context, header string) (*entities.User, error) {
	token, ok := strings.CutPrefix(header, bearerPrefix)
	token = strings.TrimSpace(token)
	if !ok || token == "" {
		return nil, errors.ErrNoToken
	}

	claims, err := s.tokens.Verify(token)
	if err != nil {
		s.logger.Debug("token rejected", "error", err)
		return nil, errors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.CanSignIn() {
		return nil, errors.ErrUserNotFoundOrInactive
	}

	return user, nil
}
