package ports

import "github.com/renaspress/renaspress-backend/internal/domain/entities"

// TokenClaims is the identity carried by a bearer token.
type TokenClaims struct {
	UserID string
	Email  string
	Role   entities.Role
}

// TokenService issues and verifies signed bearer tokens.
type TokenService interface {
	Generate(user *entities.User) (string, error)
	Verify(token string) (*TokenClaims, error)
}

// PasswordHasher hashes and checks user passwords.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) error
}
