package services

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/renaspress/renaspress-backend/internal/domain/entities"
	"github.com/renaspress/renaspress-backend/internal/domain/errors"
	"github.com/renaspress/renaspress-backend/internal/infrastructure/security"
)

var _ = Describe("AuthService", func() {
	var (
		f      *fixture
		tokens *security.JWTService
		auth   *AuthService
	)

	BeforeEach(func() {
		f = newFixture()
		tokens = security.NewJWTService("test-secret-test-secret-test-secret", time.Hour, "renaspress")
		users := NewUserService(f.userRepo, f.postRepo, f.hasher, f.uow, f.logger)
		auth = NewAuthService(f.userRepo, users, tokens, f.hasher, f.logger)
	})

	Describe("Register", func() {
		It("creates an author and returns a valid token", func() {
			result, err := auth.Register(f.ctx, RegisterInput{
				Name:            "Layla Hassan",
				Email:           "Layla@Example.com",
				Password:        "supersecret",
				ConfirmPassword: "supersecret",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.User.Role).To(Equal(entities.RoleAuthor))
			Expect(result.User.Email.String()).To(Equal("layla@example.com"))
			Expect(result.User.IsActive).To(BeTrue())

			claims, err := tokens.Verify(result.Token)
			Expect(err).NotTo(HaveOccurred())
			Expect(claims.UserID).To(Equal(result.User.ID))
			Expect(claims.Role).To(Equal(entities.RoleAuthor))
		})

		It("rejects mismatched passwords", func() {
			_, err := auth.Register(f.ctx, RegisterInput{
				Name: "A", Email: "a@example.com", Password: "supersecret", ConfirmPassword: "different1",
			})
			Expect(err).To(MatchError(errors.ErrPasswordMismatch))
		})

		It("rejects short passwords", func() {
			_, err := auth.Register(f.ctx, RegisterInput{
				Name: "A", Email: "a@example.com", Password: "short", ConfirmPassword: "short",
			})
			Expect(err).To(MatchError(errors.ErrPasswordTooShort))
		})

		It("rejects a taken email", func() {
			input := RegisterInput{Name: "A", Email: "a@example.com", Password: "supersecret", ConfirmPassword: "supersecret"}
			_, err := auth.Register(f.ctx, input)
			Expect(err).NotTo(HaveOccurred())

			input.Email = "A@EXAMPLE.COM"
			_, err = auth.Register(f.ctx, input)
			Expect(err).To(MatchError(errors.ErrEmailAlreadyExists))
		})
	})

	Describe("Login", func() {
		var user *entities.User

		BeforeEach(func() {
			user = f.createUser(entities.RoleEditor)
		})

		It("signs in with the right password", func() {
			result, err := auth.Login(f.ctx, user.Email.String(), testPassword)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.User.ID).To(Equal(user.ID))
			Expect(result.Token).NotTo(BeEmpty())
		})

		It("gives unknown emails and wrong passwords the same error", func() {
			_, err := auth.Login(f.ctx, user.Email.String(), "wrong-password")
			Expect(err).To(MatchError(errors.ErrInvalidCredentials))

			_, err = auth.Login(f.ctx, "nobody@example.com", testPassword)
			Expect(err).To(MatchError(errors.ErrInvalidCredentials))
		})

		It("refuses deactivated accounts", func() {
			user.IsActive = false
			Expect(f.userRepo.Update(f.ctx, user)).To(Succeed())

			_, err := auth.Login(f.ctx, user.Email.String(), testPassword)
			Expect(err).To(MatchError(errors.ErrAccountInactive))
		})
	})

	Describe("Authenticate", func() {
		It("requires a bearer token", func() {
			_, err := auth.Authenticate(f.ctx, "")
			Expect(err).To(MatchError(errors.ErrNoToken))

			_, err = auth.Authenticate(f.ctx, "Basic abc")
			Expect(err).To(MatchError(errors.ErrNoToken))

			_, err = auth.Authenticate(f.ctx, "Bearer   ")
			Expect(err).To(MatchError(errors.ErrNoToken))
		})

		It("rejects tokens that do not verify", func() {
			_, err := auth.Authenticate(f.ctx, "Bearer not-a-jwt")
			Expect(err).To(MatchError(errors.ErrInvalidToken))

			other := security.NewJWTService("another-secret-another-secret-xx", time.Hour, "renaspress")
			token, err := other.Generate(f.createUser(entities.RoleAuthor))
			Expect(err).NotTo(HaveOccurred())

			_, err = auth.Authenticate(f.ctx, "Bearer "+token)
			Expect(err).To(MatchError(errors.ErrInvalidToken))
		})

		It("resolves an active user", func() {
			user := f.createUser(entities.RoleAdmin)
			token, err := tokens.Generate(user)
			Expect(err).NotTo(HaveOccurred())

			got, err := auth.Authenticate(f.ctx, "Bearer "+token)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.ID).To(Equal(user.ID))
			Expect(got.Role).To(Equal(entities.RoleAdmin))
		})

		It("rejects inactive and deleted users", func() {
			inactive := f.createUser(entities.RoleAuthor)
			inactive.IsActive = false
			Expect(f.userRepo.Update(f.ctx, inactive)).To(Succeed())
			token, _ := tokens.Generate(inactive)

			_, err := auth.Authenticate(f.ctx, "Bearer "+token)
			Expect(err).To(MatchError(errors.ErrUserNotFoundOrInactive))

			deleted := f.createUser(entities.RoleAuthor)
			token, _ = tokens.Generate(deleted)
			Expect(f.userRepo.Delete(f.ctx, deleted.ID)).To(Succeed())

			_, err = auth.Authenticate(f.ctx, "Bearer "+token)
			Expect(err).To(MatchError(errors.ErrUserNotFoundOrInactive))
		})
	})
})
