package services

import (
	stderrors "errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/renaspress/renaspress-backend/internal/domain/entities"
	"github.com/renaspress/renaspress-backend/internal/domain/errors"
	"github.com/renaspress/renaspress-backend/internal/domain/repositories"
)

func ptr[T any](v T) *T {
	return &v
}

var _ = Describe("UserService", func() {
	var (
		f     *fixture
		users *UserService
		admin *entities.User
	)

	BeforeEach(func() {
		f = newFixture()
		users = NewUserService(f.userRepo, f.postRepo, f.hasher, f.uow, f.logger)
		admin = f.createUser(entities.RoleAdmin)
	})

	Describe("CreateUser", func() {
		It("lets admins pick the role", func() {
			user, err := users.CreateUser(f.ctx, admin, CreateUserInput{
				Name: "Omar", Email: "omar@example.com", Password: "supersecret", Role: "editor",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(user.Role).To(Equal(entities.RoleEditor))
			Expect(*user.PasswordHash).NotTo(Equal("supersecret"))
		})

		It("is admin only", func() {
			_, err := users.CreateUser(f.ctx, f.createUser(entities.RoleEditor), CreateUserInput{
				Name: "Omar", Email: "omar@example.com", Password: "supersecret",
			})
			Expect(err).To(MatchError(errors.ErrForbidden))
		})

		It("validates role and email", func() {
			_, err := users.CreateUser(f.ctx, admin, CreateUserInput{
				Name: "Omar", Email: "omar@example.com", Password: "supersecret", Role: "owner",
			})
			Expect(err).To(MatchError(errors.ErrInvalidRole))

			_, err = users.CreateUser(f.ctx, admin, CreateUserInput{
				Name: "Omar", Email: "not-an-email", Password: "supersecret",
			})
			Expect(err).To(MatchError(errors.ErrInvalidEmail))
		})
	})

	Describe("ListUsers", func() {
		It("filters by role and search", func() {
			f.createUser(entities.RoleEditor)
			f.createUser(entities.RoleAuthor)

			role := entities.RoleEditor
			list, total, err := users.ListUsers(f.ctx, admin, repositories.UserFilters{Role: &role})
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(BeEquivalentTo(1))
			Expect(list[0].Role).To(Equal(entities.RoleEditor))

			_, total, err = users.ListUsers(f.ctx, admin, repositories.UserFilters{Search: "AUTHOR"})
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(BeEquivalentTo(1))
		})

		It("is admin only", func() {
			_, _, err := users.ListUsers(f.ctx, f.createUser(entities.RoleAuthor), repositories.UserFilters{})
			Expect(err).To(MatchError(errors.ErrForbidden))
		})
	})

	Describe("GetUser", func() {
		It("allows admins and the user themself", func() {
			author := f.createUser(entities.RoleAuthor)

			_, err := users.GetUser(f.ctx, author, author.ID)
			Expect(err).NotTo(HaveOccurred())
			_, err = users.GetUser(f.ctx, admin, author.ID)
			Expect(err).NotTo(HaveOccurred())
			_, err = users.GetUser(f.ctx, f.createUser(entities.RoleEditor), author.ID)
			Expect(err).To(MatchError(errors.ErrForbidden))
		})

		It("reports unknown users", func() {
			_, err := users.GetUser(f.ctx, admin, "5b0a3a1e-4c1d-4f38-9f53-000000000000")
			Expect(err).To(MatchError(errors.ErrUserNotFound))
		})
	})

	Describe("UpdateUser", func() {
		var author *entities.User

		BeforeEach(func() {
			author = f.createUser(entities.RoleAuthor)
		})

		It("ignores role and status changes from non-admins", func() {
			updated, err := users.UpdateUser(f.ctx, author, author.ID, UpdateUserInput{
				Name:     ptr("New Name"),
				Role:     ptr("admin"),
				IsActive: ptr(false),
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Name).To(Equal("New Name"))
			Expect(updated.Role).To(Equal(entities.RoleAuthor))
			Expect(updated.IsActive).To(BeTrue())
		})

		It("applies role and status changes from admins", func() {
			updated, err := users.UpdateUser(f.ctx, admin, author.ID, UpdateUserInput{
				Role:     ptr("editor"),
				IsActive: ptr(false),
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Role).To(Equal(entities.RoleEditor))
			Expect(updated.IsActive).To(BeFalse())
		})

		It("keeps emails unique but allows keeping your own", func() {
			_, err := users.UpdateUser(f.ctx, author, author.ID, UpdateUserInput{Email: ptr(admin.Email.String())})
			Expect(err).To(MatchError(errors.ErrEmailAlreadyExists))

			_, err = users.UpdateUser(f.ctx, author, author.ID, UpdateUserInput{Email: ptr(author.Email.String())})
			Expect(err).NotTo(HaveOccurred())
		})

		It("re-hashes a new password", func() {
			_, err := users.UpdateUser(f.ctx, author, author.ID, UpdateUserInput{Password: ptr("short")})
			Expect(err).To(MatchError(errors.ErrPasswordTooShort))

			updated, err := users.UpdateUser(f.ctx, author, author.ID, UpdateUserInput{Password: ptr("brand-new-password")})
			Expect(err).NotTo(HaveOccurred())
			Expect(f.hasher.Compare(*updated.PasswordHash, "brand-new-password")).To(Succeed())
		})

		It("forbids editing someone else", func() {
			_, err := users.UpdateUser(f.ctx, f.createUser(entities.RoleEditor), author.ID, UpdateUserInput{Name: ptr("x")})
			Expect(err).To(MatchError(errors.ErrForbidden))
		})
	})

	Describe("DeleteUser", func() {
		var author *entities.User

		BeforeEach(func() {
			author = f.createUser(entities.RoleAuthor)
		})

		It("refuses to delete the caller", func() {
			Expect(users.DeleteUser(f.ctx, admin, admin.ID, false)).To(MatchError(errors.ErrCannotDeleteSelf))
		})

		It("is admin only", func() {
			Expect(users.DeleteUser(f.ctx, author, admin.ID, false)).To(MatchError(errors.ErrForbidden))
		})

		It("refuses authors with posts unless their posts go too", func() {
			post := f.createPost(author, entities.StatusPublished, "Owned post")

			err := users.DeleteUser(f.ctx, admin, author.ID, false)
			Expect(err).To(MatchError(errors.ErrUserHasPosts))
			var domainErr *errors.DomainError
			Expect(stderrors.As(err, &domainErr)).To(BeTrue())
			Expect(domainErr.Params).To(HaveKeyWithValue("Count", BeEquivalentTo(1)))

			found, err := f.userRepo.FindByID(f.ctx, author.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found).NotTo(BeNil())

			Expect(users.DeleteUser(f.ctx, admin, author.ID, true)).To(Succeed())

			found, err = f.userRepo.FindByID(f.ctx, author.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeNil())

			gone, err := f.postRepo.FindByID(f.ctx, post.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(gone).To(BeNil())
		})

		It("keeps the deleted email reserved", func() {
			Expect(users.DeleteUser(f.ctx, admin, author.ID, false)).To(Succeed())

			_, err := users.CreateUser(f.ctx, admin, CreateUserInput{
				Name: "Again", Email: author.Email.String(), Password: "supersecret",
			})
			Expect(err).To(MatchError(errors.ErrEmailAlreadyExists))
		})
	})

	Describe("FindOrCreateSocialUser", func() {
		It("creates an author once and finds it afterwards", func() {
			profile := SocialProfile{
				Provider:   entities.ProviderGoogle,
				ProviderID: "google-123",
				Email:      "social@example.com",
				Name:       "Social User",
				Avatar:     "https://example.com/a.png",
			}

			first, err := users.FindOrCreateSocialUser(f.ctx, profile)
			Expect(err).NotTo(HaveOccurred())
			Expect(first.Role).To(Equal(entities.RoleAuthor))
			Expect(first.PasswordHash).To(BeNil())

			second, err := users.FindOrCreateSocialUser(f.ctx, profile)
			Expect(err).NotTo(HaveOccurred())
			Expect(second.ID).To(Equal(first.ID))
		})

		It("links an existing account with the same email", func() {
			author := f.createUser(entities.RoleAuthor)
			linked, err := users.FindOrCreateSocialUser(f.ctx, SocialProfile{
				Provider:   entities.ProviderFacebook,
				ProviderID: "fb-1",
				Email:      author.Email.String(),
				Name:       "Whoever",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(linked.ID).To(Equal(author.ID))
		})

		It("rejects the credentials provider", func() {
			_, err := users.FindOrCreateSocialUser(f.ctx, SocialProfile{
				Provider: entities.ProviderCredentials, ProviderID: "x", Email: "x@example.com", Name: "X",
			})
			Expect(err).To(MatchError(errors.ErrInvalidProvider))
		})
	})

	Describe("EnsureAdmin", func() {
		It("creates the admin only once", func() {
			created, isNew, err := users.EnsureAdmin(f.ctx, "Site Admin", "root@renaspress.test", "supersecret")
			Expect(err).NotTo(HaveOccurred())
			Expect(isNew).To(BeTrue())
			Expect(created.Role).To(Equal(entities.RoleAdmin))

			again, isNew, err := users.EnsureAdmin(f.ctx, "Other", "ROOT@renaspress.test", "another-secret")
			Expect(err).NotTo(HaveOccurred())
			Expect(isNew).To(BeFalse())
			Expect(again.ID).To(Equal(created.ID))
		})
	})
})
