package services

import (
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/renaspress/renaspress-backend/internal/domain/entities"
	"github.com/renaspress/renaspress-backend/internal/domain/errors"
)

var _ = Describe("PostService", func() {
	var (
		f      *fixture
		posts  *PostService
		admin  *entities.User
		editor *entities.User
		author *entities.User
		start  time.Time
	)

	validInput := func(title string) CreatePostInput {
		return CreatePostInput{
			Title:         title,
			Content:       "<p>Body</p>",
			FeaturedImage: "https://cdn.renaspress.test/cover.jpg",
		}
	}

	BeforeEach(func() {
		f = newFixture()
		posts = NewPostService(f.postRepo, f.userRepo, f.logger)
		start = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		posts.now = steppingClock(start)
		admin = f.createUser(entities.RoleAdmin)
		editor = f.createUser(entities.RoleEditor)
		author = f.createUser(entities.RoleAuthor)
	})

	Describe("Create", func() {
		It("applies the defaults", func() {
			post, err := posts.Create(f.ctx, author, validInput("Breaking: News!"))
			Expect(err).NotTo(HaveOccurred())
			Expect(post.Status).To(Equal(entities.StatusDraft))
			Expect(post.Category).To(Equal(entities.CategoryGeneral))
			Expect(post.OriginalLanguage).To(Equal(entities.LanguageEnglish))
			Expect(post.PublishedAt).To(BeNil())
			Expect(post.AuthorID).To(Equal(author.ID))
			Expect(post.Slug).To(MatchRegexp(`^breaking-news-\d+$`))
		})

		It("treats publish as published and stamps publishedAt", func() {
			input := validInput("Launch")
			input.Status = "publish"
			post, err := posts.Create(f.ctx, editor, input)
			Expect(err).NotTo(HaveOccurred())
			Expect(post.Status).To(Equal(entities.StatusPublished))
			Expect(post.PublishedAt).NotTo(BeNil())
		})

		It("slugs titles without latin letters from the timestamp", func() {
			post, err := posts.Create(f.ctx, author, validInput("أخبار اليوم"))
			Expect(err).NotTo(HaveOccurred())
			Expect(post.Slug).To(MatchRegexp(`^post-\d+$`))
		})

		It("validates the fields", func() {
			input := validInput("No image")
			input.FeaturedImage = ""
			_, err := posts.Create(f.ctx, author, input)
			Expect(err).To(MatchError(errors.ErrFeaturedImageRequired))

			input = validInput("")
			_, err = posts.Create(f.ctx, author, input)
			Expect(err).To(MatchError(errors.ErrTitleRequired))

			input = validInput(strings.Repeat("t", 201))
			_, err = posts.Create(f.ctx, author, input)
			Expect(err).To(MatchError(errors.ErrTitleTooLong))

			input = validInput("Bad category")
			input.Category = "gossip"
			_, err = posts.Create(f.ctx, author, input)
			Expect(err).To(MatchError(errors.ErrInvalidCategory))

			input = validInput("Bad status")
			input.Status = "deleted"
			_, err = posts.Create(f.ctx, author, input)
			Expect(err).To(MatchError(errors.ErrInvalidStatus))
		})

		It("forbids subscribers", func() {
			_, err := posts.Create(f.ctx, f.createUser(entities.RoleSubscriber), validInput("Nope"))
			Expect(err).To(MatchError(errors.ErrForbidden))
		})
	})

	Describe("Get", func() {
		It("counts every fetch and returns the new count", func() {
			post := f.createPost(author, entities.StatusPublished, "Viewed")

			first, err := posts.Get(f.ctx, post.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(first.Views).To(Equal(1))

			second, err := posts.Get(f.ctx, post.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(second.Views).To(Equal(2))
		})

		It("reports unknown and malformed ids as not found", func() {
			_, err := posts.Get(f.ctx, "8d7b0c1e-1111-4a4a-9b9b-000000000000")
			Expect(err).To(MatchError(errors.ErrPostNotFound))

			_, err = posts.Get(f.ctx, "not-a-uuid")
			Expect(err).To(MatchError(errors.ErrPostNotFound))
		})
	})

	Describe("List", func() {
		BeforeEach(func() {
			f.createPost(author, entities.StatusPublished, "Published sports")
			f.createPost(author, entities.StatusDraft, "Draft story")
			f.createPost(editor, entities.StatusPending, "Pending story")
		})

		It("shows only published posts to the public", func() {
			list, total, err := posts.List(f.ctx, nil, PostQuery{Status: "draft"})
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(BeEquivalentTo(1))
			Expect(list[0].Status).To(Equal(entities.StatusPublished))
		})

		It("lets editors and admins filter by other statuses", func() {
			list, total, err := posts.List(f.ctx, editor, PostQuery{Status: "pending"})
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(BeEquivalentTo(1))
			Expect(list[0].Title).To(Equal("Pending story"))

			_, total, err = posts.List(f.ctx, admin, PostQuery{Status: "all"})
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(BeEquivalentTo(3))
		})

		It("ignores a status filter from authors", func() {
			_, total, err := posts.List(f.ctx, author, PostQuery{Status: "draft"})
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(BeEquivalentTo(1))
		})

		It("filters by category, search and slug", func() {
			_, total, err := posts.List(f.ctx, nil, PostQuery{Category: "all"})
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(BeEquivalentTo(1))

			_, total, err = posts.List(f.ctx, nil, PostQuery{Category: "sports"})
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(BeEquivalentTo(0))

			_, _, err = posts.List(f.ctx, nil, PostQuery{Category: "gossip"})
			Expect(err).To(MatchError(errors.ErrInvalidCategory))

			list, total, err := posts.List(f.ctx, nil, PostQuery{Search: "SPORTS"})
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(BeEquivalentTo(1))

			list, total, err = posts.List(f.ctx, nil, PostQuery{Slug: list[0].Slug, Search: "no match"})
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(BeEquivalentTo(1))
			Expect(list[0].Title).To(Equal("Published sports"))
		})
	})

	Describe("ListOwn", func() {
		It("returns the caller's posts in every status", func() {
			f.createPost(author, entities.StatusPublished, "Mine published")
			f.createPost(author, entities.StatusDraft, "Mine draft")
			f.createPost(editor, entities.StatusDraft, "Not mine")

			list, total, err := posts.ListOwn(f.ctx, author, PostQuery{Status: "all"})
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(BeEquivalentTo(2))
			for _, p := range list {
				Expect(p.AuthorID).To(Equal(author.ID))
			}

			_, total, err = posts.ListOwn(f.ctx, author, PostQuery{Status: "draft"})
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(BeEquivalentTo(1))
		})
	})

	Describe("Update", func() {
		var post *entities.Post

		BeforeEach(func() {
			var err error
			post, err = posts.Create(f.ctx, author, validInput("Original"))
			Expect(err).NotTo(HaveOccurred())
		})

		It("lets the owner and editors edit", func() {
			updated, err := posts.Update(f.ctx, author, post.ID, UpdatePostInput{Title: "Edited", Content: "<p>new</p>"})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Title).To(Equal("Edited"))
			Expect(updated.Slug).To(Equal(post.Slug))

			_, err = posts.Update(f.ctx, editor, post.ID, UpdatePostInput{Title: "By editor", Content: "<p>x</p>"})
			Expect(err).NotTo(HaveOccurred())
		})

		It("returns the publish time as it is stored", func() {
			posts.now = clock
			status := "published"

			updated, err := posts.Update(f.ctx, author, post.ID, UpdatePostInput{
				Title:   "Original",
				Content: "<p>Body</p>",
				Status:  &status,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.PublishedAt).NotTo(BeNil())
			Expect(updated.PublishedAt.Nanosecond() % int(time.Millisecond)).To(BeZero())

			stored, err := f.postRepo.FindByID(f.ctx, post.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.PublishedAt).To(HaveValue(BeTemporally("==", *updated.PublishedAt)))
		})

		It("forbids other authors", func() {
			_, err := posts.Update(f.ctx, f.createUser(entities.RoleAuthor), post.ID, UpdatePostInput{Title: "x", Content: "y"})
			Expect(err).To(MatchError(errors.ErrForbidden))
		})

		It("requires title and content", func() {
			_, err := posts.Update(f.ctx, author, post.ID, UpdatePostInput{Content: "y"})
			Expect(err).To(MatchError(errors.ErrTitleRequired))

			_, err = posts.Update(f.ctx, author, post.ID, UpdatePostInput{Title: "x"})
			Expect(err).To(MatchError(errors.ErrContentRequired))
		})

		It("stamps publishedAt only on the first publication", func() {
			published, err := posts.Update(f.ctx, author, post.ID, UpdatePostInput{Title: "T", Content: "C", Status: ptr("published")})
			Expect(err).NotTo(HaveOccurred())
			Expect(published.PublishedAt).NotTo(BeNil())
			firstPublished := *published.PublishedAt

			_, err = posts.Update(f.ctx, author, post.ID, UpdatePostInput{Title: "T", Content: "C", Status: ptr("draft")})
			Expect(err).NotTo(HaveOccurred())

			again, err := posts.Update(f.ctx, author, post.ID, UpdatePostInput{Title: "T", Content: "C", Status: ptr("published")})
			Expect(err).NotTo(HaveOccurred())
			Expect(again.PublishedAt.UnixMilli()).To(Equal(firstPublished.UnixMilli()))

			stored, err := f.postRepo.FindByID(f.ctx, post.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.PublishedAt.UnixMilli()).To(Equal(firstPublished.UnixMilli()))
		})

		It("never leaves archived", func() {
			_, err := posts.Update(f.ctx, author, post.ID, UpdatePostInput{Title: "T", Content: "C", Status: ptr("archived")})
			Expect(err).NotTo(HaveOccurred())

			_, err = posts.Update(f.ctx, author, post.ID, UpdatePostInput{Title: "T", Content: "C", Status: ptr("published")})
			Expect(err).To(MatchError(errors.ErrPostArchived))

			_, err = posts.Update(f.ctx, author, post.ID, UpdatePostInput{Title: "Still editable", Content: "C"})
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("Delete", func() {
		It("lets owners and admins delete but not other editors", func() {
			own := f.createPost(author, entities.StatusDraft, "Own")
			other := f.createPost(author, entities.StatusDraft, "Other")

			Expect(posts.Delete(f.ctx, editor, own.ID)).To(MatchError(errors.ErrForbidden))
			Expect(posts.Delete(f.ctx, author, own.ID)).To(Succeed())
			Expect(posts.Delete(f.ctx, admin, other.ID)).To(Succeed())

			_, err := posts.Get(f.ctx, own.ID)
			Expect(err).To(MatchError(errors.ErrPostNotFound))
		})

		It("removes bookmarks with the post", func() {
			post := f.createPost(author, entities.StatusPublished, "Saved")
			Expect(posts.Bookmark(f.ctx, editor, post.ID, ActionSave)).To(Succeed())

			Expect(posts.Delete(f.ctx, admin, post.ID)).To(Succeed())

			saved, err := posts.ListSaved(f.ctx, editor)
			Expect(err).NotTo(HaveOccurred())
			Expect(saved).To(BeEmpty())
		})
	})

	Describe("BulkPublish", func() {
		It("publishes drafts and pending posts only", func() {
			draft := f.createPost(author, entities.StatusDraft, "Draft")
			pending := f.createPost(author, entities.StatusPending, "Pending")
			published := f.createPost(author, entities.StatusPublished, "Published")
			archived := f.createPost(author, entities.StatusArchived, "Archived")

			count, err := posts.BulkPublish(f.ctx, admin, []string{
				draft.ID, pending.ID, published.ID, archived.ID, "not-a-uuid",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(BeEquivalentTo(2))

			stored, err := f.postRepo.FindByID(f.ctx, draft.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.Status).To(Equal(entities.StatusPublished))
			Expect(stored.PublishedAt).NotTo(BeNil())

			stored, err = f.postRepo.FindByID(f.ctx, archived.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.Status).To(Equal(entities.StatusArchived))
		})

		It("is admin only and needs ids", func() {
			_, err := posts.BulkPublish(f.ctx, editor, []string{"x"})
			Expect(err).To(MatchError(errors.ErrForbidden))

			_, err = posts.BulkPublish(f.ctx, admin, nil)
			Expect(err).To(MatchError(errors.ErrPostIDsRequired))
		})
	})

	Describe("React", func() {
		It("counts likes and clamps unlikes at zero", func() {
			post := f.createPost(author, entities.StatusPublished, "Liked")

			likes, err := posts.React(f.ctx, post.ID, ActionLike)
			Expect(err).NotTo(HaveOccurred())
			Expect(likes).To(Equal(1))

			for range 3 {
				likes, err = posts.React(f.ctx, post.ID, ActionUnlike)
				Expect(err).NotTo(HaveOccurred())
			}
			Expect(likes).To(Equal(0))
		})

		It("rejects unknown actions and posts", func() {
			post := f.createPost(author, entities.StatusPublished, "Liked")
			_, err := posts.React(f.ctx, post.ID, "love")
			Expect(err).To(MatchError(errors.ErrInvalidAction))

			_, err = posts.React(f.ctx, "8d7b0c1e-1111-4a4a-9b9b-000000000000", ActionLike)
			Expect(err).To(MatchError(errors.ErrPostNotFound))
		})
	})

	Describe("Bookmark", func() {
		It("saves once and unsaves", func() {
			post := f.createPost(author, entities.StatusPublished, "Bookmarked")

			Expect(posts.Bookmark(f.ctx, editor, post.ID, ActionSave)).To(Succeed())
			Expect(posts.Bookmark(f.ctx, editor, post.ID, ActionSave)).To(Succeed())

			saved, err := posts.ListSaved(f.ctx, editor)
			Expect(err).NotTo(HaveOccurred())
			Expect(saved).To(HaveLen(1))
			Expect(saved[0].ID).To(Equal(post.ID))

			Expect(posts.Bookmark(f.ctx, editor, post.ID, ActionUnsave)).To(Succeed())
			saved, err = posts.ListSaved(f.ctx, editor)
			Expect(err).NotTo(HaveOccurred())
			Expect(saved).To(BeEmpty())
		})

		It("validates the action and the post", func() {
			Expect(posts.Bookmark(f.ctx, editor, "x", "keep")).To(MatchError(errors.ErrInvalidAction))
			Expect(posts.Bookmark(f.ctx, editor, "8d7b0c1e-1111-4a4a-9b9b-000000000000", ActionSave)).
				To(MatchError(errors.ErrPostNotFound))
		})
	})
})
