package services

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/renaspress/renaspress-backend/internal/domain/entities"
	"github.com/renaspress/renaspress-backend/internal/domain/errors"
	"github.com/renaspress/renaspress-backend/internal/domain/repositories"
)

var _ = Describe("ForumService", func() {
	var (
		f      *fixture
		forum  *ForumService
		member *entities.User
	)

	BeforeEach(func() {
		f = newFixture()
		forum = NewForumService(f.forumRepo, f.uow, f.logger)
		forum.now = steppingClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
		member = f.createUser(entities.RoleAuthor)
	})

	newTopic := func(title string) *entities.ForumTopic {
		topic, err := forum.CreateTopic(f.ctx, member, CreateTopicInput{
			Title:   title,
			Content: title + " content",
			Tags:    []string{"Community", "community"},
		})
		Expect(err).NotTo(HaveOccurred())
		return topic
	}

	Describe("CreateTopic", func() {
		It("requires a signed-in author", func() {
			_, err := forum.CreateTopic(f.ctx, nil, CreateTopicInput{Title: "t", Content: "c"})
			Expect(err).To(MatchError(errors.ErrNoToken))
		})

		It("defaults the category to general", func() {
			topic := newTopic("Welcome")
			Expect(topic.ID).NotTo(BeEmpty())
			Expect(topic.Category).To(Equal("general"))
			Expect(topic.AuthorID).To(Equal(member.ID))
		})

		It("requires a title and content", func() {
			_, err := forum.CreateTopic(f.ctx, member, CreateTopicInput{Title: "  ", Content: "c"})
			Expect(err).To(MatchError(errors.ErrTitleRequired))

			_, err = forum.CreateTopic(f.ctx, member, CreateTopicInput{Title: "t"})
			Expect(err).To(MatchError(errors.ErrContentRequired))
		})
	})

	Describe("ListTopics", func() {
		It("filters by category and search", func() {
			newTopic("Elections in the region")
			_, err := forum.CreateTopic(f.ctx, member, CreateTopicInput{
				Title: "Match day", Content: "Who wins?", Category: "sports",
			})
			Expect(err).NotTo(HaveOccurred())

			topics, total, err := forum.ListTopics(f.ctx, repositories.TopicFilters{Category: "sports"})
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(BeEquivalentTo(1))
			Expect(topics[0].Title).To(Equal("Match day"))

			_, total, err = forum.ListTopics(f.ctx, repositories.TopicFilters{Search: " elections "})
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(BeEquivalentTo(1))
		})
	})

	Describe("GetTopic", func() {
		It("counts a view on every fetch", func() {
			topic := newTopic("Views")

			page, err := forum.GetTopic(f.ctx, topic.ID, 1, 20)
			Expect(err).NotTo(HaveOccurred())
			Expect(page.Topic.Views).To(Equal(1))

			page, err = forum.GetTopic(f.ctx, topic.ID, 1, 20)
			Expect(err).NotTo(HaveOccurred())
			Expect(page.Topic.Views).To(Equal(2))
			Expect(page.Comments).To(BeEmpty())
		})

		It("reports unknown topics", func() {
			_, err := forum.GetTopic(f.ctx, "0f0e0d0c-0000-4000-8000-000000000000", 1, 20)
			Expect(err).To(MatchError(errors.ErrTopicNotFound))
		})
	})

	Describe("CreateComment", func() {
		var topic *entities.ForumTopic

		BeforeEach(func() {
			topic = newTopic("Discussion")
		})

		It("uses the signed-in user's name", func() {
			comment, err := forum.CreateComment(f.ctx, member, CreateCommentInput{
				TopicID: topic.ID, Content: "First!", AuthorName: "ignored",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(comment.IsAnonymous()).To(BeFalse())
			Expect(comment.AuthorName).To(Equal(member.Name))
		})

		It("needs a name from anonymous callers", func() {
			_, err := forum.CreateComment(f.ctx, nil, CreateCommentInput{TopicID: topic.ID, Content: "hi"})
			Expect(err).To(MatchError(errors.ErrAuthorNameRequired))

			comment, err := forum.CreateComment(f.ctx, nil, CreateCommentInput{
				TopicID: topic.ID, Content: "hi", AuthorName: "Guest",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(comment.IsAnonymous()).To(BeTrue())
			Expect(comment.AuthorName).To(Equal("Guest"))
		})

		It("requires content", func() {
			_, err := forum.CreateComment(f.ctx, member, CreateCommentInput{TopicID: topic.ID, Content: "   "})
			Expect(err).To(MatchError(errors.ErrCommentContentRequired))
		})

		It("updates the reply counter and last reply", func() {
			_, err := forum.CreateComment(f.ctx, nil, CreateCommentInput{
				TopicID: topic.ID, Content: "one", AuthorName: "Guest",
			})
			Expect(err).NotTo(HaveOccurred())
			_, err = forum.CreateComment(f.ctx, member, CreateCommentInput{TopicID: topic.ID, Content: "two"})
			Expect(err).NotTo(HaveOccurred())

			page, err := forum.GetTopic(f.ctx, topic.ID, 1, 20)
			Expect(err).NotTo(HaveOccurred())
			Expect(page.Topic.Replies).To(Equal(2))
			Expect(page.Topic.LastReply).NotTo(BeNil())
			Expect(page.Topic.LastReply.AuthorName).To(Equal(member.Name))
			Expect(page.TotalComments).To(BeEquivalentTo(2))
			Expect(page.Comments).To(HaveLen(2))
		})

		It("threads replies under a parent of the same topic", func() {
			parent, err := forum.CreateComment(f.ctx, member, CreateCommentInput{TopicID: topic.ID, Content: "parent"})
			Expect(err).NotTo(HaveOccurred())

			reply, err := forum.CreateComment(f.ctx, member, CreateCommentInput{
				TopicID: topic.ID, Content: "reply", ParentID: parent.ID,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(reply.ParentCommentID).To(HaveValue(Equal(parent.ID)))

			other := newTopic("Elsewhere")
			_, err = forum.CreateComment(f.ctx, member, CreateCommentInput{
				TopicID: other.ID, Content: "cross", ParentID: parent.ID,
			})
			Expect(err).To(MatchError(errors.ErrParentCommentNotFound))
		})

		It("refuses locked topics and leaves them untouched", func() {
			locked := &entities.ForumTopic{
				Title: "Closed", Content: "No more", AuthorID: member.ID, Category: "general", IsLocked: true,
			}
			Expect(f.forumRepo.CreateTopic(f.ctx, locked)).To(Succeed())

			_, err := forum.CreateComment(f.ctx, member, CreateCommentInput{TopicID: locked.ID, Content: "hello?"})
			Expect(err).To(MatchError(errors.ErrTopicLocked))

			stored, err := f.forumRepo.FindTopicByID(f.ctx, locked.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.Replies).To(BeZero())
			Expect(stored.LastReply).To(BeNil())
		})

		It("reports unknown topics", func() {
			_, err := forum.CreateComment(f.ctx, member, CreateCommentInput{
				TopicID: "0f0e0d0c-0000-4000-8000-000000000000", Content: "hi",
			})
			Expect(err).To(MatchError(errors.ErrTopicNotFound))
		})
	})
})
