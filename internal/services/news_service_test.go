package services

import (
	stderrors "errors"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/mock"

	"github.com/renaspress/renaspress-backend/internal/domain/entities"
	"github.com/renaspress/renaspress-backend/internal/domain/ports"
)

var _ = Describe("NewsService", func() {
	var (
		f      *fixture
		source *MockNewsSource
		news   *NewsService
		now    time.Time
	)

	BeforeEach(func() {
		f = newFixture()
		source = new(MockNewsSource)
		news = NewNewsService(f.postRepo, f.userRepo, source, f.hasher, f.logger, "us", 20)
		now = time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
		news.now = func() time.Time { return now }
		news.pick = func(int) int { return 3 }
	})

	headlines := func(articles ...ports.NewsArticle) {
		source.On("TopHeadlines", mock.Anything, "us", 20).Return(articles, nil)
	}

	It("imports headlines as published posts of the system user", func() {
		published := time.Date(2026, 4, 30, 22, 15, 0, 0, time.UTC)
		headlines(ports.NewsArticle{
			Title:       "Markets rally after rate decision",
			Description: "<p>Stocks rose &amp; bonds fell.</p>",
			Content:     "Full story",
			URL:         "https://news.example.com/markets",
			ImageURL:    "https://img.example.com/markets.jpg",
			Category:    "business",
			PublishedAt: published,
		})

		result, err := news.Import(f.ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(result.TotalArticles).To(Equal(1))
		Expect(result.Posts).To(HaveLen(1))

		post := result.Posts[0]
		Expect(post.Slug).To(Equal("markets-rally-after-rate-decision"))
		Expect(post.Status).To(Equal(entities.StatusPublished))
		Expect(post.Category).To(Equal(entities.CategoryDailyNews))
		Expect(post.Tags).To(Equal([]string{"business"}))
		Expect(post.Excerpt).To(Equal("Stocks rose bonds fell."))
		Expect(post.Content).To(Equal("Full story"))
		Expect(post.FeaturedImage).To(Equal("https://img.example.com/markets.jpg"))
		Expect(post.Media).To(HaveLen(1))
		Expect(post.PublishedAt).To(HaveValue(BeTemporally("==", published)))

		system, err := f.userRepo.FindByEmail(f.ctx, SystemUserEmail)
		Expect(err).NotTo(HaveOccurred())
		Expect(system).NotTo(BeNil())
		Expect(system.Name).To(Equal(SystemUserName))
		Expect(post.AuthorID).To(Equal(system.ID))
	})

	It("skips incomplete and already imported articles", func() {
		article := ports.NewsArticle{
			Title:       "Same story",
			Description: "Told twice",
			URL:         "https://news.example.com/same",
		}
		headlines(
			article,
			article,
			ports.NewsArticle{Title: "No description", URL: "https://news.example.com/x"},
			ports.NewsArticle{Title: "No url", Description: "d"},
		)

		result, err := news.Import(f.ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(result.TotalArticles).To(Equal(4))
		Expect(result.Posts).To(HaveLen(1))
	})

	It("fills gaps with the description, clock, placeholder and category pool", func() {
		headlines(ports.NewsArticle{
			Title:       "Quiet day",
			Description: "Nothing happened",
			URL:         "https://news.example.com/quiet",
		})

		result, err := news.Import(f.ctx)
		Expect(err).NotTo(HaveOccurred())
		post := result.Posts[0]
		Expect(post.Content).To(Equal("Nothing happened"))
		Expect(post.PublishedAt).To(HaveValue(BeTemporally("==", now)))
		Expect(post.FeaturedImage).To(Equal(newsPlaceholder))
		Expect(post.Media).To(BeEmpty())
		Expect(post.Tags).To(BeEmpty())
		Expect(post.Category).To(Equal(entities.CategoryWoman))
	})

	It("reuses the system user across runs", func() {
		source.On("TopHeadlines", mock.Anything, "us", 20).Return([]ports.NewsArticle{}, nil)

		_, err := news.Import(f.ctx)
		Expect(err).NotTo(HaveOccurred())
		first, _ := f.userRepo.FindByEmail(f.ctx, SystemUserEmail)

		_, err = news.Import(f.ctx)
		Expect(err).NotTo(HaveOccurred())
		second, _ := f.userRepo.FindByEmail(f.ctx, SystemUserEmail)
		Expect(second.ID).To(Equal(first.ID))
	})

	It("returns provider errors", func() {
		boom := stderrors.New("provider down")
		source.On("TopHeadlines", mock.Anything, "us", 20).Return(nil, boom)

		_, err := news.Import(f.ctx)
		Expect(err).To(MatchError(boom))
	})

	Describe("NewsSlug", func() {
		It("cuts long titles to fifty characters", func() {
			slug := NewsSlug(strings.Repeat("word ", 20), "https://news.example.com/a")
			Expect(len(slug)).To(BeNumerically("<=", 50))
			Expect(slug).NotTo(HaveSuffix("-"))
		})

		It("derives a stable slug from the url for non-latin titles", func() {
			a := NewsSlug("أخبار اليوم", "https://news.example.com/ar/1")
			Expect(a).To(MatchRegexp(`^news-[0-9a-f]{12}$`))
			Expect(NewsSlug("أخبار اليوم", "https://news.example.com/ar/1")).To(Equal(a))
			Expect(NewsSlug("أخبار اليوم", "https://news.example.com/ar/2")).NotTo(Equal(a))
		})
	})

	DescribeTable("CleanText",
		func(in, want string) {
			Expect(CleanText(in)).To(Equal(want))
		},
		Entry("tags", "<b>bold</b> text", "bold text"),
		Entry("entities", "fish&nbsp;&amp;&nbsp;chips", "fish chips"),
		Entry("whitespace", "  a \n\t b  ", "a b"),
	)

	Describe("NewsExcerpt", func() {
		It("keeps short text whole", func() {
			Expect(NewsExcerpt("<p>Short</p>")).To(Equal("Short"))
		})

		It("cuts on a word boundary", func() {
			text := strings.Repeat("abcdefghi ", 30)
			excerpt := NewsExcerpt(text)
			Expect(excerpt).To(HaveSuffix("abcdefghi..."))
			Expect(len([]rune(excerpt))).To(BeNumerically("<=", 203))
		})

		It("counts characters, not bytes", func() {
			text := strings.Repeat("كلمة ", 60)
			excerpt := NewsExcerpt(text)
			Expect(excerpt).To(HaveSuffix("كلمة..."))
		})
	})
})
