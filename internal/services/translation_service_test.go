package services

import (
	stderrors "errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/mock"

	"github.com/renaspress/renaspress-backend/internal/domain/entities"
	"github.com/renaspress/renaspress-backend/internal/domain/errors"
	"github.com/renaspress/renaspress-backend/internal/domain/ports"
)

var _ = Describe("TranslationService", func() {
	var (
		f          *fixture
		translator *MockTranslator
		service    *TranslationService
		post       *entities.Post
	)

	BeforeEach(func() {
		f = newFixture()
		translator = new(MockTranslator)
		service = NewTranslationService(f.postRepo, translator, f.logger)
		post = f.createPost(f.createUser(entities.RoleAuthor), entities.StatusPublished, "Hello")
	})

	Describe("TranslatePost", func() {
		It("translates once and serves the stored copy afterwards", func() {
			translator.On("Translate", mock.Anything, []string{post.Title, post.Excerpt, post.Content}, "en", "ar").
				Return([]string{"مرحبا", "ملخص", "<p>نص</p>"}, nil).Once()

			first, err := service.TranslatePost(f.ctx, post.ID, "ar")
			Expect(err).NotTo(HaveOccurred())
			Expect(first.Cached).To(BeFalse())
			Expect(first.Fallback).To(BeFalse())
			Expect(first.Translation.Title).To(Equal("مرحبا"))
			Expect(first.Translation.Excerpt).To(Equal("ملخص"))
			Expect(first.Translation.Content).To(Equal("<p>نص</p>"))

			second, err := service.TranslatePost(f.ctx, post.ID, "ar")
			Expect(err).NotTo(HaveOccurred())
			Expect(second.Cached).To(BeTrue())
			Expect(second.Translation.Title).To(Equal("مرحبا"))

			translator.AssertNumberOfCalls(GinkgoT(), "Translate", 1)
		})

		It("falls back to the original text without storing it", func() {
			translator.On("Translate", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
				Return(nil, errors.ErrTranslatorDisabled)

			result, err := service.TranslatePost(f.ctx, post.ID, "ar")
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Fallback).To(BeTrue())
			Expect(result.Translation.Title).To(Equal(post.Title))

			stored, err := service.GetTranslations(f.ctx, post.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.Translations).To(BeEmpty())
		})

		It("returns the original for the post's own language", func() {
			result, err := service.TranslatePost(f.ctx, post.ID, "en")
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Translation.Content).To(Equal(post.Content))
			translator.AssertNotCalled(GinkgoT(), "Translate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})

		It("validates the language and the post", func() {
			_, err := service.TranslatePost(f.ctx, post.ID, "fr")
			Expect(err).To(MatchError(errors.ErrInvalidLanguage))

			_, err = service.TranslatePost(f.ctx, "8d7b0c1e-1111-4a4a-9b9b-000000000000", "ar")
			Expect(err).To(MatchError(errors.ErrPostNotFound))
		})
	})

	Describe("free text", func() {
		It("translates a batch in order", func() {
			translator.On("Translate", mock.Anything, []string{"one", "two"}, "en", "ar").
				Return([]string{"واحد", "اثنان"}, nil)

			results, err := service.TranslateBatch(f.ctx, []string{"one", "two"}, "en", "ar")
			Expect(err).NotTo(HaveOccurred())
			Expect(results).To(Equal([]TextTranslation{
				{TranslatedText: "واحد", DetectedSourceLanguage: "en"},
				{TranslatedText: "اثنان", DetectedSourceLanguage: "en"},
			}))
		})

		It("returns the input when the provider fails", func() {
			translator.On("Translate", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
				Return(nil, stderrors.New("boom"))

			result, err := service.Translate(f.ctx, "<b>hi</b>", "", "ar")
			Expect(err).NotTo(HaveOccurred())
			Expect(result.TranslatedText).To(Equal("<b>hi</b>"))
		})

		It("requires a target and text", func() {
			_, err := service.Translate(f.ctx, "hi", "", "")
			Expect(err).To(MatchError(errors.ErrInvalidLanguage))

			_, err = service.Translate(f.ctx, "  ", "", "ar")
			Expect(err).To(MatchError(errors.ErrTextRequired))

			_, err = service.TranslateBatch(f.ctx, nil, "", "ar")
			Expect(err).To(MatchError(errors.ErrTextRequired))
		})

		It("detects the language and defaults to en", func() {
			translator.On("Detect", mock.Anything, "مرحبا").Return("ar", nil)
			translator.On("Detect", mock.Anything, "???").Return("", stderrors.New("boom"))

			lang, err := service.Detect(f.ctx, "مرحبا")
			Expect(err).NotTo(HaveOccurred())
			Expect(lang).To(Equal("ar"))

			lang, err = service.Detect(f.ctx, "???")
			Expect(err).NotTo(HaveOccurred())
			Expect(lang).To(Equal("en"))
		})

		It("lists en and ar when the provider cannot", func() {
			translator.On("Languages", mock.Anything, "en").Return(nil, errors.ErrTranslatorDisabled)

			Expect(service.Languages(f.ctx, "en")).To(Equal([]ports.Language{
				{Code: "en", Name: "English"},
				{Code: "ar", Name: "Arabic"},
			}))
		})
	})
})
