package services

import (
	"context"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/mock"

	"github.com/renaspress/renaspress-backend/internal/domain/entities"
	"github.com/renaspress/renaspress-backend/internal/domain/errors"
	"github.com/renaspress/renaspress-backend/internal/infrastructure/logging"
)

var _ = Describe("MediaService", func() {
	var (
		storage *MockStorage
		service *MediaService
		now     time.Time
	)

	file := func(name, contentType string, size int64) *UploadFile {
		return &UploadFile{
			Filename:    name,
			ContentType: contentType,
			Size:        size,
			Body:        strings.NewReader("data"),
		}
	}

	BeforeEach(func() {
		storage = new(MockStorage)
		service = NewMediaService(storage, logging.NewDiscardLogger())
		now = time.UnixMilli(1714564800123)
		service.now = func() time.Time { return now }
	})

	It("stores an image under a unique key", func() {
		storage.On("Put", mock.Anything, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "images/1714564800123_") && strings.HasSuffix(key, ".png")
		}), "image/png", mock.Anything, int64(2048)).
			Return("https://cdn.renaspress.test/images/x.png", nil)

		result, err := service.Upload(context.Background(), entities.MediaImage, file("Photo.PNG", "image/png", 2048))
		Expect(err).NotTo(HaveOccurred())
		Expect(result.ID).To(Equal("img_1714564800123"))
		Expect(result.URL).To(Equal("https://cdn.renaspress.test/images/x.png"))
		Expect(result.Filename).To(MatchRegexp(`^1714564800123_[0-9a-f]{13}\.png$`))
		Expect(result.ContentType).To(Equal("image/png"))
		Expect(result.Size).To(BeEquivalentTo(2048))
		storage.AssertExpectations(GinkgoT())
	})

	It("uses the video folder and id prefix", func() {
		storage.On("Put", mock.Anything, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "videos/") && strings.HasSuffix(key, ".mp4")
		}), "video/mp4", mock.Anything, mock.Anything).Return("https://cdn/v.mp4", nil)

		result, err := service.Upload(context.Background(), entities.MediaVideo, file("clip", "video/mp4", 50<<20))
		Expect(err).NotTo(HaveOccurred())
		Expect(result.ID).To(Equal("video_1714564800123"))
	})

	It("enforces the allow-list and size caps", func() {
		_, err := service.Upload(context.Background(), entities.MediaImage, file("a.svg", "image/svg+xml", 10))
		Expect(err).To(MatchError(errors.ErrUnsupportedMediaType))

		_, err = service.Upload(context.Background(), entities.MediaImage, file("a.jpg", "image/jpeg", MaxImageSize+1))
		Expect(err).To(MatchError(errors.ErrFileTooLarge))

		_, err = service.Upload(context.Background(), entities.MediaVideo, file("a.mp4", "video/mp4", MaxVideoSize+1))
		Expect(err).To(MatchError(errors.ErrFileTooLarge))

		_, err = service.Upload(context.Background(), entities.MediaVideo, nil)
		Expect(err).To(MatchError(errors.ErrNoFile))

		storage.AssertNotCalled(GinkgoT(), "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	It("passes storage failures through", func() {
		storage.On("Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return("", errors.ErrStorageUnauthorized)

		_, err := service.Upload(context.Background(), entities.MediaImage, file("a.jpg", "image/jpeg", 10))
		Expect(err).To(MatchError(errors.ErrStorageUnauthorized))
	})

	It("reports missing storage", func() {
		service = NewMediaService(nil, logging.NewDiscardLogger())
		_, err := service.Upload(context.Background(), entities.MediaImage, file("a.jpg", "image/jpeg", 10))
		Expect(err).To(MatchError(errors.ErrStorageNotConfigured))
	})

	DescribeTable("extension",
		func(name, def, want string) {
			Expect(extension(name, def)).To(Equal(want))
		},
		Entry("plain", "photo.jpeg", "jpg", "jpeg"),
		Entry("upper case", "PHOTO.WEBP", "jpg", "webp"),
		Entry("no dot", "photo", "jpg", "jpg"),
		Entry("trailing dot", "photo.", "mp4", "mp4"),
		Entry("odd characters", "photo.j?g", "jpg", "jpg"),
	)
})
