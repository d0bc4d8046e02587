// Package seed builds demo content for development databases.
package seed

import (
	"fmt"
	"strings"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/renaspress/renaspress-backend/internal/domain/entities"
	"github.com/renaspress/renaspress-backend/internal/services"
)

// PostFactory generates post inputs. The same seed yields the same posts.
type PostFactory struct {
	faker *gofakeit.Faker
}

func NewPostFactory(seed int64) *PostFactory {
	return &PostFactory{faker: gofakeit.New(seed)}
}

// statusWeights favours published posts so the public listing is populated.
var statusWeights = []entities.PostStatus{
	entities.StatusPublished,
	entities.StatusPublished,
	entities.StatusPublished,
	entities.StatusDraft,
	entities.StatusPending,
}

func (f *PostFactory) Post() services.CreatePostInput {
	paragraphs := make([]string, f.faker.Number(2, 5))
	for i := range paragraphs {
		paragraphs[i] = "<p>" + f.faker.Paragraph(1, 4, 12, " ") + "</p>"
	}

	tags := make([]string, f.faker.Number(1, 3))
	for i := range tags {
		tags[i] = strings.ToLower(f.faker.Word())
	}

	category := entities.Categories[f.faker.Number(0, len(entities.Categories)-1)]
	status := statusWeights[f.faker.Number(0, len(statusWeights)-1)]

	input := services.CreatePostInput{
		Title:         strings.TrimSuffix(f.faker.Sentence(f.faker.Number(4, 9)), "."),
		Content:       strings.Join(paragraphs, "\n"),
		Excerpt:       f.faker.Sentence(18),
		Status:        string(status),
		Category:      string(category),
		Tags:          tags,
		FeaturedImage: fmt.Sprintf("https://picsum.photos/seed/%s/1200/630", f.faker.UUID()),
	}

	if f.faker.Bool() {
		input.Media = []entities.MediaItem{{
			Type:  entities.MediaImage,
			URL:   fmt.Sprintf("https://picsum.photos/seed/%s/800/600", f.faker.UUID()),
			Title: f.faker.Sentence(3),
		}}
	}

	return input
}
