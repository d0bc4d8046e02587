package services

import (
	"context"
	"strings"
	"time"

	"github.com/renaspress/renaspress-backend/internal/domain/entities"
	"github.com/renaspress/renaspress-backend/internal/domain/errors"
	"github.com/renaspress/renaspress-backend/internal/domain/ports"
	"github.com/renaspress/renaspress-backend/internal/domain/repositories"
	"github.com/renaspress/renaspress-backend/internal/infrastructure/metrics"
)

const defaultDetectedLanguage = "en"

// defaultLanguages is served when the provider cannot list its languages.
var defaultLanguages = []ports.Language{
	{Code: "en", Name: "English"},
	{Code: "ar", Name: "Arabic"},
}

// TranslationService translates posts and free text. Provider failures
// never reach the caller: the original text comes back instead and the
// result is flagged as a fallback.
type TranslationService struct {
	postRepo   repositories.PostRepository
	translator ports.Translator
	logger     ports.Logger
	now        func() time.Time
}

func NewTranslationService(
	postRepo repositories.PostRepository,
	translator ports.Translator,
	logger ports.Logger,
) *TranslationService {
	return &TranslationService{
		postRepo:   postRepo,
		translator: translator,
		logger:     logger,
		now:        clock,
	}
}

// PostTranslation is the outcome of TranslatePost.
type PostTranslation struct {
	Translation entities.Translation
	// Cached is set when the translation was already stored.
	Cached bool
	// Fallback is set when the provider failed and the original text was
	// returned. Fallbacks are not stored.
	Fallback bool
}

// TextTranslation is one translated text.
type TextTranslation struct {
	TranslatedText         string `json:"translatedText"`
	DetectedSourceLanguage string `json:"detectedSourceLanguage,omitempty"`
}

// TranslatePost returns the post in target, translating and storing it on
// the first request.
func (s *TranslationService) TranslatePost(ctx context.Context, postID, target string) (*PostTranslation, error) {
	lang, ok := entities.ParseLanguage(target)
	if !ok {
		return nil, errors.ErrInvalidLanguage
	}

	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, errors.ErrPostNotFound
	}

	if cached, ok := post.Translation(lang); ok {
		metrics.TranslationCacheHits.Inc()
		return &PostTranslation{Translation: cached, Cached: true}, nil
	}

	original := entities.Translation{
		Title:        post.Title,
		Content:      post.Content,
		Excerpt:      post.Excerpt,
		TranslatedAt: s.now(),
	}
	if post.OriginalLanguage == lang {
		return &PostTranslation{Translation: original}, nil
	}

	out, err := s.translator.Translate(ctx, []string{post.Title, post.Excerpt, post.Content}, string(post.OriginalLanguage), string(lang))
	if err != nil {
		s.fallback("post translation failed", err, "post_id", post.ID, "target", lang)
		return &PostTranslation{Translation: original, Fallback: true}, nil
	}

	translation := entities.Translation{
		Title:        out[0],
		Content:      out[2],
		TranslatedAt: s.now(),
	}
	if post.Excerpt != "" {
		translation.Excerpt = out[1]
	}

	if err := s.postRepo.SaveTranslation(ctx, post.ID, lang, translation); err != nil {
		return nil, err
	}

	s.logger.Info("post translated", "post_id", post.ID, "target", lang)
	return &PostTranslation{Translation: translation}, nil
}

// GetTranslations returns the post with its stored translations.
func (s *TranslationService) GetTranslations(ctx context.Context, postID string) (*entities.Post, error) {
	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, errors.ErrPostNotFound
	}
	return post, nil
}

// Translate translates one text. Blank text is returned as is.
func (s *TranslationService) Translate(ctx context.Context, text, source, target string) (TextTranslation, error) {
	if strings.TrimSpace(target) == "" {
		return TextTranslation{}, errors.ErrInvalidLanguage
	}
	if strings.TrimSpace(text) == "" {
		return TextTranslation{}, errors.ErrTextRequired
	}

	results, err := s.TranslateBatch(ctx, []string{text}, source, target)
	if err != nil {
		return TextTranslation{}, err
	}
	return results[0], nil
}

// TranslateBatch translates texts in one provider call, keeping order.
func (s *TranslationService) TranslateBatch(ctx context.Context, texts []string, source, target string) ([]TextTranslation, error) {
	if strings.TrimSpace(target) == "" {
		return nil, errors.ErrInvalidLanguage
	}
	if texts == nil {
		return nil, errors.ErrTextRequired
	}

	results := make([]TextTranslation, len(texts))
	if len(texts) == 0 {
		return results, nil
	}

	out, err := s.translator.Translate(ctx, texts, source, target)
	if err != nil {
		s.fallback("text translation failed", err, "count", len(texts), "target", target)
		for i, t := range texts {
			results[i] = TextTranslation{TranslatedText: t}
		}
		return results, nil
	}

	for i, t := range out {
		results[i] = TextTranslation{TranslatedText: t, DetectedSourceLanguage: source}
	}
	return results, nil
}

// Detect returns the language of text, or en when the provider cannot
// tell.
func (s *TranslationService) Detect(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", errors.ErrTextRequired
	}

	lang, err := s.translator.Detect(ctx, text)
	if err != nil || lang == "" {
		s.fallback("language detection failed", err)
		return defaultDetectedLanguage, nil
	}
	return lang, nil
}

// Languages lists the provider's languages named in target, or en and ar.
func (s *TranslationService) Languages(ctx context.Context, target string) []ports.Language {
	langs, err := s.translator.Languages(ctx, target)
	if err != nil || len(langs) == 0 {
		s.fallback("language listing failed", err)
		return append([]ports.Language(nil), defaultLanguages...)
	}
	return langs
}

func (s *TranslationService) fallback(msg string, err error, args ...any) {
	metrics.TranslationFallbacks.Inc()
	if err != nil {
		args = append(args, "error", err)
	}
	s.logger.Warn(msg, args...)
}
